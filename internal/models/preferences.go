package models

import "time"

// Preferences holds the intake-question answers, one row per client.
// The row is created in the same transaction as the client itself.
type Preferences struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"uniqueIndex;not null" json:"client_id"`

	Question1 string `gorm:"size:500" json:"question_1"`
	Question2 string `gorm:"size:500" json:"question_2"`
	Question3 string `gorm:"size:500" json:"question_3"`
	Question4 string `gorm:"size:500" json:"question_4"`
	Question5 string `gorm:"size:500" json:"question_5"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
