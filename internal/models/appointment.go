package models

import "time"

// Appointment links one Client and one Service to a date and time slot.
// Date and Time keep the wire format ("2006-01-02", "15:04"); ISO dates
// order lexicographically, so SQL range predicates work on them directly.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	IsAway bool   `gorm:"default:false" json:"is_away"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	PrivateNotes string `gorm:"size:1000" json:"private_notes"`
	ClientNotes  string `gorm:"size:1000" json:"client_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
