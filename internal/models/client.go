package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a person record; it may exist without a login (User).
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`

	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Zip     string `gorm:"size:10" json:"zip"`

	UserID *uint `json:"user_id"`

	Preferences *Preferences `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"preferences,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
