package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactInfoID is the fixed primary key of the contact singleton.
// Using a constant key means the loser of a concurrent first-create
// gets a duplicate-key error instead of a second row.
const ContactInfoID = "contact-info"

type ContactInfo struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *ContactInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = ContactInfoID
	}
	return nil
}
