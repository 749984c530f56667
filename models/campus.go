package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Campus struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Campus) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Hall is a dining hall belonging to a campus. Hall names are
// unique within a campus, not globally.
type Hall struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CampusID  string    `json:"campusId" gorm:"size:36;not null;uniqueIndex:idx_hall_campus_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_hall_campus_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Hall) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
