package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Consultation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID       string  `gorm:"size:36;index" json:"client_id"`
	ProfessionalID string  `gorm:"size:36;index" json:"professional_id"`
	AppointmentID  *string `gorm:"size:36" json:"appointment_id"`

	Objective        string `gorm:"size:255" json:"objective"`
	CurrentHairState string `gorm:"size:255" json:"current_hair_state"`
	ClientWishes     string `gorm:"size:500" json:"client_wishes"`
	Summary          string `gorm:"size:500" json:"summary"`
	Recommendations  string `gorm:"size:500" json:"recommendations"`

	WantsStrandTest bool `json:"wants_strand_test"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
