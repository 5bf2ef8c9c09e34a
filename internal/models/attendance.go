package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ficha de atendimento preenchida após o procedimento.
type AttendanceRecord struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	AppointmentID  string `gorm:"size:36;index" json:"appointment_id"`
	ClientID       string `gorm:"size:36;index" json:"client_id"`
	ProfessionalID string `gorm:"size:36;index" json:"professional_id"`

	ProductsUsed      StringList `gorm:"serializer:json" json:"products_used"`
	TechniquesApplied StringList `gorm:"serializer:json" json:"techniques_applied"`
	ProcessingTimeMin *int       `json:"processing_time_min"`
	TechnicalNotes    string     `gorm:"size:500" json:"technical_notes"`

	Satisfaction       *int   `json:"satisfaction"`
	AllergicReaction   bool   `json:"allergic_reaction"`
	ReactionDetails    string `gorm:"size:500" json:"reaction_details"`
	NextRecommendation string `gorm:"size:255" json:"next_recommendation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
