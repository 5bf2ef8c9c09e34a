package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID string       `gorm:"size:36;index:idx_appointments_prof_start" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	StartTime time.Time   `gorm:"index:idx_appointments_prof_start" json:"start_time"`
	Services  ServiceList `gorm:"serializer:json" json:"services"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes         string `gorm:"size:255" json:"notes"`
	UseAI         bool   `json:"use_ai"`
	AIPreferences string `gorm:"size:255" json:"ai_preferences"`

	WantsConsultation bool `json:"wants_consultation"`
	WantsStrandTest   bool `json:"wants_strand_test"`

	ConfirmedAt  *time.Time `json:"confirmed_at"`
	ConfirmedBy  *string    `gorm:"size:36" json:"confirmed_by"`
	CompletedAt  *time.Time `json:"completed_at"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CancelReason string     `gorm:"size:255" json:"cancel_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// DurationMin soma as durações dos serviços (padrão de 60 min por serviço).
func (a *Appointment) DurationMin() int {
	return a.Services.TotalDurationMin()
}

// EndTime é derivado: início + duração total.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMin()) * time.Minute)
}
