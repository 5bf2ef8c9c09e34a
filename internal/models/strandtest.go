package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Teste de mecha: registro de compatibilidade química feito pelo profissional.
type StrandTest struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID       string `gorm:"size:36;index" json:"client_id"`
	ProfessionalID string `gorm:"size:36;index" json:"professional_id"`

	Result         string `gorm:"size:100;not null" json:"result"`
	Observations   string `gorm:"size:500" json:"observations"`
	Recommendation string `gorm:"size:255" json:"recommendation"`
	TestedProduct  string `gorm:"size:100" json:"tested_product"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *StrandTest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
