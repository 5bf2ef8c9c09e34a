package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Histórico médico do cliente. Uma ficha por cliente; o UpdatedAt
// é a referência de validade para os serviços químicos.
type MedicalHistory struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;uniqueIndex" json:"client_id"`

	Allergies   StringList `gorm:"serializer:json" json:"allergies"`
	Medications StringList `gorm:"serializer:json" json:"medications"`

	RecentChemicalTreatment bool       `json:"recent_chemical_treatment"`
	PreviousTreatments      StringList `gorm:"serializer:json" json:"previous_treatments"`
	FrequentPoolSwimming    bool       `json:"frequent_pool_swimming"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MedicalHistory) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
