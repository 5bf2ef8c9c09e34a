package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Perfil público do profissional. O ID é o mesmo do usuário
// correspondente (role professional), quando existe login.
type Professional struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string     `gorm:"size:100;not null" json:"name"`
	ServiceArea string     `gorm:"size:50" json:"service_area"`
	Specialties StringList `gorm:"serializer:json" json:"specialties"`

	Active bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
