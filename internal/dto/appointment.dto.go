package dto

import "time"

type AppointmentListDTO struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	Services   []string  `json:"services"`
}

// ===============================
// Disponibilidade
// ===============================

type TimeSlotDTO struct {
	Time                 string `json:"time"`
	Available            bool   `json:"available"`
	AvailableDurationMin int    `json:"available_duration_min"`
}

type AvailabilityResponse struct {
	Date           string        `json:"date"`
	ProfessionalID string        `json:"professional_id"`
	Slots          []TimeSlotDTO `json:"slots"`
}
