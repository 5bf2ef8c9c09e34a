package models

// ===============================
// Tipos de serviço
// ===============================

type ServiceType string

const (
	ServiceHaircut           ServiceType = "haircut"
	ServiceColoring          ServiceType = "coloring"
	ServiceHighlights        ServiceType = "highlights"
	ServiceHydration         ServiceType = "hydration"
	ServiceRootTouchUp       ServiceType = "root_touch_up"
	ServiceBleaching         ServiceType = "bleaching"
	ServiceStraightening     ServiceType = "straightening"
	ServicePerm              ServiceType = "perm"
	ServiceChemicalHydration ServiceType = "chemical_hydration"
	ServiceManicure          ServiceType = "manicure"
	ServicePedicure          ServiceType = "pedicure"
	ServiceGelNail           ServiceType = "gel_nail"
	ServiceNailArt           ServiceType = "nail_art"
)

// Serviços químicos exigem histórico médico atualizado antes do agendamento.
var chemicalServices = map[ServiceType]bool{
	ServiceColoring:          true,
	ServiceBleaching:         true,
	ServiceStraightening:     true,
	ServicePerm:              true,
	ServiceChemicalHydration: true,
}

func (t ServiceType) IsChemical() bool {
	return chemicalServices[t]
}

// ===============================
// Item de serviço
// ===============================

const (
	DefaultServiceDurationMin = 60
	MinServiceDurationMin     = 15
	MaxServiceDurationMin     = 480
)

type ServiceItem struct {
	Type        ServiceType `json:"type" binding:"required"`
	Description string      `json:"description"`
	DurationMin int         `json:"duration_min"`
	Price       *float64    `json:"price,omitempty"`
}

// DurationOrDefault aplica o padrão de 60 minutos quando a duração não veio.
func (s ServiceItem) DurationOrDefault() int {
	if s.DurationMin <= 0 {
		return DefaultServiceDurationMin
	}
	return s.DurationMin
}

type ServiceList []ServiceItem

func (l ServiceList) TotalDurationMin() int {
	total := 0
	for _, s := range l {
		total += s.DurationOrDefault()
	}
	return total
}

// ChemicalTypes devolve os tipos químicos presentes na lista, na ordem pedida.
func (l ServiceList) ChemicalTypes() []ServiceType {
	var out []ServiceType
	for _, s := range l {
		if s.Type.IsChemical() {
			out = append(out, s.Type)
		}
	}
	return out
}

type StringList []string
