package appointment

import (
	"context"

	"github.com/joannaarruda/salao-ia-api/internal/dto"
)

// AvailabilityCache é implementado por cache.Availability (Redis).
// Todos os métodos são melhor esforço.
type AvailabilityCache interface {
	Get(ctx context.Context, professionalID, date string, durationMin int) (*dto.AvailabilityResponse, bool)
	Set(ctx context.Context, professionalID, date string, durationMin int, resp *dto.AvailabilityResponse)
	Invalidate(ctx context.Context, professionalID, date string)
}
