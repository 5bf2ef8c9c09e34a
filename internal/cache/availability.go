package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/joannaarruda/salao-ia-api/internal/dto"
)

// Cache de disponibilidade em Redis. Melhor esforço: qualquer erro de
// Redis é tratado como cache miss e nunca falha a requisição.
//
// A invalidação usa uma chave de versão por profissional+data: mutações
// de agenda incrementam a versão e as entradas antigas expiram pelo TTL.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	return &Availability{rdb: rdb, ttl: ttl}
}

func (c *Availability) versionKey(professionalID, date string) string {
	return fmt.Sprintf("availability:ver:%s:%s", professionalID, date)
}

func (c *Availability) dataKey(professionalID, date string, durationMin int, version int64) string {
	return fmt.Sprintf("availability:%s:%s:%d:v%d", professionalID, date, durationMin, version)
}

func (c *Availability) version(ctx context.Context, professionalID, date string) int64 {
	ver, err := c.rdb.Get(ctx, c.versionKey(professionalID, date)).Int64()
	if err != nil {
		return 0
	}
	return ver
}

func (c *Availability) Get(
	ctx context.Context,
	professionalID string,
	date string,
	durationMin int,
) (*dto.AvailabilityResponse, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	ver := c.version(ctx, professionalID, date)

	raw, err := c.rdb.Get(ctx, c.dataKey(professionalID, date, durationMin, ver)).Bytes()
	if err != nil {
		return nil, false
	}

	var resp dto.AvailabilityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}

	return &resp, true
}

func (c *Availability) Set(
	ctx context.Context,
	professionalID string,
	date string,
	durationMin int,
	resp *dto.AvailabilityResponse,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}

	ver := c.version(ctx, professionalID, date)
	c.rdb.Set(ctx, c.dataKey(professionalID, date, durationMin, ver), raw, c.ttl)
}

// Invalidate é chamado após criar/cancelar/mudar status de agendamento.
func (c *Availability) Invalidate(ctx context.Context, professionalID, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	key := c.versionKey(professionalID, date)
	c.rdb.Incr(ctx, key)
	c.rdb.Expire(ctx, key, 24*time.Hour)
}
