package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingLockKey_SameDayCollapsesToOneKey(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Lisbon")

	morning := time.Date(2026, 9, 10, 10, 0, 0, 0, loc)
	evening := time.Date(2026, 9, 10, 18, 30, 0, 0, loc)

	// Dois bookings do mesmo dia disputam o mesmo lock
	assert.Equal(t, bookingLockKey(morning), bookingLockKey(evening))
	assert.Equal(t, "2026-09-10", bookingLockKey(morning))
}

func TestBookingLockKey_DifferentDaysDoNotContend(t *testing.T) {
	day := time.Date(2026, 9, 10, 23, 30, 0, 0, time.UTC)
	next := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, bookingLockKey(day), bookingLockKey(next))
}

func TestDayRange_CoversWholeCivilDay(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Lisbon")
	start := time.Date(2026, 9, 10, 14, 15, 0, 0, loc)

	dayStart, dayEnd := dayRange(start)

	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, loc), dayStart)
	assert.Equal(t, 24*time.Hour, dayEnd.Sub(dayStart))
	assert.Equal(t, loc, dayStart.Location())

	// O início proposto cai dentro do próprio balde
	assert.False(t, start.Before(dayStart))
	assert.True(t, start.Before(dayEnd))
}
