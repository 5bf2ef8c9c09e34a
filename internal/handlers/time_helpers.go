package handlers

import (
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

// --------------------------------------------------
// Datas no timezone do salão
// --------------------------------------------------

func parseSalonDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
