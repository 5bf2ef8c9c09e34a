package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func availabilityContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestAvailability_MalformedDurationIsRejected(t *testing.T) {
	h := NewAppointmentHandler(nil, nil, nil, nil, nil, nil, "UTC")

	c, w := availabilityContext(t,
		"/api/appointments/available?professional_id=prof-1&date=2026-09-10&duration=abc")

	h.Availability(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_duration")
}

func TestAvailability_MissingParameters(t *testing.T) {
	h := NewAppointmentHandler(nil, nil, nil, nil, nil, nil, "UTC")

	c, w := availabilityContext(t, "/api/appointments/available?date=2026-09-10")

	h.Availability(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_parameters")
}
