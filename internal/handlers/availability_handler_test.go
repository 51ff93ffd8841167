package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/salonbook/salon-api/internal/middleware"
)

func weeklyUpdateContext(t *testing.T, body WeeklyUpdateRequest) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/me/availability", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserID, uint(1))
	return c, w
}

// The invalid payloads below must be rejected before the handler ever
// touches storage, so a nil db is fine here.
func TestUpdateWeeklyValidation(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil)

	t.Run("DuplicateWeekday", func(t *testing.T) {
		c, w := weeklyUpdateContext(t, WeeklyUpdateRequest{Days: []WeeklyDayConfig{
			{DayOfWeek: 2, Open: true, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 2, Open: true, StartTime: "12:00", EndTime: "20:00"},
		}})

		h.UpdateWeekly(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "duplicate_weekday")
	})

	t.Run("DuplicateClosedWeekday", func(t *testing.T) {
		c, w := weeklyUpdateContext(t, WeeklyUpdateRequest{Days: []WeeklyDayConfig{
			{DayOfWeek: 1, Open: false},
			{DayOfWeek: 1, Open: true, StartTime: "09:00", EndTime: "18:00"},
		}})

		h.UpdateWeekly(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "duplicate_weekday")
	})

	t.Run("StartNotBeforeEnd", func(t *testing.T) {
		c, w := weeklyUpdateContext(t, WeeklyUpdateRequest{Days: []WeeklyDayConfig{
			{DayOfWeek: 3, Open: true, StartTime: "18:00", EndTime: "09:00"},
		}})

		h.UpdateWeekly(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_time_range")
	})

	t.Run("NonCanonicalTime", func(t *testing.T) {
		c, w := weeklyUpdateContext(t, WeeklyUpdateRequest{Days: []WeeklyDayConfig{
			{DayOfWeek: 3, Open: true, StartTime: "9:00", EndTime: "18:00"},
		}})

		h.UpdateWeekly(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_time_range")
	})
}
