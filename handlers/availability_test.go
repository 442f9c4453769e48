package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityService struct {
	result       *models.DayAvailabilityResult
	err          error
	gotDoctorID  string
	gotDate      time.Time
	gotBlockPend bool
}

func (s *stubAvailabilityService) Resolve(doctorID string, targetDate time.Time, blockPending bool) (*models.DayAvailabilityResult, error) {
	s.gotDoctorID = doctorID
	s.gotDate = targetDate
	s.gotBlockPend = blockPending
	return s.result, s.err
}

func availabilityRouter(svc availability.AvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc)
	r.GET("/api/availability/:doctorId", h.GetDoctorAvailabilityHandler)
	return r
}

func TestGetDoctorAvailabilityHandler(t *testing.T) {
	stub := &stubAvailabilityService{result: &models.DayAvailabilityResult{
		Available: true,
		Date:      "2025-06-02",
		DayOfWeek: "Monday",
		TimeSlots: []models.SlotCandidate{
			{Time: "9:00 AM", Available: true},
			{Time: "9:15 AM", Available: false, Booked: true},
		},
		WeeklySchedule: []models.WeeklyOverviewEntry{
			{Date: "2025-06-02", Day: "Mon", DayNumber: 2, Available: true, TimeRange: "09:00 - 17:00"},
		},
	}}
	router := availabilityRouter(stub)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/availability/doc-1?date=2025-06-02&blockPending=false", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "doc-1", stub.gotDoctorID)
	assert.Equal(t, "2025-06-02", stub.gotDate.Format("2006-01-02"))
	assert.False(t, stub.gotBlockPend)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["available"])
	assert.Equal(t, "Monday", body["dayOfWeek"])
	assert.Len(t, body["timeSlots"], 2)
	assert.Len(t, body["weeklySchedule"], 1)
	assert.NotContains(t, body, "message")
}

func TestGetDoctorAvailabilityHandlerDefaults(t *testing.T) {
	stub := &stubAvailabilityService{result: &models.DayAvailabilityResult{
		TimeSlots:      []models.SlotCandidate{},
		WeeklySchedule: []models.WeeklyOverviewEntry{},
		Message:        "Doctor is not available on Sunday",
	}}
	router := availabilityRouter(stub)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/availability/doc-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.gotDate.IsZero(), "omitted date should resolve to now")
	assert.True(t, stub.gotBlockPend, "blockPending defaults to true")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["available"])
	assert.Equal(t, "Doctor is not available on Sunday", body["message"])
}

func TestGetDoctorAvailabilityHandlerBadInput(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/availability/doc-1?date=02-06-2025", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/availability/doc-1?blockPending=maybe", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDoctorAvailabilityHandlerDoctorNotFound(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{err: availability.ErrDoctorNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/availability/ghost", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestGetDoctorAvailabilityHandlerUpstreamFailure(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{err: errors.New("mongo timeout")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/availability/doc-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}
