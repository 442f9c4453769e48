package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 15, AppConfig.BookingWindowDays)
	assert.Equal(t, "medibook", AppConfig.DatabaseName)
	assert.False(t, IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("BOOKING_WINDOW_DAYS", "30")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.Equal(t, 30, AppConfig.BookingWindowDays)
	assert.True(t, IsProduction())
}
