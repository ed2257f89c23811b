package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-food-api/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.VerifyTotal)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("VERIFY_TOTAL", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.True(t, cfg.VerifyTotal)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "every minute")
	_, err := Load()
	assert.Error(t, err)
}

func TestOpenDBMigrates(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)

	for _, model := range []interface{}{
		&models.User{}, &models.FoodItem{}, &models.Order{}, &models.LineItem{},
		&models.Feedback{}, &models.OrderStatusHistory{}, &models.WeatherStatus{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}
