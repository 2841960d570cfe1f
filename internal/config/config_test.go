package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("AIRTIME_API_URL", "https://billers.example.com/api/v1/airtime/fulfil")
	t.Setenv("AIRTIME_PUBLIC_KEY", "pub")
	t.Setenv("AIRTIME_PRIVATE_KEY", "priv")
	t.Setenv("JWT_SECRET", "c2VjcmV0")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.Airtime.Timeout)
		assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
		assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AIRTIME_HTTP_TIMEOUT", "5s")
		t.Setenv("DB_MAX_OPEN_CONNS", "7")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Airtime.Timeout)
		assert.Equal(t, 7, cfg.DB.MaxOpenConns)
	})

	t.Run("missing provider url", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AIRTIME_API_URL", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingAirtimeURL)
	})

	t.Run("missing keys", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AIRTIME_PRIVATE_KEY", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingAirtimeKeys)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger("warn", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0))

	_, err = NewLogger("chatty", false)
	assert.Error(t, err)
}
