package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidinfra/recur/internal/types"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, types.ModeLocal, cfg.Deployment.Mode)
	assert.Equal(t, types.DEFAULT_CURRENCY, cfg.Billing.DefaultCurrency)
	assert.Greater(t, cfg.Billing.MaxPreviewOccurrences, 0)
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, "en", cfg.Billing.Locale)
}

func TestNewConfigEnvOverride(t *testing.T) {
	t.Setenv("RECUR_BILLING_DEFAULT_CURRENCY", "eur")
	t.Setenv("RECUR_LOGGING_LEVEL", "debug")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "eur", cfg.Billing.DefaultCurrency)
	assert.Equal(t, types.LogLevelDebug, cfg.Logging.Level)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Billing.DefaultCurrency = "dollars"
	assert.Error(t, cfg.Validate())

	cfg = GetDefaultConfig()
	cfg.Billing.MaxPreviewOccurrences = 0
	assert.Error(t, cfg.Validate())
}
