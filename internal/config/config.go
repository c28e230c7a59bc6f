package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/vidinfra/recur/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type BillingConfig struct {
	// DefaultCurrency is the 3 letter ISO code assumed when a caller
	// does not provide one
	DefaultCurrency string `mapstructure:"default_currency" validate:"required,len=3"`
	// Locale is the BCP 47 tag used for display formatting of amounts
	Locale string `validate:"required"`
	// MaxPreviewOccurrences caps how many occurrences a schedule
	// preview may request in one call
	MaxPreviewOccurrences int `mapstructure:"max_preview_occurrences" validate:"required,gt=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/recur")

	// Set up environment variables support
	v.SetEnvPrefix("RECUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("billing.default_currency", types.DEFAULT_CURRENCY)
	v.SetDefault("billing.locale", "en")
	v.SetDefault("billing.max_preview_occurrences", 120)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Billing: BillingConfig{
			DefaultCurrency:       types.DEFAULT_CURRENCY,
			Locale:                "en",
			MaxPreviewOccurrences: 120,
		},
	}
}
