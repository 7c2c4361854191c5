package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates the settings of the REST API application.
type RestConfig struct {
	Port     int              `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST API configuration from the YAML file at
// path. Values can be overridden with SQLSEAL_-prefixed environment variables
// (e.g. SQLSEAL_DATABASE_DSN).
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("SQLSEAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
