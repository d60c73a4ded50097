package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone names resolve without a system tz database

	"github.com/spf13/viper"
)

// Output formats supported by the CLI
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents application configuration
type Config struct {
	Location string    `mapstructure:"location"` // IANA zone name, "Local" or "UTC"
	Output   string    `mapstructure:"output"`   // "text", "json" or "yaml"
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty logs to stderr
}

// Load loads configuration from file and CALENDARDATE_* environment variables.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("location", "Local")
	v.SetDefault("output", OutputText)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("calendardate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calendardate")
		v.AddConfigPath("/etc/calendardate")
	}

	// Read environment variables
	v.SetEnvPrefix("CALENDARDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be 'text', 'json' or 'yaml', got '%s'", c.Output)
	}

	if _, err := c.GetLocation(); err != nil {
		return err
	}

	return nil
}

// GetLocation returns the configured time zone. Default: time.Local
func (c *Config) GetLocation() (*time.Location, error) {
	switch c.Location {
	case "", "Local":
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", c.Location, err)
	}
	return loc, nil
}
