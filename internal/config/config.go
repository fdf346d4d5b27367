package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// StoreConfig selects and configures the persistence backend
type StoreConfig struct {
	Backend     string `yaml:"backend" validate:"required,oneof=file postgres"`
	Path        string `yaml:"path,omitempty"`
	PostgresURL string `yaml:"postgresURL,omitempty"`
}

// BoardConfig controls the coverage board display policy
type BoardConfig struct {
	// IncludeElapsed keeps coverage from leave that already ended
	IncludeElapsed bool `yaml:"includeElapsed"`
}

// HolidayConfig declares one recurring public holiday as an RRULE
type HolidayConfig struct {
	Name  string `yaml:"name" validate:"required"`
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	// User is the display name stamped on entries created in this
	// session, and how the UI tells "mine" from "theirs"
	User       string          `yaml:"user" validate:"required"`
	Store      StoreConfig     `yaml:"store" validate:"required"`
	Board      BoardConfig     `yaml:"board"`
	Holidays   []HolidayConfig `yaml:"holidays,omitempty" validate:"dive"`
	CalendarID string          `yaml:"calendarID,omitempty"`
}

const defaultEntriesFile = "ooo_entries.json"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from awayboard.yaml,
// looking in the current directory first, then the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix.
// For example, env="test" will look for "awayboard.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultEntriesFile
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks holiday rrule
// syntax and backend-specific requirements
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Store.Backend == "postgres" && cfg.Store.PostgresURL == "" {
		return fmt.Errorf("config validation failed: store.postgresURL is required for the postgres backend")
	}

	for i, holiday := range cfg.Holidays {
		if _, err := rrule.StrToRRule(holiday.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidays[%d] (%s): %w", i, holiday.Name, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory
// and the user's home directory
func findConfigFile(env string) (string, error) {
	configFileName := "awayboard.yaml"
	if env != "" {
		configFileName = "awayboard." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
