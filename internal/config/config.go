package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	domainErrors "github.com/thomas-vilte/flighttime/internal/errors"
	"github.com/thomas-vilte/flighttime/internal/models"
	"github.com/thomas-vilte/flighttime/internal/regex"
)

type Config struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Percentile      int    `json:"percentile"`
	InputPath       string `json:"input_path"`
	Language        string `json:"language"`
	IncludeNegative bool   `json:"include_negative"`

	PathFile string `json:"-"`
}

const (
	DefaultConfigFile = ".flighttime.json"

	defaultOrigin      = "VVO"
	defaultDestination = "TLV"
	defaultPercentile  = 90
	defaultInputPath   = "resources/tickets.json"
	defaultLang        = LangEN
)

// Environment overrides, read after the config file.
const (
	EnvOrigin      = "FLIGHTTIME_ORIGIN"
	EnvDestination = "FLIGHTTIME_DESTINATION"
	EnvPercentile  = "FLIGHTTIME_PERCENTILE"
	EnvInput       = "FLIGHTTIME_INPUT"
	EnvLang        = "FLIGHTTIME_LANG"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Origin:      defaultOrigin,
		Destination: defaultDestination,
		Percentile:  defaultPercentile,
		InputPath:   defaultInputPath,
		Language:    defaultLang,
		PathFile:    DefaultConfigFile,
	}
}

// LoadConfig reads the configuration at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	config := Default()
	config.PathFile = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, domainErrors.ErrInvalidConfig.WithError(err).WithContext("path", path)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides fields from the environment, loading a .env file from
// the working directory first when there is one.
func ApplyEnv(config *Config) error {
	_ = godotenv.Load()

	if v := os.Getenv(EnvOrigin); v != "" {
		config.Origin = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvDestination); v != "" {
		config.Destination = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvInput); v != "" {
		config.InputPath = v
	}
	if v := os.Getenv(EnvLang); v != "" {
		config.Language = v
	}
	if v := os.Getenv(EnvPercentile); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return domainErrors.ErrInvalidPercentile.WithError(err).WithContext("value", v)
		}
		config.Percentile = p
	}

	return validateConfig(config)
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	if dir := filepath.Dir(config.PathFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// Route returns the origin/destination pair tickets are filtered by.
func (c *Config) Route() models.Route {
	return models.Route{Origin: c.Origin, Destination: c.Destination}
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if config.Percentile < 1 || config.Percentile > 100 {
		return domainErrors.ErrInvalidPercentile.WithContext("value", strconv.Itoa(config.Percentile))
	}

	if !regex.IATACode.MatchString(config.Origin) || !regex.IATACode.MatchString(config.Destination) {
		return domainErrors.ErrInvalidRoute.WithContext("value", config.Origin+"-"+config.Destination)
	}

	if config.InputPath == "" {
		return domainErrors.ErrInvalidConfig.WithContext("value", "input_path is empty")
	}

	if config.Language == "" {
		return domainErrors.ErrInvalidConfig.WithContext("value", "language is empty")
	}
	config.Language = GetLocaleConfig(config.Language)

	return nil
}
