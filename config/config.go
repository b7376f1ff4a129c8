package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gilby125/geodesy/pkg/geo"
	"github.com/joho/godotenv"
)

// ErrInvalidRadius is returned when GEODESY_RADIUS is not a positive,
// finite number.
var ErrInvalidRadius = errors.New("invalid radius")

// Config holds all application configuration
type Config struct {
	Environment   string
	LoggingConfig LoggingConfig
	RadiusConfig  RadiusConfig
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// RadiusConfig holds the sphere radius used for distances and the unit it
// is expressed in.
type RadiusConfig struct {
	Unit   string
	Radius float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
	}

	radiusConfig, err := loadRadius()
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		LoggingConfig: loggingConfig,
		RadiusConfig:  radiusConfig,
	}, nil
}

func loadRadius() (RadiusConfig, error) {
	unit := strings.ToLower(getEnv("GEODESY_RADIUS_UNIT", "m"))
	radius, err := geo.RadiusForUnit(unit)
	if err != nil {
		return RadiusConfig{}, fmt.Errorf("GEODESY_RADIUS_UNIT: %w", err)
	}

	// An explicit radius overrides the unit's mean Earth radius.
	if raw := getEnv("GEODESY_RADIUS", ""); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return RadiusConfig{}, fmt.Errorf("GEODESY_RADIUS %q: %w", raw, ErrInvalidRadius)
		}
		if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
			return RadiusConfig{}, fmt.Errorf("GEODESY_RADIUS %q: %w", raw, ErrInvalidRadius)
		}
	}

	return RadiusConfig{Unit: unit, Radius: radius}, nil
}

// TestConfig returns a default test configuration
func TestConfig() *Config {
	return &Config{
		Environment: "test",
		LoggingConfig: LoggingConfig{
			Level:  "debug",
			Format: "text",
		},
		RadiusConfig: RadiusConfig{
			Unit:   "m",
			Radius: geo.EarthRadiusMeters,
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
