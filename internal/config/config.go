// Package config holds the command defaults read from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys
const (
	EnvConcreteGrade = "GORCD_CONCRETE_GRADE"
	EnvSteelGrade    = "GORCD_STEEL_GRADE"
	EnvCover         = "GORCD_COVER"
	EnvOutputDir     = "GORCD_OUTPUT_DIR"
	EnvLogLevel      = "GORCD_LOG_LEVEL"
)

// Config holds the defaults used to seed command flags
type Config struct {
	ConcreteGrade int
	SteelGrade    int
	Cover         float64 // mm
	OutputDir     string
	LogLevel      logrus.Level
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		ConcreteGrade: 25,
		SteelGrade:    500,
		Cover:         25,
		OutputDir:     ".",
		LogLevel:      logrus.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then builds
// the configuration. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, name := range files {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables alone
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.ConcreteGrade, err = getEnvInt(EnvConcreteGrade, cfg.ConcreteGrade); err != nil {
		return cfg, err
	}
	if cfg.SteelGrade, err = getEnvInt(EnvSteelGrade, cfg.SteelGrade); err != nil {
		return cfg, err
	}
	if cfg.Cover, err = getEnvFloat(EnvCover, cfg.Cover); err != nil {
		return cfg, err
	}
	if cfg.Cover < 0 {
		return cfg, fmt.Errorf("invalid %s: %v", EnvCover, cfg.Cover)
	}
	cfg.OutputDir = getEnv(EnvOutputDir, cfg.OutputDir)

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
