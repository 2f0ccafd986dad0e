// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	HTTPAddr      string
	SpeechAddr    string
	InferenceAddr string
	DBPath        string
	Model         string
	TopK          int
	// AutoStart begins the conversation as soon as the speech channel is
	// ready, without waiting for a start command over HTTP.
	AutoStart bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		SpeechAddr:    getEnv("SPEECH_ADDR", "localhost:50052"),
		InferenceAddr: getEnv("INFERENCE_ADDR", "localhost:50051"),
		DBPath:        getEnv("DB_PATH", "./data/dialogue.db"),
		Model:         getEnv("MODEL", "llama3.1"),
		TopK:          getEnvInt("TOP_K", 100),
		AutoStart:     getEnvBool("AUTO_START", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if c.SpeechAddr == "" {
		return fmt.Errorf("SPEECH_ADDR cannot be empty")
	}
	if c.InferenceAddr == "" {
		return fmt.Errorf("INFERENCE_ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("MODEL cannot be empty")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("TOP_K must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
