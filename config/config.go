package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration parameters for the console service.
type Config struct {
	RemoteAPIURL string
	ServerPort   int
	HTTPTimeout  time.Duration
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present (local development); a missing file is not fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiURL := os.Getenv("REMOTE_API_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("REMOTE_API_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	timeoutStr := os.Getenv("HTTP_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "15"
	}
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS environment variable: %q", timeoutStr)
	}

	cfg := &Config{
		RemoteAPIURL: apiURL,
		ServerPort:   port,
		HTTPTimeout:  time.Duration(timeoutSec) * time.Second,
	}

	return cfg, nil
}
