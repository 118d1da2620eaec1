package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nasermirzaei89/env"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com"

// Config holds application-level configuration.
type Config struct {
	BaseURL     string  // e.g. "https://jsonplaceholder.typicode.com"
	TokenPath   string  // Optional bearer token file; empty means anonymous
	StatePath   string  // UI state file (last selected user)
	LogPath     string  // slog output; the terminal belongs to the TUI
	LogLevel    string  // debug, info, warn, error
	RateLimit   float64 // Requests per second; 0 disables pacing
	MetricsAddr string  // Optional prometheus listen address
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
//
//	THREADFEED_BASE_URL       - resource API base URL (default: JSONPlaceholder)
//	THREADFEED_ALLOW_INSECURE - allow an http:// base URL (default: false)
//	THREADFEED_TOKEN          - path to bearer token file (default: none)
//	THREADFEED_STATE          - path to UI state (default: ~/.config/threadfeed/state.yaml)
//	THREADFEED_LOG_FILE       - path to log file (default: ~/.config/threadfeed/threadfeed.log)
//	LOG_LEVEL                 - debug|info|warn|error (default: info)
//	THREADFEED_RATE           - requests per second (default: 10)
//	METRICS_ADDR              - prometheus listen address (default: disabled)
func Load() (Config, error) {
	_ = godotenv.Load()

	base := env.GetString("THREADFEED_BASE_URL", defaultBaseURL)
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid THREADFEED_BASE_URL: must be an absolute URL")
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !env.GetBool("THREADFEED_ALLOW_INSECURE", false) {
			return Config{}, fmt.Errorf("invalid THREADFEED_BASE_URL: http requires THREADFEED_ALLOW_INSECURE=true")
		}
	default:
		return Config{}, fmt.Errorf("invalid THREADFEED_BASE_URL: unsupported scheme %q", parsed.Scheme)
	}
	base = strings.TrimRight(parsed.String(), "/")

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	rate, err := strconv.ParseFloat(env.GetString("THREADFEED_RATE", "10"), 64)
	if err != nil || rate < 0 {
		return Config{}, fmt.Errorf("invalid THREADFEED_RATE: must be a non-negative number")
	}

	return Config{
		BaseURL:     base,
		TokenPath:   env.GetString("THREADFEED_TOKEN", ""),
		StatePath:   env.GetString("THREADFEED_STATE", filepath.Join(dir, "state.yaml")),
		LogPath:     env.GetString("THREADFEED_LOG_FILE", filepath.Join(dir, "threadfeed.log")),
		LogLevel:    env.GetString("LOG_LEVEL", "info"),
		RateLimit:   rate,
		MetricsAddr: env.GetString("METRICS_ADDR", ""),
	}, nil
}

func configDir() (string, error) {
	if dir := os.Getenv("THREADFEED_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "threadfeed"), nil
}
