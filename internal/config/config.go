package config

import (
	"fmt"
	"os"
)

// Config represents runtime configuration for the service. It is built
// once at startup and threaded into each component; nothing reads the
// environment after Load returns.
type Config struct {
	ServerAddress string
	OpenAIKey     string
	SerpAPIKey    string
	SiteURL       string
	TempDir       string
	StaticDir     string
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		SerpAPIKey:    os.Getenv("SERPAPI_KEY"),
		SiteURL:       os.Getenv("SITE_URL"),
		TempDir:       os.Getenv("TEMP_DIR"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}

	// The OpenAI credential backs both transcription and synthesis and is
	// required up front. The SerpAPI credential is only validated on first
	// use by the search client.
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not found in environment variables")
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":5000"
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "https://sena.services"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}

	return cfg, nil
}
