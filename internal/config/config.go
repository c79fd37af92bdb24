package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY is not set in the environment or .env file.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not found; create a .env file and add: OPENAI_API_KEY=your-key-here")

// Config holds all configuration for the application.
type Config struct {
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	TTSModel          string
	TTSVoice          string
	TTSResponseFormat string
	TTSTimeout        time.Duration
	ChunkMaxChars     int
	AudioDir          string
	ContainerRuntime  string
	FFmpegImage       string
	LogLevel          slog.Level
	LogFormat         string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	// Walk up to find a .env in a parent directory (e.g. when run from a subfolder)
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		TTSModel:          getEnv("TTS_MODEL", "gpt-4o-mini-tts"),
		TTSVoice:          getEnv("TTS_VOICE", "alloy"),
		TTSResponseFormat: getEnv("TTS_RESPONSE_FORMAT", "mp3"),
		AudioDir:          getEnv("AUDIO_DIR", "audio"),
		ContainerRuntime:  getEnv("CONTAINER_RUNTIME", "docker"),
		FFmpegImage:       getEnv("FFMPEG_IMAGE", "linuxserver/ffmpeg"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Parse CHUNK_MAX_CHARS
	// The speech endpoint accepts at most 4096 characters per request.
	maxChars, err := strconv.Atoi(getEnv("CHUNK_MAX_CHARS", "4000"))
	if err != nil {
		return nil, fmt.Errorf("CHUNK_MAX_CHARS must be a valid integer: %w", err)
	}
	if maxChars <= 0 {
		return nil, fmt.Errorf("CHUNK_MAX_CHARS must be greater than 0")
	}
	cfg.ChunkMaxChars = maxChars

	timeout, err := time.ParseDuration(getEnv("TTS_TIMEOUT", "90s"))
	if err != nil {
		return nil, fmt.Errorf("TTS_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("TTS_TIMEOUT must be greater than 0")
	}
	cfg.TTSTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
