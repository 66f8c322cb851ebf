package config

import (
	"os"
	"strconv"
)

// Config holds all paddydoc configuration.
type Config struct {
	Model  ModelConfig
	Engine EngineConfig
	Log    LogConfig
}

// ModelConfig locates the model artifact and its runtime.
type ModelConfig struct {
	Path       string // ONNX model artifact
	ORTLibrary string // ONNX Runtime shared library; empty = next to the model
}

// EngineConfig holds pipeline tuning settings.
type EngineConfig struct {
	ConfidenceGate float64 // minimum top probability for a definite diagnosis
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text" or "json"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Model: ModelConfig{
			Path:       getenv("PADDYDOC_MODEL_PATH", "models/rice_leaf.onnx"),
			ORTLibrary: os.Getenv("PADDYDOC_ORT_LIB"),
		},
		Engine: EngineConfig{
			ConfidenceGate: getenvFloat("PADDYDOC_CONFIDENCE_GATE", 0.70),
		},
		Log: LogConfig{
			Level:  getenv("PADDYDOC_LOG_LEVEL", "info"),
			Format: getenv("PADDYDOC_LOG_FORMAT", "text"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
