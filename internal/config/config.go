package config

import (
	"os"
	"path/filepath"
	"strings"

	"SignaturePad/internal/signature"

	"github.com/joho/godotenv"
)

// Config is the demo host's configuration. The widget itself reads none of it.
type Config struct {
	Placeholder      string
	Tabs             []signature.Mode
	ShowColorOptions bool
	Persist          bool
	PDF              bool
	OutputDir        string
	Debug            bool
}

// Load reads a .env file from the working directory or the executable's
// directory, if one exists, then builds the config from the environment.
func Load() (*Config, error) {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			// Variables already set in the environment win.
			if err := godotenv.Load(envPath); err != nil {
				return nil, err
			}
			break
		}
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	tabs, err := signature.ParseModes(getEnvWithDefault("SIGNATURE_TABS", "draw,image,type"))
	if err != nil {
		return nil, err
	}
	return &Config{
		Placeholder:      getEnvWithDefault("SIGNATURE_PLACEHOLDER", signature.DefaultPlaceholder),
		Tabs:             tabs,
		ShowColorOptions: getBool("SIGNATURE_COLOR_OPTIONS"),
		Persist:          getBool("SIGNATURE_PERSIST"),
		PDF:              getBool("SIGNATURE_PDF"),
		OutputDir:        os.Getenv("SIGNATURE_OUTPUT_DIR"),
		Debug:            getBool("SIGNATURE_DEBUG"),
	}, nil
}

func getBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
