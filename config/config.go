package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// StaticDir is the directory served under /static/.
	StaticDir string
	// ActivitiesFile optionally overrides the embedded activities dataset.
	ActivitiesFile string
	// EnforceCapacity rejects signups to full activities when true. The
	// default preserves the original deployment's advisory-only capacity.
	EnforceCapacity bool

	CORSAllowedOrigins []string

	Email EmailConfig
}

// EmailConfig holds confirmation email settings.
type EmailConfig struct {
	Provider              string // "noop" (default) or "ses"
	FromAddress           string
	FromName              string
	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		StaticDir:       os.Getenv("STATIC_DIR"),
		ActivitiesFile:  os.Getenv("ACTIVITIES_FILE"),
		EnforceCapacity: boolEnv("ENFORCE_CAPACITY"),
		Email: EmailConfig{
			Provider:              os.Getenv("EMAIL_PROVIDER"),
			FromAddress:           os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:              os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:             os.Getenv("SES_REGION"),
			SESAccessKeyID:        os.Getenv("SES_ACCESS_KEY_ID"),
			SESSecretAccessKey:    os.Getenv("SES_SECRET_ACCESS_KEY"),
			SESInsecureSkipVerify: boolEnv("SES_INSECURE_SKIP_VERIFY"),
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = "activities@mergington.edu"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Mergington High School"
	}

	return cfg, nil
}

func boolEnv(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
