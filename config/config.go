package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"taskflow/model"
)

// DefaultAppURL is used for dashboard links when APP_BASE_URL is not set.
const DefaultAppURL = "https://your-app-url.vercel.app"

type Config struct {
	Email      model.EmailConfig
	AppBaseURL string
}

// Load reads configuration from the environment, falling back to a .env file
// when running locally.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
	}

	cfg := Config{
		Email: model.EmailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = DefaultAppURL
	}
	return cfg
}
