package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Addr string `validate:"required"`

	Storefront StorefrontConfig
	SMTP       SMTPConfig

	// FlashSecret signs the one-shot flash cookie.
	FlashSecret   string `validate:"required,min=16"`
	SecureCookies bool
}

// StorefrontConfig points at the storefront REST API the console consumes.
type StorefrontConfig struct {
	BaseURL string `validate:"required,url"`
	// Token is passed through as a bearer credential. Empty is allowed:
	// the storefront decides authorization, not us.
	Token   string
	Timeout time.Duration `validate:"required"`
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls" or "starttls"
	SkipVerifyTLS bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr: getEnv("ADDR", ":8080"),
		Storefront: StorefrontConfig{
			BaseURL: getEnv("STOREFRONT_API_URL", "http://localhost:8000"),
			Token:   os.Getenv("STOREFRONT_API_TOKEN"),
			Timeout: getEnvDuration("STOREFRONT_API_TIMEOUT", 10*time.Second),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", "localhost"),
			Port:          getEnv("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          getEnv("SMTP_FROM", "no-reply@meraki.local"),
			FromName:      getEnv("SMTP_FROM_NAME", "Meraki"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "true",
		},
		FlashSecret:   getEnv("FLASH_SECRET", "dev-secret-change-in-prod"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
