package config

import (
	"os"
)

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type CompanyConfig struct {
	Name         string
	SupportEmail string
}

type Config struct {
	Stripe         StripeConfig
	Company        CompanyConfig
	AllowedOrigins string
	Env            string
}

func LoadConfig() *Config {
	cfg := &Config{}

	// Stripe config
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.PublishableKey = os.Getenv("STRIPE_PUBLISHABLE_KEY")

	// Receipt branding
	cfg.Company.Name = os.Getenv("COMPANY_NAME")
	cfg.Company.SupportEmail = os.Getenv("SUPPORT_EMAIL")

	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "http://localhost:5500"
	}

	cfg.Env = os.Getenv("APP_ENV")
	if cfg.Env == "" {
		cfg.Env = "unknown"
	}

	return cfg
}
