package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	RazorpayKeyID     string
	RazorpayKeySecret string
	JWTSecret         string
	KafkaBrokers      string
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	SMTPFrom          string
	FinanceEmail      string
	SeedFeeItems      bool
}

// LoadConfig loads configuration from environment variables. A .env file is
// honoured when present but not required.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		FinanceEmail:      os.Getenv("FINANCE_EMAIL"),
		SeedFeeItems:      os.Getenv("SEED_FEE_ITEMS") == "true",
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.RazorpayKeyID == "" || config.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return config, nil
}
