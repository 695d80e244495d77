package config

import (
	"log"
	"os"
)

type Config struct {
	Port            string
	DBDSN           string
	PaystackPublic  string
	PaystackSecret  string
	PaystackBaseURL string
	LogFile         string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "neotech.db" // sqlite file in project root
	}
	baseURL := os.Getenv("PAYSTACK_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.paystack.co"
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		PaystackPublic:  os.Getenv("PAYSTACK_PUBLIC_KEY"),
		PaystackSecret:  os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL: baseURL,
		LogFile:         os.Getenv("LOG_FILE"),
	}
	// The secret key is only hard-required on the verify path; warn early
	// instead of refusing to start.
	if cfg.PaystackSecret == "" {
		log.Printf("[config] PAYSTACK_SECRET_KEY not set; payment verification will fail")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
