package config

import (
	"os"
	"strconv"
	"time"

	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string // empty selects the in-memory backend
	JWTSecret   string
	LogLevel    string
	LogJSON     bool

	// Deadline reminders (enabled when SendGridAPIKey is set)
	SendGridAPIKey   string
	MailFrom         string
	ReminderInterval time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present. The signing secret has no fallback: running without an
// explicit JWT_SECRET is a hazard, not a convenience.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	mailFrom := os.Getenv("MAIL_FROM")
	if mailFrom == "" {
		mailFrom = "noreply@taskboard.local"
	}

	interval := time.Minute
	if v := os.Getenv("REMINDER_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:          port,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        jwtSecret,
		LogLevel:         os.Getenv("LOG_LEVEL"),
		LogJSON:          os.Getenv("LOG_JSON") == "true",
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		MailFrom:         mailFrom,
		ReminderInterval: interval,
	}
}
