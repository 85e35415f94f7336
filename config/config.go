package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Only this origin may call the API from a browser
	CORSOrigin string
	// Mail transport selection: "resend", "smtp" or "noop"
	MailProvider string
	// Resend configuration
	ResendAPIKey string
	// SMTP configuration (used when MailProvider == "smtp")
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Owner mailbox: sender and recipient of every contact notification
	ContactEmail string
	// Upper bound on a single outbound send, in seconds
	SendTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env file exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:3000"),
		MailProvider:       getEnv("MAIL_PROVIDER", "smtp"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUsername:       getEnv("EMAIL_USER", ""),
		SMTPPassword:       getEnv("EMAIL_PASS", ""),
		ContactEmail:       getEnv("CONTACT_EMAIL", getEnv("EMAIL_USER", "")),
		SendTimeoutSeconds: getEnvInt("SEND_TIMEOUT_SECONDS", 15),
	}

	// Missing credentials are not fatal: the relay still starts and the
	// send fails at request time, surfaced to the caller as a 500.
	switch cfg.MailProvider {
	case "resend":
		if cfg.ResendAPIKey == "" {
			log.Println("WARNING: RESEND_API_KEY is missing. Contact sends will fail.")
		}
	case "smtp":
		if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			log.Println("WARNING: EMAIL_USER/EMAIL_PASS not configured. Contact sends will fail.")
		}
	}
	if cfg.ContactEmail == "" {
		log.Println("WARNING: CONTACT_EMAIL is missing. No recipient for contact notifications.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
