package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string        // Issuer claim for session tokens (default: ultracoach)
	SessionTTL     time.Duration // Session token lifetime (default: 24h)
	SessionKeyFile string        // Optional: path to Ed25519 PEM; ephemeral key when unset

	DatabaseFile string // Path to SQLite database file (default: ./coaching.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	// BaseURL is the public URL invitation links are built against.
	BaseURL string

	MaxResends     int // Resend cap per invitation (default: 3)
	ExpirationDays int // Invitation token lifetime in days (default: 7)

	SMTPHost     string        // SMTP server; email sending disabled when unset
	SMTPPort     int           // SMTP port (default: 587)
	SMTPFrom     string        // From address for invitation email
	SMTPUsername string        // Optional SMTP auth
	SMTPPassword string        // Optional SMTP auth
	MailTimeout  time.Duration // Bound on a single email send (default: 10s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-invitation sweep interval (default: 1h)
	InvitationRetention  time.Duration // How long expired invitations stay resendable (default: 30 days)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("COACH_ISSUER", "ultracoach"),
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		SessionKeyFile: os.Getenv("SESSION_KEY_FILE"),

		DatabaseFile: getEnvOrDefault("COACH_DATABASE_FILE", "coaching.db"),
		PepperFile:   getEnvOrDefault("COACH_PEPPER_FILE", "pepper"),

		BaseURL: loadBaseURL(),

		MaxResends:     getEnvIntOrDefault("MAX_RESENDS", 3),
		ExpirationDays: getEnvIntOrDefault("DEFAULT_EXPIRATION_DAYS", 7),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailTimeout:  getEnvDurationOrDefault("MAIL_TIMEOUT", 10*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InvitationRetention:  getEnvDurationOrDefault("INVITATION_RETENTION", 30*24*time.Hour),
	}
}

// loadBaseURL resolves the public base URL for invitation links, checking
// the deployment-specific variable first and then the common fallbacks.
func loadBaseURL() string {
	for _, key := range []string{"COACH_BASE_URL", "BASE_URL", "PUBLIC_URL"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "http://localhost:8080"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
