package config

import (
	"log"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port string

	// Supabase
	SupabaseURL         string
	SupabaseKey         string
	SupabaseServiceRole string

	// Logging
	LogLevel string

	// Email notifications (Resend)
	ResendAPIKey   string
	MailFrom       string
	CareersMailbox string

	// AWS S3 resume archival (optional)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3BucketName       string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Supabase
		SupabaseURL:         getEnv("SUPABASE_URL", ""),
		SupabaseKey:         getEnv("SUPABASE_KEY", ""),
		SupabaseServiceRole: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Email
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", "careers@northlinktelecom.com"),
		CareersMailbox: getEnv("CAREERS_MAILBOX", ""),

		// AWS S3
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),
	}

	// Validate required Supabase credentials
	if cfg.SupabaseURL == "" {
		log.Println("Warning: SUPABASE_URL not set")
	}
	if cfg.SupabaseKey == "" {
		log.Println("Warning: SUPABASE_KEY not set")
	}
	if cfg.SupabaseServiceRole == "" {
		log.Println("Warning: SUPABASE_SERVICE_ROLE_KEY not set")
	}

	return cfg
}

// ArchivalConfigured reports whether every AWS setting needed for resume
// archival is present
func (c *Config) ArchivalConfigured() bool {
	return c.AWSRegion != "" && c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != "" && c.S3BucketName != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
