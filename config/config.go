package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	ContactRecipient string
	EmailTestMode    bool // When true, contact emails are logged instead of sent
	// Other
	AllowedOrigins []string
}

// Load reads configuration from the environment, loading a .env file first when one exists.
// A missing RESEND_API_KEY is not an error here; sends fail when they are attempted.
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppURL:           strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFrom:        getEnv("EMAIL_FROM", "contact@northbridgeconsulting.com"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Northbridge Website"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "hello@northbridgeconsulting.com"),
		EmailTestMode:    getEnvBool("EMAIL_TEST_MODE", false),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if cfg.ResendAPIKey == "" && !cfg.EmailTestMode {
		log.Println("[WARNING] RESEND_API_KEY is not set; contact submissions will fail until it is configured")
	}

	return cfg
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
