package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	AdminEmail    string
	AdminPassword string // plaintext or bcrypt hash, detected by "$2" prefix
	SessionSecret string // JWT signing key, also reused as the IP-hash salt

	ReviewRateWindowMin int // trailing window for review rate limiting, minutes
	ReviewRateMax       int // max submissions per hashed IP within the window

	UploadMaxMB int
	UploadDir   string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", "defaultSecret"),

		ReviewRateWindowMin: getEnvInt("REVIEW_RATE_WINDOW_MIN", 10),
		ReviewRateMax:       getEnvInt("REVIEW_RATE_MAX", 3),

		UploadMaxMB: getEnvInt("UPLOAD_MAX_MB", 8),
		UploadDir:   getEnv("UPLOAD_DIR", "./public/uploads"),
	}

	// Validate critical configuration
	if AppConfig.SessionSecret == "defaultSecret" {
		log.Println("Warning: Using default SESSION_SECRET. Update it in your environment.")
	}
	if AppConfig.AdminEmail == "" {
		log.Println("Warning: ADMIN_EMAIL is not set. Admin login is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
