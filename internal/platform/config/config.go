// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of both the client (CLI) and the mock backend.
type Config struct {
	// Client side
	APIBaseURL  string
	HTTPTimeout time.Duration
	UseMockData bool
	SessionDir  string

	// Mock backend
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	RateLimit         string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("USE_MOCK_DATA", false)
	viper.SetDefault("SESSION_DIR", "")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "asso-gestion")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		APIBaseURL:   viper.GetString("API_BASE_URL"),
		UseMockData:  viper.GetBool("USE_MOCK_DATA"),
		SessionDir:   viper.GetString("SESSION_DIR"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTIssuer:    viper.GetString("JWT_ISSUER"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.HTTPTimeout = timeout

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiry

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set in production. Using default insecure key.")
	}

	return cfg, nil
}
