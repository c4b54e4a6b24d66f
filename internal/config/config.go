package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every runtime setting the server needs. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	TokenExpiry time.Duration

	// AdminEmail receives feedback alert mails.
	AdminEmail string

	// PrayerAPIBaseURL points at an Aladhan-compatible timings API.
	PrayerAPIBaseURL string
	// GeocodeAPIBaseURL points at the reverse-geocoding endpoint.
	GeocodeAPIBaseURL string
}

// LoadConfig reads the .env file (if present) and builds the Config.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "zenith"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenExpiry:       time.Duration(getEnvInt("TOKEN_EXPIRY_HOURS", 72)) * time.Hour,
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		PrayerAPIBaseURL:  getEnv("PRAYER_API_BASE_URL", "https://api.aladhan.com/v1"),
		GeocodeAPIBaseURL: getEnv("GEOCODE_API_BASE_URL", "https://api.bigdatacloud.net/data/reverse-geocode-client"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
