package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port int

	StoreDriver   string
	SQLitePath    string
	MongoURI      string
	MongoDatabase string

	LineChannelSecret string
	LineChannelToken  string
	AdminUserID       string // receives a push when someone follows the bot

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	LogLevel  string
	LogFormat string
}

// LineEnabled reports whether both LINE credentials are present.
func (c *Config) LineEnabled() bool {
	return c.LineChannelSecret != "" && c.LineChannelToken != ""
}

// CloudinaryEnabled reports whether the photo store can be used.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// Load reads the configuration from environment variables, applying defaults.
// The .env file is loaded by godotenv/autoload in main before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		StoreDriver:         strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:          getEnv("BLUEPRINT_DB_URL", "carcare.db"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGO_DB", "carcare"),
		LineChannelSecret:   os.Getenv("CHANNEL_SECRET"),
		LineChannelToken:    os.Getenv("CHANNEL_ACCESS_TOKEN"),
		AdminUserID:         os.Getenv("MY_USER_ID"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.StoreDriver != StoreSQLite && cfg.StoreDriver != StoreMongo {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
