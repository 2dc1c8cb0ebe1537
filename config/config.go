package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. Defaults to a local
// sqlite file so the service runs with zero configuration.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "sqlite")

	switch driver {
	case "sqlite":
		path := getEnv("DB_PATH", "booking.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN must be set when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

// Port returns the listen port, defaulting to the port the booking site
// has always run on.
func Port() string {
	return getEnv("PORT", "5001")
}

// StaticRoot returns the directory the marketing pages and assets live in.
func StaticRoot() string {
	return getEnv("STATIC_ROOT", ".")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
