package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	GinMode string
	Port    string

	AvatarBaseURL    string
	CORSAllowOrigins string
}

func Load() *Config {
	// Load .env if present, proceed on plain environment variables otherwise
	if err := godotenv.Load(); err == nil {
		log.Println("Environment loaded from .env file")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "socialuser"),
		DBPassword: getEnv("DB_PASSWORD", "socialpassword"),
		DBName:     getEnv("DB_NAME", "social_media"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GinMode: getEnv("GIN_MODE", "debug"),
		Port:    getEnv("PORT", "8080"),

		AvatarBaseURL:    getEnv("AVATAR_BASE_URL", ""),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
