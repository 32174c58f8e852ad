package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	DB_DRIVER   string
	DB_URL      string
	SQLITE_PATH string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	DB_DRIVER = getEnv("DB_DRIVER", "sqlite")
	SQLITE_PATH = getEnv("SQLITE_PATH", "data/production.db")

	if DB_DRIVER == "postgres" {
		DB_URL = mustEnv("DB_URL")
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
