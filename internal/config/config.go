package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         buildDSN(),
		ServerPort:    os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "3000"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func buildDSN() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := getenv("DB_NAME", "postgres")

	// no TLS in local dev
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		if host == "localhost" || host == "127.0.0.1" {
			sslmode = "disable"
		} else {
			sslmode = "require"
		}
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslmode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
