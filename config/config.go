package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment configuration, loaded once at startup from the process
// environment with .env as a fallback for local development.
var (
	ServerPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddress  string
	RedisPassword string

	JWTSecret       string
	DefaultPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	SupportEmail string

	IGDBClientID    string
	IGDBAccessToken string
	IGDBBaseURL     string

	MaxPendingRequests int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "gamediary")

	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")
	SupportEmail = getEnv("SUPPORT_EMAIL", "")

	IGDBClientID = getEnv("IGDB_CLIENT_ID", "")
	IGDBAccessToken = getEnv("IGDB_ACCESS_TOKEN", "")
	IGDBBaseURL = getEnv("IGDB_BASE_URL", "https://api.igdb.com/v4")

	MaxPendingRequests = getEnvInt("MAX_PENDING_REQUESTS", DefaultRequestQuotaConfig.MaxPending)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}
