package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host     string
	Port     string
	Env      string
	DBPath   string
	LogLevel string

	CORSOrigins string
	RateLimit   int

	BackupEnabled  bool
	BackupInterval time.Duration
	BackupFolder   string
	BackupKeep     int
	BackupTempDir  string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Host:     GetEnv("HOST", "127.0.0.1"),
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		DBPath:   GetEnv("DB_PATH", "./data/archive.db"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		RateLimit:   GetEnvInt("RATE_LIMIT", 200),

		BackupEnabled:  GetEnvBool("BACKUP_ENABLED", false),
		BackupInterval: GetEnvDuration("BACKUP_INTERVAL", 24*time.Hour),
		BackupFolder:   GetEnv("BACKUP_FOLDER", "gallery-archive-backups"),
		BackupKeep:     GetEnvInt("BACKUP_KEEP", 7),
		BackupTempDir:  GetEnv("BACKUP_TEMP_DIR", os.TempDir()),

		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken: GetEnv("GOOGLE_REFRESH_TOKEN", ""),
	}

	if AppConfig.BackupEnabled {
		if AppConfig.GoogleClientID == "" {
			log.Fatal("GOOGLE_CLIENT_ID is required when BACKUP_ENABLED is set")
		}
		if AppConfig.GoogleClientSecret == "" {
			log.Fatal("GOOGLE_CLIENT_SECRET is required when BACKUP_ENABLED is set")
		}
		if AppConfig.GoogleRefreshToken == "" {
			log.Fatal("GOOGLE_REFRESH_TOKEN is required when BACKUP_ENABLED is set")
		}
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
