// Package config provides centralized default values for the portfolio server
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// InsecureJWTSecretDefault is the development-only signing secret. Startup
// logs a prominent warning whenever it is still in effect.
const InsecureJWTSecretDefault = "insecure-dev-secret-change-me"

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

// getEnvSecret behaves like getEnvString but never echoes the value.
func getEnvSecret(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// splitOrigins parses the comma-separated ALLOWED_ORIGINS value.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	BaseURL            string
	AllowedOrigins     []string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Storage Configuration
	StoreBackend    string // "file" or "mongo"
	DataDir         string
	MediaDir        string
	MongoURI        string
	MongoDatabase   string
	ContentCacheTTL time.Duration

	// Authentication
	JWTSecret     string
	AuthTokenTTL  time.Duration
	BcryptCost    int
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Contact Mailer
	ResendAPIKey   string
	ContactEmailTo string
	EmailFrom      string
	EmailFromName  string

	// Uploads
	MaxUploadMB int64

	// Observability
	LogDir   string
	LogLevel string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	BaseURL = getEnvString("BASE_URL", "http://localhost:8080")
	AllowedOrigins = splitOrigins(getEnvString("ALLOWED_ORIGINS", "http://localhost:3000"))
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Storage Configuration
	StoreBackend = getEnvString("STORE_BACKEND", "file")
	DataDir = getEnvString("DATA_DIR", "data")
	MediaDir = getEnvString("MEDIA_DIR", "media")
	MongoURI = getEnvSecret("MONGODB_URI", "mongodb://localhost:27017")
	MongoDatabase = getEnvString("MONGODB_DATABASE", "portfolio")
	ContentCacheTTL = getEnvDuration("CONTENT_CACHE_TTL", 5*time.Minute)

	// Authentication
	JWTSecret = getEnvSecret("JWT_SECRET", InsecureJWTSecretDefault)
	AuthTokenTTL = time.Duration(getEnvInt("AUTH_TOKEN_TTL_HOURS", 24)) * time.Hour
	BcryptCost = getEnvInt("BCRYPT_COST", 12)
	AdminEmail = getEnvString("ADMIN_EMAIL", "admin@portfolio.com")
	AdminPassword = getEnvSecret("ADMIN_PASSWORD", "admin123")
	AdminName = getEnvString("ADMIN_NAME", "Admin")

	// Contact Mailer
	ResendAPIKey = getEnvSecret("RESEND_API_KEY", "")
	ContactEmailTo = getEnvString("CONTACT_EMAIL_TO", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@portfolio.local")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Portfolio")

	// Uploads
	MaxUploadMB = int64(getEnvInt("MAX_UPLOAD_MB", 8))

	// Observability
	LogDir = getEnvString("LOG_DIR", "logs")
	LogLevel = getEnvString("LOG_LEVEL", "info")
}
