package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	LocalStorePath    string
	Environment       string
	Currency          string
	Addr              string
	JWTSecret         string
	TokenTTL          time.Duration
	SeedAdminEmail    string
	SeedAdminPassword string
	PayslipDir        string
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:        getEnv("ERP_API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:    getEnvDuration("ERP_REQUEST_TIMEOUT", 10*time.Second),
		LocalStorePath:    getEnv("ERP_LOCAL_STORE", defaultStorePath()),
		Environment:       getEnv("ERP_ENV", "development"),
		Currency:          getEnv("ERP_CURRENCY", "USD"),
		Addr:              getEnv("ERP_DEV_ADDR", ":8080"),
		JWTSecret:         getEnv("ERP_JWT_SECRET", "dev-secret"),
		TokenTTL:          getEnvDuration("ERP_TOKEN_TTL", 12*time.Hour),
		SeedAdminEmail:    getEnv("ERP_SEED_ADMIN_EMAIL", "admin@erpdesk.local"),
		SeedAdminPassword: getEnv("ERP_SEED_ADMIN_PASSWORD", "ChangeMe123!"),
		PayslipDir:        getEnv("ERP_PAYSLIP_DIR", "storage/payslips"),
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "erpdesk.db"
	}
	return filepath.Join(home, ".erpdesk.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("ERP_API_BASE_URL is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("ERP_REQUEST_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.LocalStorePath) == "" {
		return fmt.Errorf("ERP_LOCAL_STORE is required")
	}
	if c.Environment == "production" && c.JWTSecret == "dev-secret" {
		return fmt.Errorf("ERP_JWT_SECRET must be set to a strong value in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("ERP_TOKEN_TTL must be positive")
	}
	return nil
}
