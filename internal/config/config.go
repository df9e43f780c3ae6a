package config

import (
	"fmt"
	"os"
	"strconv"
)

// Placeholder Razorpay credentials used when the real ones are not configured.
// They keep the server bootable for local development but no gateway call
// made with them will be accepted by Razorpay.
const (
	DefaultRazorpayKeyID     = "rzp_test_1234567890"
	DefaultRazorpayKeySecret = "test_secret_key"
)

type Config struct {
	DBConfig struct {
		DBHost     string
		DBPort     string
		DBUser     string
		DBPassword string
		DBName     string
		DBSSLMode  string
	}

	RazorpayKeyID     string
	RazorpayKeySecret string

	ServerPort     int
	MigrationsPath string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.DBConfig.DBHost = getEnvOrDefault("DB_HOST", "localhost")
	cfg.DBConfig.DBPort = getEnvOrDefault("DB_PORT", "5432")
	cfg.DBConfig.DBUser = getEnvOrDefault("DB_USER", "postgres")
	cfg.DBConfig.DBPassword = getEnvOrDefault("DB_PASSWORD", "postgres")
	cfg.DBConfig.DBName = getEnvOrDefault("DB_NAME", "earthly_liquids")
	cfg.DBConfig.DBSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	cfg.RazorpayKeyID = getEnvOrDefault("RAZORPAY_KEY_ID", DefaultRazorpayKeyID)
	cfg.RazorpayKeySecret = getEnvOrDefault("RAZORPAY_KEY_SECRET", DefaultRazorpayKeySecret)

	serverPortStr := getEnvOrDefault("SERVER_PORT", "8001")
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", serverPortStr, err)
	}
	cfg.ServerPort = serverPort

	cfg.MigrationsPath = getEnvOrDefault("MIGRATIONS_PATH", "file://migrations")

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// UsingDemoCredentials reports whether either Razorpay credential is still a
// placeholder, so startup can warn loudly instead of failing silently later.
func (c *Config) UsingDemoCredentials() bool {
	return c.RazorpayKeyID == DefaultRazorpayKeyID || c.RazorpayKeySecret == DefaultRazorpayKeySecret
}

func (c *Config) GetDBMigrationConnectionString() string {
	return fmt.Sprintf("%s:%s@%s:%s/%s?sslmode=%s",
		c.DBConfig.DBUser,
		c.DBConfig.DBPassword,
		c.DBConfig.DBHost,
		c.DBConfig.DBPort,
		c.DBConfig.DBName,
		c.DBConfig.DBSSLMode,
	)
}
