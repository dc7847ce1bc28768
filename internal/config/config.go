package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Workers struct {
		NotificationRetentionDays int    `yaml:"notification_retention_days"`
		CleanupSchedule           string `yaml:"cleanup_schedule"`
		ExpirySchedule            string `yaml:"expiry_schedule"`
	} `yaml:"workers"`
}

// Load reads configuration from a YAML file, falling back to environment
// variables when DATABASE_URL is set (test and container deployments).
// A .env file next to the binary is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.applyDefaults()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
		cfg.Server.Env = getEnv("SERVER_ENV", "development")
		cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
		cfg.Server.Port = getEnvInt("SERVER_PORT", 4000)
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = getEnvInt("JWT_TTL", 60)
		if cfg.JWT.Secret == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set when configuring from environment")
		}
		return &cfg, nil
	}

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.url is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 4000
	c.Server.Env = "development"
	c.JWT.TTL = 60
	c.Workers.NotificationRetentionDays = 30
	c.Workers.CleanupSchedule = "0 3 * * *"
	c.Workers.ExpirySchedule = "@hourly"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
