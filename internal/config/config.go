package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       PostgresConfig
	Admin    AdminConfig
	Email    EmailConfig
	Razorpay RazorpayConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type AdminConfig struct {
	Key string
}

// EmailConfig selects the mail transport: Resend when ResendAPIKey is
// set, SMTP when Host is, otherwise notifications are disabled.
type EmailConfig struct {
	Host         string
	Port         int
	User         string
	Pass         string
	From         string
	To           string
	ResendAPIKey string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type NotifyConfig struct {
	Workers   int
	QueueSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "cupcakesandcrumbsco"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8080),
		},
		DB: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "cupcakes_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Admin: AdminConfig{
			Key: getEnv("ADMIN_KEY", "dev-admin-key"),
		},
		Email: EmailConfig{
			Host:         getEnv("EMAIL_HOST", ""),
			Port:         getEnvAsInt("EMAIL_PORT", 587),
			User:         getEnv("EMAIL_USER", ""),
			Pass:         getEnv("EMAIL_PASS", ""),
			From:         getEnv("EMAIL_FROM", ""),
			To:           getEnv("EMAIL_TO", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		},
		Razorpay: RazorpayConfig{
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		},
		Notify: NotifyConfig{
			Workers:   getEnvAsInt("NOTIFY_WORKERS", 1),
			QueueSize: getEnvAsInt("NOTIFY_QUEUE_SIZE", 64),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	// Email and Razorpay are optional; the payment and notification
	// paths degrade to configured-off behavior without them.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
