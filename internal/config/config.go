package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		LogLevel string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	HTTP struct {
		Addr string
	}

	AMQP struct {
		URL      string
		Exchange string
	}

	Auth struct {
		JWTSecret string
	}

	Quota struct {
		Timezone  string
		BaseLimit int
	}

	Reminder struct {
		MinDays int
	}
}

var defaults = map[string]any{
	"APP_ENV":           "production",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "text",
	"LOG_COMPONENT":     "grpc_server",
	"LOG_SOURCE":        false,
	"DB_DRIVER":         "mysql",
	"DB_HOST":           "localhost",
	"DB_PORT":           "3306",
	"DB_USER":           "root",
	"DB_PASSWORD":       "root",
	"DB_NAME":           "interviews",
	"DB_LOG_LEVEL":      "warn",
	"REDIS_ADDR":        "localhost:6379",
	"REDIS_PASSWORD":    "",
	"REDIS_DB":          0,
	"GRPC_HOST":         "127.0.0.1",
	"GRPC_PORT":         "50051",
	"HTTP_ADDR":         ":8080",
	"AMQP_URL":          "",
	"AMQP_EXCHANGE":     "interview.events",
	"AUTH_JWT_SECRET":   "",
	"QUOTA_TIMEZONE":    "Asia/Seoul",
	"QUOTA_BASE_LIMIT":  4,
	"REMINDER_MIN_DAYS": 3,
}

// New builds the config from defaults, an optional CONFIG_FILE, a local .env
// file and the process environment (highest precedence).
func New() *Config {
	// .env is optional; real env vars are never overridden by it.
	_ = godotenv.Load()

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if file := strings.TrimSpace(os.Getenv("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "config: failed to read %s: %v\n", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.App.ENV = v.GetString("APP_ENV")

	// Logger
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.Format = v.GetString("LOG_FORMAT")
	cfg.Log.Component = v.GetString("LOG_COMPONENT")
	cfg.Log.Source = v.GetBool("LOG_SOURCE")

	// Database
	cfg.DB.Driver = strings.ToLower(v.GetString("DB_DRIVER"))
	cfg.DB.LogLevel = v.GetString("DB_LOG_LEVEL")
	cfg.DB.Host = v.GetString("DB_HOST")
	cfg.DB.Port = v.GetString("DB_PORT")
	cfg.DB.User = v.GetString("DB_USER")
	cfg.DB.Password = v.GetString("DB_PASSWORD")
	cfg.DB.Name = v.GetString("DB_NAME")
	cfg.DB.DSN = firstNonEmpty(v.GetString("DB_DSN"), v.GetString("MYSQL_DSN"))
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = buildDSN(cfg)
	}

	// Redis
	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")

	// gRPC / HTTP
	cfg.GRPC.Host = v.GetString("GRPC_HOST")
	cfg.GRPC.Port = v.GetString("GRPC_PORT")
	cfg.HTTP.Addr = v.GetString("HTTP_ADDR")

	// Events
	cfg.AMQP.URL = v.GetString("AMQP_URL")
	cfg.AMQP.Exchange = v.GetString("AMQP_EXCHANGE")

	cfg.Auth.JWTSecret = v.GetString("AUTH_JWT_SECRET")

	// Quota + reminders
	cfg.Quota.Timezone = v.GetString("QUOTA_TIMEZONE")
	cfg.Quota.BaseLimit = v.GetInt("QUOTA_BASE_LIMIT")
	if cfg.Quota.BaseLimit < 0 {
		cfg.Quota.BaseLimit = 0
	}
	cfg.Reminder.MinDays = v.GetInt("REMINDER_MIN_DAYS")

	return cfg
}

// ReminderAge is the minimum age of an accepted match before it is surfaced
// as a reminder.
func (c *Config) ReminderAge() time.Duration {
	return time.Duration(c.Reminder.MinDays) * 24 * time.Hour
}

func buildDSN(cfg *Config) string {
	switch cfg.DB.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port,
		)
	case "sqlite":
		return cfg.DB.Name + ".db"
	default:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
