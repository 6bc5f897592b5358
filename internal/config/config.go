package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port    string
	AppName string
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql or sqlite
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
	LogLevel string // silent, error, warn, info
}

type AuthConfig struct {
	Required           bool
	JWTSecret          string
	JWTExpirationHours int
	AdminEmail         string
	AdminPassword      string
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from the environment. Call godotenv.Load first to
// pick up a local .env file.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_NAME", "Sales REST v1.0")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "sales")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("JWT_EXPIRATION_HOURS", 24)
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("SERVICE_NAME", "go-sales-rest")

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			AppName: v.GetString("APP_NAME"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			TimeZone: v.GetString("DB_TIMEZONE"),
			LogLevel: strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		},
		Auth: AuthConfig{
			Required:           v.GetBool("AUTH_REQUIRED"),
			JWTSecret:          v.GetString("JWT_SECRET"),
			JWTExpirationHours: v.GetInt("JWT_EXPIRATION_HOURS"),
			AdminEmail:         v.GetString("ADMIN_EMAIL"),
			AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  v.GetString("SERVICE_NAME"),
		},
	}

	if cfg.Auth.Required && cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set when AUTH_REQUIRED=true")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using development secret")
		cfg.Auth.JWTSecret = "dev-secret-change-in-production"
	}
	if cfg.Auth.JWTExpirationHours <= 0 {
		cfg.Auth.JWTExpirationHours = 24
	}

	return cfg
}
