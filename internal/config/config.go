package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Host   HostConfig
	DB     DBConfig
	JWT    JWTConfig
	Auth   AuthConfig
	S3     S3Config
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// HostConfig holds building-model host settings.
type HostConfig struct {
	// EventTimeout bounds how long a caller waits for the host thread to
	// finish a queued callback.
	EventTimeout time.Duration `mapstructure:"event_timeout"`
	// ModelPath points at the JSON model document loaded in development
	// mode. Empty means an empty in-memory document.
	ModelPath string `mapstructure:"model_path"`
}

// DBConfig holds PostgreSQL connection settings for the command audit log.
type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// AuthConfig holds the automation client credentials. SecretHash is a bcrypt
// hash of the client secret; the plaintext never lives in config.
type AuthConfig struct {
	ClientID   string `mapstructure:"client_id"`
	SecretHash string `mapstructure:"secret_hash"`
}

// S3Config holds object storage settings for generated reports.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Prefix        string `mapstructure:"prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the REVOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REVOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Host defaults
	v.SetDefault("host.event_timeout", "10s")
	v.SetDefault("host.model_path", "")

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "revos")
	v.SetDefault("db.password", "revos_secret")
	v.SetDefault("db.name", "revos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "1h")
	v.SetDefault("jwt.issuer", "revos")

	// Auth defaults (no credentials; the token endpoint rejects everything
	// until a client is configured)
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.secret_hash", "")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "revos-reports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "reports")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "REVOS_SERVER_PORT",
		"server.read_timeout":  "REVOS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "REVOS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "REVOS_SERVER_ENVIRONMENT",
		"host.event_timeout":   "REVOS_HOST_EVENT_TIMEOUT",
		"host.model_path":      "REVOS_HOST_MODEL_PATH",
		"db.enabled":           "REVOS_DB_ENABLED",
		"db.host":              "REVOS_DB_HOST",
		"db.port":              "REVOS_DB_PORT",
		"db.user":              "REVOS_DB_USER",
		"db.password":          "REVOS_DB_PASSWORD",
		"db.name":              "REVOS_DB_NAME",
		"db.sslmode":           "REVOS_DB_SSLMODE",
		"db.max_open":          "REVOS_DB_MAX_OPEN",
		"db.max_idle":          "REVOS_DB_MAX_IDLE",
		"jwt.secret":           "REVOS_JWT_SECRET",
		"jwt.access_expiry":    "REVOS_JWT_ACCESS_EXPIRY",
		"jwt.issuer":           "REVOS_JWT_ISSUER",
		"auth.client_id":       "REVOS_AUTH_CLIENT_ID",
		"auth.secret_hash":     "REVOS_AUTH_SECRET_HASH",
		"s3.region":            "REVOS_S3_REGION",
		"s3.bucket":            "REVOS_S3_BUCKET",
		"s3.endpoint":          "REVOS_S3_ENDPOINT",
		"s3.access_key":        "REVOS_S3_ACCESS_KEY",
		"s3.secret_key":        "REVOS_S3_SECRET_KEY",
		"s3.prefix":            "REVOS_S3_PREFIX",
		"s3.presign_expiry":    "REVOS_S3_PRESIGN_EXPIRY",
		"log.level":            "REVOS_LOG_LEVEL",
		"log.format":           "REVOS_LOG_FORMAT",
		"cors.allowed_origins": "REVOS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if REVOS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("REVOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Host = HostConfig{
		EventTimeout: v.GetDuration("host.event_timeout"),
		ModelPath:    v.GetString("host.model_path"),
	}
	cfg.DB = DBConfig{
		Enabled:  v.GetBool("db.enabled"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Auth = AuthConfig{
		ClientID:   v.GetString("auth.client_id"),
		SecretHash: v.GetString("auth.secret_hash"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		Prefix:        v.GetString("s3.prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
