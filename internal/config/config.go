package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Status       StatusConfig       `yaml:"status"`
	Notification NotificationConfig `yaml:"notification"`
	Upload       UploadConfig       `yaml:"upload"`
	Storage      StorageConfig      `yaml:"storage"`
	Queue        QueueConfig        `yaml:"queue"`
	Events       EventsConfig       `yaml:"events"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds the settings used to verify tokens minted by the
// external identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"scanreview-idp"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-caller request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"600"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// StatusConfig holds the polling contract shared by the server-side waiter
// and the client package.
type StatusConfig struct {
	PollInterval         time.Duration `yaml:"poll_interval"         env:"STATUS_POLL_INTERVAL"         env-default:"3s"`
	MaxAttempts          int           `yaml:"max_attempts"          env:"STATUS_MAX_ATTEMPTS"          env-default:"400"`
	ChatInterval         time.Duration `yaml:"chat_interval"         env:"STATUS_CHAT_INTERVAL"         env-default:"5s"`
	NotificationInterval time.Duration `yaml:"notification_interval" env:"STATUS_NOTIFICATION_INTERVAL" env-default:"30s"`
}

// NotificationConfig holds fan-out and retention settings.
type NotificationConfig struct {
	QueueSize     int `yaml:"queue_size"     env:"NOTIFICATION_QUEUE_SIZE"     env-default:"1024"`
	Workers       int `yaml:"workers"        env:"NOTIFICATION_WORKERS"        env-default:"4"`
	RetentionDays int `yaml:"retention_days" env:"NOTIFICATION_RETENTION_DAYS" env-default:"90"`
	DefaultLimit  int `yaml:"default_limit"  env:"NOTIFICATION_DEFAULT_LIMIT"  env-default:"50"`
}

// UploadConfig holds upload acceptance rules.
type UploadConfig struct {
	AllowedExtensions string `yaml:"allowed_extensions" env:"UPLOAD_ALLOWED_EXTENSIONS" env-default:".zip,.npy"`
	MaxBytes          int64  `yaml:"max_bytes"          env:"UPLOAD_MAX_BYTES"          env-default:"2147483648"`
}

// Extensions returns the normalized allow-list (lowercase, leading dot).
func (c UploadConfig) Extensions() []string {
	var out []string
	for _, e := range strings.Split(c.AllowedExtensions, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// StorageConfig holds object storage settings for raw scans.
// An empty Bucket disables uploads through this service.
type StorageConfig struct {
	Bucket       string `yaml:"bucket"         env:"STORAGE_BUCKET"`
	Region       string `yaml:"region"         env:"STORAGE_REGION"         env-default:"us-east-1"`
	Endpoint     string `yaml:"endpoint"       env:"STORAGE_ENDPOINT"`
	UsePathStyle bool   `yaml:"use_path_style" env:"STORAGE_USE_PATH_STYLE" env-default:"true"`
}

// QueueConfig holds the analysis job queue. An empty QueueName disables
// RequestAnalysis.
type QueueConfig struct {
	QueueName string `yaml:"queue_name" env:"QUEUE_NAME"`
	QueueURL  string `yaml:"queue_url"  env:"QUEUE_URL"`
	Region    string `yaml:"region"     env:"QUEUE_REGION"   env-default:"us-east-1"`
	Endpoint  string `yaml:"endpoint"   env:"QUEUE_ENDPOINT"`
}

// EventsConfig holds the lifecycle event stream. Empty Brokers disables it.
type EventsConfig struct {
	Brokers      string        `yaml:"brokers"       env:"EVENTS_BROKERS"`
	Topic        string        `yaml:"topic"         env:"EVENTS_TOPIC"         env-default:"scan-lifecycle"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"EVENTS_WRITE_TIMEOUT" env-default:"5s"`
}

// BrokerList splits Brokers on commas.
func (c EventsConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
