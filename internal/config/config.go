// AngelaMos | 2026
// config.go

package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	Auth      AuthConfig      `koanf:"auth"`
	Booking   BookingConfig   `koanf:"booking"`
	Razorpay  RazorpayConfig  `koanf:"razorpay"`
	Payment   PaymentConfig   `koanf:"payment"`
	SMTP      SMTPConfig      `koanf:"smtp"`
	Upload    UploadConfig    `koanf:"upload"`
	RabbitMQ  RabbitMQConfig  `koanf:"rabbitmq"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

type JWTConfig struct {
	PrivateKeyPath     string        `koanf:"private_key_path"`
	PublicKeyPath      string        `koanf:"public_key_path"`
	AccessTokenExpire  time.Duration `koanf:"access_token_expire"`
	RefreshTokenExpire time.Duration `koanf:"refresh_token_expire"`
	Issuer             string        `koanf:"issuer"`
	Audience           string        `koanf:"audience"`
}

// AuthConfig holds lifetimes for the single-use credential artifacts.
type AuthConfig struct {
	OTPExpire         time.Duration `koanf:"otp_expire"`
	OTPResendCooldown time.Duration `koanf:"otp_resend_cooldown"`
	ResetTokenExpire  time.Duration `koanf:"reset_token_expire"`
	ResetURL          string        `koanf:"reset_url"`
}

type BookingConfig struct {
	OpenHour    int `koanf:"open_hour"`
	CloseHour   int `koanf:"close_hour"`
	SlotMinutes int `koanf:"slot_minutes"`
}

type RazorpayConfig struct {
	KeyID         string `koanf:"key_id"`
	KeySecret     string `koanf:"key_secret"`
	WebhookSecret string `koanf:"webhook_secret"`
	Currency      string `koanf:"currency"`
}

// PaymentConfig seeds the runtime payment settings the first time they
// are read from redis.
type PaymentConfig struct {
	GlobalEnabled bool     `koanf:"global_enabled"`
	Gateways      []string `koanf:"gateways"`
	Methods       []string `koanf:"methods"`
}

type SMTPConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
	From     string        `koanf:"from"`
	FromName string        `koanf:"from_name"`
	UseSSL   bool          `koanf:"use_ssl"`
	Timeout  time.Duration `koanf:"timeout"`
}

func (s SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type UploadConfig struct {
	Dir            string        `koanf:"dir"`
	MaxSizeBytes   int64         `koanf:"max_size_bytes"`
	AllowedDomains []string      `koanf:"allowed_domains"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	FetchTimeout   time.Duration `koanf:"fetch_timeout"`
	MaxRedirects   int           `koanf:"max_redirects"`
}

type RabbitMQConfig struct {
	URL      string `koanf:"url"`
	Exchange string `koanf:"exchange"`
	Queue    string `koanf:"queue"`
	Prefetch int    `koanf:"prefetch"`
}

type RateLimitConfig struct {
	Requests     int           `koanf:"requests"`
	Window       time.Duration `koanf:"window"`
	Burst        int           `koanf:"burst"`
	AuthRequests int           `koanf:"auth_requests"`
	AuthBurst    int           `koanf:"auth_burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		cfg, loadErr = load(configPath)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Cricket Academy API",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "60s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"database.auto_migrate":       true,

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"jwt.access_token_expire":  "15m",
		"jwt.refresh_token_expire": "168h",
		"jwt.issuer":               "cricket-academy",
		"jwt.audience":             "cricket-academy-api",
		"jwt.private_key_path":     "keys/private.pem",
		"jwt.public_key_path":      "keys/public.pem",

		"auth.otp_expire":          "30m",
		"auth.otp_resend_cooldown": "60s",
		"auth.reset_token_expire":  "30m",
		"auth.reset_url":           "http://localhost:3000/reset-password",

		"booking.open_hour":    9,
		"booking.close_hour":   18,
		"booking.slot_minutes": 60,

		"razorpay.currency": "INR",

		"payment.global_enabled": true,
		"payment.gateways":       []string{"RAZORPAY"},
		"payment.methods":        []string{"CASH", "CARD_RAZORPAY"},

		"smtp.port":      587,
		"smtp.from_name": "Cricket Academy",
		"smtp.timeout":   "30s",

		"upload.dir":            "uploads",
		"upload.max_size_bytes": 20 * 1024 * 1024,
		"upload.allowed_domains": []string{
			"drive.google.com",
			"docs.google.com",
			"drive.usercontent.google.com",
			"googleusercontent.com",
			"storage.googleapis.com",
			"ibb.co",
			"localhost",
			"127.0.0.1",
		},
		"upload.connect_timeout": "15s",
		"upload.fetch_timeout":   "25s",
		"upload.max_redirects":   5,

		"rabbitmq.exchange": "academy.events",
		"rabbitmq.queue":    "academy.notifications",
		"rabbitmq.prefetch": 8,

		"rate_limit.requests":      100,
		"rate_limit.window":        "1m",
		"rate_limit.burst":         20,
		"rate_limit.auth_requests": 10,
		"rate_limit.auth_burst":    5,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"X-Razorpay-Signature",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "cricket-academy-api",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_URL":                "database.url",
	"DATABASE_AUTO_MIGRATE":       "database.auto_migrate",
	"REDIS_URL":                   "redis.url",
	"RABBITMQ_URL":                "rabbitmq.url",
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"JWT_PRIVATE_KEY_PATH":        "jwt.private_key_path",
	"JWT_PUBLIC_KEY_PATH":         "jwt.public_key_path",
	"JWT_ACCESS_TOKEN_EXPIRE":     "jwt.access_token_expire",
	"JWT_REFRESH_TOKEN_EXPIRE":    "jwt.refresh_token_expire",
	"JWT_ISSUER":                  "jwt.issuer",
	"JWT_AUDIENCE":                "jwt.audience",
	"PASSWORD_RESET_URL":          "auth.reset_url",
	"RAZORPAY_KEY_ID":             "razorpay.key_id",
	"RAZORPAY_KEY_SECRET":         "razorpay.key_secret",
	"RAZORPAY_WEBHOOK_SECRET":     "razorpay.webhook_secret",
	"RAZORPAY_CURRENCY":           "razorpay.currency",
	"SMTP_HOST":                   "smtp.host",
	"SMTP_PORT":                   "smtp.port",
	"SMTP_USERNAME":               "smtp.username",
	"SMTP_PASSWORD":               "smtp.password",
	"SMTP_FROM":                   "smtp.from",
	"SMTP_USE_SSL":                "smtp.use_ssl",
	"UPLOAD_DIR":                  "upload.dir",
	"UPLOAD_MAX_SIZE_BYTES":       "upload.max_size_bytes",
	"RATE_LIMIT_REQUESTS":         "rate_limit.requests",
	"RATE_LIMIT_WINDOW":           "rate_limit.window",
	"RATE_LIMIT_BURST":            "rate_limit.burst",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.JWT.PrivateKeyPath == "" {
		return fmt.Errorf("JWT_PRIVATE_KEY_PATH is required")
	}

	if c.JWT.PublicKeyPath == "" {
		return fmt.Errorf("JWT_PUBLIC_KEY_PATH is required")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
		if c.Razorpay.KeyID == "" || c.Razorpay.KeySecret == "" {
			return fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required in production")
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if c.Booking.OpenHour < 0 || c.Booking.CloseHour > 24 ||
		c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("booking hours must satisfy 0 <= open_hour < close_hour <= 24")
	}

	if c.Booking.SlotMinutes <= 0 {
		return fmt.Errorf("booking.slot_minutes must be positive")
	}

	if c.Upload.MaxSizeBytes <= 0 {
		return fmt.Errorf("upload.max_size_bytes must be positive")
	}

	c.Razorpay.Currency = strings.ToUpper(c.Razorpay.Currency)

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
