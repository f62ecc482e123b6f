package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (slot grid, cache TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Slots   SlotGridConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Webhook WebhookConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Disabled bool   `envconfig:"REDIS_DISABLED" default:"false"`
}

// TTLs follow the read frequency of each dataset: reference data changes
// rarely, availability changes on every booking.
type CacheConfig struct {
	ServicesTTL     time.Duration `envconfig:"CACHE_SERVICES_TTL" default:"1h"`
	EmployeesTTL    time.Duration `envconfig:"CACHE_EMPLOYEES_TTL" default:"30m"`
	AvailabilityTTL time.Duration `envconfig:"CACHE_AVAILABILITY_TTL" default:"5m"`
}

// SlotGridConfig is the single slot-grid policy shared by every availability
// and booking call site. Bounds are inclusive time-of-day strings.
type SlotGridConfig struct {
	Open  string        `envconfig:"SLOT_OPEN" default:"08:00"`
	Close string        `envconfig:"SLOT_CLOSE" default:"18:30"`
	Step  time.Duration `envconfig:"SLOT_STEP" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PaymentConfig struct {
	OmisePublicKey string `envconfig:"OMISE_PUBLIC_KEY" default:""`
	OmiseSecretKey string `envconfig:"OMISE_SECRET_KEY" default:""`
}

type WebhookConfig struct {
	BookingURL string        `envconfig:"BOOKING_WEBHOOK_URL" default:""`
	Timeout    time.Duration `envconfig:"BOOKING_WEBHOOK_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Disabled: true,
		},
		Cache: CacheConfig{
			ServicesTTL:     time.Hour,
			EmployeesTTL:    30 * time.Minute,
			AvailabilityTTL: 5 * time.Minute,
		},
		Slots: SlotGridConfig{
			Open:  "08:00",
			Close: "18:30",
			Step:  30 * time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
