package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, upstream URL)
// - default: Values common across all environments (timezone, timeout, cron schedules)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Upstream  UpstreamConfig
	Scheduler SchedulerConfig
	Booking   BookingConfig
	Pricing   PricingConfig
	CORS      CORSConfig
	Log       LogConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	SnapshotTTL time.Duration `envconfig:"REDIS_SNAPSHOT_TTL" default:"30s"`
}

// UpstreamConfig points at the Warenwirtschaft REST backend.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	APIKey  string        `envconfig:"UPSTREAM_API_KEY" default:""`
}

type SchedulerConfig struct {
	Enabled          bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Location         string `envconfig:"SCHEDULER_LOCATION" default:"Europe/Berlin"`
	RefreshSnapshot  string `envconfig:"SCHEDULER_REFRESH_SNAPSHOT" default:"0 */1 * * * *"`
	PurgeSubmissions string `envconfig:"SCHEDULER_PURGE_SUBMISSIONS" default:"0 30 3 * * *"`
}

type BookingConfig struct {
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	RecentLimit    int           `envconfig:"BOOKING_RECENT_LIMIT" default:"50"`
	MaxRangeDays   int           `envconfig:"BOOKING_MAX_RANGE_DAYS" default:"366"`
}

type PricingConfig struct {
	Currency string `envconfig:"PRICING_CURRENCY" default:"EUR"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file before the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

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
			TimeZone: "Europe/Berlin",
			MaxConns: 4,
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			SnapshotTTL: 30 * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Enabled:          false,
			Location:         "UTC",
			RefreshSnapshot:  "0 */1 * * * *",
			PurgeSubmissions: "0 30 3 * * *",
		},
		Booking: BookingConfig{
			IdempotencyTTL: 24 * time.Hour,
			RecentLimit:    50,
			MaxRangeDays:   366,
		},
		Pricing: PricingConfig{
			Currency: "EUR",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
	}
}
