package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	minBidAttempts = 1
	maxBidAttempts = 10
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Bid       BidConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BidConfig tunes the optimistic retry loop of bid placement.
type BidConfig struct {
	MaxAttempts     int           `envconfig:"BID_MAX_ATTEMPTS" default:"4"`
	RetryBase       time.Duration `envconfig:"BID_RETRY_BASE" default:"20ms"`
	RetryMax        time.Duration `envconfig:"BID_RETRY_MAX" default:"250ms"`
	StoreTimeout    time.Duration `envconfig:"BID_STORE_TIMEOUT" default:"3s"`
	RejectOwnerBids bool          `envconfig:"BID_REJECT_OWNER_BIDS" default:"false"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Channel  string `envconfig:"REDIS_CHANNEL" default:"auction_events"`
}

type SchedulerConfig struct {
	Enabled   bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	CloseSpec string `envconfig:"SCHEDULER_CLOSE_SPEC" default:"@every 30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BidConfig) Validate() error {
	var errList []error
	if c.MaxAttempts < minBidAttempts || c.MaxAttempts > maxBidAttempts {
		errList = append(errList, fmt.Errorf("BID_MAX_ATTEMPTS must be between %d and %d, got %d", minBidAttempts, maxBidAttempts, c.MaxAttempts))
	}
	if c.RetryBase < 0 || c.RetryMax < 0 {
		errList = append(errList, errors.New("BID_RETRY_BASE and BID_RETRY_MAX must not be negative"))
	}
	if c.StoreTimeout <= 0 {
		errList = append(errList, errors.New("BID_STORE_TIMEOUT must be positive"))
	}
	return errors.Join(errList...)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Bid.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid bid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Bid: BidConfig{
			MaxAttempts:  4,
			RetryBase:    time.Millisecond,
			RetryMax:     5 * time.Millisecond,
			StoreTimeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			Enabled: false,
			Channel: "auction_events",
		},
		Scheduler: SchedulerConfig{
			Enabled:   false,
			CloseSpec: "@every 30s",
		},
	}
}
