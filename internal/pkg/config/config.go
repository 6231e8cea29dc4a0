package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Store     StoreConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DBConfig struct {
	Driver    string `envconfig:"DB_DRIVER" default:"postgres"`
	Host      string `envconfig:"DB_HOST" default:"localhost"`
	Port      string `envconfig:"DB_PORT" default:"5432"`
	User      string `envconfig:"DB_USER"`
	Password  string `envconfig:"DB_PASSWORD"`
	DBName    string `envconfig:"DB_NAME"`
	SSLMode   string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone  string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	TxRetries int    `envconfig:"DB_TX_RETRIES" default:"0"`
}

// Redis is optional. An empty address disables the customer summary cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the external identity provider with a shared HS256 secret.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type StoreConfig struct {
	Timeout time.Duration `envconfig:"STORE_TIMEOUT" default:"15s"`
	// Upper bound on concurrent per-row lookups in list fan-outs.
	FanOut int `envconfig:"STORE_FAN_OUT" default:"8"`
}

type QueryConfig struct {
	DefaultPageSize int `envconfig:"QUERY_DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize     int `envconfig:"QUERY_MAX_PAGE_SIZE" default:"100"`
}

type RateLimitConfig struct {
	PerSecond float64       `envconfig:"RATE_LIMIT_PER_SECOND" default:"5"`
	Burst     int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	IdleTTL   time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Query.DefaultPageSize < 1 || c.Query.MaxPageSize < c.Query.DefaultPageSize {
		return fmt.Errorf("invalid page size bounds: default=%d max=%d", c.Query.DefaultPageSize, c.Query.MaxPageSize)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
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
		Store: StoreConfig{
			Timeout: 5 * time.Second,
			FanOut:  4,
		},
		Query: QueryConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
		RateLimit: RateLimitConfig{
			PerSecond: 1000,
			Burst:     1000,
			IdleTTL:   time.Minute,
		},
	}
}
