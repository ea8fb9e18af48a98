package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
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
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Payment   PaymentConfig
	Credit    CreditConfig
	Poll      PollConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AMQP      AMQPConfig
	Outbox    OutboxConfig
	Sweeper   SweeperConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port           string `envconfig:"PORT" required:"true"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,Retry-After,X-RateLimit-Remaining"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PaymentConfig points at the hosted-checkout provider.
type PaymentConfig struct {
	APIURL       string        `envconfig:"PAYMENT_API_URL" default:"https://api.sumup.com/v0.1"`
	APIKey       string        `envconfig:"PAYMENT_API_KEY" required:"true"`
	MerchantCode string        `envconfig:"PAYMENT_MERCHANT_CODE" required:"true"`
	AppURL       string        `envconfig:"APP_URL" default:"http://localhost:3000"`
	Currency     string        `envconfig:"PAYMENT_CURRENCY" default:"GBP"`
	Description  string        `envconfig:"PAYMENT_DESCRIPTION" default:"Session Booking"`
	Timeout      time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	ProviderName string        `envconfig:"PAYMENT_PROVIDER_NAME" default:"sumup"`
}

type CreditConfig struct {
	ExpirationMonths       int    `envconfig:"CREDIT_EXPIRATION_MONTHS" default:"12"`
	DefaultSessionPrice    int64  `envconfig:"CREDIT_DEFAULT_SESSION_PRICE_MINOR" default:"1500"`
	CatalogWindowDays      int    `envconfig:"CATALOG_WINDOW_DAYS" default:"60"`
	ExpiringSoonWindowDays int    `envconfig:"CREDIT_EXPIRING_SOON_DAYS" default:"30"`
	RecentUsageLimit       int32  `envconfig:"CREDIT_RECENT_USAGE_LIMIT" default:"10"`
	CatalogTimeZone        string `envconfig:"CATALOG_TIMEZONE" default:"Europe/London"`
}

// PollConfig bounds the server-side settlement wait.
type PollConfig struct {
	Interval    time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	MaxAttempts int           `envconfig:"POLL_MAX_ATTEMPTS" default:"15"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"5"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"10s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"gym.events"`
}

type OutboxConfig struct {
	Interval    time.Duration `envconfig:"OUTBOX_INTERVAL" default:"5s"`
	BatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

// SweeperConfig drives server-side reconciliation of stale PENDING orders.
type SweeperConfig struct {
	Enabled   bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"SWEEPER_INTERVAL" default:"1m"`
	MinAge    time.Duration `envconfig:"SWEEPER_MIN_AGE" default:"2m"`
	MaxAge    time.Duration `envconfig:"SWEEPER_MAX_AGE" default:"48h"`
	BatchSize int32         `envconfig:"SWEEPER_BATCH_SIZE" default:"25"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"gym-booking"`
	Environment  string `envconfig:"ENV" default:"dev"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// .env is optional; real environment variables win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:           "8889", // Test port
			MigrationsPath: "file://migrations",
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
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Payment: PaymentConfig{
			APIURL:       "http://localhost:0",
			APIKey:       "test-api-key",
			MerchantCode: "MTEST",
			AppURL:       "http://localhost:3000",
			Currency:     "GBP",
			Description:  "Session Booking",
			Timeout:      5 * time.Second,
			ProviderName: "sumup",
		},
		Credit: CreditConfig{
			ExpirationMonths:       12,
			DefaultSessionPrice:    1500,
			CatalogWindowDays:      60,
			ExpiringSoonWindowDays: 30,
			RecentUsageLimit:       10,
			CatalogTimeZone:        "UTC",
		},
		Poll: PollConfig{
			Interval:    10 * time.Millisecond,
			MaxAttempts: 3,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Outbox: OutboxConfig{
			Interval:    time.Second,
			BatchSize:   50,
			MaxAttempts: 10,
		},
		Sweeper: SweeperConfig{
			Enabled: false,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "gym-booking-test",
			Environment: "test",
		},
	}
}
