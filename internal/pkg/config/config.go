package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   processor/storage credentials), security settings
// - default: Values common across all environments (timeouts, retry budgets)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Storage StorageConfig
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

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PaymentConfig drives the external payment processor client.
// MaxTransportRetries bounds transport-level retries only; a charge is never
// re-issued as a new authorization.
type PaymentConfig struct {
	StripeSecretKey     string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	MaxTransportRetries int           `envconfig:"PAYMENT_MAX_TRANSPORT_RETRIES" default:"3"`
	RetryBackoff        time.Duration `envconfig:"PAYMENT_RETRY_BACKOFF" default:"200ms"`
}

type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:""`
	Region          string `envconfig:"STORAGE_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_ACCESS_KEY" required:"true"`
	Bucket          string `envconfig:"STORAGE_BUCKET" default:"property-images"`
	PublicBaseURL   string `envconfig:"STORAGE_PUBLIC_BASE_URL" required:"true"`
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
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Payment: PaymentConfig{
			StripeSecretKey:     "sk_test_dummy",
			MaxTransportRetries: 1,
			RetryBackoff:        time.Millisecond,
		},
		Storage: StorageConfig{
			Region:        "us-east-1",
			Bucket:        "property-images-test",
			PublicBaseURL: "http://localhost:9000/property-images-test",
		},
	}
}
