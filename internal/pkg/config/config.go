package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (DB connection, port)
// - default: values common across all environments (timeouts, policy constants)
// Secrets that gate individual invocations (CRON_SECRET, RESEND_API_KEY) are
// intentionally not required here: their absence is handled per request, not at
// process start.
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Cron     CronConfig
	Resend   ResendConfig
	Dispatch DispatchConfig
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
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"require"`
}

type CORSConfig struct {
	AllowOrigins  []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods  []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders  []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Authorization,X-Client-Info,Apikey,Content-Type,X-Cron-Secret"`
	ExposeHeaders []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	MaxAge        time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// CronConfig guards the dispatch trigger. An empty secret disables the guard
// entirely, matching environments where the endpoint is not publicly routable.
type CronConfig struct {
	Secret string `envconfig:"CRON_SECRET"`
}

type ResendConfig struct {
	APIKey      string        `envconfig:"RESEND_API_KEY"`
	FromAddress string        `envconfig:"RESEND_FROM_ADDRESS" default:"onboarding@resend.dev"`
	FromLabel   string        `envconfig:"RESEND_FROM_LABEL" default:"PayPing"`
	SendTimeout time.Duration `envconfig:"RESEND_SEND_TIMEOUT" default:"10s"`
}

// DispatchConfig carries the dispatch policy constants. The defaults are the
// production values; they are configurable because neither has a derivation
// beyond "bounded fan-out per run".
type DispatchConfig struct {
	MaxAttempts int           `envconfig:"DISPATCH_MAX_ATTEMPTS" default:"5"`
	BatchLimit  int           `envconfig:"DISPATCH_BATCH_LIMIT" default:"20"`
	RunTimeout  time.Duration `envconfig:"DISPATCH_RUN_TIMEOUT" default:"55s"`
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", "X-Cron-Secret"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Resend: ResendConfig{
			APIKey:      "re_test_key",
			FromAddress: "onboarding@resend.dev",
			FromLabel:   "PayPing",
			SendTimeout: time.Second,
		},
		Dispatch: DispatchConfig{
			MaxAttempts: 5,
			BatchLimit:  20,
			RunTimeout:  10 * time.Second,
		},
	}
}
