package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"NomadMatch"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Env      string `envconfig:"APP_ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"nomadmatch"`
		// Enabled turns on city like/dislike storage; without it the API serves matches only.
		Enabled bool `envconfig:"DB_ENABLED" default:"false"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Matcher struct {
		BaseURL    string        `envconfig:"MATCHER_BASE_URL" default:"http://localhost:8000"`
		Timeout    time.Duration `envconfig:"MATCHER_TIMEOUT" default:"0s"`
		NumResults int           `envconfig:"MATCHER_NUM_RESULTS" default:"15"`
		HealthTTL  time.Duration `envconfig:"MATCHER_HEALTH_TTL" default:"30s"`
	}

	Catalog struct {
		Path string `envconfig:"CATALOG_PATH"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	}

	TUI struct {
		LogFile string `envconfig:"TUI_LOG_FILE"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
