package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Debug      bool       `yaml:"debug" env:"DEBUG"`
	Limiter    Limiter    `yaml:"limiter"`
	Server     Server     `yaml:"server"`
	CORS       CORS       `yaml:"cors"`
	Validation Validation `yaml:"validation"`
	Storage    Storage    `yaml:"storage"`
	Metrics    Metrics    `yaml:"metrics"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"1234"`
	Host string `yaml:"host" env:"HOST" env-default:""`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"2s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"2s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5500,https://movies.com,http://midu.dev"`
}

// Validation holds the accepted release year range. The ceiling is fixed
// rather than derived from the clock.
type Validation struct {
	MinYear int `yaml:"min_year" env-default:"1900"`
	MaxYear int `yaml:"max_year" env-default:"2024"`
}

type Storage struct {
	// SeedPath points to a JSON array of movies. Empty means the bundled dataset.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`
}

type Metrics struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED"`
}

// MustLoad reads configPath and applies env overrides on top of it. When the
// file does not exist the config is built from the environment alone.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(configPath); configPath == "" || os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading config from env: %w", err)
		}
		return &cfg, cfg.validate()
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Validation.MinYear > c.Validation.MaxYear {
		return fmt.Errorf("validation.min_year (%d) is greater than validation.max_year (%d)",
			c.Validation.MinYear, c.Validation.MaxYear)
	}
	return nil
}
