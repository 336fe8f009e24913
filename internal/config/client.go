package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Client is the configuration of the roster terminal client.
type Client struct {
	Env       string        `env:"ROSTER_ENV" env-default:"local"`
	ServerURL string        `env:"ROSTER_SERVER_URL" env-default:"http://localhost:8000"`
	StatusTTL time.Duration `env:"ROSTER_STATUS_TTL" env-default:"5s"`
	Timezone  string        `env:"ROSTER_TIMEZONE" env-default:"Local"`
}

func LoadClient() (*Client, error) {
	var cfg Client

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}

func (c *Client) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}
