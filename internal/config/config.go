package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds environment-driven configuration.
type Config struct {
	OZO struct {
		URL string
	}
	User struct {
		ID       string
		Password string // secret: must never reach a log line
	}
	Browser struct {
		Headless bool
	}
}

// Load reads configuration from environment variables. Every value is
// required; a missing one fails the run before any page is touched.
func Load() (Config, error) {
	var cfg Config

	cfg.OZO.URL = os.Getenv("OZO_URL")
	if cfg.OZO.URL == "" {
		return cfg, errors.New("OZO_URL is required")
	}

	cfg.User.ID = os.Getenv("USER_ID")
	if cfg.User.ID == "" {
		return cfg, errors.New("USER_ID is required")
	}

	cfg.User.Password = os.Getenv("USER_PASSWORD")
	if cfg.User.Password == "" {
		return cfg, errors.New("USER_PASSWORD is required")
	}

	headless := os.Getenv("BROWSER_IS_HEADLESS")
	if headless == "" {
		return cfg, errors.New("BROWSER_IS_HEADLESS is required")
	}
	v, err := strconv.ParseBool(headless)
	if err != nil {
		return cfg, errors.New("BROWSER_IS_HEADLESS must be a boolean")
	}
	cfg.Browser.Headless = v

	return cfg, nil
}
