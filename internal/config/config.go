// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	DBPath     string `env:"DB_PATH" envDefault:"./data/harvin.db"`
	GalleryDir string `env:"GALLERY_DIR" envDefault:"./data/gallery"`

	// PublicPhotos is the fixed preview subset shown to anonymous visitors,
	// as file names under the gallery media route.
	PublicPhotos []string `env:"PUBLIC_PHOTOS" envDefault:"photo1.jpg,photo2.jpg,photo3.jpg,photo4.jpg"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Bootstrap admin account. Both must be set for seeding to run.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Budget tracker parameters.
	BudgetStart string  `env:"BUDGET_START" envDefault:"2026-01-22"`
	DailyBudget float64 `env:"DAILY_BUDGET" envDefault:"7500"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// StartDate returns the budget start instant: local midnight of BUDGET_START.
func (c *Config) StartDate() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", c.BudgetStart, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid BUDGET_START %q: %w", c.BudgetStart, err)
	}
	return t, nil
}
