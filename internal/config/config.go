// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lmoreno/weekendly/internal/plan"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Places   PlacesConfig   `toml:"places"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds the per-day placement windows.
type ScheduleConfig struct {
	SaturdayStartHour int `toml:"saturday_start_hour"`
	SaturdayEndHour   int `toml:"saturday_end_hour"`
	SundayStartHour   int `toml:"sunday_start_hour"`
	SundayEndHour     int `toml:"sunday_end_hour"`
}

// PlacesConfig holds Geoapify settings for nearby place lookups.
type PlacesConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"` // empty uses the public endpoint
	RadiusM int    `toml:"radius_m"` // default search radius in meters
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Theme   string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
	NoColor bool   `toml:"no_color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			SaturdayStartHour: 9,
			SaturdayEndHour:   21,
			SundayStartHour:   9,
			SundayEndHour:     22,
		},
		Places: PlacesConfig{
			RadiusM: 5000,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weekendly.db"
	}
	return filepath.Join(home, ".local", "share", "weekendly", "weekendly.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekendly", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEEKENDLY_SATURDAY_START"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Schedule.SaturdayStartHour)
	}
	if v := os.Getenv("WEEKENDLY_SATURDAY_END"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Schedule.SaturdayEndHour)
	}
	if v := os.Getenv("WEEKENDLY_SUNDAY_START"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Schedule.SundayStartHour)
	}
	if v := os.Getenv("WEEKENDLY_SUNDAY_END"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Schedule.SundayEndHour)
	}

	if v := os.Getenv("WEEKENDLY_GEOAPIFY_API_KEY"); v != "" {
		cfg.Places.APIKey = v
	}
	if v := os.Getenv("WEEKENDLY_GEOAPIFY_BASE_URL"); v != "" {
		cfg.Places.BaseURL = v
	}

	if v := os.Getenv("WEEKENDLY_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("WEEKENDLY_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.TimeBounds().Saturday.Validate(); err != nil {
		return fmt.Errorf("saturday window: %w", err)
	}
	if err := c.TimeBounds().Sunday.Validate(); err != nil {
		return fmt.Errorf("sunday window: %w", err)
	}
	if c.Places.RadiusM < 0 {
		return errors.New("radius_m cannot be negative")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// TimeBounds converts the schedule config into the planner's bounds pair.
func (c *Config) TimeBounds() plan.TimeBounds {
	return plan.TimeBounds{
		Saturday: plan.Bounds{StartHour: c.Schedule.SaturdayStartHour, EndHour: c.Schedule.SaturdayEndHour},
		Sunday:   plan.Bounds{StartHour: c.Schedule.SundayStartHour, EndHour: c.Schedule.SundayEndHour},
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
