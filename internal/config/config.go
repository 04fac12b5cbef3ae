package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Rates holds engine rate multipliers for kill rewards.
type Rates struct {
	XP          float64 `yaml:"xp"`
	ClassPoints float64 `yaml:"class_points"`
}

// DefaultRates returns Rates with x1 multipliers.
func DefaultRates() Rates {
	return Rates{
		XP:          1.0,
		ClassPoints: 1.0,
	}
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Playtest holds the AI-playtest driver knobs.
type Playtest struct {
	// Encounters is how many isolated encounters run concurrently.
	Encounters int `yaml:"encounters"`
	// MaxRounds caps a single encounter before it is called a draw.
	MaxRounds int `yaml:"max_rounds"`
	// Persist saves each surviving character's progression to the database.
	Persist bool `yaml:"persist"`
}

// Engine holds all configuration for the engine binaries.
type Engine struct {
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	Rates    Rates          `yaml:"rates"`
	Playtest Playtest       `yaml:"playtest"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "ruin",
			Password: "ruin",
			DBName:   "ruin",
			SSLMode:  "disable",
		},
		Rates: DefaultRates(),
		Playtest: Playtest{
			Encounters: 4,
			MaxRounds:  50,
			Persist:    false,
		},
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names
// fall back to Info.
func (e Engine) SlogLevel() slog.Level {
	switch e.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
