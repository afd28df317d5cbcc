package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds the player-tunable settings. Values come from the TOML config
// file, with PAIRS_* environment variables taking precedence.
type Config struct {
	// Symbols is the card face set; the board holds two cards per symbol.
	Symbols []string `toml:"symbols" env:"PAIRS_SYMBOLS" envSeparator:","`
	// RevealMillis is how long a mismatched pair stays visible.
	RevealMillis int `toml:"reveal_millis" env:"PAIRS_REVEAL_MILLIS"`
	// ThreeStarMoves and TwoStarMoves are the move counts at which the star
	// rating drops from 3 and from 2.
	ThreeStarMoves int `toml:"three_star_moves" env:"PAIRS_THREE_STAR_MOVES"`
	TwoStarMoves   int `toml:"two_star_moves" env:"PAIRS_TWO_STAR_MOVES"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Symbols:        []string{"♦", "✈", "⚓", "⚡", "■", "☘", "♞", "☢"},
		RevealMillis:   900,
		ThreeStarMoves: 15,
		TwoStarMoves:   25,
	}
}

// RevealWindow is RevealMillis as a duration.
func (c Config) RevealWindow() time.Duration {
	return time.Duration(c.RevealMillis) * time.Millisecond
}

// Validate rejects settings that would break the deck or scoring invariants.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if s == "" {
			return errors.New("config: empty symbol")
		}
		if seen[s] {
			return fmt.Errorf("config: duplicate symbol %q", s)
		}
		seen[s] = true
	}
	if c.RevealMillis <= 0 {
		return fmt.Errorf("config: reveal_millis must be positive, got %d", c.RevealMillis)
	}
	if c.ThreeStarMoves <= 0 || c.TwoStarMoves <= c.ThreeStarMoves {
		return fmt.Errorf("config: star thresholds must satisfy 0 < three_star_moves < two_star_moves, got %d/%d",
			c.ThreeStarMoves, c.TwoStarMoves)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or its default path.
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGDataHome returns XDG_DATA_HOME or its default path.
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetConfigFilePath returns the path to the config file.
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pairs", "config.toml")
}

// Load reads the config file, creating it with defaults on first run, then
// applies environment overrides and validates the result.
func Load() (Config, error) {
	cfg := Default()
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeDefault(configPath, cfg); err != nil {
			return cfg, err
		}
	} else {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeDefault(configPath string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
