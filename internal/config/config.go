package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunables for the deskset utilities.
type Config struct {
	CountdownInitial time.Duration // starting duration for the countdown
	Tick             time.Duration // tick cadence for both timers
}

const (
	defaultConfigPath       = "~/.config/deskset/config.toml"
	defaultCountdownSeconds = 300
	defaultTickMS           = 250
	minTickMS               = 50
)

// Load locates and parses the deskset config, falling back to defaults when
// the file is missing or fields are unset. Tick cadences below 50ms are
// clamped; finer ticking only burns CPU on a one-second display.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CountdownInitial: defaultCountdownSeconds * time.Second,
		Tick:             defaultTickMS * time.Millisecond,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CountdownSeconds int `toml:"countdown_seconds"`
		TickMS           int `toml:"tick_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.CountdownSeconds > 0 {
		cfg.CountdownInitial = time.Duration(raw.CountdownSeconds) * time.Second
	}
	if raw.TickMS > 0 {
		if raw.TickMS < minTickMS {
			raw.TickMS = minTickMS
		}
		cfg.Tick = time.Duration(raw.TickMS) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
