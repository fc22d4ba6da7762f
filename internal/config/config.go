package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the few knobs Billfold reads at startup.
type Config struct {
	// BaseURL anchors share links: origin plus path, no query.
	BaseURL string
	// Currency prefixes every amount in the preview and the export.
	Currency string
	// OutputDir receives exported PNG files.
	OutputDir string
	// LogFile receives diagnostics; the terminal belongs to the UI.
	LogFile string
}

const (
	defaultConfigPath = "~/.config/billfold/config.toml"
	defaultBaseURL    = "https://billfold.local/i"
	defaultCurrency   = "$"
	defaultOutputDir  = "~/Documents"
	defaultLogFile    = "~/.local/share/billfold/billfold.log"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:   defaultBaseURL,
		Currency:  defaultCurrency,
		OutputDir: mustExpand(defaultOutputDir),
		LogFile:   mustExpand(defaultLogFile),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL   string `toml:"base_url"`
		Currency  string `toml:"currency"`
		OutputDir string `toml:"output_dir"`
		LogFile   string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(raw.Currency); v != "" {
		cfg.Currency = v
	}
	if v := strings.TrimSpace(raw.OutputDir); v != "" {
		cfg.OutputDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
