package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"textcorpus/internal/logger"
)

// Environment variables consulted by the command.
const (
	EnvConfigPath = "TEXTCORPUS_CONFIG"
	EnvLogLevel   = "TEXTCORPUS_LOG_LEVEL"
)

// InputConfig controls which files are loaded and what extra documents are added.
type InputConfig struct {
	Extensions []string `yaml:"extensions"`
	// Documents is either a string or a list of strings.
	Documents any `yaml:"documents,omitempty"`
	// Attributes is a list of mappings, one per loaded document.
	Attributes any `yaml:"attributes,omitempty"`
}

// StepConfig names one normalization step and its arguments.
type StepConfig struct {
	Name            string   `yaml:"name"`
	Words           []string `yaml:"words,omitempty"`
	CaseInsensitive bool     `yaml:"case_insensitive,omitempty"`
	Algorithm       string   `yaml:"algorithm,omitempty"`
	Language        string   `yaml:"language,omitempty"`
}

// PreviewConfig controls how documents are rendered.
type PreviewConfig struct {
	Length int `yaml:"length"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Input    InputConfig   `yaml:"input"`
	Pipeline []StepConfig  `yaml:"pipeline"`
	Preview  PreviewConfig `yaml:"preview"`
	Log      logger.Config `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./corpus.yaml first, then ~/.config/textcorpus/config.yaml.
// If neither exists, it writes defaults to ~/.config/textcorpus/config.yaml and returns them.
// Environment overrides apply to the returned config but are never written.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "corpus.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// HasExtension reports whether path ends with one of the configured extensions.
func (c InputConfig) HasExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textcorpus", "config.yaml"), nil
}

// DefaultPipeline is the normalization run when a config names no steps.
func DefaultPipeline() []StepConfig {
	return []StepConfig{
		{Name: "remove_invalid_characters"},
		{Name: "remove_newlines"},
		{Name: "clean"},
	}
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Input:    InputConfig{Extensions: []string{".txt"}},
		Pipeline: DefaultPipeline(),
		Preview:  PreviewConfig{Length: 500},
		Log:      logger.Config{Level: "info", Format: logger.FormatConsole},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if len(cfg.Input.Extensions) == 0 {
		cfg.Input.Extensions = []string{".txt"}
	}
	if cfg.Pipeline == nil {
		cfg.Pipeline = DefaultPipeline()
	}
	if cfg.Preview.Length <= 0 {
		cfg.Preview.Length = 500
	}
	cfg.Log.ApplyDefaults()
	applyEnvOverrides(cfg)
}

func applyEnvOverrides(cfg *AppConfig) {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
}
