// Package config loads console configuration from a YAML file with
// environment variable expansion, plus env-only overrides for the few
// settings that commonly differ per machine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend  BackendConfig `yaml:"backend"`
	Console  ConsoleConfig `yaml:"console"`
	StateDir string        `yaml:"state_dir"`
}

type BackendConfig struct {
	// BaseURL includes the /api path prefix.
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ConsoleConfig struct {
	Listen         string   `yaml:"listen"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:4000/api",
			TimeoutSeconds: 15,
		},
		Console: ConsoleConfig{
			Listen:         "127.0.0.1:7070",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		StateDir: defaultStateDir(),
	}
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "crm-console")
	}
	return ".crm-console"
}

// Load merges an optional YAML file and environment overrides into cfg.
// A missing file keeps the defaults.
func Load(path string, cfg *Config) error {
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults apply
		case err != nil:
			return fmt.Errorf("read config file %s: %w", path, err)
		default:
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("CRM_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("CRM_CONSOLE_LISTEN"); v != "" {
		cfg.Console.Listen = v
	}
	if v := os.Getenv("CRM_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}

	return cfg.Validate()
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Backend,
		validation.Field(&c.Backend.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Backend.TimeoutSeconds, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("backend config: %w", err)
	}
	if err := validation.ValidateStruct(&c.Console,
		validation.Field(&c.Console.Listen, validation.Required),
	); err != nil {
		return fmt.Errorf("console config: %w", err)
	}
	return validation.Validate(c.StateDir, validation.Required)
}
