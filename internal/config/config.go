package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	List   ListConfig   `yaml:"list"`
	Output OutputConfig `yaml:"output"`

	// SessionFile is where the login session is persisted between runs.
	SessionFile string `yaml:"session_file,omitempty" env:"TALLY_SESSION_FILE"`
}

// ServerConfig locates the ledger server.
type ServerConfig struct {
	URL            string `yaml:"url" env:"TALLY_SERVER_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"TALLY_SERVER_TIMEOUT"`
}

// ListConfig holds listing defaults.
type ListConfig struct {
	PerPage int `yaml:"per_page" env:"TALLY_PER_PAGE"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	// Style is a glamour style name ("auto", "dark", "light", "notty").
	Style string `yaml:"style" env:"TALLY_OUTPUT_STYLE"`
}

// Load reads a tally.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads path if it exists, otherwise returns Default with
// environment overrides applied. A client should work without `tally init`.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("applying env overrides: %w", err)
		}
		return cfg, nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a fresh setup.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		List: ListConfig{
			PerPage: 50,
		},
		Output: OutputConfig{
			Style: "auto",
		},
	}
}

// DefaultPath returns the default location of tally.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "tally", "tally.yaml"), nil
}

// SessionPath returns the configured session file, or the default next to
// the config file.
func (c *Config) SessionPath() (string, error) {
	if c.SessionFile != "" {
		return c.SessionFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "tally", "session.yaml"), nil
}

// FeedPath returns where the listing cursor is persisted between runs.
func (c *Config) FeedPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "tally", "feed.yaml"), nil
}

// LogDir returns the directory for the client action log.
func (c *Config) LogDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "tally", "logs"), nil
}
