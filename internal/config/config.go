package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"divgrid/internal/eventbus"
)

const (
	DefaultMaximum = 1000
	DefaultStart   = 100
)

var (
	ErrInvalidMaximum = errors.New("maximum must be at least 1")
	ErrInvalidStart   = errors.New("start must be at least 1")
	ErrInvalidColumns = errors.New("columns must not be negative")
)

// Config represents the application configuration
type Config struct {
	Version int        `toml:"version"`
	Maximum int        `toml:"maximum"`
	Start   int        `toml:"start"`
	Grid    GridConfig `toml:"grid"`
}

// GridConfig controls grid layout and shuffling
type GridConfig struct {
	Columns int    `toml:"columns"` // 0 fits the terminal width
	Seed    uint64 `toml:"seed"`    // 0 draws a random seed per run
}

// Validate checks the values a widget cannot be built without
func (c *Config) Validate() error {
	if c.Maximum < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaximum, c.Maximum)
	}
	if c.Start < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStart, c.Start)
	}
	if c.Grid.Columns < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidColumns, c.Grid.Columns)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	explicit bool // the caller named the file, so it must exist
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "divgrid", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses
// DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
		explicit: explicit,
	}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file at the default
// location yields the defaults; a missing file the caller named is an error.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) && !cs.explicit {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			Maximum: cfg.Maximum,
			Start:   cfg.Start,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Maximum: DefaultMaximum,
		Start:   DefaultStart,
	}
}
