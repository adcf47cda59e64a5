package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vortexcurl/internal/vortex"
)

const (
	DefaultFPS      = 60
	MaxFPS          = 240
	DefaultTheme    = "slate"
	DefaultLogLevel = "info"
	DefaultLogFile  = "vortexcurl.log"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalidFPS    = errors.New("config: fps out of range")
)

// Config holds the user-facing knobs. Field geometry is fixed and never read
// from here.
type Config struct {
	Position vortex.Position `yaml:"position"`
	Playing  bool            `yaml:"playing"`
	FPS      int             `yaml:"fps"`
	Theme    string          `yaml:"theme"`
	LogLevel string          `yaml:"log_level"`
	LogFile  string          `yaml:"log_file"`
	Seed     int64           `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Position: vortex.Center,
		Playing:  true,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads path on top of base, so keys missing from the file keep
// base's values. base is not modified.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve layers a preset and then a config file over the defaults. Either
// may be empty.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p, err := GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if path == "" {
		return cfg, cfg.Validate()
	}
	return LoadOver(cfg, path)
}

func (c *Config) Validate() error {
	if !c.Position.Valid() {
		return fmt.Errorf("%w: %d", vortex.ErrUnknownPosition, int(c.Position))
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	return nil
}
