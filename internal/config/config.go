package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/san-kum/lifesaver/internal/life"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBoundary    = "toroidal"
	DefaultInterval    = 500 * time.Millisecond
	DefaultBackend     = BackendBubbleTea
	DefaultFill        = "#ffffff"
	DefaultHeight      = 24
	DefaultWidth       = 80
	DefaultGenerations = 200
)

const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

var (
	ErrInvalidInterval = errors.New("config: interval must be positive")
	ErrUnknownBackend  = errors.New("config: unknown backend")
	ErrUnknownPreset   = errors.New("config: unknown preset")
	ErrInvalidColor    = errors.New("config: invalid fill color")
	ErrInvalidTrace    = errors.New("config: invalid trace dimensions")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Config struct {
	Boundary string        `yaml:"boundary"`
	Interval time.Duration `yaml:"interval"`
	Seed     int64         `yaml:"seed"`
	Backend  string        `yaml:"backend"`
	Fill     string        `yaml:"fill"`
	Trace    TraceConfig   `yaml:"trace"`
}

// TraceConfig sizes the headless grid used by the trace command, which has no
// terminal to take dimensions from.
type TraceConfig struct {
	Height      int `yaml:"height"`
	Width       int `yaml:"width"`
	Generations int `yaml:"generations"`
}

func DefaultConfig() *Config {
	return &Config{
		Boundary: DefaultBoundary,
		Interval: DefaultInterval,
		Backend:  DefaultBackend,
		Fill:     DefaultFill,
		Trace: TraceConfig{
			Height:      DefaultHeight,
			Width:       DefaultWidth,
			Generations: DefaultGenerations,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads path over a copy of base; fields the file omits keep
// their base values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
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

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if _, err := c.GridBoundary(); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w, got %s", ErrInvalidInterval, c.Interval)
	}
	switch c.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("%w: %q (available: %s, %s)", ErrUnknownBackend, c.Backend, BackendBubbleTea, BackendTcell)
	}
	if !validColor(c.Fill) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Fill)
	}
	if c.Trace.Height < 0 || c.Trace.Width < 0 || c.Trace.Generations < 0 {
		return fmt.Errorf("%w: %dx%d for %d generations", ErrInvalidTrace, c.Trace.Height, c.Trace.Width, c.Trace.Generations)
	}
	return nil
}

// GridBoundary resolves the configured boundary name.
func (c *Config) GridBoundary() (life.Boundary, error) {
	return life.ParseBoundary(c.Boundary)
}

// validColor accepts "#rrggbb" or an ANSI color number.
func validColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
