package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/anneal/internal/anneal"
)

const (
	DefaultObjective  = "rosenbrock"
	DefaultA          = -2.0
	DefaultB          = 2.0
	DefaultKmax       = 1000
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 12
)

var validate = validator.New()

type Config struct {
	Objective string       `yaml:"objective" validate:"required"`
	Bounds    BoundsConfig `yaml:"bounds"`
	Kmax      int          `yaml:"kmax" validate:"gte=0"`
	Seed      int64        `yaml:"seed"`
	Plot      PlotConfig   `yaml:"plot"`
}

// BoundsConfig holds the two bounds of the initial sampling interval, in
// either order.
type BoundsConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

type PlotConfig struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Objective: DefaultObjective,
		Bounds: BoundsConfig{
			A: DefaultA,
			B: DefaultB,
		},
		Kmax: DefaultKmax,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto overlays the file onto base, so fields the file leaves out keep
// base's values. base is modified and returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints and that both bounds are finite.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s must satisfy %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, v := range []float64{c.Bounds.A, c.Bounds.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid config: %w", anneal.ErrInvalidBounds)
		}
	}
	return nil
}

// AnnealConfig converts the file settings into kernel settings.
func (c *Config) AnnealConfig() anneal.Config {
	return anneal.Config{
		A:    c.Bounds.A,
		B:    c.Bounds.B,
		Kmax: c.Kmax,
	}
}
