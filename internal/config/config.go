package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultReadingSpeed = 125
	DefaultRuleSet      = "v2"
	DefaultCodeBlocks   = "count"
	DefaultMaxWidth     = 750
	DefaultMaxHeight    = 750
	DefaultJPEGQuality  = 95
)

type Config struct {
	Reading ReadingConfig `yaml:"reading"`
	Images  ImageConfig   `yaml:"images"`
}

type ReadingConfig struct {
	Speed      int    `yaml:"speed"`       // words per minute
	Rules      string `yaml:"rules"`       // v1, v2
	CodeBlocks string `yaml:"code_blocks"` // count, skip
	Verbose    bool   `yaml:"verbose"`
}

type ImageConfig struct {
	MaxWidth        int  `yaml:"max_width"`
	MaxHeight       int  `yaml:"max_height"`
	JPEGQuality     int  `yaml:"jpeg_quality"`
	ContinueOnError bool `yaml:"continue_on_error"`
}

func Default() *Config {
	return &Config{
		Reading: ReadingConfig{
			Speed:      DefaultReadingSpeed,
			Rules:      DefaultRuleSet,
			CodeBlocks: DefaultCodeBlocks,
		},
		Images: ImageConfig{
			MaxWidth:    DefaultMaxWidth,
			MaxHeight:   DefaultMaxHeight,
			JPEGQuality: DefaultJPEGQuality,
		},
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Reading.Speed <= 0 {
		return fmt.Errorf("reading.speed must be positive, got %d", c.Reading.Speed)
	}
	switch c.Reading.Rules {
	case "v1", "v2":
	default:
		return fmt.Errorf("unknown reading.rules %q (want v1 or v2)", c.Reading.Rules)
	}
	switch c.Reading.CodeBlocks {
	case "count", "skip":
	default:
		return fmt.Errorf("unknown reading.code_blocks %q (want count or skip)", c.Reading.CodeBlocks)
	}
	if c.Images.MaxWidth <= 0 || c.Images.MaxHeight <= 0 {
		return fmt.Errorf("images bounds must be positive, got %dx%d", c.Images.MaxWidth, c.Images.MaxHeight)
	}
	if c.Images.JPEGQuality < 1 || c.Images.JPEGQuality > 100 {
		return fmt.Errorf("images.jpeg_quality must be in 1..100, got %d", c.Images.JPEGQuality)
	}
	return nil
}
