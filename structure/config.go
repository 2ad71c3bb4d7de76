package structure

import "errors"

// Config holds the thresholds structure assembly applies.
type Config struct {
	// TitleThreshold is the minimum detector confidence for a Title
	// detection to become the document title. Default: 0.8.
	TitleThreshold float64

	// SectionThreshold is the minimum detector confidence for a
	// Section-header detection to open a new section. Default: 0.7.
	SectionThreshold float64

	// MinTextLength is the minimum cleaned-text length for a detection
	// to become section content or join the text accumulator.
	// Default: 10.
	MinTextLength int

	// VerticalTolerance is the reading-order band, in page units:
	// detections whose vertical centers differ by at most this much
	// are ordered left-to-right instead. Default: 20.
	VerticalTolerance float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTitleThreshold sets the document-title confidence threshold.
func WithTitleThreshold(threshold float64) ConfigOption {
	return func(c *Config) {
		c.TitleThreshold = threshold
	}
}

// WithSectionThreshold sets the section-header confidence threshold.
func WithSectionThreshold(threshold float64) ConfigOption {
	return func(c *Config) {
		c.SectionThreshold = threshold
	}
}

// WithMinTextLength sets the minimum cleaned-text length for content.
func WithMinTextLength(length int) ConfigOption {
	return func(c *Config) {
		c.MinTextLength = length
	}
}

// WithVerticalTolerance sets the reading-order tolerance band.
func WithVerticalTolerance(tolerance float64) ConfigOption {
	return func(c *Config) {
		c.VerticalTolerance = tolerance
	}
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		TitleThreshold:    0.8,
		SectionThreshold:  0.7,
		MinTextLength:     10,
		VerticalTolerance: 20,
	}
}

// NewConfig creates a Config with default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.TitleThreshold < 0 || c.TitleThreshold > 1 {
		return errors.New("structure config: TitleThreshold must be in [0,1]")
	}
	if c.SectionThreshold < 0 || c.SectionThreshold > 1 {
		return errors.New("structure config: SectionThreshold must be in [0,1]")
	}
	if c.MinTextLength < 0 {
		return errors.New("structure config: MinTextLength cannot be negative")
	}
	if c.VerticalTolerance < 0 {
		return errors.New("structure config: VerticalTolerance cannot be negative")
	}
	return nil
}
