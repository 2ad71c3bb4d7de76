package match

// Config holds the scoring weights and scheduling bounds of a matching
// pass.
type Config struct {
	// MinMatchScore is the floor a final blended score must reach for
	// a Match to be emitted. Default: 0.1.
	MinMatchScore float64

	// FuzzyWeight scales the string-similarity signal inside the
	// traditional score. Default: 0.3.
	FuzzyWeight float64

	// CosineWeight scales the term-vector signal inside the
	// traditional score. Default: 0.4.
	CosineWeight float64

	// AIWeight is the share of the blended score taken by the judge
	// signal when one is present. Default: 0.3.
	AIWeight float64

	// MaxConcurrentAIRequests is the topic batch width: topics within
	// a batch are judged concurrently, batches run sequentially.
	// Default: 3.
	MaxConcurrentAIRequests int

	// TopCandidates is how many of each topic's best traditional
	// candidates are judge-eligible. Default: 5.
	TopCandidates int
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithMinMatchScore sets the emission floor for blended scores.
func WithMinMatchScore(score float64) Option {
	return func(c *Config) {
		c.MinMatchScore = score
	}
}

// WithFuzzyWeight sets the string-similarity weight.
func WithFuzzyWeight(weight float64) Option {
	return func(c *Config) {
		c.FuzzyWeight = weight
	}
}

// WithCosineWeight sets the term-vector weight.
func WithCosineWeight(weight float64) Option {
	return func(c *Config) {
		c.CosineWeight = weight
	}
}

// WithAIWeight sets the judge signal's share of the blended score.
func WithAIWeight(weight float64) Option {
	return func(c *Config) {
		c.AIWeight = weight
	}
}

// WithMaxConcurrentAIRequests sets the topic batch width.
func WithMaxConcurrentAIRequests(n int) Option {
	return func(c *Config) {
		c.MaxConcurrentAIRequests = n
	}
}

// WithTopCandidates sets how many candidates per topic are judge-eligible.
func WithTopCandidates(n int) Option {
	return func(c *Config) {
		c.TopCandidates = n
	}
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		MinMatchScore:           0.1,
		FuzzyWeight:             0.3,
		CosineWeight:            0.4,
		AIWeight:                0.3,
		MaxConcurrentAIRequests: 3,
		TopCandidates:           5,
	}
}

// NewConfig creates a Config with default values and applies the
// provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for _, w := range []float64{c.FuzzyWeight, c.CosineWeight, c.AIWeight} {
		if w < 0 || w > 1 {
			return ErrInvalidWeight
		}
	}
	if c.FuzzyWeight+c.CosineWeight <= 0 {
		return ErrInvalidWeight
	}
	if c.MinMatchScore < 0 || c.MinMatchScore > 1 {
		return ErrInvalidMinMatchScore
	}
	if c.MaxConcurrentAIRequests <= 0 {
		return ErrInvalidBatchWidth
	}
	if c.TopCandidates <= 0 {
		return ErrInvalidTopCandidates
	}
	return nil
}
