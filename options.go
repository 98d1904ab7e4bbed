package ptable

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultCapacity is the initial bucket count.
	DefaultCapacity = 8
	// DefaultMaxLoadFactor is the (occupied+deleted)/capacity ratio above
	// which Put rehashes.
	DefaultMaxLoadFactor = 0.7
	// DefaultGrowthFactor is the capacity multiplier applied on rehash.
	DefaultGrowthFactor = 4
)

// Option configures a Table at construction time.
type Option func(*config)

type config struct {
	capacity      int
	maxLoadFactor float64
	growthFactor  int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		capacity:      DefaultCapacity,
		maxLoadFactor: DefaultMaxLoadFactor,
		growthFactor:  DefaultGrowthFactor,
		logger:        slog.New(slog.DiscardHandler),
	}
}

func (c *config) validate() error {
	if c.capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.capacity)
	}
	if !(c.maxLoadFactor > 0 && c.maxLoadFactor < 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidLoadFactor, c.maxLoadFactor)
	}
	if c.growthFactor < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidGrowthFactor, c.growthFactor)
	}
	return nil
}

// WithCapacity sets the initial number of buckets. The bucket count is
// never rounded; it only changes by the growth factor on rehash.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithMaxLoadFactor sets the (occupied+deleted)/capacity ratio above which
// a Put rehashes the table.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		c.maxLoadFactor = f
	}
}

// WithGrowthFactor sets the capacity multiplier applied on rehash.
func WithGrowthFactor(g int) Option {
	return func(c *config) {
		c.growthFactor = g
	}
}

// WithLogger sets the logger used for rehash events. A nil logger keeps
// the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
