package fixture

import (
	"fmt"
	"time"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/config"
	"github.com/compozy/fixturegen/pkg/logger"
)

// Option configures an Engine.
type Option func(*Engine) error

// WithConfig replaces the default configuration. The configuration is validated.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) error {
		if err := config.NewService().Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		e.cfg = cfg
		return nil
	}
}

// WithLogger sets the logger used to report failures and truncations.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		e.log = l
		return nil
	}
}

// WithClock sets the source of "now" for temporal values.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		e.now = now
		return nil
	}
}

// WithConstructor registers fn as a way to create its result type. fn must be a
// function returning T or *T, optionally followed by an error. When a type has
// several constructors the one without parameters wins, otherwise the one with
// the fewest parameters.
func WithConstructor(fn any) Option {
	return func(e *Engine) error {
		c, err := newConstructor(fn)
		if err != nil {
			return err
		}
		e.constructors[c.target] = append(e.constructors[c.target], c)
		return nil
	}
}

// WithEnum declares values as the members of their type, in order.
func WithEnum(values ...any) Option {
	return func(e *Engine) error {
		return e.classifier.RegisterEnum(values...)
	}
}

type callOptions struct {
	overrides attrpath.Overrides
	itemCount *int
}

// GenerateOption configures one generation call.
type GenerateOption func(*callOptions)

// WithOverrides supplies literal values for the fields at the given paths.
func WithOverrides(o attrpath.Overrides) GenerateOption {
	return func(c *callOptions) {
		c.overrides = o
	}
}

// WithItemCount sets the number of entries of every collection in the graph.
func WithItemCount(n int) GenerateOption {
	return func(c *callOptions) {
		c.itemCount = &n
	}
}
