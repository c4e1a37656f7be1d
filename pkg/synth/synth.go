// Package synth produces random values, optionally within the bounds declared
// by a constraint set.
package synth

import (
	"errors"
	"time"

	"github.com/compozy/fixturegen/pkg/config"
)

// ErrUnsatisfiable is returned when a constraint set admits no value.
var ErrUnsatisfiable = errors.New("constraints cannot be satisfied")

// Synthesizer generates values according to a configuration. It holds no
// mutable state and is safe for concurrent use.
type Synthesizer struct {
	cfg *config.Config
	now func() time.Time
}

// Option customizes a Synthesizer.
type Option func(*Synthesizer)

// WithClock replaces the time source used for "now".
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		s.now = now
	}
}

// New returns a Synthesizer. A nil cfg uses config.Default().
func New(cfg *config.Config, opts ...Option) *Synthesizer {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Synthesizer{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
