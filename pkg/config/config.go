package config

import (
	"time"
)

// Config holds the tunables of the fixture engine.
type Config struct {
	Generation GenerationConfig `koanf:"generation"`
	Text       TextConfig       `koanf:"text"`
	Numeric    NumericConfig    `koanf:"numeric"`
	Temporal   TemporalConfig   `koanf:"temporal"`
}

// GenerationConfig controls the shape of generated graphs.
type GenerationConfig struct {
	// ItemCount is used for every slice, map and container when the caller does not pass one.
	ItemCount int `koanf:"item_count" validate:"min=0,max=10000"`
	// StrictCycleGuard keeps a type marked as visited until its whole field walk completes,
	// even when one of its fields was taken from the override map.
	StrictCycleGuard bool `koanf:"strict_cycle_guard"`
}

// TextConfig controls string synthesis.
type TextConfig struct {
	Length           int    `koanf:"length"             validate:"min=1"`
	MaxLength        int    `koanf:"max_length"         validate:"min=1,gtefield=Length"`
	RegexRepeatLimit int    `koanf:"regex_repeat_limit" validate:"min=1,max=1000"`
	EmailPattern     string `koanf:"email_pattern"      validate:"required,regexp"`
}

// NumericConfig controls integral and decimal synthesis.
type NumericConfig struct {
	// IntCeiling bounds unconstrained integers narrower than 64 bits.
	IntCeiling int64 `koanf:"int_ceiling"   validate:"min=1"`
	// BoundCeiling is the window used when a constraint only fixes one side of a range.
	BoundCeiling int64 `koanf:"bound_ceiling" validate:"min=1"`
	DecimalScale int32 `koanf:"decimal_scale" validate:"min=0,max=18"`
}

// TemporalConfig controls past/future offsets.
type TemporalConfig struct {
	Window time.Duration `koanf:"window" validate:"gte=1s"`
}

// DefaultEmailPattern produces short addresses on a fixed domain. The local part
// has no dots so that it never starts, ends or repeats one.
const DefaultEmailPattern = `^[a-zA-Z0-9_]{1,10}@email\.com$`

func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			ItemCount:        1,
			StrictCycleGuard: false,
		},
		Text: TextConfig{
			Length:           10,
			MaxLength:        255,
			RegexRepeatLimit: 10,
			EmailPattern:     DefaultEmailPattern,
		},
		Numeric: NumericConfig{
			IntCeiling:   100000,
			BoundCeiling: 1000000,
			DecimalScale: 2,
		},
		Temporal: TemporalConfig{
			Window: 365 * 24 * time.Hour,
		},
	}
}
