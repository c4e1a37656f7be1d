package synth

import (
	"regexp"
	"testing"
	"time"
	"unicode"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compozy/fixturegen/pkg/config"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

const rounds = 200

var fixedNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

func newTestSynth(mutate ...func(*config.Config)) *Synthesizer {
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	return New(cfg, WithClock(func() time.Time { return fixedNow }))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSynthesizer_ByPattern(t *testing.T) {
	s := newTestSynth()

	t.Run("Should stay within inclusive min and max", func(t *testing.T) {
		set := constraint.Of(
			constraint.Constraint{Kind: constraint.Min, Value: dec("2"), Inclusive: true},
			constraint.Constraint{Kind: constraint.Max, Value: dec("10"), Inclusive: true},
		)
		for range rounds {
			v, err := s.ByPattern(set, 0)
			require.NoError(t, err)
			assert.True(t, v.GreaterThanOrEqual(dec("2")) && v.LessThanOrEqual(dec("10")), v.String())
			assert.True(t, v.IsInteger())
		}
	})

	t.Run("Should exclude exclusive bounds", func(t *testing.T) {
		set := constraint.Of(
			constraint.Constraint{Kind: constraint.DecimalMin, Value: dec("0.5")},
			constraint.Constraint{Kind: constraint.DecimalMax, Value: dec("0.53")},
		)
		for range rounds {
			v, err := s.ByPattern(set, 2)
			require.NoError(t, err)
			assert.True(t, v.Equal(dec("0.51")) || v.Equal(dec("0.52")), v.String())
		}
	})

	t.Run("Should honor sign constraints", func(t *testing.T) {
		pos := constraint.Of(constraint.Constraint{Kind: constraint.Positive})
		neg := constraint.Of(constraint.Constraint{Kind: constraint.Negative})
		nonPos := constraint.Of(constraint.Constraint{Kind: constraint.NegativeOrZero})
		for range rounds {
			v, err := s.ByPattern(pos, 0)
			require.NoError(t, err)
			assert.True(t, v.IsPositive())

			v, err = s.ByPattern(neg, 2)
			require.NoError(t, err)
			assert.True(t, v.IsNegative())

			v, err = s.ByPattern(nonPos, 0)
			require.NoError(t, err)
			assert.False(t, v.IsPositive())
		}
	})

	t.Run("Should honor digit counts", func(t *testing.T) {
		set := constraint.Of(
			constraint.Constraint{Kind: constraint.Digits, Integer: 3, Fraction: 1},
			constraint.Constraint{Kind: constraint.PositiveOrZero},
		)
		for range rounds {
			v, err := s.ByPattern(set, 4)
			require.NoError(t, err)
			assert.True(t, v.LessThan(dec("1000")), v.String())
			assert.True(t, v.Equal(v.Truncate(1)), v.String())
		}
	})

	t.Run("Should derive the missing side from the bound ceiling", func(t *testing.T) {
		small := newTestSynth(func(c *config.Config) { c.Numeric.BoundCeiling = 5 })
		lo := constraint.Of(constraint.Constraint{Kind: constraint.Min, Value: dec("100"), Inclusive: true})
		hi := constraint.Of(constraint.Constraint{Kind: constraint.Max, Value: dec("-100"), Inclusive: true})
		for range rounds {
			v, err := small.ByPattern(lo, 0)
			require.NoError(t, err)
			assert.True(t, v.GreaterThanOrEqual(dec("100")) && v.LessThanOrEqual(dec("105")), v.String())

			v, err = small.ByPattern(hi, 0)
			require.NoError(t, err)
			assert.True(t, v.GreaterThanOrEqual(dec("-105")) && v.LessThanOrEqual(dec("-100")), v.String())
		}
	})

	t.Run("Should report unsatisfiable bounds", func(t *testing.T) {
		set := constraint.Of(
			constraint.Constraint{Kind: constraint.Min, Value: dec("10"), Inclusive: true},
			constraint.Constraint{Kind: constraint.Negative},
		)
		_, err := s.ByPattern(set, 0)
		assert.ErrorIs(t, err, ErrUnsatisfiable)
	})
}

func TestSynthesizer_Unconstrained(t *testing.T) {
	s := newTestSynth()

	t.Run("Should keep small integers under the ceiling", func(t *testing.T) {
		for range rounds {
			assert.Less(t, s.IntBelow(128), uint64(128))
			assert.Less(t, s.IntBelow(1<<40), uint64(100000))
		}
		assert.Equal(t, uint64(0), s.IntBelow(0))
	})

	t.Run("Should produce non-negative wide values", func(t *testing.T) {
		for range rounds {
			assert.GreaterOrEqual(t, s.Int64(), int64(0))
			f := s.Float()
			assert.True(t, f >= 0 && f < 1)
			d := s.Decimal()
			assert.False(t, d.IsNegative())
			assert.LessOrEqual(t, -d.Exponent(), int32(2))
		}
	})
}

func TestSynthesizer_ByPatternAndType(t *testing.T) {
	s := newTestSynth()
	past := constraint.Of(constraint.Constraint{Kind: constraint.Past})
	future := constraint.Of(constraint.Constraint{Kind: constraint.Future})

	t.Run("Should place instants inside the window", func(t *testing.T) {
		for range rounds {
			v, err := s.ByPatternAndType(past, typeinfo.Instant)
			require.NoError(t, err)
			ts := v.(time.Time)
			assert.True(t, ts.Before(fixedNow))
			assert.False(t, ts.Before(fixedNow.Add(-365*day)))

			v, err = s.ByPatternAndType(future, typeinfo.Instant)
			require.NoError(t, err)
			assert.True(t, v.(time.Time).After(fixedNow))
		}
	})

	t.Run("Should offset dates by whole days", func(t *testing.T) {
		today := civil.DateOf(fixedNow)
		for range rounds {
			v, err := s.ByPatternAndType(past, typeinfo.Date)
			require.NoError(t, err)
			assert.True(t, v.(civil.Date).Before(today))

			v, err = s.ByPatternAndType(future, typeinfo.Date)
			require.NoError(t, err)
			assert.True(t, v.(civil.Date).After(today))
		}
	})

	t.Run("Should keep times of day within the current day", func(t *testing.T) {
		noon := civil.TimeOf(fixedNow)
		for range rounds {
			v, err := s.ByPatternAndType(past, typeinfo.TimeOfDay)
			require.NoError(t, err)
			assert.Less(t, v.(civil.Time).String(), noon.String())

			v, err = s.ByPatternAndType(future, typeinfo.TimeOfDay)
			require.NoError(t, err)
			assert.Greater(t, v.(civil.Time).String(), noon.String())
		}
	})

	t.Run("Should allow the present for or-present constraints", func(t *testing.T) {
		both := constraint.Of(
			constraint.Constraint{Kind: constraint.PastOrPresent},
			constraint.Constraint{Kind: constraint.FutureOrPresent},
		)
		v, err := s.ByPatternAndType(both, typeinfo.DateTime)
		require.NoError(t, err)
		assert.Equal(t, civil.DateTimeOf(fixedNow), v)
	})

	t.Run("Should reject contradictory constraints", func(t *testing.T) {
		set := constraint.Of(
			constraint.Constraint{Kind: constraint.Past},
			constraint.Constraint{Kind: constraint.Future},
		)
		_, err := s.ByPatternAndType(set, typeinfo.Instant)
		assert.ErrorIs(t, err, ErrUnsatisfiable)
	})

	t.Run("Should render now for every kind", func(t *testing.T) {
		for kind, want := range map[typeinfo.TemporalKind]any{
			typeinfo.Instant:   fixedNow,
			typeinfo.Date:      civil.DateOf(fixedNow),
			typeinfo.TimeOfDay: civil.TimeOf(fixedNow),
			typeinfo.DateTime:  civil.DateTimeOf(fixedNow),
		} {
			v, err := s.Now(kind)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
	})
}

func TestSynthesizer_Text(t *testing.T) {
	s := newTestSynth()

	t.Run("Should use the configured default length", func(t *testing.T) {
		v, err := s.Text()
		require.NoError(t, err)
		assert.Len(t, v, 10)
		assert.Regexp(t, `^[a-zA-Z0-9]+$`, v)
	})

	t.Run("Should honor size bounds", func(t *testing.T) {
		size := constraint.Constraint{Kind: constraint.Size, SizeMin: 4, SizeMax: 9}
		for range rounds {
			v, err := s.BySize(size)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(v), 4)
			assert.LessOrEqual(t, len(v), 9)
		}
	})

	t.Run("Should clamp unbounded sizes", func(t *testing.T) {
		assert.Equal(t, 255, s.LimitedMax(constraint.Constraint{SizeMin: 2, SizeMax: constraint.Unbounded}))
		assert.Equal(t, 300, s.LimitedMax(constraint.Constraint{SizeMin: 300, SizeMax: constraint.Unbounded}))
		assert.Equal(t, 7, s.LimitedMax(constraint.Constraint{SizeMin: 2, SizeMax: 7}))
	})

	t.Run("Should match regular expressions", func(t *testing.T) {
		for _, pattern := range []string{`^[0-9]{5}$`, `[A-Z]{2}-\d+`, `^(cat|dog)s?$`} {
			re := regexp.MustCompile(pattern)
			for range 20 {
				v, err := s.ByRegex(pattern)
				require.NoError(t, err)
				assert.True(t, re.MatchString(v), "%q !~ %s", v, pattern)
			}
		}
	})

	t.Run("Should generate addresses matching the email pattern", func(t *testing.T) {
		v, err := s.Email()
		require.NoError(t, err)
		assert.Regexp(t, config.DefaultEmailPattern, v)
	})

	t.Run("Should reject invalid patterns", func(t *testing.T) {
		_, err := s.ByRegex(`[a-`)
		assert.Error(t, err)
	})

	t.Run("Should produce letters for runes", func(t *testing.T) {
		r, err := s.Rune()
		require.NoError(t, err)
		assert.True(t, unicode.IsLetter(r))
	})
}

func TestSynthesizer_ByPatternWithin(t *testing.T) {
	t.Run("Should intersect derived bounds with the limit", func(t *testing.T) {
		s := newTestSynth()
		set := constraint.Of(constraint.Constraint{Kind: constraint.Min, Value: dec("100"), Inclusive: true})
		limit := &Range{Min: dec("-128"), Max: dec("127")}
		for range rounds {
			v, err := s.ByPatternWithin(set, 0, limit)
			require.NoError(t, err)
			assert.True(t, v.GreaterThanOrEqual(dec("100")) && v.LessThanOrEqual(dec("127")), v.String())
		}
	})

	t.Run("Should fail when the limit excludes every candidate", func(t *testing.T) {
		s := newTestSynth()
		set := constraint.Of(constraint.Constraint{Kind: constraint.Min, Value: dec("300"), Inclusive: true})
		_, err := s.ByPatternWithin(set, 0, &Range{Min: dec("0"), Max: dec("255")})
		assert.ErrorIs(t, err, ErrUnsatisfiable)
	})
}
