package synth

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	mrand "math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/compozy/fixturegen/pkg/constraint"
)

var ten = big.NewInt(10)

// bounds is an inclusive range of integers scaled by 10^scale.
type bounds struct {
	lo, hi *big.Int
}

func (b *bounds) raiseLo(v *big.Int) {
	if b.lo == nil || v.Cmp(b.lo) > 0 {
		b.lo = v
	}
}

func (b *bounds) lowerHi(v *big.Int) {
	if b.hi == nil || v.Cmp(b.hi) < 0 {
		b.hi = v
	}
}

// ByPattern picks a number satisfying every numeric constraint of set, with at
// most scale fractional digits. A Digits constraint narrows scale to its
// fraction count. When only one side of the range is bounded the other side
// is placed numeric.bound_ceiling away.
func (s *Synthesizer) ByPattern(set constraint.Set, scale int32) (decimal.Decimal, error) {
	return s.ByPatternWithin(set, scale, nil)
}

// Range is an inclusive numeric interval.
type Range struct {
	Min, Max decimal.Decimal
}

// ByPatternWithin is ByPattern restricted to limit, typically the range of the
// target type. The limit applies after the missing sides are derived.
func (s *Synthesizer) ByPatternWithin(set constraint.Set, scale int32, limit *Range) (decimal.Decimal, error) {
	if scale < 0 {
		return decimal.Zero, fmt.Errorf("negative scale %d", scale)
	}
	if d, ok := set.Get(constraint.Digits); ok && int32(d.Fraction) < scale {
		scale = int32(d.Fraction)
	}
	unit := new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil)
	var b bounds

	for _, kind := range []constraint.Kind{constraint.Min, constraint.DecimalMin} {
		if c, ok := set.Get(kind); ok {
			b.raiseLo(scaledLower(c.Value, scale, c.Inclusive))
		}
	}
	for _, kind := range []constraint.Kind{constraint.Max, constraint.DecimalMax} {
		if c, ok := set.Get(kind); ok {
			b.lowerHi(scaledUpper(c.Value, scale, c.Inclusive))
		}
	}
	switch {
	case set.Has(constraint.Positive):
		b.raiseLo(big.NewInt(1))
	case set.Has(constraint.PositiveOrZero):
		b.raiseLo(big.NewInt(0))
	}
	switch {
	case set.Has(constraint.Negative):
		b.lowerHi(big.NewInt(-1))
	case set.Has(constraint.NegativeOrZero):
		b.lowerHi(big.NewInt(0))
	}
	if d, ok := set.Get(constraint.Digits); ok {
		// |v| < 10^Integer
		widest := new(big.Int).Exp(ten, big.NewInt(int64(d.Integer)), nil)
		widest.Mul(widest, unit)
		widest.Sub(widest, big.NewInt(1))
		b.lowerHi(widest)
		b.raiseLo(new(big.Int).Neg(widest))
	}

	ceiling := new(big.Int).Mul(big.NewInt(s.cfg.Numeric.BoundCeiling), unit)
	switch {
	case b.lo == nil && b.hi == nil:
		b.lo = big.NewInt(0)
		b.hi = ceiling
	case b.lo == nil:
		if b.hi.Sign() >= 0 {
			b.lo = big.NewInt(0)
		} else {
			b.lo = new(big.Int).Sub(b.hi, ceiling)
		}
	case b.hi == nil:
		base := b.lo
		if base.Sign() < 0 {
			base = big.NewInt(0)
		}
		b.hi = new(big.Int).Add(base, ceiling)
	}
	if limit != nil {
		b.raiseLo(scaledLower(limit.Min, scale, true))
		b.lowerHi(scaledUpper(limit.Max, scale, true))
	}
	if b.lo.Cmp(b.hi) > 0 {
		return decimal.Zero, fmt.Errorf("%w: empty range", ErrUnsatisfiable)
	}
	pick, err := uniform(b.lo, b.hi)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(pick, -scale), nil
}

// scaledLower returns the smallest scaled integer admitted by a lower bound.
func scaledLower(v decimal.Decimal, scale int32, inclusive bool) *big.Int {
	shifted := v.Shift(scale)
	n := shifted.Ceil().BigInt()
	if !inclusive && shifted.Equal(shifted.Ceil()) {
		n.Add(n, big.NewInt(1))
	}
	return n
}

// scaledUpper returns the largest scaled integer admitted by an upper bound.
func scaledUpper(v decimal.Decimal, scale int32, inclusive bool) *big.Int {
	shifted := v.Shift(scale)
	n := shifted.Floor().BigInt()
	if !inclusive && shifted.Equal(shifted.Floor()) {
		n.Sub(n, big.NewInt(1))
	}
	return n
}

// uniform returns an integer in [lo, hi].
func uniform(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	off, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, fmt.Errorf("failed to draw random number: %w", err)
	}
	return off.Add(off, lo), nil
}

// IntBelow returns a non-negative integer below the smaller of n and
// numeric.int_ceiling.
func (s *Synthesizer) IntBelow(n uint64) uint64 {
	limit := uint64(s.cfg.Numeric.IntCeiling)
	if n < limit {
		limit = n
	}
	if limit == 0 {
		return 0
	}
	return mrand.Uint64N(limit)
}

// Int64 returns a non-negative int64.
func (s *Synthesizer) Int64() int64 {
	return mrand.Int64()
}

// Uint64 returns a uint64 over the full range.
func (s *Synthesizer) Uint64() uint64 {
	return mrand.Uint64()
}

// Float returns a float in [0, 1).
func (s *Synthesizer) Float() float64 {
	return mrand.Float64()
}

// Bool returns true or false.
func (s *Synthesizer) Bool() bool {
	return mrand.IntN(2) == 1
}

// Decimal returns an unconstrained non-negative decimal with
// numeric.decimal_scale fractional digits.
func (s *Synthesizer) Decimal() decimal.Decimal {
	scale := s.cfg.Numeric.DecimalScale
	limit := s.cfg.Numeric.IntCeiling
	for range scale {
		if limit > math.MaxInt64/10 {
			limit = math.MaxInt64
			break
		}
		limit *= 10
	}
	return decimal.New(mrand.Int64N(limit), -scale)
}
