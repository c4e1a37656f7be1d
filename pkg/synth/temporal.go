package synth

import (
	"fmt"
	mrand "math/rand/v2"
	"time"

	"cloud.google.com/go/civil"

	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

const day = 24 * time.Hour

// Now returns the current moment as a value of kind.
func (s *Synthesizer) Now(kind typeinfo.TemporalKind) (any, error) {
	return render(s.now().Round(0), kind)
}

// ByPatternAndType picks a value of kind satisfying the past/future constraints
// of set. Offsets stay within temporal.window and are counted in days for
// dates and in seconds otherwise. Times of day never leave the current day.
// Strict past and future values are at least one unit away from now; so are
// future-or-present values, so that they still hold once generation returns.
func (s *Synthesizer) ByPatternAndType(set constraint.Set, kind typeinfo.TemporalKind) (any, error) {
	now := s.now().Round(0)
	past := set.HasAny(constraint.Past, constraint.PastOrPresent)
	future := set.HasAny(constraint.Future, constraint.FutureOrPresent)
	switch {
	case past && future:
		if set.Has(constraint.Past) || set.Has(constraint.Future) {
			return nil, fmt.Errorf("%w: value cannot be both past and future", ErrUnsatisfiable)
		}
		return render(now, kind)
	case !past && !future:
		return render(now, kind)
	}

	unit := time.Second
	if kind == typeinfo.Date {
		unit = day
	}
	maxOff := int64(s.cfg.Temporal.Window / unit)
	if maxOff < 1 {
		maxOff = 1
	}
	if kind == typeinfo.TimeOfDay {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		elapsed := int64(now.Sub(midnight) / time.Second)
		room := elapsed
		if future {
			room = int64(day/time.Second) - 1 - elapsed
		}
		maxOff = min(maxOff, room)
	}
	minOff := int64(1)
	if set.Has(constraint.PastOrPresent) && !set.Has(constraint.Past) {
		minOff = 0
	}
	if set.Has(constraint.FutureOrPresent) && !set.Has(constraint.Future) && maxOff < 1 {
		minOff = 0
	}
	if minOff > maxOff {
		return nil, fmt.Errorf("%w: no %s left in the current day", ErrUnsatisfiable, kind)
	}
	off := minOff + mrand.Int64N(maxOff-minOff+1)
	if past {
		off = -off
	}
	if kind == typeinfo.Date {
		return civil.DateOf(now).AddDays(int(off)), nil
	}
	return render(now.Add(time.Duration(off)*unit), kind)
}

func render(t time.Time, kind typeinfo.TemporalKind) (any, error) {
	switch kind {
	case typeinfo.Instant:
		return t, nil
	case typeinfo.Date:
		return civil.DateOf(t), nil
	case typeinfo.TimeOfDay:
		return civil.TimeOf(t), nil
	case typeinfo.DateTime:
		return civil.DateTimeOf(t), nil
	}
	return nil, fmt.Errorf("unknown temporal kind %d", kind)
}
