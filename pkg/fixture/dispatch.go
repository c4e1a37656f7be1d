package fixture

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/synth"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

// value produces a value of t. ok is false when t is left unset: unsupported
// types and struct types already on the current path.
func (g *generation) value(t reflect.Type, set constraint.Set, path attrpath.Path) (v reflect.Value, ok bool, err error) {
	cat := g.engine.classifier.ClassifyField(t, set)
	switch cat {
	case typeinfo.Text:
		return g.text(t, set, path)
	case typeinfo.Integral:
		return g.integral(t, set, path)
	case typeinfo.Floating:
		return g.floating(t, set, path)
	case typeinfo.Decimal:
		return g.decimal(t, set, path)
	case typeinfo.Boolean:
		return reflect.ValueOf(g.engine.synth.Bool()).Convert(t), true, nil
	case typeinfo.Character:
		r, err := g.engine.synth.Rune()
		if err != nil {
			return reflect.Value{}, false, err
		}
		return reflect.ValueOf(r).Convert(t), true, nil
	case typeinfo.Temporal:
		return g.temporal(t, set, path)
	case typeinfo.Identifier:
		return identifier(t)
	case typeinfo.Enumeration:
		members, _ := g.engine.classifier.EnumValues(t)
		if len(members) == 0 {
			g.log.Debug("enumeration has no members", "path", path.String(), "type", t.String())
			return reflect.Value{}, false, nil
		}
		return members[0], true, nil
	case typeinfo.Complex:
		if g.visiting(t) {
			g.log.Debug("cycle truncated", "path", path.String(), "type", t.String())
			return reflect.Value{}, false, nil
		}
		v, err := g.generateComplex(t, path)
		if err != nil {
			return reflect.Value{}, false, err
		}
		return v, true, nil
	case typeinfo.Collection, typeinfo.Array:
		return g.sequence(t, cat, path)
	case typeinfo.Map:
		return g.mapping(t, path)
	case typeinfo.Pointer:
		elem, ok, err := g.value(t.Elem(), set, path)
		if err != nil || !ok {
			return reflect.Value{}, false, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(elem)
		return p, true, nil
	}
	g.log.Debug("unsupported type left unset", "path", path.String(), "type", t.String())
	return reflect.Value{}, false, nil
}

// text picks the first applicable rule: pattern, size, temporal, email, numeric.
func (g *generation) text(t reflect.Type, set constraint.Set, path attrpath.Path) (reflect.Value, bool, error) {
	s := g.engine.synth
	var (
		out string
		err error
	)
	switch {
	case set.Has(constraint.Pattern):
		out, err = s.ByRegex(set[constraint.Pattern].Regexp)
	case set.Has(constraint.Size):
		out, err = s.BySize(set[constraint.Size])
	case set.IsTemporal():
		var moment any
		if moment, err = s.ByPatternAndType(set, typeinfo.DateTime); err == nil {
			out = moment.(civil.DateTime).String()
		}
	case set.Has(constraint.Email):
		out, err = s.Email()
	case set.IsNumeric():
		var d decimal.Decimal
		if d, err = s.ByPattern(set, g.engine.cfg.Numeric.DecimalScale); err == nil {
			out = d.String()
		}
	default:
		out, err = s.Text()
	}
	if err != nil {
		return reflect.Value{}, false, g.constraintError(t, path, err)
	}
	return reflect.ValueOf(out).Convert(t), true, nil
}

func (g *generation) integral(t reflect.Type, set constraint.Set, path attrpath.Path) (reflect.Value, bool, error) {
	s := g.engine.synth
	out := reflect.New(t).Elem()
	signed := out.CanInt()
	if !set.IsNumeric() {
		switch {
		case t.Bits() < 64 && signed:
			out.SetInt(int64(s.IntBelow(uint64(1)<<(t.Bits()-1) - 1)))
		case t.Bits() < 64:
			out.SetUint(s.IntBelow(uint64(1)<<t.Bits() - 1))
		case signed:
			out.SetInt(s.Int64())
		default:
			out.SetUint(s.Uint64())
		}
		return out, true, nil
	}
	d, err := s.ByPatternWithin(set, 0, integralRange(t))
	if err != nil {
		return reflect.Value{}, false, g.constraintError(t, path, err)
	}
	n := d.BigInt()
	switch {
	case signed && n.IsInt64() && !out.OverflowInt(n.Int64()):
		out.SetInt(n.Int64())
	case !signed && n.Sign() >= 0 && n.IsUint64() && !out.OverflowUint(n.Uint64()):
		out.SetUint(n.Uint64())
	default:
		return reflect.Value{}, false, newConstraintRangeError(t, path, fmt.Errorf("%s overflows %s", n, t))
	}
	return out, true, nil
}

func integralRange(t reflect.Type) *synth.Range {
	bits := uint(t.Bits())
	if reflect.New(t).Elem().CanInt() {
		hi := new(big.Int).Lsh(big.NewInt(1), bits-1)
		lo := new(big.Int).Neg(hi)
		return &synth.Range{
			Min: decimal.NewFromBigInt(lo, 0),
			Max: decimal.NewFromBigInt(hi.Sub(hi, big.NewInt(1)), 0),
		}
	}
	hi := new(big.Int).Lsh(big.NewInt(1), bits)
	return &synth.Range{Min: decimal.Zero, Max: decimal.NewFromBigInt(hi.Sub(hi, big.NewInt(1)), 0)}
}

func (g *generation) floating(t reflect.Type, set constraint.Set, path attrpath.Path) (reflect.Value, bool, error) {
	out := reflect.New(t).Elem()
	if !set.IsNumeric() {
		out.SetFloat(g.engine.synth.Float())
		return out, true, nil
	}
	limit := math.MaxFloat64
	if t.Kind() == reflect.Float32 {
		limit = math.MaxFloat32
	}
	bound := decimal.NewFromFloat(limit)
	d, err := g.engine.synth.ByPatternWithin(set, g.engine.cfg.Numeric.DecimalScale, &synth.Range{Min: bound.Neg(), Max: bound})
	if err != nil {
		return reflect.Value{}, false, g.constraintError(t, path, err)
	}
	out.SetFloat(d.InexactFloat64())
	return out, true, nil
}

func (g *generation) decimal(t reflect.Type, set constraint.Set, path attrpath.Path) (reflect.Value, bool, error) {
	if !set.IsNumeric() {
		return reflect.ValueOf(g.engine.synth.Decimal()), true, nil
	}
	d, err := g.engine.synth.ByPattern(set, g.engine.cfg.Numeric.DecimalScale)
	if err != nil {
		return reflect.Value{}, false, g.constraintError(t, path, err)
	}
	return reflect.ValueOf(d), true, nil
}

func (g *generation) temporal(t reflect.Type, set constraint.Set, path attrpath.Path) (reflect.Value, bool, error) {
	kind, _ := typeinfo.TemporalKindOf(t)
	var (
		moment any
		err    error
	)
	if set.IsTemporal() {
		moment, err = g.engine.synth.ByPatternAndType(set, kind)
	} else {
		moment, err = g.engine.synth.Now(kind)
	}
	if err != nil {
		return reflect.Value{}, false, g.constraintError(t, path, err)
	}
	return reflect.ValueOf(moment), true, nil
}

func identifier(t reflect.Type) (reflect.Value, bool, error) {
	kind, _ := typeinfo.IdentifierKindOf(t)
	switch kind {
	case typeinfo.UUID:
		return reflect.ValueOf(uuid.New()), true, nil
	case typeinfo.KSUID:
		return reflect.ValueOf(ksuid.New()), true, nil
	}
	return reflect.Value{}, false, nil
}

// constraintError reports bounds no value satisfies as CONSTRAINT_RANGE and
// everything else as CONSTRAINT_INVALID.
func (g *generation) constraintError(t reflect.Type, path attrpath.Path, err error) error {
	if errors.Is(err, synth.ErrUnsatisfiable) {
		return newConstraintRangeError(t, path, err)
	}
	return newConstraintInvalidError(t, path, err)
}
