// Package constraint turns the struct tags of a field into the declarative
// constraint set that guides value synthesis.
//
// Three tags are read:
//
//	validate:"min=2,max=10,email"        go-playground/validator syntax
//	fixture:"past,digits=5.2,size=3:8"   generator-only constraints, "-" skips the field
//	pattern:"^[A-Z]{3}$"                 a full regular expression
package constraint

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Kind identifies a constraint.
type Kind int

const (
	Pattern Kind = iota + 1
	Size
	Past
	PastOrPresent
	Future
	FutureOrPresent
	Digits
	Positive
	PositiveOrZero
	Negative
	NegativeOrZero
	Email
	DecimalMin
	DecimalMax
	Min
	Max
	Rune
)

var kindNames = map[Kind]string{
	Pattern:         "pattern",
	Size:            "size",
	Past:            "past",
	PastOrPresent:   "pastorpresent",
	Future:          "future",
	FutureOrPresent: "futureorpresent",
	Digits:          "digits",
	Positive:        "positive",
	PositiveOrZero:  "positiveorzero",
	Negative:        "negative",
	NegativeOrZero:  "negativeorzero",
	Email:           "email",
	DecimalMin:      "decimalmin",
	DecimalMax:      "decimalmax",
	Min:             "min",
	Max:             "max",
	Rune:            "rune",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Unbounded is the Size maximum when none was declared.
const Unbounded = math.MaxInt

// Constraint is one declared rule with its parameters. Only the fields relevant
// to Kind are set.
type Constraint struct {
	Kind Kind
	// Regexp holds the expression of a Pattern constraint.
	Regexp string
	// SizeMin and SizeMax bound the length of a Size constraint.
	SizeMin int
	SizeMax int
	// Value is the bound of Min, Max, DecimalMin and DecimalMax.
	Value decimal.Decimal
	// Inclusive tells whether Value itself satisfies a DecimalMin or DecimalMax.
	Inclusive bool
	// Integer and Fraction are the digit counts of a Digits constraint.
	Integer  int
	Fraction int
}

// Set holds at most one constraint per kind.
type Set map[Kind]Constraint

// Of builds a set from constraints. Later entries replace earlier ones of the same kind.
func Of(cs ...Constraint) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c.Kind] = c
	}
	return s
}

func (s Set) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

func (s Set) Get(k Kind) (Constraint, bool) {
	c, ok := s[k]
	return c, ok
}

// HasAny reports whether any of kinds is present.
func (s Set) HasAny(kinds ...Kind) bool {
	for _, k := range kinds {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no constraints.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Kinds returns the present kinds in declaration order.
func (s Set) Kinds() []Kind {
	out := make([]Kind, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// TemporalKinds are the past/future family.
var TemporalKinds = []Kind{Past, PastOrPresent, Future, FutureOrPresent}

// NumericKinds are the constraints that bound a number.
var NumericKinds = []Kind{Digits, Positive, PositiveOrZero, Negative, NegativeOrZero, DecimalMin, DecimalMax, Min, Max}

// IsTemporal reports whether the set carries a past/future constraint.
func (s Set) IsTemporal() bool {
	return s.HasAny(TemporalKinds...)
}

// IsNumeric reports whether the set carries a numeric bound.
func (s Set) IsNumeric() bool {
	return s.HasAny(NumericKinds...)
}
