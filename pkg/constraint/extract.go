package constraint

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TagValidate = "validate"
	TagFixture  = "fixture"
	TagPattern  = "pattern"
)

// ErrInvalidTag is wrapped by every tag parsing failure.
var ErrInvalidTag = errors.New("invalid constraint tag")

// TagError describes a malformed tag entry.
type TagError struct {
	Field string
	Tag   string
	Entry string
	Err   error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("field %s: %s tag entry %q: %v", e.Field, e.Tag, e.Entry, e.Err)
}

func (e *TagError) Unwrap() []error {
	return []error{ErrInvalidTag, e.Err}
}

var timeType = reflect.TypeOf(time.Time{})

// Skipped reports whether the field opted out of generation with fixture:"-".
func Skipped(field reflect.StructField) bool {
	return strings.TrimSpace(field.Tag.Get(TagFixture)) == "-"
}

// Extract reads the constraint tags of field.
func Extract(field reflect.StructField) (Set, error) {
	set := make(Set)
	target := field.Type
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	if err := parsePattern(set, field); err != nil {
		return nil, err
	}
	if err := parseValidate(set, field, target); err != nil {
		return nil, err
	}
	if err := parseFixture(set, field); err != nil {
		return nil, err
	}
	if c, ok := set.Get(Size); ok && c.SizeMin > c.SizeMax {
		return nil, &TagError{
			Field: field.Name,
			Tag:   TagValidate,
			Entry: "size",
			Err:   fmt.Errorf("minimum %d exceeds maximum %d", c.SizeMin, c.SizeMax),
		}
	}
	return set, nil
}

func parsePattern(set Set, field reflect.StructField) error {
	expr, ok := field.Tag.Lookup(TagPattern)
	if !ok {
		return nil
	}
	if _, err := regexp.Compile(expr); err != nil {
		return &TagError{Field: field.Name, Tag: TagPattern, Entry: expr, Err: err}
	}
	set[Pattern] = Constraint{Kind: Pattern, Regexp: expr}
	return nil
}

// parseValidate reads the subset of validator tags that shape generated values.
// Entries after "dive" apply to elements and are ignored, as are alternatives
// joined with "|".
func parseValidate(set Set, field reflect.StructField, target reflect.Type) error {
	tag := field.Tag.Get(TagValidate)
	if tag == "" {
		return nil
	}
	lengthed := target.Kind() == reflect.String
	for entry := range strings.SplitSeq(tag, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "dive" {
			break
		}
		if entry == "" || strings.Contains(entry, "|") {
			continue
		}
		key, param, _ := strings.Cut(entry, "=")
		fail := func(err error) error {
			return &TagError{Field: field.Name, Tag: TagValidate, Entry: entry, Err: err}
		}
		switch key {
		case "email":
			set[Email] = Constraint{Kind: Email}
		case "min", "max", "len":
			if lengthed {
				if err := applyLength(set, key, param); err != nil {
					return fail(err)
				}
				continue
			}
			if err := applyNumericBound(set, key, param); err != nil {
				return fail(err)
			}
		case "gt", "gte", "lt", "lte":
			if target == timeType && param == "" {
				set[temporalFromValidator(key)] = Constraint{Kind: temporalFromValidator(key)}
				continue
			}
			if err := applyComparison(set, key, param); err != nil {
				return fail(err)
			}
		}
	}
	return nil
}

func temporalFromValidator(key string) Kind {
	switch key {
	case "gt":
		return Future
	case "gte":
		return FutureOrPresent
	case "lt":
		return Past
	default:
		return PastOrPresent
	}
}

func applyLength(set Set, key, param string) error {
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 {
		return fmt.Errorf("length must be a non-negative integer")
	}
	c, ok := set.Get(Size)
	if !ok {
		c = Constraint{Kind: Size, SizeMin: 0, SizeMax: Unbounded}
	}
	switch key {
	case "min":
		c.SizeMin = n
	case "max":
		c.SizeMax = n
	default:
		c.SizeMin, c.SizeMax = n, n
	}
	set[Size] = c
	return nil
}

func applyNumericBound(set Set, key, param string) error {
	v, err := decimal.NewFromString(param)
	if err != nil {
		return fmt.Errorf("bound must be a number: %w", err)
	}
	switch key {
	case "min":
		set[Min] = Constraint{Kind: Min, Value: v, Inclusive: true}
	case "max":
		set[Max] = Constraint{Kind: Max, Value: v, Inclusive: true}
	default:
		set[Min] = Constraint{Kind: Min, Value: v, Inclusive: true}
		set[Max] = Constraint{Kind: Max, Value: v, Inclusive: true}
	}
	return nil
}

// applyComparison maps gt/gte/lt/lte. A zero bound is expressed with the sign
// constraints; any other bound becomes DecimalMin or DecimalMax.
func applyComparison(set Set, key, param string) error {
	v, err := decimal.NewFromString(param)
	if err != nil {
		return fmt.Errorf("bound must be a number: %w", err)
	}
	if v.IsZero() {
		kind := map[string]Kind{"gt": Positive, "gte": PositiveOrZero, "lt": Negative, "lte": NegativeOrZero}[key]
		set[kind] = Constraint{Kind: kind}
		return nil
	}
	inclusive := key == "gte" || key == "lte"
	if key == "gt" || key == "gte" {
		set[DecimalMin] = Constraint{Kind: DecimalMin, Value: v, Inclusive: inclusive}
		return nil
	}
	set[DecimalMax] = Constraint{Kind: DecimalMax, Value: v, Inclusive: inclusive}
	return nil
}

var flagKinds = map[string]Kind{
	"past":            Past,
	"pastorpresent":   PastOrPresent,
	"future":          Future,
	"futureorpresent": FutureOrPresent,
	"positive":        Positive,
	"positiveorzero":  PositiveOrZero,
	"negative":        Negative,
	"negativeorzero":  NegativeOrZero,
	"email":           Email,
	"rune":            Rune,
}

func parseFixture(set Set, field reflect.StructField) error {
	tag := strings.TrimSpace(field.Tag.Get(TagFixture))
	if tag == "" || tag == "-" {
		return nil
	}
	for entry := range strings.SplitSeq(tag, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, param, hasParam := strings.Cut(entry, "=")
		key = strings.ToLower(key)
		var err error
		switch {
		case !hasParam:
			kind, ok := flagKinds[key]
			if !ok {
				err = fmt.Errorf("unknown constraint %q", key)
				break
			}
			set[kind] = Constraint{Kind: kind}
		case key == "digits":
			err = applyDigits(set, param)
		case key == "decimalmin" || key == "decimalmax":
			err = applyDecimalBound(set, key, param)
		case key == "size":
			err = applySize(set, param)
		default:
			err = fmt.Errorf("unknown constraint %q", key)
		}
		if err != nil {
			return &TagError{Field: field.Name, Tag: TagFixture, Entry: entry, Err: err}
		}
	}
	return nil
}

// applyDigits parses "I.F" (integer and fraction digit counts) or a bare "I".
func applyDigits(set Set, param string) error {
	intPart, fracPart, hasFrac := strings.Cut(param, ".")
	integer, err := strconv.Atoi(intPart)
	if err != nil || integer < 0 {
		return fmt.Errorf("integer digits must be a non-negative integer")
	}
	fraction := 0
	if hasFrac {
		fraction, err = strconv.Atoi(fracPart)
		if err != nil || fraction < 0 {
			return fmt.Errorf("fraction digits must be a non-negative integer")
		}
	}
	if integer == 0 && fraction == 0 {
		return fmt.Errorf("digits must allow at least one digit")
	}
	set[Digits] = Constraint{Kind: Digits, Integer: integer, Fraction: fraction}
	return nil
}

func applyDecimalBound(set Set, key, param string) error {
	v, err := decimal.NewFromString(param)
	if err != nil {
		return fmt.Errorf("bound must be a decimal: %w", err)
	}
	kind := DecimalMin
	if key == "decimalmax" {
		kind = DecimalMax
	}
	set[kind] = Constraint{Kind: kind, Value: v, Inclusive: true}
	return nil
}

// applySize parses "MIN:MAX"; either side may be omitted.
func applySize(set Set, param string) error {
	lo, hi, ok := strings.Cut(param, ":")
	if !ok {
		return fmt.Errorf("size must be MIN:MAX")
	}
	c := Constraint{Kind: Size, SizeMin: 0, SizeMax: Unbounded}
	var err error
	if lo != "" {
		if c.SizeMin, err = strconv.Atoi(lo); err != nil || c.SizeMin < 0 {
			return fmt.Errorf("size minimum must be a non-negative integer")
		}
	}
	if hi != "" {
		if c.SizeMax, err = strconv.Atoi(hi); err != nil || c.SizeMax < 0 {
			return fmt.Errorf("size maximum must be a non-negative integer")
		}
	}
	set[Size] = c
	return nil
}
