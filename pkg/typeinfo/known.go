package typeinfo

import (
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"
)

// TemporalKind is the granularity of a temporal type.
type TemporalKind int

const (
	// Instant is time.Time.
	Instant TemporalKind = iota + 1
	// Date is civil.Date.
	Date
	// TimeOfDay is civil.Time.
	TimeOfDay
	// DateTime is civil.DateTime, a date and time without zone.
	DateTime
)

func (k TemporalKind) String() string {
	switch k {
	case Instant:
		return "instant"
	case Date:
		return "date"
	case TimeOfDay:
		return "time-of-day"
	case DateTime:
		return "date-time"
	default:
		return "unknown"
	}
}

// IdentifierKind is the flavor of an identifier type.
type IdentifierKind int

const (
	UUID IdentifierKind = iota + 1
	KSUID
)

var (
	TimeType      = reflect.TypeFor[time.Time]()
	DateType      = reflect.TypeFor[civil.Date]()
	TimeOfDayType = reflect.TypeFor[civil.Time]()
	DateTimeType  = reflect.TypeFor[civil.DateTime]()
	DecimalType   = reflect.TypeFor[decimal.Decimal]()
	UUIDType      = reflect.TypeFor[uuid.UUID]()
	KSUIDType     = reflect.TypeFor[ksuid.KSUID]()
)

var temporalKinds = map[reflect.Type]TemporalKind{
	TimeType:      Instant,
	DateType:      Date,
	TimeOfDayType: TimeOfDay,
	DateTimeType:  DateTime,
}

var identifierKinds = map[reflect.Type]IdentifierKind{
	UUIDType:  UUID,
	KSUIDType: KSUID,
}

// TemporalKindOf returns the kind of a temporal type.
func TemporalKindOf(t reflect.Type) (TemporalKind, bool) {
	k, ok := temporalKinds[t]
	return k, ok
}

// IdentifierKindOf returns the kind of an identifier type.
func IdentifierKindOf(t reflect.Type) (IdentifierKind, bool) {
	k, ok := identifierKinds[t]
	return k, ok
}

// isValueType reports whether t is a struct the engine synthesizes as one value.
func isValueType(t reflect.Type) bool {
	if t == DecimalType {
		return true
	}
	if _, ok := temporalKinds[t]; ok {
		return true
	}
	_, ok := identifierKinds[t]
	return ok
}
