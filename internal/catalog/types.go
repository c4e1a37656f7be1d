package catalog

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"

	"github.com/compozy/fixturegen/pkg/collection"
)

// Species is declared through its EnumValues method.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesParrot Species = "parrot"
)

func (Species) EnumValues() []any {
	return []any{SpeciesDog, SpeciesCat, SpeciesParrot}
}

// Status is registered with the engine through Options.
type Status int

const (
	StatusActive Status = iota + 1
	StatusSuspended
	StatusClosed
)

type Genre string

const (
	GenreFiction Genre = "fiction"
	GenreHistory Genre = "history"
	GenrePoetry  Genre = "poetry"
)

func (Genre) EnumValues() []any {
	return []any{GenreFiction, GenreHistory, GenrePoetry}
}

type Person struct {
	ID       uuid.UUID
	Name     string     `validate:"min=2,max=20"`
	Email    string     `validate:"email"`
	Age      int        `validate:"min=18,max=99"`
	Born     civil.Date `fixture:"past"`
	Nickname *string
	Pets     []Pet
	Friends  []*Person
}

type Pet struct {
	Name    string `validate:"min=2,max=12"`
	Species Species
	Owner   *Person
}

type Book struct {
	ISBN      string `pattern:"^97[89]-[0-9]{10}$"`
	Title     string `validate:"min=1,max=40"`
	Genre     Genre
	Price     decimal.Decimal `fixture:"digits=4.2,positive"`
	Published civil.Date      `fixture:"past"`
	Authors   []string
}

// Library has no zero-argument constructor; the engine builds it with
// NewLibrary.
type Library struct {
	ID       ksuid.KSUID
	Name     string
	Status   Status
	Opened   time.Time `fixture:"past"`
	Books    collection.SortedMap[string, Book]
	Members  collection.Set[uuid.UUID]
	Waitlist collection.Queue[string]
	Shelves  collection.LinkedMap[string, []string]
}

// NewLibrary opens an active library.
func NewLibrary(name string) *Library {
	return &Library{Name: name, Status: StatusActive}
}

type Node struct {
	Value    int
	Next     *Node
	Children []Node
}

type ComplexType struct {
	Label  string
	Weight float64
	Tags   []string
}

// Dummy carries one field of every shape the engine understands.
type Dummy struct {
	PrimitiveInt         int
	String               string
	Long                 int64
	Double               float64
	Boolean              bool
	Char                 rune `fixture:"rune"`
	LocalDateTime        civil.DateTime
	OffsetDateTime       time.Time
	ComplexType          ComplexType
	ComplexList          []ComplexType
	IntegerList          []int32
	DoubleList           []float64
	StringList           []string
	BooleanList          []bool
	Status               Status
	StringMap            map[string]string
	IntegerMap           map[int]int
	MixedMap             map[int]string
	ComplexTypeMap       map[int]ComplexType
	Integer              *int32
	StringWithDateFormat string `pattern:"^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}\\.\\d{3}Z$"`
	MinimumString        string `validate:"min=3"`
	MaximumString        string `validate:"max=6"`
	MediumString         string `validate:"min=4,max=9"`
	MinInteger           int    `validate:"min=2"`
	MaxInteger           int    `validate:"max=10"`
}
