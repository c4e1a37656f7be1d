package fixture

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"

	"github.com/compozy/fixturegen/pkg/collection"
)

type role string

const (
	roleAdmin role = "admin"
	roleUser  role = "user"
)

type color int

func (color) EnumValues() []any { return []any{3, 1, 2} }

type address struct {
	Street string  `validate:"min=3,max=20"`
	Zip    string  `pattern:"^[0-9]{5}$"`
	City   *string `validate:"omitempty,min=2"`
}

type pet struct {
	Name  string
	Age   int `validate:"min=1,max=15"`
	Owner *person
}

type person struct {
	ID        uuid.UUID
	Trace     ksuid.KSUID
	Name      string          `validate:"min=4,max=9"`
	Email     string          `validate:"email"`
	Age       int             `validate:"min=2,max=10"`
	Born      time.Time       `fixture:"past"`
	Joined    civil.Date      `fixture:"pastorpresent"`
	Renewal   civil.DateTime  `fixture:"future"`
	Balance   decimal.Decimal `fixture:"digits=5.2,positive"`
	Score     float64
	Ratio     float32 `validate:"gte=0.5,lte=0.75"`
	Active    bool
	Initial   rune `fixture:"rune"`
	Role      role
	Favorite  color
	Home      address
	Pets      []pet
	Tags      collection.Set[string]
	Scores    map[string]int
	Friends   []*person
	Parent    *person
	Nickname  *string
	Ignored   string `fixture:"-"`
	Handler   func()
	Err       error
	secret    string
	Lookup    [3]int8
	Birthday  *civil.Date `fixture:"past"`
	Reference string      `fixture:"future"`
	Amount    string      `fixture:"decimalmin=5,decimalmax=6"`
}

type node struct {
	Name     string
	Next     *node
	Children []node
}

type point struct{ X, Y int }

type registry struct {
	ByPoint collection.SortedMap[point, string]
}

type shelf struct {
	Set        collection.Set[int]
	Sorted     collection.SortedSet[string]
	Queue      collection.Queue[int64]
	Deque      collection.Deque[*pet]
	Sorted2    collection.SortedMap[string, int]
	Concurrent collection.ConcurrentMap[uuid.UUID, string]
	CSorted    collection.ConcurrentSortedMap[int, bool]
	Linked     collection.LinkedMap[string, []int]
	Grid       [2][2]uint8
}

type Audit struct {
	CreatedBy string
	Revision  int
}

type timestamps struct {
	Created time.Time
}

type document struct {
	*Audit
	timestamps
	Title string
}

type Loop struct {
	*Loop
	Label string
}

type account struct {
	ID     string
	Owner  string
	Limit  int
	Closed bool
}

func newAccount(owner string, limit int) *account {
	return &account{ID: "acct-" + owner, Owner: owner, Limit: limit}
}

func newDefaultAccount() account {
	return account{ID: "default"}
}

func newFailingAccount(string) (*account, error) {
	return nil, errors.New("vault locked")
}

func newPanickingAccount() *account {
	panic("boom")
}

type broken struct {
	Code string `pattern:"[a-"`
}

type tiny struct {
	N int8 `validate:"min=300"`
}

type contradictory struct {
	When time.Time `fixture:"past,future"`
}

type labels struct {
	Names   []string
	Weights map[string]float32
	Grid    [2][2]uint8
	Owners  []*address
}
