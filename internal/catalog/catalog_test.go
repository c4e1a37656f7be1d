package catalog

import (
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compozy/fixturegen/pkg/fixture"
	"github.com/compozy/fixturegen/pkg/fixture/fixturetest"
)

func TestAll(t *testing.T) {
	t.Run("Should list entries sorted by name", func(t *testing.T) {
		var names []string
		for _, e := range All() {
			names = append(names, e.Name)
			assert.NotEmpty(t, e.Description)
			assert.Equal(t, reflect.Struct, e.Type.Kind())
		}
		assert.Equal(t, []string{"book", "dummy", "library", "node", "person", "pet"}, names)
	})
}

func TestLookup(t *testing.T) {
	t.Run("Should ignore case and surrounding space", func(t *testing.T) {
		e, ok := Lookup(" Person ")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[Person](), e.Type)
	})

	t.Run("Should report unknown names", func(t *testing.T) {
		_, ok := Lookup("spaceship")
		assert.False(t, ok)
	})
}

func TestCatalogFixtures(t *testing.T) {
	e := fixturetest.Engine(t, Options()...)
	v := validator.New()

	t.Run("Should generate every entry", func(t *testing.T) {
		for _, entry := range All() {
			values, err := e.GenerateMany(entry.Type, 3, fixture.WithItemCount(2))
			require.NoError(t, err, entry.Name)
			for _, val := range values {
				require.NoError(t, v.Struct(val.Interface()), entry.Name)
			}
		}
	})

	t.Run("Should build libraries through their constructor", func(t *testing.T) {
		lib, err := fixture.GenerateWith[Library](e, fixture.WithItemCount(2))
		require.NoError(t, err)
		assert.Len(t, lib.Name, e.Config().Text.Length)
		assert.NotEqual(t, Status(0), lib.Status)
		assert.Equal(t, 2, lib.Books.Len())
		assert.Equal(t, 2, lib.Members.Len())
		assert.Equal(t, 2, lib.Waitlist.Len())
		assert.Equal(t, 2, lib.Shelves.Len())
		for _, isbn := range lib.Books.Keys() {
			book, ok := lib.Books.Get(isbn)
			require.True(t, ok)
			assert.Regexp(t, `^97[89]-[0-9]{10}$`, book.ISBN)
			assert.True(t, book.Price.IsPositive())
		}
	})

	t.Run("Should honor every constraint on the dummy", func(t *testing.T) {
		d := fixturetest.NewWith[Dummy](t, e, fixture.WithItemCount(3))
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, d.StringWithDateFormat)
		assert.GreaterOrEqual(t, len(d.MinimumString), 3)
		assert.LessOrEqual(t, len(d.MaximumString), 6)
		assert.GreaterOrEqual(t, d.MinInteger, 2)
		assert.LessOrEqual(t, d.MaxInteger, 10)
		assert.Equal(t, StatusActive, d.Status)
		assert.Len(t, d.ComplexList, 3)
		assert.Len(t, d.ComplexTypeMap, 3)
		assert.NotNil(t, d.Integer)
		assert.True(t, d.LocalDateTime.IsValid())
		assert.False(t, d.OffsetDateTime.IsZero())
	})

	t.Run("Should truncate pet owners and friends", func(t *testing.T) {
		p := fixturetest.NewWith[Person](t, e)
		require.NotEmpty(t, p.Pets)
		assert.Nil(t, p.Pets[0].Owner)
		assert.Nil(t, p.Friends)
		assert.True(t, p.Born.Before(civil.DateOf(time.Now())))
		assert.Equal(t, SpeciesDog, p.Pets[0].Species)
	})
}
