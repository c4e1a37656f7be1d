package collection

import (
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func isOrdered(t reflect.Type) bool {
	_, err := comparatorFor(t)
	return err == nil
}

func TestComparatorFor(t *testing.T) {
	t.Run("Should accept ordered kinds", func(t *testing.T) {
		for _, v := range []any{0, int8(0), uint64(0), 1.5, float32(1), "s"} {
			assert.True(t, isOrdered(reflect.TypeOf(v)), reflect.TypeOf(v).String())
		}
	})

	t.Run("Should accept types with a comparison method", func(t *testing.T) {
		assert.True(t, isOrdered(reflect.TypeFor[decimal.Decimal]()))
		assert.True(t, isOrdered(reflect.TypeFor[time.Time]()))
	})

	t.Run("Should reject types without an ordering", func(t *testing.T) {
		assert.False(t, isOrdered(reflect.TypeFor[point]()))
		assert.False(t, isOrdered(reflect.TypeFor[bool]()))
		assert.False(t, isOrdered(reflect.TypeFor[*int]()))
		assert.False(t, isOrdered(nil))
	})
}

func TestSet(t *testing.T) {
	t.Run("Should work from the zero value and ignore duplicates", func(t *testing.T) {
		var s Set[string]
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains("a"))
		s.Add("a")
		s.Add("b")
		s.Add("a")
		assert.Equal(t, 2, s.Len())
		assert.ElementsMatch(t, []string{"a", "b"}, s.Values())
		s.Remove("a")
		assert.False(t, s.Contains("a"))
	})
}

func TestSortedSet(t *testing.T) {
	t.Run("Should keep values in ascending order", func(t *testing.T) {
		var s SortedSet[int]
		for _, v := range []int{5, 1, 3, 1} {
			require.NoError(t, s.Add(v))
		}
		assert.Equal(t, []int{1, 3, 5}, s.Values())
		assert.True(t, s.Contains(3))
	})

	t.Run("Should order types by their Cmp method", func(t *testing.T) {
		var s SortedSet[decimal.Decimal]
		require.NoError(t, s.Add(decimal.RequireFromString("2.5")))
		require.NoError(t, s.Add(decimal.RequireFromString("-1")))
		values := s.Values()
		require.Len(t, values, 2)
		assert.Equal(t, "-1", values[0].String())
	})

	t.Run("Should reject unordered element types", func(t *testing.T) {
		var s SortedSet[point]
		err := s.Add(point{1, 2})
		assert.ErrorIs(t, err, ErrUnordered)
		assert.Equal(t, 0, s.Len())
	})
}

func TestQueue(t *testing.T) {
	t.Run("Should poll ordered values by priority", func(t *testing.T) {
		var q Queue[int]
		for _, v := range []int{4, 2, 9} {
			q.Add(v)
		}
		assert.Equal(t, []int{2, 4, 9}, q.Values())
		head, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 2, head)
		head, ok = q.Poll()
		require.True(t, ok)
		assert.Equal(t, 2, head)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("Should fall back to insertion order for unordered values", func(t *testing.T) {
		var q Queue[point]
		want := []point{{3, 3}, {1, 1}, {2, 2}, {1, 1}}
		for _, p := range want {
			q.Add(p)
		}
		for _, p := range want {
			got, ok := q.Poll()
			require.True(t, ok)
			assert.Equal(t, p, got)
		}
	})

	t.Run("Should report an empty queue", func(t *testing.T) {
		var q Queue[string]
		_, ok := q.Poll()
		assert.False(t, ok)
		_, ok = q.Peek()
		assert.False(t, ok)
	})
}

func TestDeque(t *testing.T) {
	t.Run("Should push and pop at both ends", func(t *testing.T) {
		var d Deque[string]
		d.Add("b")
		d.PushFront("a")
		d.PushBack("c")
		assert.Equal(t, []string{"a", "b", "c"}, d.Values())
		front, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, "a", front)
		back, ok := d.PopBack()
		require.True(t, ok)
		assert.Equal(t, "c", back)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Should report an empty deque", func(t *testing.T) {
		var d Deque[int]
		_, ok := d.PopFront()
		assert.False(t, ok)
	})
}

func TestSortedMap(t *testing.T) {
	t.Run("Should keep keys sorted", func(t *testing.T) {
		var m SortedMap[string, int]
		require.NoError(t, m.Put("b", 2))
		require.NoError(t, m.Put("a", 1))
		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, ok := m.Get("b")
		require.True(t, ok)
		assert.Equal(t, 2, v)
		data, err := json.Marshal(&m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1,"b":2}`, string(data))
	})

	t.Run("Should reject unordered keys", func(t *testing.T) {
		var m SortedMap[point, string]
		err := m.Put(point{}, "x")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnordered))
	})
}

func TestConcurrentMap(t *testing.T) {
	t.Run("Should be safe for concurrent writers", func(t *testing.T) {
		var m ConcurrentMap[int, int]
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Put(i, i*i)
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, m.Len())
		v, ok := m.Get(7)
		require.True(t, ok)
		assert.Equal(t, 49, v)
	})
}

func TestConcurrentSortedMap(t *testing.T) {
	t.Run("Should sort keys and reject unordered ones", func(t *testing.T) {
		var m ConcurrentSortedMap[int, string]
		require.NoError(t, m.Put(2, "b"))
		require.NoError(t, m.Put(1, "a"))
		assert.Equal(t, []int{1, 2}, m.Keys())

		var bad ConcurrentSortedMap[point, int]
		assert.ErrorIs(t, bad.Put(point{}, 1), ErrUnordered)
	})
}

func TestLinkedMap(t *testing.T) {
	t.Run("Should keep insertion order", func(t *testing.T) {
		var m LinkedMap[string, int]
		m.Put("z", 1)
		m.Put("a", 2)
		m.Put("z", 3)
		assert.Equal(t, []string{"z", "a"}, m.Keys())
		v, _ := m.Get("z")
		assert.Equal(t, 3, v)
		data, err := json.Marshal(&m)
		require.NoError(t, err)
		assert.Equal(t, `{"z":3,"a":2}`, string(data))
	})
}

func TestMakeAddPut(t *testing.T) {
	t.Run("Should build and fill slices", func(t *testing.T) {
		v, err := Make(reflect.TypeFor[[]int](), 2)
		require.NoError(t, err)
		require.NoError(t, Add(v, reflect.ValueOf(1)))
		require.NoError(t, Add(v, reflect.ValueOf(2)))
		assert.Equal(t, []int{1, 2}, v.Interface())
	})

	t.Run("Should build and fill maps", func(t *testing.T) {
		v, err := Make(reflect.TypeFor[map[string]int](), 1)
		require.NoError(t, err)
		require.NoError(t, Put(v, reflect.ValueOf("k"), reflect.ValueOf(9)))
		assert.Equal(t, map[string]int{"k": 9}, v.Interface())
	})

	t.Run("Should fill containers through their methods", func(t *testing.T) {
		v, err := Make(reflect.TypeFor[Deque[int]](), 1)
		require.NoError(t, err)
		require.NoError(t, Add(v, reflect.ValueOf(5)))
		d := v.Interface().(Deque[int])
		assert.Equal(t, []int{5}, d.Values())

		m, err := Make(reflect.TypeFor[SortedMap[point, int]](), 1)
		require.NoError(t, err)
		err = Put(m, reflect.ValueOf(point{}), reflect.ValueOf(1))
		assert.ErrorIs(t, err, ErrUnordered)
	})

	t.Run("Should classify container types", func(t *testing.T) {
		assert.True(t, IsSequence(reflect.TypeFor[Set[int]]()))
		assert.True(t, IsSequence(reflect.TypeFor[Queue[point]]()))
		assert.False(t, IsSequence(reflect.TypeFor[SortedMap[int, int]]()))
		assert.True(t, IsMapping(reflect.TypeFor[LinkedMap[string, int]]()))
		assert.True(t, IsMapping(reflect.TypeFor[ConcurrentMap[string, int]]()))
		assert.False(t, IsMapping(reflect.TypeFor[point]()))
	})

	t.Run("Should reject non-collection types", func(t *testing.T) {
		_, err := Make(reflect.TypeFor[point](), 1)
		assert.Error(t, err)
		_, err = Make(reflect.TypeFor[[]int](), -1)
		assert.Error(t, err)
		v := reflect.New(reflect.TypeFor[point]()).Elem()
		assert.Error(t, Add(v, reflect.ValueOf(1)))
	})
}
