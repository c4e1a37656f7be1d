package collection

import (
	"reflect"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is implemented by the key/value containers of this package.
type Mapping interface {
	Len() int
	mapping()
}

// SortedMap keeps its keys in ascending order in a red-black tree. K must be
// ordered (numbers, strings or a Compare/Cmp method); Put reports ErrUnordered otherwise.
type SortedMap[K comparable, V any] struct {
	tree *treemap.Map
}

func (m *SortedMap[K, V]) init() error {
	if m.tree != nil {
		return nil
	}
	comparator, err := comparatorFor(reflect.TypeFor[K]())
	if err != nil {
		return err
	}
	m.tree = treemap.NewWith(comparator)
	return nil
}

func (m *SortedMap[K, V]) Put(k K, v V) error {
	if err := m.init(); err != nil {
		return err
	}
	m.tree.Put(k, v)
	return nil
}

func (m *SortedMap[K, V]) Get(k K) (V, bool) {
	var zero V
	if m.tree == nil {
		return zero, false
	}
	v, ok := m.tree.Get(k)
	if !ok {
		return zero, false
	}
	return v.(V), true
}

func (m *SortedMap[K, V]) Remove(k K) {
	if m.tree != nil {
		m.tree.Remove(k)
	}
}

func (m *SortedMap[K, V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Size()
}

// Keys returns the keys in ascending order.
func (m *SortedMap[K, V]) Keys() []K {
	if m.tree == nil {
		return nil
	}
	return castAll[K](m.tree.Keys())
}

func (m *SortedMap[K, V]) MarshalJSON() ([]byte, error) {
	if m.tree == nil {
		return []byte("{}"), nil
	}
	return marshalPairs(m.tree.Keys(), m.tree.Values())
}

func (*SortedMap[K, V]) mapping() {}

// ConcurrentMap is a hash map guarded by a read/write lock. It must not be
// copied after first use.
type ConcurrentMap[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func (m *ConcurrentMap[K, V]) Put(k K, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = make(map[K]V)
	}
	m.items[k] = v
}

func (m *ConcurrentMap[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[k]
	return v, ok
}

func (m *ConcurrentMap[K, V]) Remove(k K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, k)
}

func (m *ConcurrentMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Range calls fn for each pair until fn returns false. fn must not modify the map.
func (m *ConcurrentMap[K, V]) Range(fn func(K, V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.items {
		if !fn(k, v) {
			return
		}
	}
}

func (m *ConcurrentMap[K, V]) MarshalJSON() ([]byte, error) {
	var keys, values []any
	m.Range(func(k K, v V) bool {
		keys = append(keys, k)
		values = append(values, v)
		return true
	})
	return marshalPairs(keys, values)
}

func (*ConcurrentMap[K, V]) mapping() {}

// ConcurrentSortedMap is a SortedMap guarded by a read/write lock.
type ConcurrentSortedMap[K comparable, V any] struct {
	mu     sync.RWMutex
	sorted SortedMap[K, V]
}

func (m *ConcurrentSortedMap[K, V]) Put(k K, v V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted.Put(k, v)
}

func (m *ConcurrentSortedMap[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted.Get(k)
}

func (m *ConcurrentSortedMap[K, V]) Remove(k K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sorted.Remove(k)
}

func (m *ConcurrentSortedMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted.Len()
}

func (m *ConcurrentSortedMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted.Keys()
}

func (m *ConcurrentSortedMap[K, V]) MarshalJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted.MarshalJSON()
}

func (*ConcurrentSortedMap[K, V]) mapping() {}

// LinkedMap remembers insertion order. Re-putting a key keeps its position.
type LinkedMap[K comparable, V any] struct {
	pairs *orderedmap.OrderedMap[K, V]
}

func (m *LinkedMap[K, V]) Put(k K, v V) {
	if m.pairs == nil {
		m.pairs = orderedmap.New[K, V]()
	}
	m.pairs.Set(k, v)
}

func (m *LinkedMap[K, V]) Get(k K) (V, bool) {
	if m.pairs == nil {
		var zero V
		return zero, false
	}
	return m.pairs.Get(k)
}

func (m *LinkedMap[K, V]) Remove(k K) {
	if m.pairs != nil {
		m.pairs.Delete(k)
	}
}

func (m *LinkedMap[K, V]) Len() int {
	if m.pairs == nil {
		return 0
	}
	return m.pairs.Len()
}

// Keys returns the keys in insertion order.
func (m *LinkedMap[K, V]) Keys() []K {
	if m.pairs == nil {
		return nil
	}
	out := make([]K, 0, m.pairs.Len())
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (m *LinkedMap[K, V]) MarshalJSON() ([]byte, error) {
	if m.pairs == nil {
		return []byte("{}"), nil
	}
	keys := make([]any, 0, m.pairs.Len())
	values := make([]any, 0, m.pairs.Len())
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
		values = append(values, pair.Value)
	}
	return marshalPairs(keys, values)
}

func (*LinkedMap[K, V]) mapping() {}
