package collection

import (
	"cmp"
	"encoding/json"
	"reflect"
	"slices"

	list "github.com/bahlo/generic-list-go"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
)

// Sequence is implemented by the element containers of this package.
type Sequence interface {
	Len() int
	sequence()
}

// Set is an unordered set backed by a hash set.
type Set[T comparable] struct {
	items *hashset.Set
}

func (s *Set[T]) init() {
	if s.items == nil {
		s.items = hashset.New()
	}
}

// Add inserts v. Adding a present value is a no-op.
func (s *Set[T]) Add(v T) {
	s.init()
	s.items.Add(v)
}

func (s *Set[T]) Remove(v T) {
	if s.items != nil {
		s.items.Remove(v)
	}
}

func (s *Set[T]) Contains(v T) bool {
	return s.items != nil && s.items.Contains(v)
}

func (s *Set[T]) Len() int {
	if s.items == nil {
		return 0
	}
	return s.items.Size()
}

// Values returns the elements in no particular order.
func (s *Set[T]) Values() []T {
	if s.items == nil {
		return nil
	}
	return castAll[T](s.items.Values())
}

func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (*Set[T]) sequence() {}

// SortedSet keeps its elements in ascending order in a red-black tree. T must be
// ordered (numbers, strings or a Compare/Cmp method); Add reports ErrUnordered otherwise.
type SortedSet[T comparable] struct {
	items *treeset.Set
}

func (s *SortedSet[T]) init() error {
	if s.items != nil {
		return nil
	}
	comparator, err := comparatorFor(reflect.TypeFor[T]())
	if err != nil {
		return err
	}
	s.items = treeset.NewWith(comparator)
	return nil
}

func (s *SortedSet[T]) Add(v T) error {
	if err := s.init(); err != nil {
		return err
	}
	s.items.Add(v)
	return nil
}

func (s *SortedSet[T]) Contains(v T) bool {
	return s.items != nil && s.items.Contains(v)
}

func (s *SortedSet[T]) Len() int {
	if s.items == nil {
		return 0
	}
	return s.items.Size()
}

// Values returns the elements in ascending order.
func (s *SortedSet[T]) Values() []T {
	if s.items == nil {
		return nil
	}
	return castAll[T](s.items.Values())
}

func (s *SortedSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (*SortedSet[T]) sequence() {}

type queued[T any] struct {
	seq   uint64
	value T
}

// Queue is a priority queue backed by a binary heap. Elements that can be
// ordered (numbers, strings or a Compare/Cmp method) leave in ascending order,
// ties in insertion order. Any other element type never reports ErrUnordered:
// the queue falls back to plain FIFO order.
type Queue[T any] struct {
	heap *priorityqueue.Queue
	seq  uint64
}

func (q *Queue[T]) init() {
	if q.heap != nil {
		return
	}
	q.heap = priorityqueue.NewWith(queueComparator[T]())
}

func queueComparator[T any]() func(a, b any) int {
	byValue, err := comparatorFor(reflect.TypeFor[T]())
	if err != nil {
		byValue = nil
	}
	return func(a, b any) int {
		x, y := a.(queued[T]), b.(queued[T])
		if byValue != nil {
			if c := byValue(x.value, y.value); c != 0 {
				return c
			}
		}
		return cmp.Compare(x.seq, y.seq)
	}
}

func (q *Queue[T]) Add(v T) {
	q.init()
	q.seq++
	q.heap.Enqueue(queued[T]{seq: q.seq, value: v})
}

// Poll removes and returns the head of the queue.
func (q *Queue[T]) Poll() (T, bool) {
	var zero T
	if q.heap == nil {
		return zero, false
	}
	item, ok := q.heap.Dequeue()
	if !ok {
		return zero, false
	}
	return item.(queued[T]).value, true
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.heap == nil {
		return zero, false
	}
	item, ok := q.heap.Peek()
	if !ok {
		return zero, false
	}
	return item.(queued[T]).value, true
}

func (q *Queue[T]) Len() int {
	if q.heap == nil {
		return 0
	}
	return q.heap.Size()
}

// Values returns the elements in the order Poll would return them.
func (q *Queue[T]) Values() []T {
	if q.heap == nil {
		return nil
	}
	items := q.heap.Values()
	slices.SortFunc(items, queueComparator[T]())
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.(queued[T]).value
	}
	return out
}

func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Values())
}

func (*Queue[T]) sequence() {}

// Deque is a double-ended queue backed by a doubly linked list.
type Deque[T any] struct {
	items *list.List[T]
}

func (d *Deque[T]) init() {
	if d.items == nil {
		d.items = list.New[T]()
	}
}

// Add appends v at the back.
func (d *Deque[T]) Add(v T) {
	d.PushBack(v)
}

func (d *Deque[T]) PushBack(v T) {
	d.init()
	d.items.PushBack(v)
}

func (d *Deque[T]) PushFront(v T) {
	d.init()
	d.items.PushFront(v)
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	return d.items.Remove(d.items.Front()), true
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	return d.items.Remove(d.items.Back()), true
}

func (d *Deque[T]) Len() int {
	if d.items == nil {
		return 0
	}
	return d.items.Len()
}

// Values returns the elements front to back.
func (d *Deque[T]) Values() []T {
	if d.items == nil {
		return nil
	}
	out := make([]T, 0, d.items.Len())
	for e := d.items.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Values())
}

func (*Deque[T]) sequence() {}

func castAll[T any](items []any) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.(T)
	}
	return out
}
