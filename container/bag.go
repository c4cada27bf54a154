// Package container provides the index-addressable primitives the ECS core
// is built on: a sparse growable store, a dynamic bit set, and an integer
// FIFO queue.
package container

const defaultBagCapacity = 16

type slot[T any] struct {
	value    T
	occupied bool
}

// Bag is a sparse, auto-growing container addressed by index. Removal nulls
// the slot and never compacts, so indices stay stable; this is what makes a
// Bag usable as a map keyed by entity ID. Reads outside the current capacity
// report absence rather than failing, because entity IDs are not required to
// be contiguous at the moment of query.
type Bag[T any] struct {
	slots []slot[T]
	size  int // highest occupied index + 1
	count int // occupied slots
}

// NewBag creates a bag with the given initial capacity. A capacity below one
// falls back to the default.
func NewBag[T any](capacity int) *Bag[T] {
	if capacity < 1 {
		capacity = defaultBagCapacity
	}
	return &Bag[T]{slots: make([]slot[T], capacity)}
}

// Get returns the value at index i, or absence when the slot is empty or i
// lies outside the current capacity.
func (b *Bag[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(b.slots) {
		var zero T
		return zero, false
	}
	s := b.slots[i]
	return s.value, s.occupied
}

// Set stores v at index i, growing the backing storage first when i is
// beyond the current capacity. Overwriting an occupied slot replaces the
// value.
func (b *Bag[T]) Set(i int, v T) {
	if i < 0 {
		return
	}
	b.EnsureCapacity(i + 1)
	s := &b.slots[i]
	if !s.occupied {
		b.count++
		s.occupied = true
	}
	s.value = v
	if i >= b.size {
		b.size = i + 1
	}
}

// Add appends v at the next slot past the current size and returns its index.
func (b *Bag[T]) Add(v T) int {
	i := b.size
	b.Set(i, v)
	return i
}

// RemoveAt empties the slot at index i and returns the value it held. The
// slot is zeroed in place; later slots keep their indices.
func (b *Bag[T]) RemoveAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(b.slots) || !b.slots[i].occupied {
		return zero, false
	}
	v := b.slots[i].value
	b.slots[i] = slot[T]{}
	b.count--
	if i == b.size-1 {
		b.shrinkSize()
	}
	return v, true
}

func (b *Bag[T]) shrinkSize() {
	for b.size > 0 && !b.slots[b.size-1].occupied {
		b.size--
	}
}

// EnsureCapacity grows the backing storage to hold at least n slots. Growth
// at least doubles the capacity, keeping appends amortized O(1).
func (b *Bag[T]) EnsureCapacity(n int) {
	if n <= len(b.slots) {
		return
	}
	newCap := len(b.slots) * 2
	if newCap < n {
		newCap = n
	}
	grown := make([]slot[T], newCap)
	copy(grown, b.slots)
	b.slots = grown
}

// Size reports the highest occupied index plus one.
func (b *Bag[T]) Size() int {
	return b.size
}

// Count reports the number of occupied slots.
func (b *Bag[T]) Count() int {
	return b.count
}

// Capacity reports the number of allocated slots.
func (b *Bag[T]) Capacity() int {
	return len(b.slots)
}

// Each visits occupied slots in index order. Returning false stops the walk.
func (b *Bag[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < b.size; i++ {
		if !b.slots[i].occupied {
			continue
		}
		if !fn(i, b.slots[i].value) {
			return
		}
	}
}

// Clear empties every slot, retaining the allocated capacity.
func (b *Bag[T]) Clear() {
	for i := range b.slots {
		b.slots[i] = slot[T]{}
	}
	b.size = 0
	b.count = 0
}
