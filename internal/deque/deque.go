package deque

import (
	"iter"
	"slices"
)

const minCapacity = 4

// Deque is a double-ended queue backed by a ring buffer.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// NewWithCapacity reduces allocations when approximate size is known.
func NewWithCapacity[T any](capacity int) *Deque[T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Deque[T]{
		buf: make([]T, capacity),
	}
}

// From builds a deque holding items in order, front first.
func From[T any](items ...T) *Deque[T] {
	d := NewWithCapacity[T](len(items))
	d.PushBack(items...)
	return d
}

// PushBack appends items in order with the last item at the back.
func (d *Deque[T]) PushBack(items ...T) {
	for _, item := range items {
		d.grow()
		d.buf[d.index(d.count)] = item
		d.count++
	}
}

// PushFront prepends items one at a time, so the last item ends up at the front.
func (d *Deque[T]) PushFront(items ...T) {
	for _, item := range items {
		d.grow()
		d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
		d.buf[d.head] = item
		d.count++
	}
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}

	i := d.index(d.count - 1)
	item := d.buf[i]
	d.buf[i] = zero
	d.count--
	return item, true
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}

	item := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return item, true
}

// Get returns the item at position i counted from the front.
func (d *Deque[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	return d.buf[d.index(i)], true
}

// Ref allows modifying the item at position i in place.
func (d *Deque[T]) Ref(i int) *T {
	if i < 0 || i >= d.count {
		return nil
	}
	return &d.buf[d.index(i)]
}

func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

func (d *Deque[T]) Len() int {
	return d.count
}

// All yields items front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range d.count {
			if !yield(i, d.buf[d.index(i)]) {
				return
			}
		}
	}
}

// ToSlice orders from front to back.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.count)
	for i := range d.count {
		out[i] = d.buf[d.index(i)]
	}
	return out
}

func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{
		buf:   slices.Clone(d.buf),
		head:  d.head,
		count: d.count,
	}
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.buf)
}

// grow makes room for one more item, unwrapping the ring into a larger buffer.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}

	capacity := max(2*len(d.buf), minCapacity)
	buf := make([]T, capacity)
	for i := range d.count {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
