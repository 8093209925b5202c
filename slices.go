package ringdeque

import (
	"iter"
	"slices"
)

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// FromSlice copies every element of s into a new RingDeque whose buffer has
// room for exactly len(s) elements. Memory is not shared with s and the Copy
// option is not involved.
func FromSlice[T any](s []T) (*RingDeque[T], error) {
	if len(s) == 0 {
		return MakeRingDeque[T](), nil
	}
	d, err := MakeRingDequeWithCapacity[T](len(s) + 1)
	if err != nil {
		return nil, err
	}
	copy(d.buf, s)
	d.count = uint(len(s))
	d.right = d.count - 1
	return d, nil
}

// Helper to reuse the slices package functions. a holds the elements from
// left up to the end of the buffer and b the ones that wrapped to its start.
func (d *RingDeque[T]) slices() (a, b []T) {
	if d == nil || d.Empty() {
		return nil, nil
	}
	if d.left <= d.right {
		return d.buf[d.left : d.right+1], nil
	}
	return d.buf[d.left:], d.buf[:d.right+1]
}

// ToSlice allocates a slice holding a copy of every element in order.
func (d *RingDeque[T]) ToSlice() []T {
	return d.AppendTo(make([]T, 0, d.Len()))
}

// AppendTo appends every element in order to s and returns the result, like
// the append built-in.
func (d *RingDeque[T]) AppendTo(s []T) []T {
	a, b := d.slices()
	return append(append(s, a...), b...)
}

// Contains returns whether the element is in the RingDeque. This must not be
// a method, otherwise RingDeque would be constrained to comparable elements.
// It has the same semantics as slices.Contains.
func Contains[T comparable](d *RingDeque[T], t T) bool {
	a, b := d.slices()
	return slices.Contains(a, t) || slices.Contains(b, t)
}

// ContainsFunc returns whether an element satisfying f is in the RingDeque.
func (d *RingDeque[T]) ContainsFunc(f func(T) bool) bool {
	a, b := d.slices()
	return slices.ContainsFunc(a, f) || slices.ContainsFunc(b, f)
}

// Index returns the logical index of the first occurrence of t in the
// RingDeque or -1 if absent. It has the same semantics as slices.Index.
func Index[T comparable](d *RingDeque[T], t T) int {
	return d.IndexFunc(func(x T) bool { return x == t })
}

// IndexFunc returns the logical index of the first element that satisfies f
// or -1 if none do.
func (d *RingDeque[T]) IndexFunc(f func(T) bool) int {
	a, b := d.slices()
	if i := slices.IndexFunc(a, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(b, f); i != -1 {
		return i + len(a)
	}
	return -1
}

// Equal returns whether both RingDeques hold the same elements in the same
// order. Buffer layout and capacity don't matter. Two nil RingDeques are
// equal, but an empty RingDeque and nil are not.
func Equal[T comparable](d1, d2 *RingDeque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with f deciding whether two elements are equal.
func (d1 *RingDeque[T]) EqualFunc(d2 *RingDeque[T], f func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.count != d2.count {
		return false
	}
	for i := range d1.count {
		if !f(d1.buf[d1.index(i)], d2.buf[d2.index(i)]) {
			return false
		}
	}
	return true
}

// ForEach calls f in order for every element, until the first call that
// returns false.
func (d *RingDeque[T]) ForEach(f func(T) bool) {
	for t := range d.Iter() {
		if !f(t) {
			return
		}
	}
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead. The iterator reads the buffer of the time it started, so
// pushing during iteration does not make it panic.
func (d *RingDeque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.slices()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All.
func (d *RingDeque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for t := range d.Iter() {
			if !yield(i, t) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front. It
// has the same semantics as slices.Backward.
func (d *RingDeque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.slices()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(len(a)+i, b[i]) {
				return
			}
		}
		for i := len(a) - 1; i >= 0; i-- {
			if !yield(i, a[i]) {
				return
			}
		}
	}
}
