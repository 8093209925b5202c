package ringdeque

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// RingDeque is a double-ended queue with random access and O(min(i, n-i))
// insertion and removal at any position.
//
// Elements live in one ring buffer. left and right are the raw indices of the
// first and last element; one slot is always left unused so an empty deque
// and a full one never look the same. A zero RingDeque is empty and holds no
// buffer, so it is ready to use:
//
//	var d RingDeque[int] // fine
//
// When a push would fill the last free slot the buffer is reallocated to
// 2*capacity-1 slots. Growth is transactional: if copying an element into the
// new buffer fails, the deque keeps its old buffer and contents.
//
// RingDeque is not safe to use concurrently from multiple goroutines.
type RingDeque[T any] struct {
	buf         []T
	count       uint
	left, right uint
	copyFn      func(T) (T, error)
}

// Options configures a RingDeque built with MakeRingDequeWithOptions.
//
//   - Capacity: slots to allocate up front (0 = allocate on first push)
//   - Copy:     builds the stored element from a pushed value. It runs for
//     every element written into the buffer, including the copies made while
//     growing or cloning. A nil Copy stores values as they are.
type Options[T any] struct {
	Capacity int
	Copy     func(T) (T, error)
}

// DefaultOptions returns the options MakeRingDeque uses.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{}
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeRingDeque returns an empty RingDeque. Nothing is allocated until the
// first push.
func MakeRingDeque[T any]() *RingDeque[T] {
	return &RingDeque[T]{}
}

// MakeRingDequeWithCapacity allocates exactly capacity slots. Since one slot
// is always kept free, the deque holds capacity-1 elements before growing.
// It returns ErrNegativeCapacity for a negative capacity and ErrAllocation if
// the buffer cannot be allocated.
func MakeRingDequeWithCapacity[T any](capacity int) (*RingDeque[T], error) {
	opts := DefaultOptions[T]()
	opts.Capacity = capacity
	return MakeRingDequeWithOptions(opts)
}

// MakeRingDequeWithOptions builds a RingDeque from opts. No deque is returned
// when the buffer cannot be allocated.
func MakeRingDequeWithOptions[T any](opts Options[T]) (*RingDeque[T], error) {
	if opts.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	buf, err := allocate[T](uint(opts.Capacity))
	if err != nil {
		return nil, err
	}
	return &RingDeque[T]{buf: buf, copyFn: opts.Copy}, nil
}

func (d *RingDeque[T]) withCapacity(capacity uint) (*RingDeque[T], error) {
	buf, err := allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	return &RingDeque[T]{buf: buf, copyFn: d.copyFn}, nil
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the RingDeque or 0 if nil.
func (d *RingDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.count)
}

// Cap returns the number of slots in the buffer, including the one that is
// always kept free.
func (d *RingDeque[T]) Cap() int  { return len(d.buf) }
func (d *RingDeque[T]) cap() uint { return uint(len(d.buf)) }

// Empty returns whether the RingDeque is empty.
func (d *RingDeque[T]) Empty() bool { return d.count == 0 }

// Full returns whether the next push reallocates.
func (d *RingDeque[T]) Full() bool { return d.needsGrowth() }

// PushBack puts t at the back of the RingDeque, growing it first if needed.
// If the element cannot be constructed the deque is left exactly as it was
// and the error is returned.
func (d *RingDeque[T]) PushBack(t T) error {
	if d.needsGrowth() {
		if err := d.ensureCapacity(); err != nil {
			return err
		}
	}
	return d.pushBack(t)
}

// PushFront puts t at the front of the RingDeque, growing it first if
// needed. If the element cannot be constructed the deque is left exactly as
// it was and the error is returned.
func (d *RingDeque[T]) PushFront(t T) error {
	if d.needsGrowth() {
		if err := d.ensureCapacity(); err != nil {
			return err
		}
	}
	return d.pushFront(t)
}

// PopBack removes the last element and returns it. The vacated slot is
// zeroed. Panics if the RingDeque is empty.
func (d *RingDeque[T]) PopBack() T {
	d.checkNotEmpty("PopBack")
	t := d.buf[d.right]
	var zero T
	d.buf[d.right] = zero
	d.count--
	if d.count == 0 {
		d.right = d.left
	} else {
		d.right = d.prev(d.right)
	}
	return t
}

// PopFront removes the first element and returns it. The vacated slot is
// zeroed. Panics if the RingDeque is empty.
func (d *RingDeque[T]) PopFront() T {
	d.checkNotEmpty("PopFront")
	t := d.buf[d.left]
	var zero T
	d.buf[d.left] = zero
	d.count--
	if d.count == 0 {
		d.left = d.right
	} else {
		d.left = d.next(d.left)
	}
	return t
}

// TryPopBack is PopBack for callers that don't know whether the RingDeque is
// empty. It returns false instead of panicking.
func (d *RingDeque[T]) TryPopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.PopBack(), true
}

// TryPopFront is PopFront for callers that don't know whether the RingDeque
// is empty. It returns false instead of panicking.
func (d *RingDeque[T]) TryPopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.PopFront(), true
}

// Front returns the first element. Panics if the RingDeque is empty.
func (d *RingDeque[T]) Front() T {
	d.checkNotEmpty("Front")
	return d.buf[d.left]
}

// Back returns the last element. Panics if the RingDeque is empty.
func (d *RingDeque[T]) Back() T {
	d.checkNotEmpty("Back")
	return d.buf[d.right]
}

// At indexes into the i-th position in the RingDeque. Panics if out of
// bounds.
func (d *RingDeque[T]) At(i int) T {
	d.checkBounds(i)
	return d.buf[d.index(uint(i))]
}

// Set writes t to the i-th position in the RingDeque. Panics if out of
// bounds. Set overwrites in place and does not run the Copy option.
func (d *RingDeque[T]) Set(i int, t T) {
	d.checkBounds(i)
	d.buf[d.index(uint(i))] = t
}

// Clear drops every element and the buffer, leaving the RingDeque as a fresh
// one built with the same options but no capacity.
func (d *RingDeque[T]) Clear() {
	*d = RingDeque[T]{copyFn: d.copyFn}
}

// Clone returns an independent copy of the RingDeque. The copy is built by
// pushing every element to the back of an empty deque, so its buffer is
// packed from index 0 regardless of how d is laid out.
func (d *RingDeque[T]) Clone() (*RingDeque[T], error) {
	c := &RingDeque[T]{copyFn: d.copyFn}
	for i := range d.count {
		if err := c.PushBack(d.buf[d.index(i)]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Assign replaces the contents of d with a copy of src. On error d is left
// untouched.
func (d *RingDeque[T]) Assign(src *RingDeque[T]) error {
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	d.Swap(tmp)
	return nil
}

// Swap exchanges the contents of d and other in O(1).
func (d *RingDeque[T]) Swap(other *RingDeque[T]) {
	*d, *other = *other, *d
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *RingDeque[T]) {
	a.Swap(b)
}

/*****************************************************************************
 * STORAGE
 *****************************************************************************/

func (d *RingDeque[T]) needsGrowth() bool {
	return len(d.buf) == 0 || d.count == d.cap()-1
}

// ensureCapacity moves the elements to a buffer of 2*capacity-1 slots. The
// new buffer is filled through PushBack on a scratch deque and only swapped
// in once every element made it, so a failure leaves d as it was.
func (d *RingDeque[T]) ensureCapacity() error {
	// Below 2 slots doubling would not add room.
	c := max(d.cap(), 2)
	if c > math.MaxInt/2+1 {
		return errors.Wrapf(ErrAllocation, "ringdeque: grow beyond %d slots", c)
	}
	newCap := 2*c - 1

	tmp, err := d.withCapacity(newCap)
	if err != nil {
		return errors.Wrapf(err, "ringdeque: grow from %d to %d slots", d.cap(), newCap)
	}
	for i := range d.count {
		if err := tmp.pushBack(d.buf[d.index(i)]); err != nil {
			return errors.Wrapf(err, "ringdeque: grow from %d to %d slots", d.cap(), newCap)
		}
	}
	d.Swap(tmp)
	return nil
}

// pushBack constructs t one past right. There must be room for it.
func (d *RingDeque[T]) pushBack(t T) error {
	if d.count > 0 {
		d.right = d.next(d.right)
	}
	v, err := d.construct(t)
	if err != nil {
		if d.count > 0 {
			d.right = d.prev(d.right)
		}
		return err
	}
	d.buf[d.right] = v
	d.count++
	return nil
}

// pushFront constructs t one before left. There must be room for it.
func (d *RingDeque[T]) pushFront(t T) error {
	if d.count > 0 {
		d.left = d.prev(d.left)
	}
	v, err := d.construct(t)
	if err != nil {
		if d.count > 0 {
			d.left = d.next(d.left)
		}
		return err
	}
	d.buf[d.left] = v
	d.count++
	return nil
}

// placeBack and placeFront store an element that is already constructed.
// There must be room for it.
func (d *RingDeque[T]) placeBack(v T) {
	if d.count > 0 {
		d.right = d.next(d.right)
	}
	d.buf[d.right] = v
	d.count++
}

func (d *RingDeque[T]) placeFront(v T) {
	if d.count > 0 {
		d.left = d.prev(d.left)
	}
	d.buf[d.left] = v
	d.count++
}

func (d *RingDeque[T]) construct(t T) (T, error) {
	if d.copyFn == nil {
		return t, nil
	}
	v, err := d.copyFn(t)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "ringdeque: construct element")
	}
	return v, nil
}

// allocate returns a buffer of capacity slots, or nil for 0.
func allocate[T any](capacity uint) (buf []T, err error) {
	if capacity == 0 {
		return nil, nil
	}
	var zero T
	size := uint(unsafe.Sizeof(zero))
	if capacity > math.MaxInt || (size > 0 && capacity > math.MaxInt/size) {
		return nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes", capacity, size)
	}
	defer func() {
		// make panics when the runtime refuses the size.
		if r := recover(); r != nil {
			buf, err = nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes: %v", capacity, size, r)
		}
	}()
	return make([]T, capacity), nil
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// index maps a logical position to a raw one.
func (d *RingDeque[T]) index(i uint) uint {
	return (d.left + i) % d.cap()
}

func (d *RingDeque[T]) next(x uint) uint {
	if x == d.cap()-1 {
		return 0
	}
	return x + 1
}

func (d *RingDeque[T]) prev(x uint) uint {
	if x == 0 {
		return d.cap() - 1
	}
	return x - 1
}

func (d *RingDeque[T]) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("ringdeque: index %d out of bounds with length %d", i, d.Len()))
	}
}

func (d *RingDeque[T]) checkNotEmpty(op string) {
	if d.count == 0 {
		panic("ringdeque: " + op + " on empty deque")
	}
}
