package ringdeque

// Position is anything that points at a slot of a RingDeque: Cursor and
// ConstCursor. Insert and Erase take a Position.
type Position[T any] interface {
	cursor() cursor[T]
}

// Reader is a Position whose element can be read.
type Reader[T any] interface {
	Position[T]
	Value() T
}

// Writer is a Reader whose element can be replaced in place.
type Writer[T any] interface {
	Reader[T]
	Set(T)
	Ptr() *T
}

// cursor is the representation shared by Cursor and ConstCursor. buf is the
// buffer the cursor was taken from and len(buf) is the capacity it wraps at.
// left is the front of the deque at that time; cursors are ordered by how
// many steps they are from it.
type cursor[T any] struct {
	pos, left uint
	buf       []T
}

func (c cursor[T]) capacity() uint { return uint(len(c.buf)) }

func (c cursor[T]) next() cursor[T] {
	if n := c.capacity(); n > 0 {
		c.pos = (c.pos + 1) % n
	}
	return c
}

func (c cursor[T]) prev() cursor[T] {
	if n := c.capacity(); n > 0 {
		c.pos = (c.pos + n - 1) % n
	}
	return c
}

func (c cursor[T]) add(k int) cursor[T] {
	n := c.capacity()
	if n == 0 {
		return c
	}
	m := k % int(n)
	if m < 0 {
		m += int(n)
	}
	c.pos = (c.pos + uint(m)) % n
	return c
}

// index is the number of steps from left to pos going forward around the
// ring.
func (c cursor[T]) index() int {
	n := c.capacity()
	if n == 0 {
		return 0
	}
	return int((c.pos + n - c.left) % n)
}

func compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

/*****************************************************************************
 * CONST CURSOR
 *****************************************************************************/

// ConstCursor is a read-only random access cursor into a RingDeque. It is a
// plain value: copying it or moving a copy never affects the original.
//
// A ConstCursor is only valid until the deque it came from grows, is
// cleared, swapped or assigned, or until the element it points at is
// removed. Using it after that is a programming error that is not detected.
type ConstCursor[T any] struct{ c cursor[T] }

func (c ConstCursor[T]) cursor() cursor[T] { return c.c }

// Value returns the element under the cursor. Must not be called on End.
func (c ConstCursor[T]) Value() T { return c.c.buf[c.c.pos] }

// Next returns a cursor one step towards the back. It is not bounds checked.
func (c ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c.c.next()} }

// Prev returns a cursor one step towards the front. It is not bounds checked.
func (c ConstCursor[T]) Prev() ConstCursor[T] { return ConstCursor[T]{c.c.prev()} }

// Add returns a cursor k steps towards the back; k may be negative.
func (c ConstCursor[T]) Add(k int) ConstCursor[T] { return ConstCursor[T]{c.c.add(k)} }

// Sub returns a cursor k steps towards the front; k may be negative.
func (c ConstCursor[T]) Sub(k int) ConstCursor[T] { return ConstCursor[T]{c.c.add(-k)} }

// Index returns the logical position of the cursor: 0 for Begin, Len for End.
func (c ConstCursor[T]) Index() int { return c.c.index() }

// Distance returns c.Index() - o.Index().
func (c ConstCursor[T]) Distance(o Position[T]) int { return c.c.index() - o.cursor().index() }

// Compare returns -1, 0 or 1 as c is before, at or after o.
func (c ConstCursor[T]) Compare(o Position[T]) int { return compare(c.c.index(), o.cursor().index()) }

// Equal reports whether c and o point at the same logical position.
func (c ConstCursor[T]) Equal(o Position[T]) bool { return c.Compare(o) == 0 }

// Less reports whether c is before o.
func (c ConstCursor[T]) Less(o Position[T]) bool { return c.Compare(o) < 0 }

/*****************************************************************************
 * CURSOR
 *****************************************************************************/

// Cursor is a ConstCursor that can also replace the element it points at.
// The same validity rules apply.
type Cursor[T any] struct{ c cursor[T] }

func (c Cursor[T]) cursor() cursor[T] { return c.c }

// ReadOnly returns a ConstCursor at the same position.
func (c Cursor[T]) ReadOnly() ConstCursor[T] { return ConstCursor[T]{c.c} }

// Value returns the element under the cursor. Must not be called on End.
func (c Cursor[T]) Value() T { return c.c.buf[c.c.pos] }

// Ptr returns a pointer to the element under the cursor. The pointer is
// invalidated together with the cursor.
func (c Cursor[T]) Ptr() *T { return &c.c.buf[c.c.pos] }

// Set replaces the element under the cursor.
func (c Cursor[T]) Set(t T) { c.c.buf[c.c.pos] = t }

// The rest of Cursor's methods behave as ConstCursor's.

func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{c.c.next()} }

func (c Cursor[T]) Prev() Cursor[T] { return Cursor[T]{c.c.prev()} }

func (c Cursor[T]) Add(k int) Cursor[T] { return Cursor[T]{c.c.add(k)} }

func (c Cursor[T]) Sub(k int) Cursor[T] { return Cursor[T]{c.c.add(-k)} }

func (c Cursor[T]) Index() int { return c.c.index() }

func (c Cursor[T]) Distance(o Position[T]) int { return c.c.index() - o.cursor().index() }

func (c Cursor[T]) Compare(o Position[T]) int { return compare(c.c.index(), o.cursor().index()) }

func (c Cursor[T]) Equal(o Position[T]) bool { return c.Compare(o) == 0 }

func (c Cursor[T]) Less(o Position[T]) bool { return c.Compare(o) < 0 }

/*****************************************************************************
 * REVERSE CURSOR
 *****************************************************************************/

// ReverseCursor walks a RingDeque from back to front. It wraps a Cursor one
// step past the element it reads, so RBegin wraps End and REnd wraps Begin.
type ReverseCursor[T any] struct{ base Cursor[T] }

// Base returns the wrapped cursor, which points one element towards the back
// of the one r reads.
func (r ReverseCursor[T]) Base() Cursor[T] { return r.base }

func (r ReverseCursor[T]) Value() T { return r.base.Prev().Value() }
func (r ReverseCursor[T]) Ptr() *T  { return r.base.Prev().Ptr() }
func (r ReverseCursor[T]) Set(t T)  { r.base.Prev().Set(t) }

// Next moves towards the front of the deque.
func (r ReverseCursor[T]) Next() ReverseCursor[T] { return ReverseCursor[T]{r.base.Prev()} }

// Prev moves towards the back of the deque.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] { return ReverseCursor[T]{r.base.Next()} }

func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool { return r.base.Equal(o.base) }

/*****************************************************************************
 * CURSOR FACTORIES
 *****************************************************************************/

func (d *RingDeque[T]) cursorAt(pos uint) cursor[T] {
	return cursor[T]{pos: pos, left: d.left, buf: d.buf}
}

func (d *RingDeque[T]) endPos() uint {
	if d.count == 0 {
		return d.right
	}
	return d.next(d.right)
}

// Begin returns a cursor at the first element.
func (d *RingDeque[T]) Begin() Cursor[T] { return Cursor[T]{d.cursorAt(d.left)} }

// End returns a cursor one past the last element. On an empty deque it is
// equal to Begin.
func (d *RingDeque[T]) End() Cursor[T] { return Cursor[T]{d.cursorAt(d.endPos())} }

// CBegin is Begin as a ConstCursor.
func (d *RingDeque[T]) CBegin() ConstCursor[T] { return ConstCursor[T]{d.cursorAt(d.left)} }

// CEnd is End as a ConstCursor.
func (d *RingDeque[T]) CEnd() ConstCursor[T] { return ConstCursor[T]{d.cursorAt(d.endPos())} }

// RBegin returns a reverse cursor at the last element.
func (d *RingDeque[T]) RBegin() ReverseCursor[T] { return ReverseCursor[T]{d.End()} }

// REnd returns a reverse cursor one before the first element.
func (d *RingDeque[T]) REnd() ReverseCursor[T] { return ReverseCursor[T]{d.Begin()} }

// CursorAt returns a cursor at logical position i, where i == Len gives End.
// Panics if i is out of [0, Len].
func (d *RingDeque[T]) CursorAt(i int) Cursor[T] {
	if i == d.Len() {
		return d.End()
	}
	d.checkBounds(i)
	return Cursor[T]{d.cursorAt(d.index(uint(i)))}
}
