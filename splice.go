package ringdeque

import "fmt"

// Insert puts t in front of the element at pos and returns a cursor to it.
// pos must be a valid cursor of d anywhere from Begin to End inclusive;
// inserting at End appends.
//
// Elements are shifted from whichever end of the deque is closer to pos, so
// Insert costs O(min(i, Len-i)) for logical position i. If growing or
// constructing t fails, d is left unchanged and the error is returned. Every
// cursor taken before the call is invalidated.
func (d *RingDeque[T]) Insert(pos Position[T], t T) (Cursor[T], error) {
	// Growth repacks the buffer, so only the logical position survives it.
	i := d.indexOf(pos)
	if i > d.count {
		panic(fmt.Sprintf("ringdeque: Insert at index %d with length %d", i, d.count))
	}

	v, err := d.construct(t)
	if err != nil {
		return Cursor[T]{}, err
	}
	if d.needsGrowth() {
		if err := d.ensureCapacity(); err != nil {
			return Cursor[T]{}, err
		}
	}

	switch {
	case i == 0:
		d.placeFront(v)
		return d.Begin(), nil
	case i == d.count:
		d.placeBack(v)
		return Cursor[T]{d.cursorAt(d.right)}, nil
	}

	target := d.index(i)
	var cur uint
	if i < d.count-1-i {
		// Open a slot at the front and slide [left, target) one step
		// towards it.
		d.placeFront(d.buf[d.left])
		cur = d.left
		for d.next(cur) != target {
			d.buf[cur] = d.buf[d.next(cur)]
			cur = d.next(cur)
		}
	} else {
		cur = d.right
		d.placeBack(d.buf[d.right])
		for cur != target {
			d.buf[cur] = d.buf[d.prev(cur)]
			cur = d.prev(cur)
		}
	}
	d.buf[cur] = v
	return Cursor[T]{d.cursorAt(cur)}, nil
}

// Erase removes the element at pos and returns a cursor to the element that
// took its logical position, or End if it was the last one. pos must point
// at an element of d. Panics if d is empty.
//
// Like Insert, Erase moves the elements between pos and the closer end of
// the deque, costing O(min(i, Len-i)).
func (d *RingDeque[T]) Erase(pos Position[T]) Cursor[T] {
	d.checkNotEmpty("Erase")
	i := d.indexOf(pos)
	if i >= d.count {
		panic(fmt.Sprintf("ringdeque: Erase at index %d with length %d", i, d.count))
	}

	target := d.index(i)
	cur := target
	if i < d.count-1-i {
		// Bubble the erased element out through the front.
		for range i {
			p := d.prev(cur)
			d.buf[p], d.buf[cur] = d.buf[cur], d.buf[p]
			cur = p
		}
		d.PopFront()
		return Cursor[T]{d.cursorAt(d.next(target))}
	}
	for range d.count - 1 - i {
		n := d.next(cur)
		d.buf[n], d.buf[cur] = d.buf[cur], d.buf[n]
		cur = n
	}
	d.PopBack()
	return Cursor[T]{d.cursorAt(target)}
}

// indexOf returns the logical position of pos in d.
func (d *RingDeque[T]) indexOf(pos Position[T]) uint {
	n := d.cap()
	if n == 0 {
		return 0
	}
	return (pos.cursor().pos + n - d.left) % n
}
