// Package ringdeque provides RingDeque, a double-ended queue with random
// access and cursor based insertion and removal, backed by a single ring
// buffer that grows on demand.
//
// A RingDeque always keeps one slot of its buffer unused, so the first and
// last live elements can be tracked with two indices without ambiguity
// between the empty and the full state. When a push would use that slot, the
// buffer is reallocated to 2*capacity-1 slots and the elements are repacked
// from index 0.
//
// Cursors are cheap values pointing into one generation of the buffer. They
// order themselves by how many steps they are from the front of the deque,
// not by raw index, so Begin() <= c <= End() holds even when the live window
// wraps around the end of the buffer. Growing the deque invalidates every
// cursor taken before.
//
// Insert and Erase shift elements from whichever end is closer to the
// target, so they cost O(min(i, n-i)).
package ringdeque
