package ringdeque

import (
	"slices"
	"testing"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}
	d, err := FromSlice(s)
	if err != nil {
		t.Fatal(err)
	}
	assertElements(t, d, 1, 2, 3)
	if d.Cap() != 4 || !d.Full() {
		t.Fatalf("FromSlice should leave no spare room, Cap() = %d", d.Cap())
	}
	s[0] = 100
	if d.Front() != 1 {
		t.Fatal("FromSlice shares memory with its argument")
	}
	mustPushBack(t, d, 4)
	assertElements(t, d, 1, 2, 3, 4)

	empty, err := FromSlice[int](nil)
	if err != nil {
		t.Fatal(err)
	}
	assertElements(t, empty)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	d := wrapped(t)
	if !Contains(d, 4) || Contains(d, 5) {
		t.Fatal("Contains misses the wrapped part")
	}
	if !d.ContainsFunc(func(v int) bool { return v > 3 }) {
		t.Fatal("ContainsFunc misses the wrapped part")
	}
	for i, v := range []int{1, 2, 3, 4} {
		if got := Index(d, v); got != i {
			t.Fatalf("Index(%d) = %d, want %d", v, got, i)
		}
	}
	if Index(d, 0) != -1 {
		t.Fatal("Index of an absent element is not -1")
	}
	if got := d.IndexFunc(func(v int) bool { return v%2 == 0 }); got != 1 {
		t.Fatalf("IndexFunc(even) = %d, want 1", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	d := wrapped(t)
	packed, err := FromSlice([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(d, packed) {
		t.Fatal("equal contents with different layouts compare unequal")
	}
	packed.Set(3, 5)
	if Equal(d, packed) {
		t.Fatal("different contents compare equal")
	}
	packed.PopBack()
	if Equal(d, packed) {
		t.Fatal("different lengths compare equal")
	}
	if d.EqualFunc(packed, func(a, b int) bool { return true }) {
		t.Fatal("EqualFunc ignores lengths")
	}

	var n1, n2 *RingDeque[int]
	if !Equal(n1, n2) || Equal(n1, MakeRingDeque[int]()) {
		t.Fatal("nil deques compare wrong")
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	d := wrapped(t)
	if got := slices.Collect(d.Iter()); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("Iter = %v", got)
	}
	for i, v := range d.All() {
		if v != d.At(i) {
			t.Fatalf("All yields (%d, %d), At(%d) = %d", i, v, i, d.At(i))
		}
	}
	var idx, vals []int
	for i, v := range d.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{3, 2, 1, 0}) || !slices.Equal(vals, []int{4, 3, 2, 1}) {
		t.Fatalf("Backward = %v %v", idx, vals)
	}

	var seen []int
	d.ForEach(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	if !slices.Equal(seen, []int{1, 2}) {
		t.Fatalf("ForEach did not stop: %v", seen)
	}

	for range MakeRingDeque[int]().All() {
		t.Fatal("empty deque yielded an element")
	}
}

func TestAppendTo(t *testing.T) {
	t.Parallel()

	d := wrapped(t)
	got := d.AppendTo([]int{0})
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("AppendTo = %v", got)
	}
}
