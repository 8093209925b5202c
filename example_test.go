package ringdeque_test

import (
	"fmt"

	"github.com/lucasgdosr/ringdeque"
)

func Example() {
	d := ringdeque.MakeRingDeque[int]()
	for i := 1; i <= 4; i++ {
		_ = d.PushBack(i)
	}

	it, _ := d.Insert(d.Begin(), 3)
	fmt.Println(d.ToSlice(), it.Value())

	it = d.Erase(d.Begin().Next())
	fmt.Println(d.ToSlice(), it.Value())

	it = d.Erase(it)
	fmt.Println(d.ToSlice(), it.Value())
	// Output:
	// [3 1 2 3 4] 3
	// [3 2 3 4] 2
	// [3 3 4] 3
}

func ExampleRingDeque_RBegin() {
	d, _ := ringdeque.FromSlice([]string{"a", "b", "c"})
	for it := d.RBegin(); !it.Equal(d.REnd()); it = it.Next() {
		fmt.Print(it.Value())
	}
	fmt.Println()
	// Output: cba
}

func ExampleRingDeque_PopFront() {
	d := ringdeque.MakeRingDeque[int]()
	for i := 1; i <= 8; i++ {
		_ = d.PushBack(i)
		if d.Len() > 3 {
			d.PopFront()
		}
	}
	fmt.Println(d.ToSlice())
	// Output: [6 7 8]
}
