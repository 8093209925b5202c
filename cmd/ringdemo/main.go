// Command ringdemo slides a fixed-size window over a run of integers with a
// RingDeque and prints what is left in the window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucasgdosr/ringdeque"
)

func main() {
	window := flag.Int("n", 5, "window size")
	last := flag.Int("last", 99, "last value pushed")
	flag.Parse()

	if err := run(*window, *last); err != nil {
		fmt.Fprintf(os.Stderr, "ringdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(window, last int) error {
	if window < 1 || last < window {
		return fmt.Errorf("need 1 <= n <= last, got n=%d last=%d", window, last)
	}

	d := ringdeque.MakeRingDeque[int]()
	for i := 1; i <= window; i++ {
		if err := d.PushBack(i); err != nil {
			return err
		}
	}
	for i := window + 1; i <= last; i++ {
		if err := d.PushBack(i); err != nil {
			return err
		}
		d.PopFront()
	}

	it := d.Begin()
	for range window {
		fmt.Printf("%d ", it.Value())
		it = it.Next()
	}
	fmt.Println(it.Equal(d.End()))
	return nil
}
