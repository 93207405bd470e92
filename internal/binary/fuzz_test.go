package binary

import (
	"bytes"
	"testing"
)

// FuzzGetPut fuzzes Get/Put round trips for every supported size and order.
func FuzzGetPut(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{255, 127, 0, 128, 1, 2, 3, 4})
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 255})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 8 {
			return
		}
		for _, n := range []int{1, 2, 4, 8} {
			for _, o := range []Order{Little, Big} {
				p := Get(data, n, o)
				out := make([]byte, n)
				Put(out, p, n, o)
				if !bytes.Equal(out, data[:n]) {
					t.Errorf("FuzzGetPut(n=%d, o=%d): round-trip failed: got %v, want %v", n, o, out, data[:n])
				}
			}
		}
	})
}
