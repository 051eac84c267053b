package trivec

import (
	"io"
	"testing"
)

var _ io.Closer = (*Iter[int])(nil)

func TestIter_DrainOrder(t *testing.T) {
	it := Of3(1, 2, 3).Iter()
	defer it.Close()

	want := []int{1, 2, 3}
	for i, w := range want {
		v, ok := it.Next()
		if !ok {
			t.Fatalf("Next() #%d: exhausted early", i)
		}
		if v != w {
			t.Errorf("Next() #%d = %d, want %d", i, v, w)
		}
	}
	if v, ok := it.Next(); ok {
		t.Errorf("Next() past end = (%d, true), want ok=false", v)
	}
}

func TestIter_Remaining(t *testing.T) {
	it := Of3(1, 2, 3).Iter()
	defer it.Close()

	for want := 3; want > 0; want-- {
		if got := it.Remaining(); got != want {
			t.Errorf("Remaining() = %d, want %d", got, want)
		}
		it.Next()
	}
	if got := it.Remaining(); got != 0 {
		t.Errorf("Remaining() after drain = %d, want 0", got)
	}
}

// TestIter_EveryElementOwnedOnce consumes k elements from an 8-element
// vector, closes the iterator, and checks that each element ended up with
// exactly one owner: yielded elements with the caller, the remaining n-k
// with the release hook, and none with both.
func TestIter_EveryElementOwnedOnce(t *testing.T) {
	const n = 8

	for k := 0; k <= n; k++ {
		it := Of8(0, 1, 2, 3, 4, 5, 6, 7).Iter()

		released := make(map[int]int)
		it.SetRelease(func(v int) { released[v]++ })

		yielded := make(map[int]bool)
		for i := 0; i < k; i++ {
			v, ok := it.Next()
			if !ok {
				t.Fatalf("k=%d: Next() #%d exhausted early", k, i)
			}
			yielded[v] = true
		}

		if err := it.Close(); err != nil {
			t.Fatalf("k=%d: Close() = %v", k, err)
		}

		if len(released) != n-k {
			t.Errorf("k=%d: released %d elements, want %d", k, len(released), n-k)
		}
		for v, count := range released {
			if count != 1 {
				t.Errorf("k=%d: element %d released %d times", k, v, count)
			}
			if yielded[v] {
				t.Errorf("k=%d: element %d both yielded and released", k, v)
			}
		}
	}
}

func TestIter_CloseTwice(t *testing.T) {
	it := Of3(1, 2, 3).Iter()

	releases := 0
	it.SetRelease(func(int) { releases++ })

	if err := it.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := it.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if releases != 3 {
		t.Errorf("releases = %d, want 3", releases)
	}
}

func TestIter_NextAfterClose(t *testing.T) {
	it := Of2(1, 2).Iter()
	it.Close()

	if v, ok := it.Next(); ok {
		t.Errorf("Next() after Close = (%d, true), want ok=false", v)
	}
	if got := it.Remaining(); got != 0 {
		t.Errorf("Remaining() after Close = %d, want 0", got)
	}
}

func TestIter_CloseAfterDrain(t *testing.T) {
	it := Of2(1, 2).Iter()

	releases := 0
	it.SetRelease(func(int) { releases++ })

	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	if err := it.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if releases != 0 {
		t.Errorf("releases after full drain = %d, want 0", releases)
	}
}

func TestIter_NoReleaseHook(t *testing.T) {
	it := Of3(1, 2, 3).Iter()
	it.Next()

	if err := it.Close(); err != nil {
		t.Errorf("Close() without a release hook = %v", err)
	}
}

func TestIter_Empty(t *testing.T) {
	it := Of0[int]().Iter()
	defer it.Close()

	if got := it.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
	if v, ok := it.Next(); ok {
		t.Errorf("Next() on empty = (%d, true), want ok=false", v)
	}
}
