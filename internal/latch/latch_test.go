package latch

import "testing"

func TestHoldAndTake(t *testing.T) {
	l := Hold(42)

	if !l.Held() {
		t.Fatal("Held() = false after Hold")
	}

	v, ok := l.Take()
	if !ok {
		t.Fatal("first Take reported false")
	}
	if v != 42 {
		t.Errorf("Take() = %d, want 42", v)
	}
	if l.Held() {
		t.Error("Held() = true after Take")
	}
}

func TestTake_AtMostOnce(t *testing.T) {
	l := Hold("block")

	if _, ok := l.Take(); !ok {
		t.Fatal("first Take reported false")
	}

	for i := 0; i < 3; i++ {
		v, ok := l.Take()
		if ok {
			t.Fatalf("Take #%d succeeded after relinquish", i+2)
		}
		if v != "" {
			t.Errorf("Take #%d = %q, want zero value", i+2, v)
		}
	}
}

func TestZeroLatch(t *testing.T) {
	var l Latch[[]int]

	if l.Held() {
		t.Error("zero latch reports Held")
	}
	if v, ok := l.Take(); ok || v != nil {
		t.Errorf("Take on zero latch = (%v, %v), want (nil, false)", v, ok)
	}
}

func TestGet_DoesNotRelinquish(t *testing.T) {
	l := Hold([]int{1, 2, 3})

	v, ok := l.Get()
	if !ok || len(v) != 3 {
		t.Fatalf("Get() = (%v, %v), want the held slice", v, ok)
	}
	if !l.Held() {
		t.Error("Get relinquished the value")
	}

	if _, ok := l.Take(); !ok {
		t.Error("Take failed after Get")
	}
}

func TestTake_ZeroesSlot(t *testing.T) {
	l := Hold([]int{1, 2, 3})

	if _, ok := l.Take(); !ok {
		t.Fatal("Take failed")
	}

	// the slot must not keep the slice alive
	if v, ok := l.Get(); ok || v != nil {
		t.Errorf("Get after Take = (%v, %v), want (nil, false)", v, ok)
	}
}
