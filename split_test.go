package trivec

import "testing"

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitFirst(t *testing.T) {
	t.Run("Vec1", func(t *testing.T) {
		head, rest := Of1(7).SplitFirst()
		if head != 7 {
			t.Errorf("head = %d, want 7", head)
		}
		if rest.Len() != 0 {
			t.Errorf("rest.Len() = %d, want 0", rest.Len())
		}
	})

	t.Run("Vec2", func(t *testing.T) {
		head, rest := Of2(1, 2).SplitFirst()
		if head != 1 {
			t.Errorf("head = %d, want 1", head)
		}
		if !sliceEqual(rest.Slice(), []int{2}) {
			t.Errorf("rest = %v, want [2]", rest.Slice())
		}
	})

	t.Run("Vec3", func(t *testing.T) {
		head, rest := Of3(1, 2, 3).SplitFirst()
		if head != 1 {
			t.Errorf("head = %d, want 1", head)
		}
		if !sliceEqual(rest.Slice(), []int{2, 3}) {
			t.Errorf("rest = %v, want [2 3]", rest.Slice())
		}
	})

	t.Run("Vec8", func(t *testing.T) {
		head, rest := Of8(1, 2, 3, 4, 5, 6, 7, 8).SplitFirst()
		if head != 1 {
			t.Errorf("head = %d, want 1", head)
		}
		if !sliceEqual(rest.Slice(), []int{2, 3, 4, 5, 6, 7, 8}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})

	t.Run("Vec9", func(t *testing.T) {
		head, rest := Of9(1, 2, 3, 4, 5, 6, 7, 8, 9).SplitFirst()
		if head != 1 {
			t.Errorf("head = %d, want 1", head)
		}
		if !sliceEqual(rest.Slice(), []int{2, 3, 4, 5, 6, 7, 8, 9}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})

	t.Run("Vec10", func(t *testing.T) {
		head, rest := Of10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).SplitFirst()
		if head != 1 {
			t.Errorf("head = %d, want 1", head)
		}
		if !sliceEqual(rest.Slice(), []int{2, 3, 4, 5, 6, 7, 8, 9, 10}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})
}

func TestSplitLast(t *testing.T) {
	t.Run("Vec1", func(t *testing.T) {
		last, rest := Of1(7).SplitLast()
		if last != 7 {
			t.Errorf("last = %d, want 7", last)
		}
		if rest.Len() != 0 {
			t.Errorf("rest.Len() = %d, want 0", rest.Len())
		}
	})

	t.Run("Vec2", func(t *testing.T) {
		last, rest := Of2(1, 2).SplitLast()
		if last != 2 {
			t.Errorf("last = %d, want 2", last)
		}
		if !sliceEqual(rest.Slice(), []int{1}) {
			t.Errorf("rest = %v, want [1]", rest.Slice())
		}
	})

	t.Run("Vec3", func(t *testing.T) {
		last, rest := Of3(1, 2, 3).SplitLast()
		if last != 3 {
			t.Errorf("last = %d, want 3", last)
		}
		if !sliceEqual(rest.Slice(), []int{1, 2}) {
			t.Errorf("rest = %v, want [1 2]", rest.Slice())
		}
	})

	t.Run("Vec8", func(t *testing.T) {
		last, rest := Of8(1, 2, 3, 4, 5, 6, 7, 8).SplitLast()
		if last != 8 {
			t.Errorf("last = %d, want 8", last)
		}
		if !sliceEqual(rest.Slice(), []int{1, 2, 3, 4, 5, 6, 7}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})

	t.Run("Vec9", func(t *testing.T) {
		last, rest := Of9(1, 2, 3, 4, 5, 6, 7, 8, 9).SplitLast()
		if last != 9 {
			t.Errorf("last = %d, want 9", last)
		}
		if !sliceEqual(rest.Slice(), []int{1, 2, 3, 4, 5, 6, 7, 8}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})

	t.Run("Vec10", func(t *testing.T) {
		last, rest := Of10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).SplitLast()
		if last != 10 {
			t.Errorf("last = %d, want 10", last)
		}
		if !sliceEqual(rest.Slice(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
			t.Errorf("rest = %v", rest.Slice())
		}
	})
}

func TestSplit_EndToEnd(t *testing.T) {
	build := func() Vec8[int] {
		return Of8(42, 84, 126, 168, 210, 252, 294, 336)
	}

	head, tail := build().SplitFirst()
	if head != 42 {
		t.Errorf("head = %d, want 42", head)
	}
	if tail.Len() != 7 {
		t.Errorf("tail.Len() = %d, want 7", tail.Len())
	}
	if !sliceEqual(tail.Slice(), []int{84, 126, 168, 210, 252, 294, 336}) {
		t.Errorf("tail = %v", tail.Slice())
	}

	last, lead := build().SplitLast()
	if last != 336 {
		t.Errorf("last = %d, want 336", last)
	}
	if lead.Len() != 7 {
		t.Errorf("lead.Len() = %d, want 7", lead.Len())
	}
	if !sliceEqual(lead.Slice(), []int{42, 84, 126, 168, 210, 252, 294}) {
		t.Errorf("lead = %v", lead.Slice())
	}
}

func TestSplitFirst_RoundTrip(t *testing.T) {
	v8 := Of8(42, 84, 126, 168, 210, 252, 294, 336)

	e0, v7 := v8.SplitFirst()
	e1, v6 := v7.SplitFirst()
	e2, v5 := v6.SplitFirst()
	e3, v4 := v5.SplitFirst()
	e4, v3 := v4.SplitFirst()
	e5, v2 := v3.SplitFirst()
	e6, v1 := v2.SplitFirst()
	e7, v0 := v1.SplitFirst()

	got := []int{e0, e1, e2, e3, e4, e5, e6, e7}
	want := []int{42, 84, 126, 168, 210, 252, 294, 336}
	if !sliceEqual(got, want) {
		t.Errorf("heads = %v, want %v", got, want)
	}
	if v0.Len() != 0 {
		t.Errorf("terminal Len() = %d, want 0", v0.Len())
	}
}

func TestSplitLast_RoundTrip(t *testing.T) {
	v3 := Of3(1, 2, 3)

	e2, v2 := v3.SplitLast()
	e1, v1 := v2.SplitLast()
	e0, v0 := v1.SplitLast()

	got := []int{e0, e1, e2}
	if !sliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("lasts in index order = %v, want [1 2 3]", got)
	}
	if v0.Len() != 0 {
		t.Errorf("terminal Len() = %d, want 0", v0.Len())
	}
}

func TestSplit_TransfersByCopy(t *testing.T) {
	v := Of3(1, 2, 3)

	_, rest := v.SplitFirst()
	rest.Slice()[0] = 99

	if got := v.Slice()[1]; got != 2 {
		t.Errorf("split result aliases source storage: source[1] = %d, want 2", got)
	}
}

func TestSplit_ZeroSizeElem(t *testing.T) {
	v := Of2(struct{}{}, struct{}{})

	_, rest := v.SplitFirst()
	if rest.Len() != 1 {
		t.Errorf("rest.Len() = %d, want 1", rest.Len())
	}

	_, empty := rest.SplitLast()
	if empty.Len() != 0 {
		t.Errorf("empty.Len() = %d, want 0", empty.Len())
	}
}

func TestSplit_Structs(t *testing.T) {
	a := widget{id: 1, flags: 10}
	b := widget{id: 2, flags: 20}
	c := widget{id: 3, flags: 30}

	head, rest := Of3(a, b, c).SplitFirst()
	if head != a {
		t.Errorf("head = %+v, want %+v", head, a)
	}

	last, lead := rest.SplitLast()
	if last != c {
		t.Errorf("last = %+v, want %+v", last, c)
	}
	if got := lead.Slice()[0]; got != b {
		t.Errorf("lead[0] = %+v, want %+v", got, b)
	}
}
