package layout

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/wippyai/trivec/errors"
	"github.com/wippyai/trivec/internal/ternary"
)

type pair struct {
	a uint32
	b uint64
}

func TestElemOf(t *testing.T) {
	tests := []struct {
		name  string
		elem  Elem
		size  uintptr
		align uintptr
	}{
		{"byte", ElemOf[byte](), 1, 1},
		{"uint16", ElemOf[uint16](), 2, 2},
		{"uint64", ElemOf[uint64](), unsafe.Sizeof(uint64(0)), unsafe.Alignof(uint64(0))},
		{"pair", ElemOf[pair](), unsafe.Sizeof(pair{}), unsafe.Alignof(pair{})},
		{"empty struct", ElemOf[struct{}](), 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.elem.Size != tc.size {
				t.Errorf("size: got %d, want %d", tc.elem.Size, tc.size)
			}
			if tc.elem.Align != tc.align {
				t.Errorf("align: got %d, want %d", tc.elem.Align, tc.align)
			}
			if tc.elem.Name == "" {
				t.Error("name: got empty string")
			}
		})
	}
}

func TestResolve_SizeLaw(t *testing.T) {
	elems := []Elem{
		ElemOf[byte](),
		ElemOf[uint16](),
		ElemOf[uint32](),
		ElemOf[uint64](),
		ElemOf[pair](),
		ElemOf[struct{}](),
	}

	c := NewCalculator()
	for _, elem := range elems {
		for n := 0; n <= 81; n++ {
			info, err := c.Resolve(n, elem)
			if err != nil {
				t.Fatalf("Resolve(%d, %s): %v", n, elem.Name, err)
			}
			if info.Count != n {
				t.Errorf("Resolve(%d, %s) count = %d", n, elem.Name, info.Count)
			}
			if want := uintptr(n) * elem.Size; info.Size != want {
				t.Errorf("Resolve(%d, %s) size = %d, want %d", n, elem.Name, info.Size, want)
			}
			if info.Align != elem.Align {
				t.Errorf("Resolve(%d, %s) align = %d, want %d", n, elem.Name, info.Align, elem.Align)
			}
			if got := info.Tree.Count(); got != n {
				t.Errorf("Resolve(%d, %s) tree count = %d", n, elem.Name, got)
			}
			if !ternary.IsCanonical(info.Digits) {
				t.Errorf("Resolve(%d, %s) digits = %v, not canonical", n, elem.Name, info.Digits)
			}
			if v, _ := ternary.Value(info.Digits); v != n {
				t.Errorf("Resolve(%d, %s) digits denote %d", n, elem.Name, v)
			}
			if got := info.Tree.Depth(); got != len(info.Digits) {
				t.Errorf("Resolve(%d, %s) depth = %d, want %d", n, elem.Name, got, len(info.Digits))
			}
		}
	}
}

func TestResolve_TreeShape(t *testing.T) {
	c := NewCalculator()

	t.Run("zero is terminal", func(t *testing.T) {
		info, err := c.Resolve(0, ElemOf[byte]())
		if err != nil {
			t.Fatal(err)
		}
		if info.Tree != nil {
			t.Errorf("tree: got %+v, want nil", info.Tree)
		}
	})

	t.Run("eight is two twos", func(t *testing.T) {
		info, err := c.Resolve(8, ElemOf[byte]())
		if err != nil {
			t.Fatal(err)
		}
		if info.Tree == nil || info.Tree.Direct != 2 {
			t.Fatalf("level 0: got %+v, want direct 2", info.Tree)
		}
		if info.Tree.Sub == nil || info.Tree.Sub.Direct != 2 {
			t.Fatalf("level 1: got %+v, want direct 2", info.Tree.Sub)
		}
		if info.Tree.Sub.Sub != nil {
			t.Errorf("level 2: got %+v, want nil", info.Tree.Sub.Sub)
		}
	})

	t.Run("nine borrows a level", func(t *testing.T) {
		info, err := c.Resolve(9, ElemOf[byte]())
		if err != nil {
			t.Fatal(err)
		}
		if got := info.Tree.Depth(); got != 3 {
			t.Errorf("depth: got %d, want 3", got)
		}
		if info.Tree.Direct != 0 || info.Tree.Sub.Direct != 0 {
			t.Errorf("tree: got %+v, want two empty levels", info.Tree)
		}
	})
}

func TestResolve_Cache(t *testing.T) {
	c := NewCalculator()
	elem := ElemOf[uint32]()

	first, err := c.Resolve(10, elem)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Resolve(10, elem)
	if err != nil {
		t.Fatal(err)
	}
	if first.Tree != second.Tree {
		t.Error("second Resolve rebuilt the tree instead of hitting the cache")
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	c := NewCalculator()

	_, err := c.Resolve(-1, ElemOf[byte]())
	if err == nil {
		t.Fatal("Resolve(-1) succeeded")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnresolvable}) {
		t.Errorf("error = %v, want [resolve] unresolvable_length", err)
	}
}

func TestResolve_Overflow(t *testing.T) {
	c := NewCalculator()
	huge := Elem{Size: ^uintptr(0) &^ 7, Align: 8, Name: "huge"}

	_, err := c.Resolve(3, huge)
	if err == nil {
		t.Fatal("Resolve with overflowing size succeeded")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindOverflow}) {
		t.Errorf("error = %v, want [resolve] overflow", err)
	}
}

func TestResolve_InvalidElem(t *testing.T) {
	tests := []struct {
		name string
		elem Elem
	}{
		{"zero align", Elem{Size: 4, Align: 0, Name: "bad"}},
		{"non power of two align", Elem{Size: 6, Align: 3, Name: "bad"}},
		{"size not multiple of align", Elem{Size: 6, Align: 4, Name: "bad"}},
	}

	c := NewCalculator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Resolve(2, tc.elem)
			if err == nil {
				t.Fatal("Resolve accepted an invalid element descriptor")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindInvalidInput}) {
				t.Errorf("error = %v, want [resolve] invalid_input", err)
			}
		})
	}
}

func TestAppendOffsets_ElementOrder(t *testing.T) {
	c := NewCalculator()
	elem := ElemOf[uint64]()

	for _, n := range []int{1, 2, 3, 8, 9, 10, 26, 27, 28, 80, 81} {
		info, err := c.Resolve(n, elem)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", n, err)
		}
		offs := appendOffsets(info.Tree, elem, 0, nil)
		if len(offs) != n {
			t.Fatalf("n=%d: got %d offsets", n, len(offs))
		}
		for i, off := range offs {
			if want := uintptr(i) * elem.Size; off != want {
				t.Errorf("n=%d element %d: offset %d, want %d", n, i, off, want)
			}
		}
	}
}
