package trivec

import (
	stderrors "errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/wippyai/trivec/errors"
)

func TestLayout(t *testing.T) {
	info, err := Layout(9, ElemOf[uint32]())
	if err != nil {
		t.Fatalf("Layout(9, uint32) error = %v", err)
	}
	if info.Count != 9 {
		t.Errorf("Count = %d, want 9", info.Count)
	}
	if info.Size != 36 {
		t.Errorf("Size = %d, want 36", info.Size)
	}
	if info.Align != 4 {
		t.Errorf("Align = %d, want 4", info.Align)
	}
	if got := info.Tree.Count(); got != 9 {
		t.Errorf("Tree.Count() = %d, want 9", got)
	}
	if got := info.Tree.Depth(); got != 3 {
		t.Errorf("Tree.Depth() = %d, want 3", got)
	}
}

func TestLayout_Errors(t *testing.T) {
	t.Run("negative count", func(t *testing.T) {
		_, err := Layout(-1, ElemOf[byte]())
		wantErr := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnresolvable}
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Layout(-1) error = %v, want unresolvable_length", err)
		}
	})

	t.Run("bad element", func(t *testing.T) {
		_, err := Layout(3, Elem{Size: 5, Align: 3, Name: "bogus"})
		wantErr := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindInvalidInput}
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Layout(bad elem) error = %v, want invalid_input", err)
		}
	})
}

func TestLayout_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for count := 0; count <= 81; count++ {
				info, err := Layout(count, ElemOf[uint64]())
				if err != nil {
					t.Errorf("Layout(%d) error = %v", count, err)
					return
				}
				if info.Size != uintptr(count)*8 {
					t.Errorf("Layout(%d).Size = %d, want %d", count, info.Size, count*8)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestElemOf(t *testing.T) {
	tests := []struct {
		name  string
		elem  Elem
		size  uintptr
		align uintptr
	}{
		{"byte", ElemOf[byte](), 1, 1},
		{"uint32", ElemOf[uint32](), 4, 4},
		{"empty struct", ElemOf[struct{}](), 0, 1},
		{"widget", ElemOf[widget](), unsafe.Sizeof(widget{}), unsafe.Alignof(widget{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.elem.Size != tt.size {
				t.Errorf("Size = %d, want %d", tt.elem.Size, tt.size)
			}
			if tt.elem.Align != tt.align {
				t.Errorf("Align = %d, want %d", tt.elem.Align, tt.align)
			}
			if tt.elem.Name == "" {
				t.Error("Name is empty")
			}
		})
	}
}
