package trivec

import (
	"fmt"
	"testing"
	"unsafe"
)

// widget has internal padding, which the size law must survive.
type widget struct {
	id    uint64
	flags uint32
}

var (
	_ Vec[int]     = (*Vec0[int])(nil)
	_ Vec[int]     = (*Vec1[int])(nil)
	_ Vec[int]     = (*Vec8[int])(nil)
	_ Vec[string]  = (*Vec81[string])(nil)
	_ fmt.Stringer = Vec3[int]{}
)

func TestSizeLaw_Bytes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		n    uintptr
	}{
		{"Vec0", unsafe.Sizeof(Vec0[byte]{}), 0},
		{"Vec1", unsafe.Sizeof(Vec1[byte]{}), 1},
		{"Vec2", unsafe.Sizeof(Vec2[byte]{}), 2},
		{"Vec3", unsafe.Sizeof(Vec3[byte]{}), 3},
		{"Vec8", unsafe.Sizeof(Vec8[byte]{}), 8},
		{"Vec9", unsafe.Sizeof(Vec9[byte]{}), 9},
		{"Vec10", unsafe.Sizeof(Vec10[byte]{}), 10},
		{"Vec26", unsafe.Sizeof(Vec26[byte]{}), 26},
		{"Vec27", unsafe.Sizeof(Vec27[byte]{}), 27},
		{"Vec28", unsafe.Sizeof(Vec28[byte]{}), 28},
		{"Vec80", unsafe.Sizeof(Vec80[byte]{}), 80},
		{"Vec81", unsafe.Sizeof(Vec81[byte]{}), 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want := tt.n * unsafe.Sizeof(byte(0)); tt.got != want {
				t.Errorf("size: got %d, want %d", tt.got, want)
			}
		})
	}
}

func TestSizeLaw_Wide(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Vec0 uint64", unsafe.Sizeof(Vec0[uint64]{}), 0},
		{"Vec1 uint64", unsafe.Sizeof(Vec1[uint64]{}), 8},
		{"Vec3 uint64", unsafe.Sizeof(Vec3[uint64]{}), 24},
		{"Vec9 uint64", unsafe.Sizeof(Vec9[uint64]{}), 72},
		{"Vec27 uint64", unsafe.Sizeof(Vec27[uint64]{}), 216},
		{"Vec81 uint64", unsafe.Sizeof(Vec81[uint64]{}), 648},
		{"Vec2 uint16", unsafe.Sizeof(Vec2[uint16]{}), 4},
		{"Vec10 uint16", unsafe.Sizeof(Vec10[uint16]{}), 20},
		{"Vec8 widget", unsafe.Sizeof(Vec8[widget]{}), 8 * unsafe.Sizeof(widget{})},
		{"Vec27 widget", unsafe.Sizeof(Vec27[widget]{}), 27 * unsafe.Sizeof(widget{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("size: got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestSizeLaw_ZeroSizeElem(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
	}{
		{"Vec0", unsafe.Sizeof(Vec0[struct{}]{})},
		{"Vec1", unsafe.Sizeof(Vec1[struct{}]{})},
		{"Vec9", unsafe.Sizeof(Vec9[struct{}]{})},
		{"Vec81", unsafe.Sizeof(Vec81[struct{}]{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != 0 {
				t.Errorf("size: got %d, want 0", tt.got)
			}
		})
	}
}

func TestAlignment(t *testing.T) {
	if got, want := unsafe.Alignof(Vec8[uint64]{}), unsafe.Alignof(uint64(0)); got != want {
		t.Errorf("Vec8[uint64] align: got %d, want %d", got, want)
	}
	if got, want := unsafe.Alignof(Vec3[widget]{}), unsafe.Alignof(widget{}); got != want {
		t.Errorf("Vec3[widget] align: got %d, want %d", got, want)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Vec0", Vec0[int]{}.Len(), 0},
		{"Vec1", Vec1[int]{}.Len(), 1},
		{"Vec9", Vec9[int]{}.Len(), 9},
		{"Vec81", Vec81[int]{}.Len(), 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Len() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestSlice_ViewsOwnStorage(t *testing.T) {
	v := Of3(1, 2, 3)

	s := v.Slice()
	s[1] = 20

	if got := v.Slice()[1]; got != 20 {
		t.Errorf("write through Slice not visible: got %d, want 20", got)
	}
	if unsafe.Pointer(&s[0]) != unsafe.Pointer(&v) {
		t.Error("Slice does not view the vector's own storage")
	}
}

func TestSlice_BoundsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-range index did not panic")
		}
	}()

	v := Of2(1, 2)
	_ = v.Slice()[2]
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"empty", Of0[int]().String(), "[]"},
		{"ints", Of3(1, 2, 3).String(), "[1 2 3]"},
		{"strings", Of2("a", "b").String(), "[a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValueSemantics_AssignmentCopies(t *testing.T) {
	a := Of3(1, 2, 3)
	b := a

	b.Slice()[0] = 100

	if got := a.Slice()[0]; got != 1 {
		t.Errorf("assignment aliased storage: a[0] = %d, want 1", got)
	}
	if a != Of3(1, 2, 3) {
		t.Error("equal vectors do not compare equal")
	}
}
