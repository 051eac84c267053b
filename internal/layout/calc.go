package layout

import (
	"reflect"

	"github.com/wippyai/trivec/errors"
	"github.com/wippyai/trivec/internal/ternary"
)

// Elem describes one element type: its size, alignment, and a rendered name
// for diagnostics.
type Elem struct {
	Size  uintptr
	Align uintptr
	Name  string
}

// ElemOf returns the descriptor of T.
func ElemOf[T any]() Elem {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	return Elem{
		Size:  rt.Size(),
		Align: uintptr(rt.Align()),
		Name:  rt.String(),
	}
}

// Node is one level of a length's block decomposition: Direct elements
// (0, 1, or 2) followed by three sub-blocks shaped like Sub. A nil Node is
// the terminal empty block.
type Node struct {
	Sub    *Node
	Direct int
}

// Count returns the number of elements the block holds.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	return n.Direct + 3*n.Sub.Count()
}

// Depth returns the number of levels in the decomposition.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + n.Sub.Depth()
}

// Info is a resolved layout. Descriptors are immutable once returned.
type Info struct {
	Tree   *Node
	Digits []ternary.Digit
	Count  int
	Size   uintptr
	Align  uintptr
}

type key struct {
	count int
	size  uintptr
	align uintptr
}

// Calculator resolves and caches layouts. Not safe for concurrent use.
type Calculator struct {
	cache map[key]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[key]Info),
	}
}

// Resolve maps (count, elem) to a layout. Negative counts are unresolvable,
// sizes that exceed the address space are overflows, and a decomposition
// that fails to flatten back to count contiguous elements is rejected before
// it can describe a mis-sized block.
func (c *Calculator) Resolve(count int, elem Elem) (Info, error) {
	if count < 0 {
		return Info{}, errors.Unresolvable(errors.PhaseResolve, count)
	}
	if err := validateElem(elem); err != nil {
		return Info{}, err
	}

	k := key{count: count, size: elem.Size, align: elem.Align}
	if cached, ok := c.cache[k]; ok {
		return cached, nil
	}

	digits, ok := ternary.Digits(count)
	if !ok {
		return Info{}, errors.Unresolvable(errors.PhaseResolve, count)
	}

	size, ok := safeMul(uintptr(count), elem.Size)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseResolve, count, elem.Name)
	}

	tree := buildTree(digits)
	if err := verifyFlat(tree, elem, count, size); err != nil {
		return Info{}, err
	}

	info := Info{
		Tree:   tree,
		Digits: digits,
		Count:  count,
		Size:   size,
		Align:  elem.Align,
	}
	c.cache[k] = info
	return info, nil
}

func validateElem(elem Elem) error {
	if elem.Align == 0 || elem.Align&(elem.Align-1) != 0 {
		return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Elem(elem.Name).
			Detail("alignment %d is not a power of two", elem.Align).
			Build()
	}
	if elem.Size%elem.Align != 0 {
		return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Elem(elem.Name).
			Detail("size %d is not a multiple of alignment %d", elem.Size, elem.Align).
			Build()
	}
	return nil
}

// buildTree turns a least-significant-first digit string into its block
// decomposition, one level per digit.
func buildTree(digits []ternary.Digit) *Node {
	var sub *Node
	for i := len(digits) - 1; i >= 0; i-- {
		sub = &Node{Direct: int(digits[i]), Sub: sub}
	}
	return sub
}

// verifyFlat proves the decomposition covers exactly count elements at
// offsets i × elem.Size, which is what makes the reinterpreting splits sound.
func verifyFlat(tree *Node, elem Elem, count int, size uintptr) error {
	if got := tree.Count(); got != count {
		return errors.SizeMismatch(errors.PhaseResolve, count,
			uint64(got)*uint64(elem.Size), uint64(size))
	}

	offsets := appendOffsets(tree, elem, 0, make([]uintptr, 0, count))
	if len(offsets) != count {
		return errors.SizeMismatch(errors.PhaseResolve, count,
			uint64(len(offsets))*uint64(elem.Size), uint64(size))
	}
	for i, off := range offsets {
		if off != uintptr(i)*elem.Size {
			return errors.New(errors.PhaseResolve, errors.KindSizeMismatch).
				Elem(elem.Name).
				Value(count).
				Detail("element %d sits at offset %d, want %d", i, off, uintptr(i)*elem.Size).
				Build()
		}
	}
	return nil
}

// blockSize is the byte size of one block of the decomposition.
func blockSize(n *Node, elem Elem) uintptr {
	if n == nil {
		return 0
	}
	return uintptr(n.Direct)*elem.Size + 3*blockSize(n.Sub, elem)
}

// appendOffsets walks the decomposition in element order, appending each
// element's byte offset from the block base.
func appendOffsets(n *Node, elem Elem, base uintptr, out []uintptr) []uintptr {
	if n == nil {
		return out
	}
	for i := 0; i < n.Direct; i++ {
		out = append(out, base+uintptr(i)*elem.Size)
	}
	base += uintptr(n.Direct) * elem.Size
	sub := blockSize(n.Sub, elem)
	for b := 0; b < 3; b++ {
		out = appendOffsets(n.Sub, elem, base, out)
		base += sub
	}
	return out
}

func safeMul(a, b uintptr) (uintptr, bool) {
	const maxUintptr = ^uintptr(0)
	if b != 0 && a > maxUintptr/b {
		return 0, false
	}
	return a * b, true
}
