package trivec

import (
	"sync"

	"github.com/wippyai/trivec/internal/layout"
)

// LayoutInfo describes the resolved storage layout of one length.
type LayoutInfo = layout.Info

// LayoutNode is one level of a layout's base-3 block decomposition.
type LayoutNode = layout.Node

// Elem describes an element type's size and alignment.
type Elem = layout.Elem

// ElemOf returns the element descriptor of T.
func ElemOf[T any]() Elem {
	return layout.ElemOf[T]()
}

var (
	layoutMu   sync.Mutex
	layoutCalc = layout.NewCalculator()
)

// Layout resolves a length and element descriptor to a storage layout. It
// shares one process-wide cache and is safe for concurrent use.
func Layout(count int, elem Elem) (LayoutInfo, error) {
	layoutMu.Lock()
	defer layoutMu.Unlock()
	return layoutCalc.Resolve(count, elem)
}
