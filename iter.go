package trivec

import "github.com/wippyai/trivec/internal/latch"

// Iter consumes a vector element by element, in index order. It owns the
// elements it has not yielded yet: Close releases exactly those, exactly
// once, through the hook registered with SetRelease. Elements already
// yielded belong to the caller and are never touched again.
//
// An Iter is obtained from a vector's Iter method, which transfers the whole
// block in. It is not safe for concurrent use.
type Iter[T any] struct {
	block   latch.Latch[[]T]
	release func(T)
	pos     int
}

var _ Seq[int] = (*Iter[int])(nil)

// newIter takes ownership of block. The block must not be aliased elsewhere.
func newIter[T any](block []T) *Iter[T] {
	return &Iter[T]{block: latch.Hold(block)}
}

// Next yields the next element and zeroes its vacated slot, so the element
// now has exactly one owner. It reports false forever once the iterator is
// exhausted or closed.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	block, ok := it.block.Get()
	if !ok || it.pos >= len(block) {
		return zero, false
	}
	v := block[it.pos]
	block[it.pos] = zero
	it.pos++
	return v, true
}

// Remaining returns the exact number of elements Next has yet to yield.
// It is 0 once the iterator is exhausted or closed.
func (it *Iter[T]) Remaining() int {
	block, ok := it.block.Get()
	if !ok {
		return 0
	}
	return len(block) - it.pos
}

// SetRelease registers the per-element cleanup Close runs for every element
// that was never yielded. A nil hook means un-yielded elements are simply
// dropped with the block.
func (it *Iter[T]) SetRelease(f func(T)) {
	it.release = f
}

// Close releases the un-yielded elements and detaches the block. It is safe
// to call any number of times; only the first call ever sees the block, so
// the release hook cannot run twice for any element. The returned error is
// always nil and exists to satisfy io.Closer.
func (it *Iter[T]) Close() error {
	block, ok := it.block.Take()
	if !ok {
		return nil
	}
	if it.release != nil {
		for _, v := range block[it.pos:] {
			it.release(v)
		}
	}
	return nil
}
