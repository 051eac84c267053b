package trivec

import "github.com/wippyai/trivec/errors"

// Seq is a source of elements whose exact remaining count is known up front.
// *Iter[T] implements it, so vectors can be rebuilt from other vectors'
// iterators. The CollectN constructors consume a Seq and refuse any source
// whose count does not match the target length.
type Seq[T any] interface {
	// Next yields the next element, reporting false when the source is done.
	Next() (T, bool)
	// Remaining returns the exact number of elements Next has yet to yield.
	Remaining() int
}

// SeqOf returns a Seq over the given elements, in order.
func SeqOf[T any](vs ...T) Seq[T] {
	return &sliceSeq[T]{vs: vs}
}

type sliceSeq[T any] struct {
	vs  []T
	pos int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.pos >= len(s.vs) {
		var zero T
		return zero, false
	}
	v := s.vs[s.pos]
	s.pos++
	return v, true
}

func (s *sliceSeq[T]) Remaining() int {
	return len(s.vs) - s.pos
}

// collect fills dst from s, checking the count before consuming anything so
// a mismatched source is never half-drained by the length check itself.
func collect[T any](s Seq[T], dst []T) error {
	if s == nil {
		return errors.InvalidInput(errors.PhaseCollect, "nil source sequence")
	}
	if got := s.Remaining(); got != len(dst) {
		return errors.LengthMismatch(errors.PhaseCollect, len(dst), got)
	}
	for i := range dst {
		v, ok := s.Next()
		if !ok {
			// the source lied about its count
			return errors.LengthMismatch(errors.PhaseCollect, len(dst), i)
		}
		dst[i] = v
	}
	return nil
}
