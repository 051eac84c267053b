package trivec

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/trivec/errors"
)

func TestSeqOf(t *testing.T) {
	s := SeqOf(1, 2, 3)

	for want := 3; want > 0; want-- {
		if got := s.Remaining(); got != want {
			t.Errorf("Remaining() = %d, want %d", got, want)
		}
		v, ok := s.Next()
		if !ok {
			t.Fatalf("Next() exhausted with %d remaining", want)
		}
		if v != 4-want {
			t.Errorf("Next() = %d, want %d", v, 4-want)
		}
	}
	if v, ok := s.Next(); ok {
		t.Errorf("Next() past end = (%d, true), want ok=false", v)
	}
	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() after drain = %d, want 0", got)
	}
}

func TestCollect(t *testing.T) {
	v, err := Collect3(SeqOf(1, 2, 3))
	if err != nil {
		t.Fatalf("Collect3() error = %v", err)
	}
	if !sliceEqual(v.Slice(), []int{1, 2, 3}) {
		t.Errorf("Collect3() = %v, want [1 2 3]", v.Slice())
	}
}

func TestCollect_LengthMismatch(t *testing.T) {
	wantErr := &errors.Error{Phase: errors.PhaseCollect, Kind: errors.KindLengthMismatch}

	t.Run("too few", func(t *testing.T) {
		_, err := Collect3(SeqOf(1, 2))
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Collect3(2 elements) error = %v, want length_mismatch", err)
		}
	})

	t.Run("too many", func(t *testing.T) {
		_, err := Collect3(SeqOf(1, 2, 3, 4))
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Collect3(4 elements) error = %v, want length_mismatch", err)
		}
	})

	t.Run("empty into nonzero", func(t *testing.T) {
		_, err := Collect2(SeqOf[int]())
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Collect2(0 elements) error = %v, want length_mismatch", err)
		}
	})

	t.Run("nonzero into zero", func(t *testing.T) {
		_, err := Collect0(SeqOf(1))
		if !stderrors.Is(err, wantErr) {
			t.Errorf("Collect0(1 element) error = %v, want length_mismatch", err)
		}
	})
}

// A failed count check must not consume the source: the caller keeps a fully
// intact sequence to retry against the right length.
func TestCollect_MismatchLeavesSourceIntact(t *testing.T) {
	s := SeqOf(1, 2)

	if _, err := Collect3(s); err == nil {
		t.Fatal("Collect3(2 elements) succeeded, want error")
	}
	if got := s.Remaining(); got != 2 {
		t.Errorf("Remaining() after failed collect = %d, want 2", got)
	}

	v, err := Collect2(s)
	if err != nil {
		t.Fatalf("Collect2() after failed Collect3 error = %v", err)
	}
	if !sliceEqual(v.Slice(), []int{1, 2}) {
		t.Errorf("Collect2() = %v, want [1 2]", v.Slice())
	}
}

func TestCollect_NilSource(t *testing.T) {
	_, err := Collect2[int](nil)
	wantErr := &errors.Error{Phase: errors.PhaseCollect, Kind: errors.KindInvalidInput}
	if !stderrors.Is(err, wantErr) {
		t.Errorf("Collect2(nil) error = %v, want invalid_input", err)
	}
}

func TestCollect_Empty(t *testing.T) {
	if _, err := Collect0(SeqOf[int]()); err != nil {
		t.Errorf("Collect0(empty) error = %v", err)
	}
}

func TestCollect_FromIter(t *testing.T) {
	it := Of3(1, 2, 3).Iter()
	defer it.Close()

	v, err := Collect3[int](it)
	if err != nil {
		t.Fatalf("Collect3(iter) error = %v", err)
	}
	if !sliceEqual(v.Slice(), []int{1, 2, 3}) {
		t.Errorf("Collect3(iter) = %v, want [1 2 3]", v.Slice())
	}
}

func TestCollect_FromPartialIter(t *testing.T) {
	it := Of3(1, 2, 3).Iter()
	defer it.Close()
	it.Next()

	v, err := Collect2[int](it)
	if err != nil {
		t.Fatalf("Collect2(partial iter) error = %v", err)
	}
	if !sliceEqual(v.Slice(), []int{2, 3}) {
		t.Errorf("Collect2(partial iter) = %v, want [2 3]", v.Slice())
	}
}

// lyingSeq claims more elements than it can deliver.
type lyingSeq struct {
	left int
}

func (s *lyingSeq) Next() (int, bool) {
	if s.left == 0 {
		return 0, false
	}
	s.left--
	return s.left, true
}

func (s *lyingSeq) Remaining() int { return s.left + 1 }

func TestCollect_SourceLiesAboutCount(t *testing.T) {
	_, err := Collect3[int](&lyingSeq{left: 2})
	wantErr := &errors.Error{Phase: errors.PhaseCollect, Kind: errors.KindLengthMismatch}
	if !stderrors.Is(err, wantErr) {
		t.Errorf("Collect3(lying source) error = %v, want length_mismatch", err)
	}
}
