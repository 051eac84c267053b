package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "phase and kind only",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindUnresolvable,
			},
			contains: []string{"[resolve]", "unresolvable_length"},
		},
		{
			name: "with element type",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindOverflow,
				Elem:  "[4096]uint64",
			},
			contains: []string{"[resolve]", "overflow", "element type [4096]uint64"},
		},
		{
			name: "with detail",
			err: &Error{
				Phase:  PhaseCollect,
				Kind:   KindLengthMismatch,
				Detail: "sequence yielded 5 elements, want exactly 8",
			},
			contains: []string{"[collect]", "length_mismatch", "yielded 5", "exactly 8"},
		},
		{
			name: "element type and detail",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindSizeMismatch,
				Elem:   "int32",
				Detail: "layout of 9 elements occupies 40 bytes, want 36",
			},
			contains: []string{"element type int32", " - ", "occupies 40 bytes"},
		},
		{
			name: "with cause",
			err: &Error{
				Phase:  PhaseGenerate,
				Kind:   KindWriteFailed,
				Detail: "write sizes_gen.go",
				Cause:  fmt.Errorf("disk full"),
			},
			contains: []string{"[generate]", "write_failed", "caused by: disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying problem")
	err := &Error{
		Phase: PhaseGenerate,
		Kind:  KindWriteFailed,
		Cause: cause,
	}

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnresolvable,
		Detail: "length 82 has no layout resolution",
	}

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{
			name:   "same phase and kind",
			target: &Error{Phase: PhaseResolve, Kind: KindUnresolvable},
			want:   true,
		},
		{
			name:   "same phase different kind",
			target: &Error{Phase: PhaseResolve, Kind: KindOverflow},
			want:   false,
		},
		{
			name:   "different phase same kind",
			target: &Error{Phase: PhaseCollect, Kind: KindUnresolvable},
			want:   false,
		},
		{
			name:   "not an Error",
			target: fmt.Errorf("plain error"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stderrors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := New(PhaseResolve, KindOverflow).
		Elem("[512]complex128").
		Value(int64(1) << 50).
		Cause(cause).
		Detail("layout of %d elements overflows", int64(1)<<50).
		Build()

	if err.Phase != PhaseResolve {
		t.Errorf("Phase = %q, want %q", err.Phase, PhaseResolve)
	}
	if err.Kind != KindOverflow {
		t.Errorf("Kind = %q, want %q", err.Kind, KindOverflow)
	}
	if err.Elem != "[512]complex128" {
		t.Errorf("Elem = %q, want %q", err.Elem, "[512]complex128")
	}
	if err.Value != int64(1)<<50 {
		t.Errorf("Value = %v, want %v", err.Value, int64(1)<<50)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !strings.Contains(err.Detail, "overflows") {
		t.Errorf("Detail = %q, want it to mention overflow", err.Detail)
	}
}

func TestBuilder_DetailWithoutArgs(t *testing.T) {
	msg := "literal message with %d left alone"
	err := New(PhaseCollect, KindInvalidInput).
		Detail(msg).
		Build()

	if err.Detail != "literal message with %d left alone" {
		t.Errorf("Detail = %q, want the literal string preserved", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Unresolvable", func(t *testing.T) {
		err := Unresolvable(PhaseResolve, 82)
		if err.Kind != KindUnresolvable {
			t.Errorf("Kind = %q, want %q", err.Kind, KindUnresolvable)
		}
		if err.Value != 82 {
			t.Errorf("Value = %v, want 82", err.Value)
		}
		if !strings.Contains(err.Error(), "length 82") {
			t.Errorf("Error() = %q, want mention of length 82", err.Error())
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseResolve, 81, "[1 << 60]byte")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %q, want %q", err.Kind, KindOverflow)
		}
		if err.Elem != "[1 << 60]byte" {
			t.Errorf("Elem = %q, want %q", err.Elem, "[1 << 60]byte")
		}
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		err := SizeMismatch(PhaseResolve, 9, 40, 36)
		if err.Kind != KindSizeMismatch {
			t.Errorf("Kind = %q, want %q", err.Kind, KindSizeMismatch)
		}
		msg := err.Error()
		for _, want := range []string{"9 elements", "40 bytes", "want 36"} {
			if !strings.Contains(msg, want) {
				t.Errorf("Error() = %q, want it to contain %q", msg, want)
			}
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		err := LengthMismatch(PhaseCollect, 8, 5)
		if err.Kind != KindLengthMismatch {
			t.Errorf("Kind = %q, want %q", err.Kind, KindLengthMismatch)
		}
		if err.Value != 5 {
			t.Errorf("Value = %v, want 5", err.Value)
		}
		msg := err.Error()
		if !strings.Contains(msg, "want exactly 8") {
			t.Errorf("Error() = %q, want mention of the target length", msg)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseCollect, "nil source sequence")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %q, want %q", err.Kind, KindInvalidInput)
		}
		if err.Detail != "nil source sequence" {
			t.Errorf("Detail = %q, want %q", err.Detail, "nil source sequence")
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseGenerate, "negative maximum length")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %q, want %q", err.Kind, KindUnsupported)
		}
	})

	t.Run("WriteFailed", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := WriteFailed("sizes_gen.go", cause)
		if err.Phase != PhaseGenerate {
			t.Errorf("Phase = %q, want %q", err.Phase, PhaseGenerate)
		}
		if err.Kind != KindWriteFailed {
			t.Errorf("Kind = %q, want %q", err.Kind, KindWriteFailed)
		}
		if !stderrors.Is(err, cause) {
			t.Error("errors.Is should find the write cause")
		}
	})

	t.Run("Incompatible", func(t *testing.T) {
		err := Incompatible("2.0.0", "1.0.0")
		if err.Kind != KindIncompatible {
			t.Errorf("Kind = %q, want %q", err.Kind, KindIncompatible)
		}
		msg := err.Error()
		if !strings.Contains(msg, "2.0.0") || !strings.Contains(msg, "1.0.0") {
			t.Errorf("Error() = %q, want both format versions mentioned", msg)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := fmt.Errorf("inner")
		err := Wrap(PhaseCollect, KindInvalidInput, cause, "while draining source")
		if err.Cause != cause {
			t.Errorf("Cause = %v, want %v", err.Cause, cause)
		}
		if !strings.Contains(err.Error(), "caused by: inner") {
			t.Errorf("Error() = %q, want cause rendered", err.Error())
		}
	})
}
