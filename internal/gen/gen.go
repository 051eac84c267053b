package gen

import (
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/trivec/errors"
	"github.com/wippyai/trivec/internal/layout"
	"github.com/wippyai/trivec/internal/ternary"
)

// Options configures one generation run.
type Options struct {
	Pkg    string // target package name
	Max    int    // highest length to emit
	Strict bool   // fail on an unresolvable length instead of truncating
}

// MaxSupported is the highest length the emitter will render, the fifth
// power of three. Arity-exact constructors stop being practical long before
// this bound.
const MaxSupported = 243

var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// probe is the element descriptor lengths are resolved against during
// generation. The digit structure of a length does not depend on the
// element, so one canonical descriptor covers every instantiation.
var probe = layout.Elem{Size: 1, Align: 1, Name: "byte"}

// Generate renders the sized-types file for lengths 0 through opts.Max.
func Generate(opts Options) ([]byte, error) {
	if !identRe.MatchString(opts.Pkg) {
		return nil, errors.InvalidInput(errors.PhaseGenerate,
			fmt.Sprintf("package name %q is not an identifier", opts.Pkg))
	}
	if opts.Max < 0 {
		return nil, errors.Unsupported(errors.PhaseGenerate, "negative maximum length")
	}
	if opts.Max > MaxSupported {
		if opts.Strict {
			return nil, errors.Unsupported(errors.PhaseGenerate,
				fmt.Sprintf("maximum length %d exceeds the supported bound %d", opts.Max, MaxSupported))
		}
		Logger().Warn("clamping generated range",
			zap.Int("max", opts.Max),
			zap.Int("bound", MaxSupported))
		opts.Max = MaxSupported
	}

	infos, err := resolveRange(opts)
	if err != nil {
		return nil, err
	}

	raw, err := render(opts.Pkg, infos)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(raw)
	if err != nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Cause(err).
			Detail("rendered output is not valid Go").
			Build()
	}

	Logger().Info("generated sized types",
		zap.Int("lengths", len(infos)),
		zap.Int("bytes", len(formatted)))
	return formatted, nil
}

// WriteFile writes a generated file to disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WriteFailed(path, err)
	}
	return nil
}

// resolveRange resolves every length in the range, truncating (or failing,
// in strict mode) at the first length with no layout. The surviving range is
// a contiguous prefix, so it stays closed under predecessor.
func resolveRange(opts Options) ([]layout.Info, error) {
	calc := layout.NewCalculator()
	infos := make([]layout.Info, 0, opts.Max+1)

	for n := 0; n <= opts.Max; n++ {
		info, err := calc.Resolve(n, probe)
		if err != nil {
			if opts.Strict {
				return nil, err
			}
			Logger().Warn("truncating generated range",
				zap.Int("length", n),
				zap.Error(err))
			break
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func render(pkg string, infos []layout.Info) ([]byte, error) {
	if len(infos) == 0 {
		return nil, errors.Unsupported(errors.PhaseGenerate, "no lengths resolved")
	}
	maxEmitted := infos[len(infos)-1].Count

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by trivec-gen. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// format: %s\n", FormatVersion)
	fmt.Fprintf(&b, "// lengths: 0..%d\n", maxEmitted)
	fmt.Fprintf(&b, "\npackage %s\n", pkg)

	fmt.Fprintf(&b, "\nimport (\n")
	fmt.Fprintf(&b, "\t\"fmt\"\n")
	if maxEmitted >= 2 {
		fmt.Fprintf(&b, "\t\"unsafe\"\n")
	}
	fmt.Fprintf(&b, ")\n")

	for _, info := range infos {
		if err := renderLength(&b, info); err != nil {
			return nil, err
		}
	}
	return []byte(b.String()), nil
}

func renderLength(b *strings.Builder, info layout.Info) error {
	n := info.Count
	digits := ternary.Format(info.Digits)

	Logger().Debug("emitting sized type",
		zap.Int("length", n),
		zap.String("digits", digits))

	// type and constructors

	fmt.Fprintf(b, "\n// Vec%d is a fixed-length vector of exactly %d %s of T (base-3 %s).\n",
		n, n, plural(n), digits)
	fmt.Fprintf(b, "type Vec%d[T any] struct {\n\tdata [%d]T\n}\n", n, n)

	if n == 0 {
		fmt.Fprintf(b, "\n// Of0 builds the empty vector.\n")
		fmt.Fprintf(b, "func Of0[T any]() Vec0[T] {\n\treturn Vec0[T]{}\n}\n")
	} else {
		params := make([]string, n)
		for i := range params {
			params[i] = fmt.Sprintf("v%d", i)
		}
		args := strings.Join(params, ", ")
		fmt.Fprintf(b, "\n// Of%d builds a Vec%d from exactly %d %s.\n", n, n, n, plural(n))
		fmt.Fprintf(b, "func Of%d[T any](%s T) Vec%d[T] {\n\treturn Vec%d[T]{data: [%d]T{%s}}\n}\n",
			n, args, n, n, n, args)
	}

	fmt.Fprintf(b, "\n// Collect%d consumes exactly %d %s from s.\n", n, n, plural(n))
	fmt.Fprintf(b, "func Collect%d[T any](s Seq[T]) (Vec%d[T], error) {\n", n, n)
	fmt.Fprintf(b, "\tvar v Vec%d[T]\n", n)
	fmt.Fprintf(b, "\tif err := collect(s, v.data[:]); err != nil {\n\t\treturn Vec%d[T]{}, err\n\t}\n", n)
	fmt.Fprintf(b, "\treturn v, nil\n}\n")

	// methods

	fmt.Fprintf(b, "\n// Len returns %d.\n", n)
	fmt.Fprintf(b, "func (v Vec%d[T]) Len() int {\n\treturn %d\n}\n", n, n)

	fmt.Fprintf(b, "\n// Slice returns the read/write view over the vector's storage.\n")
	fmt.Fprintf(b, "func (v *Vec%d[T]) Slice() []T {\n\treturn v.data[:]\n}\n", n)

	fmt.Fprintf(b, "\n// String renders the elements for debugging.\n")
	fmt.Fprintf(b, "func (v Vec%d[T]) String() string {\n\treturn fmt.Sprint(v.data)\n}\n", n)

	if n >= 1 {
		if err := renderSplits(b, info); err != nil {
			return err
		}
	}

	fmt.Fprintf(b, "\n// Iter consumes the vector, transferring its elements into the iterator.\n")
	fmt.Fprintf(b, "func (v Vec%d[T]) Iter() *Iter[T] {\n\treturn newIter(v.data[:])\n}\n", n)

	return nil
}

// renderSplits emits SplitFirst and SplitLast. The target length comes from
// the digit string's predecessor, not from integer arithmetic on n.
func renderSplits(b *strings.Builder, info layout.Info) error {
	n := info.Count

	pred, ok := ternary.Pred(info.Digits)
	if !ok {
		return errors.New(errors.PhaseGenerate, errors.KindSizeMismatch).
			Value(n).
			Detail("length %d has no predecessor", n).
			Build()
	}
	m, ok := ternary.Value(pred)
	if !ok || m != n-1 {
		return errors.New(errors.PhaseGenerate, errors.KindSizeMismatch).
			Value(n).
			Detail("predecessor of %d resolved to %d", n, m).
			Build()
	}

	fmt.Fprintf(b, "\n// SplitFirst consumes the vector, returning the first element and the rest as a Vec%d.\n", m)
	fmt.Fprintf(b, "func (v Vec%d[T]) SplitFirst() (T, Vec%d[T]) {\n", n, m)
	if n == 1 {
		fmt.Fprintf(b, "\treturn v.data[0], Vec0[T]{}\n}\n")
	} else {
		fmt.Fprintf(b, "\treturn v.data[0], *(*Vec%d[T])(unsafe.Pointer(&v.data[1]))\n}\n", m)
	}

	fmt.Fprintf(b, "\n// SplitLast consumes the vector, returning the last element and the rest as a Vec%d.\n", m)
	fmt.Fprintf(b, "func (v Vec%d[T]) SplitLast() (T, Vec%d[T]) {\n", n, m)
	if n == 1 {
		fmt.Fprintf(b, "\treturn v.data[0], Vec0[T]{}\n}\n")
	} else {
		fmt.Fprintf(b, "\treturn v.data[%d], *(*Vec%d[T])(unsafe.Pointer(&v.data[0]))\n}\n", m, m)
	}

	return nil
}

func plural(n int) string {
	if n == 1 {
		return "element"
	}
	return "elements"
}
