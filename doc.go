// Package trivec provides fixed-length, contiguous vector types whose element
// count is part of the type.
//
// Every supported length N has its own generated type VecN[T]: a block of
// exactly N elements of T, occupying exactly N times the size of T with the
// natural alignment of T and no auxiliary fields. Because the length lives in
// the type, length mismatches are compile-time errors: constructors take
// exactly N arguments, splits name their result length, and a length outside
// the generated set simply has no type.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	trivec/              Root package: generated VecN types, Iter, interfaces
//	├── errors/          Structured error types for resolve/generate/collect
//	├── internal/
//	│   ├── ternary/     Canonical base-3 digit strings for lengths
//	│   ├── layout/      Length to storage layout resolution and validation
//	│   ├── latch/       One-shot ownership cell backing the iterator
//	│   └── gen/         Emitter for the generated sized-types file
//	├── cmd/trivec-gen/  Generator CLI with an interactive layout inspector
//	└── examples/basic/  Runnable end-to-end example
//
// # Quick Start
//
// Construct, split, and drain a vector:
//
//	v := trivec.Of4(10, 20, 30, 40)
//
//	head, rest := v.SplitFirst() // head = 10, rest is a Vec3[int]
//	last, lead := rest.SplitLast() // last = 40, lead is a Vec2[int]
//
//	it := lead.Iter()
//	defer it.Close()
//	for x, ok := it.Next(); ok; x, ok = it.Next() {
//	    fmt.Println(x)
//	}
//
// # Ownership
//
// SplitFirst, SplitLast, and Iter consume their receiver: they take it by
// value and hand ownership of the elements to their results. The compiler
// cannot forbid touching the original afterwards, so treating a consumed
// value as dead is a documented convention, the same way sync types document
// "must not be copied". The consuming iterator makes the convention matter
// for cleanup: a registered release hook runs exactly once per un-yielded
// element, however the iterator is abandoned.
//
// # Layout
//
// Lengths resolve to layouts through their canonical base-3 decomposition,
// validated in internal/layout and re-exported here through Layout and
// ElemOf. The resolved layout of every generated type satisfies
//
//	unsafe.Sizeof(VecN[T]{}) == N * unsafe.Sizeof(T)
//
// with element i at byte offset i times the element size, which is what
// makes the constant-time reinterpreting splits sound.
//
// # Regeneration
//
// sizes_gen.go is produced by cmd/trivec-gen and covers lengths 0 through 81
// by default. Regenerate with a different range via:
//
//	go run ./cmd/trivec-gen -max 81 -out sizes_gen.go -pkg trivec
//
// # Thread Safety
//
// VecN values and iterators are plain values with no internal locking and
// are NOT safe for concurrent use. Layout is safe for concurrent use.
package trivec
