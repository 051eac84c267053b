// Package gen renders the sized-types file at the root of the module.
//
// For every length in the requested range the emitter resolves the layout,
// derives the split target from the digit string's predecessor, and renders
// the VecN type with its constructors and methods. The output is run through
// go/format before it is returned, so the emitted file is always gofmt
// shaped.
//
// # Range Truncation
//
// A length that fails to resolve ends the generated range: in strict mode
// generation fails, otherwise the range is truncated there with a warning.
// Truncation keeps the emitted set closed under predecessor, so every split
// target a generated type names exists in the same file.
//
// # Format Version
//
// Each emitted file carries a "format:" header. CheckCompat compares an
// existing file's header against FormatVersion and refuses regeneration when
// the existing major is newer than the tool's, so a stale tool cannot
// silently downgrade a checked-in file.
//
// This package is internal to the library.
package gen
