// Package latch provides a one-shot ownership cell.
//
// A Latch either holds a value or has been relinquished. Take transfers the
// value out and leaves the latch empty in the same step, so whatever teardown
// runs against the taken value can never run twice. The zero Latch holds
// nothing.
//
// The consuming iterator stores its element block in a latch: Close takes the
// block, releases the un-yielded elements, and every later Close finds the
// latch already empty.
//
// This package is internal to the library.
package latch
