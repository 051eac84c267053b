// Package ternary provides canonical base-3 digit strings for vector lengths.
//
// Every supported length is identified by its base-3 decomposition, least
// significant digit first, with no high-order zero digits. The empty string
// denotes zero. The layout resolver derives the recursive block decomposition
// of a vector from this string, and the generator derives split targets from
// its predecessor arithmetic.
//
// # Predecessor
//
// Pred follows the three leading-digit shapes:
//   - zero: the position borrows, becoming two, and the borrow cascades
//   - one: the position becomes zero and the string is renormalized
//   - two: the position becomes one
//
// Zero has no predecessor, which is why length-0 vectors expose no split
// operations.
//
// This package is internal to the library.
package ternary
