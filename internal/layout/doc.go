// Package layout resolves vector lengths to storage layouts.
//
// A length resolves through its canonical base-3 digit string into a
// recursive block decomposition: each level holds 0, 1, or 2 direct elements
// followed by three equally sized sub-blocks, one level per digit. The
// resolver proves that this decomposition flattens to exactly count
// contiguous, naturally aligned elements, so a resolved layout always
// occupies count times the element size with no padding anywhere.
//
// # Layout Rules
//
//   - Size: count × element size, overflow checked
//   - Align: the element's own alignment
//   - Element i sits at byte offset i × element size
//   - Decomposition depth: O(log₃ count)
//
// Lengths with no canonical decomposition (negative counts) and layouts
// whose byte size overflows the address space are rejected with structured
// errors. Resolved layouts are cached per (count, element) key.
//
// This package is internal to the library.
package layout
