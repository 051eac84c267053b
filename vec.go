package trivec

// Vec is the length-erased view over any sized vector. Every generated
// *VecN[T] implements it. Use it where code must range over vectors of
// mixed lengths; use the concrete types wherever the length matters.
type Vec[T any] interface {
	// Len returns the element count. It is a constant of the concrete type.
	Len() int
	// Slice returns the read/write view over the vector's own storage.
	Slice() []T
}
