package latch

// Latch holds a value until it is taken. Not safe for concurrent use.
type Latch[T any] struct {
	val  T
	held bool
}

// Hold returns a latch owning v.
func Hold[T any](v T) Latch[T] {
	return Latch[T]{val: v, held: true}
}

// Take relinquishes the held value. The stored slot is zeroed in the same
// step, so the latch keeps no reference to what it handed out. After the
// first successful Take every later call reports false.
func (l *Latch[T]) Take() (T, bool) {
	var zero T
	if !l.held {
		return zero, false
	}
	v := l.val
	l.val = zero
	l.held = false
	return v, true
}

// Get returns the held value without relinquishing it.
func (l *Latch[T]) Get() (T, bool) {
	if !l.held {
		var zero T
		return zero, false
	}
	return l.val, true
}

// Held reports whether the latch still owns its value.
func (l *Latch[T]) Held() bool {
	return l.held
}
