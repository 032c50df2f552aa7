package letters

// Window keeps the N most recently pushed values, oldest first.
//
// A new Window is filled with the zero value of T, which callers treat as
// "absent" (End for runes).
type Window[T comparable] struct {
	slots []T
}

// NewWindow returns a window with capacity n. n must be positive.
func NewWindow[T comparable](n int) *Window[T] {
	if n <= 0 {
		panic("letters: window capacity must be positive")
	}
	return &Window[T]{slots: make([]T, n)}
}

// Push drops the oldest value, shifts the rest toward index 0 and stores v
// at the newest position.
func (w *Window[T]) Push(v T) {
	copy(w.slots, w.slots[1:])
	w.slots[len(w.slots)-1] = v
}

// At returns the value at index i, 0 being the oldest.
func (w *Window[T]) At(i int) T { return w.slots[i] }

// Newest returns the most recently pushed value.
func (w *Window[T]) Newest() T { return w.slots[len(w.slots)-1] }
