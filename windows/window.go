package windows

import "fmt"

// Window pairs a half-open index range [start, end) in a source collection
// with a payload value derived from that range. The payload is typically a
// borrowed sub-slice of the source, but any value computed from one (a sum,
// a digest, a parsed record) can take its place while the window keeps the
// original position.
type Window[V any] struct {
	start int
	end   int
	value V
}

// NewWindow creates a window covering [start, end) holding value.
// It panics if the range is negative or inverted.
func NewWindow[V any](start, end int, value V) Window[V] {
	if start < 0 || start > end {
		panic(fmt.Sprintf("windows.NewWindow: invalid range [%d, %d)", start, end))
	}
	return Window[V]{start: start, end: end, value: value}
}

// Start returns the inclusive start index of the window in the source.
func (w Window[V]) Start() int { return w.start }

// End returns the exclusive end index of the window in the source.
func (w Window[V]) End() int { return w.end }

// Value returns the payload.
func (w Window[V]) Value() V { return w.value }

// Span returns the width of the index range, End - Start.
func (w Window[V]) Span() int { return w.end - w.start }

// Ref returns a window over the same range whose payload is a pointer to
// w's payload, so the value can be inspected or updated in place without
// copying V. The pointer is only valid while w is.
func Ref[V any](w *Window[V]) Window[*V] {
	return Window[*V]{start: w.start, end: w.end, value: &w.value}
}

func (w Window[V]) String() string {
	return fmt.Sprintf("[%d,%d) %v", w.start, w.end, w.value)
}

// Len returns the element count of a slice-payload window.
func Len[E any](w Window[[]E]) int {
	return len(w.value)
}

// IsEmpty reports whether a slice-payload window holds no elements.
func IsEmpty[E any](w Window[[]E]) bool {
	return Len(w) == 0
}

// Map applies transform to the payload and returns a window with the same
// range and the transformed value.
func Map[V, R any](w Window[V], transform func(V) R) Window[R] {
	return Window[R]{start: w.start, end: w.end, value: transform(w.value)}
}

// FlatMap applies transform to the payload and returns its result as-is.
// Unlike [Map], the returned window's range comes entirely from transform;
// w's start and end do not survive the call.
func FlatMap[V, R any](w Window[V], transform func(V) Window[R]) Window[R] {
	return transform(w.value)
}
