package windows

// Windower is implemented by ordered, indexable collections that can
// produce a window iterator over a borrowed view of themselves.
type Windower[T any] interface {
	Windows(size, step int) *Iter[T]
}

// Slice adapts a plain slice to the Windower interface.
type Slice[T any] []T

// Windows returns an iterator over the step-windows of the slice.
func (s Slice[T]) Windows(size, step int) *Iter[T] {
	return New([]T(s), size, step)
}
