package windows

import "iter"

// Iter lazily produces the step-windows of a source slice in increasing
// start order. It holds a shrinking view of the source: already-emitted
// prefixes are never re-read, and the view never grows back.
type Iter[T any] struct {
	rest  []T
	size  int
	step  int
	start int
}

// New creates an iterator over the windows of elements, where each window
// holds up to size elements and consecutive windows start step elements
// apart. Only the final window may be shorter than size; it is never empty
// and never dropped.
//
// New panics unless size > 0, step > 0 and step <= size. A step beyond the
// size would leave source elements belonging to no window at all, which
// this iterator forbids.
func New[T any](elements []T, size, step int) *Iter[T] {
	if size <= 0 {
		panic("windows.New: size must be greater than 0")
	}
	if step <= 0 {
		panic("windows.New: step must be greater than 0")
	}
	if step > size {
		panic("windows.New: step must not exceed size")
	}
	return &Iter[T]{rest: elements, size: size, step: step}
}

// Len returns the exact number of windows remaining, in constant time and
// without materializing any window. It reflects the current view, so the
// value shrinks as windows are consumed.
func (it *Iter[T]) Len() int {
	if len(it.rest) == 0 {
		return 0
	}
	tail := len(it.rest) - it.size
	if tail < 0 {
		tail = 0
	}
	n := tail / it.step
	if tail%it.step != 0 {
		n++
	}
	// +1 for the window starting at the current front.
	return n + 1
}

// IsEmpty reports whether no windows remain.
func (it *Iter[T]) IsEmpty() bool {
	return it.Len() == 0
}

// Count returns the number of windows remaining without consuming any.
// It is an alias for [Iter.Len].
func (it *Iter[T]) Count() int {
	return it.Len()
}

// Next emits the next window, or reports false when the iterator is
// exhausted. Once the final window has been emitted, the iterator stays
// exhausted even when the step left elements behind the last start.
func (it *Iter[T]) Next() (Window[[]T], bool) {
	if len(it.rest) == 0 {
		return Window[[]T]{}, false
	}

	take := min(it.size, len(it.rest))
	w := NewWindow(it.start, it.start+take, it.rest[:take:take])
	it.start += it.step

	if len(it.rest) > take {
		it.rest = it.rest[it.step:]
	} else {
		it.rest = nil
	}
	return w, true
}

// Nth seeks directly to the window at position n of the remaining view,
// without materializing the n windows before it. Positions count from 0 at
// the current front; after windows have been consumed, the emitted range is
// relative to the current view, not the original slice.
//
// An out-of-range n exhausts the iterator and reports false; subsequent
// pulls also report exhaustion. Otherwise the iterator resumes after the
// returned window, so Next continues at position n+1.
func (it *Iter[T]) Nth(n int) (Window[[]T], bool) {
	last := it.Len() - 1
	if n < 0 || n > last {
		it.rest = nil
		return Window[[]T]{}, false
	}

	pos := n * it.step
	take := min(it.size, len(it.rest)-pos)
	w := NewWindow(pos, pos+take, it.rest[pos:pos+take:pos+take])

	it.start = pos + it.step
	if n == last || pos+it.step >= len(it.rest) {
		it.rest = nil
	} else {
		it.rest = it.rest[pos+it.step:]
	}
	return w, true
}

// Last projects the final window of the remaining view without consuming
// anything: the iterator's position is unchanged. The final window always
// runs to the end of the view and holds between 1 and size elements.
func (it *Iter[T]) Last() (Window[[]T], bool) {
	if len(it.rest) == 0 {
		return Window[[]T]{}, false
	}
	start := (it.Len() - 1) * it.step
	end := len(it.rest)
	return NewWindow(start, end, it.rest[start:end:end]), true
}

// All returns the remaining windows as an iter.Seq. Ranging over the
// sequence consumes the iterator; breaking early leaves it at the next
// unconsumed window.
func (it *Iter[T]) All() iter.Seq[Window[[]T]] {
	return func(yield func(Window[[]T]) bool) {
		for w, ok := it.Next(); ok; w, ok = it.Next() {
			if !yield(w) {
				return
			}
		}
	}
}

// Clone returns an independent iterator at the same position. Both share
// the borrowed source; consuming one does not advance the other.
func (it *Iter[T]) Clone() *Iter[T] {
	c := *it
	return &c
}
