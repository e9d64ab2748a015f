// Package rolling computes windowed aggregates over numeric slices.
//
// Each aggregate walks the step-windows of the input and reduces every
// window to a single value, keeping the window's source range attached to
// the result. Because the underlying iterator emits the trailing partial
// window, the last aggregate covers the tail of the input even when it is
// shorter than the window size.
package rolling

import "windowers/windows"

// Number is the constraint for types the numeric aggregates accept.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Series is a float64 sample sequence that can window itself.
type Series []float64

// Windows returns an iterator over the step-windows of the series.
func (s Series) Windows(size, step int) *windows.Iter[float64] {
	return windows.New([]float64(s), size, step)
}

// Reduce folds every window of elems with reducer, starting each window
// from initial. The returned windows keep the source range of the window
// they were computed from.
func Reduce[T, R any](elems []T, size, step int, initial R, reducer func(R, T) R) []windows.Window[R] {
	it := windows.New(elems, size, step)
	res := make([]windows.Window[R], 0, it.Len())
	for w := range it.All() {
		res = append(res, windows.Map(w, func(chunk []T) R {
			acc := initial
			for _, v := range chunk {
				acc = reducer(acc, v)
			}
			return acc
		}))
	}
	return res
}

// Sum returns the sum of every window of elems.
func Sum[T Number](elems []T, size, step int) []windows.Window[T] {
	var zero T
	return Reduce(elems, size, step, zero, func(acc, v T) T {
		return acc + v
	})
}

// Mean returns the arithmetic mean of every window of elems.
// The final window may be shorter than size; its mean is taken over the
// elements it actually holds.
func Mean[T Number](elems []T, size, step int) []windows.Window[float64] {
	it := windows.New(elems, size, step)
	res := make([]windows.Window[float64], 0, it.Len())
	for w := range it.All() {
		res = append(res, windows.Map(w, func(chunk []T) float64 {
			var total float64
			for _, v := range chunk {
				total += float64(v)
			}
			// Windows are never empty, so the division is safe.
			return total / float64(len(chunk))
		}))
	}
	return res
}

// Min returns the smallest element of every window of elems.
func Min[T Number](elems []T, size, step int) []windows.Window[T] {
	it := windows.New(elems, size, step)
	res := make([]windows.Window[T], 0, it.Len())
	for w := range it.All() {
		res = append(res, windows.Map(w, func(chunk []T) T {
			min := chunk[0]
			for _, v := range chunk[1:] {
				if v < min {
					min = v
				}
			}
			return min
		}))
	}
	return res
}

// Max returns the largest element of every window of elems.
func Max[T Number](elems []T, size, step int) []windows.Window[T] {
	it := windows.New(elems, size, step)
	res := make([]windows.Window[T], 0, it.Len())
	for w := range it.All() {
		res = append(res, windows.Map(w, func(chunk []T) T {
			max := chunk[0]
			for _, v := range chunk[1:] {
				if v > max {
					max = v
				}
			}
			return max
		}))
	}
	return res
}
