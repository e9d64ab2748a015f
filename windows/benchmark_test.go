package windows_test

import (
	"testing"

	"windowers/windows"
)

func benchInput(size int) []int {
	input := make([]int, size)
	for i := range input {
		input[i] = i
	}
	return input
}

func BenchmarkNext(b *testing.B) {
	input := benchInput(100_000)

	b.Run("Overlapping", func(b *testing.B) {
		for b.Loop() {
			it := windows.New(input, 64, 1)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}
	})

	b.Run("Stepped", func(b *testing.B) {
		for b.Loop() {
			it := windows.New(input, 64, 16)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}
	})
}

func BenchmarkAll(b *testing.B) {
	input := benchInput(100_000)

	for b.Loop() {
		for range windows.New(input, 64, 16).All() {
		}
	}
}

func BenchmarkLen(b *testing.B) {
	input := benchInput(100_000)
	it := windows.New(input, 64, 16)

	for b.Loop() {
		_ = it.Len()
	}
}

// BenchmarkNth compares a direct seek against reaching the same window by
// repeated advancement.
func BenchmarkNth(b *testing.B) {
	input := benchInput(100_000)
	target := windows.New(input, 64, 16).Len() - 1

	b.Run("Seek", func(b *testing.B) {
		for b.Loop() {
			it := windows.New(input, 64, 16)
			if _, ok := it.Nth(target); !ok {
				b.Fatal("seek failed")
			}
		}
	})

	b.Run("Advance", func(b *testing.B) {
		for b.Loop() {
			it := windows.New(input, 64, 16)
			for n := 0; n <= target; n++ {
				if _, ok := it.Next(); !ok {
					b.Fatal("advance failed")
				}
			}
		}
	})
}
