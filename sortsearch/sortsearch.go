// Package sortsearch holds the small sequence routines that sit beside the
// graph algorithms: an ordering check, a minimum finder, in-place reversal,
// selection sort, quicksort and binary search.
//
// All functions are generic over cmp.Ordered. Sorting functions return a new
// slice and leave their input untouched; Reverse works in place.
package sortsearch

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for sequence routines.
var (
	// ErrEmpty is returned when a routine needs at least one element.
	ErrEmpty = errors.New("sortsearch: empty sequence")

	// ErrUnsorted is returned by BinarySearch for input that is not ascending.
	ErrUnsorted = errors.New("sortsearch: sequence not sorted")

	// ErrNotFound is returned by BinarySearch when the target is absent.
	ErrNotFound = errors.New("sortsearch: target not found")
)

// IsSorted reports whether s is in ascending order. When it is not, the
// returned index i is the first position with s[i] > s[i+1]; otherwise -1.
// Complexity: O(n).
func IsSorted[T cmp.Ordered](s []T) (bool, int) {
	for i := 0; i+1 < len(s); i++ {
		if cmp.Less(s[i+1], s[i]) {
			return false, i
		}
	}

	return true, -1
}

// MinIndex returns the smallest element of s and the index of its first occurrence.
// Complexity: O(n).
func MinIndex[T cmp.Ordered](s []T) (T, int, error) {
	var zero T
	if len(s) == 0 {
		return zero, -1, ErrEmpty
	}
	smallest, idx := s[0], 0
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], smallest) {
			smallest, idx = s[i], i
		}
	}

	return smallest, idx, nil
}

// Reverse flips s in place and returns it, turning ascending into descending.
func Reverse[T any](s []T) []T {
	slices.Reverse(s)
	return s
}

// SelectionSort returns an ascending copy of s by repeatedly moving the
// smallest remaining element to the output.
// Complexity: O(n²) time, O(n) extra space.
func SelectionSort[T cmp.Ordered](s []T) []T {
	rest := slices.Clone(s)
	out := make([]T, 0, len(s))
	for len(rest) > 0 {
		smallest, idx, _ := MinIndex(rest)
		out = append(out, smallest)
		rest = slices.Delete(rest, idx, idx+1)
	}

	return out
}

// Quicksort returns an ascending copy of s. The pivot is the middle element;
// everything else is split into strictly-smaller and not-smaller halves,
// preserving relative order within each half.
// Complexity: O(n log n) average, O(n²) worst case.
func Quicksort[T cmp.Ordered](s []T) []T {
	if len(s) < 2 {
		return slices.Clone(s)
	}
	mid := len(s) / 2
	pivot := s[mid]

	var left, right []T
	for i, v := range s {
		if i == mid {
			continue
		}
		if cmp.Less(v, pivot) {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	out := make([]T, 0, len(s))
	out = append(out, Quicksort(left)...)
	out = append(out, pivot)

	return append(out, Quicksort(right)...)
}

// BinarySearch returns the index of target in the ascending slice s.
// With duplicates, any matching index may be returned.
//
// Errors:
//   - ErrEmpty     if s has no elements.
//   - ErrUnsorted  if s is not ascending (wrapped with the offending index).
//   - ErrNotFound  if target is absent.
//
// Complexity: O(n) for the ordering check, O(log n) for the search.
func BinarySearch[T cmp.Ordered](s []T, target T) (int, error) {
	if len(s) == 0 {
		return -1, ErrEmpty
	}
	if ok, at := IsSorted(s); !ok {
		return -1, fmt.Errorf("%w: %v before %v at index %d", ErrUnsorted, s[at], s[at+1], at)
	}

	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp.Compare(s[mid], target); {
		case c == 0:
			return mid, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
}
