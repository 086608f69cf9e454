package sortsearch_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/sortsearch"
)

func TestIsSorted(t *testing.T) {
	ok, at := sortsearch.IsSorted([]int{1, 2, 2, 5})
	assert.True(t, ok)
	assert.Equal(t, -1, at)

	ok, at = sortsearch.IsSorted([]int{1, 4, 3, 5})
	assert.False(t, ok)
	assert.Equal(t, 1, at)

	ok, _ = sortsearch.IsSorted([]string{})
	assert.True(t, ok)
}

func TestMinIndex(t *testing.T) {
	v, i, err := sortsearch.MinIndex([]int{5, 3, 6, 2, 10, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, i)

	_, _, err = sortsearch.MinIndex([]float64{})
	assert.ErrorIs(t, err, sortsearch.ErrEmpty)
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3}
	got := sortsearch.Reverse(s)
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, []int{3, 2, 1}, s, "in place")
	assert.Empty(t, sortsearch.Reverse([]int(nil)))
}

func TestSorts_MatchSlicesSort(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		in := make([]int, r.Intn(30))
		for i := range in {
			in[i] = r.Intn(20) - 10
		}
		orig := slices.Clone(in)
		want := slices.Clone(in)
		slices.Sort(want)

		assert.Equal(t, want, nonNil(sortsearch.SelectionSort(in)), "selection trial %d", trial)
		assert.Equal(t, want, nonNil(sortsearch.Quicksort(in)), "quick trial %d", trial)
		assert.Equal(t, orig, in, "input must be untouched")
	}
}

func TestQuicksort_Strings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortsearch.Quicksort([]string{"c", "a", "b"}))
	assert.Equal(t, []string{"x"}, sortsearch.Quicksort([]string{"x"}))
}

func TestBinarySearch(t *testing.T) {
	s := []int{1, 3, 5, 7, 9, 11}
	for i, v := range s {
		got, err := sortsearch.BinarySearch(s, v)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	_, err := sortsearch.BinarySearch(s, 4)
	assert.ErrorIs(t, err, sortsearch.ErrNotFound)

	_, err = sortsearch.BinarySearch([]int{}, 1)
	assert.ErrorIs(t, err, sortsearch.ErrEmpty)

	_, err = sortsearch.BinarySearch([]int{1, 9, 3}, 3)
	require.ErrorIs(t, err, sortsearch.ErrUnsorted)
	assert.Contains(t, err.Error(), "9 before 3 at index 1")
}

// nonNil normalizes an empty result so it compares equal to a sorted empty clone.
func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
