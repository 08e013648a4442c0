package binaryheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanconnor/dsa-go/binaryheap"
	"github.com/hermanconnor/dsa-go/compare"
)

// drain pops every element, returning them in heap order.
func drain(h *binaryheap.Heap[int]) []int {
	out := make([]int, 0, h.Len())
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestNew_NilComparator(t *testing.T) {
	_, err := binaryheap.New[int](nil)
	assert.ErrorIs(t, err, binaryheap.ErrNilComparator)

	_, err = binaryheap.FromSlice[int](nil, []int{1})
	assert.ErrorIs(t, err, binaryheap.ErrNilComparator)
}

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := binaryheap.New(compare.Ordered[int], binaryheap.WithCapacity(-5))
	assert.ErrorIs(t, err, binaryheap.ErrOptionViolation)
}

func TestHeap_PopsAscending(t *testing.T) {
	h, err := binaryheap.New(compare.Ordered[int])
	require.NoError(t, err)

	for _, v := range []int{9, 4, 7, 1, 8, 2} {
		h.Push(v)
	}

	assert.Equal(t, []int{1, 2, 4, 7, 8, 9}, drain(h))

	_, ok := h.Pop()
	assert.False(t, ok, "Pop on empty heap reports not ok")
}

func TestHeap_MaxViaReverse(t *testing.T) {
	h, err := binaryheap.New(compare.Reverse(compare.Ordered[int]))
	require.NoError(t, err)

	for _, v := range []int{3, 10, 6} {
		h.Push(v)
	}

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 10, top)
	assert.Equal(t, []int{10, 6, 3}, drain(h))
}

func TestFromSlice_HeapifiesWithoutMutatingInput(t *testing.T) {
	in := []int{5, 3, 8, 1, 9, 2}
	h, err := binaryheap.FromSlice(compare.Ordered[int], in)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 3, 8, 1, 9, 2}, in, "caller's slice must stay untouched")
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drain(h))
}

func TestHeap_PeekDoesNotRemove(t *testing.T) {
	h, _ := binaryheap.New(compare.Ordered[int])
	_, ok := h.Peek()
	assert.False(t, ok)

	h.Push(2)
	h.Push(1)
	for i := 0; i < 3; i++ {
		v, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, v)
	}
	assert.Equal(t, 2, h.Len())
}

func TestHeap_RandomAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 20; round++ {
		n := rng.Intn(200) + 1
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(1000) // duplicates welcome
		}

		h, err := binaryheap.FromSlice(compare.Ordered[int], in)
		require.NoError(t, err)

		want := append([]int(nil), in...)
		sort.Ints(want)
		require.Equal(t, want, drain(h), "heap order diverged from sorted order")
	}
}
