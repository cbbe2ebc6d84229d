package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOrder(t *testing.T) {
	testCases := []struct {
		name string
		heap *MinHeap[Index]
	}{
		{name: "binary", heap: NewBinaryHeap[Index]()},
		{name: "four ary", heap: NewFourAryHeap[Index]()},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rnd := rand.New(rand.NewSource(7))
			ranks := make([]float64, 500)
			for i := range ranks {
				ranks[i] = rnd.Float64() * 1000
				tt.heap.Insert(NewPriorityQueueNode(ranks[i], Index(i)))
			}
			sort.Float64s(ranks)

			min, err := tt.heap.GetMin()
			require.NoError(t, err)
			assert.Equal(t, ranks[0], min.GetRank())

			for _, want := range ranks {
				got, err := tt.heap.ExtractMin()
				require.NoError(t, err)
				assert.Equal(t, want, got.GetRank())
			}
			assert.True(t, tt.heap.IsEmpty())

			_, err = tt.heap.ExtractMin()
			assert.ErrorIs(t, err, ErrHeapEmpty)
		})
	}
}

func TestMinHeapClearKeepsWorking(t *testing.T) {
	h := NewBinaryHeap[Index]()
	h.Preallocate(4)
	h.Insert(NewPriorityQueueNode(3.0, Index(3)))
	h.Insert(NewPriorityQueueNode(1.0, Index(1)))
	h.Clear()
	assert.Equal(t, 0, h.Size())

	h.Insert(NewPriorityQueueNode(2.0, Index(2)))
	got, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, Index(2), got.GetItem())
}
