package concurrent

import (
	"context"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	jobs := make([]int, 100)
	for i := range jobs {
		jobs[i] = i
	}

	results, err := Run(context.Background(), 8, jobs, func(_ context.Context, job int) int {
		return job * job
	})
	require.NoError(t, err)

	sort.Ints(results)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results, err := Run(ctx, 4, []int{1, 2, 3}, func(_ context.Context, job int) int {
		calls.Add(1)
		return job
	})
	require.ErrorIs(t, err, util.ErrResource)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Equal(t, int32(0), calls.Load())
}

func TestNewWorkerPoolErrors(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		queueSize  int
	}{
		{name: "no workers", numWorkers: 0, queueSize: 1},
		{name: "negative queue", numWorkers: 1, queueSize: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWorkerPool[int, int](tc.numWorkers, tc.queueSize)
			assert.ErrorIs(t, err, util.ErrInvalidArgument)
		})
	}
}
