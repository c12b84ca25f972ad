package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func coverage(t *testing.T, items int, run func(fn func(start, end int))) []int {
	t.Helper()
	hits := make([]int, items)
	var mu sync.Mutex
	run(func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			hits[i]++
		}
	})
	return hits
}

func TestParallelizeCoversEveryIndexOnce(t *testing.T) {
	for _, items := range []int{1, 7, 100, 1001} {
		hits := coverage(t, items, func(fn func(int, int)) { Parallelize(items, fn) })
		for i, h := range hits {
			assert.Equal(t, 1, h, "items=%d index=%d", items, i)
		}
	}
}

func TestParallelizeNWorkerCounts(t *testing.T) {
	for _, workers := range []int{-1, 0, 1, 3, 64} {
		hits := coverage(t, 10, func(fn func(int, int)) { ParallelizeN(10, workers, fn) })
		for i, h := range hits {
			assert.Equal(t, 1, h, "workers=%d index=%d", workers, i)
		}
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)

	ParallelizeWithThreshold(0, 100, func(start, end int) {
		t.Fatal("fn must not be called for zero items")
	})
}
