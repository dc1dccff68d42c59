package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestPartitionMap(t *testing.T) {
	{ // Partitions tile [0, MaxIndex) in order with an imbalance of at most one
		for _, NP := range []int{1, 5, 32} {
			for n := 0; n < 300; n++ {
				var (
					pm         = NewPartitionMap(NP, n)
					next       int
					sMin, sMax = n, 0
				)
				for np := 0; np < NP; np++ {
					kMin, kMax := pm.GetBucketRange(np)
					assert.Equal(t, next, kMin)
					next = kMax
					if kMax-kMin < sMin {
						sMin = kMax - kMin
					}
					if kMax-kMin > sMax {
						sMax = kMax - kMin
					}
				}
				assert.Equal(t, n, next)
				assert.True(t, sMax-sMin <= 1)
			}
		}
	}
	{ // Fewer items than workers leaves trailing partitions empty
		pm := NewPartitionMap(32, 2)
		kMin, kMax := pm.GetBucketRange(1)
		assert.Equal(t, [2]int{1, 2}, [2]int{kMin, kMax})
		kMin, kMax = pm.GetBucketRange(2)
		assert.Equal(t, kMin, kMax)
	}
}

func TestParallelFor(t *testing.T) {
	defer goleak.VerifyNone(t)
	{ // Every index is visited exactly once, by the worker that owns it
		for _, NP := range []int{1, 3, 8, 40} {
			var (
				N      = 37
				visits = make([]int32, N)
				owner  = make([]int, N)
				pm     = NewPartitionMap(NP, N)
			)
			pm.ParallelFor(func(np, min, max int) {
				for k := min; k < max; k++ {
					atomic.AddInt32(&visits[k], 1)
					owner[k] = np
				}
			})
			for k := 0; k < N; k++ {
				assert.Equal(t, int32(1), visits[k])
				kMin, kMax := pm.GetBucketRange(owner[k])
				assert.True(t, k >= kMin && k < kMax)
			}
		}
	}
	{ // The call is a barrier
		var (
			pm    = NewPartitionMap(4, 100)
			total int64
		)
		pm.ParallelFor(func(np, min, max int) {
			atomic.AddInt64(&total, int64(max-min))
		})
		assert.Equal(t, int64(100), atomic.LoadInt64(&total))
	}
	assert.Equal(t, 3, ParallelDegree(3))
	assert.True(t, ParallelDegree(0) >= 1)
}
