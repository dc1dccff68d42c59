package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNan(t *testing.T) {
	var (
		A = NewArray4D(2, 2, 2, 2)
		B = NewArray3D(2, 2, 2)
	)
	assert.False(t, IsNan(A))
	assert.False(t, IsNan([3]Array3D{B, B, B}))
	B.Set(1, 0, 1, math.NaN())
	assert.True(t, IsNan(B))
	assert.True(t, IsNan([3]Array3D{NewArray3D(1, 1, 1), B, B}))
	assert.False(t, IsNan([3]Array4D{A, A, A}))
	A.Var(1).Set(0, 0, 0, math.NaN())
	assert.True(t, IsNan([3]Array4D{A, A, A}))
	assert.Panics(t, func() { IsNanPanic(math.NaN()) })
	assert.Contains(t, GetMemUsage(), "MiB")
}
