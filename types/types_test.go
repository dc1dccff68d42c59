package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Test cyclic transverse directions
		t1, t2 := X1DIR.Transverse()
		assert.Equal(t, [2]Direction{X2DIR, X3DIR}, [2]Direction{t1, t2})
		t1, t2 = X2DIR.Transverse()
		assert.Equal(t, [2]Direction{X3DIR, X1DIR}, [2]Direction{t1, t2})
		t1, t2 = X3DIR.Transverse()
		assert.Equal(t, [2]Direction{X1DIR, X2DIR}, [2]Direction{t1, t2})
	}
	{ // Test the field components mapped into the wave frame
		iby, ibz := TransverseFieldIndices(X1DIR)
		assert.Equal(t, [2]int{IB2, IB3}, [2]int{iby, ibz})
		iby, ibz = TransverseFieldIndices(X2DIR)
		assert.Equal(t, [2]int{IB3, IB1}, [2]int{iby, ibz})
		iby, ibz = TransverseFieldIndices(X3DIR)
		assert.Equal(t, [2]int{IB1, IB2}, [2]int{iby, ibz})
	}
	{ // Test variable layout
		assert.Equal(t, IVX, VelocityIndex(X1DIR))
		assert.Equal(t, IVZ, VelocityIndex(X3DIR))
		assert.Equal(t, 4, NumHydro(false))
		assert.Equal(t, 5, NumHydro(true))
		assert.Equal(t, 7, NWAVE)
		assert.Equal(t, X2DIR, NewDirection("X2"))
		assert.Equal(t, "X3", X3DIR.String())
		assert.Panics(t, func() { NewDirection("x4") })
	}
}
