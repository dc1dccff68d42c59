package hydro

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ctflux/types"
)

func TestReconstruction(t *testing.T) {
	blk, err := NewBlock(6, 5, 4)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(17))
	src := blk.NewCellArray(3)
	for ii := range src.DataP {
		src.DataP[ii] = rng.Float64()*10 - 5
	}
	ws := NewArena(blk.MaxLine())
	{ // Donor cell copies the adjacent cells without modification, along every direction
		for d := types.X1DIR; d <= types.X3DIR; d++ {
			sr := NewSweepRange(blk, d, true)
			for l := 0; l < sr.NumLines(); l++ {
				ln := sr.Line(l)
				ws.Reset(ln.Il-1, ln.Iu+1)
				DonorCell{}.Reconstruct(ln, src, 2, types.IBY, nil, ws.WL, ws.WR)
				for i := ln.Il; i <= ln.Iu; i++ {
					kL, jL, iL := ln.K, ln.J, ln.I
					kR, jR, iR := ln.K, ln.J, ln.I
					switch d {
					case types.X1DIR:
						iL, iR = i-1, i
					case types.X2DIR:
						jL, jR = i-1, i
					case types.X3DIR:
						kL, kR = i-1, i
					}
					assert.Equal(t, src.At(2, kL, jL, iL), ws.WL[types.IBY][i])
					assert.Equal(t, src.At(2, kR, jR, iR), ws.WR[types.IBY][i])
				}
			}
		}
	}
	coords, err := NewUniformCartesian(blk, [3]float64{0, 0, 0}, [3]float64{6, 5, 4})
	require.NoError(t, err)
	{ // Piecewise linear reproduces a linear profile with either limiter
		nk, nj, ni := blk.CellDims()
		for k := 0; k < nk; k++ {
			for j := 0; j < nj; j++ {
				for i := 0; i < ni; i++ {
					src.Set(0, k, j, i, float64(i))
				}
			}
		}
		for _, lt := range []LimiterType{LIMITER_MinMod, LIMITER_VanLeer} {
			pl := PiecewiseLinear{Limiter: lt}
			ln := NewSweepRange(blk, types.X1DIR, false).Line(3)
			ws.Reset(0, blk.MaxLine()-1)
			coords.CenterWidth(ln, ln.Il-2, ln.Iu+1, ws.Dxw)
			pl.Reconstruct(ln, src, 0, types.IDN, ws.Dxw, ws.WL, ws.WR)
			for i := ln.Il; i <= ln.Iu; i++ {
				assert.Equal(t, float64(i)-0.5, ws.WL[types.IDN][i])
				assert.Equal(t, float64(i)-0.5, ws.WR[types.IDN][i])
			}
		}
	}
	{ // An extremum is limited to the donor cell values
		ln := NewSweepRange(blk, types.X1DIR, false).Line(0)
		base, stride := ln.Index4D(src, 1)
		for i := 0; i < blk.Ncells[0]; i++ {
			src.DataP[base+i*stride] = float64(i % 2)
		}
		ws.Reset(0, blk.MaxLine()-1)
		coords.CenterWidth(ln, ln.Il-2, ln.Iu+1, ws.Dxw)
		PiecewiseLinear{}.Reconstruct(ln, src, 1, types.IVX, ws.Dxw, ws.WL, ws.WR)
		for i := ln.Il; i <= ln.Iu; i++ {
			assert.Equal(t, float64((i-1)%2), ws.WL[types.IVX][i])
			assert.Equal(t, float64(i%2), ws.WR[types.IVX][i])
		}
	}
	{ // Limiters
		assert.Equal(t, 0., LIMITER_MinMod.Limit(1, -1))
		assert.Equal(t, 1., LIMITER_MinMod.Limit(1, 3))
		assert.Equal(t, -1., LIMITER_MinMod.Limit(-3, -1))
		assert.Equal(t, 1.5, LIMITER_VanLeer.Limit(1, 3))
		assert.Equal(t, 0., LIMITER_VanLeer.Limit(0, 3))
		assert.Equal(t, LIMITER_VanLeer, NewLimiterType("VanLeer"))
		assert.Panics(t, func() { NewLimiterType("superbee") })
	}
	{ // Order selection
		assert.IsType(t, DonorCell{}, NewReconstructor(1, LIMITER_MinMod))
		assert.IsType(t, PiecewiseLinear{}, NewReconstructor(2, LIMITER_MinMod))
	}
}

func TestArenaReset(t *testing.T) {
	ws := NewArena(10)
	for n := range ws.WL {
		for i := range ws.WL[n] {
			ws.WL[n][i], ws.WR[n][i] = 1, 1
		}
	}
	ws.Reset(-3, 4)
	for n := range ws.WL {
		assert.Equal(t, 0., ws.WL[n][4])
		assert.Equal(t, 1., ws.WR[n][5])
	}
	ws.Reset(8, 30)
	assert.Equal(t, 0., ws.WR[0][9])
}
