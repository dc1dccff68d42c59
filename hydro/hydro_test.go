package hydro

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

func TestCellCenteredField(t *testing.T) {
	for _, nx := range [][3]int{{6, 5, 4}, {7, 3, 1}, {5, 1, 1}} {
		blk, err := NewBlock(nx[0], nx[1], nx[2])
		require.NoError(t, err)
		var (
			rng        = rand.New(rand.NewSource(int64(nx[0])))
			ff         = NewFaceField(blk)
			nk, nj, ni = blk.CellDims()
		)
		for _, a := range []utils.Array3D{ff.X1F, ff.X2F, ff.X3F} {
			for ii := range a.DataP {
				a.DataP[ii] = rng.Float64() - 0.5
			}
		}
		bcc := ff.CellCentered(blk)
		for k := 0; k < nk; k++ {
			for j := 0; j < nj; j++ {
				for i := 0; i < ni; i++ {
					assert.Equal(t, 0.5*(ff.X1F.At(k, j, i)+ff.X1F.At(k, j, i+1)), bcc.At(types.IB1, k, j, i))
					assert.Equal(t, 0.5*(ff.X2F.At(k, j, i)+ff.X2F.At(k, j+1, i)), bcc.At(types.IB2, k, j, i))
					assert.Equal(t, 0.5*(ff.X3F.At(k, j, i)+ff.X3F.At(k+1, j, i)), bcc.At(types.IB3, k, j, i))
				}
			}
		}
		// Copies are independent of the source
		cp := bcc.Copy()
		assert.True(t, mat.Equal(cp.M, bcc.M))
		cp.Set(0, 0, 0, 0, 99)
		assert.NotEqual(t, 99., bcc.At(0, 0, 0, 0))
	}
}

func TestStretchedGrid(t *testing.T) {
	var (
		dt  = 0.001
		rho = 1.3
	)
	blk, err := NewBlock(6, 1, 1)
	require.NoError(t, err)
	var (
		xf [3][]float64
		dx = 0.05
	)
	xf[0] = make([]float64, blk.Ncells[0]+1)
	for i := 1; i < len(xf[0]); i++ {
		xf[0][i] = xf[0][i-1] + dx
		dx *= 1.25
	}
	xf[1], xf[2] = []float64{0, 1}, []float64{0, 1}
	coords, err := NewCartesian(blk, xf)
	require.NoError(t, err)
	h, err := NewHydro(blk, adiabatic(true), coords)
	require.NoError(t, err)
	w, b, bcc := uniformState(h, rho, 1, [3]float64{0.01, 0, 0}, [3]float64{0.5, 0.3, 0.2})
	h.CalculateFluxes(dt, w, b, bcc, 2)
	sr := h.Sweeps[0]
	for i := sr.Lo[0]; i <= sr.Hi[0]; i++ {
		var (
			mf     = h.Flux[types.X1DIR].At(types.IDN, 0, 0, i)
			weight = h.Weight.X1F.At(0, 0, i)
		)
		// Face i is weighted by the width of cell i
		assert.Equal(t, UpwindWeight(dt, mf, coords.Dx[0][i], rho, rho), weight)
		assert.NotEqual(t, UpwindWeight(dt, mf, coords.Dx[0][i-1], rho, rho), weight)
		assert.True(t, weight > 0.5 && weight < 1)
	}
	{ // Invalid face coordinates
		bad := xf
		bad[0] = append([]float64{}, xf[0]...)
		bad[0][4] = bad[0][3]
		_, err = NewCartesian(blk, bad)
		assert.Error(t, err)
		bad[0] = xf[0][:5]
		_, err = NewCartesian(blk, bad)
		assert.Error(t, err)
		_, err = NewUniformCartesian(blk, [3]float64{1, 0, 0}, [3]float64{1, 1, 1})
		assert.Error(t, err)
	}
}

// constantSolver writes a fixed flux on every face it is given and counts its calls
type constantSolver struct {
	value float64
	calls *int64
}

func (cs constantSolver) Solve(ln Line, ivx int, bx utils.Array3D, wl, wr [][]float64, flux utils.Array4D, ey, ez utils.Array3D) {
	atomic.AddInt64(cs.calls, 1)
	fvar := flux.Nk * flux.Nj * flux.Ni
	for n := 0; n < flux.N; n++ {
		base, stride := ln.Index4D(flux, 0)
		for i := ln.Il; i <= ln.Iu; i++ {
			flux.DataP[base+n*fvar+i*stride] = cs.value
		}
	}
}

// wideStencil asks for more cells than the ghost layers hold
type wideStencil struct{ DonorCell }

func (wideStencil) Stencil() int { return NGHOST + 1 }

func TestInjectedCollaborators(t *testing.T) {
	{ // The injected Riemann solver replaces the configured one, once per line
		var calls int64
		cfg := adiabatic(false)
		h := newTestHydro(t, [3]int{6, 5, 4}, cfg, WithRiemannSolver(constantSolver{value: 0.25, calls: &calls}))
		w, b, bcc := uniformState(h, 1, 1, [3]float64{0.3, 0.2, 0.1}, [3]float64{})
		h.CalculateFluxes(0.01, w, b, bcc, 2)
		var lines int64
		for _, sr := range h.Sweeps {
			lines += int64(sr.NumLines())
			base, stride := sr.Line(0).Index4D(h.Flux[sr.Dir], types.IEN)
			assert.Equal(t, 0.25, h.Flux[sr.Dir].DataP[base+sr.Lo[sr.Dir]*stride])
		}
		assert.Equal(t, lines, atomic.LoadInt64(&calls))
	}
	{ // An injected reconstructor is used for orders above one
		var results [2]*Hydro
		for n, opts := range [][]Option{nil, {WithReconstructor(DonorCell{})}} {
			h := newTestHydro(t, [3]int{7, 6, 1}, adiabatic(true), opts...)
			w, b, bcc := randomState(h, 31)
			h.CalculateFluxes(0.01, w, b, bcc, 1+n)
			results[n] = h
		}
		for d := types.X1DIR; d <= types.X2DIR; d++ {
			assert.True(t, mat.Equal(results[0].Flux[d].M, results[1].Flux[d].M))
			assert.True(t, mat.Equal(results[0].Weight.Dir(d).M, results[1].Weight.Dir(d).M))
		}
	}
	{ // A stencil wider than the ghost layers is rejected
		blk, _ := NewBlock(8, 1, 1)
		coords, _ := NewUniformCartesian(blk, [3]float64{}, [3]float64{1, 1, 1})
		_, err := NewHydro(blk, adiabatic(false), coords, WithReconstructor(wideStencil{}))
		assert.Error(t, err)
	}
}
