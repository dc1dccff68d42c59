package hydro

import (
	"math"

	"github.com/notargets/ctflux/utils"
)

/*
Reconstructor produces the left and right interface states of one variable on
faces ln.Il..ln.Iu. Face i sits between cells i-1 and i; wl[dstVar][i] is the
state on the cell i-1 side and wr[dstVar][i] the state on the cell i side.
dxw holds cell widths along the line for the stencil cells, implementations
that do not need widths ignore it.
*/
type Reconstructor interface {
	Reconstruct(ln Line, src utils.Array4D, srcVar, dstVar int, dxw []float64, wl, wr [][]float64)
	// Stencil is how many cells beyond the face range are read on each side
	Stencil() int
}

// NewReconstructor selects donor cell for order 1, piecewise linear otherwise
func NewReconstructor(order int, lt LimiterType) Reconstructor {
	if order <= 1 {
		return DonorCell{}
	}
	return PiecewiseLinear{Limiter: lt}
}

// DonorCell is piecewise constant: the adjacent cell value is copied unmodified
type DonorCell struct{}

func (DonorCell) Stencil() int { return 1 }

func (DonorCell) Reconstruct(ln Line, src utils.Array4D, srcVar, dstVar int, _ []float64, wl, wr [][]float64) {
	var (
		base, stride = ln.Index4D(src, srcVar)
		q            = src.DataP
		ql, qr       = wl[dstVar], wr[dstVar]
	)
	for i := ln.Il; i <= ln.Iu; i++ {
		ql[i] = q[base+(i-1)*stride]
		qr[i] = q[base+i*stride]
	}
}

// PiecewiseLinear uses limited slopes scaled by the local cell widths
type PiecewiseLinear struct {
	Limiter LimiterType
}

func (PiecewiseLinear) Stencil() int { return 2 }

func (pl PiecewiseLinear) Reconstruct(ln Line, src utils.Array4D, srcVar, dstVar int, dxw []float64, wl, wr [][]float64) {
	var (
		base, stride = ln.Index4D(src, srcVar)
		q            = src.DataP
		ql, qr       = wl[dstVar], wr[dstVar]
	)
	// Cell i feeds the left state of face i+1 and the right state of face i
	for i := ln.Il - 1; i <= ln.Iu; i++ {
		var (
			qm  = q[base+(i-1)*stride]
			q0  = q[base+i*stride]
			qp  = q[base+(i+1)*stride]
			dqL = (q0 - qm) / (0.5 * (dxw[i-1] + dxw[i]))
			dqR = (qp - q0) / (0.5 * (dxw[i] + dxw[i+1]))
			dq  = pl.Limiter.Limit(dqL, dqR) * dxw[i]
		)
		if i < ln.Iu {
			ql[i+1] = q0 + 0.5*dq
		}
		if i >= ln.Il {
			qr[i] = q0 - 0.5*dq
		}
	}
}

// Limit returns the limited slope from the left and right one-sided slopes
func (lt LimiterType) Limit(dqL, dqR float64) (dq float64) {
	if dqL*dqR <= 0 {
		return 0
	}
	switch lt {
	case LIMITER_VanLeer:
		dq = 2 * dqL * dqR / (dqL + dqR)
	default:
		dq = math.Copysign(math.Min(math.Abs(dqL), math.Abs(dqR)), dqL)
	}
	return
}
