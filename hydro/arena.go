package hydro

import (
	"github.com/notargets/ctflux/types"
)

/*
Arena is the scratch owned by one worker: reconstructed left/right states for
every wave slot and a line of cell widths. It is sized for the longest line of
any direction and reused by every line and every sweep the worker handles, so
the sweeps over different directions must never overlap.
*/
type Arena struct {
	WL, WR [][]float64 // [NWAVE][MaxLine]
	Dxw    []float64
}

func NewArena(size int) (a *Arena) {
	a = &Arena{
		WL:  make([][]float64, types.NWAVE),
		WR:  make([][]float64, types.NWAVE),
		Dxw: make([]float64, size),
	}
	for n := 0; n < types.NWAVE; n++ {
		a.WL[n] = make([]float64, size)
		a.WR[n] = make([]float64, size)
	}
	return
}

// Reset zeroes [lo, hi] of every buffer, clipped to the arena size
func (a *Arena) Reset(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(a.Dxw)-1 {
		hi = len(a.Dxw) - 1
	}
	if hi < lo {
		return
	}
	for n := 0; n < types.NWAVE; n++ {
		clear(a.WL[n][lo : hi+1])
		clear(a.WR[n][lo : hi+1])
	}
	clear(a.Dxw[lo : hi+1])
}
