package hydro

import (
	"math"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

/*
UpwindWeight is the Gardiner & Stone (2007) upwind bias for the edge EMF
interpolation. It is 0.5 for a vanishing mass flux and saturates at 0 or 1 as
the flow through the face becomes one sided. The constants are part of the
scheme and must stay as written. A non-positive width*(rhoL+rhoR) violates the
caller's preconditions and the resulting non-finite value is passed through.
*/
func UpwindWeight(dt, massFlux, width, rhoL, rhoR float64) float64 {
	vOverC := (1024.0) * dt * massFlux / (width * (rhoL + rhoR))
	tmpMin := math.Min(0.5, vOverC)
	return 0.5 + math.Max(-0.5, tmpMin)
}

// CTWeights fills the upwind weights on the faces of ln from the mass flux
// just computed for the line and the reconstructed densities
func CTWeights(ln Line, dt float64, flux utils.Array4D, wl, wr [][]float64, dxw []float64, wght utils.Array3D) {
	var (
		fbase, fstr = ln.Index4D(flux, types.IDN)
		wbase, wstr = ln.Index3D(wght)
		rhoL, rhoR  = wl[types.IDN], wr[types.IDN]
	)
	for i := ln.Il; i <= ln.Iu; i++ {
		wght.DataP[wbase+i*wstr] = UpwindWeight(dt, flux.DataP[fbase+i*fstr], dxw[i], rhoL[i], rhoR[i])
	}
}
