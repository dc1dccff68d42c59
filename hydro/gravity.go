package hydro

import (
	"github.com/notargets/ctflux/utils"
)

// GravitySource adds the self-gravity contribution to the face fluxes in place.
// It is called at most once per flux calculation, after all sweeps.
type GravitySource interface {
	AddGravityFlux(flux *[3]utils.Array4D)
}

// GravitySourceFunc adapts a function to GravitySource
type GravitySourceFunc func(flux *[3]utils.Array4D)

func (f GravitySourceFunc) AddGravityFlux(flux *[3]utils.Array4D) { f(flux) }
