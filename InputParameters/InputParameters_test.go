package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ctflux/hydro"
)

func TestFluxParameters(t *testing.T) {
	{ // Full input
		fileInput := []byte(`
Title: Brio-Wu
Nx: [64, 8, 1]
XMin: [-0.5, 0, 0]
XMax: [0.5, 0.125, 1]
ReconstructOrder: 2
MagneticFields: true
NonBarotropicEOS: true
Gamma: 2.
FluxType: HLLE
Limiter: VanLeer
InitType: ShockTube
InitState:
  bx: 0.75
Dt: 0.001
Steps: 3
Threads: 2
`)
		var input FluxParameters
		require.NoError(t, input.Parse(fileInput))
		assert.Equal(t, [3]int{64, 8, 1}, input.Nx)
		assert.Equal(t, 0.75, input.InitState["bx"])
		assert.Equal(t, -0.5, input.XMin[0])
		input.Print()
		cfg, err := input.HydroConfig(false)
		require.NoError(t, err)
		assert.Equal(t, hydro.FLUX_HLLE, cfg.Flux)
		assert.Equal(t, hydro.LIMITER_VanLeer, cfg.Limiter)
		assert.Equal(t, 2., cfg.Gamma)
		assert.True(t, cfg.MagneticFields)
		assert.Equal(t, hydro.GravityOff, cfg.SelfGravity)
	}
	{ // Defaults
		var input FluxParameters
		require.NoError(t, input.Parse([]byte("Title: Defaults\nNx: [16]\n")))
		assert.Equal(t, [3]int{16, 1, 1}, input.Nx)
		assert.Equal(t, 2, input.ReconstructOrder)
		assert.Equal(t, 1, input.Steps)
		assert.Equal(t, 1., input.IsoSoundSpeed)
		assert.Equal(t, [3]float64{1, 1, 1}, input.XMax)
		cfg, err := input.HydroConfig(true)
		require.NoError(t, err)
		assert.Equal(t, hydro.FLUX_LaxFriedrichs, cfg.Flux)
		assert.True(t, cfg.Verbose)
	}
	{ // Bad input
		var input FluxParameters
		assert.Error(t, input.Parse([]byte("Nx: [a, b")))
		require.NoError(t, input.Parse([]byte("Nx: [8]\nSelfGravity: 4\n")))
		_, err := input.HydroConfig(false)
		assert.Error(t, err)
		input.SelfGravity = 0
		input.FluxType = "roe"
		assert.Panics(t, func() { _, _ = input.HydroConfig(false) })
	}
}
