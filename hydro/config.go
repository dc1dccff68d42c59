package hydro

import (
	"fmt"
	"strings"
)

type GravityMode uint8

const (
	GravityOff GravityMode = iota
	GravityFFT
	GravityMultigrid
)

var (
	GravityPrintNames = []string{"Off", "FFT", "Multigrid"}
)

func (gm GravityMode) Print() (txt string) {
	if int(gm) < len(GravityPrintNames) {
		txt = GravityPrintNames[gm]
	} else {
		txt = fmt.Sprintf("Unknown(%d)", gm)
	}
	return
}

// Enabled is true for both self-gravity variants, they share one flux correction
func (gm GravityMode) Enabled() bool { return gm != GravityOff }

type LimiterType uint8

const (
	LIMITER_MinMod LimiterType = iota
	LIMITER_VanLeer
)

var (
	LimiterNames = map[string]LimiterType{
		"minmod":  LIMITER_MinMod,
		"vanleer": LIMITER_VanLeer,
		"":        LIMITER_MinMod,
	}
	LimiterPrintNames = []string{"MinMod", "Van Leer"}
)

func (lt LimiterType) Print() (txt string) {
	txt = LimiterPrintNames[lt]
	return
}

func NewLimiterType(label string) (lt LimiterType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if lt, ok = LimiterNames[label]; !ok {
		err = fmt.Errorf("unable to use limiter named %s", label)
		panic(err)
	}
	return
}

/*
Config carries the capability flags of a run. It is validated and turned into
a fixed set of collaborators once, in NewHydro, the flux call never looks at
the flags again except through that setup.
*/
type Config struct {
	MagneticFields bool        // Reconstruct the transverse field, produce EMFs and CT weights
	NonBarotropic  bool        // Carry the energy equation
	SelfGravity    GravityMode // Add the gravity flux correction after the sweeps
	Gamma          float64     // Ratio of specific heats, non-barotropic only
	IsoSoundSpeed  float64     // Isothermal sound speed, barotropic only
	Flux           FluxType
	Limiter        LimiterType
	Threads        int // Worker count, 0 uses every CPU
	Verbose        bool
}

func (c Config) Validate() (err error) {
	if c.NonBarotropic {
		if !(c.Gamma > 1) {
			return fmt.Errorf("non-barotropic gas needs Gamma > 1, have %g", c.Gamma)
		}
	} else if !(c.IsoSoundSpeed > 0) {
		return fmt.Errorf("barotropic gas needs IsoSoundSpeed > 0, have %g", c.IsoSoundSpeed)
	}
	if int(c.SelfGravity) >= len(GravityPrintNames) {
		return fmt.Errorf("unknown self gravity mode %d", c.SelfGravity)
	}
	if int(c.Flux) >= len(FluxPrintNames) {
		return fmt.Errorf("unknown flux type %d", c.Flux)
	}
	if int(c.Limiter) >= len(LimiterPrintNames) {
		return fmt.Errorf("unknown limiter %d", c.Limiter)
	}
	if c.Threads < 0 {
		return fmt.Errorf("thread count must be >= 0, have %d", c.Threads)
	}
	return
}

func (c Config) EOS() EquationOfState {
	return EquationOfState{
		NonBarotropic: c.NonBarotropic,
		Gamma:         c.Gamma,
		IsoSoundSpeed: c.IsoSoundSpeed,
	}
}
