package hydro

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

type FluxType uint

const (
	FLUX_LaxFriedrichs FluxType = iota
	FLUX_HLLE
)

var (
	FluxNames = map[string]FluxType{
		"lax":  FLUX_LaxFriedrichs,
		"llf":  FLUX_LaxFriedrichs,
		"hlle": FLUX_HLLE,
	}
	FluxPrintNames = []string{"Local Lax Friedrichs", "HLLE"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("unable to use flux named %s", label)
		panic(err)
	}
	return
}

/*
RiemannSolver computes the face fluxes along one line from the reconstructed
states. ivx is the velocity slot normal to the faces, bx the face-normal field
(ignored without magnetic fields). The transverse field fluxes are returned as
EMFs: ey = -F(By), ez = F(Bz). Solvers hold no state between calls.
*/
type RiemannSolver interface {
	Solve(ln Line, ivx int, bx utils.Array3D, wl, wr [][]float64, flux utils.Array4D, ey, ez utils.Array3D)
}

func NewRiemannSolver(cfg Config) (rs RiemannSolver) {
	switch cfg.Flux {
	case FLUX_HLLE:
		rs = HLLE{EOS: cfg.EOS(), MagneticFields: cfg.MagneticFields}
	default:
		rs = LLF{EOS: cfg.EOS(), MagneticFields: cfg.MagneticFields}
	}
	return
}

type EquationOfState struct {
	NonBarotropic bool
	Gamma         float64
	IsoSoundSpeed float64
}

// Pressure returns the reconstructed pressure, or the isothermal one
func (eos EquationOfState) Pressure(rho float64, w [][]float64, i int) float64 {
	if eos.NonBarotropic {
		return w[types.IPR][i]
	}
	return eos.IsoSoundSpeed * eos.IsoSoundSpeed * rho
}

// FastSpeed is the fast magnetosonic speed along the normal, the sound speed without field
func (eos EquationOfState) FastSpeed(rho, p, bx, by, bz float64) float64 {
	var (
		asq float64
	)
	if eos.NonBarotropic {
		asq = eos.Gamma * p / rho
	} else {
		asq = eos.IsoSoundSpeed * eos.IsoSoundSpeed
	}
	var (
		vaxsq = bx * bx / rho
		ctsq  = (by*by + bz*bz) / rho
		tmp   = asq + vaxsq + ctsq
		disc  = tmp*tmp - 4*asq*vaxsq
	)
	return math.Sqrt(0.5 * (tmp + math.Sqrt(math.Max(disc, 0))))
}

// faceState is a primitive state rotated into the face frame
type faceState struct {
	rho, vx, vy, vz, p, bx, by, bz float64
}

// consFlux returns the conserved vector and the normal flux, indexed by the
// wave slots (IDN, IVX, IVY, IVZ, IEN, IBY, IBZ)
func (eos EquationOfState) consFlux(s faceState) (u, f [types.NWAVE]float64) {
	var (
		bsq = s.bx*s.bx + s.by*s.by + s.bz*s.bz
		pt  = s.p + 0.5*bsq
	)
	u[types.IDN] = s.rho
	u[types.IVX] = s.rho * s.vx
	u[types.IVY] = s.rho * s.vy
	u[types.IVZ] = s.rho * s.vz
	u[types.IBY] = s.by
	u[types.IBZ] = s.bz

	f[types.IDN] = s.rho * s.vx
	f[types.IVX] = s.rho*s.vx*s.vx + pt - s.bx*s.bx
	f[types.IVY] = s.rho*s.vx*s.vy - s.bx*s.by
	f[types.IVZ] = s.rho*s.vx*s.vz - s.bx*s.bz
	f[types.IBY] = s.by*s.vx - s.bx*s.vy
	f[types.IBZ] = s.bz*s.vx - s.bx*s.vz
	if eos.NonBarotropic {
		var (
			e   = s.p/(eos.Gamma-1) + 0.5*s.rho*(s.vx*s.vx+s.vy*s.vy+s.vz*s.vz) + 0.5*bsq
			vdb = s.vx*s.bx + s.vy*s.by + s.vz*s.bz
		)
		u[types.IEN] = e
		f[types.IEN] = (e+pt)*s.vx - s.bx*vdb
	}
	return
}

// LLF is the local Lax-Friedrichs (Rusanov) flux
type LLF struct {
	EOS            EquationOfState
	MagneticFields bool
}

func (rs LLF) Solve(ln Line, ivx int, bx utils.Array3D, wl, wr [][]float64, flux utils.Array4D, ey, ez utils.Array3D) {
	solveHLL(rs.EOS, rs.MagneticFields, false, ln, ivx, bx, wl, wr, flux, ey, ez)
}

// HLLE uses the two-wave HLL flux with Einfeldt's signal speed bounds
type HLLE struct {
	EOS            EquationOfState
	MagneticFields bool
}

func (rs HLLE) Solve(ln Line, ivx int, bx utils.Array3D, wl, wr [][]float64, flux utils.Array4D, ey, ez utils.Array3D) {
	solveHLL(rs.EOS, rs.MagneticFields, true, ln, ivx, bx, wl, wr, flux, ey, ez)
}

func solveHLL(eos EquationOfState, mhd, hlle bool, ln Line, ivx int, bx utils.Array3D,
	wl, wr [][]float64, flux utils.Array4D, ey, ez utils.Array3D) {
	var (
		ivy         = types.IVX + ((ivx-types.IVX)+1)%3
		ivz         = types.IVX + ((ivx-types.IVX)+2)%3
		nhydro      = types.NumHydro(eos.NonBarotropic)
		fbase, fstr = ln.Index4D(flux, 0)
		fvar        = flux.Nk * flux.Nj * flux.Ni
		bbase, bstr int
		ebase, estr int
		slot        = [5]int{types.IDN, types.IVX, types.IVY, types.IVZ, types.IEN}
		dest        = [5]int{types.IDN, ivx, ivy, ivz, types.IEN}
	)
	if mhd {
		bbase, bstr = ln.Index3D(bx)
		ebase, estr = ln.Index3D(ey)
	}
	load := func(w [][]float64, i int, bxi float64) (s faceState) {
		s.rho = w[types.IDN][i]
		s.vx, s.vy, s.vz = w[ivx][i], w[ivy][i], w[ivz][i]
		s.p = eos.Pressure(s.rho, w, i)
		if mhd {
			s.bx, s.by, s.bz = bxi, w[types.IBY][i], w[types.IBZ][i]
		}
		return
	}
	for i := ln.Il; i <= ln.Iu; i++ {
		var bxi float64
		if mhd {
			bxi = bx.DataP[bbase+i*bstr]
		}
		var (
			sL, sR = load(wl, i, bxi), load(wr, i, bxi)
			uL, fL = eos.consFlux(sL)
			uR, fR = eos.consFlux(sR)
			cfL    = eos.FastSpeed(sL.rho, sL.p, sL.bx, sL.by, sL.bz)
			cfR    = eos.FastSpeed(sR.rho, sR.p, sR.bx, sR.by, sR.bz)
			f      [types.NWAVE]float64
		)
		if hlle {
			var (
				bp = math.Max(math.Max(sL.vx+cfL, sR.vx+cfR), 0)
				bm = math.Min(math.Min(sL.vx-cfL, sR.vx-cfR), 0)
			)
			for n := range f {
				f[n] = (bp*fL[n] - bm*fR[n] + bp*bm*(uR[n]-uL[n])) / (bp - bm)
			}
		} else {
			a := math.Max(math.Abs(sL.vx)+cfL, math.Abs(sR.vx)+cfR)
			for n := range f {
				f[n] = 0.5*(fL[n]+fR[n]) - 0.5*a*(uR[n]-uL[n])
			}
		}
		for n := 0; n < nhydro; n++ {
			flux.DataP[fbase+dest[n]*fvar+i*fstr] = f[slot[n]]
		}
		if mhd {
			ey.DataP[ebase+i*estr] = -f[types.IBY]
			ez.DataP[ebase+i*estr] = f[types.IBZ]
		}
	}
}
