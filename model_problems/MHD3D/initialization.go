package MHD3D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/ctflux/hydro"
	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

type InitType uint

const (
	UNIFORM InitType = iota
	SHOCKTUBE
	BLAST
)

var (
	InitNames = map[string]InitType{
		"uniform":   UNIFORM,
		"shocktube": SHOCKTUBE,
		"blast":     BLAST,
	}
	InitPrintNames = []string{"Uniform Flow", "Shock Tube (Sod / Brio-Wu)", "Blast Wave"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
		panic(err)
	}
	return
}

// State is a primitive state with its magnetic field
type State struct {
	Rho, P float64
	V, B   [3]float64
}

// Override replaces components by name: rho, p, vx, vy, vz, bx, by, bz
func (s State) Override(values map[string]float64) (r State, err error) {
	r = s
	for key, val := range values {
		key = strings.ToLower(key)
		switch key {
		case "rho":
			r.Rho = val
		case "p":
			r.P = val
		case "vx", "vy", "vz":
			r.V[key[1]-'x'] = val
		case "bx", "by", "bz":
			r.B[key[1]-'x'] = val
		default:
			err = fmt.Errorf("unknown initial state component %s", key)
			return
		}
	}
	return
}

/*
InitialCondition produces the primitive field, the face field and the cell-centered
field for a block. The base state is the uniform state, the left state of the shock
tube or the ambient state of the blast, and can be adjusted with overrides.

	Uniform:   rho = 1, p = 1, everything else zero
	ShockTube: split at the X1 midpoint, Sod without field, Brio-Wu with field
	Blast:     p = 0.1 ambient, p = 10 inside r < 0.1 of the domain center
*/
type InitialCondition struct {
	Type           InitType
	Base           State
	MagneticFields bool
	xMid           [3]float64
}

func NewInitialCondition(it InitType, mhd bool, xmin, xmax [3]float64,
	overrides map[string]float64) (ic *InitialCondition, err error) {
	ic = &InitialCondition{Type: it, MagneticFields: mhd}
	switch it {
	case UNIFORM:
		ic.Base = State{Rho: 1, P: 1}
	case SHOCKTUBE:
		ic.Base = State{Rho: 1, P: 1}
		if mhd {
			ic.Base.B = [3]float64{0.75, 1, 0}
		}
	case BLAST:
		ic.Base = State{Rho: 1, P: 0.1}
		if mhd {
			ic.Base.B = [3]float64{1 / math.Sqrt2, 1 / math.Sqrt2, 0}
		}
	default:
		return nil, fmt.Errorf("unknown init type %d", it)
	}
	if ic.Base, err = ic.Base.Override(overrides); err != nil {
		return nil, err
	}
	if !mhd {
		ic.Base.B = [3]float64{}
	}
	for d := 0; d < 3; d++ {
		ic.xMid[d] = 0.5 * (xmin[d] + xmax[d])
	}
	return
}

// StateAt returns the state at position x
func (ic *InitialCondition) StateAt(x [3]float64) (s State) {
	s = ic.Base
	switch ic.Type {
	case SHOCKTUBE:
		if x[0] >= ic.xMid[0] {
			s.Rho, s.P = 0.125*ic.Base.Rho, 0.1*ic.Base.P
			s.V = [3]float64{}
			s.B[1], s.B[2] = -ic.Base.B[1], -ic.Base.B[2]
		}
	case BLAST:
		var r2 float64
		for d := 0; d < 3; d++ {
			r2 += (x[d] - ic.xMid[d]) * (x[d] - ic.xMid[d])
		}
		if r2 < 0.01 {
			s.P = 100 * ic.Base.P
		}
	}
	return
}

// Fields evaluates the initial condition on every cell and face of the block,
// ghosts included. Collapsed axes use their cell center.
func (ic *InitialCondition) Fields(h *hydro.Hydro, coords *hydro.Cartesian) (w utils.Array4D, b hydro.FaceField, bcc utils.Array4D) {
	var (
		blk        = h.Block
		nk, nj, ni = blk.CellDims()
		center     = func(k, j, i int) [3]float64 {
			return [3]float64{
				coords.CellCenter(types.X1DIR, i),
				coords.CellCenter(types.X2DIR, j),
				coords.CellCenter(types.X3DIR, k),
			}
		}
	)
	w = blk.NewPrimitiveField(h.Config.NonBarotropic)
	b = hydro.NewFaceField(blk)
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				s := ic.StateAt(center(k, j, i))
				w.Set(types.IDN, k, j, i, s.Rho)
				for n := 0; n < 3; n++ {
					w.Set(types.IVX+n, k, j, i, s.V[n])
				}
				if h.Config.NonBarotropic {
					w.Set(types.IPR, k, j, i, s.P)
				}
			}
		}
	}
	if h.Config.MagneticFields {
		for d := types.X1DIR; d <= types.X3DIR; d++ {
			bf := b.Dir(d)
			fk, fj, fi := bf.Dims()
			for k := 0; k < fk; k++ {
				for j := 0; j < fj; j++ {
					for i := 0; i < fi; i++ {
						x := [3]float64{coords.Xf[0][i], coords.Xf[1][j], coords.Xf[2][k]}
						// Only the face-normal coordinate sits on a face
						if d != types.X1DIR {
							x[0] = coords.CellCenter(types.X1DIR, i)
						}
						if d != types.X2DIR {
							x[1] = coords.CellCenter(types.X2DIR, j)
						}
						if d != types.X3DIR {
							x[2] = coords.CellCenter(types.X3DIR, k)
						}
						bf.Set(k, j, i, ic.StateAt(x).B[d])
					}
				}
			}
		}
	}
	bcc = b.CellCentered(blk)
	return
}
