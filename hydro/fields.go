package hydro

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

// FaceField is a vector quantity stored on the faces normal to each direction
type FaceField struct {
	X1F, X2F, X3F utils.Array3D
}

func NewFaceField(b *Block) (ff FaceField) {
	ff.X1F = utils.NewArray3D(b.FaceDims(types.X1DIR))
	ff.X2F = utils.NewArray3D(b.FaceDims(types.X2DIR))
	ff.X3F = utils.NewArray3D(b.FaceDims(types.X3DIR))
	return
}

func (ff FaceField) Dir(d types.Direction) utils.Array3D {
	switch d {
	case types.X1DIR:
		return ff.X1F
	case types.X2DIR:
		return ff.X2F
	case types.X3DIR:
		return ff.X3F
	}
	panic(fmt.Errorf("invalid direction %d", d))
}

// CellCentered averages the face field onto cell centers (IB1, IB2, IB3).
// Collapsed directions have a single face pair and are averaged the same way.
func (ff FaceField) CellCentered(b *Block) (bcc utils.Array4D) {
	var (
		nk, nj, ni = b.CellDims()
	)
	bcc = b.NewCellArray(types.NFIELD)
	// Rows of each matrix view are (k, j) pairs, columns are i
	average := func(dst *mat.Dense, lo, hi mat.Matrix) {
		dst.Add(lo, hi)
		dst.Scale(0.5, dst)
	}
	x1f := ff.X1F.M
	average(bcc.Var(types.IB1).M, x1f.Slice(0, nk*nj, 0, ni), x1f.Slice(0, nk*nj, 1, ni+1))
	x2f := ff.X2F.M
	for k := 0; k < nk; k++ {
		var (
			r0  = k * (nj + 1)
			dst = bcc.Var(types.IB2).M.Slice(k*nj, (k+1)*nj, 0, ni).(*mat.Dense)
		)
		average(dst, x2f.Slice(r0, r0+nj, 0, ni), x2f.Slice(r0+1, r0+nj+1, 0, ni))
	}
	x3f := ff.X3F.M
	average(bcc.Var(types.IB3).M, x3f.Slice(0, nk*nj, 0, ni), x3f.Slice(nj, (nk+1)*nj, 0, ni))
	return
}

func (b *Block) NewPrimitiveField(nonBarotropic bool) utils.Array4D {
	return b.NewCellArray(types.NumHydro(nonBarotropic))
}

func checkDims4D(name string, a utils.Array4D, nvar, nk, nj, ni int) {
	if a.N < nvar || a.Nk != nk || a.Nj != nj || a.Ni != ni {
		panic(fmt.Errorf("%s has shape [%d,%d,%d,%d], need at least [%d,%d,%d,%d]",
			name, a.N, a.Nk, a.Nj, a.Ni, nvar, nk, nj, ni))
	}
}

func checkDims3D(name string, a utils.Array3D, nk, nj, ni int) {
	if a.Nk != nk || a.Nj != nj || a.Ni != ni {
		panic(fmt.Errorf("%s has shape [%d,%d,%d], need [%d,%d,%d]",
			name, a.Nk, a.Nj, a.Ni, nk, nj, ni))
	}
}
