package hydro

import (
	"fmt"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

// NGHOST is the ghost depth on each side of every non-collapsed axis. Two
// layers cover the piecewise linear stencil on the outermost face plus the
// one-cell transverse halo used by the CT sweeps.
const NGHOST = 2

/*
Block holds the index space of one structured grid block. Indices are in the
full (ghost inclusive) array space, Is..Ie is the inclusive interior range.
A collapsed axis (Nx == 1) has a single cell and no ghosts.
*/
type Block struct {
	Nx     [3]int // Interior cells
	Ncells [3]int // Cells including ghosts
	Is, Ie [3]int
}

func NewBlock(nx1, nx2, nx3 int) (b *Block, err error) {
	var (
		nx = [3]int{nx1, nx2, nx3}
	)
	for d, n := range nx {
		if n < 1 {
			err = fmt.Errorf("block size along %s must be >= 1, have %d", types.Direction(d), n)
			return
		}
	}
	if nx1 < 2 {
		err = fmt.Errorf("block must have more than one cell along X1, have %d", nx1)
		return
	}
	if nx3 > 1 && nx2 == 1 {
		err = fmt.Errorf("a block extended along X3 must be extended along X2, have [%d,%d,%d]",
			nx1, nx2, nx3)
		return
	}
	b = &Block{Nx: nx}
	for d := 0; d < 3; d++ {
		if nx[d] > 1 {
			b.Ncells[d] = nx[d] + 2*NGHOST
			b.Is[d] = NGHOST
			b.Ie[d] = NGHOST + nx[d] - 1
		} else {
			b.Ncells[d] = 1
		}
	}
	return
}

// Swept reports whether fluxes are computed along d
func (b *Block) Swept(d types.Direction) bool {
	return d == types.X1DIR || b.Nx[d] > 1
}

// CellDims returns the cell-centered array shape in (k, j, i) order
func (b *Block) CellDims() (nk, nj, ni int) {
	return b.Ncells[types.X3DIR], b.Ncells[types.X2DIR], b.Ncells[types.X1DIR]
}

// FaceDims returns the shape of an array staggered by one along d
func (b *Block) FaceDims(d types.Direction) (nk, nj, ni int) {
	nk, nj, ni = b.CellDims()
	switch d {
	case types.X1DIR:
		ni++
	case types.X2DIR:
		nj++
	case types.X3DIR:
		nk++
	}
	return
}

// MaxLine is the longest face line over all directions, used to size scratch
func (b *Block) MaxLine() (n int) {
	for d := 0; d < 3; d++ {
		if b.Ncells[d]+1 > n {
			n = b.Ncells[d] + 1
		}
	}
	return
}

func (b *Block) NewCellArray(nvar int) utils.Array4D {
	nk, nj, ni := b.CellDims()
	return utils.NewArray4D(nvar, nk, nj, ni)
}

func (b *Block) NewFaceArray(nvar int, d types.Direction) utils.Array4D {
	nk, nj, ni := b.FaceDims(d)
	return utils.NewArray4D(nvar, nk, nj, ni)
}

// Line is a 1D pencil of faces along Dir. The coordinate of K, J, I that lies
// along Dir is ignored, faces Il..Iu (inclusive) are addressed along Dir.
type Line struct {
	Dir     types.Direction
	K, J, I int
	Il, Iu  int
}

func (ln *Line) set(d types.Direction, v int) {
	switch d {
	case types.X1DIR:
		ln.I = v
	case types.X2DIR:
		ln.J = v
	case types.X3DIR:
		ln.K = v
	}
}

func (ln Line) origin() (k, j, i int) {
	k, j, i = ln.K, ln.J, ln.I
	switch ln.Dir {
	case types.X1DIR:
		i = 0
	case types.X2DIR:
		j = 0
	case types.X3DIR:
		k = 0
	}
	return
}

// Index4D returns the DataP offset of variable n at line position 0 and the
// stride between line positions, so element i lives at base+i*stride
func (ln Line) Index4D(a utils.Array4D, n int) (base, stride int) {
	k, j, i := ln.origin()
	return a.Index(n, k, j, i), a.Stride(int(ln.Dir))
}

func (ln Line) Index3D(a utils.Array3D) (base, stride int) {
	k, j, i := ln.origin()
	return a.Index(k, j, i), a.Stride(int(ln.Dir))
}

/*
SweepRange is the index range covered by the sweep along Dir, Lo and Hi are
inclusive and indexed by direction. Along Dir it spans faces, along the
transverse directions it spans cells, possibly extended into the halo.
*/
type SweepRange struct {
	Dir    types.Direction
	Lo, Hi [3]int
}

func NewSweepRange(b *Block, d types.Direction, magneticFields bool) (sr SweepRange) {
	sr.Dir = d
	for t := types.X1DIR; t <= types.X3DIR; t++ {
		sr.Lo[t], sr.Hi[t] = b.Is[t], b.Ie[t]
		if t == d {
			sr.Hi[t]++ // N+1 faces
			continue
		}
		// Edge EMF interpolation needs the face neighbors one cell into the halo
		if magneticFields && b.Nx[t] > 1 {
			sr.Lo[t]--
			sr.Hi[t]++
		}
	}
	return
}

func (sr SweepRange) Extent(d types.Direction) int { return sr.Hi[d] - sr.Lo[d] + 1 }

// outer and inner are the transverse directions, outer varies slowest
func (sr SweepRange) outerInner() (outer, inner types.Direction) {
	t1, t2 := sr.Dir.Transverse()
	if t1 > t2 {
		return t1, t2
	}
	return t2, t1
}

// NumLines is the number of pencils in the sweep
func (sr SweepRange) NumLines() int {
	outer, inner := sr.outerInner()
	return sr.Extent(outer) * sr.Extent(inner)
}

// Line returns pencil l, pencils are ordered with the inner transverse index fastest
func (sr SweepRange) Line(l int) (ln Line) {
	var (
		outer, inner = sr.outerInner()
		nInner       = sr.Extent(inner)
	)
	ln = Line{Dir: sr.Dir, Il: sr.Lo[sr.Dir], Iu: sr.Hi[sr.Dir]}
	ln.set(outer, sr.Lo[outer]+l/nInner)
	ln.set(inner, sr.Lo[inner]+l%nInner)
	return
}
