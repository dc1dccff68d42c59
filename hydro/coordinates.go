package hydro

import (
	"fmt"

	"github.com/notargets/ctflux/types"
)

// Coordinates supplies the geometric cell widths along a line. Curvilinear
// metrics are folded into the widths by the implementation.
type Coordinates interface {
	// CenterWidth fills dxw[i] for i in [il, iu] with the width of cell i along ln.Dir
	CenterWidth(ln Line, il, iu int, dxw []float64)
}

// Cartesian holds face positions per direction, allowing stretched grids
type Cartesian struct {
	Xf [3][]float64 // Face positions, Ncells+1 per direction
	Dx [3][]float64 // Cell widths, Ncells per direction
}

func NewCartesian(b *Block, xf [3][]float64) (c *Cartesian, err error) {
	c = &Cartesian{Xf: xf}
	for d := 0; d < 3; d++ {
		if len(xf[d]) != b.Ncells[d]+1 {
			err = fmt.Errorf("%s face coordinates: have %d, need %d",
				types.Direction(d), len(xf[d]), b.Ncells[d]+1)
			return nil, err
		}
		c.Dx[d] = make([]float64, b.Ncells[d])
		for i := 0; i < b.Ncells[d]; i++ {
			c.Dx[d][i] = xf[d][i+1] - xf[d][i]
			if !(c.Dx[d][i] > 0) {
				err = fmt.Errorf("%s face coordinates must increase, cell %d has width %g",
					types.Direction(d), i, c.Dx[d][i])
				return nil, err
			}
		}
	}
	return
}

// NewUniformCartesian spreads the interior cells evenly over [xmin, xmax],
// ghost cells continue with the same spacing
func NewUniformCartesian(b *Block, xmin, xmax [3]float64) (c *Cartesian, err error) {
	var (
		xf [3][]float64
	)
	for d := 0; d < 3; d++ {
		if !(xmax[d] > xmin[d]) {
			return nil, fmt.Errorf("%s domain is empty: [%g, %g]", types.Direction(d), xmin[d], xmax[d])
		}
		dx := (xmax[d] - xmin[d]) / float64(b.Nx[d])
		xf[d] = make([]float64, b.Ncells[d]+1)
		for i := range xf[d] {
			xf[d][i] = xmin[d] + float64(i-b.Is[d])*dx
		}
	}
	return NewCartesian(b, xf)
}

func (c *Cartesian) CenterWidth(ln Line, il, iu int, dxw []float64) {
	copy(dxw[il:iu+1], c.Dx[ln.Dir][il:iu+1])
}

// CellCenter returns the midpoint of cell i along d
func (c *Cartesian) CellCenter(d types.Direction, i int) float64 {
	return 0.5 * (c.Xf[d][i] + c.Xf[d][i+1])
}
