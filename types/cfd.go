package types

import (
	"fmt"
	"strings"
)

type Direction uint8

const (
	X1DIR Direction = iota
	X2DIR
	X3DIR
)

var DirectionNames = map[string]Direction{
	"x1": X1DIR,
	"x2": X2DIR,
	"x3": X3DIR,
}

func (d Direction) String() string {
	return [...]string{"X1", "X2", "X3"}[d]
}

// Transverse returns the two other directions in cyclic order, so for X1 it
// returns (X2, X3), for X2 (X3, X1) and for X3 (X1, X2).
func (d Direction) Transverse() (t1, t2 Direction) {
	t1 = (d + 1) % 3
	t2 = (d + 2) % 3
	return
}

func NewDirection(label string) (d Direction) {
	var ok bool
	if d, ok = DirectionNames[strings.ToLower(label)]; !ok {
		panic(fmt.Errorf("unknown direction %s", label))
	}
	return
}

// Primitive variable indices, hydro variables first
const (
	IDN = iota // Density
	IVX        // Velocity components, also used for momentum fluxes
	IVY
	IVZ
	IPR // Pressure, non-barotropic only
)

const (
	IM1 = IVX
	IM2 = IVY
	IM3 = IVZ
	IEN = IPR // Energy flux slot
)

// Wave-frame slots for the transverse magnetic field, following the hydro
// variables in the reconstructed left/right states
const (
	IBY = IPR + 1 + iota
	IBZ
	NWAVE
)

// Cell-centered magnetic field components
const (
	IB1 = iota
	IB2
	IB3
	NFIELD
)

// NumHydro returns the number of conserved hydro variables
func NumHydro(nonBarotropic bool) int {
	if nonBarotropic {
		return 5
	}
	return 4
}

// VelocityIndex returns the velocity slot normal to direction d
func VelocityIndex(d Direction) int {
	return IVX + int(d)
}

// TransverseFieldIndices returns the cell-centered field components that are
// reconstructed into the IBY and IBZ slots when sweeping along d
func TransverseFieldIndices(d Direction) (iby, ibz int) {
	t1, t2 := d.Transverse()
	iby, ibz = IB1+int(t1), IB1+int(t2)
	return
}
