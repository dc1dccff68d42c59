package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Array4D stores (n, k, j, i) with i running fastest. The storage is a dense
matrix with N*Nk*Nj rows of length Ni, so whole-array linear algebra can be
done through M while the kernels index DataP directly.
*/
type Array4D struct {
	M             *mat.Dense
	DataP         []float64
	N, Nk, Nj, Ni int
	readOnly      bool
	name          string
}

func NewArray4D(n, nk, nj, ni int) (A Array4D) {
	if n < 1 || nk < 1 || nj < 1 || ni < 1 {
		panic(fmt.Errorf("invalid array dimensions [%d,%d,%d,%d]", n, nk, nj, ni))
	}
	data := make([]float64, n*nk*nj*ni)
	A = Array4D{
		M:     mat.NewDense(n*nk*nj, ni, data),
		DataP: data,
		N:     n, Nk: nk, Nj: nj, Ni: ni,
		name:  "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

func (a Array4D) Dims() (n, nk, nj, ni int) { return a.N, a.Nk, a.Nj, a.Ni }

func (a Array4D) Index(n, k, j, i int) int {
	return i + a.Ni*(j+a.Nj*(k+a.Nk*n))
}

func (a Array4D) At(n, k, j, i int) float64 { return a.DataP[a.Index(n, k, j, i)] }

func (a Array4D) Set(n, k, j, i int, val float64) {
	if a.readOnly {
		panic(fmt.Errorf("attempt to write to read only array %s", a.name))
	}
	a.DataP[a.Index(n, k, j, i)] = val
}

// Stride returns the distance in DataP between neighbors along axis 0 (i), 1 (j) or 2 (k)
func (a Array4D) Stride(axis int) int {
	switch axis {
	case 0:
		return 1
	case 1:
		return a.Ni
	case 2:
		return a.Ni * a.Nj
	}
	panic(fmt.Errorf("invalid axis %d", axis))
}

// Var returns a view of variable n as a 3D array sharing storage
func (a Array4D) Var(n int) (V Array3D) {
	var (
		size = a.Nk * a.Nj * a.Ni
	)
	data := a.DataP[n*size : (n+1)*size]
	V = Array3D{
		M:     mat.NewDense(a.Nk*a.Nj, a.Ni, data),
		DataP: data,
		Nk:    a.Nk, Nj: a.Nj, Ni: a.Ni,
		readOnly: a.readOnly,
		name:     a.name,
	}
	return
}

func (a Array4D) Fill(val float64) Array4D {
	if a.readOnly {
		panic(fmt.Errorf("attempt to write to read only array %s", a.name))
	}
	for i := range a.DataP {
		a.DataP[i] = val
	}
	return a
}

func (a Array4D) Copy() (R Array4D) {
	R = NewArray4D(a.N, a.Nk, a.Nj, a.Ni)
	R.M.Copy(a.M)
	return
}

func (a *Array4D) SetReadOnly(name ...string) Array4D {
	if len(name) != 0 {
		a.name = name[0]
	}
	a.readOnly = true
	return *a
}

func (a *Array4D) SetWritable() Array4D {
	a.readOnly = false
	return *a
}

func (a Array4D) IsReadOnly() bool { return a.readOnly }

type Array3D struct {
	M          *mat.Dense
	DataP      []float64
	Nk, Nj, Ni int
	readOnly   bool
	name       string
}

func NewArray3D(nk, nj, ni int) (A Array3D) {
	if nk < 1 || nj < 1 || ni < 1 {
		panic(fmt.Errorf("invalid array dimensions [%d,%d,%d]", nk, nj, ni))
	}
	data := make([]float64, nk*nj*ni)
	A = Array3D{
		M:     mat.NewDense(nk*nj, ni, data),
		DataP: data,
		Nk:    nk, Nj: nj, Ni: ni,
		name:  "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

func (a Array3D) Dims() (nk, nj, ni int) { return a.Nk, a.Nj, a.Ni }

func (a Array3D) Index(k, j, i int) int { return i + a.Ni*(j+a.Nj*k) }

func (a Array3D) At(k, j, i int) float64 { return a.DataP[a.Index(k, j, i)] }

func (a Array3D) Set(k, j, i int, val float64) {
	if a.readOnly {
		panic(fmt.Errorf("attempt to write to read only array %s", a.name))
	}
	a.DataP[a.Index(k, j, i)] = val
}

func (a Array3D) Stride(axis int) int {
	switch axis {
	case 0:
		return 1
	case 1:
		return a.Ni
	case 2:
		return a.Ni * a.Nj
	}
	panic(fmt.Errorf("invalid axis %d", axis))
}

func (a Array3D) Fill(val float64) Array3D {
	if a.readOnly {
		panic(fmt.Errorf("attempt to write to read only array %s", a.name))
	}
	for i := range a.DataP {
		a.DataP[i] = val
	}
	return a
}

func (a Array3D) Copy() (R Array3D) {
	R = NewArray3D(a.Nk, a.Nj, a.Ni)
	R.M.Copy(a.M)
	return
}

func (a *Array3D) SetReadOnly(name ...string) Array3D {
	if len(name) != 0 {
		a.name = name[0]
	}
	a.readOnly = true
	return *a
}

func (a *Array3D) SetWritable() Array3D {
	a.readOnly = false
	return *a
}

func (a Array3D) IsReadOnly() bool { return a.readOnly }
