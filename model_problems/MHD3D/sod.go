package MHD3D

import (
	"fmt"
	"math"
)

/*
RiemannExact is the exact solution of the hydrodynamic Riemann problem between
two states, used as the reference for the shock tube. Only Rho, P and the X1
velocity are used.
*/
type RiemannExact struct {
	Gamma       float64
	Left, Right State
	PStar       float64
	UStar       float64
}

func NewRiemannExact(gamma float64, left, right State) (re *RiemannExact, err error) {
	re = &RiemannExact{Gamma: gamma, Left: left, Right: right}
	var (
		cL, cR = re.soundSpeed(left), re.soundSpeed(right)
		du     = right.V[0] - left.V[0]
	)
	// Pressure positivity condition
	if 2*(cL+cR)/(gamma-1) <= du {
		err = fmt.Errorf("initial states generate vacuum")
		return nil, err
	}
	if re.PStar, err = fzero(func(p float64) (y, dy float64) {
		fL, dfL := re.pressureFunction(p, left)
		fR, dfR := re.pressureFunction(p, right)
		return fL + fR + du, dfL + dfR
	}, math.Max(1.e-8, 0.5*(left.P+right.P))); err != nil {
		return nil, err
	}
	fL, _ := re.pressureFunction(re.PStar, left)
	fR, _ := re.pressureFunction(re.PStar, right)
	re.UStar = 0.5*(left.V[0]+right.V[0]) + 0.5*(fR-fL)
	return
}

func (re *RiemannExact) soundSpeed(s State) float64 {
	return math.Sqrt(re.Gamma * s.P / s.Rho)
}

// pressureFunction is the velocity change across the wave separating s from the star region
func (re *RiemannExact) pressureFunction(p float64, s State) (f, df float64) {
	var (
		g = re.Gamma
		c = re.soundSpeed(s)
	)
	if p > s.P { // Shock
		var (
			A = 2 / ((g + 1) * s.Rho)
			B = (g - 1) / (g + 1) * s.P
			q = math.Sqrt(A / (p + B))
		)
		f = (p - s.P) * q
		df = q * (1 - 0.5*(p-s.P)/(p+B))
		return
	}
	// Rarefaction
	f = 2 * c / (g - 1) * (math.Pow(p/s.P, (g-1)/(2*g)) - 1)
	df = math.Pow(p/s.P, -(g+1)/(2*g)) / (s.Rho * c)
	return
}

// Sample returns the self-similar solution at xi = (x - x0) / t
func (re *RiemannExact) Sample(xi float64) (s State) {
	var (
		g      = re.Gamma
		g6     = (g - 1) / (g + 1)
		pS, uS = re.PStar, re.UStar
		L, R   = re.Left, re.Right
		cL, cR = re.soundSpeed(L), re.soundSpeed(R)
	)
	fan := func(side State, c, sign float64) (r State) {
		var (
			cf = 2 / (g + 1) * (c + sign*0.5*(g-1)*(side.V[0]-xi))
		)
		r.V[0] = 2 / (g + 1) * (sign*c + 0.5*(g-1)*side.V[0] + xi)
		r.Rho = side.Rho * math.Pow(cf/c, 2/(g-1))
		r.P = side.P * math.Pow(cf/c, 2*g/(g-1))
		return
	}
	if xi <= uS {
		if pS > L.P {
			if xi <= L.V[0]-cL*math.Sqrt((g+1)/(2*g)*pS/L.P+(g-1)/(2*g)) {
				return L
			}
			s.Rho = L.Rho * (pS/L.P + g6) / (g6*pS/L.P + 1)
		} else {
			if xi <= L.V[0]-cL {
				return L
			}
			if xi <= uS-cL*math.Pow(pS/L.P, (g-1)/(2*g)) {
				return fan(L, cL, 1)
			}
			s.Rho = L.Rho * math.Pow(pS/L.P, 1/g)
		}
	} else {
		if pS > R.P {
			if xi >= R.V[0]+cR*math.Sqrt((g+1)/(2*g)*pS/R.P+(g-1)/(2*g)) {
				return R
			}
			s.Rho = R.Rho * (pS/R.P + g6) / (g6*pS/R.P + 1)
		} else {
			if xi >= R.V[0]+cR {
				return R
			}
			if xi >= uS+cR*math.Pow(pS/R.P, (g-1)/(2*g)) {
				return fan(R, cR, -1)
			}
			s.Rho = R.Rho * math.Pow(pS/R.P, 1/g)
		}
	}
	s.P, s.V[0] = pS, uS
	return
}

// MassFlux is the Godunov mass flux through a stationary interface
func (re *RiemannExact) MassFlux() float64 {
	s := re.Sample(0)
	return s.Rho * s.V[0]
}

func fzero(f func(p float64) (y, dy float64), start float64) (p float64, err error) {
	var (
		tol = 1.e-12
	)
	p = start
	for iter := 0; iter < 100; iter++ {
		y, dy := f(p)
		pNew := math.Max(tol, p-y/dy)
		change := 2 * math.Abs(pNew-p) / (pNew + p)
		p = pNew
		if change < tol {
			return
		}
	}
	err = fmt.Errorf("star pressure did not converge, last value %g", p)
	return
}
