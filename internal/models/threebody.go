package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// ThreeBody is three equal masses under planar Newtonian gravity,
// started on the figure-eight choreography. The orbit is periodic with
// period 6.3259, so long runs expose accumulated phase error.
//
//	x[4i+0] : body i position x
//	x[4i+1] : body i position y
//	x[4i+2] : body i velocity x
//	x[4i+3] : body i velocity y
type ThreeBody struct {
	Masses [3]float64
	G      float64
}

func NewThreeBody() *ThreeBody {
	return &ThreeBody{
		Masses: [3]float64{1.0, 1.0, 1.0},
		G:      1.0,
	}
}

func (tb *ThreeBody) Name() string { return "threebody" }
func (tb *ThreeBody) Dim() int     { return 12 }

func (tb *ThreeBody) Initial() ode.State {
	return ode.State{
		0.97000436, -0.24308753, 0.46620368, 0.43236573,
		-0.97000436, 0.24308753, 0.46620368, 0.43236573,
		0.0, 0.0, -0.93240737, -0.86473146,
	}
}

func (tb *ThreeBody) Derivative(x ode.State, t float64) ode.State {
	dx := make(ode.State, len(x))

	for i := 0; i < 3; i++ {
		dx[i*4] = x[i*4+2]
		dx[i*4+1] = x[i*4+3]

		ax, ay := 0.0, 0.0
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}

			rx := x[j*4] - x[i*4]
			ry := x[j*4+1] - x[i*4+1]
			r := math.Sqrt(rx*rx + ry*ry)

			// Close-approach guard keeps the derivative finite.
			if r > 1e-6 {
				f := tb.G * tb.Masses[j] / (r * r * r)
				ax += f * rx
				ay += f * ry
			}
		}

		dx[i*4+2] = ax
		dx[i*4+3] = ay
	}

	return dx
}

// Energy is kinetic plus pairwise gravitational potential; conserved
// along exact trajectories.
func (tb *ThreeBody) Energy(x ode.State) float64 {
	e := 0.0
	for i := 0; i < 3; i++ {
		vx, vy := x[i*4+2], x[i*4+3]
		e += 0.5 * tb.Masses[i] * (vx*vx + vy*vy)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			rx := x[j*4] - x[i*4]
			ry := x[j*4+1] - x[i*4+1]
			r := math.Sqrt(rx*rx + ry*ry)
			if r > 1e-6 {
				e -= tb.G * tb.Masses[i] * tb.Masses[j] / r
			}
		}
	}
	return e
}
