package integrators

import "github.com/san-kum/odelab/internal/ode"

// RK4 is the classical fixed-step 4th-order Runge-Kutta method. Local
// truncation error O(h^5), global error O(h^4).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

// Step advances y across one step of width h. The four stages sample the
// slope at the start, twice at the midpoint and at the end of the step; the
// (1,2,2,1)/6 weighting is what makes the method 4th order.
func (r *RK4) Step(f ode.Func, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h*0.5, y+h*0.5*k1)
	k3 := f(x+h*0.5, y+h*0.5*k2)
	k4 := f(x+h, y+h*k3)

	return y + h/6.0*(k1+2*k2+2*k3+k4)
}
