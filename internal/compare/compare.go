package compare

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Report holds the elementwise comparison of two trajectories on the fixed
// grid.
type Report struct {
	Xs            []float64
	Resampled     []float64 // adaptive solution interpolated onto Xs
	AbsErr        []float64
	MaxErr        float64
	MaxErrX       float64
	FinalFixed    float64
	FinalAdaptive float64
}

// Compare resamples the adaptive trajectory onto the fixed trajectory's grid
// and returns the elementwise absolute difference. The adaptive run must
// cover the fixed run's interval; it may use any internal grid.
func Compare(fixed, adaptive *ode.Trajectory) (*Report, error) {
	if fixed.Len() == 0 || adaptive.Len() == 0 {
		return nil, fmt.Errorf("compare: empty trajectory")
	}

	fLo, fHi := fixed.Xs[0], fixed.Xs[fixed.Len()-1]
	aLo, aHi := adaptive.Xs[0], adaptive.Xs[adaptive.Len()-1]
	const slack = 1e-9
	if aLo > fLo+slack || aHi < fHi-slack {
		return nil, fmt.Errorf("compare: adaptive run covers [%g, %g], fixed grid needs [%g, %g]", aLo, aHi, fLo, fHi)
	}

	resampled := Resample(adaptive, fixed.Xs)

	rep := &Report{
		Xs:        fixed.Xs,
		Resampled: resampled.Ys,
		AbsErr:    make([]float64, fixed.Len()),
	}
	for i := range fixed.Xs {
		d := math.Abs(fixed.Ys[i] - resampled.Ys[i])
		rep.AbsErr[i] = d
		if d > rep.MaxErr {
			rep.MaxErr = d
			rep.MaxErrX = fixed.Xs[i]
		}
	}

	_, rep.FinalFixed = fixed.Final()
	rep.FinalAdaptive = resampled.Ys[resampled.Len()-1]

	return rep, nil
}
