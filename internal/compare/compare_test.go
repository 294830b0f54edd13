package compare_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/compare"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/model"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/solver"
)

func trajectory(points ...[2]float64) *ode.Trajectory {
	tr := ode.NewTrajectory(len(points) - 1)
	for _, p := range points {
		tr.Append(p[0], p[1])
	}
	return tr
}

var _ = Describe("Resample", func() {
	It("reproduces piecewise-linear data exactly on interior points", func() {
		src := trajectory([2]float64{0, 0}, [2]float64{1, 2}, [2]float64{2, 4})

		out := compare.Resample(src, []float64{0.25, 0.5, 1.5})

		Expect(out.Ys).To(HaveLen(3))
		Expect(out.Ys[0]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(out.Ys[1]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(out.Ys[2]).To(BeNumerically("~", 3.0, 1e-12))
	})

	It("passes through source samples unchanged", func() {
		src := trajectory([2]float64{0, 1}, [2]float64{1, 3}, [2]float64{2, -2})

		out := compare.Resample(src, []float64{0, 1, 2})

		Expect(out.Ys).To(Equal([]float64{1, 3, -2}))
	})

	It("clamps to the boundary samples outside the source interval", func() {
		src := trajectory([2]float64{1, 5}, [2]float64{2, 7})

		out := compare.Resample(src, []float64{0.5, 2.5})

		Expect(out.Ys[0]).To(Equal(5.0))
		Expect(out.Ys[1]).To(Equal(7.0))
	})
})

var _ = Describe("Compare", func() {
	It("computes the elementwise absolute difference and its maximum", func() {
		fixed := trajectory([2]float64{0, 1}, [2]float64{1, 2}, [2]float64{2, 3})
		adaptive := trajectory([2]float64{0, 1}, [2]float64{1, 2.5}, [2]float64{2, 3.1})

		rep, err := compare.Compare(fixed, adaptive)

		Expect(err).NotTo(HaveOccurred())
		Expect(rep.AbsErr).To(HaveLen(3))
		Expect(rep.MaxErr).To(BeNumerically("~", 0.5, 1e-12))
		Expect(rep.MaxErrX).To(Equal(1.0))
		Expect(rep.FinalFixed).To(Equal(3.0))
		Expect(rep.FinalAdaptive).To(BeNumerically("~", 3.1, 1e-12))
	})

	It("rejects an adaptive run that does not cover the fixed interval", func() {
		fixed := trajectory([2]float64{0, 1}, [2]float64{2, 3})
		short := trajectory([2]float64{0, 1}, [2]float64{1, 2})

		_, err := compare.Compare(fixed, short)

		Expect(err).To(HaveOccurred())
	})

	It("rejects empty trajectories", func() {
		_, err := compare.Compare(ode.NewTrajectory(0), ode.NewTrajectory(0))

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("End to end", func() {
	It("keeps rk4 within 1e-3 of the interpolated rk45 oracle on the reference problem", func() {
		m := model.NewLogDecay()
		p := ode.Problem{F: m.Eval, X0: 1, Y0: 1, XEnd: 10, Steps: 1000}

		fixed, err := solver.FixedStep(p, integrators.NewRK4())
		Expect(err).NotTo(HaveOccurred())
		Expect(fixed.Len()).To(Equal(1001))
		Expect(fixed.Xs[0]).To(Equal(1.0))
		Expect(fixed.Ys[0]).To(Equal(1.0))
		Expect(fixed.IsValid()).To(BeTrue())

		acfg := solver.DefaultAdaptiveConfig()
		acfg.HMax = p.H()
		oracle, _, err := solver.Adaptive(p, acfg, integrators.NewRK45())
		Expect(err).NotTo(HaveOccurred())

		rep, err := compare.Compare(fixed, oracle)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.MaxErr).To(BeNumerically("<", 1e-3))
		Expect(rep.FinalFixed).To(BeNumerically("~", rep.FinalAdaptive, 1e-3))
	})
})
