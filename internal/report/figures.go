package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/odelab/internal/compare"
	"github.com/san-kum/odelab/internal/ode"
)

var (
	fixedColor    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	adaptiveColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	errColor      = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Figures writes the comparison figures for one run into outDir:
// fixed.png, adaptive.png and compare.png, plus error.png when withError is
// set. Nothing is written when the run itself failed; callers only reach
// this with complete trajectories.
func Figures(outDir string, fixed, adaptive *ode.Trajectory, rep *compare.Report, withError bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := saveLine(filepath.Join(outDir, "fixed.png"),
		"RK4 solution", fixed.Xs, fixed.Ys, fixedColor); err != nil {
		return err
	}
	if err := saveLine(filepath.Join(outDir, "adaptive.png"),
		"RK45 solution (adaptive grid)", adaptive.Xs, adaptive.Ys, adaptiveColor); err != nil {
		return err
	}
	if err := saveComparison(filepath.Join(outDir, "compare.png"), fixed, rep); err != nil {
		return err
	}
	if withError {
		if err := saveLine(filepath.Join(outDir, "error.png"),
			"absolute error |RK4 - RK45|", rep.Xs, rep.AbsErr, errColor); err != nil {
			return err
		}
	}
	return nil
}

func saveLine(path, title string, xs, ys []float64, c color.Color) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("figure %s: no data", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(toXYs(xs, ys))
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

func saveComparison(path string, fixed *ode.Trajectory, rep *compare.Report) error {
	p := plot.New()
	p.Title.Text = "RK4 vs RK45"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	fixedLine, err := plotter.NewLine(toXYs(fixed.Xs, fixed.Ys))
	if err != nil {
		return err
	}
	fixedLine.Color = fixedColor
	fixedLine.Width = vg.Points(2)

	oracleLine, err := plotter.NewLine(toXYs(rep.Xs, rep.Resampled))
	if err != nil {
		return err
	}
	oracleLine.Color = adaptiveColor
	oracleLine.Width = vg.Points(1.5)
	oracleLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(fixedLine, oracleLine)
	p.Legend.Add("RK4", fixedLine)
	p.Legend.Add("RK45 (interpolated)", oracleLine)
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

func toXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
