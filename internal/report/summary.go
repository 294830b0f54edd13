package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/compare"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/solver"
)

// Summary prints the comparison table for a completed run. It is only
// called after both integrations succeeded; failed runs report their error
// and nothing else.
func Summary(w io.Writer, rep *compare.Report, fixedSteps int, stats solver.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tSTEPS\tFINAL Y")
	fmt.Fprintf(tw, "rk4\t%d\t%.10f\n", fixedSteps, rep.FinalFixed)
	fmt.Fprintf(tw, "rk45\t%d (+%d rejected)\t%.10f\n", stats.Steps, stats.Rejected, rep.FinalAdaptive)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nmax |rk4 - rk45|: %.3e at x = %.6f\n", rep.MaxErr, rep.MaxErrX)
	fmt.Fprintf(w, "rhs evaluations (oracle): %d\n", stats.Evals)
	return nil
}

// TerminalPlot renders a trajectory as an ASCII chart.
func TerminalPlot(w io.Writer, tr *ode.Trajectory, caption string) {
	graph := asciigraph.Plot(tr.Ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)
}

// ExportData is the JSON shape of one exported run.
type ExportData struct {
	Model         string    `json:"model"`
	X0            float64   `json:"x0"`
	Y0            float64   `json:"y0"`
	XEnd          float64   `json:"xend"`
	Steps         int       `json:"steps"`
	H             float64   `json:"h"`
	FixedXs       []float64 `json:"fixed_xs"`
	FixedYs       []float64 `json:"fixed_ys"`
	AdaptiveXs    []float64 `json:"adaptive_xs"`
	AdaptiveYs    []float64 `json:"adaptive_ys"`
	AbsErr        []float64 `json:"abs_err"`
	MaxErr        float64   `json:"max_err"`
	FinalFixed    float64   `json:"final_fixed"`
	FinalAdaptive float64   `json:"final_adaptive"`
}

func ExportJSON(w io.Writer, model string, p ode.Problem, fixed, adaptive *ode.Trajectory, rep *compare.Report) error {
	data := ExportData{
		Model:         model,
		X0:            p.X0,
		Y0:            p.Y0,
		XEnd:          p.XEnd,
		Steps:         p.Steps,
		H:             p.H(),
		FixedXs:       fixed.Xs,
		FixedYs:       fixed.Ys,
		AdaptiveXs:    adaptive.Xs,
		AdaptiveYs:    adaptive.Ys,
		AbsErr:        rep.AbsErr,
		MaxErr:        rep.MaxErr,
		FinalFixed:    rep.FinalFixed,
		FinalAdaptive: rep.FinalAdaptive,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
