package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/compare"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/convergence"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/model"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/report"
	"github.com/san-kum/odelab/internal/solver"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir    string
	modelName  string
	integrator string
	x0         float64
	y0         float64
	xEnd       float64
	steps      int
	tol        float64
	maxStep    float64
	configFile string
	preset     string
	outDir     string
	withError  bool
	frameRate  int
	levels     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step RK4 vs adaptive RK45 comparison lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate with rk4 and the rk45 oracle, compare, store",
		RunE:  runComparison,
	}
	addProblemFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "terminal plots of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	figuresCmd := &cobra.Command{
		Use:   "figures [run_id]",
		Short: "write png figures for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  writeFigures,
	}
	figuresCmd.Flags().StringVar(&outDir, "out", "figures", "output directory")
	figuresCmd.Flags().BoolVar(&withError, "error", false, "also write the error figure")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "grid-refinement study of the fixed-step method",
		RunE:  runConvergence,
	}
	addProblemFlags(convergeCmd)
	convergeCmd.Flags().IntVar(&levels, "levels", 5, "number of grid doublings")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step the fixed integrator with a live terminal view",
		RunE:  runLive,
	}
	addProblemFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models and presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("models:")
			for _, name := range model.Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, figuresCmd, exportCmd, convergeCmd, liveCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", config.DefaultModel, "right-hand side")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "fixed-step integrator")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "interval start")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial value")
	cmd.Flags().Float64Var(&xEnd, "xend", config.DefaultXEnd, "interval end")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of fixed steps")
	cmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "oracle tolerance")
	cmd.Flags().Float64Var(&maxStep, "max-step", 0, "oracle step cap (0 = fixed grid h)")
}

// resolveConfig merges preset, config file and flags, with flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("model") {
		cfg.Model = modelName
	}
	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("y0") {
		cfg.Y0 = y0
	}
	if cmd.Flags().Changed("xend") {
		cfg.XEnd = xEnd
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("tol") {
		cfg.Oracle.Tol = tol
	}
	if cmd.Flags().Changed("max-step") {
		cfg.Oracle.MaxStep = maxStep
	}

	return cfg, nil
}

func buildProblem(cfg *config.Config) (ode.Problem, model.Model, error) {
	m, err := model.Lookup(cfg.Model)
	if err != nil {
		return ode.Problem{}, nil, err
	}

	if dl, ok := m.(model.DomainLimited); ok {
		if !dl.InDomain(cfg.X0) || !dl.InDomain(cfg.XEnd) {
			return ode.Problem{}, nil, fmt.Errorf("%w: interval [%g, %g] leaves the domain of %s",
				ode.ErrDomain, cfg.X0, cfg.XEnd, m.Name())
		}
	}

	p := ode.Problem{
		F:     m.Eval,
		X0:    cfg.X0,
		Y0:    cfg.Y0,
		XEnd:  cfg.XEnd,
		Steps: cfg.Steps,
	}
	return p, m, nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p, m, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	stepper, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	fixed, err := solver.FixedStep(p, stepper)
	if err != nil {
		return err
	}

	acfg := solver.DefaultAdaptiveConfig()
	acfg.Tol = cfg.Oracle.Tol
	acfg.HMax = cfg.Oracle.MaxStep
	if acfg.HMax == 0 {
		acfg.HMax = p.H()
	}

	oracle, stats, err := solver.Adaptive(p, acfg, integrators.NewRK45())
	if err != nil {
		return err
	}

	rep, err := compare.Compare(fixed, oracle)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Model:         m.Name(),
		X0:            p.X0,
		Y0:            p.Y0,
		XEnd:          p.XEnd,
		Steps:         p.Steps,
		H:             p.H(),
		Tol:           acfg.Tol,
		MaxErr:        rep.MaxErr,
		MaxErrX:       rep.MaxErrX,
		FinalFixed:    rep.FinalFixed,
		FinalAdaptive: rep.FinalAdaptive,
		OracleSteps:   stats.Steps,
	}, fixed, oracle, rep)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	return report.Summary(os.Stdout, rep, p.Steps, stats)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tINTERVAL\tSTEPS\tH\tMAX ERR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%.6f\t%.3e\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.X0, run.XEnd,
			run.Steps,
			run.H,
			run.MaxErr,
		)
	}
	return w.Flush()
}

// reload rebuilds trajectories and the comparison for a stored run.
func reload(runID string) (*storage.RunMetadata, *ode.Trajectory, *ode.Trajectory, *compare.Report, error) {
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	fixed, err := st.LoadTrajectory(runID, "fixed")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	oracle, err := st.LoadTrajectory(runID, "oracle")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rep, err := compare.Compare(fixed, oracle)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return meta, fixed, oracle, rep, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, fixed, oracle, rep, err := reload(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\nmodel: %s\nsamples: %d\n\n", meta.ID, meta.Model, fixed.Len())
	report.TerminalPlot(os.Stdout, fixed, "rk4 solution")
	report.TerminalPlot(os.Stdout, oracle, "rk45 solution (adaptive grid)")
	report.TerminalPlot(os.Stdout, &ode.Trajectory{Xs: rep.Xs, Ys: rep.AbsErr}, "absolute error")
	return nil
}

func writeFigures(cmd *cobra.Command, args []string) error {
	_, fixed, oracle, rep, err := reload(args[0])
	if err != nil {
		return err
	}

	if err := report.Figures(outDir, fixed, oracle, rep, withError); err != nil {
		return err
	}
	fmt.Printf("figures written to %s\n", outDir)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, fixed, oracle, rep, err := reload(args[0])
	if err != nil {
		return err
	}

	p := ode.Problem{X0: meta.X0, Y0: meta.Y0, XEnd: meta.XEnd, Steps: meta.Steps}
	return report.ExportJSON(os.Stdout, meta.Model, p, fixed, oracle, rep)
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p, m, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	exact, ok := m.(model.ExactSolution)
	if !ok {
		return fmt.Errorf("model %s has no closed-form solution; try decay or logistic", m.Name())
	}

	stepper, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	study, err := convergence.Study(p, stepper,
		func(x float64) float64 { return exact.Exact(p.X0, p.Y0, x) }, levels)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tH\tERR\tORDER")
	for i, lv := range study {
		if i == 0 {
			fmt.Fprintf(w, "%d\t%.6e\t%.6e\t-\n", lv.Steps, lv.H, lv.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%.6e\t%.6e\t%.2f\n", lv.Steps, lv.H, lv.Err, lv.Order)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p, m, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	stepper, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	if err := viz.Run(p, stepper, m.Name(), frameRate); err != nil {
		if errors.Is(err, ode.ErrConfig) {
			return fmt.Errorf("invalid parameters: %w", err)
		}
		return err
	}
	return nil
}
