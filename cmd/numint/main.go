package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/numint/internal/analysis"
	"github.com/san-kum/numint/internal/config"
	"github.com/san-kum/numint/internal/metrics"
	"github.com/san-kum/numint/internal/models"
	"github.com/san-kum/numint/internal/observe"
	"github.com/san-kum/numint/internal/ode"
	"github.com/san-kum/numint/internal/solver"
	"github.com/san-kum/numint/internal/steppers"
	"github.com/san-kum/numint/internal/storage"
	"github.com/san-kum/numint/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	stepper    string
	delta      float64
	startTime  float64
	endTime    float64
	initState  string
	configFile string
	preset     string
	decimate   int
	saveRun    bool
	showChart  bool

	adaptive     bool
	minDelta     float64
	maxDelta     float64
	tolerance    float64
	iterations   int
	errorFormula string
	failOnTol    bool

	pngPath      string
	exportFormat string
	component    int
)

// main registers the numint commands and executes the root command. It
// exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "numint",
		Short: "explicit ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultOutputDir, "run storage directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIntegration,
	}
	addIntegrationFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&decimate, "decimate", 0, "record every nth sample")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "store the run")
	runCmd.Flags().BoolVar(&showChart, "chart", false, "chart the trajectory")

	compareCmd := &cobra.Command{
		Use:   "compare [model] [stepper...]",
		Short: "compare steppers on the same model",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareSteppers,
	}
	compareCmd.Flags().Float64Var(&delta, "dt", config.DefaultDelta, "fixed timestep")
	compareCmd.Flags().Float64Var(&endTime, "end", config.DefaultEnd, "end time")
	compareCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive tolerance")

	steppersCmd := &cobra.Command{
		Use:   "steppers",
		Short: "list integration methods",
		RunE:  listSteppers,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models",
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG instead of a terminal chart")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format (csv or json)")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark every stepper on a model",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSteppers,
	}
	benchCmd.Flags().Float64Var(&delta, "dt", config.DefaultDelta, "fixed timestep")
	benchCmd.Flags().Float64Var(&endTime, "end", config.DefaultEnd, "end time")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics and frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&component, "component", 0, "state component for the spectrum")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addIntegrationFlags(liveCmd)

	rootCmd.AddCommand(runCmd, compareCmd, steppersCmd, modelsCmd, presetsCmd,
		listCmd, plotCmd, exportCmd, benchCmd, analyzeCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addIntegrationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&stepper, "stepper", "rk4", "integration method")
	cmd.Flags().Float64Var(&delta, "dt", config.DefaultDelta, "timestep (initial trial step when adaptive)")
	cmd.Flags().Float64Var(&startTime, "start", 0.0, "start time")
	cmd.Flags().Float64Var(&endTime, "end", config.DefaultEnd, "end time")
	cmd.Flags().StringVar(&initState, "state", "", "initial state, comma separated")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "enable step-size control")
	cmd.Flags().Float64Var(&minDelta, "min-dt", config.DefaultMinDelta, "smallest adaptive step")
	cmd.Flags().Float64Var(&maxDelta, "max-dt", config.DefaultMaxDelta, "largest adaptive step")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "refinement passes per step")
	cmd.Flags().StringVar(&errorFormula, "error-norm", "mixed", "error normalization (absolute, relative, mixed)")
	cmd.Flags().BoolVar(&failOnTol, "fail-on-tolerance", false, "error out when tolerance cannot be met")
}

// buildConfig layers preset, config file and flags, in rising precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if cmd.Flags().Changed("stepper") {
		cfg.Stepper = stepper
	}
	if cmd.Flags().Changed("dt") {
		cfg.Delta = delta
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = startTime
	}
	if cmd.Flags().Changed("end") {
		cfg.End = endTime
	}
	if cmd.Flags().Changed("state") {
		parsed, err := parseState(initState)
		if err != nil {
			return nil, err
		}
		cfg.InitState = parsed
	}
	if cmd.Flags().Changed("decimate") {
		cfg.Decimate = decimate
	}
	if cmd.Flags().Changed("adaptive") {
		cfg.Adaptive.Enabled = adaptive
	}
	if cmd.Flags().Changed("min-dt") {
		cfg.Adaptive.MinDelta = minDelta
	}
	if cmd.Flags().Changed("max-dt") {
		cfg.Adaptive.MaxDelta = maxDelta
	}
	if cmd.Flags().Changed("tol") {
		cfg.Adaptive.Tolerance = tolerance
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Adaptive.Iterations = iterations
	}
	if cmd.Flags().Changed("error-norm") {
		cfg.Adaptive.ErrorFormula = errorFormula
	}
	if cmd.Flags().Changed("fail-on-tolerance") {
		cfg.Adaptive.FailOnTolerance = failOnTol
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildStepper returns the configured method, wrapped with step-size
// control when the adaptive section is enabled.
func buildStepper(cfg *config.Config) (ode.Stepper, error) {
	base, err := steppers.Get(cfg.Stepper)
	if err != nil {
		return nil, err
	}
	if !cfg.Adaptive.Enabled {
		return base, nil
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return steppers.NewAdaptive(base, opts)
}

func initialState(cfg *config.Config, sys models.Model) (ode.State, error) {
	if len(cfg.InitState) == 0 {
		return sys.Initial(), nil
	}
	if len(cfg.InitState) != sys.Dim() {
		return nil, fmt.Errorf("model %s needs %d state components, got %d",
			sys.Name(), sys.Dim(), len(cfg.InitState))
	}
	return ode.State(cfg.InitState).Clone(), nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	sys, err := models.Get(cfg.Model)
	if err != nil {
		return err
	}

	st, err := buildStepper(cfg)
	if err != nil {
		return err
	}

	x0, err := initialState(cfg, sys)
	if err != nil {
		return err
	}

	rec := observe.NewRecorder()
	ms := []metrics.Metric{metrics.NewStepSize(), metrics.NewStability(1e6)}
	if drift := metrics.NewEnergyDrift(sys); drift != nil {
		ms = append(ms, drift)
	}

	var sink ode.Observer = rec
	if cfg.Decimate > 1 {
		sink = observe.NewDecimate(rec, cfg.Decimate)
	}
	observers := []ode.Observer{sink}
	for _, m := range ms {
		observers = append(observers, m)
	}

	mode := "fixed"
	if cfg.Adaptive.Enabled {
		mode = "adaptive"
	}
	fmt.Printf("integrating %s with %s (%s)...\n", cfg.Model, cfg.Stepper, mode)

	res, err := solver.Run(st, sys, x0, cfg.Start, cfg.End, cfg.Delta, observe.Multi(observers...))
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("accepted steps: %d\n", res.Steps)
	if cfg.Adaptive.Enabled {
		fmt.Printf("trial sub-steps: %d\n", res.SubSteps)
		if res.Forced > 0 {
			fmt.Printf("forced accepts: %d\n", res.Forced)
		}
	}
	fmt.Printf("final state: %s\n", formatState(res.Final))

	vals := metrics.Collect(ms)
	if len(vals) > 0 {
		fmt.Println("\nmetrics:")
		for _, name := range sortedKeys(vals) {
			fmt.Printf("  %s: %.6g\n", name, vals[name])
		}
	}

	if cfg.Adaptive.Enabled && rec.Len() > 2 {
		times := rec.Times()
		deltas := make([]float64, len(times)-1)
		for i := 1; i < len(times); i++ {
			deltas[i-1] = times[i] - times[i-1]
		}
		fmt.Printf("\nstep sizes: %s\n", viz.Sparkline(deltas, 60))
	}

	if showChart {
		printCharts(rec.States(), cfg.Model, 4, 8)
	}

	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		meta := storage.RunMetadata{
			Model:    cfg.Model,
			Stepper:  cfg.Stepper,
			Start:    cfg.Start,
			End:      cfg.End,
			Delta:    cfg.Delta,
			Adaptive: cfg.Adaptive.Enabled,
			Steps:    res.Steps,
			Forced:   res.Forced,
			Metrics:  vals,
		}
		if cfg.Adaptive.Enabled {
			meta.MinDelta = cfg.Adaptive.MinDelta
			meta.MaxDelta = cfg.Adaptive.MaxDelta
			meta.Tolerance = cfg.Adaptive.Tolerance
		}
		id, err := store.Save(meta, rec.Times(), rec.States())
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", id)
	}

	return nil
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	sys, err := models.Get(args[0])
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		names = steppers.List()
	}

	opts := steppers.DefaultOptions()
	opts.Tolerance = tolerance
	x0 := sys.Initial()

	fmt.Printf("comparing steppers on %s (dt=%g, span=[%g, %g], tol=%g)\n\n",
		sys.Name(), delta, 0.0, endTime, tolerance)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tORDER\tFIXED STEPS\tADAPTIVE STEPS\tFORCED\tMAX DIFF")

	for _, name := range names {
		info, err := steppers.Lookup(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fixed, err := solver.Run(info.New(), sys, x0, 0, endTime, delta, nil)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		ad, err := steppers.NewAdaptive(info.New(), opts)
		if err != nil {
			return err
		}
		controlled, err := solver.Run(ad, sys, x0, 0, endTime, delta, nil)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.3e\n",
			name, info.Order, fixed.Steps, controlled.Steps, controlled.Forced,
			maxDiff(fixed.Final, controlled.Final))
	}

	return w.Flush()
}

func listSteppers(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORDER\tEVALS/STEP\tDESCRIPTION")
	for _, name := range steppers.List() {
		info, _ := steppers.Lookup(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, info.Order, info.Evaluations, info.Description)
	}
	return w.Flush()
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tDEFAULT INITIAL STATE")
	for _, name := range models.List() {
		m, _ := models.Get(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, m.Dim(), formatState(m.Initial()))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tSTEPPER\tSPAN\tMODE")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		mode := fmt.Sprintf("fixed dt=%g", cfg.Delta)
		if cfg.Adaptive.Enabled {
			mode = fmt.Sprintf("adaptive tol=%g", cfg.Adaptive.Tolerance)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%s\n",
			name, cfg.Model, cfg.Stepper, cfg.Start, cfg.End, mode)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSTEPPER\tTIME\tSPAN\tDELTA\tSTEPS")

	for _, run := range runs {
		mode := run.Stepper
		if run.Adaptive {
			mode += " (adaptive)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%g, %g]\t%g\t%d\n",
			run.ID,
			run.Model,
			mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start,
			run.End,
			run.Delta,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	store := storage.New(dataDir)

	if pngPath != "" {
		if err := store.PlotPNG(runID, pngPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
		return nil
	}

	meta, err := store.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := store.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	printCharts(states, meta.Model, 6, 10)
	return nil
}

func printCharts(states []ode.State, model string, maxPlots, height int) {
	if len(states) == 0 {
		return
	}

	numVars := len(states[0])
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][varIdx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s x%d vs time", model, varIdx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	switch exportFormat {
	case "csv":
		return store.ExportCSV(os.Stdout, args[0])
	case "json":
		return store.ExportJSON(os.Stdout, args[0])
	default:
		return fmt.Errorf("unknown format: %s", exportFormat)
	}
}

func benchSteppers(cmd *cobra.Command, args []string) error {
	sys, err := models.Get(args[0])
	if err != nil {
		return err
	}
	x0 := sys.Initial()

	fmt.Printf("benchmarking %s (dt=%g, span=[0, %g])\n\n", sys.Name(), delta, endTime)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tSTEPS\tTIME\tNS/STEP\tSTEPS/SEC")

	for _, name := range steppers.List() {
		st, _ := steppers.Get(name)
		res, err := solver.Run(st, sys, x0, 0, endTime, delta, nil)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		nsPerStep := float64(res.Elapsed.Nanoseconds()) / float64(res.Steps)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%.0f\n",
			name, res.Steps, res.Elapsed, nsPerStep, float64(res.Steps)/res.Elapsed.Seconds())
	}

	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	store := storage.New(dataDir)

	meta, err := store.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := store.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 || len(states[0]) == 0 {
		return fmt.Errorf("no data")
	}
	if component < 0 || component >= len(states[0]) {
		return fmt.Errorf("component %d out of range for dimension %d", component, len(states[0]))
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("model: %s\n\n", meta.Model)

	stats := analysis.Summarize(states)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tMEAN\tSTD\tMIN\tMAX")
	for i, cs := range stats {
		fmt.Fprintf(w, "x%d\t%.6g\t%.6g\t%.6g\t%.6g\n", i, cs.Mean, cs.StdDev, cs.Min, cs.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(times) < 2 {
		return nil
	}
	dt := times[1] - times[0]

	data := make([]float64, len(states))
	for i := range states {
		data[i] = states[i][component]
	}

	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	if n >= 4 {
		ps := analysis.PowerSpectrum(data[:n])
		plotData := ps[:len(ps)/4]

		fmt.Println()
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (x%d)", component)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	freq := analysis.DominantFrequency(data, dt)
	fmt.Printf("dominant frequency: %.4f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.4f s\n", 1.0/freq)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	sys, err := models.Get(cfg.Model)
	if err != nil {
		return err
	}

	st, err := buildStepper(cfg)
	if err != nil {
		return err
	}

	x0, err := initialState(cfg, sys)
	if err != nil {
		return err
	}

	m := viz.NewModel(sys, st, cfg.Model, x0, cfg.Delta)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func parseState(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad state component %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatState(x ode.State) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func maxDiff(a, b ode.State) float64 {
	max := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
