package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/lfarias/cesim/internal/catalog"
	"github.com/lfarias/cesim/internal/config"
	"github.com/lfarias/cesim/internal/electro"
	"github.com/lfarias/cesim/internal/export"
	"github.com/lfarias/cesim/internal/metrics"
	"github.com/lfarias/cesim/internal/mobility"
	"github.com/lfarias/cesim/internal/signal"
	"github.com/lfarias/cesim/internal/simulate"
	"github.com/lfarias/cesim/internal/storage"
	"github.com/lfarias/cesim/internal/tui"
)

var (
	dataDir    string
	modelName  string
	policy     string
	molecules  []string
	ph         float64
	tempC      float64
	viscosity  float64
	ionic      float64
	voltage    float64
	length     float64
	samples    int
	margin     float64
	widthMode  string
	ampMode    string
	noise      bool
	seed       int64
	configFile string
	preset     string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cesim",
		Short: "capillary electrophoresis simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a separation and plot the electropherogram",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	moleculesCmd := &cobra.Command{
		Use:   "molecules",
		Short: "list the built-in molecule catalog",
		RunE:  listMolecules,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "replot a stored electropherogram",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write the stored curve as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the stored curve as SVG to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run the same separation under every mobility model",
		RunE:  compareModels,
	}
	addRunFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addRunFlags(liveCmd)

	rootCmd.AddCommand(runCmd, moleculesCmd, presetsCmd, listCmd, plotCmd,
		exportCmd, exportCSVCmd, exportSVGCmd, compareCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "stokes", "mobility model (chargemass|stokes|debye)")
	cmd.Flags().StringVar(&policy, "policy", "explicit", "charge policy (explicit|from-ph|from-mass)")
	cmd.Flags().StringSliceVar(&molecules, "molecules", []string{"gallic-acid", "quercetin"}, "catalog molecules")
	cmd.Flags().Float64Var(&ph, "ph", 7.0, "buffer pH")
	cmd.Flags().Float64Var(&tempC, "temp", 25.0, "temperature (°C)")
	cmd.Flags().Float64Var(&viscosity, "viscosity", 0.89, "viscosity (cP)")
	cmd.Flags().Float64Var(&ionic, "ionic", 50.0, "ionic strength (mM)")
	cmd.Flags().Float64Var(&voltage, "voltage", 15.0, "applied voltage (kV)")
	cmd.Flags().Float64Var(&length, "length", 50.0, "capillary length (cm)")
	cmd.Flags().IntVar(&samples, "samples", 1000, "curve samples")
	cmd.Flags().Float64Var(&margin, "margin", 1.5, "time-axis margin factor")
	cmd.Flags().StringVar(&widthMode, "width", "fractional", "peak width mode (fractional|mass)")
	cmd.Flags().StringVar(&ampMode, "amplitude", "constant", "peak amplitude mode (constant|mass)")
	cmd.Flags().BoolVar(&noise, "noise", false, "add detector noise")
	cmd.Flags().Int64Var(&seed, "seed", 0, "noise seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "configuration preset")
}

// buildConfig layers preset, config file, then explicit flags, latest wins.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

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

	if cmd.Flags().Changed("model") {
		cfg.Model = modelName
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = policy
	}
	if cmd.Flags().Changed("molecules") {
		cfg.Molecules = molecules
	}
	if cmd.Flags().Changed("ph") {
		cfg.Buffer.PH = ph
	}
	if cmd.Flags().Changed("temp") {
		cfg.Buffer.TemperatureC = tempC
	}
	if cmd.Flags().Changed("viscosity") {
		cfg.Buffer.ViscosityCP = viscosity
	}
	if cmd.Flags().Changed("ionic") {
		cfg.Buffer.IonicMM = ionic
	}
	if cmd.Flags().Changed("voltage") {
		cfg.Capillary.VoltageKV = voltage
	}
	if cmd.Flags().Changed("length") {
		cfg.Capillary.LengthCM = length
	}
	if cmd.Flags().Changed("samples") {
		cfg.Synthesis.Samples = samples
	}
	if cmd.Flags().Changed("margin") {
		cfg.Synthesis.Margin = margin
	}
	if cmd.Flags().Changed("width") {
		cfg.Synthesis.Width = widthMode
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Synthesis.Amplitude = ampMode
	}
	if cmd.Flags().Changed("noise") {
		cfg.Synthesis.Noise = noise
	}
	if cmd.Flags().Changed("seed") {
		cfg.Synthesis.Seed = seed
	}

	return cfg, nil
}

func simulateConfig(cfg *config.Config) (*simulate.Run, error) {
	analytes, err := cfg.ResolveAnalytes()
	if err != nil {
		return nil, err
	}

	model, err := mobility.New(cfg.Model)
	if err != nil {
		return nil, err
	}
	mobility.ApplyPolicy(model, mobility.ChargePolicy(cfg.Policy))

	return simulate.Simulate(model, analytes, cfg.Environment(), cfg.Geometry(), cfg.Options())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	run, err := simulateConfig(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MOLECULE\tMOBILITY\tTIME (s)\tAMPLITUDE\tPLATES")
	for _, r := range run.Results {
		peak := run.Curve.Peaks[r.Analyte.ID]
		fmt.Fprintf(w, "%s\t%.2f\t%.3f\t%.1f\t%.0f\n",
			r.Analyte.Name,
			electro.PracticalMobility(r.Mobility),
			r.MigrationTime,
			r.PeakAmplitude,
			metrics.PlateCount(peak),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(run.Results) > 1 {
		fmt.Println("\nresolution:")
		for i := 1; i < len(run.Results); i++ {
			a, b := run.Results[i-1], run.Results[i]
			rs := metrics.Resolution(run.Curve.Peaks[a.Analyte.ID], run.Curve.Peaks[b.Analyte.ID])
			fmt.Printf("  %s / %s: %.2f\n", a.Analyte.Name, b.Analyte.Name, rs)
		}
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(run.Curve.Intensity,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("intensity vs time"),
	))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, run)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	analytes, err := cfg.ResolveAnalytes()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tMOLECULE\tMOBILITY\tTIME (s)")

	for _, name := range mobility.Variants() {
		model, err := mobility.New(name)
		if err != nil {
			return err
		}
		mobility.ApplyPolicy(model, mobility.ChargePolicy(cfg.Policy))

		for _, a := range analytes {
			mu, err := model.Mobility(a, cfg.Environment())
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t%v\t-\n", name, a.Name, err)
				continue
			}
			tm, err := signal.MigrationTime(mu, cfg.Geometry())
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%v\n", name, a.Name, electro.PracticalMobility(mu), err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.3f\n", name, a.Name, electro.PracticalMobility(mu), tm)
		}
	}

	return w.Flush()
}

func listMolecules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMASS (g/mol)\tCHARGE\tRADIUS (nm)\tλmax (nm)")
	for _, a := range catalog.All() {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%+.0f\t%.2f\t%.0f\n",
			a.ID, a.Name, a.Mass, a.Charge, a.HydrodynamicRadius*1e9, a.LambdaMax)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tpH\tkV\tcm\tANALYTES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.0f\t%.0f\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Buffer.PH,
			run.Capillary.VoltageKV,
			run.Capillary.LengthCM,
			len(run.Analytes),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, intensity, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	if len(intensity) == 0 {
		return fmt.Errorf("no curve data to plot")
	}

	fmt.Printf("run: %s\nmodel: %s\nsamples: %d\n\n", meta.ID, meta.Model, len(intensity))
	fmt.Println(asciigraph.Plot(intensity,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("intensity vs time"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, intensity, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time_s", "intensity"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(intensity[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, intensity, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	eg := &signal.Electropherogram{
		Times:     times,
		Intensity: intensity,
		Peaks:     make(map[string]signal.Peak, len(meta.Analytes)),
	}
	for _, a := range meta.Analytes {
		eg.Peaks[a.ID] = signal.Peak{MigrationTime: a.MigrationTime, Amplitude: a.PeakAmplitude}
	}

	_, err = fmt.Print(export.ElectropherogramSVG(eg, meta.ID))
	return err
}
