package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/flight"
	"github.com/san-kum/trajsim/internal/optim"
	"github.com/san-kum/trajsim/internal/tui"
	"github.com/san-kum/trajsim/internal/viz"
)

// resolveConfig layers defaults, then the preset, then the config file, then
// any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		slog.Debug("applied preset", "name", preset)
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("loaded config file", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Launch.Mass = mass
	}
	if flags.Changed("speed") {
		cfg.Launch.InitialSpeed = speed
	}
	if flags.Changed("angle") {
		cfg.Launch.LaunchAngle = angle
	}
	if flags.Changed("drag") {
		cfg.Launch.DragCoefficient = drag
	}
	if flags.Changed("area") {
		cfg.Launch.WingArea = area
	}
	if flags.Changed("dt") {
		cfg.Integration.TimeStep = dt
	}
	if flags.Changed("max-time") {
		cfg.Integration.MaxTime = maxTime
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	name := registry.Canonical(cfg.Integrator)

	start := time.Now()
	traj, err := registry.Run(fc, name)
	if err != nil {
		return err
	}
	slog.Info("simulation complete",
		"integrator", name,
		"steps", traj.Steps(),
		"outcome", traj.Outcome().String(),
		"elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	switch format {
	case "summary":
		return printSummary(out, traj)
	case "csv":
		return export.WriteCSV(out, traj)
	case "json":
		return export.WriteJSON(out, name, fc, traj)
	case "svg":
		return export.WriteSVG(out, traj, svgSize, svgSize/2)
	default:
		return fmt.Errorf("unknown format: %s (want summary, csv, json or svg)", format)
	}
}

func printSummary(w io.Writer, traj *flight.Trajectory) error {
	if plot {
		xs, ys := traj.Points()
		fmt.Fprintln(w, viz.PathStyle.Render(viz.PlotPath(xs, ys, 72, 18).String()))
		fmt.Fprintln(w, viz.HeightChart(traj, 60, 10))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, viz.Summary(traj))
	_, err := fmt.Fprintln(w, viz.Headline(traj))
	return err
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	results, err := registry.Compare(fc, names)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing integrators (dt=%.4f, max_time=%.1fs)\n\n", fc.TimeStep(), fc.MaxTime())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "integrator\trange_m\tapex_m\tflight_s\tenergy_drift\trange_err\toutcome\ttime_ms")
	for _, c := range results {
		rangeErr := "n/a"
		if fc.Frictionless() {
			rangeErr = fmt.Sprintf("%.2e", c.RangeError)
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.3f\t%.2e\t%s\t%s\t%.3f\n",
			c.Integrator, c.Range, c.Apex, c.FlightTime, c.EnergyDrift, rangeErr,
			c.Outcome, float64(c.Elapsed.Microseconds())/1000)
	}
	return tw.Flush()
}

func optimizeAngle(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}

	slog.Debug("sweeping launch angle", "from", from, "to", to, "step", step)
	best := optim.AngleSweep(fc, from, to, step)
	if best == nil {
		return fmt.Errorf("no valid angle in [%g, %g] with step %g", from, to, step)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "best angle: %s\n", viz.MetricValue.Render(fmt.Sprintf("%.2f deg", best.Params[flight.ParamAngle])))
	fmt.Fprintf(out, "range:      %.4f m\n", best.Score)
	fmt.Fprintf(out, "apex:       %.4f m\n", best.Traj.MaxHeight())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-12s mass=%gkg speed=%gm/s angle=%gdeg drag=%g area=%gm^2\n",
			name, p.Launch.Mass, p.Launch.InitialSpeed, p.Launch.LaunchAngle,
			p.Launch.DragCoefficient, p.Launch.WingArea)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "trajsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runTuner(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}
	return tui.Run(fc)
}
