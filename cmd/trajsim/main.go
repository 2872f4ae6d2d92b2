package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/flight"
)

var (
	mass       float64
	speed      float64
	angle      float64
	drag       float64
	area       float64
	dt         float64
	maxTime    float64
	integrator string
	configFile string
	preset     string

	format    string
	plot      bool
	svgSize   int
	from      float64
	to        float64
	step      float64
	logLevel  string
	logFormat string

	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	trials      int
	seed        int64
	speedJitter float64
	angleJitter float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "trajsim",
		Short:         "paper airplane trajectory simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text|json)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one flight",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addLaunchFlags(runCmd)
	runCmd.Flags().StringVar(&format, "format", "summary", "output format (summary|csv|json|svg)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "draw the path in the terminal")
	runCmd.Flags().IntVar(&svgSize, "svg-width", 800, "svg width in pixels")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators on the same flight",
		RunE:  compareIntegrators,
	}
	addLaunchFlags(compareCmd)

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "sweep launch angle for maximum range",
		Args:  cobra.NoArgs,
		RunE:  optimizeAngle,
	}
	addLaunchFlags(optimizeCmd)
	optimizeCmd.Flags().Float64Var(&from, "from", 0, "first angle (deg)")
	optimizeCmd.Flags().Float64Var(&to, "to", 90, "last angle (deg)")
	optimizeCmd.Flags().Float64Var(&step, "step", 1, "angle step (deg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a template config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "tune launch parameters interactively",
		Args:  cobra.NoArgs,
		RunE:  runTuner,
	}
	addLaunchFlags(tuneCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of flights",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one launch parameter and tabulate the flights",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addLaunchFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", flight.ParamSpeed, "parameter to vary (mass|speed|angle|drag|area)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 5, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 15, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "n", 11, "number of values")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "estimate landing spread under launch jitter",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	addLaunchFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&trials, "trials", 200, "number of trials")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	monteCarloCmd.Flags().Float64Var(&speedJitter, "speed-jitter", 0.5, "max launch speed error (m/s)")
	monteCarloCmd.Flags().Float64Var(&angleJitter, "angle-jitter", 2, "max launch angle error (deg)")

	rootCmd.AddCommand(runCmd, compareCmd, optimizeCmd, presetsCmd, initCmd, tuneCmd,
		scenarioCmd, sweepCmd, monteCarloCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addLaunchFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().Float64Var(&mass, "mass", def.Launch.Mass, "mass (kg)")
	cmd.Flags().Float64Var(&speed, "speed", def.Launch.InitialSpeed, "initial speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", def.Launch.LaunchAngle, "launch angle (deg)")
	cmd.Flags().Float64Var(&drag, "drag", def.Launch.DragCoefficient, "drag coefficient")
	cmd.Flags().Float64Var(&area, "area", def.Launch.WingArea, "wing area (m^2)")
	cmd.Flags().Float64Var(&dt, "dt", def.Integration.TimeStep, "timestep (s)")
	cmd.Flags().Float64Var(&maxTime, "max-time", def.Integration.MaxTime, "time budget (s)")
	cmd.Flags().StringVar(&integrator, "integrator", def.Integrator, "integrator")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}
