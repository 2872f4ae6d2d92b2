package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/automation"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/viz"
)

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	slog.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	results, err := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(scenario.Name))
	if scenario.Description != "" {
		fmt.Fprintln(out, viz.Subtle.Render(scenario.Description))
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "step\tintegrator\tangle_deg\tspeed_mps\trange_m\tapex_m\tflight_s\toutcome")
	for _, r := range results {
		t := r.Trajectory
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.2f\t%.4f\t%.4f\t%.3f\t%s\n",
			r.Name, r.Integrator, r.Config.LaunchAngle(), r.Config.InitialSpeed(),
			t.Range(), t.MaxHeight(), t.FlightTime(), t.Outcome())
	}
	return tw.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}

	sweep := &automation.ParameterSweep{
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
	}
	results, err := automation.RunSweep(cmd.Context(), fc, sweep)
	if err != nil {
		return err
	}

	ranges := make([]float64, len(results))
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\trange_m\tapex_m\tflight_s\toutcome\n", sweepParam)
	for i, r := range results {
		ranges[i] = r.Range
		fmt.Fprintf(tw, "%.4g\t%.4f\t%.4f\t%.3f\t%s\n", r.ParamValue, r.Range, r.MaxHeight, r.FlightTime, r.Outcome)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nrange %s\n", viz.Sparkline(ranges, len(ranges)))
	return err
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.Flight()
	if err != nil {
		return err
	}

	slog.Debug("monte carlo", "trials", trials, "seed", seed)
	results, err := automation.RunMonteCarlo(cmd.Context(), &automation.MonteCarloConfig{
		Base:        fc,
		SpeedJitter: speedJitter,
		AngleJitter: angleJitter,
		NumTrials:   trials,
		Seed:        seed,
	})
	if err != nil {
		return err
	}

	d := automation.MonteCarloStats(results)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "trials:  %d (%d landed, seed %d)\n", d.Trials, d.Landed, seed)
	fmt.Fprintf(out, "range:   %s ± %.4f m\n", viz.MetricValue.Render(fmt.Sprintf("%.4f", d.Mean)), d.StdDev)
	_, err = fmt.Fprintf(out, "spread:  %.4f – %.4f m\n", d.Min, d.Max)
	return err
}
