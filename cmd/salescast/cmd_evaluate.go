package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"salescast/internal/config"
	"salescast/internal/logging"
	"salescast/internal/simulate"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <starting_date> <target> <mean> <stddev>",
		Short: "Estimate the probability of meeting a monthly sales target",
		Long: `Run a Monte Carlo simulation of cumulative daily sales from the starting
date through the end of that calendar month, and report the fraction of
runs whose month total meets or exceeds the target.

Daily sales are drawn from a normal distribution with the given mean and
standard deviation. On Saturdays and Sundays the mean is scaled by the
weekend multiplier (1 = no effect, 0.5 = halved, 1.5 = raised 50%).

Examples:
  salescast evaluate 2016-07-14 20000 1000 200
  salescast evaluate 2016-07-14 20000 1000 200 --iterations 10000 --weekend 2
  salescast evaluate 2016-07-14 20000 1000 200 --seed 42 --json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load(root)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

			start, err := parseDate(args[0])
			if err != nil {
				return err
			}
			target, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[1], err)
			}
			mean, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid mean %q: %w", args[2], err)
			}
			stddev, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid stddev %q: %w", args[3], err)
			}

			params := simulate.Params{
				Mean:              mean,
				StdDev:            stddev,
				Start:             start,
				Iterations:        cfg.Simulation.Iterations,
				WeekendMultiplier: cfg.Simulation.WeekendMultiplier,
				Workers:           cfg.Simulation.Workers,
			}
			if cmd.Flags().Changed("iterations") {
				params.Iterations, _ = cmd.Flags().GetInt("iterations")
			}
			if cmd.Flags().Changed("weekend") {
				params.WeekendMultiplier, _ = cmd.Flags().GetFloat64("weekend")
			}
			if cmd.Flags().Changed("workers") {
				params.Workers, _ = cmd.Flags().GetInt("workers")
			}
			params.Seed, _ = cmd.Flags().GetInt64("seed")

			logger.Debug("running simulation",
				"start", start.Format("2006-01-02"),
				"iterations", params.Iterations,
				"weekend_multiplier", params.WeekendMultiplier,
				"workers", params.Workers)

			batch, err := simulate.Run(params)
			if err != nil {
				return err
			}
			fraction, err := simulate.Score(batch, target)
			if err != nil {
				return err
			}
			summary, err := simulate.Summarize(batch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"starting_date":      start.Format("2006-01-02"),
					"mean":               mean,
					"stddev":             stddev,
					"target":             target,
					"iterations":         params.Iterations,
					"weekend_multiplier": params.WeekendMultiplier,
					"target_met":         fraction,
					"totals":             summary,
				})
			}

			fmt.Fprintf(out, "Starting date: %s\n", start.Format("2006-01-02"))
			fmt.Fprintf(out, "Mean: $%.2f, SD: $%.2f\n", mean, stddev)
			fmt.Fprintf(out, "Target: $%.2f\n", target)
			fmt.Fprintf(out, "Target met: %.1f%% of %d simulations\n", fraction*100, summary.Iterations)
			fmt.Fprintf(out, "Month totals: mean $%.2f, p5 $%.2f, p50 $%.2f, p95 $%.2f\n",
				summary.Mean, summary.P5, summary.P50, summary.P95)
			return nil
		},
	}

	cmd.Flags().Int("iterations", 1000, "Number of simulations to run")
	cmd.Flags().Float64("weekend", 1, "Weekend multiplier for the mean")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = non-deterministic)")
	cmd.Flags().Int("workers", 0, "Simulation workers (0 = all CPUs)")

	return cmd
}
