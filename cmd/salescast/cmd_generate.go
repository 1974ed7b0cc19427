package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"salescast/internal/config"
	"salescast/internal/dataset"
	"salescast/internal/logging"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <starting_date> <days> <mean> <stddev>",
		Short: "Generate a synthetic daily sales dataset",
		Long: `Generate dummy daily sales data following a normal distribution and write
it to a tabular file. Samples below zero are clamped to zero. An existing
output file is silently overwritten.

Examples:
  salescast generate 2016-01-01 182 1000 400
  salescast generate 2016-01-01 182 1000 400 --output sales.arrow --format arrow
  salescast generate 2016-01-01 182 1000 400 --format sqlite --output sales.db`,
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
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid days %q: %w", args[1], err)
			}
			mean, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid mean %q: %w", args[2], err)
			}
			stddev, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid stddev %q: %w", args[3], err)
			}

			output := cfg.Output.Path
			format := cfg.Output.Format
			if cmd.Flags().Changed("output") {
				output, _ = cmd.Flags().GetString("output")
			}
			if cmd.Flags().Changed("format") {
				format, _ = cmd.Flags().GetString("format")
			}
			seed, _ := cmd.Flags().GetInt64("seed")

			records, err := dataset.Generate(start, days, mean, stddev, seed)
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				err = dataset.WriteCSV(output, records)
			case "arrow":
				err = dataset.WriteArrow(output, records)
			case "sqlite":
				var w *dataset.SQLiteWriter
				w, err = dataset.NewSQLiteWriter(output)
				if err == nil {
					err = w.Write(context.Background(), records)
					if cerr := w.Close(); err == nil {
						err = cerr
					}
				}
			default:
				return fmt.Errorf("unknown output format %q (want csv, arrow, or sqlite)", format)
			}
			if err != nil {
				return err
			}

			logger.Debug("dataset written", "path", output, "format", format, "records", len(records))

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"path":    output,
					"format":  format,
					"records": len(records),
					"from":    records[0].Date.Format("2006-01-02"),
					"to":      records[len(records)-1].Date.Format("2006-01-02"),
				})
			}

			fmt.Fprintf(out, "Wrote %d records (%s to %s) to %s\n",
				len(records),
				records[0].Date.Format("2006-01-02"),
				records[len(records)-1].Date.Format("2006-01-02"),
				output)
			return nil
		},
	}

	cmd.Flags().String("output", "", "Output path (default from config, daily_sales_data.csv)")
	cmd.Flags().String("format", "", "Output format: csv, arrow, or sqlite (default csv)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = non-deterministic)")

	return cmd
}
