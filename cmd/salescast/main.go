package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salescast",
		Short: "Monte Carlo sales forecasting",
		Long: `salescast estimates the probability of meeting a monthly sales target
by simulating daily sales from a normal distribution, and generates
synthetic daily sales datasets for testing downstream tooling.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for machine consumption)")
	rootCmd.PersistentFlags().String("root", ".", "Directory searched for .salescast.yaml and .env")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEvaluateCmd(),
		newGenerateCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "salescast version %s\n", version)
			}
		},
	}
}

// parseDate parses a YYYY-MM-DD positional argument.
func parseDate(arg string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return d, nil
}
