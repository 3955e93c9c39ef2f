package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "kdbench",
	Short: "Benchmark k-d tree build and nearest-neighbor query throughput",
	Long: `kdbench times construction and nearest-neighbor queries of the
periodic-kdtree library over uniform random points in the unit cube.

Each invocation runs the workload in both plain Euclidean mode and with
periodic boundary conditions on the unit box, and reports per-run mean
and standard deviation of the build and query phases.

Example usage:
  kdbench run                            # default workload
  kdbench run --points 1000000 --runs 5  # bigger point set, fewer runs
  kdbench run --workers 8                # parallel query fan-out
  kdbench history                        # past results from the database`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".kdbench", "runs.db")

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "Path to SQLite run database")
}
