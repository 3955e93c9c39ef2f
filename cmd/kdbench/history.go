package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/halocat/periodic-kdtree/internal/runlog"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past benchmark results",
	Long: `Display benchmark runs recorded in the run database, newest first.

Example:
  kdbench history           # last 20 runs
  kdbench history -n 0      # all runs`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Limit number of runs to display (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := runlog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		fmt.Println("Run 'kdbench run' to record one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMODE\tPOINTS\tQUERIES\tLEAF\tWORKERS\tBUILD ms\tQUERY ms")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.1f ± %.1f\t%.1f ± %.1f\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Mode, r.Points, r.Queries, r.LeafSize, r.Workers,
			r.BuildMeanMs, r.BuildStdMs, r.QueryMeanMs, r.QueryStdMs)
	}
	return w.Flush()
}
