package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	kdtree "github.com/halocat/periodic-kdtree"
	"github.com/halocat/periodic-kdtree/internal/runlog"
)

var (
	runPoints   int
	runQueries  int
	runRuns     int
	runLeafSize int
	runWorkers  int
	runSeed     int64
	runNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the build/query benchmark in both metric modes",
	Long: `Run the benchmark workload: build a tree over uniform random points
in the unit cube, then answer a batch of nearest-neighbor queries.

The workload runs twice, once in plain Euclidean mode and once under
periodic boundary conditions on the unit box, repeating each mode the
given number of times and reporting mean and standard deviation of the
build and query wall times. Results are stored in the run database
unless --no-save is given.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	runCmd.Flags().IntVar(&runPoints, "points", 100_000, "Number of indexed points")
	runCmd.Flags().IntVar(&runQueries, "queries", 100_000, "Number of query points per run")
	runCmd.Flags().IntVar(&runRuns, "runs", 10, "Number of repetitions per mode")
	runCmd.Flags().IntVar(&runLeafSize, "leaf-size", kdtree.DefaultLeafSize, "Maximum points per leaf node")
	runCmd.Flags().IntVar(&runWorkers, "workers", 1, "Goroutines for the query batch (1 = sequential)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Random seed for point and query generation")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "Skip writing results to the run database")
	rootCmd.AddCommand(runCmd)
}

// modeResult holds per-run wall times for one metric mode, in milliseconds.
type modeResult struct {
	mode        string
	buildMillis []float64
	queryMillis []float64
}

func runBench(cmd *cobra.Command, args []string) error {
	if runPoints < 1 || runQueries < 1 || runRuns < 1 {
		return fmt.Errorf("points, queries and runs must all be >= 1")
	}

	fmt.Printf("Points:    %d\n", runPoints)
	fmt.Printf("Queries:   %d\n", runQueries)
	fmt.Printf("Runs:      %d\n", runRuns)
	fmt.Printf("Leaf size: %d\n", runLeafSize)
	fmt.Printf("Workers:   %d\n\n", runWorkers)

	var results []modeResult
	for _, mode := range []string{"euclidean", "periodic"} {
		res, err := benchMode(mode)
		if err != nil {
			return fmt.Errorf("%s mode: %w", mode, err)
		}
		report(res)
		results = append(results, res)
	}

	if runNoSave {
		return nil
	}

	store, err := runlog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer store.Close()

	for _, res := range results {
		r := runlog.Run{
			Mode:        res.mode,
			Points:      runPoints,
			Queries:     runQueries,
			Runs:        runRuns,
			LeafSize:    runLeafSize,
			Workers:     runWorkers,
			BuildMeanMs: stat.Mean(res.buildMillis, nil),
			QueryMeanMs: stat.Mean(res.queryMillis, nil),
		}
		if runRuns > 1 {
			r.BuildStdMs = stat.StdDev(res.buildMillis, nil)
			r.QueryStdMs = stat.StdDev(res.queryMillis, nil)
		}
		if err := store.SaveRun(&r); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
	}
	fmt.Printf("Saved results to %s\n", dbPath)
	return nil
}

// benchMode times runRuns repetitions of build + query batch in one mode.
func benchMode(mode string) (modeResult, error) {
	res := modeResult{mode: mode}

	var box *kdtree.Box
	if mode == "periodic" {
		box = kdtree.UnitBox(3)
	}

	rng := rand.New(rand.NewSource(runSeed))
	for run := 0; run < runRuns; run++ {
		points := sampleCube(rng, runPoints)
		queries := sampleCube(rng, runQueries)

		ps, err := kdtree.NewPointSet(points)
		if err != nil {
			return res, err
		}

		start := time.Now()
		tree, err := kdtree.Build(ps, runLeafSize, box)
		if err != nil {
			return res, err
		}
		res.buildMillis = append(res.buildMillis, millisSince(start))

		start = time.Now()
		if _, err := tree.NearestBatchParallel(queries, runWorkers); err != nil {
			return res, err
		}
		res.queryMillis = append(res.queryMillis, millisSince(start))
	}
	return res, nil
}

// sampleCube draws n uniform points from the half-open unit cube [0, 1)^3.
func sampleCube(rng *rand.Rand, n int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	return points
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func report(res modeResult) {
	fmt.Printf("%s:\n", res.mode)
	fmt.Printf("  build: %8.1f ms  (stddev %.1f)\n",
		stat.Mean(res.buildMillis, nil), safeStdDev(res.buildMillis))
	fmt.Printf("  query: %8.1f ms  (stddev %.1f)\n\n",
		stat.Mean(res.queryMillis, nil), safeStdDev(res.queryMillis))
}

// safeStdDev avoids the NaN stat.StdDev returns for a single sample.
func safeStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
