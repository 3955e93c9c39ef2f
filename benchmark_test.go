package kdtree

import (
	"math/rand"
	"testing"
)

func benchPoints(n int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	return uniformPoints(rng, n, 3, 1)
}

// --- Build ---

func benchBuild(b *testing.B, n, leafSize int, box *Box) {
	b.Helper()
	points := benchPoints(n)
	ps, err := NewPointSet(points)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(ps, leafSize, box); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_1k(b *testing.B)   { benchBuild(b, 1_000, 32, nil) }
func BenchmarkBuild_10k(b *testing.B)  { benchBuild(b, 10_000, 32, nil) }
func BenchmarkBuild_100k(b *testing.B) { benchBuild(b, 100_000, 32, nil) }

func BenchmarkBuild_100k_Leaf1(b *testing.B)    { benchBuild(b, 100_000, 1, nil) }
func BenchmarkBuild_100k_Leaf8(b *testing.B)    { benchBuild(b, 100_000, 8, nil) }
func BenchmarkBuild_100k_Periodic(b *testing.B) { benchBuild(b, 100_000, 32, UnitBox(3)) }

// --- Nearest ---

func benchNearest(b *testing.B, n int, box *Box) {
	b.Helper()
	points := benchPoints(n)
	tree, err := BuildPoints(points, 32, box)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	queries := uniformPoints(rng, 1024, 3, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Nearest(queries[i%len(queries)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearest_1k(b *testing.B)   { benchNearest(b, 1_000, nil) }
func BenchmarkNearest_100k(b *testing.B) { benchNearest(b, 100_000, nil) }

func BenchmarkNearest_1k_Periodic(b *testing.B)   { benchNearest(b, 1_000, UnitBox(3)) }
func BenchmarkNearest_100k_Periodic(b *testing.B) { benchNearest(b, 100_000, UnitBox(3)) }

// --- Batch ---

func benchBatch(b *testing.B, workers int) {
	b.Helper()
	tree, err := BuildPoints(benchPoints(100_000), 32, nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	queries := uniformPoints(rng, 10_000, 3, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.NearestBatchParallel(queries, workers); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatch_100k_1Worker(b *testing.B)  { benchBatch(b, 1) }
func BenchmarkBatch_100k_4Workers(b *testing.B) { benchBatch(b, 4) }
func BenchmarkBatch_100k_8Workers(b *testing.B) { benchBatch(b, 8) }
