// kdbench measures build and nearest-neighbor query throughput of the
// k-d tree over uniform random points in the unit cube, in plain
// Euclidean mode and under periodic boundary conditions.
package main

func main() {
	Execute()
}
