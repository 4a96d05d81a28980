package gonality_test

import (
	"fmt"

	"github.com/katalvlaran/chipfire/builder"
	"github.com/katalvlaran/chipfire/gonality"
)

// The triangle needs two chips to cover every vertex; one is never enough.
func ExampleGonality() {
	g, _ := builder.Cycle(3)

	k, labels, _ := gonality.Gonality(g)
	fmt.Println("gonality:", k)
	for _, v := range g.Vertices() {
		fmt.Printf("vertex %d: %d chips\n", v, labels[v])
	}
	// Output:
	// gonality: 2
	// vertex 1: 2 chips
	// vertex 2: 0 chips
	// vertex 3: 0 chips
}

// Larger levels can be spread over a worker pool; the answer is identical.
func ExampleSearch_parallel() {
	g, _ := builder.Complete(4)

	res, _ := gonality.Search(g, gonality.WithParallelism(4))
	fmt.Println("gonality:", res.Degree)
	// Output:
	// gonality: 3
}
