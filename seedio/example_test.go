package seedio_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/wclique/seedio"
)

// A complete run over the triangle-with-isolated-vertex graph: one
// seed asking for unit-weight sum 3, every solution enumerated.
func ExampleRun() {
	stream := strings.Join([]string{
		"0 0",      // enumerate all; no maximality filter
		"4 1",      // order and weight dimension
		"0 1 1 0",  // adjacency matrix, row-major
		"1 0 1 0",
		"1 1 0 0",
		"0 0 0 0",
		"1 1 1 1",  // unit weights
		"0 4 1 2 3 4 3", // seed: empty S, A = {1,2,3,4}, target 3
	}, "\n")

	res, err := seedio.Run(strings.NewReader(stream), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	fmt.Println("solutions:", res.Stats.Solutions)
	// Output:
	// [[1,2,3]]
	// solutions: 1
}
