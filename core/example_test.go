package core_test

import (
	"fmt"

	"github.com/katalvlaran/algolab/core"
)

// ExampleWeightedGraph shows lookups on a small road map, including a leaf.
func ExampleWeightedGraph() {
	roads := core.WeightedGraph[string]{
		"depot": {{To: "mill", Weight: 2.5}, {To: "port", Weight: 7}},
		"mill":  {{To: "port", Weight: 3}},
	}

	fmt.Println(roads.Neighbors("depot"))
	fmt.Println(len(roads.Edges("port")), roads.HasNode("port"))
	fmt.Println(core.Sorted(roads.Nodes()))
	fmt.Println(roads.Validate())
	// Output:
	// [mill port]
	// 0 true
	// [depot mill port]
	// <nil>
}
