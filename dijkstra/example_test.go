package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algolab/core"
	"github.com/katalvlaran/algolab/dijkstra"
)

// ExampleShortestPath takes the detour through B because it is cheaper
// than the direct A→C edge.
func ExampleShortestPath() {
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: 1}},
		"C": {},
	}

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [A B C] 2
}

// ExampleShortestPath_unreachable shows the degenerate result for a target
// with no incoming path.
func ExampleShortestPath_unreachable() {
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 1}},
	}

	res, _ := dijkstra.ShortestPath(g, "A", "Z")
	fmt.Println(res.Path, res.Cost, res.Reachable())
	// Output: [Z] +Inf false
}

// ExampleWithStrategy trades a piano for a book the way a chain of swaps
// would, comparing both frontiers.
func ExampleWithStrategy() {
	trades := core.WeightedGraph[string]{
		"book":   {{To: "poster", Weight: 0}, {To: "lp", Weight: 5}},
		"poster": {{To: "guitar", Weight: 30}, {To: "drums", Weight: 35}},
		"lp":     {{To: "guitar", Weight: 15}, {To: "drums", Weight: 20}},
		"guitar": {{To: "piano", Weight: 20}},
		"drums":  {{To: "piano", Weight: 10}},
	}

	for _, s := range []dijkstra.Strategy{dijkstra.PriorityQueue, dijkstra.FIFO} {
		res, err := dijkstra.ShortestPath(trades, "book", "piano", dijkstra.WithStrategy[string](s))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(s, res.Path, res.Cost)
	}
	// Output:
	// priority [book lp drums piano] 35
	// fifo [book lp drums piano] 35
}
