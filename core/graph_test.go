package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/core"
)

// diamond is the A→{B,C}→D graph used across core tests.
func diamond() core.Graph[string] {
	return core.Graph[string]{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
	}
}

func TestGraph_NeighborsAndLeaves(t *testing.T) {
	g := diamond()

	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	// D is a leaf: never a key, still a node.
	assert.Nil(t, g.Neighbors("D"))
	assert.True(t, g.HasNode("D"))
	// unknown ids are silent
	assert.Nil(t, g.Neighbors("Z"))
	assert.False(t, g.HasNode("Z"))
}

func TestGraph_NodesIncludesLeaves(t *testing.T) {
	g := diamond()

	assert.Equal(t, []string{"A", "B", "C", "D"}, core.Sorted(g.Nodes()))
	assert.Equal(t, 4, g.NumEdges())
}

func TestGraph_Empty(t *testing.T) {
	var g core.Graph[string]

	assert.Nil(t, g.Neighbors("A"))
	assert.Empty(t, g.Nodes())
	assert.Zero(t, g.NumEdges())
}

func TestWeightedGraph_Lookups(t *testing.T) {
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: 1}},
	}

	assert.Equal(t, []core.Edge[string]{{To: "C", Weight: 1}}, g.Edges("B"))
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Nil(t, g.Edges("C"))
	assert.Nil(t, g.Neighbors("C"))
	assert.True(t, g.HasNode("C"))
	assert.False(t, g.HasNode("X"))
	assert.Equal(t, []string{"A", "B", "C"}, core.Sorted(g.Nodes()))
	assert.Equal(t, 3, g.NumEdges())

	u := g.Unweighted()
	assert.Equal(t, core.Graph[string]{"A": {"B", "C"}, "B": {"C"}}, u)
}

func TestWeightedGraph_Validate(t *testing.T) {
	ok := core.WeightedGraph[int]{
		1: {{To: 2, Weight: 0}, {To: 3, Weight: math.Inf(1)}},
	}
	require.NoError(t, ok.Validate())

	neg := core.WeightedGraph[int]{1: {{To: 2, Weight: -0.5}}}
	err := neg.Validate()
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "1→2")

	nan := core.WeightedGraph[int]{1: {{To: 2, Weight: math.NaN()}}}
	require.ErrorIs(t, nan.Validate(), core.ErrInvalidWeight)
}
