package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, a := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := execute(root, a)

	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const weighted = `
edges:
  A: [{to: B, weight: 1}, {to: C, weight: 4}]
  B: [{to: C, weight: 1}]
  C: []
  D: [{to: A, weight: 1}]
`

const friends = `
neighbors:
  you: [alice, bob, claire]
  bob: [anuj, peggy]
  alice: [peggy]
  claire: [thom, jonny]
`

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "algolab version")
}

func TestBFSCommand(t *testing.T) {
	g := writeTemp(t, "friends.yaml", friends)

	out, err := run(t, "bfs", "--graph", g, "--start", "you")
	require.NoError(t, err)
	assert.Equal(t, "you alice bob claire peggy anuj thom jonny\n", out)

	out, err = run(t, "bfs", "--graph", g, "--start", "you", "--until", "thom")
	require.NoError(t, err)
	assert.Contains(t, out, "found thom at depth 2: you -> claire -> thom")

	out, err = run(t, "bfs", "--graph", g, "--start", "you", "--until", "thom", "--max-depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "thom not reached")
}

func TestBFSCommand_JSON(t *testing.T) {
	g := writeTemp(t, "friends.yaml", friends)

	out, err := run(t, "bfs", "--json", "--graph", g, "--start", "bob")
	require.NoError(t, err)

	var got bfsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"bob", "anuj", "peggy"}, got.Order)
	assert.Equal(t, 1, got.Depth["peggy"])
}

func TestPathCommand(t *testing.T) {
	g := writeTemp(t, "roads.yaml", weighted)

	for _, s := range []string{"priority", "fifo"} {
		out, err := run(t, "path", "--graph", g, "--from", "A", "--to", "C", "--strategy", s)
		require.NoError(t, err)
		assert.Equal(t, "A -> B -> C (cost 2)\n", out, s)
	}

	out, err := run(t, "path", "--graph", g, "--from", "A", "--to", "D")
	require.NoError(t, err)
	assert.Equal(t, "D is unreachable from A\n", out)

	out, err = run(t, "path", "--graph", g, "--from", "A", "--to", "C", "--max-cost", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable")
}

func TestPathCommand_JSON(t *testing.T) {
	g := writeTemp(t, "roads.yaml", weighted)

	out, err := run(t, "--json", "path", "--graph", g, "--from", "A", "--to", "D")
	require.NoError(t, err)

	var got pathOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Reachable)
	assert.Nil(t, got.Cost)
	assert.Equal(t, []string{"D"}, got.Path)
}

func TestPathCommand_Errors(t *testing.T) {
	g := writeTemp(t, "roads.yaml", weighted)

	_, err := run(t, "path", "--graph", g, "--from", "A", "--to", "C", "--strategy", "astar")
	assert.Error(t, err)

	bad := writeTemp(t, "bad.yaml", "edges: {A: [{to: B, weight: -1}]}\n")
	_, err = run(t, "path", "--graph", bad, "--from", "A", "--to", "B")
	assert.ErrorContains(t, err, "negative edge weight")

	_, err = run(t, "path", "--graph", g, "--from", "A")
	assert.ErrorContains(t, err, "to")
}

func TestConfigAndMetrics(t *testing.T) {
	g := writeTemp(t, "roads.yaml", weighted)
	prom := filepath.Join(t.TempDir(), "algolab.prom")
	cfg := writeTemp(t, "algolab.yaml", "strategy: fifo\nlog_level: error\nmetrics_out: "+prom+"\n")

	out, err := run(t, "--config", cfg, "--json", "path", "--graph", g, "--from", "A", "--to", "C")
	require.NoError(t, err)

	var got pathOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fifo", got.Strategy)
	assert.Equal(t, 3, got.Relaxations)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "algolab_dijkstra_relaxations_total 3")
	assert.Contains(t, string(data), `algolab_queries_total{kind="path",outcome="ok"} 1`)

	_, err = run(t, "--log-level", "chatty", "version")
	assert.Error(t, err)
}

func TestSortCommand(t *testing.T) {
	out, err := run(t, "sort", "5", "3", "6", "2", "10")
	require.NoError(t, err)
	assert.Equal(t, "2 3 5 6 10\n", out)

	out, err = run(t, "sort", "--algo", "selection", "--desc", "5", "3.5", "6")
	require.NoError(t, err)
	assert.Equal(t, "6 5 3.5\n", out)

	out, err = run(t, "sort", "pear", "apple", "fig")
	require.NoError(t, err)
	assert.Equal(t, "apple fig pear\n", out)

	_, err = run(t, "sort", "--algo", "bogo", "1", "2")
	assert.Error(t, err)
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--target", "7", "1", "3", "5", "7", "9")
	require.NoError(t, err)
	assert.Equal(t, "7 is at index 3\n", out)

	out, err = run(t, "search", "--target", "4", "1", "3", "5")
	require.NoError(t, err)
	assert.Equal(t, "4 is not in the list\n", out)

	out, err = run(t, "search", "--target", "b", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "b is at index 1\n", out)

	out, err = run(t, "search", "--target", "x", "2", "10")
	require.NoError(t, err)
	assert.Equal(t, "x is not in the list\n", out)

	_, err = run(t, "search", "--target", "3", "5", "3")
	assert.ErrorContains(t, err, "not sorted")
}

func TestMetrics_WrittenOnFailure(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "algolab.prom")

	_, err := run(t, "--metrics-out", prom, "search", "--target", "3", "5", "3")
	require.ErrorContains(t, err, "not sorted")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `algolab_queries_total{kind="search",outcome="error"} 1`)
}
