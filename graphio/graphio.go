// Package graphio decodes graph documents (YAML, and therefore JSON) into
// core graph values.
//
// A weighted document:
//
//	edges:
//	  A: [{to: B, weight: 1}, {to: C, weight: 4}]
//	  B: [{to: C, weight: 1}]
//	  C: []
//
// An unweighted document:
//
//	neighbors:
//	  A: [B, C]
//	  B: [D]
//
// Either section may be converted to either graph kind: neighbors become
// unit-weight edges, edges lose their weights.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algolab/core"
)

// Sentinel errors for document decoding.
var (
	// ErrUnknownFormat indicates a document with neither `edges` nor `neighbors`.
	ErrUnknownFormat = errors.New("graphio: document has no edges or neighbors section")

	// ErrAmbiguous indicates a document with both sections.
	ErrAmbiguous = errors.New("graphio: document has both edges and neighbors sections")
)

// Document is the on-disk shape of a graph.
type Document struct {
	// Name is an optional label used in logs.
	Name string `yaml:"name,omitempty"`

	// Edges holds a weighted adjacency map.
	Edges map[string][]core.Edge[string] `yaml:"edges,omitempty"`

	// Neighbors holds an unweighted adjacency map.
	Neighbors map[string][]string `yaml:"neighbors,omitempty"`
}

// Weighted reports whether the document carries edge weights.
func (d *Document) Weighted() bool {
	return d.Edges != nil
}

// WeightedGraph returns the document as a weighted graph. Unweighted
// documents get weight 1 on every edge. The result is validated.
func (d *Document) WeightedGraph() (core.WeightedGraph[string], error) {
	if d.Weighted() {
		g := core.WeightedGraph[string](d.Edges)
		if err := g.Validate(); err != nil {
			return nil, err
		}

		return g, nil
	}
	g := make(core.WeightedGraph[string], len(d.Neighbors))
	for id, nbrs := range d.Neighbors {
		edges := make([]core.Edge[string], len(nbrs))
		for i, nbr := range nbrs {
			edges[i] = core.Edge[string]{To: nbr, Weight: 1}
		}
		g[id] = edges
	}

	return g, nil
}

// Graph returns the document as an unweighted graph, dropping weights.
func (d *Document) Graph() core.Graph[string] {
	if d.Weighted() {
		return core.WeightedGraph[string](d.Edges).Unweighted()
	}

	return core.Graph[string](d.Neighbors)
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrUnknownFormat
		}
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	switch {
	case doc.Edges == nil && doc.Neighbors == nil:
		return nil, ErrUnknownFormat
	case doc.Edges != nil && doc.Neighbors != nil:
		return nil, ErrAmbiguous
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}

	return doc, nil
}
