package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/convert"
	"github.com/mearman/graphbox/graph"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	assert.NoError(t, g.AddNode(graph.Node{ID: "a", Label: "Alpha", Type: "city"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b", Label: "Beta", Type: "city"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "c", Label: "Gamma", Type: "city"}))
	_, err := g.AddEdge("a", "b", 2.5)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1.5)
	assert.NoError(t, err)
	return g
}

func TestToPortable_RoundTripsStructure(t *testing.T) {
	g := sampleGraph(t)
	portable := convert.ToPortable(g, convert.Meta{Name: "sample"})

	assert.Len(t, portable.Nodes, 3)
	assert.Len(t, portable.Edges, 2)
	assert.False(t, portable.Meta.Directed)

	rebuilt, err := convert.FromPortable(portable)
	assert.NoError(t, err)
	assert.Equal(t, g.NodeCount(), rebuilt.NodeCount())
	assert.Equal(t, g.EdgeCount(), rebuilt.EdgeCount())
	assert.True(t, rebuilt.HasEdge("a", "b"))
	assert.True(t, rebuilt.HasEdge("b", "c"))

	n, ok := rebuilt.GetNode("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", n.Label)
	assert.Equal(t, "city", n.Type)
}

func TestToPortable_DirectedMetaMirrorsGraph(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b"}))
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)

	portable := convert.ToPortable(g, convert.Meta{Name: "sample", Directed: false})
	assert.True(t, portable.Meta.Directed)
}

func TestCSRRoundTrip_PreservesTopologyAndWeights(t *testing.T) {
	g := sampleGraph(t)
	snap, err := convert.ToCSRSnapshot(g)
	assert.NoError(t, err)

	rebuilt, err := convert.FromCSRSnapshot(snap)
	assert.NoError(t, err)
	assert.Equal(t, g.NodeCount(), rebuilt.NodeCount())
	assert.Equal(t, g.EdgeCount(), rebuilt.EdgeCount())
	assert.True(t, rebuilt.HasEdge("a", "b"))

	pos, ok := snap.PositionOf("a")
	assert.True(t, ok)
	neighborPositions, weights, err := snap.Neighbors("a")
	assert.NoError(t, err)
	assert.NotEmpty(t, neighborPositions)
	_ = pos
	assert.Equal(t, []float64{2.5}, weights)

	for _, e := range rebuilt.GetAllEdges() {
		if e.From == "a" && e.To == "b" {
			assert.Equal(t, 2.5, e.Weight)
		}
		if e.From == "b" && e.To == "c" {
			assert.Equal(t, 1.5, e.Weight)
		}
	}
}

func TestCSRRoundTrip_RejectsNilSnapshot(t *testing.T) {
	_, err := convert.FromCSRSnapshot(nil)
	assert.Error(t, err)
}

func TestDocumentedGraph_RoundTrips(t *testing.T) {
	g := sampleGraph(t)
	dg := convert.DocumentedGraph{Graph: g, Meta: convert.Meta{Name: "docgraph", Description: "a test fixture"}}

	portable := convert.ToPortableDocumented(dg)
	rebuilt, err := convert.FromPortableDocumented(portable)
	assert.NoError(t, err)
	assert.Equal(t, "docgraph", rebuilt.Meta.Name)
	assert.Equal(t, g.NodeCount(), rebuilt.Graph.NodeCount())
}

func TestCSRRoundTrip_SelfLoopPreserved(t *testing.T) {
	g := graph.New(graph.WithLoops())
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	_, err := g.AddEdge("a", "a", 1)
	assert.NoError(t, err)

	snap, err := convert.ToCSRSnapshot(g)
	assert.NoError(t, err)
	rebuilt, err := convert.FromCSRSnapshot(snap)
	assert.NoError(t, err)
	assert.True(t, rebuilt.HasEdge("a", "a"))
	assert.Equal(t, 1, rebuilt.EdgeCount())
}
