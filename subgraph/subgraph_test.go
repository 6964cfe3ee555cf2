package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/subgraph"
)

func buildChain(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		assert.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("c", "d", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("d", "e", 1)
	assert.NoError(t, err)
	return g
}

func TestInduced_KeepsOnlyEdgesWithinSet(t *testing.T) {
	g := buildChain(t)
	sub, err := subgraph.Induced(g, []string{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, 2, sub.EdgeCount())
}

func TestInduced_RejectsUnknownNode(t *testing.T) {
	g := buildChain(t)
	_, err := subgraph.Induced(g, []string{"a", "zzz"})
	assert.Error(t, err)
}

func TestEgo_RespectsRadius(t *testing.T) {
	g := buildChain(t)
	sub, err := subgraph.Ego(g, []string{"a"}, 2, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, sub.NodeCount())
	assert.True(t, sub.HasNode("a"))
	assert.True(t, sub.HasNode("c"))
	assert.False(t, sub.HasNode("d"))
}

func TestEgo_ExcludesSeedWhenRequested(t *testing.T) {
	g := buildChain(t)
	sub, err := subgraph.Ego(g, []string{"a"}, 1, false)
	assert.NoError(t, err)
	assert.False(t, sub.HasNode("a"))
	assert.True(t, sub.HasNode("b"))
}

func TestEgo_RejectsEmptySeeds(t *testing.T) {
	g := buildChain(t)
	_, err := subgraph.Ego(g, nil, 1, true)
	assert.Error(t, err)
}

func TestEgo_RejectsNegativeRadius(t *testing.T) {
	g := buildChain(t)
	_, err := subgraph.Ego(g, []string{"a"}, -1, true)
	assert.Error(t, err)
}

func TestReachable_ForwardDirected(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	for _, id := range []string{"a", "b", "c"} {
		assert.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	assert.NoError(t, err)

	sub, err := subgraph.Reachable(g, "a", subgraph.Forward, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, sub.NodeCount())

	subFromC, err := subgraph.Reachable(g, "c", subgraph.Forward, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, subFromC.NodeCount())
}

func TestFilter_NodeAndEdgeClauses(t *testing.T) {
	g := buildChain(t)
	edges := g.GetAllEdges()
	assert.NotEmpty(t, edges)

	f := subgraph.Filter{
		NodeFn: func(n *graph.Node) bool { return n.ID != "e" },
		EdgeFn: func(e *graph.Edge) bool { return e.From != "a" },
		Mode:   subgraph.And,
	}
	sub, err := f.Apply(g)
	assert.NoError(t, err)
	assert.False(t, sub.HasNode("e"))
	assert.Equal(t, 4, sub.NodeCount())
	assert.False(t, sub.HasEdge("a", "b"))
	assert.Equal(t, 2, sub.EdgeCount())
}

func TestFilter_RejectsEmptyClauses(t *testing.T) {
	g := buildChain(t)
	_, err := subgraph.Filter{}.Apply(g)
	assert.Error(t, err)
}
