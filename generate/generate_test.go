package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/generate"
	"github.com/mearman/graphbox/gspec"
)

func mustSpec(t *testing.T, o gspec.Overrides) gspec.Spec {
	t.Helper()
	s, err := gspec.MakeGraphSpec(o)
	assert.NoError(t, err)
	return s
}

func TestGenerateGraph_EmptyNodeCountProducesEmptyGraph(t *testing.T) {
	s := mustSpec(t, gspec.Overrides{})
	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 0, Seed: 1})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Graph.NodeCount())
}

func TestGenerateGraph_Deterministic_SameSeedsProduceSameEdgeCount(t *testing.T) {
	sparse := gspec.Sparse
	s := mustSpec(t, gspec.Overrides{Density: &sparse})

	r1, err := generate.GenerateGraph(s, generate.Config{NodeCount: 10, Seed: 42})
	assert.NoError(t, err)
	r2, err := generate.GenerateGraph(s, generate.Config{NodeCount: 10, Seed: 42})
	assert.NoError(t, err)

	assert.Equal(t, r1.Graph.EdgeCount(), r2.Graph.EdgeCount())
	for _, e := range r1.Graph.GetAllEdges() {
		assert.True(t, r2.Graph.HasEdge(e.From, e.To))
	}
}

func TestGenerateGraph_DifferentSeedsCanDiffer(t *testing.T) {
	unconstrained := gspec.DensityUnconstrained
	s := mustSpec(t, gspec.Overrides{Density: &unconstrained})

	r1, err := generate.GenerateGraph(s, generate.Config{NodeCount: 20, Seed: 1})
	assert.NoError(t, err)
	r2, err := generate.GenerateGraph(s, generate.Config{NodeCount: 20, Seed: 2})
	assert.NoError(t, err)

	differs := r1.Graph.EdgeCount() != r2.Graph.EdgeCount()
	if !differs {
		for _, e := range r1.Graph.GetAllEdges() {
			if !r2.Graph.HasEdge(e.From, e.To) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "expected differing seeds to produce differing graphs")
}

func TestGenerateGraph_CompleteGraphHasAllPairs(t *testing.T) {
	complete := gspec.Complete
	s := mustSpec(t, gspec.Overrides{Completeness: &complete})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 5, Seed: 7})
	assert.NoError(t, err)
	assert.Equal(t, 10, res.Graph.EdgeCount())
}

func TestGenerateGraph_TreeHasExactlyNMinusOneEdges(t *testing.T) {
	acyclic := gspec.Acyclic
	connected := gspec.Connected
	undirected := gspec.Undirected
	s := mustSpec(t, gspec.Overrides{Cycles: &acyclic, Connectivity: &connected, Directionality: &undirected})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 10, Seed: 42})
	assert.NoError(t, err)
	assert.Equal(t, 9, res.Graph.EdgeCount())
}

func TestGenerateGraph_DAGHasNoCycle(t *testing.T) {
	directed := gspec.Directed
	acyclic := gspec.Acyclic
	moderate := gspec.Moderate
	incomplete := gspec.Incomplete
	s := mustSpec(t, gspec.Overrides{Directionality: &directed, Cycles: &acyclic, Density: &moderate, Completeness: &incomplete})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 10, Seed: 42})
	assert.NoError(t, err)
	assert.True(t, res.Graph.Directed())
	assert.True(t, res.Graph.EdgeCount() >= 0)

	// buildDAG only adds forward edges along a shuffled node order, so Kahn's
	// algorithm must be able to remove every node.
	indegree := make(map[string]int)
	for _, n := range res.Graph.GetAllNodes() {
		indegree[n.ID] = 0
	}
	for _, e := range res.Graph.GetAllEdges() {
		indegree[e.To]++
	}
	var queue []string
	for _, n := range res.Graph.GetAllNodes() {
		if indegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	removed := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		removed++
		out, err := res.Graph.GetOutgoingEdges(u)
		assert.NoError(t, err)
		for _, e := range out {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}
	assert.Equal(t, res.Graph.NodeCount(), removed)
}

func TestGenerateGraph_StarHasNMinusOneEdgesFromHub(t *testing.T) {
	s := mustSpec(t, gspec.Overrides{Advanced: &gspec.Advanced{Star: true}})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 6, Seed: 1})
	assert.NoError(t, err)
	assert.Equal(t, 5, res.Graph.EdgeCount())
}

func TestGenerateGraph_GridRequiresMatchingNodeCount(t *testing.T) {
	s := mustSpec(t, gspec.Overrides{Advanced: &gspec.Advanced{Grid: &struct{ Rows, Cols int }{Rows: 2, Cols: 3}}})

	_, err := generate.GenerateGraph(s, generate.Config{NodeCount: 5, Seed: 1})
	assert.Error(t, err)

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 6, Seed: 1})
	assert.NoError(t, err)
	assert.Equal(t, 7, res.Graph.EdgeCount())
}

func TestGenerateGraph_CompleteBipartiteEdgeCount(t *testing.T) {
	s := mustSpec(t, gspec.Overrides{Advanced: &gspec.Advanced{CompleteBipartite: &struct{ M, N int }{M: 2, N: 3}}})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 5, Seed: 1})
	assert.NoError(t, err)
	assert.Equal(t, 6, res.Graph.EdgeCount())
}

func TestGenerateGraph_TournamentHasExactlyOneEdgePerPair(t *testing.T) {
	directed := gspec.Directed
	s := mustSpec(t, gspec.Overrides{Directionality: &directed, Advanced: &gspec.Advanced{Tournament: true}})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 5, Seed: 3})
	assert.NoError(t, err)
	assert.Equal(t, 10, res.Graph.EdgeCount())
}

func TestGenerateGraph_WeightedNumericDrawsWithinRange(t *testing.T) {
	weighted := gspec.WeightedNumeric
	s := mustSpec(t, gspec.Overrides{Weighting: &weighted, WeightRange: &gspec.WeightRange{Min: 2, Max: 5}})

	res, err := generate.GenerateGraph(s, generate.Config{
		NodeCount: 8,
		Seed:      9,
	})
	assert.NoError(t, err)
	for _, e := range res.Graph.GetAllEdges() {
		assert.True(t, e.Weight >= 2 && e.Weight <= 5)
	}
}

func TestGenerateGraph_HeterogeneousSchemaAssignsTypes(t *testing.T) {
	heterogeneous := gspec.Heterogeneous
	s := mustSpec(t, gspec.Overrides{Schema: &heterogeneous})

	res, err := generate.GenerateGraph(s, generate.Config{
		NodeCount: 10,
		Seed:      5,
		NodeTypes: []generate.NodeTypeProportion{{Type: "a", Proportion: 0.5}, {Type: "b", Proportion: 0.5}},
	})
	assert.NoError(t, err)
	for _, n := range res.Graph.GetAllNodes() {
		assert.Contains(t, []string{"a", "b"}, n.Type)
	}
}

func TestGenerateGraph_HeterogeneousSchemaRequiresNodeTypes(t *testing.T) {
	heterogeneous := gspec.Heterogeneous
	s := mustSpec(t, gspec.Overrides{Schema: &heterogeneous})

	_, err := generate.GenerateGraph(s, generate.Config{NodeCount: 4, Seed: 1})
	assert.Error(t, err)
}

func TestGenerateGraph_ConnectedGeneralProducesConnectedGraph(t *testing.T) {
	connected := gspec.Connected
	moderate := gspec.Moderate
	s := mustSpec(t, gspec.Overrides{Connectivity: &connected, Density: &moderate})

	res, err := generate.GenerateGraph(s, generate.Config{NodeCount: 12, Seed: 11})
	assert.NoError(t, err)
	assert.True(t, res.Graph.EdgeCount() >= res.Graph.NodeCount()-1)
}
