package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/csr"
	"github.com/mearman/graphbox/graph"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "c"}))
	_, err := g.AddEdge("a", "b", 1.0)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1.0)
	assert.NoError(t, err)
	_, err = g.AddEdge("a", "c", 1.0)
	assert.NoError(t, err)
	return g
}

func TestToCSR_UndirectedDegreeSum(t *testing.T) {
	g := buildTriangle(t)
	snap, err := csr.ToCSR(g)
	assert.NoError(t, err)

	assert.Equal(t, 0, snap.Offsets[0])
	assert.Equal(t, len(snap.Neighbours), snap.Offsets[snap.NodeCount()])

	degreeSum := 0
	for i := 0; i < snap.NodeCount(); i++ {
		degreeSum += snap.Offsets[i+1] - snap.Offsets[i]
	}
	assert.Equal(t, 2*g.EdgeCount(), degreeSum)
}

func TestToCSR_DirectedOutDegreeEqualsEdgeCount(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "c"}))
	_, err := g.AddEdge("a", "b", 1.0)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1.0)
	assert.NoError(t, err)

	snap, err := csr.ToCSR(g)
	assert.NoError(t, err)

	degreeSum := snap.Offsets[snap.NodeCount()]
	assert.Equal(t, g.EdgeCount(), degreeSum)
}

func TestToCSR_SelfLoopStoredOnce(t *testing.T) {
	g := graph.New(graph.WithLoops())
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	_, err := g.AddEdge("a", "a", 1.0)
	assert.NoError(t, err)

	snap, err := csr.ToCSR(g)
	assert.NoError(t, err)
	assert.Equal(t, 1, snap.Offsets[1]-snap.Offsets[0])
}

func TestToCSR_NeighborsLookup(t *testing.T) {
	g := buildTriangle(t)
	snap, err := csr.ToCSR(g)
	assert.NoError(t, err)

	posA, ok := snap.PositionOf("a")
	assert.True(t, ok)
	positions, weights, err := snap.Neighbors("a")
	assert.NoError(t, err)
	assert.Len(t, positions, 2)
	assert.Len(t, weights, 2)
	_ = posA
}

func TestToCSR_RejectsNilGraph(t *testing.T) {
	_, err := csr.ToCSR(nil)
	assert.Error(t, err)
}
