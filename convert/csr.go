package convert

import (
	"github.com/mearman/graphbox/csr"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/result"
)

// ToCSRSnapshot is a thin re-export of csr.ToCSR, kept here so callers doing
// view conversion have one package to import for every Graph <-> {CSR,
// portable, documented} transform.
func ToCSRSnapshot(g *graph.Graph) (*csr.Snapshot, error) {
	return csr.ToCSR(g)
}

// FromCSRSnapshot rebuilds a graph.Graph from a Snapshot. This is lossy for
// node/edge attributes, labels, types, and partitions — a Snapshot never
// carried them — so the rebuilt graph only reconstructs topology and
// weights. Self-loops and multi-edges are permitted on the rebuilt graph
// since the Snapshot does not record which constraints produced it.
func FromCSRSnapshot(snap *csr.Snapshot) (*graph.Graph, error) {
	if snap == nil {
		return nil, result.New(result.InvalidInput, "snapshot is nil")
	}

	g := graph.New(
		graph.WithDirected(snap.Directed()),
		graph.WithLoops(),
		graph.WithMultiEdges(),
	)

	for _, id := range snap.NodeIDs {
		if err := g.AddNode(graph.Node{ID: id}); err != nil {
			return nil, err
		}
	}

	for i, fromID := range snap.NodeIDs {
		positions, weights, err := snap.Neighbors(fromID)
		if err != nil {
			return nil, err
		}
		for k, j := range positions {
			if !snap.Directed() && j < i {
				// Undirected non-loop edges were placed at both endpoints by
				// ToCSR; rebuild each occurrence once, from its lower
				// position, so parallel edges still round-trip by count.
				continue
			}
			if _, err := g.AddEdge(fromID, snap.NodeIDs[j], weights[k]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
