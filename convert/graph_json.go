package convert

import (
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/result"
)

// ToPortable converts g into the JSON-compatible exchange shape, carrying
// meta as given (meta.Directed is overwritten to match g.Directed() so the
// two can never disagree).
func ToPortable(g *graph.Graph, meta Meta) PortableGraph {
	meta.Directed = g.Directed()

	nodes := make([]PortableNode, 0, g.NodeCount())
	for _, n := range g.GetAllNodes() {
		nodes = append(nodes, PortableNode{
			ID:        n.ID,
			Label:     n.Label,
			Type:      n.Type,
			Partition: n.Partition,
			Extra:     n.Attributes,
		})
	}

	edges := make([]PortableEdge, 0, g.EdgeCount())
	for _, e := range g.GetAllEdges() {
		w := e.Weight
		d := e.Directed
		edges = append(edges, PortableEdge{
			Source:   e.From,
			Target:   e.To,
			Weight:   &w,
			Type:     e.Type,
			Directed: &d,
			Extra:    e.Attributes,
		})
	}

	return PortableGraph{Meta: meta, Nodes: nodes, Edges: edges}
}

// FromPortable rebuilds a graph.Graph from a PortableGraph. Loops and
// multi-edges are both permitted on the rebuilt graph's options, since the
// portable shape carries no declared constraints of its own — round-tripping
// must not reject data the source graph legitimately had.
func FromPortable(p PortableGraph) (*graph.Graph, error) {
	g := graph.New(
		graph.WithDirected(p.Meta.Directed),
		graph.WithLoops(),
		graph.WithMultiEdges(),
		graph.WithMixedEdges(),
	)

	for _, n := range p.Nodes {
		if err := g.AddNode(graph.Node{
			ID:         n.ID,
			Label:      n.Label,
			Type:       n.Type,
			Partition:  n.Partition,
			Attributes: n.Extra,
		}); err != nil {
			return nil, result.New(result.InvalidInput, "failed to rebuild node %q: %v", n.ID, err)
		}
	}

	for _, e := range p.Edges {
		weight := 1.0
		if e.Weight != nil {
			weight = *e.Weight
		}
		var opts []graph.EdgeOption
		if e.Type != "" {
			opts = append(opts, graph.WithEdgeType(e.Type))
		}
		if e.Directed != nil {
			opts = append(opts, graph.WithEdgeDirected(*e.Directed))
		}
		if e.Extra != nil {
			opts = append(opts, graph.WithEdgeAttributes(e.Extra))
		}
		if _, err := g.AddEdge(e.Source, e.Target, weight, opts...); err != nil {
			return nil, result.New(result.InvalidInput, "failed to rebuild edge %s->%s: %v", e.Source, e.Target, err)
		}
	}

	return g, nil
}
