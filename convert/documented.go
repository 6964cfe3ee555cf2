package convert

import "github.com/mearman/graphbox/graph"

// DocumentedGraph pairs a graph with free-form provenance metadata: where it
// came from, why it was built, anything worth keeping alongside the
// structure but not part of it. Unlike gspec.SpecifiedGraph (which pairs a
// graph with the generative contract it must satisfy), DocumentedGraph
// carries human-facing narrative only.
type DocumentedGraph struct {
	Graph *graph.Graph
	Meta  Meta
}

// ToPortableDocumented converts a DocumentedGraph to the portable exchange
// shape, reusing its Meta verbatim (aside from Directed, which always
// mirrors the graph).
func ToPortableDocumented(dg DocumentedGraph) PortableGraph {
	return ToPortable(dg.Graph, dg.Meta)
}

// FromPortableDocumented rebuilds a DocumentedGraph from the portable
// exchange shape.
func FromPortableDocumented(p PortableGraph) (DocumentedGraph, error) {
	g, err := FromPortable(p)
	if err != nil {
		return DocumentedGraph{}, err
	}
	return DocumentedGraph{Graph: g, Meta: p.Meta}, nil
}
