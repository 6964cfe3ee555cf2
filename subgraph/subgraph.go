// Package subgraph extracts induced subgraphs, multi-source bounded-radius
// ego-networks, reachability subgraphs, and attribute-filtered subgraphs from
// a graph.Graph. The ego-network's collective multi-source frontier expansion
// follows the same queue-of-indices BFS shape used by the
// gridgraph.ConnectedComponents / ExpandIsland, generalized from grid cells
// to arbitrary graph nodes.
package subgraph

import (
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/result"
)

// Induced returns the induced subgraph on nodeIDs: every node in the set,
// plus every edge whose both endpoints are in the set. Directedness and
// attributes are preserved verbatim.
func Induced(g *graph.Graph, nodeIDs []string) (*graph.Graph, error) {
	set := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		if !g.HasNode(id) {
			return nil, result.New(result.NodeNotFound, "node %q not found", id).WithNode(id)
		}
		set[id] = struct{}{}
	}

	out := buildSkeleton(g)
	for _, id := range nodeIDs {
		n, _ := g.GetNode(id)
		copyNodeInto(out, n)
	}
	for _, e := range g.GetAllEdges() {
		if _, okFrom := set[e.From]; !okFrom {
			continue
		}
		if _, okTo := set[e.To]; !okTo {
			continue
		}
		copyEdgeInto(out, e)
	}
	return out, nil
}

// Ego computes the multi-source bounded-radius ego-network: the induced
// subgraph on every node within radius r of any seed (BFS distance,
// directed graphs follow outgoing edges only). Seeds must be non-empty and
// all must exist; radius must be >= 0.
func Ego(g *graph.Graph, seeds []string, radius int, includeSeed bool) (*graph.Graph, error) {
	if len(seeds) == 0 {
		return nil, result.New(result.InvalidInput, "seed set must not be empty")
	}
	if radius < 0 {
		return nil, result.New(result.InvalidRadius, "radius must be non-negative, got %d", radius)
	}
	seedSet := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		if !g.HasNode(s) {
			return nil, result.New(result.NodeNotFound, "seed %q not found", s).WithNode(s)
		}
		seedSet[s] = struct{}{}
	}

	depth := make(map[string]int, len(seeds))
	queue := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if _, seen := depth[s]; !seen {
			depth[s] = 0
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		if d >= radius {
			continue
		}
		edges, err := g.GetOutgoingEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if e.From != u {
				v = e.From
			}
			if _, seen := depth[v]; seen {
				continue
			}
			depth[v] = d + 1
			queue = append(queue, v)
		}
	}

	var keep []string
	for id := range depth {
		if !includeSeed {
			if _, isSeed := seedSet[id]; isSeed {
				continue
			}
		}
		keep = append(keep, id)
	}

	return Induced(g, keep)
}

// Direction selects traversal direction for Reachable.
type Direction int

const (
	// Forward follows outgoing edges.
	Forward Direction = iota
	// Backward follows incoming edges (scans all edges for endpoint==source).
	Backward
)

// Reachable computes the induced subgraph on every node reachable from
// source in the chosen direction, optionally bounded by maxDepth (a nil
// maxDepth means unbounded).
func Reachable(g *graph.Graph, source string, dir Direction, maxDepth *int) (*graph.Graph, error) {
	if !g.HasNode(source) {
		return nil, result.New(result.NodeNotFound, "source %q not found", source).WithNode(source)
	}

	depth := map[string]int{source: 0}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		if maxDepth != nil && d >= *maxDepth {
			continue
		}

		var nextIDs []string
		if dir == Forward {
			edges, err := g.GetOutgoingEdges(u)
			if err != nil {
				return nil, err
			}
			for _, e := range edges {
				v := e.To
				if e.From != u {
					v = e.From
				}
				nextIDs = append(nextIDs, v)
			}
		} else {
			for _, e := range g.GetAllEdges() {
				if e.To == u {
					nextIDs = append(nextIDs, e.From)
				} else if !e.Directed && e.From == u {
					nextIDs = append(nextIDs, e.To)
				}
			}
		}

		for _, v := range nextIDs {
			if _, seen := depth[v]; seen {
				continue
			}
			depth[v] = d + 1
			queue = append(queue, v)
		}
	}

	keep := make([]string, 0, len(depth))
	for id := range depth {
		keep = append(keep, id)
	}
	return Induced(g, keep)
}

// FilterMode combines each predicate of a Filter with its allowed-set clause:
// NodeFn with AllowedNodeAttr for nodes, EdgeFn with AllowedEdgeType for
// edges. The node pass and the edge pass are always both applied.
type FilterMode int

const (
	// And requires both the predicate and the allowed-set clause to hold.
	And FilterMode = iota
	// Or requires either the predicate or a non-empty allowed-set clause to hold.
	Or
)

// Filter is an attribute-based two-pass subgraph extraction: retain nodes
// satisfying NodeFn; then retain edges satisfying EdgeFn (when set) and
// having both endpoints retained, combined with the allowed-type/attribute
// constraints under Mode.
type Filter struct {
	NodeFn          func(*graph.Node) bool
	EdgeFn          func(*graph.Edge) bool
	AllowedEdgeType map[string]struct{}
	AllowedNodeAttr map[string]interface{}
	Mode            FilterMode
}

// Apply runs the two-pass filter against g.
func (f Filter) Apply(g *graph.Graph) (*graph.Graph, error) {
	if f.NodeFn == nil && f.EdgeFn == nil && len(f.AllowedEdgeType) == 0 && len(f.AllowedNodeAttr) == 0 {
		return nil, result.New(result.InvalidFilter, "filter has no active clauses")
	}

	var keepNodes []string
	for _, n := range g.GetAllNodes() {
		if f.nodeSatisfies(n) {
			keepNodes = append(keepNodes, n.ID)
		}
	}

	out, err := Induced(g, keepNodes)
	if err != nil {
		return nil, err
	}

	for _, e := range out.GetAllEdges() {
		if !f.edgeSatisfies(e) {
			_ = out.RemoveEdge(e.ID)
		}
	}
	return out, nil
}

func (f Filter) nodeSatisfies(n *graph.Node) bool {
	nodeClause := true
	if f.NodeFn != nil {
		nodeClause = f.NodeFn(n)
	}
	attrClause := true
	for k, v := range f.AllowedNodeAttr {
		if n.Attributes[k] != v {
			attrClause = false
			break
		}
	}
	if f.Mode == Or {
		return nodeClause || (len(f.AllowedNodeAttr) > 0 && attrClause)
	}
	return nodeClause && attrClause
}

func (f Filter) edgeSatisfies(e *graph.Edge) bool {
	edgeClause := true
	if f.EdgeFn != nil {
		edgeClause = f.EdgeFn(e)
	}
	typeClause := true
	if len(f.AllowedEdgeType) > 0 {
		_, typeClause = f.AllowedEdgeType[e.Type]
	}
	if f.Mode == Or {
		return edgeClause || (len(f.AllowedEdgeType) > 0 && typeClause)
	}
	return edgeClause && typeClause
}

func buildSkeleton(g *graph.Graph) *graph.Graph {
	opts := []graph.Option{graph.WithDirected(g.Directed())}
	if g.AllowsMultiEdges() {
		opts = append(opts, graph.WithMultiEdges())
	}
	if g.AllowsLoops() {
		opts = append(opts, graph.WithLoops())
	}
	if g.AllowsMixedEdges() {
		opts = append(opts, graph.WithMixedEdges())
	}
	return graph.New(opts...)
}

func copyNodeInto(g *graph.Graph, n *graph.Node) {
	attrs := make(map[string]interface{}, len(n.Attributes))
	for k, v := range n.Attributes {
		attrs[k] = v
	}
	_ = g.AddNode(graph.Node{ID: n.ID, Label: n.Label, Type: n.Type, Partition: n.Partition, Attributes: attrs})
}

func copyEdgeInto(g *graph.Graph, e *graph.Edge) {
	attrs := make(map[string]interface{}, len(e.Attributes))
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	opts := []graph.EdgeOption{graph.WithEdgeType(e.Type), graph.WithEdgeAttributes(attrs)}
	if e.Directed != g.Directed() {
		opts = append(opts, graph.WithEdgeDirected(e.Directed))
	}
	_, _ = g.AddEdge(e.From, e.To, e.Weight, opts...)
}
