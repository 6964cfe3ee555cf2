package graph

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and nodes, but
// no edges. nextEdgeID carries over so future AddEdge calls on the clone
// continue the same textual sequence and never collide with the source.
//
// Complexity: O(V) to copy nodes and bootstrap adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []Option{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}
	clone := New(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, n := range g.nodes {
		attrs := make(map[string]interface{}, len(n.Attributes))
		for k, v := range n.Attributes {
			attrs[k] = v
		}
		clone.nodes[id] = &Node{ID: n.ID, Label: n.Label, Type: n.Type, Partition: n.Partition, Attributes: attrs}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges, and
// adjacency. Attribute maps are copied one level deep (values are not
// themselves cloned).
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		attrs := make(map[string]interface{}, len(e.Attributes))
		for k, v := range e.Attributes {
			attrs[k] = v
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Type: e.Type, Weight: e.Weight, Directed: e.Directed, Attributes: attrs}
		clone.edges[eid] = ne

		if clone.adjacencyList[e.From][e.To] == nil {
			clone.adjacencyList[e.From][e.To] = make(map[string]struct{})
		}
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}

		if !e.Directed && e.From != e.To {
			if clone.adjacencyList[e.To][e.From] == nil {
				clone.adjacencyList[e.To][e.From] = make(map[string]struct{})
			}
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags. Node/edge catalogs and adjacency are reinitialized; nextEdgeID
// resets to 0.
//
// Concurrency: acquires both write locks; not safe to call concurrently with readers.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muEdgeAdj.Lock()
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muNode.Unlock()
}
