package graph

import "sort"

// AdjacencyList returns a snapshot mapping each node ID to the IDs of the
// edges in its adjacency (outgoing edges for a directed edge, both endpoints
// for an undirected one), each slice sorted by edge ID ascending for
// deterministic enumeration.
// Slices are freshly allocated; callers may retain and mutate them freely.
//
// Complexity: O(V + E) to assemble, O(sum_deg log deg) to sort per-node slices.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []string
		for _, edgeSet := range toMap {
			for eid := range edgeSet {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		out[from] = buf
	}
	return out
}

// ensureAdjacency guarantees nested maps exist for (from, to). Must be
// called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e.ID from from->to, and from to->from too when e is
// undirected and not a self-loop. Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested maps after removals. Must be called
// under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
