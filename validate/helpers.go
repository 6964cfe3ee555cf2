package validate

import (
	"sort"

	"github.com/mearman/graphbox/graph"
)

// undirectedAdjacency flattens every edge (regardless of its own directed
// flag) into a symmetric neighbor map, the view connectivity/coloring/
// component validators need: "connected" and "bipartite" are defined over
// the underlying (weak) structure, not per-edge direction.
func undirectedAdjacency(g *graph.Graph) map[string]map[string]bool {
	adj := make(map[string]map[string]bool)
	for _, n := range g.GetAllNodes() {
		adj[n.ID] = make(map[string]bool)
	}
	for _, e := range g.GetAllEdges() {
		adj[e.From][e.To] = true
		adj[e.To][e.From] = true
	}
	return adj
}

// components returns the weakly-connected components of g, as sorted slices
// of node IDs, in deterministic order (by each component's smallest ID).
func components(g *graph.Graph) [][]string {
	adj := undirectedAdjacency(g)
	visited := make(map[string]bool)
	var comps [][]string

	for _, id := range g.NodeIDs() {
		if visited[id] {
			continue
		}
		var comp []string
		queue := []string{id}
		visited[id] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			neighbors := make([]string, 0, len(adj[u]))
			for v := range adj[u] {
				neighbors = append(neighbors, v)
			}
			sort.Strings(neighbors)
			for _, v := range neighbors {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}

// twoColor attempts a BFS two-coloring of g's underlying structure. ok is
// false if any edge connects two same-colored vertices (not bipartite).
func twoColor(g *graph.Graph) (colors map[string]int, okBipartite bool) {
	adj := undirectedAdjacency(g)
	colors = make(map[string]int)
	okBipartite = true

	for _, id := range g.NodeIDs() {
		if _, seen := colors[id]; seen {
			continue
		}
		colors[id] = 0
		queue := []string{id}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			neighbors := make([]string, 0, len(adj[u]))
			for v := range adj[u] {
				neighbors = append(neighbors, v)
			}
			sort.Strings(neighbors)
			for _, v := range neighbors {
				if v == u {
					okBipartite = false
					continue
				}
				if c, seen := colors[v]; seen {
					if c == colors[u] {
						okBipartite = false
					}
					continue
				}
				colors[v] = 1 - colors[u]
				queue = append(queue, v)
			}
		}
	}
	return colors, okBipartite
}

// kahnTopologicalOrder returns a topological order of g's directed edges, or
// ok=false if a cycle makes one impossible.
func kahnTopologicalOrder(g *graph.Graph) (order []string, okAcyclic bool) {
	inDegree := make(map[string]int)
	ids := g.NodeIDs()
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, e := range g.GetAllEdges() {
		inDegree[e.To]++
	}

	var queue []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	outAdj := make(map[string][]string)
	for _, e := range g.GetAllEdges() {
		outAdj[e.From] = append(outAdj[e.From], e.To)
	}
	for k := range outAdj {
		sort.Strings(outAdj[k])
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		var freed []string
		for _, v := range outAdj[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				freed = append(freed, v)
			}
		}
		sort.Strings(freed)
		queue = append(queue, freed...)
		sort.Strings(queue)
	}

	return order, len(order) == len(ids)
}

// undirectedDegree returns each vertex's degree counting both endpoints of
// every incident edge once, with a self-loop contributing 2 (the standard
// undirected-degree convention).
func undirectedDegree(g *graph.Graph) map[string]int {
	deg := make(map[string]int)
	for _, n := range g.GetAllNodes() {
		deg[n.ID] = 0
	}
	for _, e := range g.GetAllEdges() {
		if e.From == e.To {
			deg[e.From] += 2
			continue
		}
		deg[e.From]++
		deg[e.To]++
	}
	return deg
}

// directedDegrees returns each vertex's out-degree and in-degree.
func directedDegrees(g *graph.Graph) (out, in map[string]int) {
	out = make(map[string]int)
	in = make(map[string]int)
	for _, n := range g.GetAllNodes() {
		out[n.ID] = 0
		in[n.ID] = 0
	}
	for _, e := range g.GetAllEdges() {
		out[e.From]++
		in[e.To]++
	}
	return out, in
}

// unorderedPairKey canonicalizes an endpoint pair for multiplicity checks.
func unorderedPairKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}
