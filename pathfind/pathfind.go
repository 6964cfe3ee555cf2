// Package pathfind implements Dijkstra and BFS shortest-path search over a
// graph.Graph, plus the find_shortest_path dispatcher that picks between
// them. The structure (validate → prescan edge weights → init → main loop →
// relax) follows the classic textbook shape; the priority queue is pqueue's
// true indexed min-heap rather than a lazy-decrease-key heap, so
// DecreaseKey replaces push-a-duplicate-and-skip-stale-pops.
package pathfind

import (
	"math"

	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/pqueue"
	"github.com/mearman/graphbox/result"
)

// WeightFunc computes the traversal weight of an edge. When nil is passed to
// Dijkstra or FindShortestPath, DefaultWeight is used.
type WeightFunc func(e *graph.Edge) float64

// DefaultWeight returns e.Weight, exactly as stored (GraphBox edges always
// carry an explicit float64 weight; "unweighted" specs set it to 1 at
// construction time rather than leaving a sentinel absent value).
func DefaultWeight(e *graph.Edge) float64 { return e.Weight }

// Path is the result of a successful pathfinding query.
type Path struct {
	Nodes       []string
	Edges       []string
	TotalWeight float64
}

// Dijkstra computes the shortest path from start to end in g using
// non-negative edge weights. weightFn may be nil (DefaultWeight is used).
//
// Validates: both endpoints exist (NodeNotFound); no edge's weight (via
// weightFn) is negative (NegativeWeight) or NaN/Inf (InvalidWeight). After
// that weight scan, the trivial case start == end short-circuits to a
// single-node, zero-weight path. If end is unreachable, returns (nil, nil).
func Dijkstra(g *graph.Graph, start, end string, weightFn WeightFunc) (*Path, error) {
	if weightFn == nil {
		weightFn = DefaultWeight
	}
	if !g.HasNode(start) {
		return nil, result.New(result.NodeNotFound, "start node %q not found", start).WithNode(start)
	}
	if !g.HasNode(end) {
		return nil, result.New(result.NodeNotFound, "end node %q not found", end).WithNode(end)
	}

	for _, e := range g.GetAllEdges() {
		w := weightFn(e)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, result.New(result.InvalidWeight, "edge %s has non-finite weight", e.ID).WithEdge(e.ID).WithWeight(w)
		}
		if w < 0 {
			return nil, result.New(result.NegativeWeight, "edge %s has negative weight %g", e.ID, w).WithEdge(e.ID).WithWeight(w)
		}
	}

	if start == end {
		return &Path{Nodes: []string{start}, Edges: nil, TotalWeight: 0}, nil
	}

	dist := make(map[string]float64)
	prevNode := make(map[string]string)
	prevEdge := make(map[string]string)
	visited := make(map[string]bool)

	for _, id := range g.NodeIDs() {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	pq := pqueue.New()
	_ = pq.Insert(start, 0)

	for !pq.IsEmpty() {
		u, d, _ := pq.ExtractMin()
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == end {
			break
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
			if visited[v] {
				continue
			}
			w := weightFn(e)
			newDist := d + w
			if newDist < dist[v] {
				dist[v] = newDist
				prevNode[v] = u
				prevEdge[v] = e.ID
				if pq.Contains(v) {
					_ = pq.DecreaseKey(v, newDist)
				} else {
					_ = pq.Insert(v, newDist)
				}
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, nil
	}

	return reconstruct(start, end, prevNode, prevEdge, dist[end]), nil
}

// reconstruct walks predecessor pointers backward from end to start.
func reconstruct(start, end string, prevNode, prevEdge map[string]string, totalWeight float64) *Path {
	var nodes []string
	var edges []string

	cur := end
	for cur != start {
		nodes = append(nodes, cur)
		edges = append(edges, prevEdge[cur])
		cur = prevNode[cur]
	}
	nodes = append(nodes, start)

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &Path{Nodes: nodes, Edges: edges, TotalWeight: totalWeight}
}

// BFS computes the minimum-edge-count path from start to end, ignoring
// weights entirely. Returns (nil, nil) if end is unreachable.
func BFS(g *graph.Graph, start, end string) (*Path, error) {
	if !g.HasNode(start) {
		return nil, result.New(result.NodeNotFound, "start node %q not found", start).WithNode(start)
	}
	if !g.HasNode(end) {
		return nil, result.New(result.NodeNotFound, "end node %q not found", end).WithNode(end)
	}
	if start == end {
		return &Path{Nodes: []string{start}, Edges: nil, TotalWeight: 0}, nil
	}

	visited := map[string]bool{start: true}
	prevNode := make(map[string]string)
	prevEdge := make(map[string]string)
	queue := []string{start}

	found := false
	for len(queue) > 0 && !found {
		u := queue[0]
		queue = queue[1:]

		edges, err := g.GetOutgoingEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if e.From != u {
				v = e.From
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			prevNode[v] = u
			prevEdge[v] = e.ID
			if v == end {
				found = true
				break
			}
			queue = append(queue, v)
		}
	}

	if !visited[end] {
		return nil, nil
	}

	path := reconstruct(start, end, prevNode, prevEdge, 0)
	path.TotalWeight = float64(len(path.Edges))
	return path, nil
}

// FindShortestPath dispatches to BFS when every edge's weight (as seen
// through weightFn, or DefaultWeight when nil) is 1, and to Dijkstra
// otherwise.
func FindShortestPath(g *graph.Graph, start, end string, weightFn WeightFunc) (*Path, error) {
	if weightFn == nil {
		weightFn = DefaultWeight
	}
	allUnweighted := true
	for _, e := range g.GetAllEdges() {
		if weightFn(e) != 1 {
			allUnweighted = false
			break
		}
	}
	if allUnweighted {
		return BFS(g, start, end)
	}
	return Dijkstra(g, start, end, weightFn)
}
