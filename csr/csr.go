// Package csr implements a Compressed Sparse Row projection of a graph.Graph:
// three packed arrays (offsets, neighbours, weights) for read-dominated
// algorithms that do not want map-indirection adjacency lookups.
//
// A Snapshot is a value derived from a graph at one moment. It does not
// observe subsequent mutations — callers who need a fresh view rebuild one,
// exactly as an adjacency-matrix snapshot treats itself as a point-in-time
// projection of a core.Graph.
//
// Offsets/Neighbours are plain []int, so |V| or |E| beyond platform int
// range would overflow silently rather than raise a range error; not
// checked here since Go's int is 64-bit on every supported platform and no
// realistic in-memory graph approaches that bound.
package csr

import (
	"sort"

	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/result"
)

// Snapshot is a read-only packed projection of a graph.
type Snapshot struct {
	// NodeIDs maps position -> node ID.
	NodeIDs []string
	// index maps node ID -> position.
	index map[string]int
	// Offsets has length len(NodeIDs)+1; Offsets[i]..Offsets[i+1] bounds
	// node i's slice of Neighbours/Weights.
	Offsets []int
	// Neighbours holds packed neighbour positions.
	Neighbours []int
	// Weights is parallel to Neighbours.
	Weights []float64

	directed bool
	source   *graph.Graph
}

// Directed reports the directedness of the source graph at snapshot time.
func (s *Snapshot) Directed() bool { return s.directed }

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int { return len(s.NodeIDs) }

// PositionOf returns the packed position of a node ID, or ok=false if absent.
func (s *Snapshot) PositionOf(id string) (int, bool) {
	p, ok := s.index[id]
	return p, ok
}

// Neighbors returns the neighbour positions and weights for node id.
func (s *Snapshot) Neighbors(id string) (positions []int, weights []float64, err error) {
	pos, ok := s.index[id]
	if !ok {
		return nil, nil, result.New(result.NodeNotFound, "node %q not present in snapshot", id).WithNode(id)
	}
	start, end := s.Offsets[pos], s.Offsets[pos+1]
	return s.Neighbours[start:end], s.Weights[start:end], nil
}

// ToCSR builds a Snapshot from g. Follows the five-step construction:
// (1) enumerate nodes to assign stable positions (sorted by ID for
// determinism); (2) degree-count pass (undirected non-loop edges count
// toward both endpoints); (3) prefix-sum into Offsets; (4) placement pass
// using per-node cursors; (5) undirected non-loop edges also emit the
// reverse direction. A self-loop is placed once regardless of directedness.
// Weights default to 1.0 when an edge's Weight field is the zero value is
// NOT treated specially — GraphBox edges always carry an explicit weight, so
// "absent" weight is represented by callers using 1.0 at AddEdge time; ToCSR
// copies Weight verbatim.
//
// Complexity: O(V + E).
func ToCSR(g *graph.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, result.New(result.InvalidInput, "graph is nil")
	}

	nodes := g.GetAllNodes()
	ids := make([]string, len(nodes))
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
		index[n.ID] = i
	}
	sort.Strings(ids)
	for i, id := range ids {
		index[id] = i
	}

	edges := g.GetAllEdges()
	degree := make([]int, len(ids))
	for _, e := range edges {
		fromPos, fromOK := index[e.From]
		toPos, toOK := index[e.To]
		if !fromOK || !toOK {
			return nil, result.New(result.InvalidInput, "edge %s references unknown endpoint", e.ID).WithEdge(e.ID)
		}
		degree[fromPos]++
		if !e.Directed && e.From != e.To {
			degree[toPos]++
		}
	}

	offsets := make([]int, len(ids)+1)
	for i := 0; i < len(ids); i++ {
		offsets[i+1] = offsets[i] + degree[i]
	}
	total := offsets[len(ids)]

	neighbours := make([]int, total)
	weights := make([]float64, total)
	cursor := make([]int, len(ids))
	copy(cursor, offsets[:len(ids)])

	for _, e := range edges {
		fromPos := index[e.From]
		toPos := index[e.To]

		neighbours[cursor[fromPos]] = toPos
		weights[cursor[fromPos]] = e.Weight
		cursor[fromPos]++

		if !e.Directed && e.From != e.To {
			neighbours[cursor[toPos]] = fromPos
			weights[cursor[toPos]] = e.Weight
			cursor[toPos]++
		}
	}

	return &Snapshot{
		NodeIDs:    ids,
		index:      index,
		Offsets:    offsets,
		Neighbours: neighbours,
		Weights:    weights,
		directed:   g.Directed(),
		source:     g,
	}, nil
}
