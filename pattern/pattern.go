// Package pattern implements the forbidden-subgraph detection engine: a
// small library of named patterns (k <= 6 vertices) and an induced-subgraph
// matcher built on Heap's algorithm permutation enumeration over k-subsets.
// This is the shared substrate several validators call (chordal, claw-free,
// cograph, perfect, bull-free, ...) rather than each re-implementing its own
// isomorphism search.
//
// No pack example targets bounded induced-subgraph isomorphism directly;
// this is pure combinatorics grounded on the adjacency/visited-state
// conventions used elsewhere in this module, implemented on the standard library
// since no third-party library in the retrieval pack addresses it.
package pattern

import (
	"sort"
	"strconv"
)

// Pattern names a small forbidden/required subgraph: k vertices (0..k-1) and
// an unordered edge list over them.
type Pattern struct {
	Name  string
	K     int
	Edges [][2]int
}

// MaxK is the largest pattern size the engine accepts; callers must refuse
// (or skip) patterns above this bound — the Θ(C(n,k)·k!·k²) cost is only
// tractable for small k.
const MaxK = 6

func edgeSet(k int, edges [][2]int) [][]bool {
	m := make([][]bool, k)
	for i := range m {
		m[i] = make([]bool, k)
	}
	for _, e := range edges {
		m[e[0]][e[1]] = true
		m[e[1]][e[0]] = true
	}
	return m
}

// Library is the closed set of named patterns the engine ships with.
var Library = buildLibrary()

func buildLibrary() map[string]Pattern {
	lib := map[string]Pattern{}
	for k := 2; k <= 6; k++ {
		lib[pathName(k)] = Path(k)
	}
	for k := 3; k <= 6; k++ {
		lib[cycleName(k)] = Cycle(k)
	}
	for k := 1; k <= 5; k++ {
		lib[completeName(k)] = Complete(k)
	}
	lib["claw"] = Claw()
	lib["diamond"] = Diamond()
	lib["bull"] = Bull()
	lib["gem"] = Gem()
	lib["net"] = Net()
	lib["house"] = House()
	lib["fork"] = Fork()
	lib["chair"] = Chair()
	lib["dart"] = Dart()
	lib["kite"] = Kite()
	lib["banner"] = Banner()
	lib["c4-chord"] = C4Chord()
	return lib
}

func pathName(k int) string     { return "path-" + strconv.Itoa(k) }
func cycleName(k int) string    { return "cycle-" + strconv.Itoa(k) }
func completeName(k int) string { return "complete-" + strconv.Itoa(k) }

// Path returns Pk: a simple path over k vertices.
func Path(k int) Pattern {
	var edges [][2]int
	for i := 0; i < k-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return Pattern{Name: pathName(k), K: k, Edges: edges}
}

// Cycle returns Ck: a simple cycle over k vertices.
func Cycle(k int) Pattern {
	var edges [][2]int
	for i := 0; i < k; i++ {
		edges = append(edges, [2]int{i, (i + 1) % k})
	}
	return Pattern{Name: cycleName(k), K: k, Edges: edges}
}

// Complete returns Kk: a complete graph over k vertices (k <= 5).
func Complete(k int) Pattern {
	var edges [][2]int
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return Pattern{Name: completeName(k), K: k, Edges: edges}
}

// Claw returns K1,3: a star with centre 0 and leaves 1,2,3.
func Claw() Pattern {
	return Pattern{Name: "claw", K: 4, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}}}
}

// Diamond returns K4 minus one edge.
func Diamond() Pattern {
	return Pattern{Name: "diamond", K: 4, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}}}
}

// Bull returns the bull graph: a triangle with two pendant edges.
func Bull() Pattern {
	return Pattern{Name: "bull", K: 5, Edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 4}}}
}

// Gem returns the gem graph: P4 plus a dominating vertex.
func Gem() Pattern {
	return Pattern{Name: "gem", K: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 0}, {4, 1}, {4, 2}, {4, 3}}}
}

// Net returns the net graph: a triangle with three pendant edges.
func Net() Pattern {
	return Pattern{Name: "net", K: 6, Edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 4}, {2, 5}}}
}

// House returns the house graph: a square with a triangular roof.
func House() Pattern {
	return Pattern{Name: "house", K: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 4}}}
}

// Fork (chair) returns a path of 3 with an extra pendant off the second vertex.
func Fork() Pattern {
	return Pattern{Name: "fork", K: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}}}
}

// Chair returns the chair graph (also called the fork in some taxonomies): a
// P4 with a pendant on the second vertex.
func Chair() Pattern {
	return Pattern{Name: "chair", K: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}}}
}

// Dart returns the dart graph: a diamond with a pendant vertex.
func Dart() Pattern {
	return Pattern{Name: "dart", K: 5, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {4, 0}}}
}

// Kite returns the kite graph: a diamond with a pendant off one of the degree-2 vertices.
func Kite() Pattern {
	return Pattern{Name: "kite", K: 5, Edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {3, 4}}}
}

// Banner returns the banner graph: a C4 with a pendant vertex.
func Banner() Pattern {
	return Pattern{Name: "banner", K: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}}}
}

// C4Chord returns a 4-cycle with one chord (i.e. a diamond by another name,
// kept distinct in the library under its spec-given name).
func C4Chord() Pattern {
	return Pattern{Name: "c4-chord", K: 4, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}}
}

// Adjacency is an undirected boolean adjacency matrix over a fixed, ordered
// set of node IDs, the representation has_induced_subgraph operates against.
type Adjacency struct {
	NodeIDs []string
	index   map[string]int
	matrix  [][]bool
}

// NewAdjacency builds an Adjacency from nodeIDs and a list of undirected
// edges given as ID pairs. Parallel edges and self-loops are tolerated
// (self-loops do not participate in any pattern match).
func NewAdjacency(nodeIDs []string, edges [][2]string) *Adjacency {
	ids := append([]string(nil), nodeIDs...)
	sort.Strings(ids)
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	m := make([][]bool, len(ids))
	for i := range m {
		m[i] = make([]bool, len(ids))
	}
	for _, e := range edges {
		i, iok := idx[e[0]]
		j, jok := idx[e[1]]
		if !iok || !jok || i == j {
			continue
		}
		m[i][j] = true
		m[j][i] = true
	}
	return &Adjacency{NodeIDs: ids, index: idx, matrix: m}
}

// N returns the number of vertices in the adjacency.
func (a *Adjacency) N() int { return len(a.NodeIDs) }

// HasEdge reports whether positions i and j are adjacent.
func (a *Adjacency) HasEdge(i, j int) bool { return a.matrix[i][j] }

// HasInducedSubgraph reports whether adj contains pattern as an induced
// subgraph: some k-subset of vertices, under some permutation mapping
// pattern vertices to subset vertices, reproduces exactly pattern's edges —
// no more, no fewer.
//
// Complexity: worst case Θ(C(n,k)·k!·k²); intractable beyond k ~ 6, which is
// why MaxK bounds the library.
func HasInducedSubgraph(adj *Adjacency, p Pattern) bool {
	n := adj.N()
	k := p.K
	if n < k || k > MaxK {
		return false
	}
	patternAdj := edgeSet(k, p.Edges)

	found := false
	forEachKSubset(n, k, func(subset []int) bool {
		if matchesInduced(adj, subset, patternAdj) {
			found = true
			return false // stop enumeration
		}
		return true
	})
	return found
}

// matchesInduced tests every permutation of subset against patternAdj via
// Heap's algorithm, looking for an induced match.
func matchesInduced(adj *Adjacency, subset []int, patternAdj [][]bool) bool {
	k := len(subset)
	perm := append([]int(nil), subset...)

	if checkPermutation(adj, perm, patternAdj) {
		return true
	}

	c := make([]int, k)
	i := 0
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if checkPermutation(adj, perm, patternAdj) {
				return true
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return false
}

// checkPermutation tests whether perm[0..k-1], read as an assignment of
// pattern vertex i -> perm[i], reproduces patternAdj exactly (induced).
func checkPermutation(adj *Adjacency, perm []int, patternAdj [][]bool) bool {
	k := len(perm)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if adj.HasEdge(perm[i], perm[j]) != patternAdj[i][j] {
				return false
			}
		}
	}
	return true
}

// forEachKSubset enumerates all k-subsets of {0, ..., n-1} in lexicographic
// order, calling visit with each; visit returns false to stop early.
func forEachKSubset(n, k int, visit func(subset []int) bool) {
	if k == 0 {
		visit(nil)
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := append([]int(nil), idx...)
		if !visit(subset) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// DetectMultipleSubgraphs groups patterns by size and, for each size,
// generates k-subsets once and tests every pattern of that size against
// each subset, short-circuiting patterns already found. Returns a map from
// pattern name to whether it was found as an induced subgraph.
func DetectMultipleSubgraphs(adj *Adjacency, patterns []Pattern) map[string]bool {
	result := make(map[string]bool, len(patterns))
	bySize := make(map[int][]Pattern)
	for _, p := range patterns {
		result[p.Name] = false
		bySize[p.K] = append(bySize[p.K], p)
	}

	n := adj.N()
	for k, group := range bySize {
		if n < k || k > MaxK {
			continue
		}
		patternAdjs := make([][][]bool, len(group))
		for i, p := range group {
			patternAdjs[i] = edgeSet(k, p.Edges)
		}
		remaining := len(group)

		forEachKSubset(n, k, func(subset []int) bool {
			for i, p := range group {
				if result[p.Name] {
					continue
				}
				if matchesInduced(adj, subset, patternAdjs[i]) {
					result[p.Name] = true
					remaining--
				}
			}
			return remaining > 0
		})
	}
	return result
}
