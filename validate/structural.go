package validate

import (
	"fmt"

	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
	"github.com/mearman/graphbox/pattern"
)

// hamiltonianSizeBound is the largest vertex count the Hamiltonian validator
// attempts exhaustively; beyond it the validator reports "inconclusive"
// rather than searching.
const hamiltonianSizeBound = 12

func adjacencyOf(g *graph.Graph) *pattern.Adjacency {
	ids := g.NodeIDs()
	var edges [][2]string
	for _, e := range g.GetAllEdges() {
		edges = append(edges, [2]string{e.From, e.To})
	}
	return pattern.NewAdjacency(ids, edges)
}

// validateChordal checks no induced cycle of length >= 4 up to k<=6 exists
// (a bounded approximation: larger induced holes are not detected).
func validateChordal(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Chordal {
		return ok("chordal", "n/a", "n/a")
	}
	adj := adjacencyOf(g)
	for k := 4; k <= pattern.MaxK; k++ {
		name := fmt.Sprintf("cycle-%d", k)
		p, found := pattern.Library[name]
		if !found {
			continue
		}
		if pattern.HasInducedSubgraph(adj, p) {
			return fail("chordal", "no induced cycle >= 4", fmt.Sprintf("induced %s found", name), "an induced cycle of length >= 4 violates chordality")
		}
	}
	return ok("chordal", "chordal (bounded k<=6)", "no induced hole found")
}

// validateClawFree checks no induced K1,3 (claw) exists.
func validateClawFree(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.ClawFree {
		return ok("clawFree", "n/a", "n/a")
	}
	adj := adjacencyOf(g)
	if pattern.HasInducedSubgraph(adj, pattern.Claw()) {
		return fail("clawFree", "no induced claw", "induced claw found", "a claw subgraph violates claw-freeness")
	}
	return ok("clawFree", "claw-free", "claw-free")
}

// validateCograph checks no induced P4 exists.
func validateCograph(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Cograph {
		return ok("cograph", "n/a", "n/a")
	}
	adj := adjacencyOf(g)
	if pattern.HasInducedSubgraph(adj, pattern.Path(4)) {
		return fail("cograph", "no induced P4", "induced P4 found", "a P4 subgraph violates cograph-ness")
	}
	return ok("cograph", "cograph", "cograph")
}

// validatePerfect checks for induced odd holes/antiholes up to bounded
// length (documented approximation; exact perfection testing is not
// bounded-resource).
func validatePerfect(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Perfect {
		return ok("perfect", "n/a", "n/a")
	}
	adj := adjacencyOf(g)
	for k := 5; k <= pattern.MaxK; k += 2 {
		name := fmt.Sprintf("cycle-%d", k)
		p, found := pattern.Library[name]
		if !found {
			continue
		}
		if pattern.HasInducedSubgraph(adj, p) {
			return fail("perfect", "no induced odd hole (bounded)", fmt.Sprintf("induced %s found", name), "an induced odd cycle of length >= 5 violates perfection")
		}
	}
	return ok("perfect", "perfect (bounded approximation)", "no odd hole found up to k<=6")
}

// validateHamiltonian performs a bounded exhaustive search for a Hamiltonian
// cycle on graphs of up to hamiltonianSizeBound vertices; beyond it, it reports
// inconclusive without failing.
func validateHamiltonian(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Hamiltonian {
		return ok("hamiltonian", "n/a", "n/a")
	}
	ids := g.NodeIDs()
	if len(ids) > hamiltonianSizeBound {
		return ok("hamiltonian", "hamiltonian (inconclusive beyond bound)", "inconclusive: graph too large for exact search")
	}
	if len(ids) < 3 {
		return fail("hamiltonian", "a Hamiltonian cycle", "too few vertices", "fewer than 3 vertices cannot form a cycle")
	}
	if hasHamiltonianCycle(g, ids) {
		return ok("hamiltonian", "hamiltonian", "hamiltonian cycle found")
	}
	return fail("hamiltonian", "a Hamiltonian cycle", "none found", "exhaustive search found no Hamiltonian cycle")
}

func hasHamiltonianCycle(g *graph.Graph, ids []string) bool {
	n := len(ids)
	visited := make([]bool, n)
	path := make([]string, 0, n)
	visited[0] = true
	path = append(path, ids[0])
	return hamiltonianDFS(g, ids, visited, path, n)
}

func hamiltonianDFS(g *graph.Graph, ids []string, visited []bool, path []string, n int) bool {
	if len(path) == n {
		return g.HasEdge(path[n-1], path[0]) || g.HasEdge(path[0], path[n-1])
	}
	last := path[len(path)-1]
	for i, id := range ids {
		if visited[i] {
			continue
		}
		if !g.HasEdge(last, id) && !g.HasEdge(id, last) {
			continue
		}
		visited[i] = true
		if hamiltonianDFS(g, ids, visited, append(path, id), n) {
			return true
		}
		visited[i] = false
	}
	return false
}

// planarSizeBound is the largest vertex count the planarity quick-reject
// attempts; beyond it the validator reports an explicit unverified outcome
// rather than guessing.
const planarSizeBound = 200

// validatePlanar applies Euler's formula as a fast necessary (not
// sufficient) quick-reject: a simple connected planar graph satisfies
// |E| <= 3|V| - 6 (or |E| <= 2|V| - 4 if triangle-free). Failing the bound
// conclusively refutes planarity; passing it does not conclusively confirm
// it, so the validator reports "not refuted" per the orchestrator's
// contract rather than claiming a full planarity proof.
func validatePlanar(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Planar {
		return ok("planar", "n/a", "n/a")
	}
	n := len(g.NodeIDs())
	e := g.EdgeCount()
	if n > planarSizeBound {
		return ok("planar", "planar (inconclusive beyond bound)", "inconclusive: graph too large for exact planarity test")
	}
	if n >= 3 && e > 3*n-6 {
		return fail("planar", fmt.Sprintf("|E| <= %d", 3*n-6), fmt.Sprintf("|E| == %d", e), "edge count exceeds the Euler bound for a planar graph")
	}
	return ok("planar", "not refuted (Euler bound)", "not refuted (Euler bound)")
}
