package validate

import (
	"fmt"

	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
)

// validateBipartite two-colours the underlying structure and checks every
// edge crosses colours. A no-op (valid) when the facet isn't declared.
func validateBipartite(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Bipartite {
		return ok("bipartite", "n/a", "n/a")
	}
	_, isBipartite := twoColor(g)
	if !isBipartite {
		return fail("bipartite", "two-colourable", "not two-colourable", "an edge connects two same-coloured vertices")
	}
	return ok("bipartite", "bipartite", "bipartite")
}

// validateTournament checks: directed, no self-loops, exactly one directed
// edge between every unordered pair.
func validateTournament(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Tournament {
		return ok("tournament", "n/a", "n/a")
	}
	if !g.Directed() {
		return fail("tournament", "directed", "undirected", "a tournament requires a directed graph")
	}
	ids := g.NodeIDs()
	for _, e := range g.GetAllEdges() {
		if e.From == e.To {
			return fail("tournament", "no self-loops", "self-loop found", fmt.Sprintf("self-loop on %s", e.From))
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			forward := g.HasEdge(ids[i], ids[j])
			backward := g.HasEdge(ids[j], ids[i])
			if forward == backward {
				return fail("tournament", "exactly one directed edge per pair", "zero or both directions present",
					fmt.Sprintf("pair (%s, %s) does not have exactly one directed edge", ids[i], ids[j]))
			}
		}
	}
	return ok("tournament", "tournament", "tournament")
}

// validateRegular checks every vertex has the same (or given) degree.
func validateRegular(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.Regular == nil {
		return ok("regular", "n/a", "n/a")
	}
	want := *spec.Advanced.Regular
	deg := undirectedDegree(g)
	for id, d := range deg {
		if d != want {
			return fail("regular", fmt.Sprintf("degree %d", want), fmt.Sprintf("degree %d", d), fmt.Sprintf("vertex %s has degree %d, expected %d", id, d, want))
		}
	}
	return ok("regular", fmt.Sprintf("%d-regular", want), fmt.Sprintf("%d-regular", want))
}

// validateStar checks one hub vertex is adjacent to every other vertex, and
// no edges exist between two non-hub vertices.
func validateStar(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Star {
		return ok("star", "n/a", "n/a")
	}
	ids := g.NodeIDs()
	deg := undirectedDegree(g)
	hub := ""
	for _, id := range ids {
		if deg[id] == len(ids)-1 {
			hub = id
			break
		}
	}
	if hub == "" {
		return fail("star", "one hub adjacent to all", "no qualifying hub found", "no vertex has degree n-1")
	}
	for _, id := range ids {
		if id == hub {
			continue
		}
		if deg[id] != 1 {
			return fail("star", "leaves have degree 1", fmt.Sprintf("%s has degree %d", id, deg[id]), "a non-hub vertex has degree other than 1")
		}
	}
	return ok("star", "star", "star")
}

// validateGrid checks rows*cols vertices with 4-connectivity edges, matching
// the constructor parameters in spec.Advanced.Grid.
func validateGrid(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.Grid == nil {
		return ok("grid", "n/a", "n/a")
	}
	rows, cols := spec.Advanced.Grid.Rows, spec.Advanced.Grid.Cols
	n := len(g.NodeIDs())
	if n != rows*cols {
		return fail("grid", fmt.Sprintf("%d nodes", rows*cols), fmt.Sprintf("%d nodes", n), "node count does not match rows*cols")
	}
	wantEdges := rows*(cols-1) + cols*(rows-1)
	if g.EdgeCount() != wantEdges {
		return fail("grid", fmt.Sprintf("%d edges", wantEdges), fmt.Sprintf("%d edges", g.EdgeCount()), "edge count does not match a 4-connectivity grid")
	}
	return ok("grid", "grid", "grid")
}

// validateCompleteBipartite checks the graph is bipartite into parts of
// exactly M and N and every cross-pair is connected.
func validateCompleteBipartite(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.CompleteBipartite == nil {
		return ok("completeBipartite", "n/a", "n/a")
	}
	m, n := spec.Advanced.CompleteBipartite.M, spec.Advanced.CompleteBipartite.N
	colors, isBipartite := twoColor(g)
	if !isBipartite {
		return fail("completeBipartite", "bipartite", "not bipartite", "graph is not two-colourable")
	}
	var side0, side1 int
	for _, c := range colors {
		if c == 0 {
			side0++
		} else {
			side1++
		}
	}
	if !((side0 == m && side1 == n) || (side0 == n && side1 == m)) {
		return fail("completeBipartite", fmt.Sprintf("parts of size %d and %d", m, n), fmt.Sprintf("parts of size %d and %d", side0, side1), "partition sizes do not match M,N")
	}
	wantEdges := m * n
	if g.EdgeCount() != wantEdges {
		return fail("completeBipartite", fmt.Sprintf("%d edges", wantEdges), fmt.Sprintf("%d edges", g.EdgeCount()), "edge count does not match a complete bipartite graph")
	}
	return ok("completeBipartite", "complete_bipartite", "complete_bipartite")
}

// validateEulerian checks connected ∧ every vertex has even degree
// (undirected), or every vertex has in-degree == out-degree (directed).
func validateEulerian(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if !spec.Advanced.Eulerian {
		return ok("eulerian", "n/a", "n/a")
	}
	if len(components(g)) > 1 {
		return fail("eulerian", "connected", "disconnected", "an Eulerian graph must be connected")
	}
	if g.Directed() {
		out, in := directedDegrees(g)
		for id := range out {
			if out[id] != in[id] {
				return fail("eulerian", "in-degree == out-degree", fmt.Sprintf("%s: out=%d in=%d", id, out[id], in[id]), "a directed Eulerian graph needs balanced in/out degree at every vertex")
			}
		}
		return ok("eulerian", "eulerian", "eulerian")
	}
	deg := undirectedDegree(g)
	for id, d := range deg {
		if d%2 != 0 {
			return fail("eulerian", "even degree", fmt.Sprintf("%s has degree %d", id, d), "an undirected Eulerian graph needs every vertex to have even degree")
		}
	}
	return ok("eulerian", "eulerian", "eulerian")
}
