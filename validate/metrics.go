package validate

import (
	"fmt"

	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
	"github.com/mearman/graphbox/pathfind"
)

// eccentricities computes, for every vertex, the greatest shortest-path
// distance to any other reachable vertex, counted in edges. It uses BFS for
// the common unweighted case and falls back to Dijkstra when weighted is
// true, in which case the edge count of the least-weight path is used.
func eccentricities(g *graph.Graph, weighted bool) (map[string]int, bool) {
	ids := g.NodeIDs()
	ecc := make(map[string]int, len(ids))
	connected := true

	for _, src := range ids {
		maxDist := 0
		for _, dst := range ids {
			if src == dst {
				continue
			}
			var path *pathfind.Path
			var err error
			if weighted {
				path, err = pathfind.Dijkstra(g, src, dst, nil)
			} else {
				path, err = pathfind.BFS(g, src, dst)
			}
			if err != nil || path == nil {
				connected = false
				continue
			}
			if len(path.Edges) > maxDist {
				maxDist = len(path.Edges)
			}
		}
		ecc[src] = maxDist
	}
	return ecc, connected
}

// validateDiameter checks spec.Advanced.DiameterMax against the graph's
// observed diameter (the maximum eccentricity over all vertices).
func validateDiameter(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.DiameterMax == nil {
		return ok("diameter", "n/a", "n/a")
	}
	ecc, _ := eccentricities(g, spec.Weighting == gspec.WeightedNumeric)
	diameter := 0
	for _, d := range ecc {
		if d > diameter {
			diameter = d
		}
	}
	want := *spec.Advanced.DiameterMax
	if diameter > want {
		return fail("diameter", fmt.Sprintf("<=%d", want), fmt.Sprintf("%d", diameter), "observed diameter exceeds the declared bound")
	}
	return ok("diameter", fmt.Sprintf("<=%d", want), fmt.Sprintf("%d", diameter))
}

// validateRadius checks spec.Advanced.RadiusMax against the graph's observed
// radius (the minimum eccentricity over all vertices).
func validateRadius(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.RadiusMax == nil {
		return ok("radius", "n/a", "n/a")
	}
	ecc, _ := eccentricities(g, spec.Weighting == gspec.WeightedNumeric)
	radius := -1
	for _, d := range ecc {
		if radius == -1 || d < radius {
			radius = d
		}
	}
	if radius == -1 {
		radius = 0
	}
	want := *spec.Advanced.RadiusMax
	if radius > want {
		return fail("radius", fmt.Sprintf("<=%d", want), fmt.Sprintf("%d", radius), "observed radius exceeds the declared bound")
	}
	return ok("radius", fmt.Sprintf("<=%d", want), fmt.Sprintf("%d", radius))
}

// validateGirth checks spec.Advanced.GirthMin against the graph's observed
// girth (the length of its shortest cycle), found via a full BFS from each
// vertex, taking the shortest cycle closed by any non-tree edge. A graph with no cycle has
// infinite girth and trivially satisfies any lower bound.
func validateGirth(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.GirthMin == nil {
		return ok("girth", "n/a", "n/a")
	}
	girth := girthOf(g)
	want := *spec.Advanced.GirthMin
	if girth < want {
		return fail("girth", fmt.Sprintf(">=%d", want), fmt.Sprintf("%d", girth), "observed girth is below the declared lower bound")
	}
	return ok("girth", fmt.Sprintf(">=%d", want), "acyclic or >= bound")
}

// circumferenceSizeBound is the largest vertex count the circumference
// validator searches exhaustively; beyond it the validator reports
// inconclusive rather than guessing, matching the Hamiltonian validator's
// bound-and-report-inconclusive shape since both require exploring
// exponentially many candidate cycles.
const circumferenceSizeBound = 12

// validateCircumference checks spec.Advanced.CircumferenceMin/Max against
// the graph's observed circumference (the length of its longest cycle).
func validateCircumference(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Advanced.CircumferenceMin == nil && spec.Advanced.CircumferenceMax == nil {
		return ok("circumference", "n/a", "n/a")
	}
	ids := g.NodeIDs()
	if len(ids) > circumferenceSizeBound {
		return ok("circumference", "circumference (inconclusive beyond bound)", "inconclusive: graph too large for exact search")
	}
	c := circumferenceOf(g, ids)
	actual := fmt.Sprintf("%d", c)
	if c == 0 {
		actual = "0 (acyclic)"
	}
	if spec.Advanced.CircumferenceMin != nil && c < *spec.Advanced.CircumferenceMin {
		return fail("circumference", fmt.Sprintf(">=%d", *spec.Advanced.CircumferenceMin), actual, "observed circumference is below the declared lower bound")
	}
	if spec.Advanced.CircumferenceMax != nil && c > *spec.Advanced.CircumferenceMax {
		return fail("circumference", fmt.Sprintf("<=%d", *spec.Advanced.CircumferenceMax), actual, "observed circumference exceeds the declared upper bound")
	}
	return ok("circumference", "within bound", actual)
}

// circumferenceOf finds the longest simple cycle via bounded exhaustive DFS,
// trying every starting vertex and extending the current path through
// unvisited neighbours, recording the longest path that closes back to its
// start. Returns 0 if the graph has no cycle.
func circumferenceOf(g *graph.Graph, ids []string) int {
	n := len(ids)
	best := 0
	visited := make([]bool, n)
	var dfs func(start, cur int, length int)
	dfs = func(start, cur int, length int) {
		curID := ids[cur]
		if length >= 3 && (g.HasEdge(curID, ids[start]) || g.HasEdge(ids[start], curID)) && length > best {
			best = length
		}
		for next := 0; next < n; next++ {
			if visited[next] {
				continue
			}
			nextID := ids[next]
			if !g.HasEdge(curID, nextID) && !g.HasEdge(nextID, curID) {
				continue
			}
			visited[next] = true
			dfs(start, next, length+1)
			visited[next] = false
		}
	}
	for start := 0; start < n; start++ {
		visited[start] = true
		dfs(start, start, 1)
		visited[start] = false
	}
	return best
}

func girthOf(g *graph.Graph) int {
	adj := undirectedAdjacency(g)
	best := -1

	for _, src := range g.NodeIDs() {
		dist := map[string]int{src: 0}
		parent := map[string]string{src: ""}
		queue := []string{src}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range adj[u] {
				if v == parent[u] {
					continue
				}
				if d, seen := dist[v]; seen {
					cycleLen := dist[u] + d + 1
					if best == -1 || cycleLen < best {
						best = cycleLen
					}
					continue
				}
				dist[v] = dist[u] + 1
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if best == -1 {
		return 1 << 30
	}
	return best
}
