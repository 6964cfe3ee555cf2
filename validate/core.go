package validate

import (
	"fmt"

	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
)

// validateDirectionality checks that every edge's effective direction
// matches spec.Directionality: for "directed", no edge may be an undirected
// override; for "undirected", no edge may be a directed override; "mixed"
// accepts either.
func validateDirectionality(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Directionality == gspec.Mixed {
		return ok("directionality", string(spec.Directionality), string(spec.Directionality))
	}
	want := spec.Directionality == gspec.Directed
	for _, e := range g.GetAllEdges() {
		if e.Directed != want {
			return fail("directionality", string(spec.Directionality), boolDirectionality(e.Directed),
				fmt.Sprintf("edge %s has directed=%v, expected %v", e.ID, e.Directed, want))
		}
	}
	return ok("directionality", string(spec.Directionality), string(spec.Directionality))
}

func boolDirectionality(directed bool) string {
	if directed {
		return string(gspec.Directed)
	}
	return string(gspec.Undirected)
}

// validateWeighting checks unweighted graphs carry weight==1 on every edge,
// and weighted_numeric graphs carry finite weights inside the declared
// range.
func validateWeighting(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	switch spec.Weighting {
	case gspec.Unweighted:
		for _, e := range g.GetAllEdges() {
			if e.Weight != 1 {
				return fail("weighting", "1", fmt.Sprintf("%g", e.Weight),
					fmt.Sprintf("edge %s has weight %g, expected 1 for unweighted", e.ID, e.Weight))
			}
		}
		return ok("weighting", "1", "1")
	case gspec.WeightedNumeric:
		lo, hi := spec.WeightRange.Min, spec.WeightRange.Max
		for _, e := range g.GetAllEdges() {
			if e.Weight < lo || e.Weight > hi {
				return fail("weighting", fmt.Sprintf("[%g,%g]", lo, hi), fmt.Sprintf("%g", e.Weight),
					fmt.Sprintf("edge %s weight %g outside declared range", e.ID, e.Weight))
			}
		}
		return ok("weighting", fmt.Sprintf("[%g,%g]", lo, hi), fmt.Sprintf("[%g,%g]", lo, hi))
	default:
		return ok("weighting", string(spec.Weighting), string(spec.Weighting))
	}
}

// validateCycles checks acyclic ∧ directed via Kahn topological sort, and
// acyclic ∧ undirected via |E| == |V| - #components. Skipped entirely when
// adjustments.SkipCycleValidation is set (multi-edge specs don't map cleanly
// onto the simple-graph cycle definition).
func validateCycles(g *graph.Graph, spec gspec.Spec, adj constraint.Adjustments) Outcome {
	if adj.SkipCycleValidation {
		return ok("cycles", string(spec.Cycles), "skipped")
	}
	if spec.Cycles != gspec.Acyclic {
		return ok("cycles", string(spec.Cycles), string(spec.Cycles))
	}

	if spec.Directionality == gspec.Directed {
		_, acyclic := kahnTopologicalOrder(g)
		if !acyclic {
			return fail("cycles", "acyclic", "cycle found", "topological sort could not order every vertex")
		}
		return ok("cycles", "acyclic", "acyclic")
	}

	n := len(g.NodeIDs())
	e := g.EdgeCount()
	c := len(components(g))
	if e != n-c {
		return fail("cycles", fmt.Sprintf("|E|==%d", n-c), fmt.Sprintf("|E|==%d", e),
			"edge count does not match the forest invariant |E| == |V| - #components")
	}
	return ok("cycles", "acyclic", "acyclic")
}

// validateConnectivity compares the weak component count to what spec
// declares: "connected" expects exactly 1, "disconnected" expects
// spec.Disconnected.Components (if set, else just >1).
func validateConnectivity(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	c := len(components(g))
	switch spec.Connectivity {
	case gspec.Connected:
		if c != 1 {
			return fail("connectivity", "1 component", fmt.Sprintf("%d components", c), "graph is not connected")
		}
		return ok("connectivity", "1 component", "1 component")
	case gspec.Disconnected:
		want := spec.Disconnected.Components
		if want > 0 && c != want {
			return fail("connectivity", fmt.Sprintf("%d components", want), fmt.Sprintf("%d components", c),
				"component count does not match declared disconnected shape")
		}
		if c < 2 {
			return fail("connectivity", ">1 component", fmt.Sprintf("%d components", c), "disconnected graph must have more than one component")
		}
		return ok("connectivity", fmt.Sprintf("%d components", c), fmt.Sprintf("%d components", c))
	default:
		return ok("connectivity", "unconstrained", fmt.Sprintf("%d components", c))
	}
}

// validateSchema checks homogeneous graphs have one node type and
// heterogeneous graphs have at least two distinct node types present.
func validateSchema(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	types := make(map[string]bool)
	for _, n := range g.GetAllNodes() {
		types[n.Type] = true
	}
	switch spec.Schema {
	case gspec.Homogeneous:
		if len(types) > 1 {
			return fail("schema", "1 node type", fmt.Sprintf("%d node types", len(types)), "homogeneous graph has more than one node type")
		}
		return ok("schema", "1 node type", fmt.Sprintf("%d node types", len(types)))
	case gspec.Heterogeneous:
		if len(types) < 2 {
			return fail("schema", ">=2 node types", fmt.Sprintf("%d node types", len(types)), "heterogeneous graph must have at least two distinct node types")
		}
		return ok("schema", fmt.Sprintf("%d node types", len(types)), fmt.Sprintf("%d node types", len(types)))
	default:
		return ok("schema", string(spec.Schema), string(spec.Schema))
	}
}

// validateEdgeMultiplicity checks simple graphs have no duplicate unordered
// endpoint pair, and multi graphs have at least one duplicate.
func validateEdgeMultiplicity(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	seen := make(map[[2]string]int)
	for _, e := range g.GetAllEdges() {
		seen[unorderedPairKey(e.From, e.To)]++
	}
	hasDuplicate := false
	for _, count := range seen {
		if count > 1 {
			hasDuplicate = true
			break
		}
	}
	switch spec.EdgeMultiplicity {
	case gspec.Simple:
		if hasDuplicate {
			return fail("edgeMultiplicity", "no duplicate pairs", "duplicate pair found", "simple graph must not have parallel edges")
		}
		return ok("edgeMultiplicity", "simple", "simple")
	case gspec.Multi:
		if !hasDuplicate {
			return fail("edgeMultiplicity", "at least one duplicate pair", "no duplicates", "multi graph must have at least one parallel edge")
		}
		return ok("edgeMultiplicity", "multi", "multi")
	default:
		return ok("edgeMultiplicity", string(spec.EdgeMultiplicity), string(spec.EdgeMultiplicity))
	}
}

// validateSelfLoops checks "disallowed" has no From==To edge.
func validateSelfLoops(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	hasLoop := false
	for _, e := range g.GetAllEdges() {
		if e.From == e.To {
			hasLoop = true
			break
		}
	}
	if spec.SelfLoops == gspec.LoopsDisallowed && hasLoop {
		return fail("selfLoops", "no self-loops", "self-loop found", "self-loops disallowed by spec but present in graph")
	}
	return ok("selfLoops", string(spec.SelfLoops), string(spec.SelfLoops))
}

// validateDensity computes |E| / max|E| and checks it against the declared
// density: sparse fails above a ratio of 0.5 and dense fails below 0.5.
// Moderate and unconstrained densities are not checked against any band.
func validateDensity(g *graph.Graph, spec gspec.Spec, adj constraint.Adjustments) Outcome {
	if adj.SkipDensityValidation {
		return ok("density", string(spec.Density), "skipped")
	}
	n := len(g.NodeIDs())
	e := g.EdgeCount()
	directed := spec.Directionality == gspec.Directed
	maxE := n * (n - 1)
	if !directed {
		maxE /= 2
	}
	if maxE == 0 {
		return ok("density", string(spec.Density), "n/a")
	}
	ratio := float64(e) / float64(maxE)

	actual := fmt.Sprintf("ratio=%.3f", ratio)
	switch spec.Density {
	case gspec.Sparse:
		if ratio > 0.5 {
			return fail("density", "sparse (low ratio)", actual, "edge density too high for sparse")
		}
	case gspec.Dense:
		if ratio < 0.5 {
			return fail("density", "dense (high ratio)", actual, "edge density too low for dense")
		}
	}
	return ok("density", string(spec.Density), actual)
}

// validateCompleteness checks "complete" requires an edge between every
// distinct pair, and (when self-loops are allowed) a self-loop on every
// vertex.
func validateCompleteness(g *graph.Graph, spec gspec.Spec, _ constraint.Adjustments) Outcome {
	if spec.Completeness != gspec.Complete {
		return ok("completeness", string(spec.Completeness), string(spec.Completeness))
	}
	ids := g.NodeIDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !g.HasEdge(ids[i], ids[j]) && !g.HasEdge(ids[j], ids[i]) {
				return fail("completeness", "edge between every pair", "missing edge", fmt.Sprintf("no edge between %s and %s", ids[i], ids[j]))
			}
		}
		if spec.SelfLoops == gspec.LoopsAllowed && !g.HasEdge(ids[i], ids[i]) {
			return fail("completeness", "self-loop on every vertex", "missing self-loop", fmt.Sprintf("no self-loop on %s", ids[i]))
		}
	}
	return ok("completeness", "complete", "complete")
}
