package generate

import (
	"fmt"
	"math/rand"

	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
	"github.com/mearman/graphbox/result"
)

// Result pairs the produced graph with the GraphSpec it was built from, so
// callers can trace a graph back to the request that generated it.
type Result struct {
	Graph *graph.Graph
	Spec  gspec.Spec
}

func defaultNodeID(i int) string { return fmt.Sprintf("n%d", i) }

// GenerateGraph dispatches spec to one strategy, in the fixed priority
// order: empty, special explicit class, bipartite, disconnected, tree, DAG,
// connected general, unconstrained. Two calls with identical (spec, config) return
// byte-identical graphs because every stochastic choice is drawn from a
// *rand.Rand seeded from Config.Seed (mulberry32-class determinism is the
// suggested shape; a seeded *rand.Rand is used throughout this module for
// determinism rather than a dedicated PRNG implementation).
func GenerateGraph(spec gspec.Spec, cfg Config) (Result, error) {
	if err := cfg.validateOption(); err != nil {
		return Result{}, err
	}

	directed := spec.Directionality == gspec.Directed
	rng := cfg.rng()

	var g *graph.Graph
	var err error

	switch {
	case cfg.NodeCount == 0:
		g = newSkeleton(spec)

	case spec.Advanced.Star:
		g, err = buildStar(spec, cfg)
	case spec.Advanced.Grid != nil:
		g, err = buildGrid(spec, cfg)
	case spec.Advanced.CompleteBipartite != nil:
		g, err = buildCompleteBipartite(spec, cfg)
	case spec.Advanced.Tournament:
		g, err = buildTournament(spec, cfg, rng)
	case spec.Completeness == gspec.Complete:
		g, err = buildComplete(spec, cfg)
	case spec.Advanced.Regular != nil:
		g, err = buildRegular(spec, cfg, rng)

	case spec.Advanced.Bipartite:
		g, err = buildBipartite(spec, cfg, rng)

	case spec.Connectivity == gspec.Disconnected:
		g, err = buildDisconnected(spec, cfg, rng)

	case spec.Cycles == gspec.Acyclic && !directed:
		// Covers both connected and unconstrained-connectivity requests: a
		// spanning tree is always connected, which unconstrained accepts, and
		// is the only way to guarantee acyclicity without a topological
		// order to fall back on (that's buildDAG's job, for directed specs).
		g, err = buildTree(spec, cfg, rng)

	case directed && spec.Cycles == gspec.Acyclic:
		g, err = buildDAG(spec, cfg, rng)

	case spec.Connectivity == gspec.Connected:
		g, err = buildConnectedGeneral(spec, cfg, rng)

	default:
		g, err = buildUnconstrained(spec, cfg, rng)
	}

	if err != nil {
		return Result{}, err
	}

	ensureMultiEdge(g, spec)

	if err := applyHeterogeneousSchema(g, spec, cfg, rng); err != nil {
		return Result{}, err
	}
	if err := applyWeights(g, spec, cfg, rng); err != nil {
		return Result{}, err
	}

	return Result{Graph: g, Spec: spec}, nil
}

func newSkeleton(spec gspec.Spec) *graph.Graph {
	opts := []graph.Option{graph.WithDirected(spec.Directionality == gspec.Directed)}
	if spec.EdgeMultiplicity == gspec.Multi {
		opts = append(opts, graph.WithMultiEdges())
	}
	if spec.SelfLoops == gspec.LoopsAllowed {
		opts = append(opts, graph.WithLoops())
	}
	if spec.Directionality == gspec.Mixed {
		opts = append(opts, graph.WithMixedEdges())
	}
	return graph.New(opts...)
}

func addNodes(g *graph.Graph, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := defaultNodeID(i)
		ids[i] = id
		_ = g.AddNode(graph.Node{ID: id})
	}
	return ids
}

// buildComplete emits an edge between every distinct pair (and, when
// self-loops are allowed, a self-loop on every vertex).
func buildComplete(spec gspec.Spec, cfg Config) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if _, err := g.AddEdge(ids[i], ids[j], 1); err != nil {
				return nil, err
			}
		}
		if spec.SelfLoops == gspec.LoopsAllowed {
			if _, err := g.AddEdge(ids[i], ids[i], 1); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// buildStar builds a hub-and-spoke topology: hub "n0", leaves n1..n(n-1).
func buildStar(spec gspec.Spec, cfg Config) (*graph.Graph, error) {
	if cfg.NodeCount < 2 {
		return nil, result.New(result.InvalidInput, "star requires at least 2 nodes, got %d", cfg.NodeCount)
	}
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	hub := ids[0]
	for _, leaf := range ids[1:] {
		if _, err := g.AddEdge(hub, leaf, 1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildGrid builds a 4-connectivity grid of rows*cols nodes, grounded on
// gridgraph's 4-connectivity construction (cell (r,c) <-> (r,c+1), (r+1,c)).
func buildGrid(spec gspec.Spec, cfg Config) (*graph.Graph, error) {
	rows, cols := spec.Advanced.Grid.Rows, spec.Advanced.Grid.Cols
	if rows*cols != cfg.NodeCount {
		return nil, result.New(result.InvalidInput, "grid(%d,%d) requires node_count==%d, got %d", rows, cols, rows*cols, cfg.NodeCount)
	}
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	idx := func(r, c int) string { return ids[r*cols+c] }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if _, err := g.AddEdge(idx(r, c), idx(r, c+1), 1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(idx(r, c), idx(r+1, c), 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// buildCompleteBipartite builds K_{m,n}: one edge per cross pair, from the
// left part to the right part, whether or not the spec is directed (grounded
// on builder's CompleteBipartite).
func buildCompleteBipartite(spec gspec.Spec, cfg Config) (*graph.Graph, error) {
	m, n := spec.Advanced.CompleteBipartite.M, spec.Advanced.CompleteBipartite.N
	if m < 1 || n < 1 {
		return nil, result.New(result.InvalidInput, "complete_bipartite requires both parts >= 1")
	}
	if m+n != cfg.NodeCount {
		return nil, result.New(result.InvalidInput, "complete_bipartite(%d,%d) requires node_count==%d, got %d", m, n, m+n, cfg.NodeCount)
	}
	g := newSkeleton(spec)
	left := make([]string, m)
	right := make([]string, n)
	for i := 0; i < m; i++ {
		id := fmt.Sprintf("L%d", i)
		left[i] = id
		_ = g.AddNode(graph.Node{ID: id, Partition: "left"})
	}
	for j := 0; j < n; j++ {
		id := fmt.Sprintf("R%d", j)
		right[j] = id
		_ = g.AddNode(graph.Node{ID: id, Partition: "right"})
	}
	for _, l := range left {
		for _, r := range right {
			if _, err := g.AddEdge(l, r, 1); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// buildTournament builds a directed graph with exactly one directed edge
// between every unordered pair, oriented randomly.
func buildTournament(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			from, to := ids[i], ids[j]
			if rng.Intn(2) == 1 {
				from, to = to, from
			}
			if _, err := g.AddEdge(from, to, 1); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// buildRegular builds a k-regular graph via repeated random pairing of
// stub half-edges (configuration-model style), retrying on collisions.
func buildRegular(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	k := *spec.Advanced.Regular
	if cfg.NodeCount*k%2 != 0 {
		return nil, result.New(result.InvalidInput, "k-regular graph needs n*k even, got n=%d k=%d", cfg.NodeCount, k)
	}
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)

	degree := make(map[string]int, len(ids))
	used := make(map[[2]string]bool)

	const maxAttempts = 10000
	attempts := 0
	for remaining := cfg.NodeCount * k / 2; remaining > 0 && attempts < maxAttempts; attempts++ {
		var candidates []string
		for _, id := range ids {
			if degree[id] < k {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) < 2 {
			break
		}
		i := candidates[rng.Intn(len(candidates))]
		j := candidates[rng.Intn(len(candidates))]
		if i == j {
			continue
		}
		key := orderedPair(i, j)
		if used[key] {
			continue
		}
		if _, err := g.AddEdge(i, j, 1); err != nil {
			continue
		}
		used[key] = true
		degree[i]++
		degree[j]++
		remaining--
	}
	return g, nil
}

func orderedPair(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// buildBipartite partitions nodes into a balanced two-coloring and emits
// only cross-partition edges, up to the density target.
func buildBipartite(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)

	half := len(ids) / 2
	left := ids[:half]
	right := ids[half:]
	for _, id := range left {
		n, _ := g.GetNode(id)
		n.Partition = "left"
	}
	for _, id := range right {
		n, _ := g.GetNode(id)
		n.Partition = "right"
	}

	maxCross := len(left) * len(right)
	target := targetEdgeCount(len(ids), spec.Directionality == gspec.Directed, spec.Density, rng)
	if target > maxCross {
		target = maxCross
	}

	type pair struct{ l, r string }
	var pairs []pair
	for _, l := range left {
		for _, r := range right {
			pairs = append(pairs, pair{l, r})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	for i := 0; i < target && i < len(pairs); i++ {
		if _, err := g.AddEdge(pairs[i].l, pairs[i].r, 1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildTree emits a random spanning tree by attaching each new node to a
// uniformly random earlier node (a random recursive tree) — an adequate
// stand-in for a uniform spanning tree for unlabeled-structure purposes.
func buildTree(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	for i := 1; i < len(ids); i++ {
		parent := ids[rng.Intn(i)]
		if _, err := g.AddEdge(parent, ids[i], 1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildDAG picks a random topological order, then for each i<j independently
// includes the edge with a probability driven by density.
func buildDAG(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	maxE := maxEdges(len(ids), true) / 2 // i<j pairs only
	target := targetEdgeCount(len(ids), true, spec.Density, rng) / 2
	if target > maxE {
		target = maxE
	}
	prob := 0.0
	if maxE > 0 {
		prob = float64(target) / float64(maxE)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if rng.Float64() < prob {
				if _, err := g.AddEdge(ids[i], ids[j], 1); err != nil {
					return nil, err
				}
			}
		}
	}

	if spec.Connectivity == gspec.Connected {
		for i := 1; i < len(ids); i++ {
			if !g.HasEdge(ids[i-1], ids[i]) && !g.HasEdge(ids[i], ids[i-1]) {
				if _, err := g.AddEdge(ids[i-1], ids[i], 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// buildConnectedGeneral emits a spanning structure (random tree via
// union-find) then adds extra edges up to the density target.
func buildConnectedGeneral(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	uf := newUnionFind(ids)

	order := append([]string(nil), ids...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for i := 1; i < len(order); i++ {
		a, b := order[i-1], order[i]
		if uf.union(a, b) {
			if _, err := g.AddEdge(a, b, 1); err != nil {
				return nil, err
			}
		}
	}
	for i := 1; i < len(ids); i++ {
		if uf.union(ids[i-1], ids[i]) {
			if _, err := g.AddEdge(ids[i-1], ids[i], 1); err != nil {
				return nil, err
			}
		}
	}

	target := targetEdgeCount(len(ids), spec.Directionality == gspec.Directed, spec.Density, rng)
	addRandomExtraEdges(g, ids, target, spec, rng)
	return g, nil
}

// buildDisconnected splits the node set into spec.Disconnected.Components
// groups (2 if unset) and builds each group as its own internally connected
// component — a random spanning tree, plus extra edges up to the density
// target when cycles are allowed — with no edges ever added across groups.
// This is the only strategy that can guarantee the weak-component count
// validateConnectivity checks for; every other strategy either targets
// connected or leaves connectivity to chance.
func buildDisconnected(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)

	k := spec.Disconnected.Components
	if k < 2 {
		k = 2
	}
	if k > len(ids) {
		k = len(ids)
	}
	if k < 1 {
		return g, nil
	}

	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	groups := make([][]string, k)
	for i, id := range ids {
		groups[i%k] = append(groups[i%k], id)
	}

	for _, group := range groups {
		for i := 1; i < len(group); i++ {
			parent := group[rng.Intn(i)]
			if _, err := g.AddEdge(parent, group[i], 1); err != nil {
				return nil, err
			}
		}
		if spec.Cycles != gspec.Acyclic {
			target := targetEdgeCount(len(group), spec.Directionality == gspec.Directed, spec.Density, rng)
			addRandomExtraEdgesWithin(g, group, target-(len(group)-1), spec, rng)
		}
	}
	return g, nil
}

// addRandomExtraEdgesWithin is addRandomExtraEdges restricted to counting
// edges it adds itself rather than the graph's total edge count, so callers
// building several independent components can request "add N more edges to
// this group" without the shared edge count from other groups miscounting
// against the target.
func addRandomExtraEdgesWithin(g *graph.Graph, group []string, target int, spec gspec.Spec, rng *rand.Rand) {
	if len(group) < 2 || target <= 0 {
		return
	}
	const maxAttempts = 20000
	added := 0
	for attempts := 0; added < target && attempts < maxAttempts; attempts++ {
		i := group[rng.Intn(len(group))]
		j := group[rng.Intn(len(group))]
		if i == j {
			if spec.SelfLoops != gspec.LoopsAllowed {
				continue
			}
		}
		if g.HasEdge(i, j) && spec.EdgeMultiplicity != gspec.Multi {
			continue
		}
		if _, err := g.AddEdge(i, j, 1); err == nil {
			added++
		}
	}
}

// buildUnconstrained is an Erdos-Renyi-style random graph tuned to density.
func buildUnconstrained(spec gspec.Spec, cfg Config, rng *rand.Rand) (*graph.Graph, error) {
	g := newSkeleton(spec)
	ids := addNodes(g, cfg.NodeCount)
	target := targetEdgeCount(len(ids), spec.Directionality == gspec.Directed, spec.Density, rng)
	addRandomExtraEdges(g, ids, target, spec, rng)
	return g, nil
}

func addRandomExtraEdges(g *graph.Graph, ids []string, target int, spec gspec.Spec, rng *rand.Rand) {
	if len(ids) < 2 {
		return
	}
	const maxAttempts = 20000
	for attempts := 0; g.EdgeCount() < target && attempts < maxAttempts; attempts++ {
		i := ids[rng.Intn(len(ids))]
		j := ids[rng.Intn(len(ids))]
		if i == j {
			if spec.SelfLoops != gspec.LoopsAllowed {
				continue
			}
		}
		if g.HasEdge(i, j) && spec.EdgeMultiplicity != gspec.Multi {
			continue
		}
		_, _ = g.AddEdge(i, j, 1)
	}
}

// ensureMultiEdge guarantees a multi-edge spec's graph actually carries at
// least one duplicate endpoint pair. Every strategy's extra-edge target is
// density-driven and can legitimately land exactly on the spanning edge
// count, leaving zero duplicates by chance; this closes that gap
// deterministically rather than leaving edgeMultiplicity validation to luck.
func ensureMultiEdge(g *graph.Graph, spec gspec.Spec) {
	if spec.EdgeMultiplicity != gspec.Multi {
		return
	}
	edges := g.GetAllEdges()
	if len(edges) == 0 {
		return
	}
	seen := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		key := orderedPair(e.From, e.To)
		if seen[key] {
			return
		}
		seen[key] = true
	}
	e := edges[0]
	_, _ = g.AddEdge(e.From, e.To, e.Weight)
}

// applyHeterogeneousSchema draws node types from cfg.NodeTypes (normalised)
// when spec.Schema is heterogeneous.
func applyHeterogeneousSchema(g *graph.Graph, spec gspec.Spec, cfg Config, rng *rand.Rand) error {
	if spec.Schema != gspec.Heterogeneous {
		return nil
	}
	if len(cfg.NodeTypes) == 0 {
		return result.New(result.InvalidInput, "heterogeneous schema requires node_types")
	}
	total := 0.0
	for _, nt := range cfg.NodeTypes {
		total += nt.Proportion
	}
	for _, n := range g.GetAllNodes() {
		r := rng.Float64() * total
		cum := 0.0
		for _, nt := range cfg.NodeTypes {
			cum += nt.Proportion
			if r <= cum {
				n.Type = nt.Type
				break
			}
		}
	}
	return nil
}

// applyWeights draws a uniform weight per edge from spec.WeightRange when
// spec.Weighting is weighted_numeric, so the declared range and the drawn
// range can never disagree.
func applyWeights(g *graph.Graph, spec gspec.Spec, _ Config, rng *rand.Rand) error {
	if spec.Weighting != gspec.WeightedNumeric {
		return nil
	}
	lo, hi := spec.WeightRange.Min, spec.WeightRange.Max
	for _, e := range g.GetAllEdges() {
		e.Weight = lo + rng.Float64()*(hi-lo)
	}
	return nil
}
