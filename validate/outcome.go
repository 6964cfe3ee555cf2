// Package validate implements the property validator battery and the
// validate_graph_properties orchestrator: each validator takes a graph (and
// an already-built Spec to check it against) plus the constraint analyser's
// adjustments, and reports a structured pass/fail with expected/actual
// values, grounded on dfs's cycle/topological checks, bfs's traversal shape,
// pathfind's single-source BFS/Dijkstra runs from every vertex (there is no
// all-pairs distance matrix), tsp's Eulerian/Hamiltonian checks, and
// gridgraph's shape-matching style.
package validate

import "github.com/mearman/graphbox/constraint"

// Outcome is one property's validation result.
type Outcome struct {
	Property string
	Valid    bool
	Expected string
	Actual   string
	Message  string
}

// Report is the orchestrator's aggregate result: the conjunction of every
// Outcome.Valid, plus the constraint analyser's warnings and a flat list of
// failure messages for convenience.
type Report struct {
	Valid      bool
	Properties []Outcome
	Warnings   []constraint.Finding
	Errors     []string
}

func ok(property, expected, actual string) Outcome {
	return Outcome{Property: property, Valid: true, Expected: expected, Actual: actual}
}

func fail(property, expected, actual, message string) Outcome {
	return Outcome{Property: property, Valid: false, Expected: expected, Actual: actual, Message: message}
}
