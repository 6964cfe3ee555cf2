// Package constraint analyses a gspec.Spec for impossible or
// warning-worthy property combinations before generation is attempted,
// using the same early-return parameter-validation style as the rest of
// GraphBox, generalized from per-constructor parameter checks to whole-spec
// combination checks.
package constraint

import "github.com/mearman/graphbox/gspec"

// Severity classifies a Finding as blocking generation or merely advisory.
type Severity string

const (
	// Error means the spec combination is mathematically impossible.
	Error Severity = "error"
	// Warning means the combination is unusual but not impossible.
	Warning Severity = "warning"
)

// Finding is one detected rule violation or caveat.
type Finding struct {
	Property string
	Severity Severity
	Reason   string
}

// Adjustments are forwarded by the orchestrator into specific validators to
// relax checks that don't map cleanly onto a spec's declared properties.
type Adjustments struct {
	SkipCycleValidation   bool
	SkipDensityValidation bool
}

// AnalyzeGraphSpecConstraints returns every Finding the given GraphSpec
// triggers. The rule set below is deliberately non-exhaustive, covering the
// representative combinations worked out during design plus the ones they
// generalize to.
func AnalyzeGraphSpecConstraints(s gspec.Spec) []Finding {
	var findings []Finding

	if s.Cycles == gspec.Acyclic && s.Density == gspec.Dense {
		findings = append(findings, Finding{
			Property: "density",
			Severity: Warning,
			Reason:   "tree-like graphs are sparse; density is unenforceable under acyclic",
		})
	}

	if s.Completeness == gspec.Complete && s.EdgeMultiplicity == gspec.Multi {
		findings = append(findings, Finding{
			Property: "completeness",
			Severity: Warning,
			Reason:   "completeness is defined for simple graphs",
		})
	}

	if s.Completeness == gspec.Complete && s.Density == gspec.Sparse {
		findings = append(findings, Finding{
			Property: "density",
			Severity: Warning,
			Reason:   "a complete graph is maximally dense; density is unenforceable under completeness",
		})
	}

	if s.Connectivity == gspec.Disconnected && s.Density == gspec.Dense {
		findings = append(findings, Finding{
			Property: "density",
			Severity: Warning,
			Reason:   "a disconnected graph has no cross-component edges, capping its density ratio against the whole vertex set well below the dense band",
		})
	}

	if s.Advanced.Tournament && s.Directionality == gspec.Undirected {
		findings = append(findings, Finding{
			Property: "directionality",
			Severity: Error,
			Reason:   "a tournament requires a directed graph",
		})
	}

	if s.EdgeMultiplicity == gspec.Simple && s.Cycles == gspec.Acyclic && s.Advanced.Tournament {
		findings = append(findings, Finding{
			Property: "edgeMultiplicity",
			Severity: Error,
			Reason:   "a simple acyclic tournament cannot exist beyond a single edge for n > 2",
		})
	}

	if s.Advanced.Bipartite && s.Cycles == gspec.CyclesAllowed && s.Advanced.GirthMin != nil && *s.Advanced.GirthMin < 4 {
		findings = append(findings, Finding{
			Property: "girth",
			Severity: Error,
			Reason:   "bipartite graphs have girth >= 4; a girth bound below 4 is impossible",
		})
	}

	if s.Advanced.Planar && (s.Advanced.Regular != nil && *s.Advanced.Regular >= 5) && s.Completeness == gspec.Complete {
		findings = append(findings, Finding{
			Property: "planarity",
			Severity: Error,
			Reason:   "K5 and larger complete regular graphs are non-planar",
		})
	}

	if s.Connectivity == gspec.Disconnected && s.Completeness == gspec.Complete {
		findings = append(findings, Finding{
			Property: "connectivity",
			Severity: Error,
			Reason:   "a complete graph is always connected; disconnected is impossible",
		})
	}

	if s.Advanced.Tournament && s.EdgeMultiplicity == gspec.Multi {
		findings = append(findings, Finding{
			Property: "edgeMultiplicity",
			Severity: Warning,
			Reason:   "a tournament is conventionally a simple directed graph; multi-edges are unusual",
		})
	}

	if s.Advanced.Star && s.Connectivity == gspec.Disconnected {
		findings = append(findings, Finding{
			Property: "connectivity",
			Severity: Error,
			Reason:   "a star graph is always connected; disconnected is impossible",
		})
	}

	return findings
}

// IsGraphSpecImpossible reports whether any finding has Severity Error.
func IsGraphSpecImpossible(s gspec.Spec) bool {
	for _, f := range AnalyzeGraphSpecConstraints(s) {
		if f.Severity == Error {
			return true
		}
	}
	return false
}

// GetAdjustedValidationExpectations derives validator-facing flags from a
// spec's findings and structure. SkipCycleValidation fires for
// edgeMultiplicity=multi specs, where structural cycle detection does not
// map cleanly onto the simple-graph definition of a cycle.
// SkipDensityValidation fires whenever AnalyzeGraphSpecConstraints raised a
// density Warning (e.g. acyclic forces sparse regardless of the declared
// density, complete forces dense): the declared density is structurally
// unenforceable, not a generator defect, so validateDensity must not fail it.
func GetAdjustedValidationExpectations(s gspec.Spec) Adjustments {
	adj := Adjustments{
		SkipCycleValidation: s.EdgeMultiplicity == gspec.Multi,
	}
	for _, f := range AnalyzeGraphSpecConstraints(s) {
		if f.Property == "density" && f.Severity == Warning {
			adj.SkipDensityValidation = true
		}
	}
	return adj
}
