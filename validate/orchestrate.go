package validate

import (
	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
)

type validatorFunc func(g *graph.Graph, spec gspec.Spec, adj constraint.Adjustments) Outcome

// order is the fixed validator sequence the orchestrator runs, so reporting
// is deterministic across runs on the same graph.
var order = []validatorFunc{
	validateDirectionality,
	validateWeighting,
	validateCycles,
	validateConnectivity,
	validateSchema,
	validateEdgeMultiplicity,
	validateSelfLoops,
	validateDensity,
	validateCompleteness,
	validateBipartite,
	validateTournament,
	validateStar,
	validateGrid,
	validateCompleteBipartite,
	validateRegular,
	validateEulerian,
	validateHamiltonian,
	validateDiameter,
	validateRadius,
	validateGirth,
	validateCircumference,
	validateChordal,
	validateClawFree,
	validateCograph,
	validatePerfect,
	validatePlanar,
}

// ValidateGraphProperties runs the full validator battery against sg and
// returns the aggregate report:
//  1. Collect constraint-analyser warnings (errors are not surfaced here —
//     impossible specs are meant to be filtered before generation).
//  2. Compute adjustments from the spec.
//  3. Invoke every validator in the fixed order above.
//  4. The report's Valid is the conjunction of every Outcome.Valid.
//
// Every property name in the closed vocabulary above appears exactly once
// in the returned Properties slice, on every call.
func ValidateGraphProperties(sg gspec.SpecifiedGraph) Report {
	findings := constraint.AnalyzeGraphSpecConstraints(sg.Spec)
	var warnings []constraint.Finding
	for _, f := range findings {
		if f.Severity == constraint.Warning {
			warnings = append(warnings, f)
		}
	}

	adjustments := constraint.GetAdjustedValidationExpectations(sg.Spec)

	report := Report{Valid: true, Warnings: warnings}
	for _, validator := range order {
		outcome := validator(sg.Graph, sg.Spec, adjustments)
		report.Properties = append(report.Properties, outcome)
		if !outcome.Valid {
			report.Valid = false
			report.Errors = append(report.Errors, outcome.Message)
		}
	}
	return report
}
