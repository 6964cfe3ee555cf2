// Package gspec defines GraphSpec: a closed, tagged vocabulary of
// graph-theoretic properties used to drive generation and validation. The
// nine core properties are always present; optional advanced facets default
// to "unconstrained". The tagged-kind shape follows a closed
// variant-enum style (HexagramVariant, PlatonicName) generalized from a
// single enum to a struct of per-property kinds.
package gspec

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/result"
)

//nolint:gochecknoglobals // package-level validator instance, same pattern as a *validator.Validate singleton
var validate = validator.New()

// Directionality is the directed/undirected/mixed tag.
type Directionality string

const (
	Directed   Directionality = "directed"
	Undirected Directionality = "undirected"
	Mixed      Directionality = "mixed"
)

// Weighting is the edge-weight discipline tag.
type Weighting string

const (
	Unweighted          Weighting = "unweighted"
	WeightedNumeric      Weighting = "weighted_numeric"
	WeightedCategorical Weighting = "weighted_categorical"
)

// Connectivity is the component-structure tag.
type Connectivity string

const (
	Connected     Connectivity = "connected"
	Disconnected  Connectivity = "disconnected"
	Unconstrained Connectivity = "unconstrained"
)

// Cycles is the acyclicity tag.
type Cycles string

const (
	Acyclic       Cycles = "acyclic"
	CyclesAllowed Cycles = "cycles_allowed"
)

// Density is the edge-density band tag.
type Density string

const (
	Sparse             Density = "sparse"
	Moderate           Density = "moderate"
	Dense              Density = "dense"
	DensityUnconstrained Density = "unconstrained"
)

// Completeness is the complete/incomplete tag.
type Completeness string

const (
	Complete   Completeness = "complete"
	Incomplete Completeness = "incomplete"
)

// EdgeMultiplicity is the simple/multi tag.
type EdgeMultiplicity string

const (
	Simple EdgeMultiplicity = "simple"
	Multi  EdgeMultiplicity = "multi"
)

// SelfLoops is the allowed/disallowed tag.
type SelfLoops string

const (
	LoopsAllowed    SelfLoops = "allowed"
	LoopsDisallowed SelfLoops = "disallowed"
)

// Schema is the homogeneous/heterogeneous node-type tag.
type Schema string

const (
	Homogeneous   Schema = "homogeneous"
	Heterogeneous Schema = "heterogeneous"
)

// WeightRange bounds a weighted_numeric spec's draw range.
type WeightRange struct {
	Min float64 `validate:"gte=0,ltefield=Max"`
	Max float64 `validate:"gtefield=Min"`
}

// DisconnectedSpec carries the component count for connectivity=disconnected.
// Zero means unset; any other value must be at least 2.
type DisconnectedSpec struct {
	Components int `validate:"omitempty,gte=2"`
}

// Advanced holds the optional advanced facets. A zero-value facet means
// "unconstrained" (not required); only facets explicitly set participate in
// constraint analysis and validation.
type Advanced struct {
	Bipartite         bool
	KPartite          int `validate:"gte=0"`
	Tournament        bool
	CompleteBipartite *struct{ M, N int }
	Star              bool
	Grid              *struct{ Rows, Cols int }
	Regular           *int `validate:"omitempty,gte=0"`
	Planar            bool
	Chordal           bool
	Perfect           bool
	Split             bool
	Cograph           bool
	ClawFree          bool
	Hamiltonian       bool
	Eulerian          bool
	DiameterMax       *int `validate:"omitempty,gte=0"`
	RadiusMax         *int `validate:"omitempty,gte=0"`
	GirthMin          *int `validate:"omitempty,gte=0"`
	CircumferenceMin  *int `validate:"omitempty,gte=0"`
	CircumferenceMax  *int `validate:"omitempty,gte=0"`
}

// Spec is a GraphSpec: the nine core properties (always present) plus the
// optional advanced facets. Specs are immutable value types; generators
// consume them without mutation.
type Spec struct {
	Directionality   Directionality
	Weighting        Weighting
	WeightRange      WeightRange
	Connectivity     Connectivity
	Disconnected     DisconnectedSpec
	Cycles           Cycles
	Density          Density
	Completeness     Completeness
	EdgeMultiplicity EdgeMultiplicity
	SelfLoops        SelfLoops
	Schema           Schema
	Advanced         Advanced
}

// Overrides is a partial Spec: every field is a pointer/optional, used as
// input to MakeGraphSpec. Fields left nil take the default named in
// MakeGraphSpec's doc comment.
type Overrides struct {
	Directionality   *Directionality
	Weighting        *Weighting
	WeightRange      *WeightRange
	Connectivity     *Connectivity
	Disconnected     *DisconnectedSpec
	Cycles           *Cycles
	Density          *Density
	Completeness     *Completeness
	EdgeMultiplicity *EdgeMultiplicity
	SelfLoops        *SelfLoops
	Schema           *Schema
	Advanced         *Advanced
}

var validDirectionality = map[Directionality]bool{Directed: true, Undirected: true, Mixed: true}
var validWeighting = map[Weighting]bool{Unweighted: true, WeightedNumeric: true, WeightedCategorical: true}
var validConnectivity = map[Connectivity]bool{Connected: true, Disconnected: true, Unconstrained: true}
var validCycles = map[Cycles]bool{Acyclic: true, CyclesAllowed: true}
var validDensity = map[Density]bool{Sparse: true, Moderate: true, Dense: true, DensityUnconstrained: true}
var validCompleteness = map[Completeness]bool{Complete: true, Incomplete: true}
var validEdgeMultiplicity = map[EdgeMultiplicity]bool{Simple: true, Multi: true}
var validSelfLoops = map[SelfLoops]bool{LoopsAllowed: true, LoopsDisallowed: true}
var validSchema = map[Schema]bool{Homogeneous: true, Heterogeneous: true}

// MakeGraphSpec fills in defaults for every unset field of overrides and
// validates every set field is a recognized kind. Defaults: undirected,
// unweighted, unconstrained connectivity, cycles_allowed, unconstrained
// density, incomplete, simple, disallowed self-loops, homogeneous schema.
func MakeGraphSpec(o Overrides) (Spec, error) {
	spec := Spec{
		Directionality:   Undirected,
		Weighting:        Unweighted,
		Connectivity:     Unconstrained,
		Cycles:           CyclesAllowed,
		Density:          DensityUnconstrained,
		Completeness:     Incomplete,
		EdgeMultiplicity: Simple,
		SelfLoops:        LoopsDisallowed,
		Schema:           Homogeneous,
	}

	if o.Directionality != nil {
		if !validDirectionality[*o.Directionality] {
			return Spec{}, result.New(result.InvalidInput, "unknown directionality kind %q", *o.Directionality)
		}
		spec.Directionality = *o.Directionality
	}
	if o.Weighting != nil {
		if !validWeighting[*o.Weighting] {
			return Spec{}, result.New(result.InvalidInput, "unknown weighting kind %q", *o.Weighting)
		}
		spec.Weighting = *o.Weighting
	}
	if o.WeightRange != nil {
		spec.WeightRange = *o.WeightRange
	}
	if o.Connectivity != nil {
		if !validConnectivity[*o.Connectivity] {
			return Spec{}, result.New(result.InvalidInput, "unknown connectivity kind %q", *o.Connectivity)
		}
		spec.Connectivity = *o.Connectivity
	}
	if o.Disconnected != nil {
		spec.Disconnected = *o.Disconnected
	}
	if o.Cycles != nil {
		if !validCycles[*o.Cycles] {
			return Spec{}, result.New(result.InvalidInput, "unknown cycles kind %q", *o.Cycles)
		}
		spec.Cycles = *o.Cycles
	}
	if o.Density != nil {
		if !validDensity[*o.Density] {
			return Spec{}, result.New(result.InvalidInput, "unknown density kind %q", *o.Density)
		}
		spec.Density = *o.Density
	}
	if o.Completeness != nil {
		if !validCompleteness[*o.Completeness] {
			return Spec{}, result.New(result.InvalidInput, "unknown completeness kind %q", *o.Completeness)
		}
		spec.Completeness = *o.Completeness
	}
	if o.EdgeMultiplicity != nil {
		if !validEdgeMultiplicity[*o.EdgeMultiplicity] {
			return Spec{}, result.New(result.InvalidInput, "unknown edgeMultiplicity kind %q", *o.EdgeMultiplicity)
		}
		spec.EdgeMultiplicity = *o.EdgeMultiplicity
	}
	if o.SelfLoops != nil {
		if !validSelfLoops[*o.SelfLoops] {
			return Spec{}, result.New(result.InvalidInput, "unknown selfLoops kind %q", *o.SelfLoops)
		}
		spec.SelfLoops = *o.SelfLoops
	}
	if o.Schema != nil {
		if !validSchema[*o.Schema] {
			return Spec{}, result.New(result.InvalidInput, "unknown schema kind %q", *o.Schema)
		}
		spec.Schema = *o.Schema
	}
	if o.Advanced != nil {
		spec.Advanced = *o.Advanced
	}

	if spec.Weighting == WeightedNumeric {
		if err := validate.Struct(spec.WeightRange); err != nil {
			return Spec{}, result.New(result.InvalidInput, "invalid weight range: %v", err)
		}
	}
	if spec.Connectivity == Disconnected {
		if err := validate.Struct(spec.Disconnected); err != nil {
			return Spec{}, result.New(result.InvalidInput, "invalid disconnected spec: %v", err)
		}
	}
	if err := validate.Struct(spec.Advanced); err != nil {
		return Spec{}, result.New(result.InvalidInput, "invalid advanced facets: %v", err)
	}

	return spec, nil
}

var coreDirectionality = []Directionality{Directed, Undirected, Mixed}
var coreWeighting = []Weighting{Unweighted, WeightedNumeric, WeightedCategorical}
var coreConnectivity = []Connectivity{Connected, Disconnected, Unconstrained}
var coreCycles = []Cycles{Acyclic, CyclesAllowed}
var coreDensity = []Density{Sparse, Moderate, Dense, DensityUnconstrained}
var coreCompleteness = []Completeness{Complete, Incomplete}
var coreEdgeMultiplicity = []EdgeMultiplicity{Simple, Multi}
var coreSelfLoops = []SelfLoops{LoopsAllowed, LoopsDisallowed}
var coreSchema = []Schema{Homogeneous, Heterogeneous}

// GenerateCoreSpecPermutations produces the Cartesian product over the nine
// core fields' kind sets (3*3*3*2*4*2*2*2*2 = 3456 raw combinations before
// impossibility filtering — used for coverage tests. Impossibility filtering
// is the constraint package's job, not this function's).
func GenerateCoreSpecPermutations() []Spec {
	var out []Spec
	for _, dir := range coreDirectionality {
		for _, w := range coreWeighting {
			for _, conn := range coreConnectivity {
				for _, cyc := range coreCycles {
					for _, dens := range coreDensity {
						for _, comp := range coreCompleteness {
							for _, mult := range coreEdgeMultiplicity {
								for _, loops := range coreSelfLoops {
									for _, sch := range coreSchema {
										out = append(out, Spec{
											Directionality:   dir,
											Weighting:        w,
											Connectivity:     conn,
											Cycles:           cyc,
											Density:          dens,
											Completeness:     comp,
											EdgeMultiplicity: mult,
											SelfLoops:        loops,
											Schema:           sch,
										})
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}

// DescribeSpec returns a canonical short human description of spec, used for
// diagnostics only — never for equality (two specs with the same
// description may still differ in advanced facets).
func DescribeSpec(s Spec) string {
	parts := []string{
		string(s.Directionality),
		string(s.Weighting),
		string(s.Connectivity),
		string(s.Cycles),
		string(s.Density),
		string(s.Completeness),
		string(s.EdgeMultiplicity),
		string(s.SelfLoops),
		string(s.Schema),
	}
	return fmt.Sprintf("GraphSpec(%s)", strings.Join(parts, ", "))
}

// SpecifiedGraph pairs a built graph with the GraphSpec it was generated
// from (or is being checked against), the shape the validator orchestrator
// and the external graph-exchange adapters both consume.
type SpecifiedGraph struct {
	Graph *graph.Graph
	Spec  Spec
}
