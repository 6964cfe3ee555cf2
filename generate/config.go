// Package generate is the generator dispatcher: it maps a gspec.Spec plus a
// Config to a graph.Graph via a priority-ordered strategy table, exactly
// matching this module's constructor-closure pattern and its
// rng/idFn/weightFn configuration discipline, generalized from a fixed
// topology per constructor to a spec-driven strategy choice.
package generate

import (
	"math/rand"

	"github.com/go-playground/validator/v10"

	"github.com/mearman/graphbox/result"
)

//nolint:gochecknoglobals // package-level validator instance, mirrors gspec's
var validate = validator.New()

// NodeTypeProportion names one heterogeneous node type and its share of the
// generated graph's nodes (proportions across all entries are normalized).
type NodeTypeProportion struct {
	Type       string  `validate:"required"`
	Proportion float64 `validate:"gt=0"`
}

// Config carries the parameters generate_graph needs beyond the GraphSpec
// itself: how many nodes to build, the determinism seed, and the node-type
// proportions the heterogeneous schema kind requires. Weight range is not
// duplicated here: weighted_numeric draws come from spec.WeightRange
// directly, so the declared range and the generated range can never drift
// apart.
type Config struct {
	NodeCount int `validate:"gte=0"`
	Seed      int64
	NodeTypes []NodeTypeProportion
}

func (c Config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

func (c Config) validateOption() error {
	if err := validate.Struct(c); err != nil {
		return result.New(result.InvalidInput, "invalid generator config: %v", err)
	}
	for _, nt := range c.NodeTypes {
		if err := validate.Struct(nt); err != nil {
			return result.New(result.InvalidInput, "invalid node type proportion: %v", err)
		}
	}
	return nil
}
