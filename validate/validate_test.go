package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/constraint"
	"github.com/mearman/graphbox/generate"
	"github.com/mearman/graphbox/graph"
	"github.com/mearman/graphbox/gspec"
	"github.com/mearman/graphbox/validate"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "c"}))
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("c", "a", 1)
	assert.NoError(t, err)
	return g
}

func TestValidateGraphProperties_CompleteTriangleIsValid(t *testing.T) {
	g := triangle(t)
	complete := gspec.Complete
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Completeness: &complete})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidateGraphProperties_DirectionalityMismatchFails(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	assert.NoError(t, g.AddNode(graph.Node{ID: "a"}))
	assert.NoError(t, g.AddNode(graph.Node{ID: "b"}))
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)

	undirected := gspec.Undirected
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Directionality: &undirected})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.False(t, report.Valid)
}

func TestValidateGraphProperties_AcyclicTreeIsValid(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		assert.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	assert.NoError(t, err)

	acyclic := gspec.Acyclic
	connected := gspec.Connected
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Cycles: &acyclic, Connectivity: &connected})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid)
}

func TestValidateGraphProperties_AcyclicTriangleFails(t *testing.T) {
	g := triangle(t)
	acyclic := gspec.Acyclic
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Cycles: &acyclic})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.False(t, report.Valid)
}

func TestValidateGraphProperties_BipartiteTriangleFails(t *testing.T) {
	g := triangle(t)
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{Bipartite: true}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.False(t, report.Valid)
}

func TestValidateGraphProperties_StarShapeIsValid(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"hub", "l1", "l2", "l3"} {
		assert.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	for _, leaf := range []string{"l1", "l2", "l3"} {
		_, err := g.AddEdge("hub", leaf, 1)
		assert.NoError(t, err)
	}

	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{Star: true}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid)
}

func TestValidateGraphProperties_CircumferenceOfTriangleIsThree(t *testing.T) {
	g := triangle(t)
	three := 3
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{CircumferenceMin: &three, CircumferenceMax: &three}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid, "%v", report.Errors)
}

func TestValidateGraphProperties_CircumferenceBelowDeclaredMinFails(t *testing.T) {
	g := triangle(t)
	four := 4
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{CircumferenceMin: &four}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.False(t, report.Valid)
}

func TestValidateGraphProperties_EulerianTriangleIsValid(t *testing.T) {
	g := triangle(t)
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{Eulerian: true}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid)
}

func TestValidateGraphProperties_ClawFreeTriangleIsValid(t *testing.T) {
	g := triangle(t)
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{ClawFree: true}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.True(t, report.Valid)
}

func TestValidateGraphProperties_ClawFreeStarFails(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"hub", "l1", "l2", "l3"} {
		assert.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	for _, leaf := range []string{"l1", "l2", "l3"} {
		_, err := g.AddEdge("hub", leaf, 1)
		assert.NoError(t, err)
	}

	spec, err := gspec.MakeGraphSpec(gspec.Overrides{Advanced: &gspec.Advanced{ClawFree: true}})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.False(t, report.Valid)
}

func TestValidateGraphProperties_EveryPropertyAppearsExactlyOnce(t *testing.T) {
	g := triangle(t)
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{})
	assert.NoError(t, err)

	report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	seen := make(map[string]int)
	for _, p := range report.Properties {
		seen[p.Property]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "property %s appeared %d times", name, count)
	}
}

func TestValidateGraphProperties_StableCountAcrossRuns(t *testing.T) {
	g := triangle(t)
	spec, err := gspec.MakeGraphSpec(gspec.Overrides{})
	assert.NoError(t, err)

	r1 := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	r2 := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: g, Spec: spec})
	assert.Equal(t, len(r1.Properties), len(r2.Properties))
}

// TestRoundTrip_GenerateThenValidate is the central end-to-end claim this
// package exists to uphold: for every core GraphSpec permutation the
// constraint analyser does not mark impossible, generating from that spec
// and validating the result against the same spec must report Valid. Any
// spec combination that breaks this either needs a generator strategy that
// actually targets it, or a constraint.Adjustments relaxation wired into the
// validator that can't map cleanly onto the combination.
func TestRoundTrip_GenerateThenValidate(t *testing.T) {
	cfg := generate.Config{
		NodeCount: 10,
		NodeTypes: []generate.NodeTypeProportion{
			{Type: "a", Proportion: 0.5},
			{Type: "b", Proportion: 0.5},
		},
	}

	checked := 0
	for i, s := range gspec.GenerateCoreSpecPermutations() {
		if constraint.IsGraphSpecImpossible(s) {
			continue
		}
		cfg.Seed = int64(i)

		res, err := generate.GenerateGraph(s, cfg)
		if !assert.NoError(t, err, "generate %s", gspec.DescribeSpec(s)) {
			continue
		}

		report := validate.ValidateGraphProperties(gspec.SpecifiedGraph{Graph: res.Graph, Spec: res.Spec})
		if !assert.True(t, report.Valid, "generate(%s) did not validate: %v", gspec.DescribeSpec(s), report.Errors) {
			continue
		}
		checked++
	}
	assert.Greater(t, checked, 0, "expected at least one possible spec permutation to be checked")
}
