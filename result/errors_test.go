package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/result"
)

func TestNew_FormatsMessage(t *testing.T) {
	err := result.New(result.InvalidWeight, "weight %g is negative", -1.5)
	assert.Equal(t, "invalid-weight: weight -1.5 is negative", err.Error())
}

func TestErrorIs_MatchesSentinel(t *testing.T) {
	err := result.New(result.NodeNotFound, "node %q missing", "x").WithNode("x")
	assert.ErrorIs(t, err, result.ErrNodeNotFound)
	assert.NotErrorIs(t, err, result.ErrDuplicateNode)
}

func TestWithCycle_CopiesPath(t *testing.T) {
	path := []string{"a", "b", "c"}
	err := result.New(result.CycleDetected, "cycle found").WithCycle(path)
	path[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, err.CyclePath)
}

func TestErrorsAs_RecoversStruct(t *testing.T) {
	var target *result.Error
	err := result.New(result.InvalidRadius, "radius must be >= 0").WithNode("n1")
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "n1", target.NodeID)
	assert.Equal(t, result.InvalidRadius, target.Kind)
}
