package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/validate"
)

func TestValidateFullyConnectedPasses(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 4)
	in := top.AddPort("in", core.Input, 4)
	top.Connect(core.Whole(out), core.Whole(in))

	err := validate.Validate(top)
	require.NoError(t, err)
}

func TestValidateReportsGap(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4) // never driven

	err := validate.Validate(top)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrGap))
}

func TestValidateReportsUnconsumed(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("in", core.Input, 4) // never traced or marked unused

	err := validate.Validate(top)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrUnconsumed))
}

func TestValidateUnusedMarkSatisfiesCanDrive(t *testing.T) {
	top := core.NewDef("Top")
	in := top.AddPort("in", core.Input, 4)
	top.Unused(core.Whole(in))

	err := validate.Validate(top)
	require.NoError(t, err)
}

func TestValidateSkipsNonDescendDefinitions(t *testing.T) {
	leaf := core.NewDef("Leaf")
	leaf.AddPort("out", core.Output, 4) // would be a gap, but never checked
	leaf.SetUsage(core.EmitDefinitionAndStop)

	top := core.NewDef("Top")
	top.Instantiate(leaf, "leaf_i", nil)
	// Top's own view of the instance port is still checked.
	top.Unused(core.Whole(top.InstancePort("leaf_i", "out")))

	err := validate.Validate(top)
	require.NoError(t, err)
}

func TestValidateDescendsIntoChildren(t *testing.T) {
	leaf := core.NewDef("Leaf")
	leaf.AddPort("out", core.Output, 4) // gap: never driven, and Usage defaults to Descend

	top := core.NewDef("Top")
	top.Instantiate(leaf, "leaf_i", nil)

	err := validate.Validate(top)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrGap))
}

func TestMustValidatePanicsOnFailure(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4)
	assert.Panics(t, func() { validate.MustValidate(top) })
}

func TestTryValidateReturnsErrorInsteadOfPanicking(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4)
	err := validate.TryValidate(top)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalid))
}

func TestValidateAggregatesMultipleFindings(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out1", core.Output, 4)
	top.AddPort("out2", core.Output, 4)

	err := validate.Validate(top)
	require.Error(t, err)
	// Both gaps should be reported, not just the first.
	assert.Contains(t, err.Error(), "out1")
	assert.Contains(t, err.Error(), "out2")
}
