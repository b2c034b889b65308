package pipeline_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/pipeline"
	"github.com/canopyhdl/topstitch/validate"
)

// ConnectPipeline wires src (the source, a CanDrive-capable slice) through
// a delay element into dst (a Drivable slice) — exactly the roles
// Connect's own two internal calls require, so the tests here use a ModDef
// Input for src and a ModDef Output (or, through ConnectThroughGeneric, an
// instance Input) for dst, apart from the InOut rejection test.

func TestConnectPipelineWidthMismatchPanics(t *testing.T) {
	d := core.NewDef("Top")
	src := d.AddPort("src", core.Input, 8)
	dst := d.AddPort("dst", core.Output, 4)
	assert.Panics(t, func() {
		pipeline.ConnectPipeline(d, pipeline.Config{Depth: 1}, core.Whole(src), core.Whole(dst))
	})
}

func TestConnectPipelineDepthMustBePositive(t *testing.T) {
	d := core.NewDef("Top")
	src := d.AddPort("src", core.Input, 8)
	dst := d.AddPort("dst", core.Output, 8)
	assert.Panics(t, func() {
		pipeline.ConnectPipeline(d, pipeline.Config{Depth: 0}, core.Whole(src), core.Whole(dst))
	})
}

func TestConnectPipelineRejectsInOut(t *testing.T) {
	d := core.NewDef("Top")
	src := d.AddPort("src", core.InOut, 8)
	dst := d.AddPort("dst", core.Output, 8)
	assert.Panics(t, func() {
		pipeline.ConnectPipeline(d, pipeline.Config{Depth: 1}, core.Whole(src), core.Whole(dst))
	})
}

func TestConnectPipelineSucceedsAndValidates(t *testing.T) {
	d := core.NewDef("Top")
	src := d.AddPort("src", core.Input, 8)
	dst := d.AddPort("dst", core.Output, 8)

	name := pipeline.ConnectPipeline(d, pipeline.Config{Depth: 3}, core.Whole(src), core.Whole(dst))
	assert.Equal(t, "pipeline_conn", name)

	// clk is auto-added since cfg.Clk is empty and Top has none yet.
	require.True(t, d.HasPort("clk"))
	assert.Equal(t, core.Input, d.PortDirection("clk"))
	assert.True(t, d.HasInstance(name))

	require.NoError(t, validate.Validate(d))
}

func TestConnectPipelineReusesExistingClk(t *testing.T) {
	d := core.NewDef("Top")
	d.AddPort("sys_clk", core.Input, 1)
	src := d.AddPort("src", core.Input, 4)
	dst := d.AddPort("dst", core.Output, 4)

	pipeline.ConnectPipeline(d, pipeline.Config{Depth: 1, Clk: "sys_clk"}, core.Whole(src), core.Whole(dst))

	// No second clk-like port was invented.
	assert.False(t, d.HasPort("clk"))
	require.NoError(t, validate.Validate(d))
}

func TestConnectPipelineInstanceNameCollision(t *testing.T) {
	d := core.NewDef("Top")
	a := d.AddPort("a", core.Input, 4)
	b := d.AddPort("b", core.Output, 4)
	c := d.AddPort("c", core.Input, 4)
	e := d.AddPort("e", core.Output, 4)

	first := pipeline.ConnectPipeline(d, pipeline.Config{Depth: 1}, core.Whole(a), core.Whole(b))
	second := pipeline.ConnectPipeline(d, pipeline.Config{Depth: 1}, core.Whole(c), core.Whole(e))

	assert.Equal(t, "pipeline_conn", first)
	assert.Equal(t, "pipeline_conn_2", second)
}

func TestCrossoverPipelineWiresMatchedBuckets(t *testing.T) {
	d := core.NewDef("Top")
	// wirePipelineBucket always plays the "from" map as src (CanDrive) and
	// the "to" map as dst (Drivable), regardless of which pattern matched:
	// every a-side port is a src, every b-side port is a dst.
	d.AddPort("a_req_x", core.Input, 1)
	d.AddPort("a_ack_x", core.Input, 1)
	d.AddPort("b_req_x", core.Output, 1)
	d.AddPort("b_ack_x", core.Output, 1)

	a := d.DefIntfFromPrefixes("a", []string{"a_"}, true)
	b := d.DefIntfFromPrefixes("b", []string{"b_"}, true)

	reqPattern := regexp.MustCompile(`^req_(.+)$`)
	ackPattern := regexp.MustCompile(`^ack_(.+)$`)

	pipeline.CrossoverPipeline(d, pipeline.Config{Depth: 2}, a, b, reqPattern, ackPattern)
	require.NoError(t, validate.Validate(d))
}

func TestCrossoverPipelineNoCounterpartPanics(t *testing.T) {
	d := core.NewDef("Top")
	d.AddPort("a_req_x", core.Input, 1)
	d.AddPort("b_req_y", core.Output, 1)

	a := d.DefIntfFromPrefixes("a", []string{"a_"}, true)
	b := d.DefIntfFromPrefixes("b", []string{"b_"}, true)

	reqPattern := regexp.MustCompile(`^req_(.+)$`)
	ackPattern := regexp.MustCompile(`^ack_(.+)$`)

	assert.Panics(t, func() {
		pipeline.CrossoverPipeline(d, pipeline.Config{Depth: 1}, a, b, reqPattern, ackPattern)
	})
}

func TestConnectThroughGeneric(t *testing.T) {
	child := core.NewDef("Child")
	childIn := child.AddPort("in", core.Input, 4)
	child.Unused(core.Whole(childIn))

	top := core.NewDef("Top")
	src := top.AddPort("src", core.Input, 4)
	top.Instantiate(child, "child_i", nil)

	pipeline.ConnectThroughGeneric(top, pipeline.Config{Depth: 1}, core.Whole(src), "child_i", core.Whole(childIn))
	require.NoError(t, validate.Validate(top))
}
