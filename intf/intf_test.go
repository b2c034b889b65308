package intf_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/intf"
	"github.com/canopyhdl/topstitch/validate"
)

// complementaryInterfaces builds two interfaces directly on top, "a" and
// "b", whose functions have complementary directions (an Output on one
// side pairs with an Input of the same width on the other).
func complementaryInterfaces(t *testing.T, fns map[string]int, aExtra, bExtra map[string]int) (top *core.ModuleDefinition, a, b *core.Interface) {
	t.Helper()
	top = core.NewDef("Top")
	for fn, w := range fns {
		top.AddPort("a_"+fn, core.Output, w)
		top.AddPort("b_"+fn, core.Input, w)
	}
	for fn, w := range aExtra {
		// ModDef Output is Drivable (needs a driver); with no counterpart
		// on b it will never be connected, so tie it off instead (Unused
		// is not legal on a ModDef Output).
		top.AddPort("a_only_"+fn, core.Output, w)
		top.Tieoff(core.Whole(top.GetPort("a_only_"+fn)), core.NewBigValue(0))
	}
	for fn, w := range bExtra {
		// ModDef Input is CanDrive-only (needs a consumer or an explicit
		// Unused mark; Tieoff is not legal on a ModDef Input).
		top.AddPort("b_only_"+fn, core.Input, w)
		top.Unused(core.Whole(top.GetPort("b_only_" + fn)))
	}
	a = top.DefIntfFromPrefixes("a", []string{"a_"}, true)
	b = top.DefIntfFromPrefixes("b", []string{"b_"}, true)
	return top, a, b
}

func TestConnectMatchingInterfaces(t *testing.T) {
	top, a, b := complementaryInterfaces(t, map[string]int{"valid": 1, "data": 8}, nil, nil)
	intf.Connect(top, a, b, false)
	require.NoError(t, validate.Validate(top))
}

func TestConnectMismatchPanicsWithoutAllowMismatch(t *testing.T) {
	top, a, b := complementaryInterfaces(t, map[string]int{"valid": 1}, map[string]int{"extra": 1}, nil)
	assert.Panics(t, func() { intf.Connect(top, a, b, false) })
}

func TestConnectAllowMismatchSkipsUnmatched(t *testing.T) {
	top, a, b := complementaryInterfaces(t, map[string]int{"valid": 1}, map[string]int{"extra": 1}, nil)
	assert.NotPanics(t, func() { intf.Connect(top, a, b, true) })
	require.NoError(t, validate.Validate(top))
}

func TestConnectExceptSkipsNamedFunctions(t *testing.T) {
	top, a, b := complementaryInterfaces(t, map[string]int{"valid": 1, "data": 8}, nil, nil)
	// "data" is skipped on both sides, so it must be separately handled to
	// pass validation: a_data (Output, Drivable) is tied off, b_data
	// (Input, CanDrive-only) is marked unused.
	top.Tieoff(core.Whole(top.GetPort("a_data")), core.NewBigValue(0))
	top.Unused(core.Whole(top.GetPort("b_data")))
	intf.ConnectExcept(top, a, b, []string{"data"}, false)
	require.NoError(t, validate.Validate(top))
}

func TestTieoffIgnoresDrivingSlices(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4) // drivable, tieoff-able
	top.AddPort("in", core.Input, 4)   // driving, not tieoff-able
	iface := top.DefIntfFromPrefixes("i", []string{""}, false)

	intf.Tieoff(iface, core.NewBigValue(5))

	require.Len(t, top.Tieoffs(), 1)
	assert.Equal(t, "out", top.Tieoffs()[0].Slice.Port.Name())
}

func TestUnusedIgnoresDrivenSlices(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4) // drivable, not unused-able
	top.AddPort("in", core.Input, 4)   // driving, unused-able
	iface := top.DefIntfFromPrefixes("i", []string{""}, false)

	intf.Unused(iface)

	require.Len(t, top.UnusedMarks(), 1)
	assert.Equal(t, "in", top.UnusedMarks()[0].Port.Name())
}

func TestSubdivide(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("data", core.Output, 8)
	iface := top.DefIntfFromPrefixes("bus", []string{""}, false)

	lanes := intf.Subdivide(iface, 2)
	require.Len(t, lanes, 2)
	assert.Equal(t, 4, lanes[0].Slice("data").Width())
	assert.Equal(t, 0, lanes[0].Slice("data").Lsb)
	assert.Equal(t, 4, lanes[1].Slice("data").Lsb)
}

func TestFeedthrough(t *testing.T) {
	shape := core.NewDef("Shape")
	shape.AddPort("a", core.Output, 4)
	shapeIface := shape.DefIntfFromPrefixes("i", []string{""}, false)

	top := core.NewDef("Top")
	in, out := intf.Feedthrough(top, "ft", shapeIface, "in_", "out_")

	require.True(t, top.HasPort("in_a"))
	require.True(t, top.HasPort("out_a"))
	assert.Equal(t, core.Input, top.PortDirection("in_a"))
	assert.Equal(t, core.Output, top.PortDirection("out_a"))
	assert.Equal(t, 4, in.Slice("a").Width())
	assert.Equal(t, 4, out.Slice("a").Width())
}

func TestExportFromInstance(t *testing.T) {
	child := core.NewDef("Child")
	cq := child.AddPort("q", core.Output, 4)
	child.Tieoff(core.Whole(cq), core.NewBigValue(0))
	childIface := child.DefIntfFromPrefixes("i", []string{""}, false)

	top := core.NewDef("Top")
	top.Instantiate(child, "child_i", nil)

	exported := intf.Export(top, "child_i", childIface)
	assert.True(t, top.HasPort("q"))
	assert.Equal(t, core.Output, top.PortDirection("q"))
	assert.Equal(t, 4, exported.Slice("q").Width())

	// Export's own internal connect already satisfies both the parent's
	// new Output port (Drivable, driven by the instance) and the
	// instance's own Output port (CanDrive, consumed by the parent).
	require.NoError(t, validate.Validate(top))
}

func TestConnectThroughDirect(t *testing.T) {
	child := core.NewDef("Child")
	ca := child.AddPort("a", core.Input, 4)
	child.Unused(core.Whole(ca))
	childIface := child.DefIntfFromPrefixes("i", []string{""}, false)

	top := core.NewDef("Top")
	top.AddPort("a", core.Input, 4)
	topIface := top.DefIntfFromPrefixes("i", []string{""}, false)
	top.Instantiate(child, "child_i", nil)

	intf.ConnectThrough(top, topIface, "child_i", childIface)
	require.NoError(t, validate.Validate(top))
}

func TestCrossoverBucketsByCapturedGroup(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("a_req_x", core.Output, 1)
	top.AddPort("a_ack_x", core.Input, 1)
	top.AddPort("b_req_x", core.Output, 1)
	top.AddPort("b_ack_x", core.Input, 1)

	a := top.DefIntfFromPrefixes("a", []string{"a_"}, true)
	b := top.DefIntfFromPrefixes("b", []string{"b_"}, true)

	reqPattern := regexp.MustCompile(`^req_(.+)$`)
	ackPattern := regexp.MustCompile(`^ack_(.+)$`)
	intf.Crossover(top, a, b, reqPattern, ackPattern)

	require.NoError(t, validate.Validate(top))
}

func TestCrossoverNoCounterpartPanics(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("a_req_x", core.Output, 1)
	top.AddPort("b_req_y", core.Input, 1)

	a := top.DefIntfFromPrefixes("a", []string{"a_"}, true)
	b := top.DefIntfFromPrefixes("b", []string{"b_"}, true)

	reqPattern := regexp.MustCompile(`^req_(.+)$`)
	ackPattern := regexp.MustCompile(`^ack_(.+)$`)
	assert.Panics(t, func() { intf.Crossover(top, a, b, reqPattern, ackPattern) })
}
