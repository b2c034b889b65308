package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/resolve"
)

func TestResolveSingleDriverWholeWidth(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 8)
	in := top.AddPort("in", core.Input, 8)
	top.Connect(core.Whole(out), core.Whole(in))

	chunks := resolve.Resolve(out, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, resolve.FromDriver, chunks[0].Kind)
	assert.Equal(t, 7, chunks[0].Msb)
	assert.Equal(t, 0, chunks[0].Lsb)
	assert.Equal(t, in, chunks[0].Driver.Port)
}

func TestResolveTieoffMerge(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 8)
	top.Tieoff(core.Slice(out, 7, 4), core.NewBigValue(0xA))
	top.Tieoff(core.Slice(out, 3, 0), core.NewBigValue(0x5))

	chunks := resolve.Resolve(out, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, resolve.FromTieoff, chunks[0].Kind)
	assert.Equal(t, "a5", chunks[0].Tieoff.Text())
}

func TestResolveConflictingTieoffPanics(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 4)
	top.Tieoff(core.Whole(out), core.NewBigValue(1))
	out2 := top.AddPort("out2", core.Output, 4) // separate port, not relevant
	_ = out2
	// Force two conflicting tieoffs directly via OwnerDef is not exposed;
	// instead drive a real conflict: a tied-off range that's also driven.
	in := top.AddPort("in", core.Input, 4)
	top.Connect(core.Whole(out), core.Whole(in))
	assert.Panics(t, func() { resolve.Resolve(out, nil) })
}

func TestResolveNoDriverPanics(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 4)
	// A port with no connections at all yields no chunks (gaps are
	// validate's concern); a range carrying only a wire name override is a
	// chunk with no driver, tieoff or unused mark.
	top.SpecifyNetName(core.Whole(out), "n")
	assert.Panics(t, func() { resolve.Resolve(out, nil) })
}

func TestResolveUnusedChunk(t *testing.T) {
	top := core.NewDef("Top")
	in := top.AddPort("in", core.Input, 4)
	top.Unused(core.Whole(in))

	chunks := resolve.Resolve(in, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, resolve.FromUnused, chunks[0].Kind)
}

func TestResolveModDefDriverOutranksInstanceDriver(t *testing.T) {
	child := core.NewDef("Child")
	child.AddPort("q", core.Output, 4)

	top := core.NewDef("Top")
	topIn := top.AddPort("top_in", core.Input, 4)
	dst := top.AddPort("dst", core.Output, 4)
	inst := top.Instantiate(child, "child_i", nil)
	_ = inst

	// Both top_in (ModDef Input -> CanDrive) and child_i.q (ModInst Output
	// -> CanDrive) connect to dst (ModDef Output -> Drivable). The ModDef
	// driver must prevail per §4.5 rule 3.
	top.Connect(core.Whole(topIn), core.Whole(dst))
	top.Connect(core.Whole(top.InstancePort("child_i", "q")), core.Whole(dst))

	chunks := resolve.Resolve(dst, nil)
	require.Len(t, chunks, 1)
	assert.True(t, chunks[0].Driver.Port.IsModDef())
	assert.Equal(t, "top_in", chunks[0].Driver.Port.Name())
}

func TestResolveTwoModDefDriversConflict(t *testing.T) {
	top := core.NewDef("Top")
	a := top.AddPort("a", core.Input, 4)
	b := top.AddPort("b", core.Input, 4)
	dst := top.AddPort("dst", core.Output, 4)
	top.Connect(core.Whole(a), core.Whole(dst))
	top.Connect(core.Whole(b), core.Whole(dst))

	assert.Panics(t, func() { resolve.Resolve(dst, nil) })
}

func TestResolveTwoInstanceOutputDriversConflict(t *testing.T) {
	childA := core.NewDef("ChildA")
	childA.AddPort("q", core.Output, 4)
	childB := core.NewDef("ChildB")
	childB.AddPort("q", core.Output, 4)

	top := core.NewDef("Top")
	top.Instantiate(childA, "a_i", nil)
	top.Instantiate(childB, "b_i", nil)
	dst := top.AddPort("dst", core.Output, 4)
	top.Connect(core.Whole(top.InstancePort("a_i", "q")), core.Whole(dst))
	top.Connect(core.Whole(top.InstancePort("b_i", "q")), core.Whole(dst))

	// Two instance Output drivers on the same bits with no ModDef driver
	// is a conflict; the lexicographic tie-break does not apply to them.
	assert.Panics(t, func() { resolve.Resolve(dst, nil) })
}

func TestResolveMergesAdjacentDriverChunks(t *testing.T) {
	top := core.NewDef("Top")
	src := top.AddPort("src", core.Output, 8)
	dst := top.AddPort("dst", core.Input, 8)
	top.Connect(core.Slice(src, 7, 4), core.Slice(dst, 7, 4))
	top.Connect(core.Slice(src, 3, 0), core.Slice(dst, 3, 0))

	chunks := resolve.Resolve(src, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, 7, chunks[0].Driver.Msb)
	assert.Equal(t, 0, chunks[0].Driver.Lsb)
}

func TestResolveWireNameOverride(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 4)
	in := top.AddPort("in", core.Input, 4)
	top.Connect(core.Whole(out), core.Whole(in))
	top.SpecifyNetName(core.Whole(out), "my_net")

	chunks := resolve.Resolve(out, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, "my_net", chunks[0].WireName)
}
