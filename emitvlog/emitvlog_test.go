package emitvlog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhdl/topstitch/builder"
	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/emitvlog"
	"github.com/canopyhdl/topstitch/vlogimport"
)

func TestEmitDirectAssign(t *testing.T) {
	top := core.NewDef("Top")
	out := top.AddPort("out", core.Output, 8)
	in := top.AddPort("in", core.Input, 8)
	top.Connect(core.Whole(in), core.Whole(out))

	text, err := emitvlog.Emit(top)
	require.NoError(t, err)
	assert.Contains(t, text, "module Top (")
	assert.Contains(t, text, "assign out = in;")
	assert.Contains(t, text, "endmodule")
}

func TestEmitFailsValidationIsWrapped(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4) // never driven

	_, err := emitvlog.Emit(top)
	require.Error(t, err)
	assert.True(t, errors.Is(err, emitvlog.ErrValidation))
}

func TestMustEmitPanicsOnFailedValidation(t *testing.T) {
	top := core.NewDef("Top")
	top.AddPort("out", core.Output, 4)
	assert.Panics(t, func() { emitvlog.MustEmit(top) })
}

func TestEmitOneWirePerInstanceDriverFanout(t *testing.T) {
	child := core.NewDef("Child")
	cq := child.AddPort("q", core.Output, 4)
	child.Tieoff(core.Whole(cq), core.NewBigValue(0))

	top := core.NewDef("Top")
	out1 := top.AddPort("out1", core.Output, 4)
	out2 := top.AddPort("out2", core.Output, 4)
	top.Instantiate(child, "child_i", nil)

	q := top.InstancePort("child_i", "q")
	top.Connect(core.Whole(q), core.Whole(out1))
	top.Connect(core.Whole(q), core.Whole(out2))

	text, err := emitvlog.Emit(top)
	require.NoError(t, err)
	assert.Contains(t, text, "wire [3:0] child_i_q;")
	assert.Contains(t, text, "assign out1 = child_i_q;")
	assert.Contains(t, text, "assign out2 = child_i_q;")
	assert.Contains(t, text, ".q(child_i_q)")
}

func TestEmitStubRendersHeaderOnly(t *testing.T) {
	orig := core.NewDef("Orig")
	orig.AddPort("clk", core.Input, 1)
	orig.AddPort("out", core.Output, 4)

	stub := builder.Stub(orig, "OrigStub")

	top := core.NewDef("Top")
	top.AddPort("clk", core.Input, 1)
	top.AddPort("out", core.Output, 4)
	top.Instantiate(stub, "stub_i", []string{"clk", "out"})

	text, err := emitvlog.Emit(top)
	require.NoError(t, err)
	assert.Contains(t, text, "module OrigStub (")
	// A stub body has no assigns and stops right after its port list.
	idx := indexOf(text, "module OrigStub (")
	assert.Contains(t, text[idx:], "endmodule")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

const paramSource = `
module Cell #(
  parameter W = 8
) (
  input wire [W-1:0] a,
  output wire [W-1:0] y
);
endmodule
`

func TestEmitRendersSortedParamOverrides(t *testing.T) {
	orig := vlogimport.Import(paramSource)
	_ = orig
	cellA := vlogimport.Import(`
module Cell2 #(
  parameter W = 8,
  parameter B = 2
) (
  input wire [W-1:0] a,
  output wire [W-1:0] y
);
endmodule
`)
	wrapper := builder.Parameterize(cellA, map[string]int64{"W": 16, "B": 4})

	top := core.NewDef("Top")
	top.AddPort("a", core.Input, 16)
	top.AddPort("y", core.Output, 16)
	top.Instantiate(wrapper, "wrap_i", []string{"a", "y"})

	text, err := emitvlog.Emit(top)
	require.NoError(t, err)
	// Params are rendered alphabetically: B before W.
	bIdx := indexOf(text, ".B(")
	wIdx := indexOf(text, ".W(")
	require.NotEqual(t, -1, bIdx)
	require.NotEqual(t, -1, wIdx)
	assert.Less(t, bIdx, wIdx)
}
