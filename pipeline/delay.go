package pipeline

import (
	"sync"

	"github.com/canopyhdl/topstitch/core"
)

// DelayElementName is the module name of the opaque pipeline register
// element this package instantiates.
const DelayElementName = "br_delay_nr"

// delayDefCache memoizes one ModuleDefinition per distinct (width, depth)
// pair: each carries its own Width/NumStages parameter values, so distinct
// parameterizations need distinct definitions (spec §4.1's own
// Parameterize does the same). Guarded by delayDefMu since independent
// module graphs built concurrently on separate threads (spec §5) may
// both reach for the same (width, depth) pair.
var (
	delayDefMu    sync.Mutex
	delayDefCache = map[[2]int]*core.ModuleDefinition{}
)

func delayElementDef(width, depth int) *core.ModuleDefinition {
	key := [2]int{width, depth}

	delayDefMu.Lock()
	defer delayDefMu.Unlock()
	if d, ok := delayDefCache[key]; ok {
		return d
	}
	d := core.NewDef(DelayElementName)
	d.AddPort("clk", core.Input, 1)
	d.AddPort("in", core.Input, width)
	d.AddPort("out", core.Output, width)
	d.AddPort("out_stages", core.Output, width*depth)
	d.SetVerilogOrigin(&core.VerilogOrigin{
		ModuleName: DelayElementName,
		Source:     "<builtin br_delay_nr>",
		Params:     map[string]int64{"Width": int64(width), "NumStages": int64(depth)},
	})
	d.SetParameter("Width", int64(width))
	d.SetParameter("NumStages", int64(depth))
	d.SetUsage(core.EmitDefinitionAndStop)
	delayDefCache[key] = d
	return d
}
