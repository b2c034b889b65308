package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/canopyhdl/topstitch/core"
)

// Config configures how pipeline registers are inserted.
type Config struct {
	Clk      string // name of the 1-bit clock port on the parent; added if absent
	Depth    int    // number of pipeline register stages, >= 1
	InstName string // base instance name; "" uses the default scheme
}

func nextInstName(d *core.ModuleDefinition, base string) string {
	if base == "" {
		base = "pipeline_conn"
	}
	if !d.HasInstance(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !d.HasInstance(candidate) {
			return candidate
		}
	}
}

// clkPort returns d's clock input of the given name, adding a fresh
// 1-bit Input if d does not already declare one (spec §4.9 step 3).
func clkPort(d *core.ModuleDefinition, name string) core.Port {
	if name == "" {
		name = "clk"
	}
	if d.HasPort(name) {
		return d.GetPort(name)
	}
	return d.AddPort(name, core.Input, 1)
}

// ConnectPipeline drives dst from src through cfg.Depth cycles of delay
// (spec §4.9): it instantiates one br_delay_nr(Width=src.Width(),
// NumStages=cfg.Depth), wires src into its "in", its "out" into dst,
// cfg.Clk (added to d if not already present) into its "clk", and marks
// its "out_stages" unused. Returns the instance name used (derived from
// cfg.InstName, or "pipeline_conn" with a numeric suffix on collision).
// Panics if src and dst are not equal-width, cfg.Depth < 1, or either
// slice is an InOut (pipelining an InOut is a fatal semantic error).
func ConnectPipeline(d *core.ModuleDefinition, cfg Config, src, dst core.PortSlice) string {
	if src.Width() != dst.Width() {
		abort(src.QualifiedName(), "ConnectPipeline: width %d != %d (%s)", src.Width(), dst.Width(), dst.QualifiedName())
	}
	if cfg.Depth < 1 {
		abort(src.QualifiedName(), "ConnectPipeline: depth must be >= 1, got %d", cfg.Depth)
	}
	if src.Port.Direction() == core.InOut || dst.Port.Direction() == core.InOut {
		abort(src.QualifiedName(), "ConnectPipeline: cannot pipeline an InOut slice")
	}

	def := delayElementDef(src.Width(), cfg.Depth)
	name := nextInstName(d, cfg.InstName)
	d.Instantiate(def, name, nil)

	clk := clkPort(d, cfg.Clk)
	d.Connect(src, core.Whole(d.InstancePort(name, "in")))
	d.Connect(core.Whole(d.InstancePort(name, "out")), dst)
	d.Connect(core.Whole(clk), core.Whole(d.InstancePort(name, "clk")))
	d.Unused(core.Whole(d.InstancePort(name, "out_stages")))
	return name
}

// CrossoverPipeline is intf.Crossover generalized to insert a pipeline
// stage on every connection instead of connecting directly: functions are
// bucketed by patternA/patternB exactly as intf.Crossover does, and each
// matched pair is wired through its own pipeline stage.
func CrossoverPipeline(d *core.ModuleDefinition, cfg Config, a, b *core.Interface, patternA, patternB *regexp.Regexp) {
	aA, aB := bucketFuncs(a, patternA, patternB)
	bA, bB := bucketFuncs(b, patternA, patternB)
	wirePipelineBucket(d, cfg, aA, bB)
	wirePipelineBucket(d, cfg, aB, bA)
}

func bucketFuncs(iface *core.Interface, patternA, patternB *regexp.Regexp) (aBucket, bBucket map[string]core.PortSlice) {
	aBucket = map[string]core.PortSlice{}
	bBucket = map[string]core.PortSlice{}
	for _, fn := range iface.Funcs() {
		if m := patternA.FindStringSubmatch(fn); m != nil {
			aBucket[joinGroups(m)] = iface.Slice(fn)
			continue
		}
		if m := patternB.FindStringSubmatch(fn); m != nil {
			bBucket[joinGroups(m)] = iface.Slice(fn)
		}
	}
	return aBucket, bBucket
}

func joinGroups(m []string) string {
	if len(m) <= 1 {
		return ""
	}
	return strings.Join(m[1:], "_")
}

func wirePipelineBucket(d *core.ModuleDefinition, cfg Config, from, to map[string]core.PortSlice) {
	for key, s := range from {
		t, ok := to[key]
		if !ok {
			abort(s.QualifiedName(), "CrossoverPipeline: no counterpart for key %q", key)
		}
		ConnectPipeline(d, cfg, s, t)
	}
}

// ConnectThroughGeneric is intf.ConnectThrough generalized to a single
// bare PortSlice pair instead of a whole interface, with a pipeline stage
// inserted on the connection: src (already on d) is driven through
// cfg.Depth cycles of delay into instName's childSlice (a slice of
// instName's own child definition).
func ConnectThroughGeneric(d *core.ModuleDefinition, cfg Config, src core.PortSlice, instName string, childSlice core.PortSlice) string {
	instPort := d.InstancePort(instName, childSlice.Port.Name())
	dst := core.PortSlice{Port: instPort, Msb: childSlice.Msb, Lsb: childSlice.Lsb}
	return ConnectPipeline(d, cfg, src, dst)
}
