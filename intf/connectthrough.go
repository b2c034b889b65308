package intf

import "github.com/canopyhdl/topstitch/core"

// ConnectThrough connects a — an interface whose ports already exist
// directly on d — straight through to instName's interface b (defined on
// instName's own child definition), function by function, without
// creating any new ports. Useful for chaining an instance onto an
// interface d already exposes. Panics if b is not defined on instName's
// definition or a's functions are not a subset of b's.
func ConnectThrough(d *core.ModuleDefinition, a *core.Interface, instName string, b *core.Interface) {
	inst := d.GetInstance(instName)
	if b.Def() != inst.Def {
		abort(b.Name(), "ConnectThrough: interface %q is not defined on instance %q's definition", b.Name(), instName)
	}
	for _, fn := range a.Funcs() {
		if !b.HasFunc(fn) {
			abort(a.Name(), "ConnectThrough: function %q missing from interface %q", fn, b.Name())
		}
		d.Connect(a.Slice(fn), instanceView(d, instName, b.Slice(fn)))
	}
}
