package intf

import "github.com/canopyhdl/topstitch/core"

// Feedthrough declares, for every function in shape, a fresh Input/Output
// port pair on d of the same width (core.Feedthrough lifted to a whole
// interface at once) and connects each pair directly. shape is consulted
// only for function names and widths; its own ports are untouched.
// Returns the new input-side and output-side interfaces.
func Feedthrough(d *core.ModuleDefinition, name string, shape *core.Interface, inPrefix, outPrefix string) (in, out *core.Interface) {
	in = d.NewInterface(name + "_in")
	out = d.NewInterface(name + "_out")
	for _, fn := range shape.Funcs() {
		w := shape.Slice(fn).Width()
		inName := inPrefix + fn
		outName := outPrefix + fn
		d.Feedthrough(inName, outName, w)
		in.Add(fn, core.Whole(d.GetPort(inName)))
		out.Add(fn, core.Whole(d.GetPort(outName)))
	}
	return in, out
}
