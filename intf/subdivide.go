package intf

import (
	"fmt"

	"github.com/canopyhdl/topstitch/core"
)

// Subdivide splits every function's slice in iface into n equal
// consecutive lanes (core.PortSlice.Subdivide) and registers n new
// interfaces named "<iface.Name()>_<i>" on iface's own definition, lane 0
// being the low end of each function's range.
func Subdivide(iface *core.Interface, n int) []*core.Interface {
	d := iface.Def()
	lanes := make(map[string][]core.PortSlice, iface.Len())
	for _, fn := range iface.Funcs() {
		lanes[fn] = iface.Slice(fn).Subdivide(n)
	}
	out := make([]*core.Interface, n)
	for i := 0; i < n; i++ {
		li := d.NewInterface(fmt.Sprintf("%s_%d", iface.Name(), i))
		for _, fn := range iface.Funcs() {
			li.Add(fn, lanes[fn][i])
		}
		out[i] = li
	}
	return out
}
