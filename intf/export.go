package intf

import "github.com/canopyhdl/topstitch/core"

// instanceView re-expresses a slice of one of instName's child-definition
// ports as the equivalent ModInst-kind PortSlice seen from d.
func instanceView(d *core.ModuleDefinition, instName string, childSlice core.PortSlice) core.PortSlice {
	instPort := d.InstancePort(instName, childSlice.Port.Name())
	return core.PortSlice{Port: instPort, Msb: childSlice.Msb, Lsb: childSlice.Lsb}
}

// Export adds a new port on d for every function of iface — an interface
// defined on instName's own child definition — named exactly the
// function name, connects it straight through to the instance, and
// returns the new parent-level interface. Panics if iface is not defined
// on instName's definition, or a derived port name collides with an
// existing one of a different width.
func Export(d *core.ModuleDefinition, instName string, iface *core.Interface) *core.Interface {
	return ExportWithPrefix(d, instName, iface, "")
}

// ExportWithNameUnderscore is Export with every port name prefixed
// "<iface.Name()>_".
func ExportWithNameUnderscore(d *core.ModuleDefinition, instName string, iface *core.Interface) *core.Interface {
	return ExportWithPrefix(d, instName, iface, iface.Name()+"_")
}

// ExportWithPrefix is Export with every port name prefixed by prefix.
func ExportWithPrefix(d *core.ModuleDefinition, instName string, iface *core.Interface, prefix string) *core.Interface {
	inst := d.GetInstance(instName)
	if iface.Def() != inst.Def {
		abort(iface.Name(), "Export: interface %q is not defined on instance %q's definition", iface.Name(), instName)
	}

	out := d.NewInterface(instName + "_" + iface.Name())
	for _, fn := range iface.Funcs() {
		childSlice := iface.Slice(fn)
		portName := prefix + fn
		if !d.HasPort(portName) {
			d.AddPort(portName, childSlice.Port.Direction(), childSlice.Width())
		}
		parentSlice := core.Whole(d.GetPort(portName))
		if parentSlice.Width() != childSlice.Width() {
			abort(portName, "Export: existing port %q has width %d, interface function %q needs %d",
				portName, parentSlice.Width(), fn, childSlice.Width())
		}
		d.Connect(parentSlice, instanceView(d, instName, childSlice))
		out.Add(fn, parentSlice)
	}
	return out
}
