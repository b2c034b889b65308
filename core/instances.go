package core

import "fmt"

// Instantiate adds a new instance of child inside d, named instName (or
// "<child.Name()>_i" if instName is ""). autoconnect lists port names to
// wire directly between d and the new instance: for each name, if d lacks
// a same-named port it is added with the child's direction and width;
// then the two are connected. Panics if instName is already used, d is
// frozen, or a name in autoconnect is not a port of child.
func (d *ModuleDefinition) Instantiate(child *ModuleDefinition, instName string, autoconnect []string) *Instance {
	if d.frozen {
		abort(d.name, ErrFrozen, "Instantiate: definition is frozen")
	}
	if instName == "" {
		instName = child.name + "_i"
	}
	if d.instances.Has(instName) {
		abort(d.name+"."+instName, ErrNameCollision, "instance already exists")
	}
	inst := &Instance{Name: instName, Def: child, parent: d.weak()}
	d.instances.Set(instName, inst)

	for _, name := range autoconnect {
		if !child.ports.Has(name) {
			abort(d.name+"."+instName+"."+name, ErrNotFound, "autoconnect: no such port on child")
		}
		rec, _ := child.ports.Get(name)
		if !d.ports.Has(name) {
			d.AddPort(name, rec.Dir, rec.Width)
		}
		parentPort := d.GetPort(name)
		instPort := Port{kind: kindModInst, parent: d.weak(), inst: instName, name: name}
		d.Connect(Whole(parentPort), Whole(instPort))
	}

	return inst
}

// InstanceArrayDim is one dimension of an InstantiateArray Cartesian
// product, iterating i in [0, Count).
type InstanceArrayDim struct {
	Count int
}

// InstantiateArray instantiates child once per element of the Cartesian
// product of dims, naming each "<prefix>_<i0>_<i1>_...". prefix defaults
// to "<child.Name()>_i" if "".
func (d *ModuleDefinition) InstantiateArray(child *ModuleDefinition, dims []InstanceArrayDim, prefix string, autoconnect []string) []*Instance {
	if prefix == "" {
		prefix = child.name + "_i"
	}
	if len(dims) == 0 {
		return []*Instance{d.Instantiate(child, prefix, autoconnect)}
	}
	var out []*Instance
	idx := make([]int, len(dims))
	for {
		name := prefix
		for _, i := range idx {
			name += fmt.Sprintf("_%d", i)
		}
		out = append(out, d.Instantiate(child, name, autoconnect))

		k := len(dims) - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < dims[k].Count {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}
	return out
}

// HasInstance reports whether d has a direct instance with this name.
func (d *ModuleDefinition) HasInstance(name string) bool { return d.instances.Has(name) }

// GetInstance returns the named instance. Panics if absent.
func (d *ModuleDefinition) GetInstance(name string) *Instance {
	inst, ok := d.instances.Get(name)
	if !ok {
		abort(d.name+"."+name, ErrNotFound, "no such instance")
	}
	return inst
}

// GetInstances returns every instance name, in instantiation order.
func (d *ModuleDefinition) GetInstances() []string { return d.instances.Keys() }

// InstancePort returns a handle to a port of one of d's instances.
func (d *ModuleDefinition) InstancePort(instName, portName string) Port {
	inst := d.GetInstance(instName)
	if !inst.Def.ports.Has(portName) {
		abort(d.name+"."+instName+"."+portName, ErrNotFound, "no such port on instance")
	}
	return Port{kind: kindModInst, parent: d.weak(), inst: instName, name: portName}
}

// Feedthrough declares a new Input in_name and Output out_name, both of
// the given width, and connects them directly.
func (d *ModuleDefinition) Feedthrough(inName, outName string, width int) {
	in := d.AddPort(inName, Input, width)
	out := d.AddPort(outName, Output, width)
	d.Connect(Whole(in), Whole(out))
}
