package core

// AddPort declares a new port on d and returns a handle to it. Panics if
// name already exists on d or d is frozen.
func (d *ModuleDefinition) AddPort(name string, dir Direction, width int) Port {
	if d.frozen {
		abort(d.name, ErrFrozen, "AddPort(%s): definition is frozen", name)
	}
	if d.ports.Has(name) {
		abort(d.name+"."+name, ErrNameCollision, "port already exists")
	}
	if width < 1 {
		abort(d.name+"."+name, ErrRange, "width must be >= 1, got %d", width)
	}
	d.ports.Set(name, &portRecord{Dir: dir, Width: width})
	return Port{kind: kindModDef, parent: d.weak(), name: name}
}

// HasPort reports whether d declares a port with this name directly.
func (d *ModuleDefinition) HasPort(name string) bool { return d.ports.Has(name) }

// GetPort returns a handle to an existing port of d. Panics if absent.
func (d *ModuleDefinition) GetPort(name string) Port {
	if !d.ports.Has(name) {
		abort(d.name+"."+name, ErrNotFound, "no such port")
	}
	return Port{kind: kindModDef, parent: d.weak(), name: name}
}

// GetPorts returns every port name declared directly on d, in declaration
// order.
func (d *ModuleDefinition) GetPorts() []string { return d.ports.Keys() }

// PortDirection returns the direction of a port declared directly on d.
func (d *ModuleDefinition) PortDirection(name string) Direction {
	rec, ok := d.ports.Get(name)
	if !ok {
		abort(d.name+"."+name, ErrNotFound, "no such port")
	}
	return rec.Dir
}

// PortWidth returns the width of a port declared directly on d.
func (d *ModuleDefinition) PortWidth(name string) int {
	rec, ok := d.ports.Get(name)
	if !ok {
		abort(d.name+"."+name, ErrNotFound, "no such port")
	}
	return rec.Width
}
