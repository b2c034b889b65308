package emitvlog

import (
	"math/big"
	"sort"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/resolve"
	"github.com/canopyhdl/topstitch/sv"
	"github.com/sirupsen/logrus"
)

// collectOrder returns root and every distinct definition reachable from
// it, root first, in first-encounter (depth-first) order. Descent into a
// definition's own instances stops wherever that definition's own Usage
// is not EmitDefinitionAndDescend (spec §4.10's own traversal gate,
// mirrored here so emission and validation agree on what "reachable"
// means).
func collectOrder(root *core.ModuleDefinition) []*core.ModuleDefinition {
	seen := map[*core.ModuleDefinition]bool{}
	var order []*core.ModuleDefinition
	var walk func(d *core.ModuleDefinition)
	walk = func(d *core.ModuleDefinition) {
		if seen[d] {
			return
		}
		seen[d] = true
		order = append(order, d)
		if d.Usage() != core.EmitDefinitionAndDescend {
			return
		}
		for _, in := range d.GetInstances() {
			walk(d.GetInstance(in).Def)
		}
	}
	walk(root)
	return order
}

func svDir(d core.Direction) sv.Direction {
	switch d {
	case core.Output:
		return sv.Output
	case core.InOut:
		return sv.InOut
	default:
		return sv.Input
	}
}

// buildModule renders one definition to its sv AST form. A definition
// with Usage EmitStubAndStop gets only its port header; every other
// renderable usage (EmitDefinitionAndDescend, EmitDefinitionAndStop) gets
// its full body: wire declarations for every instance output/inout net,
// instance port bindings, and continuous assignments for its own
// driven/inout ports.
func buildModule(d *core.ModuleDefinition, log *logrus.Logger) *sv.Module {
	m := &sv.Module{Name: d.Name()}
	for _, pn := range d.GetPorts() {
		m.Ports = append(m.Ports, sv.Port{Name: pn, Dir: svDir(d.PortDirection(pn)), Width: d.PortWidth(pn)})
	}
	if d.Usage() == core.EmitStubAndStop {
		m.Stub = true
		return m
	}

	for _, in := range d.GetInstances() {
		inst := d.GetInstance(in)
		m.Instances = append(m.Instances, buildInstance(d, in, inst, log))
	}
	for _, pn := range d.GetPorts() {
		p := d.GetPort(pn)
		drivable, _, _, _ := core.Legality(p)
		if !drivable {
			continue
		}
		for _, a := range assignsForPort(p, log) {
			m.Assigns = append(m.Assigns, a)
		}
	}

	m.Wires = collectWires(d)
	return m
}

// collectWires declares one net per CanDrive-capable instance port (an
// Output, or an InOut treated the same way for emission — spec §9's
// "one wire per unique driver"), sized to that port's own full width,
// regardless of whether anything downstream actually consumes it.
func collectWires(d *core.ModuleDefinition) []sv.Wire {
	var wires []sv.Wire
	for _, in := range d.GetInstances() {
		inst := d.GetInstance(in)
		for _, pn := range inst.Def.GetPorts() {
			instPort := d.InstancePort(in, pn)
			_, canDrive, _, _ := core.Legality(instPort)
			if !canDrive {
				continue
			}
			wires = append(wires, sv.Wire{Name: netNameOf(instPort), Width: instPort.Width()})
		}
	}
	return wires
}

func buildInstance(d *core.ModuleDefinition, instName string, inst *core.Instance, log *logrus.Logger) sv.Instance {
	out := sv.Instance{Module: inst.Def.Name(), Name: instName}

	if origin := inst.Def.VerilogOrigin(); origin != nil {
		params := inst.Def.Parameters()
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			v := big.NewInt(params[name])
			out.Params = append(out.Params, sv.Param{Name: name, Value: sv.NewLiteral(32, v)})
		}
		_ = origin
	}

	for _, pn := range inst.Def.GetPorts() {
		instPort := d.InstancePort(instName, pn)
		drivable, canDrive, _, _ := core.Legality(instPort)
		var expr sv.Expr
		switch {
		case canDrive && !drivable:
			expr = sv.Ref{Name: netNameOf(instPort)}
		case drivable:
			expr = exprForDrivablePort(instPort, log)
		default:
			expr = sv.Empty{}
		}
		out.Conns = append(out.Conns, sv.PortConn{Port: pn, Expr: expr})
	}
	return out
}

// assignsForPort renders one continuous assignment per resolved chunk of
// a ModDef-kind drivable port (spec §9: a ModDef port's own name already
// identifies the net, so multiple chunks become multiple per-range
// assigns rather than one concatenated assign).
func assignsForPort(p core.Port, log *logrus.Logger) []sv.Assign {
	chunks := resolve.Resolve(p, log)
	var out []sv.Assign
	for _, c := range chunks {
		if c.Kind == resolve.FromUnused {
			continue
		}
		out = append(out, sv.Assign{LHS: lhsForChunk(p, c), RHS: exprForChunk(c)})
	}
	return out
}

// exprForDrivablePort renders the single expression bound to an
// instance's drivable port (Input, or InOut handled the same way): one
// chunk becomes a bare expression, several chunks concatenate in
// descending-msb order (spec §9).
func exprForDrivablePort(p core.Port, log *logrus.Logger) sv.Expr {
	chunks := resolve.Resolve(p, log)
	var items []sv.Expr
	for _, c := range chunks {
		if c.Kind == resolve.FromUnused {
			items = append(items, sv.Empty{})
			continue
		}
		items = append(items, exprForChunk(c))
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 0 {
		return sv.Empty{}
	}
	return sv.Concat{Items: items}
}

func lhsForChunk(p core.Port, c resolve.Chunk) sv.Expr {
	if c.Msb == p.Width()-1 && c.Lsb == 0 {
		return sv.Ref{Name: p.Name()}
	}
	if c.Width() == 1 {
		return sv.Bit{Name: p.Name(), Index: c.Msb}
	}
	return sv.Part{Name: p.Name(), Msb: c.Msb, Lsb: c.Lsb}
}

func exprForChunk(c resolve.Chunk) sv.Expr {
	switch c.Kind {
	case resolve.FromTieoff:
		return sv.NewLiteral(c.Width(), c.Tieoff.Int())
	case resolve.FromDriver:
		return exprForDriverSlice(c.Driver, c.WireName)
	default:
		return sv.Empty{}
	}
}

// exprForDriverSlice renders a reference to the net that drives a chunk:
// the driver's own name if it is a ModDef-kind port (its port name is
// already the net identifier), the invented "<inst>_<port>" net if it is
// a ModInst-kind port, or the explicit override name if a Wire entry is
// present (spec §4.5 rule 4). A Wire override is rendered as a bare
// reference sized to the chunk itself: topstitch does not track the
// original SpecifyNetName call's own bit offsets through chunk election,
// so a name reused at two different bit offsets across a design is a
// documented limitation (see DESIGN.md), not a silently wrong render.
func exprForDriverSlice(driver core.PortSlice, wireOverride string) sv.Expr {
	if wireOverride != "" {
		return sv.Ref{Name: wireOverride}
	}
	name := netNameOf(driver.Port)
	full := driver.Port.Width()
	if driver.Msb == full-1 && driver.Lsb == 0 {
		return sv.Ref{Name: name}
	}
	if driver.Width() == 1 {
		return sv.Bit{Name: name, Index: driver.Msb}
	}
	return sv.Part{Name: name, Msb: driver.Msb, Lsb: driver.Lsb}
}

func netNameOf(p core.Port) string {
	if p.IsModDef() {
		return p.Name()
	}
	return p.InstanceName() + "_" + p.Name()
}
