package core

import (
	"fmt"
	"weak"
)

// portKind distinguishes a port that lives directly on a ModuleDefinition
// from a port reached through one of that definition's instances.
type portKind int

const (
	kindModDef portKind = iota
	kindModInst
)

// Port is a handle to a named, directional signal: either a port declared
// directly on a ModuleDefinition, or a port of one of its instances
// (i.e. a port of the instance's child definition, viewed from the
// parent). Port holds only a weak back-reference to the definition whose
// tables (ports/instances/connections) it resolves against; it never owns
// that definition, matching the source project's handle design.
type Port struct {
	kind   portKind
	parent weak.Pointer[ModuleDefinition]
	inst   string // set only for kindModInst
	name   string
}

// def resolves the weak back-reference, panicking if the enclosing
// definition has been garbage collected (spec: "panic on use if that
// definition has been destroyed").
func (p Port) def() *ModuleDefinition {
	d := p.parent.Value()
	if d == nil {
		panic(&Diagnostic{Class: ErrSemantic, Detail: "use of Port after its ModuleDefinition was destroyed"})
	}
	return d
}

// record returns the portRecord (direction + width) this Port resolves to
// and the qualified name used in diagnostics.
func (p Port) record() (*portRecord, string) {
	d := p.def()
	switch p.kind {
	case kindModDef:
		rec, ok := d.ports.Get(p.name)
		if !ok {
			abort(d.name+"."+p.name, ErrNotFound, "no such port")
		}
		return rec, d.name + "." + p.name
	default:
		inst, ok := d.instances.Get(p.inst)
		if !ok {
			abort(d.name+"."+p.inst, ErrNotFound, "no such instance")
		}
		rec, ok := inst.Def.ports.Get(p.name)
		if !ok {
			abort(d.name+"."+p.inst+"."+p.name, ErrNotFound, "no such port on instance")
		}
		return rec, d.name + "." + p.inst + "." + p.name
	}
}

// Connections returns the ConnectionList recorded against this port's own
// key (spec §4.3). Used by the resolve and validate packages.
func (p Port) Connections() ConnectionList { return *p.connList() }

// Width returns the port's bit width.
func (p Port) Width() int { rec, _ := p.record(); return rec.Width }

// Direction returns the port's I/O direction as seen from its Kind.
func (p Port) Direction() Direction { rec, _ := p.record(); return rec.Dir }

// IsModDef reports whether this Port is a port directly on a definition
// (as opposed to a port of one of that definition's instances).
func (p Port) IsModDef() bool { return p.kind == kindModDef }

// InstanceName returns the instance name for a ModInst port, or "" for a
// ModDef port.
func (p Port) InstanceName() string { return p.inst }

// Name returns the port's own name (without qualification).
func (p Port) Name() string { return p.name }

// QualifiedName returns a fully-qualified diagnostic name, e.g.
// "Top.inst_a.port_x" or "Top.port_y".
func (p Port) QualifiedName() string { _, q := p.record(); return q }

// OwnerDef returns the ModuleDefinition whose connModDef/connModInst,
// tieoff, and unused-mark tables hold this port's own entries: the
// port's own definition for a ModDef port, or the parent (instantiating)
// definition for a ModInst port. Used by the resolve and validate
// packages to fold Tieoff/Unused marks into a port's resolution.
func (p Port) OwnerDef() *ModuleDefinition { return p.def() }

// connList returns this port's ConnectionList, creating an empty one on
// first use.
func (p Port) connList() *ConnectionList {
	d := p.def()
	if p.kind == kindModDef {
		cl, ok := d.connModDef.Get(p.name)
		if !ok {
			cl = &ConnectionList{}
			d.connModDef.Set(p.name, cl)
		}
		return cl
	}
	key := instPortKey{Inst: p.inst, Port: p.name}
	cl, ok := d.connModInst.Get(key)
	if !ok {
		cl = &ConnectionList{}
		d.connModInst.Set(key, cl)
	}
	return cl
}

// PortSlice is a contiguous, inclusive bit range [Msb:Lsb] of a Port.
type PortSlice struct {
	Port     Port
	Msb, Lsb int
}

// Width returns Msb-Lsb+1.
func (s PortSlice) Width() int { return s.Msb - s.Lsb + 1 }

// QualifiedName renders e.g. "Top.inst_a.port_x[3:1]" (or "[3]" for a
// single bit).
func (s PortSlice) QualifiedName() string {
	if s.Msb == s.Lsb {
		return fmt.Sprintf("%s[%d]", s.Port.QualifiedName(), s.Msb)
	}
	return fmt.Sprintf("%s[%d:%d]", s.Port.QualifiedName(), s.Msb, s.Lsb)
}

// Slice returns the sub-slice [msb:lsb] of p (the whole port). It panics
// if the range is out of bounds.
func Slice(p Port, msb, lsb int) PortSlice {
	w := p.Width()
	if lsb < 0 || msb >= w || lsb > msb {
		abort(p.QualifiedName(), ErrRange, "slice [%d:%d] invalid for width %d", msb, lsb, w)
	}
	return PortSlice{Port: p, Msb: msb, Lsb: lsb}
}

// Whole returns the slice spanning the entire port.
func Whole(p Port) PortSlice { return PortSlice{Port: p, Msb: p.Width() - 1, Lsb: 0} }

// Bit returns the single-bit slice at index i.
func Bit(p Port, i int) PortSlice { return Slice(p, i, i) }

// SubSlice returns the sub-slice [msb:lsb] of an existing slice s,
// expressed in s's own bit numbering (0 is s's lsb). Panics if out of
// s's range.
func (s PortSlice) SubSlice(msb, lsb int) PortSlice {
	if lsb < 0 || msb >= s.Width() || lsb > msb {
		abort(s.QualifiedName(), ErrRange, "sub-slice [%d:%d] invalid for width %d", msb, lsb, s.Width())
	}
	return PortSlice{Port: s.Port, Msb: s.Lsb + msb, Lsb: s.Lsb + lsb}
}

// Subdivide splits s into n equal, consecutive sub-slices, index 0 being
// the low end. Panics unless n divides Width().
func (s PortSlice) Subdivide(n int) []PortSlice {
	w := s.Width()
	if n <= 0 || w%n != 0 {
		abort(s.QualifiedName(), ErrRange, "subdivide(%d): %d does not divide width %d", n, n, w)
	}
	each := w / n
	out := make([]PortSlice, n)
	for i := 0; i < n; i++ {
		lo := i * each
		out[i] = s.SubSlice(lo+each-1, lo)
	}
	return out
}

// SliceWithOffsetAndWidth returns a sub-slice of s with lsb = s.Lsb+offset
// and width w. Panics unless offset+w <= Width().
func (s PortSlice) SliceWithOffsetAndWidth(offset, w int) PortSlice {
	if offset < 0 || w <= 0 || offset+w > s.Width() {
		abort(s.QualifiedName(), ErrRange, "offset %d width %d exceeds slice width %d", offset, w, s.Width())
	}
	return s.SubSlice(offset+w-1, offset)
}

// Intersect returns the overlap of s1 and s2 (which must be slices of the
// same Port) and true, or the zero PortSlice and false if they do not
// overlap or are slices of different ports.
func Intersect(s1, s2 PortSlice) (PortSlice, bool) {
	if s1.Port.kind != s2.Port.kind || s1.Port.name != s2.Port.name || s1.Port.inst != s2.Port.inst {
		return PortSlice{}, false
	}
	lo := max(s1.Lsb, s2.Lsb)
	hi := min(s1.Msb, s2.Msb)
	if lo > hi {
		return PortSlice{}, false
	}
	return PortSlice{Port: s1.Port, Msb: hi, Lsb: lo}, true
}
