package core

import (
	"weak"

	"github.com/canopyhdl/topstitch/internal/omap"
)

// Direction is a port's signal direction.
type Direction int

const (
	Input Direction = iota
	Output
	InOut
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case InOut:
		return "inout"
	default:
		return "unknown"
	}
}

// Usage controls whether a definition is descended into, emitted as a
// stand-alone stub, or skipped entirely at emission/validation time.
type Usage int

const (
	// EmitDefinitionAndDescend emits this definition's body and recurses
	// into (validates/emits) every instance's definition. The default.
	EmitDefinitionAndDescend Usage = iota
	// EmitDefinitionAndStop emits this definition's body but does not
	// validate or recurse into instances (their bodies are assumed
	// correct elsewhere, e.g. already-emitted library cells).
	EmitDefinitionAndStop
	// EmitStubAndStop emits only a module header with no body.
	EmitStubAndStop
	// EmitNothingAndStop emits nothing for this definition at all.
	EmitNothingAndStop
)

// portRecord is the internal storage for one port of a ModuleDefinition.
type portRecord struct {
	Dir   Direction
	Width int
}

// VerilogOrigin is an opaque description of how a definition was imported
// from external Verilog/SystemVerilog source. It is frozen at creation and
// consulted only by builder.Parameterize and the vlogimport package.
type VerilogOrigin struct {
	ModuleName string
	Source     string            // the source text or file path, writer-defined
	Params     map[string]int64  // default parameter values at import time
	EnumHints  map[string]string // port name -> opaque enum/typedef hint (unused by core)
}

// instPortKey keys the per-instance-port connection table.
type instPortKey struct {
	Inst string
	Port string
}

// ModuleDefinition is a named, structural module template: ports,
// interfaces, instances of other definitions, and the connections,
// tieoffs, and unused-marks recorded against them.
//
// A ModuleDefinition is shared: multiple Instances, Ports, and Interfaces
// may reference the same *ModuleDefinition; all mutation goes through this
// single interior. It is not safe to mutate the same definition
// concurrently from two goroutines (spec §5).
type ModuleDefinition struct {
	name   string
	frozen bool
	usage  Usage

	ports     *omap.Map[string, *portRecord]
	instances *omap.Map[string, *Instance]
	interfaces *omap.Map[string, *Interface]

	connModDef  *omap.Map[string, *ConnectionList]
	connModInst *omap.Map[instPortKey, *ConnectionList]

	tieoffs      []TieoffMark
	unusedMarks  []PortSlice

	verilogOrigin *VerilogOrigin
	parameters    map[string]int64

	self weak.Pointer[ModuleDefinition] // back-pointer to itself for PortSlice construction
}

// TieoffMark records a constant bound to a driven slice.
type TieoffMark struct {
	Slice PortSlice
	Value BigValue
}

// Instance is a named use of a child ModuleDefinition inside a parent
// ModuleDefinition. The parent holds a strong reference to Def (shared
// ownership, longest-living holder); the parent definition itself is
// referenced weakly from Instance so instances never keep their own
// parent alive on their own.
type Instance struct {
	Name   string
	Def    *ModuleDefinition
	parent weak.Pointer[ModuleDefinition]
}

// NewDef creates an empty ModuleDefinition with the default usage
// (EmitDefinitionAndDescend) and no ports or instances.
func NewDef(name string) *ModuleDefinition {
	d := &ModuleDefinition{
		name:        name,
		ports:       omap.New[string, *portRecord](),
		instances:   omap.New[string, *Instance](),
		interfaces:  omap.New[string, *Interface](),
		connModDef:  omap.New[string, *ConnectionList](),
		connModInst: omap.New[instPortKey, *ConnectionList](),
		parameters:  map[string]int64{},
	}
	d.self = weak.Make(d)
	return d
}

// Name returns the definition's module name.
func (d *ModuleDefinition) Name() string { return d.name }

// Usage returns the emission/validation policy for this definition.
func (d *ModuleDefinition) Usage() Usage { return d.usage }

// SetUsage changes the emission/validation policy for this definition.
func (d *ModuleDefinition) SetUsage(u Usage) { d.usage = u }

// Frozen reports whether this definition rejects further AddPort/Instantiate
// calls (true for definitions built from external Verilog, or previously
// emitted definitions that a caller has explicitly frozen via Freeze).
func (d *ModuleDefinition) Frozen() bool { return d.frozen }

// Freeze marks the definition frozen: no further ports or instances may be
// added. Instances of it remain allowed. Irreversible.
func (d *ModuleDefinition) Freeze() { d.frozen = true }

// VerilogOrigin returns the opaque import descriptor, or nil if this
// definition was not built from external Verilog.
func (d *ModuleDefinition) VerilogOrigin() *VerilogOrigin { return d.verilogOrigin }

// SetVerilogOrigin attaches an import descriptor and freezes the
// definition. Intended for use by vlogimport only.
func (d *ModuleDefinition) SetVerilogOrigin(o *VerilogOrigin) {
	d.verilogOrigin = o
	d.frozen = true
}

// Parameters returns the current parameter overrides (meaningful only when
// VerilogOrigin is set).
func (d *ModuleDefinition) Parameters() map[string]int64 { return d.parameters }

// SetParameter records a parameter override. Valid only on a definition
// with a VerilogOrigin; negative values are a fatal error (spec §4.1,
// Parameterize).
func (d *ModuleDefinition) SetParameter(name string, value int64) {
	if d.verilogOrigin == nil {
		abort(d.name, ErrSemantic, "SetParameter(%s): definition has no VerilogOrigin", name)
	}
	if value < 0 {
		abort(d.name, ErrSemantic, "SetParameter(%s): negative parameter value %d", name, value)
	}
	d.parameters[name] = value
}

func (d *ModuleDefinition) weak() weak.Pointer[ModuleDefinition] { return d.self }
