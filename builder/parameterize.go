package builder

import (
	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/vlogimport"
)

type paramConfig struct {
	defName  string
	instName string
}

// ParamOption configures Parameterize.
type ParamOption func(*paramConfig)

// WithParamDefName overrides the wrapper's own definition name (default:
// def.Name() + "_param").
func WithParamDefName(name string) ParamOption { return func(c *paramConfig) { c.defName = name } }

// WithParamInstName overrides the name of the single instance of the
// re-parameterized cell inside the wrapper (default: core.Instantiate's
// own default, "<cellName>_i").
func WithParamInstName(name string) ParamOption { return func(c *paramConfig) { c.instName = name } }

// Parameterize builds a new wrapper definition around def (which must
// carry a core.VerilogOrigin, i.e. have come from vlogimport.Import),
// applying overrides on top of the originally declared parameter
// defaults (spec §4.1, scenario 6). The widths that depend on an
// overridden parameter are recomputed by re-extracting def's stored
// source text into a fresh "effective cell" definition (same module
// name, frozen, its own VerilogOrigin/parameters, Usage
// EmitDefinitionAndStop since its body is external Verilog assumed
// correct); the wrapper exposes the same ports and instantiates that
// cell, passing every port straight through. The wrapper's own Usage is
// EmitDefinitionAndStop. def itself is untouched. Panics if def has no
// VerilogOrigin or any override is negative.
func Parameterize(def *core.ModuleDefinition, overrides map[string]int64, opts ...ParamOption) *core.ModuleDefinition {
	origin := def.VerilogOrigin()
	if origin == nil {
		panic(&core.Diagnostic{Qualified: def.Name(), Class: ErrNoVerilogOrigin, Detail: "Parameterize requires vlogimport.Import"})
	}
	for name, v := range overrides {
		if v < 0 {
			panic(&core.Diagnostic{Qualified: def.Name() + "." + name, Class: ErrNegativeParameter, Detail: "negative parameter override"})
		}
	}

	cfg := paramConfig{defName: def.Name() + "_param"}
	for _, o := range opts {
		o(&cfg)
	}

	ports, err := vlogimport.Reimport(origin, overrides)
	if err != nil {
		panic(err)
	}

	mergedParams := make(map[string]int64, len(origin.Params)+len(overrides))
	for k, v := range origin.Params {
		mergedParams[k] = v
	}
	for k, v := range overrides {
		mergedParams[k] = v
	}

	cell := core.NewDef(origin.ModuleName)
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		cell.AddPort(p.Name, p.Dir, p.Width)
		names = append(names, p.Name)
	}
	cell.SetVerilogOrigin(&core.VerilogOrigin{
		ModuleName: origin.ModuleName,
		Source:     origin.Source,
		Params:     mergedParams,
		EnumHints:  origin.EnumHints,
	})
	for name, v := range overrides {
		cell.SetParameter(name, v)
	}
	cell.SetUsage(core.EmitDefinitionAndStop)

	wrapper := core.NewDef(cfg.defName)
	for _, p := range ports {
		wrapper.AddPort(p.Name, p.Dir, p.Width)
	}
	wrapper.Instantiate(cell, cfg.instName, names)
	wrapper.SetUsage(core.EmitDefinitionAndStop)
	return wrapper
}
