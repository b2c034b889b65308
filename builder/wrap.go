package builder

import "github.com/canopyhdl/topstitch/core"

type wrapConfig struct {
	defName  string
	instName string
}

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

// WithWrapDefName overrides the wrapper's own definition name (default:
// "<def.Name()>_wrapper").
func WithWrapDefName(name string) WrapOption { return func(c *wrapConfig) { c.defName = name } }

// WithWrapInstName overrides the name of the single instance of def inside
// the wrapper (default: core.Instantiate's own default).
func WithWrapInstName(name string) WrapOption { return func(c *wrapConfig) { c.instName = name } }

// Wrap builds a new definition that mirrors def's port list exactly and
// instantiates def once, autoconnecting every port straight through. The
// wrapper is left unfrozen with the default Usage (EmitDefinitionAndDescend)
// so callers can add further instances or logic before it is validated.
func Wrap(def *core.ModuleDefinition, opts ...WrapOption) *core.ModuleDefinition {
	cfg := wrapConfig{defName: def.Name() + "_wrapper"}
	for _, o := range opts {
		o(&cfg)
	}

	wrapper := core.NewDef(cfg.defName)
	names := def.GetPorts()
	for _, pn := range names {
		wrapper.AddPort(pn, def.PortDirection(pn), def.PortWidth(pn))
	}
	wrapper.Instantiate(def, cfg.instName, names)
	return wrapper
}
