package core

import (
	"regexp"
	"strings"
	"weak"

	"github.com/canopyhdl/topstitch/internal/omap"
)

// Interface is a named, ordered mapping from an abstract function name to a
// concrete bit-level slice of one of the enclosing definition's own ports
// (spec §4.8). Grouping related ports under function names (e.g. a
// handshake's "valid"/"ready"/"data") lets the intf package connect,
// export, or tie off/mark-unused the whole bundle in one call instead of
// port-by-port.
type Interface struct {
	name string
	def  weak.Pointer[ModuleDefinition]
	fns  *omap.Map[string, PortSlice]
}

// Def resolves the owning ModuleDefinition, panicking if it has been
// destroyed (same weak-reference contract as Port).
func (f *Interface) Def() *ModuleDefinition {
	d := f.def.Value()
	if d == nil {
		panic(&Diagnostic{Class: ErrSemantic, Detail: "use of Interface after its ModuleDefinition was destroyed"})
	}
	return d
}

// Name returns the interface's own name.
func (f *Interface) Name() string { return f.name }

// Funcs returns every function name in the interface, in the order they
// were added.
func (f *Interface) Funcs() []string { return f.fns.Keys() }

// Len returns the number of function names mapped.
func (f *Interface) Len() int { return f.fns.Len() }

// HasFunc reports whether fn is mapped.
func (f *Interface) HasFunc(fn string) bool { return f.fns.Has(fn) }

// Slice returns the slice mapped to fn. Panics if fn is not mapped.
func (f *Interface) Slice(fn string) PortSlice {
	s, ok := f.fns.Get(fn)
	if !ok {
		abort(f.def.Value().name+"."+f.name, ErrNotFound, "interface has no function %q", fn)
	}
	return s
}

// Add maps fn to s, returning f for chaining. Panics if fn is already
// mapped or s does not belong to Def().
func (f *Interface) Add(fn string, s PortSlice) *Interface {
	if f.fns.Has(fn) {
		abort(f.name, ErrNameCollision, "interface %q already maps function %q", f.name, fn)
	}
	if s.Port.def() != f.Def() {
		abort(f.name, ErrSemantic, "interface %q: slice %s belongs to another definition", f.name, s.QualifiedName())
	}
	f.fns.Set(fn, s)
	return f
}

// NewInterface creates an empty, named Interface on d. Panics if d already
// has an interface with this name.
func (d *ModuleDefinition) NewInterface(name string) *Interface {
	if d.interfaces.Has(name) {
		abort(d.name+"."+name, ErrNameCollision, "interface already exists")
	}
	iface := &Interface{name: name, def: d.weak(), fns: omap.New[string, PortSlice]()}
	d.interfaces.Set(name, iface)
	return iface
}

// HasIntf reports whether d has an interface with this name.
func (d *ModuleDefinition) HasIntf(name string) bool { return d.interfaces.Has(name) }

// GetIntf returns a previously defined interface. Panics if absent.
func (d *ModuleDefinition) GetIntf(name string) *Interface {
	iface, ok := d.interfaces.Get(name)
	if !ok {
		abort(d.name+"."+name, ErrNotFound, "no such interface")
	}
	return iface
}

// GetIntfs returns every interface name defined on d, in definition order.
func (d *ModuleDefinition) GetIntfs() []string { return d.interfaces.Keys() }

// DefIntfFromPrefix builds an interface named name by matching every port
// of d whose name starts with prefix; the function name is the port name
// with prefix stripped. Panics if no port matches (spec §7: empty
// interface mapping is fatal).
func (d *ModuleDefinition) DefIntfFromPrefix(name, prefix string) *Interface {
	return d.DefIntfFromPrefixes(name, []string{prefix}, true)
}

// DefIntfFromNameUnderscore is DefIntfFromPrefix using "<name>_" as the
// prefix (spec §4.1: "a `<name>_` prefix" variant of def_intf).
func (d *ModuleDefinition) DefIntfFromNameUnderscore(name string) *Interface {
	return d.DefIntfFromPrefix(name, name+"_")
}

// DefIntfFromPrefixes is the general form of DefIntfFromPrefix: a port
// matches if it starts with any of prefixes, and (when strip is true) the
// matched prefix is removed to form the function name; when strip is
// false the full port name is used as the function name. The first
// matching prefix (in slice order) is the one stripped.
func (d *ModuleDefinition) DefIntfFromPrefixes(name string, prefixes []string, strip bool) *Interface {
	iface := d.NewInterface(name)
	for _, pn := range d.GetPorts() {
		for _, prefix := range prefixes {
			if !strings.HasPrefix(pn, prefix) {
				continue
			}
			fn := pn
			if strip {
				fn = strings.TrimPrefix(pn, prefix)
			}
			iface.Add(fn, Whole(d.GetPort(pn)))
			break
		}
	}
	if iface.Len() == 0 {
		abort(d.name+"."+name, ErrEmptyMapping, "DefIntfFromPrefixes(%q): no port matched %v", name, prefixes)
	}
	return iface
}

// PatternReplace is one (match, replace) rule for DefIntfFromPatterns: a
// port matching Pattern contributes a function name obtained by
// Pattern.ReplaceAllString(portName, Replace).
type PatternReplace struct {
	Pattern *regexp.Regexp
	Replace string
}

// DefIntfFromPatterns builds an interface by testing every port of d
// against each rule in order; the first matching rule produces the
// function name. Ports matching no rule are excluded. Panics if no port
// matches anything.
func (d *ModuleDefinition) DefIntfFromPatterns(name string, rules []PatternReplace) *Interface {
	iface := d.NewInterface(name)
	for _, pn := range d.GetPorts() {
		for _, r := range rules {
			if !r.Pattern.MatchString(pn) {
				continue
			}
			fn := r.Pattern.ReplaceAllString(pn, r.Replace)
			iface.Add(fn, Whole(d.GetPort(pn)))
			break
		}
	}
	if iface.Len() == 0 {
		abort(d.name+"."+name, ErrEmptyMapping, "DefIntfFromPatterns(%q): no port matched any rule", name)
	}
	return iface
}
