package builder

import "github.com/canopyhdl/topstitch/core"

// Stub creates a new definition named newName with the same ports and
// interface mappings as def (spec §4.1) and no instances, connections,
// tieoffs, or unused marks. Its Usage is set to EmitStubAndStop (a module
// header with no body — the body is meant to be hand-written elsewhere,
// so neither validation nor emission should expect connections inside
// it) and it is frozen.
func Stub(def *core.ModuleDefinition, newName string) *core.ModuleDefinition {
	stub := core.NewDef(newName)
	for _, pn := range def.GetPorts() {
		stub.AddPort(pn, def.PortDirection(pn), def.PortWidth(pn))
	}
	for _, in := range def.GetIntfs() {
		src := def.GetIntf(in)
		dst := stub.NewInterface(in)
		for _, fn := range src.Funcs() {
			s := src.Slice(fn)
			p := stub.GetPort(s.Port.Name())
			dst.Add(fn, core.PortSlice{Port: p, Msb: s.Msb, Lsb: s.Lsb})
		}
	}
	stub.SetUsage(core.EmitStubAndStop)
	stub.Freeze()
	return stub
}

// StubRecursive stubs def and every distinct definition reachable through
// its instance tree, one stub per distinct *core.ModuleDefinition pointer
// (a definition instantiated in several places is stubbed once). rename
// maps an original definition name to its stub's name; callers typically
// append a suffix to avoid colliding with the originals.
func StubRecursive(root *core.ModuleDefinition, rename func(string) string) map[*core.ModuleDefinition]*core.ModuleDefinition {
	memo := map[*core.ModuleDefinition]*core.ModuleDefinition{}
	var walk func(d *core.ModuleDefinition)
	walk = func(d *core.ModuleDefinition) {
		if _, ok := memo[d]; ok {
			return
		}
		memo[d] = Stub(d, rename(d.Name()))
		for _, in := range d.GetInstances() {
			walk(d.GetInstance(in).Def)
		}
	}
	walk(root)
	return memo
}
