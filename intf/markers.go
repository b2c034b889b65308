package intf

import "github.com/canopyhdl/topstitch/core"

// Tieoff ties off every function of iface that is on a driven slice
// (ModDef Output or ModInst Input) to value, ignoring driving slices
// entirely (spec §4.8: "tie off every function that is a driven slice
// ... ignore driving slices").
func Tieoff(iface *core.Interface, value core.BigValue) {
	d := iface.Def()
	for _, fn := range iface.Funcs() {
		s := iface.Slice(fn)
		_, _, tieoffOK, _ := core.Legality(s.Port)
		if !tieoffOK {
			continue
		}
		d.Tieoff(s, value)
	}
}

// Unused marks every function of iface that is a driving slice (ModDef
// Input or ModInst Output, or InOut) as unused, ignoring driven slices
// (spec §4.8: "mark every function that is a driving slice as unused").
func Unused(iface *core.Interface) {
	d := iface.Def()
	for _, fn := range iface.Funcs() {
		s := iface.Slice(fn)
		_, _, _, unusedOK := core.Legality(s.Port)
		if !unusedOK {
			continue
		}
		d.Unused(s)
	}
}
