package resolve

import (
	"sort"

	"github.com/canopyhdl/topstitch/core"
)

// electChunk selects the expression source for one non-overlapping group of
// connection entries landing on the same bit range of p (spec §4.5). All
// entries in grp share the same This.Msb/This.Lsb (guaranteed by
// MakeNonOverlapping). Panics with a *core.Diagnostic on any rule
// violation.
func electChunk(p core.Port, grp core.ConnectionList) Chunk {
	msb, lsb := grp[0].This.Msb, grp[0].This.Lsb
	qualified := core.PortSlice{Port: p, Msb: msb, Lsb: lsb}.QualifiedName()

	var (
		drivers []core.PortSlice
		tieoffs []core.BigValue
		wires   []string
		unused  int
	)
	for _, c := range grp {
		switch o := c.Other.(type) {
		case core.PortSliceRef:
			drivers = append(drivers, o.Slice)
		case core.TieoffItem:
			tieoffs = append(tieoffs, o.Value)
		case core.UnusedItem:
			unused++
		case core.WireItem:
			wires = append(wires, o.Name)
		}
	}

	if len(wires) > 1 {
		abort(qualified, ErrMultiWire, "%d wire name overrides on the same bits", len(wires))
	}
	wireName := ""
	if len(wires) == 1 {
		wireName = wires[0]
	}

	switch {
	case len(drivers) == 0 && len(tieoffs) == 0:
		if unused > 0 {
			if wireName != "" {
				abort(qualified, ErrWireOnInput, "wire name override on an unused range")
			}
			return Chunk{Msb: msb, Lsb: lsb, Kind: FromUnused}
		}
		abort(qualified, ErrNoDriver, "no driver, tieoff, or unused mark for this range")

	case len(drivers) == 0:
		if len(tieoffs) > 1 {
			abort(qualified, ErrMultiTieoff, "%d conflicting tieoff values on the same bits", len(tieoffs))
		}
		if wireName != "" {
			abort(qualified, ErrWireOnInput, "wire name override has no effect on a tied-off range")
		}
		return Chunk{Msb: msb, Lsb: lsb, Kind: FromTieoff, Tieoff: tieoffs[0]}

	case len(tieoffs) > 0:
		abort(qualified, ErrMultiplyDriven, "both a real driver and a tieoff value present on the same bits")
	}

	driver := electDriver(qualified, drivers)
	return Chunk{Msb: msb, Lsb: lsb, Kind: FromDriver, Driver: driver, WireName: wireName}
}

// electDriver implements the priority partition of §4.5 rule 3. Slices
// that cannot drive (a ModDef Output or a ModInst Input reached through
// fanout from a shared driver) are not candidates. A driver declared
// directly on the enclosing definition (a ModDef port — the parent's own
// primary signal) outranks a driver reached through one of the
// definition's instances (a ModInst port), even when both are present on
// the same bits; two-or-more ModDef drivers conflict. Within the
// instance-driver tier, more than one instance Output conflicts; otherwise
// ties are broken lexicographically by "instance.port" so resolution is
// deterministic regardless of connection insertion order, and a genuine
// tie after that ordering is a real conflict.
func electDriver(qualified string, drivers []core.PortSlice) core.PortSlice {
	var modDefDrivers, modInstDrivers []core.PortSlice
	instOutputs := 0
	for _, d := range drivers {
		if _, canDrive, _, _ := core.Legality(d.Port); !canDrive {
			continue
		}
		if d.Port.IsModDef() {
			modDefDrivers = append(modDefDrivers, d)
		} else {
			modInstDrivers = append(modInstDrivers, d)
			if d.Port.Direction() == core.Output {
				instOutputs++
			}
		}
	}

	if len(modDefDrivers) > 0 {
		if len(modDefDrivers) > 1 {
			abort(qualified, ErrMultiplyDriven, "%d ModDef driver(s) on the same bits", len(modDefDrivers))
		}
		// A single ModDef driver always prevails over any instance
		// drivers on the same bits (spec §4.5 rule 3).
		return modDefDrivers[0]
	}

	if len(modInstDrivers) == 0 {
		abort(qualified, ErrNoDriver, "no eligible driver on this range")
	}
	if instOutputs > 1 {
		abort(qualified, ErrMultiplyDriven, "%d instance Output drivers on the same bits", instOutputs)
	}
	sort.Slice(modInstDrivers, func(i, j int) bool {
		return driverKey(modInstDrivers[i]) < driverKey(modInstDrivers[j])
	})
	for i := 1; i < len(modInstDrivers); i++ {
		if driverKey(modInstDrivers[i-1]) == driverKey(modInstDrivers[i]) {
			abort(qualified, ErrMultiplyDriven, "%d instance drivers tie at %q", len(modInstDrivers), driverKey(modInstDrivers[i]))
		}
	}
	return modInstDrivers[0]
}

func driverKey(s core.PortSlice) string {
	return s.Port.InstanceName() + "." + s.Port.Name()
}
