package core

// legality is the directional legality table of spec §4.11, keyed by
// (IsModDef, Direction).
type legality struct {
	Drivable bool // can be the receiving side of a connection
	CanDrive bool // can be the driving side of a connection
	Tieoff   bool
	Unused   bool
}

// Legality reports the four directional legality flags of spec §4.11 for
// p: whether it can be a connection's receiving side (Drivable), its
// driving side (CanDrive), the target of a Tieoff, or the target of an
// Unused mark. Exported for the validate package, which needs to route a
// port to full driver-election resolution (Drivable) or to simple
// trace-coverage checking (CanDrive-only) without duplicating this table.
func Legality(p Port) (drivable, canDrive, tieoff, unused bool) {
	l := legalityOf(p)
	return l.Drivable, l.CanDrive, l.Tieoff, l.Unused
}

func legalityOf(p Port) legality {
	isModDef := p.IsModDef()
	switch {
	case isModDef && p.Direction() == Input:
		return legality{Drivable: false, CanDrive: true, Tieoff: false, Unused: true}
	case isModDef && p.Direction() == Output:
		return legality{Drivable: true, CanDrive: false, Tieoff: true, Unused: false}
	case isModDef && p.Direction() == InOut:
		return legality{Drivable: true, CanDrive: true, Tieoff: true, Unused: true}
	case !isModDef && p.Direction() == Input:
		return legality{Drivable: true, CanDrive: false, Tieoff: true, Unused: false}
	case !isModDef && p.Direction() == Output:
		return legality{Drivable: false, CanDrive: true, Tieoff: false, Unused: true}
	default: // !isModDef && InOut
		return legality{Drivable: true, CanDrive: true, Tieoff: true, Unused: true}
	}
}
