package core

// Connect records a bidirectional bit-level connection between two
// slices: a and b must have equal width and must belong to the same
// enclosing definition (both ModDef ports of d, both ModInst ports of
// instances within d, or a mix), and must be directionally compatible
// (spec §4.11: one side Drivable, the other CanDrive, or both InOut).
// Symmetric entries are appended to both sides' own ConnectionLists.
func (d *ModuleDefinition) Connect(a, b PortSlice) {
	if a.Width() != b.Width() {
		abort(a.QualifiedName(), ErrWidthMismatch, "connect: width %d != %d (%s)", a.Width(), b.Width(), b.QualifiedName())
	}
	checkCompatible(a, b)

	aList := a.Port.connList()
	bList := b.Port.connList()
	*aList = append(*aList, Connection{This: a, Other: PortSliceRef{Slice: b}})
	*bList = append(*bList, Connection{This: b, Other: PortSliceRef{Slice: a}})
}

func checkCompatible(a, b PortSlice) {
	la, lb := legalityOf(a.Port), legalityOf(b.Port)
	okAB := la.Drivable && lb.CanDrive
	okBA := lb.Drivable && la.CanDrive
	if !okAB && !okBA {
		abort(a.QualifiedName(), ErrDirectional, "cannot connect %s to %s: incompatible directions", a.QualifiedName(), b.QualifiedName())
	}
}

// Tieoff binds a constant value to a driven slice. Panics if the slice
// cannot be tied off (per the directional legality table) or if value does
// not fit in the slice's width.
func (d *ModuleDefinition) Tieoff(s PortSlice, value BigValue) {
	if !legalityOf(s.Port).Tieoff {
		abort(s.QualifiedName(), ErrDirectional, "cannot tie off %s", s.QualifiedName())
	}
	if !value.FitsWidth(s.Width()) {
		abort(s.QualifiedName(), ErrWidthMismatch, "tieoff value does not fit in %d bits", s.Width())
	}
	d.tieoffs = append(d.tieoffs, TieoffMark{Slice: s, Value: value})
}

// Unused explicitly marks a driving slice as intentionally unconsumed.
// Panics if s's direction cannot be marked unused.
func (d *ModuleDefinition) Unused(s PortSlice) {
	if !legalityOf(s.Port).Unused {
		abort(s.QualifiedName(), ErrDirectional, "cannot mark %s unused", s.QualifiedName())
	}
	d.unusedMarks = append(d.unusedMarks, s)
}

// SpecifyNetName forces a named wire onto a segment, overriding the net
// name the resolution engine would otherwise choose for it (spec §4.5
// rule 4, and the user-facing operations summary of §6).
func (d *ModuleDefinition) SpecifyNetName(s PortSlice, name string) {
	list := s.Port.connList()
	*list = append(*list, Connection{
		This:  s,
		Other: WireItem{Name: name, FullWidth: s.Width(), Msb: s.Width() - 1, Lsb: 0},
	})
}

// Tieoffs returns the tieoff marks recorded directly on d.
func (d *ModuleDefinition) Tieoffs() []TieoffMark { return d.tieoffs }

// UnusedMarks returns the unused marks recorded directly on d.
func (d *ModuleDefinition) UnusedMarks() []PortSlice { return d.unusedMarks }
