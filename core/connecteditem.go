package core

// ConnectedItem is the tagged union of what the "other side" of a
// Connection can be. Concrete types: PortSliceRef, TieoffItem, UnusedItem,
// WireItem. The marker method closes the set. Callers that act on the
// kind of item (trace, resolve) use a type switch; re-slicing and width
// go through the reslice/width methods below.
type ConnectedItem interface {
	isConnectedItem()
	// reslice re-expresses the item for a sub-range [offset, offset+w) of
	// the chunk it was attached to (offset counted from the chunk's lsb).
	reslice(offset, w int) ConnectedItem
	width() int
}

// PortSliceRef is a connection to another bit-level slice.
type PortSliceRef struct {
	Slice PortSlice
}

func (PortSliceRef) isConnectedItem() {}
func (r PortSliceRef) width() int     { return r.Slice.Width() }
func (r PortSliceRef) reslice(offset, w int) ConnectedItem {
	return PortSliceRef{Slice: r.Slice.SliceWithOffsetAndWidth(offset, w)}
}

// TieoffItem is a constant bound to a driven slice.
type TieoffItem struct {
	Value BigValue
	W     int
}

func (TieoffItem) isConnectedItem() {}
func (t TieoffItem) width() int     { return t.W }
func (t TieoffItem) reslice(offset, w int) ConnectedItem {
	return TieoffItem{Value: t.Value.Slice(offset, w), W: w}
}

// UnusedItem is an explicit "intentionally not consumed" marker.
type UnusedItem struct {
	W int
}

func (UnusedItem) isConnectedItem() {}
func (u UnusedItem) width() int     { return u.W }
func (u UnusedItem) reslice(_, w int) ConnectedItem {
	return UnusedItem{W: w}
}

// WireItem is an explicit named net forced onto a segment, overriding the
// default chosen net name for that chunk.
type WireItem struct {
	Name           string
	FullWidth      int
	Msb, Lsb       int
}

func (WireItem) isConnectedItem() {}
func (w WireItem) width() int     { return w.Msb - w.Lsb + 1 }
func (w WireItem) reslice(offset, width int) ConnectedItem {
	return WireItem{Name: w.Name, FullWidth: w.FullWidth, Msb: w.Lsb + offset + width - 1, Lsb: w.Lsb + offset}
}
