package resolve

import "github.com/canopyhdl/topstitch/core"

// SourceKind classifies what drives a Chunk.
type SourceKind int

const (
	FromDriver SourceKind = iota
	FromTieoff
	FromUnused
)

// Chunk is one contiguous, disjoint bit range of a resolved port together
// with the expression source selected for it (spec §4.5).
type Chunk struct {
	Msb, Lsb int
	Kind     SourceKind
	Driver   core.PortSlice // valid when Kind == FromDriver
	Tieoff   core.BigValue  // valid when Kind == FromTieoff
	WireName string         // non-"" if a Wire entry overrides the net name (FromDriver only)
}

// Width returns Msb-Lsb+1.
func (c Chunk) Width() int { return c.Msb - c.Lsb + 1 }
