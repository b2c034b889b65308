package resolve

import "github.com/canopyhdl/topstitch/core"

// mergeChunks coalesces adjacent chunks (chunks sorted high-bit-first, as
// Resolve produces) that describe the same contiguous source into one
// (spec §4.6): same kind, same wire override, and — for FromDriver — a
// contiguous driver slice on the same port.
func mergeChunks(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return chunks
	}
	out := make([]Chunk, 0, len(chunks))
	out = append(out, chunks[0])
	for _, c := range chunks[1:] {
		last := out[len(out)-1]
		if merged, ok := tryMerge(last, c); ok {
			out[len(out)-1] = merged
			continue
		}
		out = append(out, c)
	}
	return out
}

// tryMerge attempts to fold lower (the next chunk down, i.e. lower bit
// positions) into upper. Both must already be bit-adjacent.
func tryMerge(upper, lower Chunk) (Chunk, bool) {
	if upper.Lsb != lower.Msb+1 || upper.Kind != lower.Kind {
		return Chunk{}, false
	}
	switch upper.Kind {
	case FromUnused:
		return Chunk{Msb: upper.Msb, Lsb: lower.Lsb, Kind: FromUnused}, true

	case FromTieoff:
		combined := core.Combine(upper.Tieoff, lower.Tieoff, lower.Width())
		return Chunk{Msb: upper.Msb, Lsb: lower.Lsb, Kind: FromTieoff, Tieoff: combined}, true

	case FromDriver:
		if upper.WireName != lower.WireName {
			return Chunk{}, false
		}
		du, dl := upper.Driver, lower.Driver
		if du.Port != dl.Port || du.Lsb != dl.Msb+1 {
			return Chunk{}, false
		}
		return Chunk{
			Msb:      upper.Msb,
			Lsb:      lower.Lsb,
			Kind:     FromDriver,
			Driver:   core.PortSlice{Port: du.Port, Msb: du.Msb, Lsb: dl.Lsb},
			WireName: upper.WireName,
		}, true
	}
	return Chunk{}, false
}
