package core

import "sort"

// Connection pairs a slice of a port ("This") with whatever the other side
// of that bit range is connected to ("Other"). Connections are recorded
// symmetrically: connecting two PortSlices appends one Connection to each
// side's own ConnectionList (spec §3, "Symmetric record").
type Connection struct {
	This  PortSlice
	Other ConnectedItem
}

// ConnectionList is the ordered, per-port record of every connection
// originating at that port (spec §3/§4.3). Order is insertion order;
// operations never reorder existing entries.
type ConnectionList []Connection

// Slice clips cl to the window [msb:lsb], re-expressing the Other side of
// every overlapping entry by the same offset. Entries that do not overlap
// the window are dropped.
func (cl ConnectionList) Slice(msb, lsb int) ConnectionList {
	var out ConnectionList
	for _, c := range cl {
		lo := max(c.This.Lsb, lsb)
		hi := min(c.This.Msb, msb)
		if lo > hi {
			continue
		}
		offset := lo - c.This.Lsb
		w := hi - lo + 1
		out = append(out, Connection{
			This:  PortSlice{Port: c.This.Port, Msb: hi, Lsb: lo},
			Other: c.Other.reslice(offset, w),
		})
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Trace recursively expands every PortSliceRef arc reachable from cl,
// re-expressing every reachable endpoint (tieoff, unused mark, wire, or a
// terminal port slice with no further outgoing arc) in terms of the
// originating entry's own "This" coordinates. Cycles are detected via a
// visited-slice set and are fatal (spec §4.3).
//
// Simplification: the "do not go backward onto the exact
// slice just came from" rule is applied when the candidate arc's target
// matches the slice we arrived from exactly (same port, same msb/lsb). A
// back-arc recorded at a different bit granularity than the forward hop
// is instead treated as an ordinary forward arc; cycle detection still
// catches any resulting infinite loop.
func (cl ConnectionList) Trace() ConnectionList {
	var out ConnectionList
	for _, c := range cl {
		visited := map[PortSlice]bool{}
		out = append(out, traceEntry(c, visited)...)
	}
	return out
}

func traceEntry(c Connection, visited map[PortSlice]bool) ConnectionList {
	ref, ok := c.Other.(PortSliceRef)
	if !ok {
		return ConnectionList{c}
	}
	return traceForward(ref.Slice, c.This, visited)
}

// traceForward explores outward from S, having arrived via fromSlice
// (the slice on the other port whose symmetric back-arc should not be
// re-followed). Results are expressed in fromSlice's coordinate frame,
// shifted so that position 0 of fromSlice's range lines up with position 0
// of S's range (both are exactly fromSlice.Width() wide, enforced at
// Connect time).
func traceForward(S PortSlice, fromSlice PortSlice, visited map[PortSlice]bool) ConnectionList {
	if visited[S] {
		panic(&Diagnostic{
			Qualified: S.QualifiedName(),
			Class:     ErrSemantic,
			Detail:    "cycle detected in connection graph, revisited " + S.QualifiedName() + " reached from " + fromSlice.QualifiedName(),
		})
	}
	visited[S] = true

	own := S.Port.connList().Slice(S.Msb, S.Lsb)

	// rootLsb maps a bit at S.Lsb to fromSlice.Lsb (and so on, linearly).
	toRoot := func(localLsb, w int) PortSlice {
		shift := fromSlice.Lsb - S.Lsb
		return PortSlice{Port: fromSlice.Port, Msb: localLsb + shift + w - 1, Lsb: localLsb + shift}
	}

	var out ConnectionList
	covered := make([]bool, S.Width())
	markCovered := func(lsb, w int) {
		for i := 0; i < w; i++ {
			covered[lsb-S.Lsb+i] = true
		}
	}

	for _, e := range own {
		if ref, ok := e.Other.(PortSliceRef); ok {
			if ref.Slice.Port == fromSlice.Port && ref.Slice == fromSlice {
				// The only arc back here is the symmetric entry we just
				// arrived through: S itself (this sub-range of it) is the
				// terminal driver/receiver, and that direct hop must still
				// be recorded before the backward-skip discards the arc,
				// or a plain point-to-point connection traces to nothing.
				out = append(out, Connection{
					This:  toRoot(e.This.Lsb, e.This.Width()),
					Other: PortSliceRef{Slice: e.This},
				})
				markCovered(e.This.Lsb, e.This.Width())
				continue
			}
			sub := traceForward(ref.Slice, e.This, visited)
			for _, s := range sub {
				out = append(out, Connection{This: toRoot(s.This.Lsb, s.This.Width()), Other: s.Other})
			}
			markCovered(e.This.Lsb, e.This.Width())
			continue
		}
		out = append(out, Connection{This: toRoot(e.This.Lsb, e.This.Width()), Other: e.Other})
		markCovered(e.This.Lsb, e.This.Width())
	}

	// Any uncovered sub-range of S is a terminal: S itself (with no
	// further arc) is the driver/receiver for those bits.
	i := 0
	for i < len(covered) {
		if covered[i] {
			i++
			continue
		}
		j := i
		for j < len(covered) && !covered[j] {
			j++
		}
		lsb := S.Lsb + i
		w := j - i
		out = append(out, Connection{
			This:  toRoot(lsb, w),
			Other: PortSliceRef{Slice: PortSlice{Port: S.Port, Msb: lsb + w - 1, Lsb: lsb}},
		})
		i = j
	}

	return out
}

// MakeNonOverlapping partitions cl into contiguous, pairwise-disjoint
// chunks (each its own ConnectionList, possibly with multiple entries if
// several items land on exactly the same sub-range) covering the union of
// cl's This ranges (spec §4.3).
func (cl ConnectionList) MakeNonOverlapping() []ConnectionList {
	if len(cl) == 0 {
		return nil
	}
	bpSet := map[int]bool{}
	for _, c := range cl {
		bpSet[c.This.Lsb] = true
		bpSet[c.This.Msb+1] = true
	}
	bps := make([]int, 0, len(bpSet))
	for bp := range bpSet {
		bps = append(bps, bp)
	}
	sort.Ints(bps)

	var chunks []ConnectionList
	for i := 0; i+1 < len(bps); i++ {
		lo, hi := bps[i], bps[i+1]-1
		chunk := cl.Slice(hi, lo)
		if len(chunk) > 0 {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
