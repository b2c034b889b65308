// Package resolve implements the connection resolution engine of spec §4.4:
// for a single Drivable port (a ModDef Output/InOut or a ModInst
// Input/InOut — the side that needs something to drive it), trace its
// connection list, fold in any tieoff/unused marks recorded directly on
// it, decompose the result into non-overlapping bit chunks, elect an
// expression source per chunk (§4.5), and merge adjacent chunks that
// describe the same contiguous source (§4.6).
//
// Resolve does not itself check full-width coverage; that is the
// validate package's job (spec §4.10 step 7), since the same chunk data
// feeds both the "driven" bitmap there and the emission shim.
package resolve
