// Package core implements the structural connectivity data model of
// TopStitch: module definitions, ports, bit-level slices, instances,
// interfaces, and the per-port connection lists that record how every bit
// is wired.
//
// A ModuleDefinition is a shared, mutable-interior node in a module graph.
// Ports and PortSlices carry only a weak (non-owning) back-reference to
// their enclosing definition, obtained with the standard library's weak
// package; dereferencing a slice whose definition has been collected
// panics, matching the source project's "weak/back reference, never
// ownership" design.
//
// Construction-time misuse (duplicate names, out-of-range slices, width
// mismatches, directional violations, mutating a frozen definition) panics
// immediately with a *Diagnostic rather than returning an error — see
// errors.go and SPEC_FULL.md §A.3.
package core
