// Package builder implements the "canned transform" derivations of spec
// §4.1: constructing a new ModuleDefinition whose shape is mechanically
// derived from an existing one — a stub with the same ports and no body,
// a wrapper instantiating the original once, or an existing externally
// imported definition with its parameters overridden — rather than built
// up port-by-port by hand.
package builder
