// Package pipeline implements the pipelining operators of spec §4.9:
// inserting an opaque, parameterized delay/register element between two
// slices (or between the matching functions of two interfaces) instead of
// connecting them directly, so a design's timing can be adjusted without
// touching its structural wiring. The delay element itself is treated as
// a black box (an EmitDefinitionAndStop definition with no body topstitch
// descends into) named "br_delay_nr", parameterized by Width and
// NumStages.
package pipeline
