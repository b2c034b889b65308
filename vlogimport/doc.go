// Package vlogimport is the minimal external-Verilog collaborator: given a
// module's source text, it extracts the port list (name, direction, bit
// width) and default parameter values needed to populate a
// core.VerilogOrigin, without attempting a full SystemVerilog parse. No
// slang-equivalent parser library appears anywhere in the reference
// corpus, so extraction is regexp-based on a deliberately narrow grammar
// subset (ANSI-style port headers, `parameter NAME = VALUE` declarations,
// and `[msb:lsb]` / `[WIDTH-1:0]`-with-integer-literal ranges). Text
// outside that subset is not matched and is skipped; ExtractPorts reports
// an error only when it finds no module or no port, or cannot evaluate a
// recognised range.
package vlogimport
