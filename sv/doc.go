// Package sv is the internalized Verilog writer collaborator of spec §6:
// given a small AST (modules with ports, instances with parameter
// overrides and port-expression bindings, and continuous-assignment
// statements), it produces SystemVerilog text matching every stable
// format point byte-for-byte, so golden-file tests can compare emitted
// text directly. It does not parse Verilog — reading external source is
// the vlogimport package's job.
package sv
