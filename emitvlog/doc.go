// Package emitvlog is the emission shim of spec §2/§4: it walks a root
// definition's resolved connections (via resolve.Resolve, the same chunk
// data validate uses for coverage) and hands them to the sv package's
// AST and writer as the single expression-per-(instance,port) or
// continuous-assignment-per-ModDef-port-chunk the Verilog writer
// collaborator expects (spec §6).
//
// Emit always validates first (spec §2: "On demand, the user calls emit
// (which first runs validate)"). Every distinct definition reachable from
// root is rendered once, root first, in first-encounter order; a
// definition is rendered only as far as its own Usage allows: a full body
// for EmitDefinitionAndDescend/EmitDefinitionAndStop, a header-only stub
// for EmitStubAndStop, and nothing at all for EmitNothingAndStop.
// Descent into a definition's own instances stops wherever its Usage is
// not EmitDefinitionAndDescend, mirroring validate's own traversal gate.
package emitvlog
