// Package intf implements the interface operators of spec §4.8: bulk
// operations over a core.Interface's ordered function -> bit-slice
// mapping, so two definitions' bundles of related ports (a handshake's
// valid/ready/data, an AXI channel, ...) can be connected, exported
// through an instance boundary, subdivided into lanes, or tied off/marked
// unused as a unit instead of port-by-port.
package intf
