package resolve

import (
	"fmt"

	"github.com/canopyhdl/topstitch/core"
)

// Sentinel classes for resolution-time diagnostics (spec §4.5/§7).
var (
	ErrMultiplyDriven = fmt.Errorf("resolve: multiply driven")
	ErrNoDriver       = fmt.Errorf("resolve: no driver")
	ErrMultiTieoff    = fmt.Errorf("resolve: tied off multiple times")
	ErrMultiWire      = fmt.Errorf("resolve: multiple wire overrides")
	ErrWireOnInput    = fmt.Errorf("resolve: wire attached to an input")
	ErrBadUnused      = fmt.Errorf("resolve: unused marker conflicts with other connections")
)

func abort(qualified string, class error, format string, args ...interface{}) {
	panic(&core.Diagnostic{Qualified: qualified, Class: class, Detail: fmt.Sprintf(format, args...)})
}
