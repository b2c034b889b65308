package intf

import (
	"fmt"

	"github.com/canopyhdl/topstitch/core"
)

// ErrMismatch classes every interface-operator usage error: a missing
// function, an interface bound to the wrong definition, or similar.
var ErrMismatch = fmt.Errorf("intf: interface mismatch")

func abort(qualified string, format string, args ...interface{}) {
	panic(&core.Diagnostic{Qualified: qualified, Class: ErrMismatch, Detail: fmt.Sprintf(format, args...)})
}
