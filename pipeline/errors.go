package pipeline

import (
	"fmt"

	"github.com/canopyhdl/topstitch/core"
)

// ErrPipeline classes every pipeline-operator usage error: a width
// mismatch, a non-positive depth, or an interface/function mismatch.
var ErrPipeline = fmt.Errorf("pipeline: invalid pipeline connection")

func abort(qualified string, format string, args ...interface{}) {
	panic(&core.Diagnostic{Qualified: qualified, Class: ErrPipeline, Detail: fmt.Sprintf(format, args...)})
}
