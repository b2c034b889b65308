package emitvlog

import "fmt"

// ErrValidation wraps a failed pre-emission Validate call: Emit never
// renders a design that does not validate.
var ErrValidation = fmt.Errorf("emitvlog: design failed validation")
