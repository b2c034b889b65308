package vlogimport

import "fmt"

// ErrParse classes every extraction failure (unsupported syntax, unbound
// parameter, malformed range) into one sentinel for errors.Is callers.
var ErrParse = fmt.Errorf("vlogimport: parse error")
