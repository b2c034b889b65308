package core

import "fmt"

// Diagnostic is a located, descriptive error. The core never returns it as
// a Go error value from construction calls; it panics with one instead
// (spec §7: "fatal, descriptive abort"). The validate package recovers
// panics of this type to report them as errors (Validate, TryValidate);
// emitvlog.Emit returns validate's error.
type Diagnostic struct {
	// Qualified names the failing location, e.g. "Top.inst_a.port_x[3:1]".
	Qualified string
	// Class classifies the diagnostic for programmatic branching
	// (errors.Is against the Class sentinel, via Unwrap).
	Class error
	// Detail is a human-readable explanation.
	Detail string
}

func (d *Diagnostic) Error() string {
	if d.Qualified == "" {
		return fmt.Sprintf("%s: %s", d.Class, d.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", d.Qualified, d.Class, d.Detail)
}

func (d *Diagnostic) Unwrap() error { return d.Class }

// Sentinel classes. Callers branch with errors.Is(err, core.ErrX).
var (
	// ErrNameCollision: duplicate port/instance/interface/net name.
	ErrNameCollision = fmt.Errorf("core: name collision")
	// ErrRange: msb/lsb out of bounds, or a subdivide that does not divide evenly.
	ErrRange = fmt.Errorf("core: range error")
	// ErrWidthMismatch: connected slices, or a tieoff value, of incompatible width.
	ErrWidthMismatch = fmt.Errorf("core: width mismatch")
	// ErrDirectional: an operation attempted on a port/slice that cannot accept it.
	ErrDirectional = fmt.Errorf("core: directional violation")
	// ErrFrozen: mutation attempted on a frozen definition.
	ErrFrozen = fmt.Errorf("core: definition is frozen")
	// ErrEmptyMapping: an interface was defined with zero function entries.
	ErrEmptyMapping = fmt.Errorf("core: empty interface mapping")
	// ErrNotFound: a referenced port, instance, or interface does not exist.
	ErrNotFound = fmt.Errorf("core: not found")
	// ErrSemantic: a constraint violation not covered by the above classes
	// (e.g. negative parameter value, parameterizing a non-imported definition).
	ErrSemantic = fmt.Errorf("core: semantic constraint violated")
)

// abort panics with a located Diagnostic. Used internally by every
// construction-time check; never returned as a value.
func abort(qualified string, class error, format string, args ...interface{}) {
	panic(&Diagnostic{
		Qualified: qualified,
		Class:     class,
		Detail:    fmt.Sprintf(format, args...),
	})
}
