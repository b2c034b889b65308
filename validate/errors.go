package validate

import "fmt"

var (
	// ErrGap classes a Drivable port with bits that no Chunk covers.
	ErrGap = fmt.Errorf("validate: undriven bit range")
	// ErrUnconsumed classes a CanDrive-only port with bits neither traced
	// to a consumer nor explicitly marked Unused.
	ErrUnconsumed = fmt.Errorf("validate: unconsumed bit range")
	// ErrInvalid wraps the aggregated error raised by MustValidate.
	ErrInvalid = fmt.Errorf("validate: definition failed validation")
)
