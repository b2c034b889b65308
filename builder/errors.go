package builder

import "fmt"

// ErrNoVerilogOrigin classes a Parameterize call on a definition that was
// not built by vlogimport.Import (spec §4.1: Parameterize is only valid
// on an externally imported definition).
var ErrNoVerilogOrigin = fmt.Errorf("builder: definition has no VerilogOrigin")

// ErrNegativeParameter classes a Parameterize override with a negative value.
var ErrNegativeParameter = fmt.Errorf("builder: negative parameter override")
