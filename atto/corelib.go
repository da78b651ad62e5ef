package atto

import _ "embed"

// The corelib is written in atto itself on top of the native primitives.

//go:embed corelib/core.at
var corelibSource string

// CorelibName is the unit name corelib functions report in diagnostics.
const CorelibName = "corelib/core.at"

// LoadCorelib parses the embedded corelib into the registry.  It should
// run before any user source is loaded so user programs can call corelib
// functions.
func (env *Env) LoadCorelib() error {
	return env.Load(CorelibName, corelibSource)
}
