package atto

// Reader parses atto source text into function definitions.  It is
// implemented by the parser package; an interface here keeps the core
// package free of a dependency on its own front end.
type Reader interface {
	// Read parses one source unit.  funcs holds the functions of
	// previously loaded units so their arities resolve at parse time; Read
	// must not modify it.
	Read(name, src string, funcs map[string]*Func) ([]*Func, error)
}
