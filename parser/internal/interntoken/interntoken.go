// Package interntoken deduplicates token lexemes.  Atto identifiers are
// near-arbitrary runs of text and the same name appears many times in a
// token stream; interning keys the function and primitive registries on a
// single shared string per name.
package interntoken

import "sync"

type Table struct {
	mut    sync.RWMutex
	intern map[string]string
}

func NewTable() *Table {
	return &Table{
		intern: make(map[string]string),
	}
}

// Get returns a string that equals s.  Repeated calls with equal text
// return the same backing string, detaching lexemes from the (potentially
// large) source buffer they were sliced out of.
func (tab *Table) Get(s string) string {
	if tab == nil {
		return s
	}
	tab.mut.RLock()
	v, ok := tab.intern[s]
	tab.mut.RUnlock()
	if ok {
		return v
	}
	return tab.insert(s)
}

func (tab *Table) insert(s string) string {
	tab.mut.Lock()
	v, ok := tab.intern[s]
	if !ok {
		// Clone so the interned key does not pin the source buffer.
		v = string(append([]byte(nil), s...))
		tab.intern[v] = v
	}
	tab.mut.Unlock()
	return v
}
