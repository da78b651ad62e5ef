package interntoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	tab := NewTable()
	a := tab.Get("print")
	b := tab.Get("pr" + "int")
	assert.Equal(t, a, b)
	assert.Equal(t, "print", a)
}

func TestNilTable(t *testing.T) {
	var tab *Table
	assert.Equal(t, "x", tab.Get("x"))
}
