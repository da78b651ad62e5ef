package atto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValString(t *testing.T) {
	tests := []struct {
		name string
		v    *Val
		want string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integral number", Number(42), "42"},
		{"negative number", Number(-3), "-3"},
		{"fractional number", Number(8.5), "8.5"},
		{"large integral stays fixed", Number(3628800), "3628800"},
		{"tiny number", Number(0.0000001), "1e-07"},
		{"string renders raw", String(`say "hi"`), `say "hi"`},
		{"empty list", Empty(), "[]"},
		{"proper list", List(Number(1), String("two"), Bool(true)), "[1 two true]"},
		{"nested list", List(List(Number(1)), Empty()), "[[1] []]"},
		{"improper list", Pair(Number(1), Number(2)), "[1 . 2]"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.v.String())
		})
	}
}

func TestValEqual(t *testing.T) {
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Number(1.5).Equal(Number(1.5)))
	assert.True(t, String("x").Equal(String("x")))
	assert.True(t, Empty().Equal(Empty()))
	assert.True(t, List(Number(1), Number(2)).Equal(Pair(Number(1), Pair(Number(2), Empty()))))

	assert.False(t, Number(1).Equal(String("1")))
	assert.False(t, Bool(false).Equal(Null()))
	assert.False(t, Empty().Equal(List(Number(1))))
	assert.False(t, List(Number(1)).Equal(List(Number(1), Number(2))))
	assert.False(t, Number(math.NaN()).Equal(Number(math.NaN())))
}

func TestValKinds(t *testing.T) {
	assert.True(t, Empty().IsList())
	assert.True(t, Pair(Number(1), Empty()).IsList())
	assert.False(t, String("s").IsList())
	assert.True(t, Null().IsAtom())
	assert.True(t, Number(0).IsAtom())
	assert.False(t, Empty().IsAtom())
}

func TestValTypeString(t *testing.T) {
	assert.Equal(t, "number", VNumber.String())
	assert.Equal(t, "list", VEmpty.String())
	assert.Equal(t, "list", VPair.String())
	assert.Equal(t, "INVALID", ValType(1000).String())
}
