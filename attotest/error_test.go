package attotest

import (
	"strings"
	"testing"

	"github.com/mumme74/atto-go/atto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxErrors(t *testing.T) {
	RunTests(t, []Program{
		{
			Name:   "missing main",
			Source: `fn helper x is x`,
			Err:    "function main is not defined",
		},
		{
			Name:   "main with parameters",
			Source: `fn main x is x`,
			Err:    "function main must not take parameters",
		},
		{
			Name:   "empty source",
			Source: ``,
			Err:    "function main is not defined",
		},
		{
			Name:   "duplicate function",
			Source: `fn f is 1  fn f is 2  fn main is f`,
			Err:    "function f is already defined",
		},
		{
			Name:   "header without is",
			Source: `fn f x y`,
			Err:    "unexpected end of input, expected is",
		},
		{
			Name:   "keyword instead of is",
			Source: `fn f if is 1  fn main is 0`,
			Err:    "expected is, got if",
		},
		{
			Name:   "undefined identifier",
			Source: `fn main is frobnicate 1`,
			Err:    "undefined identifier: frobnicate",
		},
		{
			Name:   "keyword in expression position",
			Source: `fn main is + 1 fn`,
			Err:    "expected expression, got fn",
		},
		{
			Name:   "out of tokens mid consumption",
			Source: `fn main is + 1`,
			Err:    "unexpected end of input, expected expression",
		},
		{
			Name:   "unterminated string",
			Source: `fn main is "oops`,
			Err:    "unterminated string literal",
		},
		{
			Name:   "invalid number literal",
			Source: `fn main is 1.2.3`,
			Err:    "invalid number literal: 1.2.3",
		},
		{
			Name:   "stray tokens before the first fn",
			Source: `print "hi"  fn main is 0`,
			Err:    "expected fn, got identifier",
		},
	})
}

func TestSyntaxErrorPosition(t *testing.T) {
	env, _, _ := NewEnv("")
	err := env.LoadProgram("prog.at", "fn main is\n  + 1 bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prog.at:2:7")
	assert.Contains(t, err.Error(), "undefined identifier: bogus")
}

func TestRuntimeErrorTrace(t *testing.T) {
	env, _, _ := NewEnv("")
	src := `
fn inner x is head x
fn outer x is inner x
fn main is outer 3`
	require.NoError(t, env.LoadProgram("prog.at", src))
	_, err := env.Run()
	require.Error(t, err)
	rerr, ok := err.(*atto.RuntimeError)
	require.True(t, ok, "expected a runtime error, got %T", err)

	trace := rerr.Trace()
	assert.Contains(t, trace, "head: argument is not a list: number")
	assert.Contains(t, trace, "call trace [3 frames -- entrypoint last]")
	// innermost frame first, main last
	inner := strings.Index(trace, "inner")
	outer := strings.Index(trace, "outer")
	main := strings.Index(trace, "main")
	require.True(t, inner >= 0 && outer >= 0 && main >= 0, trace)
	assert.Less(t, inner, outer)
	assert.Less(t, outer, main)
}
