// Package attotest runs whole atto programs and checks their observable
// behavior: stdout, the rendering of main's result, assert diagnostics,
// and errors.
package attotest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mumme74/atto-go/atto"
	"github.com/mumme74/atto-go/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Program is one interpreter test case.
type Program struct {
	Name     string
	Source   string
	Input    string // stdin consumed by the input primitive
	Corelib  bool   // load the corelib before Source
	MaxDepth int    // 0 means atto.DefaultMaxDepth

	Output string // expected stdout, verbatim
	Result string // expected rendering of main's value; "" skips the check
	Report string // expected assert diagnostics on the error stream
	Err    string // expected error substring; "" means the run must succeed
}

// NewEnv returns an environment wired for testing: parser attached,
// streams captured.
func NewEnv(input string) (*atto.Env, *bytes.Buffer, *bytes.Buffer) {
	env := atto.NewEnv()
	env.Reader = parser.NewReader()
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	env.In = strings.NewReader(input)
	env.Out = out
	env.Errw = errw
	return env, out, errw
}

// RunTests runs every program in an isolated environment.
func RunTests(t *testing.T, progs []Program) {
	for _, prog := range progs {
		prog := prog
		t.Run(prog.Name, func(t *testing.T) {
			env, out, errw := NewEnv(prog.Input)
			if prog.MaxDepth > 0 {
				env.MaxDepth = prog.MaxDepth
			}
			if prog.Corelib {
				require.NoError(t, env.LoadCorelib())
			}
			err := env.LoadProgram("test.at", prog.Source)
			var v *atto.Val
			if err == nil {
				v, err = env.Run()
			}
			if prog.Err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), prog.Err)
			} else {
				require.NoError(t, err)
				if prog.Result != "" {
					assert.Equal(t, prog.Result, v.String())
				}
			}
			assert.Equal(t, prog.Output, out.String(), "stdout")
			assert.Equal(t, prog.Report, errw.String(), "diagnostics")
		})
	}
}
