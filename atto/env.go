package atto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mumme74/atto-go/parser/token"
)

// DefaultMaxDepth bounds the call-frame chain.  Recursion is atto's only
// looping construct, so the limit has to accommodate legitimate deep
// recursion while still turning a runaway loop into a diagnosable error.
const DefaultMaxDepth = 10000

// MainFunc is the program entry point every program must define.
const MainFunc = "main"

// Env holds everything needed to load and evaluate atto programs: the
// user function registry, the interpreter's I/O streams, and the frame
// depth limit.  An Env is not safe for concurrent use; evaluation is
// strictly sequential.
type Env struct {
	// Funcs is the global function registry.  It is built in full during
	// the parse phase and never modified during evaluation.
	Funcs map[string]*Func

	// Reader parses source units during Load.  The cmd and repl layers
	// inject the parser package's implementation.
	Reader Reader

	// In supplies the input primitive.  Out receives program output, Errw
	// receives assert diagnostics.
	In   io.Reader
	Out  io.Writer
	Errw io.Writer

	// MaxDepth bounds the call-frame chain; 0 means DefaultMaxDepth.
	MaxDepth int

	stdin *bufio.Reader
}

// NewEnv returns an Env wired to the standard streams.
func NewEnv() *Env {
	return &Env{
		Funcs:    make(map[string]*Func),
		In:       os.Stdin,
		Out:      os.Stdout,
		Errw:     os.Stderr,
		MaxDepth: DefaultMaxDepth,
	}
}

// Load parses one source unit and adds its functions to the registry.
// Functions in the unit may call functions from units loaded earlier.
func (env *Env) Load(name, src string) error {
	if env.Reader == nil {
		return fmt.Errorf("no reader attached to environment")
	}
	fns, err := env.Reader.Read(name, src, env.Funcs)
	if err != nil {
		return err
	}
	for _, fn := range fns {
		env.Funcs[fn.Name] = fn
	}
	return nil
}

// LoadProgram loads a source unit that must form a runnable program: a
// zero-parameter main has to exist afterwards.  A missing or malformed
// main is a load-time syntax error; nothing is ever evaluated for such a
// program.
func (env *Env) LoadProgram(name, src string) error {
	err := env.Load(name, src)
	if err != nil {
		return err
	}
	fn := env.Funcs[MainFunc]
	switch {
	case fn == nil:
		return token.Errorf(&token.Location{File: name}, "function main is not defined")
	case fn.Arity() != 0:
		return token.Errorf(fn.Tok.Source, "function main must not take parameters")
	}
	return nil
}

// Run evaluates main's body in a fresh root frame and returns its value.
func (env *Env) Run() (*Val, error) {
	fn := env.Funcs[MainFunc]
	if fn == nil {
		return nil, rterrf(nil, "function main is not defined")
	}
	frame := NewFrame(nil, nil, fn, nil)
	return env.Eval(fn.Body, frame)
}

func (env *Env) readLine() (string, error) {
	if env.stdin == nil {
		env.stdin = bufio.NewReader(env.In)
	}
	line, err := env.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	// EOF with no data reads as the empty string.
	line = strings.TrimRight(line, "\n")
	line = strings.TrimRight(line, "\r")
	return line, nil
}

func (env *Env) reportf(format string, v ...interface{}) error {
	w := env.Errw
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, format+"\n", v...)
	return err
}
