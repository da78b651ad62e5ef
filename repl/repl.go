// Package repl implements an interactive atto session.  Lines beginning
// with the fn keyword accumulate definitions; any other line is evaluated
// as the body of a transient zero-parameter main against everything
// defined so far.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mumme74/atto-go/atto"
	"github.com/mumme74/atto-go/parser"
)

// Options configures a repl session.
type Options struct {
	Prompt   string
	MaxDepth int  // 0 means atto.DefaultMaxDepth
	Corelib  bool // load the corelib into every evaluation
}

// Run reads and evaluates lines until EOF.
func Run(opts Options) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "atto> "
	}
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	var defs []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isDefinition(line) {
			// Validate before accepting; a bad definition would poison
			// every later line.
			_, err := newEnv(opts, append(defs, line), "")
			if err != nil {
				errln(err)
				continue
			}
			defs = append(defs, line)
			continue
		}
		evalLine(opts, defs, line)
	}
}

// evalLine wraps line into a transient main and runs it.  Definitions are
// reparsed each time; they contain no top-level effects so this is safe.
func evalLine(opts Options, defs []string, line string) {
	env, err := newEnv(opts, defs, line)
	if err != nil {
		errln(err)
		return
	}
	v, err := env.Run()
	if err != nil {
		var rerr *atto.RuntimeError
		if errors.As(err, &rerr) {
			errln(rerr.Trace())
			return
		}
		errln(err)
		return
	}
	if v.Type != atto.VNull {
		fmt.Println(v)
	}
}

// newEnv builds a fresh environment holding the corelib, the accumulated
// definitions, and (when expr is non-empty) a main wrapping expr.
func newEnv(opts Options, defs []string, expr string) (*atto.Env, error) {
	env := atto.NewEnv()
	env.Reader = parser.NewReader()
	if opts.MaxDepth > 0 {
		env.MaxDepth = opts.MaxDepth
	}
	if opts.Corelib {
		err := env.LoadCorelib()
		if err != nil {
			return nil, err
		}
	}
	src := strings.Join(defs, "\n")
	if expr == "" {
		err := env.Load("repl", src)
		if err != nil {
			return nil, err
		}
		return env, nil
	}
	src += "\nfn main is " + expr
	err := env.LoadProgram("repl", src)
	if err != nil {
		return nil, err
	}
	return env, nil
}

func isDefinition(line string) bool {
	return line == "fn" || strings.HasPrefix(line, "fn ") ||
		strings.HasPrefix(line, "fn\t")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
