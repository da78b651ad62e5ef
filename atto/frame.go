package atto

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mumme74/atto-go/parser/token"
)

// Frame is the context of one function call: the values bound to the
// callee's parameters, plus provenance for diagnostics.  A frame is
// created when a user function is called and lives exactly as long as the
// call's evaluation.  The Caller link is never mutated after creation;
// error reporting walks the chain read-only.
type Frame struct {
	Caller *Frame
	Tok    *token.Token // call-site token, nil for the root frame
	Args   []*Val
	Fn     *Func

	depth int
}

// NewFrame returns a frame for a call to fn made from caller at the token
// site.  The root frame has a nil caller and site.
func NewFrame(caller *Frame, site *token.Token, fn *Func, args []*Val) *Frame {
	f := &Frame{
		Caller: caller,
		Tok:    site,
		Args:   args,
		Fn:     fn,
	}
	if caller != nil {
		f.depth = caller.depth + 1
	}
	return f
}

// Depth returns the number of callers below this frame.
func (f *Frame) Depth() int {
	return f.depth
}

// Backtrace renders the frame chain from f back to the root frame.
func (f *Frame) Backtrace() string {
	var buf bytes.Buffer
	_ = f.writeBacktrace(&buf)
	return buf.String()
}

func (f *Frame) writeBacktrace(w io.Writer) error {
	n := 0
	for fr := f; fr != nil; fr = fr.Caller {
		n++
	}
	_, err := fmt.Fprintf(w, "call trace [%d frames -- entrypoint last]:\n", n)
	if err != nil {
		return err
	}
	for fr := f; fr != nil; fr = fr.Caller {
		n--
		site := ""
		if fr.Tok != nil {
			site = " at " + fr.Tok.Source.String()
		}
		_, err = fmt.Fprintf(w, "  height %d: %s%s\n", n, fr.Fn.Name, site)
		if err != nil {
			return err
		}
	}
	return nil
}
