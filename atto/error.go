package atto

import "fmt"

// RuntimeError is a fatal error raised during evaluation.  It carries the
// frame chain active at the point of failure; there is no catch construct
// in the language so every RuntimeError propagates to the top level.
type RuntimeError struct {
	Msg   string
	Frame *Frame
}

func (err *RuntimeError) Error() string {
	return "runtime error: " + err.Msg
}

// Trace renders the error with the full call trace back to main.
func (err *RuntimeError) Trace() string {
	if err.Frame == nil {
		return err.Error()
	}
	return err.Error() + "\n" + err.Frame.Backtrace()
}

func rterrf(frame *Frame, format string, v ...interface{}) *RuntimeError {
	return &RuntimeError{
		Msg:   fmt.Sprintf(format, v...),
		Frame: frame,
	}
}
