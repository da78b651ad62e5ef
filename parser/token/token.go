package token

import "fmt"

// Token is a single lexical token cut from atto source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used by the atto lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	IDENT
	NUMBER
	STRING

	// Keywords.  These are identifier-shaped but reserved.
	FN
	IS
	IF
	TRUE
	FALSE
	NULL

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		IDENT:   "identifier",
		NUMBER:  "number",
		STRING:  "string",
		FN:      "fn",
		IS:      "is",
		IF:      "if",
		TRUE:    "true",
		FALSE:   "false",
		NULL:    "null",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Keyword returns the keyword token type reserved for the given text, or
// IDENT if the text is not reserved.
func Keyword(text string) Type {
	switch text {
	case "fn":
		return FN
	case "is":
		return IS
	case "if":
		return IF
	case "true":
		return TRUE
	case "false":
		return FALSE
	case "null":
		return NULL
	}
	return IDENT
}

// Location is a position within a source file.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc == nil:
		return "<unknown>"
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}

// SyntaxError is a fatal error raised while lexing or parsing atto source.
// No partial program survives a SyntaxError; the parse phase aborts.
type SyntaxError struct {
	Msg    string
	Source *Location
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", err.Source, err.Msg)
}

// Errorf constructs a SyntaxError located at loc.
func Errorf(loc *Location, format string, v ...interface{}) *SyntaxError {
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, v...),
		Source: loc,
	}
}
