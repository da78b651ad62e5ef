package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/mumme74/atto-go/parser/internal/interntoken"
	"github.com/mumme74/atto-go/parser/token"
)

// Lexer splits atto source text into tokens.  The whole source is held in
// memory; atto programs are read in full before the parse phase begins.
//
// Atto's lexical rules are unusually permissive.  An identifier is any
// maximal run of non-whitespace characters that does not start a number or
// string literal, which is how symbolic names like ``+'' and ``#'' are
// ordinary identifiers bound to primitives.
type Lexer struct {
	file string
	src  string
	pos  int // byte offset of the next unread rune
	line int
	col  int

	intern *interntoken.Table

	// set when a token emission begins so emit() can locate it
	startPos  int
	startLine int
	startCol  int
}

func New(file, src string) *Lexer {
	return &Lexer{
		file:   file,
		src:    src,
		line:   1,
		col:    1,
		intern: interntoken.NewTable(),
	}
}

// Tokens scans the entire source and returns the token sequence, excluding
// the trailing EOF token.  The first malformed token aborts the scan.
func (lex *Lexer) Tokens() ([]*token.Token, error) {
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return toks, nil
		case token.ERROR, token.INVALID:
			return nil, token.Errorf(tok.Source, "%s", tok.Text)
		}
		toks = append(toks, tok)
	}
}

// NextToken scans and returns the next token.  At the end of input it
// returns an EOF token; malformed input yields an ERROR token whose text
// holds the message.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	lex.mark()
	c, ok := lex.peek()
	if !ok {
		return lex.emit(token.EOF, "")
	}
	switch {
	case isDigit(c):
		return lex.scanNumber()
	case c == '"':
		return lex.scanString()
	default:
		return lex.scanIdent()
	}
}

// mark records the position of the upcoming token.
func (lex *Lexer) mark() {
	lex.startPos = lex.pos
	lex.startLine = lex.line
	lex.startCol = lex.col
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	return &token.Token{
		Type: typ,
		Text: text,
		Source: &token.Location{
			File: lex.file,
			Pos:  lex.startPos,
			Line: lex.startLine,
			Col:  lex.startCol,
		},
	}
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	err := token.Errorf(nil, format, v...)
	return lex.emit(token.ERROR, err.Msg)
}

func (lex *Lexer) scanNumber() *token.Token {
	for {
		c, ok := lex.peek()
		if !ok || (!isDigit(c) && c != '.') {
			break
		}
		lex.next()
	}
	text := lex.src[lex.startPos:lex.pos]
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return lex.errorf("invalid number literal: %s", text)
	}
	return lex.emit(token.NUMBER, text)
}

// scanString consumes a double-quoted literal.  A quote preceded by a
// backslash does not terminate the literal; no other escape processing
// happens at scan time.
func (lex *Lexer) scanString() *token.Token {
	lex.next() // opening quote
	esc := false
	for {
		c, ok := lex.peek()
		if !ok {
			return lex.errorf("unterminated string literal")
		}
		lex.next()
		if c == '"' && !esc {
			return lex.emit(token.STRING, lex.src[lex.startPos:lex.pos])
		}
		esc = c == '\\' && !esc
	}
}

func (lex *Lexer) scanIdent() *token.Token {
	for {
		c, ok := lex.peek()
		if !ok || unicode.IsSpace(c) {
			break
		}
		lex.next()
	}
	text := lex.intern.Get(lex.src[lex.startPos:lex.pos])
	return lex.emit(token.Keyword(text), text)
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.peek()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		lex.next()
	}
}

func (lex *Lexer) peek() (rune, bool) {
	if lex.pos >= len(lex.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(lex.src[lex.pos:])
	return c, true
}

func (lex *Lexer) next() {
	c, n := utf8.DecodeRuneInString(lex.src[lex.pos:])
	lex.pos += n
	if c == '\n' {
		lex.line++
		lex.col = 1
	} else {
		lex.col++
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
