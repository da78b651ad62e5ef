/*
Package parser builds atto syntax trees.

	program := <function>*
	function := 'fn' <ident> <ident>* 'is' <expr>
	expr := <literal> | <param> | 'if' <expr> <expr> <expr> | <call>
	call := <ident> <expr>{arity}

A call site has no delimiters; it consumes exactly as many expressions as
the callee's declared arity.  Arities therefore have to be known before
any body is parsed, so parsing runs in two passes: pass 1 records every
function's name and parameter list from its ``fn ... is'' header, pass 2
parses the bodies against that table.  This is what lets a function call
another function declared later in the source.

The arity rule has a deliberate consequence: a call supplied with fewer
expressions than the callee's arity does not fail to parse.  The shortfall
is filled by whatever expressions follow in the enclosing token stream,
because expression parsing has no notion of a call's own boundary.  Only
running out of tokens entirely is an error.
*/
package parser

import (
	"strconv"

	"github.com/mumme74/atto-go/atto"
	"github.com/mumme74/atto-go/parser/lexer"
	"github.com/mumme74/atto-go/parser/token"
)

// Reader adapts Parse to the atto.Reader interface used by atto.Env.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (*Reader) Read(name, src string, funcs map[string]*atto.Func) ([]*atto.Func, error) {
	return Parse(name, src, funcs)
}

// Parse parses one source unit and returns its functions in declaration
// order.  funcs holds functions from previously loaded units; their names
// resolve inside this unit and collide with redeclarations.
func Parse(name, src string, funcs map[string]*atto.Func) ([]*atto.Func, error) {
	toks, err := lexer.New(name, src).Tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{
		file:      name,
		toks:      toks,
		ext:       funcs,
		sigs:      make(map[string]*atto.Func),
		bodyStart: make(map[string]int),
	}
	err = p.scanSignatures()
	if err != nil {
		return nil, err
	}
	err = p.parseBodies()
	if err != nil {
		return nil, err
	}
	return p.order, nil
}

type parser struct {
	file string
	toks []*token.Token
	pos  int

	ext       map[string]*atto.Func // previously loaded units
	sigs      map[string]*atto.Func // functions of this unit
	order     []*atto.Func
	bodyStart map[string]int // token index just past each ``is''

	cur *atto.Func // function whose body is being parsed
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.toks) {
		return nil
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.toks) {
		return nil
	}
	return p.toks[p.pos]
}

// eofLoc locates the end of input for errors raised there.
func (p *parser) eofLoc() *token.Location {
	if len(p.toks) == 0 {
		return &token.Location{File: p.file, Line: 1, Col: 1}
	}
	return p.toks[len(p.toks)-1].Source
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	tok := p.next()
	if tok == nil {
		return nil, token.Errorf(p.eofLoc(), "unexpected end of input, expected %s", typ)
	}
	if tok.Type != typ {
		return nil, token.Errorf(tok.Source, "expected %s, got %s", typ, tok.Type)
	}
	return tok, nil
}

// scanSignatures is pass 1.  It records every ``fn <name> <param>* is''
// header and skips over the body tokens without parsing them; only the
// body's starting position matters here.
func (p *parser) scanSignatures() error {
	for p.peek() != nil {
		_, err := p.expect(token.FN)
		if err != nil {
			return err
		}
		err = p.scanSignature()
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) scanSignature() error {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return err
	}
	if p.sigs[name.Text] != nil || p.ext[name.Text] != nil {
		return token.Errorf(name.Source, "function %s is already defined", name.Text)
	}
	fn := &atto.Func{Name: name.Text, Tok: name}
	for {
		tok := p.peek()
		if tok == nil || tok.Type != token.IDENT {
			break
		}
		p.next()
		fn.Params = append(fn.Params, tok.Text)
	}
	_, err = p.expect(token.IS)
	if err != nil {
		return err
	}
	p.sigs[fn.Name] = fn
	p.order = append(p.order, fn)
	p.bodyStart[fn.Name] = p.pos
	p.skipBody()
	return nil
}

func (p *parser) skipBody() {
	for {
		tok := p.peek()
		if tok == nil || tok.Type == token.FN {
			return
		}
		p.next()
	}
}

// parseBodies is pass 2.  Every signature is known by now, so bodies may
// reference functions in any order.
func (p *parser) parseBodies() error {
	for _, fn := range p.order {
		p.cur = fn
		p.pos = p.bodyStart[fn.Name]
		body, err := p.parseExpr()
		if err != nil {
			return err
		}
		fn.Body = body
	}
	return nil
}

// parseExpr consumes one expression.  A call consumes exactly as many
// further expressions as the callee's arity; see the package comment for
// why no boundary checking happens here.
func (p *parser) parseExpr() (*atto.Node, error) {
	tok := p.next()
	if tok == nil {
		return nil, token.Errorf(p.eofLoc(), "unexpected end of input, expected expression")
	}
	switch tok.Type {
	case token.NUMBER:
		x, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, token.Errorf(tok.Source, "invalid number literal: %s", tok.Text)
		}
		return literal(tok, atto.Number(x)), nil
	case token.STRING:
		return literal(tok, atto.String(stringContents(tok.Text))), nil
	case token.TRUE:
		return literal(tok, atto.Bool(true)), nil
	case token.FALSE:
		return literal(tok, atto.Bool(false)), nil
	case token.NULL:
		return literal(tok, atto.Null()), nil
	case token.IF:
		return p.parseIf(tok)
	case token.IDENT:
		return p.parseIdent(tok)
	default:
		return nil, token.Errorf(tok.Source, "expected expression, got %s", tok.Type)
	}
}

func (p *parser) parseIf(tok *token.Token) (*atto.Node, error) {
	node := &atto.Node{Type: atto.NIf, Tok: tok}
	var err error
	node.Cond, err = p.parseExpr()
	if err != nil {
		return nil, err
	}
	node.Then, err = p.parseExpr()
	if err != nil {
		return nil, err
	}
	node.Else, err = p.parseExpr()
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseIdent(tok *token.Token) (*atto.Node, error) {
	if i := p.cur.ParamIndex(tok.Text); i >= 0 {
		return &atto.Node{Type: atto.NParam, Tok: tok, Index: i}, nil
	}
	arity, ok := p.arity(tok.Text)
	if !ok {
		return nil, token.Errorf(tok.Source, "undefined identifier: %s", tok.Text)
	}
	node := &atto.Node{Type: atto.NCall, Tok: tok, Name: tok.Text}
	tail := &node.Args
	for i := 0; i < arity; i++ {
		sub, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arg := &atto.Arg{Node: sub}
		*tail = arg
		tail = &arg.Next
	}
	return node, nil
}

// arity resolves a callee name the same way evaluation will: primitives
// first, then user functions (this unit before earlier units).
func (p *parser) arity(name string) (int, bool) {
	if n, ok := atto.PrimArity(name); ok {
		return n, true
	}
	if fn := p.sigs[name]; fn != nil {
		return fn.Arity(), true
	}
	if fn := p.ext[name]; fn != nil {
		return fn.Arity(), true
	}
	return 0, false
}

func literal(tok *token.Token, v *atto.Val) *atto.Node {
	return &atto.Node{Type: atto.NLiteral, Tok: tok, Val: v}
}

// stringContents strips the delimiting quotes from a STRING lexeme.  No
// escape sequences are processed; a backslash-quote pair stays verbatim.
func stringContents(text string) string {
	return text[1 : len(text)-1]
}
