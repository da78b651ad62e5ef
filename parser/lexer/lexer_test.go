package lexer

import (
	"testing"

	"github.com/mumme74/atto-go/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		types []token.Type
		texts []string
	}{
		{
			name:  "function header",
			src:   "fn add x y is + x y",
			types: []token.Type{token.FN, token.IDENT, token.IDENT, token.IDENT, token.IS, token.IDENT, token.IDENT, token.IDENT},
			texts: []string{"fn", "add", "x", "y", "is", "+", "x", "y"},
		},
		{
			name:  "literals",
			src:   `42 3.14 "hi" true false null`,
			types: []token.Type{token.NUMBER, token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL},
			texts: []string{"42", "3.14", `"hi"`, "true", "false", "null"},
		},
		{
			name:  "symbolic identifiers",
			src:   "# @ <= != $weird",
			types: []token.Type{token.IDENT, token.IDENT, token.IDENT, token.IDENT, token.IDENT},
			texts: []string{"#", "@", "<=", "!=", "$weird"},
		},
		{
			name:  "identifiers end only at whitespace",
			src:   `if0 fn! truex`,
			types: []token.Type{token.IDENT, token.IDENT, token.IDENT},
			texts: []string{"if0", "fn!", "truex"},
		},
		{
			name:  "number ends at a non digit",
			src:   "123abc",
			types: []token.Type{token.NUMBER, token.IDENT},
			texts: []string{"123", "abc"},
		},
		{
			name:  "escaped quote stays inside the string",
			src:   `"a\"b"`,
			types: []token.Type{token.STRING},
			texts: []string{`"a\"b"`},
		},
		{
			name:  "whitespace is insignificant",
			src:   "\n\t 1\n\n2 \t",
			types: []token.Type{token.NUMBER, token.NUMBER},
			texts: []string{"1", "2"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			toks, err := New("test.at", test.src).Tokens()
			require.NoError(t, err)
			require.Len(t, toks, len(test.types))
			for i, tok := range toks {
				assert.Equal(t, test.types[i], tok.Type, "token %d type", i)
				assert.Equal(t, test.texts[i], tok.Text, "token %d text", i)
			}
		})
	}
}

func TestTokenLocations(t *testing.T) {
	toks, err := New("test.at", "fn main is\n  print \"x\"").Tokens()
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, &token.Location{File: "test.at", Pos: 0, Line: 1, Col: 1}, toks[0].Source)
	assert.Equal(t, &token.Location{File: "test.at", Pos: 3, Line: 1, Col: 4}, toks[1].Source)
	assert.Equal(t, &token.Location{File: "test.at", Pos: 13, Line: 2, Col: 3}, toks[3].Source)
	assert.Equal(t, "test.at:2:9", toks[4].Source.String())
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unterminated string", `print "oops`, "unterminated string literal"},
		{"unterminated escape", `"a\"`, "unterminated string literal"},
		{"two decimal points", "1.2.3", "invalid number literal: 1.2.3"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := New("test.at", test.src).Tokens()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
			var serr *token.SyntaxError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestEOFToken(t *testing.T) {
	lex := New("test.at", "x")
	assert.Equal(t, token.IDENT, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}
