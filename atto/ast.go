package atto

import "github.com/mumme74/atto-go/parser/token"

// NodeType is the type of an AST Node.
type NodeType uint

// Possible NodeType values.
const (
	NInvalid NodeType = iota
	NLiteral
	NParam
	NCall
	NIf
)

var nodeTypeStrings = []string{
	NInvalid: "INVALID",
	NLiteral: "literal",
	NParam:   "parameter",
	NCall:    "call",
	NIf:      "if",
}

func (t NodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return nodeTypeStrings[NInvalid]
	}
	return nodeTypeStrings[t]
}

// Node is one expression in a function body.  Nodes form a strict tree
// owned by the containing Func; argument chains are singly linked Arg
// cells in call-site order.
type Node struct {
	Type NodeType
	Tok  *token.Token // the token that produced this node

	Val   *Val   // NLiteral
	Index int    // NParam: position in the enclosing function's parameter list
	Name  string // NCall: callee (primitive or user function)
	Args  *Arg   // NCall: argument chain head, nil for arity 0

	Cond *Node // NIf
	Then *Node // NIf
	Else *Node // NIf
}

// Arg is one link in a call's argument chain.
type Arg struct {
	Node *Node
	Next *Arg
}

// Func is a user-defined function.  Funcs live in an Env's registry, built
// in full before any evaluation begins and immutable thereafter.
type Func struct {
	Name   string
	Params []string
	Body   *Node
	Tok    *token.Token // the token declaring the function's name
}

// Arity returns the number of declared parameters.
func (f *Func) Arity() int {
	return len(f.Params)
}

// ParamIndex returns the position of name in the parameter list, or -1.
func (f *Func) ParamIndex(name string) int {
	for i, p := range f.Params {
		if p == name {
			return i
		}
	}
	return -1
}
