package atto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Builtin is a native implementation of an atto primitive.  Arguments
// arrive already evaluated, in call-site order; frame is the caller's
// frame and is used only for diagnostics.
type Builtin func(env *Env, frame *Frame, args []*Val) (*Val, error)

type langBuiltin struct {
	name  string
	arity int
	fun   Builtin
}

var langBuiltins = []*langBuiltin{
	// arithmetic
	{"+", 2, builtinAdd},
	{"-", 2, builtinSub},
	{"*", 2, builtinMul},
	{"/", 2, builtinDiv},
	{"%", 2, builtinRem},
	{"neg", 1, builtinNeg},
	// comparison and logic
	{"=", 2, builtinEq},
	{"<", 2, builtinLT},
	{"!", 1, builtinNot},
	{"or", 2, builtinOr},
	{"and", 2, builtinAnd},
	// lists
	{"head", 1, builtinHead},
	{"tail", 1, builtinTail},
	{"fuse", 2, builtinFuse},
	{"pair", 2, builtinPair},
	{"wrap", 1, builtinWrap},
	{"empty", 0, builtinEmpty},
	{"len", 1, builtinLen},
	{"skip", 2, builtinSkip},
	{"nth", 2, builtinNth},
	{"in", 2, builtinIn},
	{"split", 2, builtinSplit},
	// conversion
	{"litr", 1, builtinLitr},
	{"str", 1, builtinStr},
	{"words", 1, builtinWords},
	// I/O
	{"input", 1, builtinInput},
	{"print", 1, builtinPrint},
	// sequencing
	{"#", 2, builtinSeq},
	{"@", 2, builtinSeqFirst},
	// diagnostics
	{"assert", 1, builtinAssert},
	{"assert_eq", 2, builtinAssertEq},
	// predicates
	{"is_atom", 1, builtinIsAtom},
	{"is_str", 1, builtinIsStr},
	{"is_bool", 1, builtinIsBool},
	{"is_null", 1, builtinIsNull},
}

var builtinIndex = func() map[string]*langBuiltin {
	m := make(map[string]*langBuiltin, len(langBuiltins))
	for _, fun := range langBuiltins {
		if _, ok := m[fun.name]; ok {
			panic("duplicate builtin: " + fun.name)
		}
		m[fun.name] = fun
	}
	return m
}()

func lookupBuiltin(name string) *langBuiltin {
	return builtinIndex[name]
}

// PrimArity returns the declared arity of the named primitive.  Primitives
// take precedence over user functions during name resolution so the parser
// consults this before the user registry.
func PrimArity(name string) (int, bool) {
	fun := builtinIndex[name]
	if fun == nil {
		return 0, false
	}
	return fun.arity, true
}

// berrf builds the runtime error raised for a primitive misuse, naming the
// operation the way the language reference does.
func berrf(frame *Frame, name, format string, v ...interface{}) *RuntimeError {
	return rterrf(frame, "%s: %s", name, fmt.Sprintf(format, v...))
}

func numArg(frame *Frame, name string, args []*Val, i int) (float64, error) {
	if args[i].Type != VNumber {
		return 0, berrf(frame, name, "argument %d is not a number: %s", i+1, args[i].Type)
	}
	return args[i].Num, nil
}

func arith(name string, op func(a, b float64) float64) Builtin {
	return func(env *Env, frame *Frame, args []*Val) (*Val, error) {
		a, err := numArg(frame, name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(frame, name, args, 1)
		if err != nil {
			return nil, err
		}
		return Number(op(a, b)), nil
	}
}

var (
	builtinAdd = arith("+", func(a, b float64) float64 { return a + b })
	builtinSub = arith("-", func(a, b float64) float64 { return a - b })
	builtinMul = arith("*", func(a, b float64) float64 { return a * b })
)

func builtinDiv(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, err := numArg(frame, "/", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numArg(frame, "/", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, berrf(frame, "/", "division by zero")
	}
	return Number(a / b), nil
}

func builtinRem(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, err := numArg(frame, "%", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numArg(frame, "%", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, berrf(frame, "%", "division by zero")
	}
	// Floored modulo: the result takes the sign of the divisor.
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return Number(r), nil
}

func builtinNeg(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, err := numArg(frame, "neg", args, 0)
	if err != nil {
		return nil, err
	}
	return Number(-a), nil
}

func builtinEq(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Bool(args[0].Equal(args[1])), nil
}

func builtinLT(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, b := args[0], args[1]
	switch {
	case a.Type == VNumber && b.Type == VNumber:
		return Bool(a.Num < b.Num), nil
	case a.Type == VString && b.Type == VString:
		return Bool(a.Str < b.Str), nil
	default:
		return nil, berrf(frame, "<", "cannot order %s and %s", a.Type, b.Type)
	}
}

func boolArg(frame *Frame, name string, args []*Val, i int) (bool, error) {
	if args[i].Type != VBool {
		return false, berrf(frame, name, "argument %d is not a bool: %s", i+1, args[i].Type)
	}
	return args[i].Bool, nil
}

func builtinNot(env *Env, frame *Frame, args []*Val) (*Val, error) {
	b, err := boolArg(frame, "!", args, 0)
	if err != nil {
		return nil, err
	}
	return Bool(!b), nil
}

func builtinOr(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, err := boolArg(frame, "or", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := boolArg(frame, "or", args, 1)
	if err != nil {
		return nil, err
	}
	return Bool(a || b), nil
}

func builtinAnd(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, err := boolArg(frame, "and", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := boolArg(frame, "and", args, 1)
	if err != nil {
		return nil, err
	}
	return Bool(a && b), nil
}

func builtinHead(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	switch v.Type {
	case VPair:
		return v.Head, nil
	case VString:
		r := []rune(v.Str)
		if len(r) == 0 {
			return nil, berrf(frame, "head", "empty string has no head")
		}
		return String(string(r[0])), nil
	case VEmpty:
		return nil, berrf(frame, "head", "empty list has no head")
	default:
		return nil, berrf(frame, "head", "argument is not a list: %s", v.Type)
	}
}

func builtinTail(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	switch v.Type {
	case VPair:
		return v.Tail, nil
	case VString:
		r := []rune(v.Str)
		if len(r) == 0 {
			return nil, berrf(frame, "tail", "empty string has no tail")
		}
		return String(string(r[1:])), nil
	case VEmpty:
		return nil, berrf(frame, "tail", "empty list has no tail")
	default:
		return nil, berrf(frame, "tail", "argument is not a list: %s", v.Type)
	}
}

// listVals walks a proper list into a slice.  The false return signals an
// improper or non-list value.
func listVals(v *Val) ([]*Val, bool) {
	var vs []*Val
	for ; v.Type == VPair; v = v.Tail {
		vs = append(vs, v.Head)
	}
	if v.Type != VEmpty {
		return nil, false
	}
	return vs, true
}

func builtinFuse(env *Env, frame *Frame, args []*Val) (*Val, error) {
	a, b := args[0], args[1]
	if a.Type == VString && b.Type == VString {
		return String(a.Str + b.Str), nil
	}
	if !a.IsList() || !b.IsList() {
		return nil, berrf(frame, "fuse", "cannot fuse %s and %s", a.Type, b.Type)
	}
	vs, ok := listVals(a)
	if !ok {
		return nil, berrf(frame, "fuse", "first argument is an improper list")
	}
	lis := b
	for i := len(vs) - 1; i >= 0; i-- {
		lis = Pair(vs[i], lis)
	}
	return lis, nil
}

func builtinPair(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Pair(args[0], args[1]), nil
}

func builtinWrap(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Pair(args[0], Empty()), nil
}

func builtinEmpty(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Empty(), nil
}

func builtinLen(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	if v.Type == VString {
		return Number(float64(len([]rune(v.Str)))), nil
	}
	vs, ok := listVals(v)
	if !ok {
		return nil, berrf(frame, "len", "argument is not a proper list: %s", v.Type)
	}
	return Number(float64(len(vs))), nil
}

// indexArg reads a whole, non-negative number argument.
func indexArg(frame *Frame, name string, args []*Val, i int) (int, error) {
	x, err := numArg(frame, name, args, i)
	if err != nil {
		return 0, err
	}
	n := int(x)
	if float64(n) != x || n < 0 {
		return 0, berrf(frame, name, "argument %d is not a natural number: %v", i+1, args[i])
	}
	return n, nil
}

func builtinSkip(env *Env, frame *Frame, args []*Val) (*Val, error) {
	n, err := indexArg(frame, "skip", args, 0)
	if err != nil {
		return nil, err
	}
	v := args[1]
	if v.Type == VString {
		r := []rune(v.Str)
		if n > len(r) {
			n = len(r)
		}
		return String(string(r[n:])), nil
	}
	vs, ok := listVals(v)
	if !ok {
		return nil, berrf(frame, "skip", "second argument is not a proper list: %s", v.Type)
	}
	if n > len(vs) {
		n = len(vs)
	}
	return List(vs[n:]...), nil
}

func builtinNth(env *Env, frame *Frame, args []*Val) (*Val, error) {
	n, err := indexArg(frame, "nth", args, 0)
	if err != nil {
		return nil, err
	}
	v := args[1]
	if v.Type == VString {
		r := []rune(v.Str)
		if n >= len(r) {
			return nil, berrf(frame, "nth", "index %d out of range (len %d)", n, len(r))
		}
		return String(string(r[n])), nil
	}
	if !v.IsList() {
		return nil, berrf(frame, "nth", "second argument is not a list: %s", v.Type)
	}
	for i := n; v.Type == VPair; v = v.Tail {
		if i == 0 {
			return v.Head, nil
		}
		i--
	}
	return nil, berrf(frame, "nth", "index %d out of range", n)
}

func builtinIn(env *Env, frame *Frame, args []*Val) (*Val, error) {
	x, v := args[0], args[1]
	if v.Type == VString {
		if x.Type != VString {
			return nil, berrf(frame, "in", "cannot search a string for %s", x.Type)
		}
		return Bool(strings.Contains(v.Str, x.Str)), nil
	}
	if !v.IsList() {
		return nil, berrf(frame, "in", "second argument is not a list: %s", v.Type)
	}
	for ; v.Type == VPair; v = v.Tail {
		if v.Head.Equal(x) {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

func builtinSplit(env *Env, frame *Frame, args []*Val) (*Val, error) {
	n, err := indexArg(frame, "split", args, 0)
	if err != nil {
		return nil, err
	}
	v := args[1]
	if v.Type == VString {
		r := []rune(v.Str)
		if n > len(r) {
			n = len(r)
		}
		return List(String(string(r[:n])), String(string(r[n:]))), nil
	}
	vs, ok := listVals(v)
	if !ok {
		return nil, berrf(frame, "split", "second argument is not a proper list: %s", v.Type)
	}
	if n > len(vs) {
		n = len(vs)
	}
	return List(List(vs[:n]...), List(vs[n:]...)), nil
}

func builtinLitr(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	switch v.Type {
	case VNumber:
		return v, nil
	case VString:
		x, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil, berrf(frame, "litr", "cannot convert %q to a number", v.Str)
		}
		return Number(x), nil
	default:
		return nil, berrf(frame, "litr", "cannot convert %s to a number", v.Type)
	}
}

func builtinStr(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return String(args[0].String()), nil
}

func builtinWords(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	if v.Type != VString {
		return nil, berrf(frame, "words", "argument is not a string: %s", v.Type)
	}
	fields := strings.Fields(v.Str)
	vs := make([]*Val, len(fields))
	for i, w := range fields {
		vs[i] = String(w)
	}
	return List(vs...), nil
}

func builtinInput(env *Env, frame *Frame, args []*Val) (*Val, error) {
	_, err := fmt.Fprint(env.Out, args[0].String())
	if err != nil {
		return nil, berrf(frame, "input", "write prompt: %v", err)
	}
	line, err := env.readLine()
	if err != nil {
		return nil, berrf(frame, "input", "read: %v", err)
	}
	return String(line), nil
}

func builtinPrint(env *Env, frame *Frame, args []*Val) (*Val, error) {
	_, err := fmt.Fprintln(env.Out, args[0].String())
	if err != nil {
		return nil, berrf(frame, "print", "write: %v", err)
	}
	return Null(), nil
}

func builtinSeq(env *Env, frame *Frame, args []*Val) (*Val, error) {
	// The first argument was evaluated for effect only.
	return args[1], nil
}

func builtinSeqFirst(env *Env, frame *Frame, args []*Val) (*Val, error) {
	// The second argument was evaluated for effect only.
	return args[0], nil
}

func builtinAssert(env *Env, frame *Frame, args []*Val) (*Val, error) {
	v := args[0]
	if v.Type == VBool && v.Bool {
		return Bool(true), nil
	}
	err := env.reportf("assertion failed: %s", v)
	if err != nil {
		return nil, berrf(frame, "assert", "write: %v", err)
	}
	return Bool(false), nil
}

func builtinAssertEq(env *Env, frame *Frame, args []*Val) (*Val, error) {
	if args[0].Equal(args[1]) {
		return Bool(true), nil
	}
	err := env.reportf("assertion failed: %s != %s", args[0], args[1])
	if err != nil {
		return nil, berrf(frame, "assert_eq", "write: %v", err)
	}
	return Bool(false), nil
}

func builtinIsAtom(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Bool(args[0].IsAtom()), nil
}

func builtinIsStr(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Bool(args[0].Type == VString), nil
}

func builtinIsBool(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Bool(args[0].Type == VBool), nil
}

func builtinIsNull(env *Env, frame *Frame, args []*Val) (*Val, error) {
	return Bool(args[0].Type == VNull), nil
}
