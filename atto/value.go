package atto

import (
	"math"
	"strconv"
	"strings"
)

// ValType is the type of a Val.
type ValType uint

// Possible ValType values.
const (
	VInvalid ValType = iota
	VNull
	VBool
	VNumber
	VString
	VEmpty
	VPair
)

var valTypeStrings = []string{
	VInvalid: "INVALID",
	VNull:    "null",
	VBool:    "bool",
	VNumber:  "number",
	VString:  "string",
	VEmpty:   "list",
	VPair:    "list",
}

func (t ValType) String() string {
	if int(t) >= len(valTypeStrings) {
		return valTypeStrings[VInvalid]
	}
	return valTypeStrings[t]
}

// Val is an atto value.  Vals are immutable after construction; lists share
// structure freely because no identity mutation is possible.  A list is
// either the empty sentinel (VEmpty) or a pair of head value and tail
// value (VPair).
type Val struct {
	Type ValType
	Bool bool
	Num  float64
	Str  string
	Head *Val // pair head, set when Type == VPair
	Tail *Val // pair tail, set when Type == VPair
}

var (
	nullVal  = &Val{Type: VNull}
	trueVal  = &Val{Type: VBool, Bool: true}
	falseVal = &Val{Type: VBool}
	emptyVal = &Val{Type: VEmpty}
)

// Null returns the null value.
func Null() *Val {
	return nullVal
}

// Bool returns a Val representing b.
func Bool(b bool) *Val {
	if b {
		return trueVal
	}
	return falseVal
}

// Number returns a Val representing the number x.
func Number(x float64) *Val {
	return &Val{Type: VNumber, Num: x}
}

// String returns a Val representing the string s.
func String(s string) *Val {
	return &Val{Type: VString, Str: s}
}

// Empty returns the empty list sentinel.
func Empty() *Val {
	return emptyVal
}

// Pair returns the list cell (head, tail).
func Pair(head, tail *Val) *Val {
	return &Val{Type: VPair, Head: head, Tail: tail}
}

// List constructs a proper list from vs.
func List(vs ...*Val) *Val {
	lis := Empty()
	for i := len(vs) - 1; i >= 0; i-- {
		lis = Pair(vs[i], lis)
	}
	return lis
}

// IsList returns true for values with list structure (empty or pair).
func (v *Val) IsList() bool {
	return v.Type == VEmpty || v.Type == VPair
}

// IsAtom returns true for values without list structure.
func (v *Val) IsAtom() bool {
	return !v.IsList()
}

// Equal reports structural equality between v and u.
func (v *Val) Equal(u *Val) bool {
	if v.Type != u.Type {
		// VEmpty and VPair are distinct list shapes, never equal.
		return false
	}
	switch v.Type {
	case VNull, VEmpty:
		return true
	case VBool:
		return v.Bool == u.Bool
	case VNumber:
		return v.Num == u.Num
	case VString:
		return v.Str == u.Str
	case VPair:
		return v.Head.Equal(u.Head) && v.Tail.Equal(u.Tail)
	default:
		return false
	}
}

// String renders v the way the print primitive does.  Strings render as
// their raw contents without quotes and numbers use the shortest decimal
// form that round-trips through litr.
func (v *Val) String() string {
	switch v.Type {
	case VNull:
		return "null"
	case VBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VNumber:
		return formatNumber(v.Num)
	case VString:
		return v.Str
	case VEmpty, VPair:
		return v.listString()
	default:
		return "INVALID"
	}
}

// formatNumber renders x in the shortest decimal form that round-trips
// through litr.  Integral values stay in fixed notation so counting
// programs never print scientific notation.
func formatNumber(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (v *Val) listString() string {
	var buf strings.Builder
	buf.WriteString("[")
	for first := true; ; first = false {
		if v.Type == VEmpty {
			break
		}
		if !first {
			buf.WriteString(" ")
		}
		if v.Type != VPair {
			// improper list tail
			buf.WriteString(". ")
			buf.WriteString(v.String())
			break
		}
		buf.WriteString(v.Head.String())
		v = v.Tail
	}
	buf.WriteString("]")
	return buf.String()
}
