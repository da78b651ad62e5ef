package attotest

import "testing"

func TestListOps(t *testing.T) {
	RunTests(t, []Program{
		{
			Name:   "pair wrap empty",
			Source: `fn main is pair 1 pair 2 wrap 3`,
			Result: "[1 2 3]",
		},
		{
			Name:   "head and tail",
			Source: `fn main is pair head wrap 9 tail pair 1 wrap 2`,
			Result: "[9 [2]]",
		},
		{
			Name:   "head of empty list",
			Source: `fn main is head empty`,
			Err:    "head: empty list has no head",
		},
		{
			Name:   "head of a non list",
			Source: `fn main is head 5`,
			Err:    "head: argument is not a list: number",
		},
		{
			Name:   "fuse concatenates",
			Source: `fn main is fuse pair 1 wrap 2 wrap 3`,
			Result: "[1 2 3]",
		},
		{
			Name:   "fuse mixed kinds",
			Source: `fn main is fuse wrap 1 "s"`,
			Err:    "fuse: cannot fuse list and string",
		},
		{
			Name:   "len of skip",
			Source: `fn main is len skip 2 pair 1 pair 2 wrap 3`,
			Result: "1",
		},
		{
			Name:   "skip past the end clamps to empty",
			Source: `fn main is len skip 9 wrap 1`,
			Result: "0",
		},
		{
			Name:   "nth is zero based",
			Source: `fn main is nth 1 pair 10 pair 20 wrap 30`,
			Result: "20",
		},
		{
			Name:   "nth out of range",
			Source: `fn main is nth 3 wrap 1`,
			Err:    "nth: index 3 out of range",
		},
		{
			Name:   "in finds an element",
			Source: `fn main is in 2 pair 1 pair 2 wrap 3`,
			Result: "true",
		},
		{
			Name:   "in misses",
			Source: `fn main is in 9 wrap 1`,
			Result: "false",
		},
		{
			Name:   "split is take plus skip",
			Source: `fn main is split 2 pair 1 pair 2 pair 3 wrap 4`,
			Result: "[[1 2] [3 4]]",
		},
		{
			Name:   "improper list renders with a dot",
			Source: `fn main is pair 1 2`,
			Result: "[1 . 2]",
		},
	})
}

func TestStringsAsLists(t *testing.T) {
	RunTests(t, []Program{
		{
			Name:   "head and tail of a string",
			Source: `fn main is pair head "abc" wrap tail "abc"`,
			Result: "[a [bc]]",
		},
		{
			Name:   "len counts runes",
			Source: `fn main is len "héllo"`,
			Result: "5",
		},
		{
			Name:   "skip and nth on strings",
			Source: `fn main is fuse skip 3 "abcdef" nth 0 "xyz"`,
			Result: "defx",
		},
		{
			Name:   "in is a substring test",
			Source: `fn main is in "ell" "hello"`,
			Result: "true",
		},
		{
			Name:   "split a string",
			Source: `fn main is split 2 "abcd"`,
			Result: "[ab cd]",
		},
		{
			Name:   "fuse strings",
			Source: `fn main is fuse "foo" "bar"`,
			Result: "foobar",
		},
	})
}

func TestConversions(t *testing.T) {
	RunTests(t, []Program{
		{
			Name:   "litr of str round-trips",
			Source: `fn main is litr str 42.5`,
			Result: "42.5",
		},
		{
			Name:   "str of litr canonicalizes",
			Source: `fn main is str litr "007.250"`,
			Result: "7.25",
		},
		{
			Name:   "litr rejects non numeric strings",
			Source: `fn main is litr "seven"`,
			Err:    `litr: cannot convert "seven" to a number`,
		},
		{
			Name:   "litr rejects lists",
			Source: `fn main is litr wrap 1`,
			Err:    "litr: cannot convert list to a number",
		},
		{
			Name:   "str renders like print",
			Source: `fn main is str pair 1 wrap "two"`,
			Result: "[1 two]",
		},
		{
			Name:   "words splits on whitespace",
			Source: `fn main is words "the  quick	fox"`,
			Result: "[the quick fox]",
		},
	})
}
