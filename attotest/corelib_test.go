package attotest

import "testing"

func TestCorelib(t *testing.T) {
	RunTests(t, []Program{
		{
			Name:    "not",
			Source:  `fn main is not false`,
			Corelib: true,
			Result:  "true",
		},
		{
			Name:    "abs max min",
			Source:  `fn main is pair abs neg 3 pair max 1 2 wrap min 1 2`,
			Corelib: true,
			Result:  "[3 2 1]",
		},
		{
			Name:    "take and last",
			Source:  `fn main is pair take 2 pair 1 pair 2 wrap 3 wrap last wrap 9`,
			Corelib: true,
			Result:  "[[1 2] 9]",
		},
		{
			Name:    "reverse",
			Source:  `fn main is reverse pair 1 pair 2 wrap 3`,
			Corelib: true,
			Result:  "[3 2 1]",
		},
		{
			Name:    "sum",
			Source:  `fn main is sum pair 1 pair 2 wrap 3`,
			Corelib: true,
			Result:  "6",
		},
		{
			Name:    "user code calls corelib recursively",
			Source:  `fn main is sum reverse pair 1 wrap 2`,
			Corelib: true,
			Result:  "3",
		},
		{
			Name:    "redefining a corelib function is an error",
			Source:  `fn sum l is 0  fn main is 0`,
			Corelib: true,
			Err:     "function sum is already defined",
		},
		{
			Name:   "without the corelib the names are unknown",
			Source: `fn main is sum wrap 1`,
			Err:    "undefined identifier: sum",
		},
	})
}
