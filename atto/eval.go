package atto

// Eval evaluates node in the context of frame and returns the resulting
// value.  Evaluation is eager and strictly left to right; the only
// conditional evaluation in the language is the untaken branch of if.
func (env *Env) Eval(node *Node, frame *Frame) (*Val, error) {
	switch node.Type {
	case NLiteral:
		return node.Val, nil
	case NParam:
		return frame.Args[node.Index], nil
	case NIf:
		cond, err := env.Eval(node.Cond, frame)
		if err != nil {
			return nil, err
		}
		if cond.Type != VBool {
			return nil, rterrf(frame, "if condition is not a bool: %s", cond.Type)
		}
		if cond.Bool {
			return env.Eval(node.Then, frame)
		}
		return env.Eval(node.Else, frame)
	case NCall:
		return env.call(node, frame)
	default:
		return nil, rterrf(frame, "invalid expression node: %s", node.Type)
	}
}

// call dispatches a Call node.  Primitives resolve before user functions
// and run in the caller's frame; a user call binds the evaluated arguments
// into a fresh frame for the callee's body.
func (env *Env) call(node *Node, frame *Frame) (*Val, error) {
	prim := lookupBuiltin(node.Name)
	var fn *Func
	if prim == nil {
		fn = env.Funcs[node.Name]
		if fn == nil {
			return nil, rterrf(frame, "undefined function: %s", node.Name)
		}
	}

	// Arguments evaluate in the caller's frame, left to right.
	var args []*Val
	for arg := node.Args; arg != nil; arg = arg.Next {
		v, err := env.Eval(arg.Node, frame)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if prim != nil {
		return prim.fun(env, frame, args)
	}

	maxDepth := env.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if frame.Depth() >= maxDepth {
		return nil, rterrf(frame, "recursion depth exceeded (%d frames)", maxDepth)
	}
	next := NewFrame(frame, node.Tok, fn, args)
	return env.Eval(fn.Body, next)
}
