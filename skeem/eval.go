package skeem

// maxDepth bounds evaluator recursion.  Exceeding it aborts the current
// top-level evaluation with an evaluation error instead of an unrecoverable
// stack fault.
const maxDepth = 20000

// Eval evaluates expr in frame and returns the resulting value.  A nil frame
// evaluates in a fresh frame whose parent is the shared builtin root.
func Eval(expr *Val, frame *Frame) (*Val, error) {
	if frame == nil {
		frame = NewFrame(RootFrame())
	}
	return eval(expr, frame, 0)
}

func eval(v *Val, frame *Frame, depth int) (*Val, error) {
	if depth > maxDepth {
		return nil, EvalErrorf("maximum recursion depth exceeded")
	}
	switch v.Type {
	case VSymbol:
		// The builtin table resolves ahead of the frame chain; a frame
		// binding for an operator name never shadows the builtin.
		if fn, ok := lookupBuiltin(v.Str); ok {
			return fn, nil
		}
		return frame.Lookup(v.Str)
	case VExpr:
		return evalExpr(v, frame, depth)
	default:
		// Numbers and function values evaluate to themselves.
		return v, nil
	}
}

func evalExpr(v *Val, frame *Frame, depth int) (*Val, error) {
	if len(v.Cells) == 0 {
		return nil, EvalErrorf("empty combination")
	}
	head := v.Cells[0]
	if head.Type == VSymbol {
		switch head.Str {
		case "define":
			return evalDefine(v, frame, depth)
		case "lambda":
			return evalLambda(v, frame)
		}
	}
	fn, err := eval(head, frame, depth+1)
	if err != nil {
		return nil, err
	}
	args := make([]*Val, 0, len(v.Cells)-1)
	for _, cell := range v.Cells[1:] {
		arg, err := eval(cell, frame, depth+1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return apply(fn, args, depth)
}

func apply(fn *Val, args []*Val, depth int) (*Val, error) {
	if fn.Type != VFun {
		return nil, EvalErrorf("first element of expression is not a function: %v", fn)
	}
	if fn.Builtin != nil {
		return fn.Builtin(args)
	}
	if len(args) != len(fn.Formals) {
		return nil, EvalErrorf("function expects %d arguments (got %d)",
			len(fn.Formals), len(args))
	}
	// The call frame chains to the closure's defining frame, never the
	// caller's frame.
	call := NewFrame(fn.Env)
	for i, name := range fn.Formals {
		call.Define(name, args[i])
	}
	return eval(fn.Body, call, depth+1)
}

func evalDefine(v *Val, frame *Frame, depth int) (*Val, error) {
	if len(v.Cells) != 3 {
		return nil, EvalErrorf("define expects 2 arguments (got %d)", len(v.Cells)-1)
	}
	target := v.Cells[1]
	if target.Type == VExpr {
		// (define (name p ...) body) is sugar for
		// (define name (lambda (p ...) body))
		if len(target.Cells) == 0 {
			return nil, EvalErrorf("define: missing function name")
		}
		name := target.Cells[0]
		if name.Type != VSymbol {
			return nil, EvalErrorf("define: function name is not a symbol: %v", name.Type)
		}
		lambda := Expr([]*Val{Symbol("lambda"), Expr(target.Cells[1:]), v.Cells[2]})
		val, err := eval(lambda, frame, depth+1)
		if err != nil {
			return nil, err
		}
		frame.Define(name.Str, val)
		return val, nil
	}
	if target.Type != VSymbol {
		return nil, EvalErrorf("define: first argument is not a symbol: %v", target.Type)
	}
	val, err := eval(v.Cells[2], frame, depth+1)
	if err != nil {
		return nil, err
	}
	frame.Define(target.Str, val)
	return val, nil
}

func evalLambda(v *Val, frame *Frame) (*Val, error) {
	if len(v.Cells) != 3 {
		return nil, EvalErrorf("lambda expects 2 arguments (got %d)", len(v.Cells)-1)
	}
	params := v.Cells[1]
	if params.Type != VExpr {
		return nil, EvalErrorf("lambda: parameter list is not a list: %v", params.Type)
	}
	formals := make([]string, len(params.Cells))
	for i, p := range params.Cells {
		if p.Type != VSymbol {
			return nil, EvalErrorf("lambda: parameter is not a symbol: %v", p)
		}
		formals[i] = p.Str
	}
	return Lambda(formals, v.Cells[2], frame), nil
}
