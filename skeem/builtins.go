package skeem

type builtinDef struct {
	name string
	fun  BuiltinFunc
}

var langBuiltins = []*builtinDef{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
}

// lookupBuiltin returns the function value bound to name in the builtin
// table.  Symbol evaluation consults this table before any frame, so frame
// bindings cannot shadow an operator.
func lookupBuiltin(name string) (*Val, bool) {
	for _, def := range langBuiltins {
		if def.name == name {
			return Fun(def.name, def.fun), true
		}
	}
	return nil, false
}

func builtinAdd(args []*Val) (*Val, error) {
	if err := checkNumeric(args); err != nil {
		return nil, err
	}
	if allInt(args) {
		sum := 0
		for _, c := range args {
			sum += c.Int
		}
		return Int(sum), nil
	}
	sum := 0.0
	for _, c := range args {
		sum += toFloat(c)
	}
	return Float(sum), nil
}

func builtinSub(args []*Val) (*Val, error) {
	if err := checkNumeric(args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return Int(0), nil
	}
	if len(args) == 1 {
		if args[0].Type == VInt {
			return Int(-args[0].Int), nil
		}
		return Float(-args[0].Float), nil
	}
	rest, err := builtinAdd(args[1:])
	if err != nil {
		return nil, err
	}
	if allInt(args) {
		return Int(args[0].Int - rest.Int), nil
	}
	return Float(toFloat(args[0]) - toFloat(rest)), nil
}

func builtinMul(args []*Val) (*Val, error) {
	if err := checkNumeric(args); err != nil {
		return nil, err
	}
	if allInt(args) {
		prod := 1
		for _, c := range args {
			prod *= c.Int
		}
		return Int(prod), nil
	}
	prod := 1.0
	for _, c := range args {
		prod *= toFloat(c)
	}
	return Float(prod), nil
}

// builtinDiv performs float division for two or more arguments.  With no
// arguments it returns the identity 1 and with one argument it returns that
// argument unchanged.
func builtinDiv(args []*Val) (*Val, error) {
	if err := checkNumeric(args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return Int(1), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	div := toFloat(args[0])
	for _, c := range args[1:] {
		x := toFloat(c)
		if x == 0 {
			return nil, EvalErrorf("division by zero")
		}
		div /= x
	}
	return Float(div), nil
}

func checkNumeric(args []*Val) error {
	for _, c := range args {
		if !c.IsNumeric() {
			return EvalErrorf("argument is not a number: %v", c.Type)
		}
	}
	return nil
}

func allInt(vs []*Val) bool {
	for _, v := range vs {
		if v.Type != VInt {
			return false
		}
	}
	return true
}

func toFloat(x *Val) float64 {
	if x.Type == VInt {
		return float64(x.Int)
	}
	return x.Float
}
