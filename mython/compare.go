package mython

// CompareOp names the six relational operators spec.md §4.2/§4.3
// (Comparison node) can express.
type CompareOp int

const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessOrEqual
	OpGreaterOrEqual
)

// Equal implements spec.md §4.2's Equal rule: same-kind Number/String/Bool
// compare by value, two None holders are equal, otherwise a ClassInstance
// lhs delegates to __eq__/1, and anything else is a type error.
func Equal(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	lv, lok := lhs.Value()
	rv, rok := rhs.Value()

	if !lok && !rok {
		return true, nil
	}
	if lok && rok {
		if lv.Kind() == KindNumber && rv.Kind() == KindNumber {
			return lv.Number() == rv.Number(), nil
		}
		if lv.Kind() == KindString && rv.Kind() == KindString {
			return lv.Str() == rv.Str(), nil
		}
		if lv.Kind() == KindBool && rv.Kind() == KindBool {
			return lv.Bool() == rv.Bool(), nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.HasMethod("__eq__", 1) {
		result, err := inst.Call("__eq__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, runtimeErrorf("__eq__ did not return a bool")
		}
		return b, nil
	}
	return false, runtimeErrorf("cannot compare objects for equality")
}

// Less implements spec.md §4.2's Less rule, delegating to __lt__/1 for
// class instances.
func Less(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	lv, lok := lhs.Value()
	rv, rok := rhs.Value()

	if lok && rok {
		if lv.Kind() == KindNumber && rv.Kind() == KindNumber {
			return lv.Number() < rv.Number(), nil
		}
		if lv.Kind() == KindString && rv.Kind() == KindString {
			return lv.Str() < rv.Str(), nil
		}
		if lv.Kind() == KindBool && rv.Kind() == KindBool {
			return !lv.Bool() && rv.Bool(), nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.HasMethod("__lt__", 1) {
		result, err := inst.Call("__lt__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, runtimeErrorf("__lt__ did not return a bool")
		}
		return b, nil
	}
	return false, runtimeErrorf("cannot compare objects for less")
}

func NotEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// Compare dispatches on op, used by the Comparison AST node.
func Compare(op CompareOp, lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	switch op {
	case OpEqual:
		return Equal(lhs, rhs, ctx)
	case OpNotEqual:
		return NotEqual(lhs, rhs, ctx)
	case OpLess:
		return Less(lhs, rhs, ctx)
	case OpGreater:
		return Greater(lhs, rhs, ctx)
	case OpLessOrEqual:
		return LessOrEqual(lhs, rhs, ctx)
	case OpGreaterOrEqual:
		return GreaterOrEqual(lhs, rhs, ctx)
	default:
		return false, runtimeErrorf("unknown comparison operator")
	}
}
