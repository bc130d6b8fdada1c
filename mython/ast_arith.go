package mython

// Add implements + (spec.md §4.3, §4.2): dispatches to __add__ when lhs is a
// ClassInstance, otherwise adds Numbers or concatenates Strings.
type Add struct {
	LHS Node
	RHS Node
}

func (n *Add) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}

	if inst, ok := lhs.AsInstance(); ok {
		return inst.Call("__add__", []ObjectHolder{rhs}, ctx)
	}

	if a, ok := lhs.AsNumber(); ok {
		if b, ok := rhs.AsNumber(); ok {
			return Own(NewNumber(a + b)), nil
		}
	}
	if a, ok := lhs.AsString(); ok {
		if b, ok := rhs.AsString(); ok {
			return Own(NewString(a + b)), nil
		}
	}

	return ObjectHolder{}, runtimeErrorf("cannot sum objects")
}

// Sub implements - (spec.md §4.3): Number minus Number only.
type Sub struct {
	LHS Node
	RHS Node
}

func (n *Sub) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	a, aok := lhs.AsNumber()
	b, bok := rhs.AsNumber()
	if !aok || !bok {
		return ObjectHolder{}, runtimeErrorf("cannot sub objects")
	}
	return Own(NewNumber(a - b)), nil
}

// Mult implements * (spec.md §4.3): Number times Number only.
type Mult struct {
	LHS Node
	RHS Node
}

func (n *Mult) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	a, aok := lhs.AsNumber()
	b, bok := rhs.AsNumber()
	if !aok || !bok {
		return ObjectHolder{}, runtimeErrorf("cannot multiply objects")
	}
	return Own(NewNumber(a * b)), nil
}

// Div implements / (spec.md §4.3): Number divided by nonzero Number only.
type Div struct {
	LHS Node
	RHS Node
}

func (n *Div) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	a, aok := lhs.AsNumber()
	b, bok := rhs.AsNumber()
	if !aok || !bok {
		return ObjectHolder{}, runtimeErrorf("cannot division objects")
	}
	if b == 0 {
		return ObjectHolder{}, runtimeErrorf("division by zero")
	}
	return Own(NewNumber(a / b)), nil
}
