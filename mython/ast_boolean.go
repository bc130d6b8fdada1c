package mython

// Or implements short-circuit || over truthiness (spec.md §4.2, §4.3).
type Or struct {
	LHS Node
	RHS Node
}

func (n *Or) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	if IsTrue(lhs) {
		return Own(NewBool(true)), nil
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	return Own(NewBool(IsTrue(rhs))), nil
}

// And implements short-circuit && over truthiness (spec.md §4.2, §4.3).
type And struct {
	LHS Node
	RHS Node
}

func (n *And) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	if !IsTrue(lhs) {
		return Own(NewBool(false)), nil
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	return Own(NewBool(IsTrue(rhs))), nil
}

// Not negates truthiness (spec.md §4.2, §4.3).
type Not struct {
	Arg Node
}

func (n *Not) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	v, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	return Own(NewBool(!IsTrue(v))), nil
}

// Comparison wraps a CompareOp as an AST node, producing an owning Bool
// (spec.md §4.2, §4.3).
type Comparison struct {
	Op  CompareOp
	LHS Node
	RHS Node
}

func (n *Comparison) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	lhs, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	rhs, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	result, err := Compare(n.Op, lhs, rhs, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	return Own(NewBool(result)), nil
}
