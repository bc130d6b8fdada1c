package mython

import "errors"

// Compound executes a sequence of statements in order and discards each
// result but the last (spec.md §4.3). The original throws any non-local
// return past Compound; the Go translation propagates the returnSignal
// error the same way.
type Compound struct {
	Statements []Node
}

func (n *Compound) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	result := None()
	for _, stmt := range n.Statements {
		v, err := stmt.Execute(closure, ctx)
		if err != nil {
			return ObjectHolder{}, err
		}
		result = v
	}
	return result, nil
}

// Return evaluates its statement and escapes the enclosing MethodBody via
// returnSignal instead of a normal result (spec.md §4.4). This mirrors the
// teacher's sentinel-error control-flow idiom rather than the original's
// C++ exception.
type Return struct {
	Statement Node
}

func (n *Return) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	v, err := n.Statement.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	return ObjectHolder{}, &returnSignal{value: v}
}

// MethodBody runs Body and catches a returnSignal escaping it, turning the
// carried value into a normal result (spec.md §4.4). Any other error still
// propagates.
type MethodBody struct {
	Body Node
}

func (n *MethodBody) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	result, err := n.Body.Execute(closure, ctx)
	if err == nil {
		return result, nil
	}
	var sig *returnSignal
	if errors.As(err, &sig) {
		return sig.value, nil
	}
	return ObjectHolder{}, err
}

// ClassDefinition binds a Class value under its own name in the closure
// (spec.md §4.3).
type ClassDefinition struct {
	Class *Class
}

func (n *ClassDefinition) Execute(closure Closure, _ *Context) (ObjectHolder, error) {
	v := Own(NewClassValue(n.Class))
	closure[n.Class.Name] = v
	return v, nil
}

// IfElse evaluates Cond and runs Then or Else depending on truthiness
// (spec.md §4.3). A missing Else with a false Cond yields the empty holder.
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (n *IfElse) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	cond, err := n.Cond.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	if IsTrue(cond) {
		return n.Then.Execute(closure, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(closure, ctx)
	}
	return None(), nil
}

// NewInstance allocates a ClassInstance and, if the class (or an ancestor)
// defines __init__ with matching arity, calls it with the evaluated Args
// (spec.md §4.3).
type NewInstance struct {
	Class *Class
	Args  []Node
}

func (n *NewInstance) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	inst := NewClassInstance(n.Class)
	holder := Own(NewInstanceValue(inst))

	if inst.HasMethod("__init__", len(n.Args)) {
		args := make([]ObjectHolder, len(n.Args))
		for i, arg := range n.Args {
			v, err := arg.Execute(closure, ctx)
			if err != nil {
				return ObjectHolder{}, err
			}
			args[i] = v
		}
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return ObjectHolder{}, err
		}
	}

	return holder, nil
}
