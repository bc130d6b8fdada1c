package mython

import "strings"

// MethodCall evaluates Object to a ClassInstance and invokes Method on it
// with the evaluated Args (spec.md §4.3).
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
}

func (n *MethodCall) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	objHolder, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	inst, ok := objHolder.AsInstance()
	if !ok {
		return ObjectHolder{}, runtimeErrorf("cannot find class")
	}

	args := make([]ObjectHolder, len(n.Args))
	for i, arg := range n.Args {
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return ObjectHolder{}, err
		}
		args[i] = v
	}

	return inst.Call(n.Method, args, ctx)
}

// Stringify evaluates Arg and renders it the way Print would, minus the
// trailing newline, as an owning String (spec.md §4.3, §8).
type Stringify struct {
	Arg Node
}

func (n *Stringify) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	value, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	var buf strings.Builder
	if err := PrintHolder(value, &buf, ctx); err != nil {
		return ObjectHolder{}, err
	}
	return Own(NewString(buf.String())), nil
}
