package mython

// Assignment binds the result of evaluating RV to Var in the current
// closure (spec.md §4.3).
type Assignment struct {
	Var string
	RV  Node
}

func (n *Assignment) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	result, err := n.RV.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	closure[n.Var] = result
	return result, nil
}

// FieldAssignment writes a field on a ClassInstance (spec.md §4.3). Object
// must evaluate to a ClassInstance, or execution errors.
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	RV     Node
}

func (n *FieldAssignment) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	objHolder, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	inst, ok := objHolder.AsInstance()
	if !ok {
		return ObjectHolder{}, runtimeErrorf("cannot find class")
	}
	result, err := n.RV.Execute(closure, ctx)
	if err != nil {
		return ObjectHolder{}, err
	}
	inst.Fields()[n.Field] = result
	return result, nil
}
