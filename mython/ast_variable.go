package mython

// VariableValue resolves a dotted identifier path (spec.md §4.3): the
// first id is looked up in the closure; any further ids descend through
// ClassInstance.Fields.
type VariableValue struct {
	DottedIDs []string
}

func (n *VariableValue) Execute(closure Closure, _ *Context) (ObjectHolder, error) {
	if len(n.DottedIDs) == 0 {
		return ObjectHolder{}, runtimeErrorf("dotted ids cannot be empty")
	}

	obj, ok := closure[n.DottedIDs[0]]
	if !ok {
		return ObjectHolder{}, runtimeErrorf("cannot find class")
	}
	if len(n.DottedIDs) == 1 {
		return obj, nil
	}

	for _, id := range n.DottedIDs[1 : len(n.DottedIDs)-1] {
		inst, isInst := obj.AsInstance()
		if !isInst {
			return ObjectHolder{}, runtimeErrorf("cannot find class")
		}
		field, ok := inst.Fields()[id]
		if !ok {
			return ObjectHolder{}, runtimeErrorf("cannot find class")
		}
		obj = field
	}

	inst, isInst := obj.AsInstance()
	if !isInst {
		return ObjectHolder{}, runtimeErrorf("cannot find class")
	}
	last := n.DottedIDs[len(n.DottedIDs)-1]
	field, ok := inst.Fields()[last]
	if !ok {
		return ObjectHolder{}, runtimeErrorf("cannot find class")
	}
	return field, nil
}
