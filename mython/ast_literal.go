package mython

// Literal wraps a constant produced by the lexer (Number, String, True,
// False, None) into an AST node. spec.md §4.3 only names "relevant" nodes;
// any concrete parser needs somewhere to put literal constants, so this is
// a supplemented node rather than a change to spec.md's semantics.
type Literal struct {
	Value ObjectHolder
}

func (l *Literal) Execute(_ Closure, _ *Context) (ObjectHolder, error) {
	return l.Value, nil
}
