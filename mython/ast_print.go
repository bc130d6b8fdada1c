package mython

// Print evaluates each arg, prints it space-separated, then writes a
// trailing newline (spec.md §4.3). Returns the empty holder.
type Print struct {
	Args []Node
}

func (n *Print) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	delim := ""
	for _, arg := range n.Args {
		value, err := arg.Execute(closure, ctx)
		if err != nil {
			return ObjectHolder{}, err
		}
		if err := ctx.write(delim); err != nil {
			return ObjectHolder{}, err
		}
		if err := PrintHolder(value, ctx.Output(), ctx); err != nil {
			return ObjectHolder{}, err
		}
		delim = " "
	}
	if err := ctx.write("\n"); err != nil {
		return ObjectHolder{}, err
	}
	return None(), nil
}
