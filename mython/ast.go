package mython

// Node is the AST contract spec.md §3/§4.3 describes: every node executes
// against the current closure and context, yielding a holder or an error.
// This is the one place open polymorphism is warranted — a concrete parser
// may introduce node kinds beyond the ones listed here.
type Node interface {
	Execute(closure Closure, ctx *Context) (ObjectHolder, error)
}
