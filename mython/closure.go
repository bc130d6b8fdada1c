package mython

import "io"

// Closure is a mapping from identifier to ObjectHolder representing a
// lexical scope (spec.md §3). Each method invocation gets a fresh Closure;
// the top-level Closure persists for the program's whole execution.
type Closure map[string]ObjectHolder

// Context carries the output stream through evaluation (spec.md §4.3).
type Context struct {
	out io.Writer
}

// NewContext wraps out for use as an evaluator Context.
func NewContext(out io.Writer) *Context {
	return &Context{out: out}
}

// Output returns the writer print nodes and __str__ dispatch write to.
func (c *Context) Output() io.Writer {
	return c.out
}

func (c *Context) write(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}
