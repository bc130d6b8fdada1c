package mython

import (
	"fmt"
	"io"
)

// PrintValue writes the printable form of v to out per spec.md §4.2:
// Number prints as decimal, String prints raw (no quoting/escaping), Bool
// prints True/False, Class prints "Class <name>", ClassInstance dispatches
// to __str__ if present or else an opaque object tag.
func PrintValue(v Value, out io.Writer, ctx *Context) error {
	switch v.Kind() {
	case KindNumber:
		_, err := fmt.Fprintf(out, "%d", v.Number())
		return err
	case KindString:
		_, err := io.WriteString(out, v.Str())
		return err
	case KindBool:
		if v.Bool() {
			_, err := io.WriteString(out, "True")
			return err
		}
		_, err := io.WriteString(out, "False")
		return err
	case KindClass:
		_, err := fmt.Fprintf(out, "Class %s", v.Class().Name)
		return err
	case KindInstance:
		return printInstance(v.Instance(), out, ctx)
	default:
		return nil
	}
}

func printInstance(ci *ClassInstance, out io.Writer, ctx *Context) error {
	if ci.HasMethod("__str__", 0) {
		result, err := ci.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		rv, ok := result.Value()
		if !ok {
			_, err := io.WriteString(out, "None")
			return err
		}
		return PrintValue(rv, out, ctx)
	}
	_, err := fmt.Fprintf(out, "<%s object at %p>", ci.Class().Name, ci)
	return err
}

// PrintHolder prints h per spec.md §4.3's Print node rule: an empty holder
// prints as the literal "None".
func PrintHolder(h ObjectHolder, out io.Writer, ctx *Context) error {
	v, ok := h.Value()
	if !ok {
		_, err := io.WriteString(out, "None")
		return err
	}
	return PrintValue(v, out, ctx)
}
