package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mython-lang/mython/mython"
)

// execStream parses a whole program from r and executes it against out,
// the same two-stage pipeline as the original's RunMythonProgram.
func execStream(r io.Reader, out io.Writer) error {
	program, err := parseProgram(r)
	if err != nil {
		return err
	}
	ctx := mython.NewContext(out)
	closure := mython.Closure{}
	if _, err := program.Execute(closure, ctx); err != nil {
		return err
	}
	return nil
}

func parseProgram(r io.Reader) (*mython.Compound, error) {
	lex, err := mython.NewLexer(r)
	if err != nil {
		return nil, err
	}
	p, err := mython.NewParser(lex)
	if err != nil {
		return nil, err
	}
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		return nil, combineErrors(errs)
	}
	return program, nil
}

func combineErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}
