package mython

import "strings"

// run parses and executes src, returning whatever it wrote to stdout.
func run(src string) (string, error) {
	lex, err := NewLexer(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	p, err := NewParser(lex)
	if err != nil {
		return "", err
	}
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		return "", errs[0]
	}
	var out strings.Builder
	ctx := NewContext(&out)
	if _, err := program.Execute(Closure{}, ctx); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}
