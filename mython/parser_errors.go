package mython

import "fmt"

func (p *Parser) errorExpected(what string) error {
	return &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("expected %s, got %s", what, p.cur.String())}
}

func (p *Parser) errorExpectedChar(c byte) error {
	return &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("expected %q, got %s", string(c), p.cur.String())}
}

func (p *Parser) errorUnexpected(context string) error {
	return &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("unexpected token %s in %s", p.cur.String(), context)}
}
