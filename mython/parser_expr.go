package mython

// parseTest is the entry point for any expression context (spec.md §4.3's
// Or/And/Not/Comparison/Add/Sub/Mult/Div chain), named after the
// grammar's conventional "test" production.
func (p *Parser) parseTest() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == OrKw {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{LHS: left, RHS: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == AndKw {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{LHS: left, RHS: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.cur.Kind == NotKw {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

func compareOpFor(tok Token) (CompareOp, bool) {
	switch {
	case tok.Kind == Eq:
		return OpEqual, true
	case tok.Kind == NotEq:
		return OpNotEqual, true
	case tok.Kind == LessOrEq:
		return OpLessOrEqual, true
	case tok.Kind == GreaterOrEq:
		return OpGreaterOrEqual, true
	case tok.Kind == Char && tok.ChVal == '<':
		return OpLess, true
	case tok.Kind == Char && tok.ChVal == '>':
		return OpGreater, true
	default:
		return 0, false
	}
}

func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if op, ok := compareOpFor(p.cur); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		return &Comparison{Op: op, LHS: left, RHS: right}, nil
	}
	return left, nil
}

func (p *Parser) parseArith() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('+') || p.curIsChar('-') {
		op := p.cur.ChVal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = &Add{LHS: left, RHS: right}
		} else {
			left = &Sub{LHS: left, RHS: right}
		}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('*') || p.curIsChar('/') {
		op := p.cur.ChVal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = &Mult{LHS: left, RHS: right}
		} else {
			left = &Div{LHS: left, RHS: right}
		}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	switch {
	case p.cur.Kind == Number:
		lit := &Literal{Value: Own(NewNumber(p.cur.NumVal))}
		return lit, p.advance()

	case p.cur.Kind == String:
		lit := &Literal{Value: Own(NewString(p.cur.StrVal))}
		return lit, p.advance()

	case p.cur.Kind == True:
		lit := &Literal{Value: Own(NewBool(true))}
		return lit, p.advance()

	case p.cur.Kind == False:
		lit := &Literal{Value: Own(NewBool(false))}
		return lit, p.advance()

	case p.cur.Kind == NoneKw:
		lit := &Literal{Value: None()}
		return lit, p.advance()

	case p.curIsChar('-'):
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Sub{LHS: &Literal{Value: Own(NewNumber(0))}, RHS: operand}, nil

	case p.curIsChar('('):
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return inner, nil

	case p.cur.Kind == Id && p.cur.IdVal == "str" && p.peek.Kind == Char && p.peek.ChVal == '(':
		return p.parseStringify()

	case p.cur.Kind == Id:
		return p.parseDottedOrCall()

	default:
		return nil, p.errorUnexpected("expression")
	}
}

func (p *Parser) parseStringify() (Node, error) {
	if err := p.advance(); err != nil { // past 'str'
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	arg, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return &Stringify{Arg: arg}, nil
}

// parseDottedOrCall resolves a "a.b.c", "a.b.c(args)", or "Foo(args)" chain
// into VariableValue, MethodCall, or NewInstance, per spec.md §4.3.
// NewInstance's Class is resolved against already-declared classes at
// parse time, since Mython has no forward class references.
func (p *Parser) parseDottedOrCall() (Node, error) {
	ids := []string{p.cur.IdVal}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.curIsChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != Id {
			return nil, p.errorExpected("identifier after '.'")
		}
		ids = append(ids, p.cur.IdVal)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if !p.curIsChar('(') {
		return &VariableValue{DottedIDs: ids}, nil
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 1 {
		class, ok := p.classes[ids[0]]
		if !ok {
			return nil, p.errorExpected("a known class name before '('")
		}
		return &NewInstance{Class: class, Args: args}, nil
	}
	return &MethodCall{
		Object: &VariableValue{DottedIDs: ids[:len(ids)-1]},
		Method: ids[len(ids)-1],
		Args:   args,
	}, nil
}
