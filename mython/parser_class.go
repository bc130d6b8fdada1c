package mython

// parseClassDef parses 'class' Id ['(' Id ')'] ':' NEWLINE INDENT def+ DEDENT
// (spec.md §4.3). The class is registered into p.classes before its methods
// are parsed, so a method may construct its own class recursively.
func (p *Parser) parseClassDef() (Node, error) {
	if err := p.advance(); err != nil { // past 'class'
		return nil, err
	}
	if p.cur.Kind != Id {
		return nil, p.errorExpected("class name")
	}
	name := p.cur.IdVal
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parent *Class
	if p.curIsChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != Id {
			return nil, p.errorExpected("base class name")
		}
		base, ok := p.classes[p.cur.IdVal]
		if !ok {
			return nil, p.errorExpected("a previously declared base class")
		}
		parent = base
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if p.cur.Kind != Newline {
		return nil, p.errorExpected("end of line")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != Indent {
		return nil, p.errorExpected("an indented class body")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	class := &Class{Name: name, Parent: parent}
	p.classes[name] = class

	for p.cur.Kind != Dedent && p.cur.Kind != Eof {
		if p.cur.Kind == Newline {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.cur.Kind != Def {
			return nil, p.errorExpected("a method definition")
		}
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, m)
	}
	if p.cur.Kind == Dedent {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &ClassDefinition{Class: class}, nil
}

// parseMethodDef parses 'def' Id '(' [Id (',' Id)*] ')' ':' suite.
//
// The leading 'self' parameter, if written, is stripped from FormalParams:
// ClassInstance.Call (value.go) always injects self into the method's
// closure itself and binds actualArgs 1:1 against FormalParams with no self
// slot, matching _examples/original_source/src/runtime.cpp's
// ClassInstance::Call. A method body still refers to "self" freely — the
// injected closure entry is what it resolves against — so accepting the
// explicit parameter in the grammar and discarding it here keeps both
// `def bump(self, by):` and `def bump(by):` call the same way.
func (p *Parser) parseMethodDef() (Method, error) {
	if err := p.advance(); err != nil { // past 'def'
		return Method{}, err
	}
	if p.cur.Kind != Id {
		return Method{}, p.errorExpected("method name")
	}
	name := p.cur.IdVal
	if err := p.advance(); err != nil {
		return Method{}, err
	}

	if err := p.expectChar('('); err != nil {
		return Method{}, err
	}
	var params []string
	if !p.curIsChar(')') {
		if p.cur.Kind != Id {
			return Method{}, p.errorExpected("parameter name")
		}
		params = append(params, p.cur.IdVal)
		if err := p.advance(); err != nil {
			return Method{}, err
		}
		for p.curIsChar(',') {
			if err := p.advance(); err != nil {
				return Method{}, err
			}
			if p.cur.Kind != Id {
				return Method{}, p.errorExpected("parameter name")
			}
			params = append(params, p.cur.IdVal)
			if err := p.advance(); err != nil {
				return Method{}, err
			}
		}
	}
	if err := p.expectChar(')'); err != nil {
		return Method{}, err
	}
	if err := p.expectChar(':'); err != nil {
		return Method{}, err
	}

	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	body, err := p.parseSuite()
	if err != nil {
		return Method{}, err
	}
	return Method{Name: name, FormalParams: params, Body: &MethodBody{Body: body}}, nil
}
