package mython

// Parser is a recursive-descent translation of the grammar spec.md §4.3's
// AST nodes imply, adapted from the teacher's curToken/peekToken Pratt-style
// driver (vibes/parser.go) to Mython's simpler INDENT/DEDENT-delimited
// statement grammar instead of an 'end'-terminated one.
type Parser struct {
	lex *Lexer

	cur  Token
	peek Token

	classes map[string]*Class

	errors []error
}

// NewParser primes cur/peek from lex, which must already have its first
// token available (NewLexer guarantees this).
func NewParser(lex *Lexer) (*Parser, error) {
	return NewParserWithClasses(lex, make(map[string]*Class))
}

// NewParserWithClasses is NewParser but seeded with a caller-owned class
// table, so a REPL can carry class definitions from one entry's parse into
// the next (spec.md's classes are otherwise resolved once per Parser).
func NewParserWithClasses(lex *Lexer, classes map[string]*Class) (*Parser, error) {
	p := &Parser{
		lex:     lex,
		cur:     lex.Current(),
		classes: classes,
	}
	tok, err := lex.Next()
	if err != nil {
		return nil, err
	}
	p.peek = tok
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

// ParseProgram parses the whole input as a top-level Compound. Parse errors
// are collected and the parser resynchronizes at the next Newline, so a
// single bad statement does not abort the whole program.
func (p *Parser) ParseProgram() (*Compound, []error) {
	var stmts []Node
	for p.cur.Kind != Eof {
		if p.cur.Kind == Newline {
			if err := p.advance(); err != nil {
				p.errors = append(p.errors, err)
				return &Compound{Statements: stmts}, p.errors
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
			if err := p.recover(); err != nil {
				p.errors = append(p.errors, err)
				return &Compound{Statements: stmts}, p.errors
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
	return &Compound{Statements: stmts}, p.errors
}

// recover skips tokens up to and past the next Newline (or Eof), so a
// malformed statement doesn't desync the rest of the parse.
func (p *Parser) recover() error {
	for p.cur.Kind != Newline && p.cur.Kind != Eof {
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.cur.Kind == Newline {
		return p.advance()
	}
	return nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch p.cur.Kind {
	case ClassKw:
		return p.parseClassDef()
	case If:
		return p.parseIfElse()
	case ReturnKw:
		return p.parseReturnStmt()
	case PrintKw:
		return p.parsePrintStmt()
	case Id:
		return p.parseIdentifierStatement()
	default:
		return nil, p.errorUnexpected("statement")
	}
}

// parseSuite parses either a single simple statement on the same line, or a
// NEWLINE INDENT stmt+ DEDENT block (spec.md §4.1's Indent/Dedent tokens).
func (p *Parser) parseSuite() (Node, error) {
	if p.cur.Kind != Newline {
		return p.parseSimpleStatement()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != Indent {
		return nil, p.errorExpected("an indented block")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var stmts []Node
	for p.cur.Kind != Dedent && p.cur.Kind != Eof {
		if p.cur.Kind == Newline {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if p.cur.Kind == Dedent {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return &Compound{Statements: stmts}, nil
}

func (p *Parser) parseSimpleStatement() (Node, error) {
	switch p.cur.Kind {
	case ReturnKw:
		return p.parseReturnStmt()
	case PrintKw:
		return p.parsePrintStmt()
	case Id:
		return p.parseIdentifierStatement()
	default:
		return nil, p.errorUnexpected("simple statement")
	}
}

func (p *Parser) expectNewline() error {
	if p.cur.Kind != Newline && p.cur.Kind != Eof {
		return p.errorExpected("end of line")
	}
	if p.cur.Kind == Newline {
		return p.advance()
	}
	return nil
}

func (p *Parser) expectChar(c byte) error {
	if p.cur.Kind != Char || p.cur.ChVal != c {
		return p.errorExpectedChar(c)
	}
	return p.advance()
}

func (p *Parser) curIsChar(c byte) bool {
	return p.cur.Kind == Char && p.cur.ChVal == c
}

func (p *Parser) parseIfElse() (Node, error) {
	if err := p.advance(); err != nil { // past 'if'
		return nil, err
	}
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	var elseBody Node
	if p.cur.Kind == Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}

	return &IfElse{Cond: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *Parser) parseReturnStmt() (Node, error) {
	if err := p.advance(); err != nil { // past 'return'
		return nil, err
	}
	if p.cur.Kind == Newline || p.cur.Kind == Eof {
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return &Return{Statement: &Literal{Value: None()}}, nil
	}
	expr, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return &Return{Statement: expr}, nil
}

func (p *Parser) parsePrintStmt() (Node, error) {
	if err := p.advance(); err != nil { // past 'print'
		return nil, err
	}
	var args []Node
	if p.cur.Kind == Newline || p.cur.Kind == Eof {
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return &Print{Args: args}, nil
	}

	arg, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.curIsChar(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return &Print{Args: args}, nil
}

func (p *Parser) parseIdentifierStatement() (Node, error) {
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

	switch {
	case p.curIsChar('='):
		if err := p.advance(); err != nil {
			return nil, err
		}
		rv, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		if len(ids) == 1 {
			return &Assignment{Var: ids[0], RV: rv}, nil
		}
		return &FieldAssignment{
			Object: &VariableValue{DottedIDs: ids[:len(ids)-1]},
			Field:  ids[len(ids)-1],
			RV:     rv,
		}, nil

	case p.curIsChar('('):
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		var node Node
		if len(ids) == 1 {
			class, ok := p.classes[ids[0]]
			if !ok {
				return nil, p.errorExpected("a known class name before '('")
			}
			node = &NewInstance{Class: class, Args: args}
		} else {
			node = &MethodCall{
				Object: &VariableValue{DottedIDs: ids[:len(ids)-1]},
				Method: ids[len(ids)-1],
				Args:   args,
			}
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, p.errorExpected("'=' or '(' after identifier")
	}
}

func (p *Parser) parseArgs() ([]Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []Node
	if p.curIsChar(')') {
		return args, p.advance()
	}
	arg, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.curIsChar(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}
