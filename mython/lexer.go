package mython

import (
	"bufio"
	"io"
	"strconv"
)

// Lexer is an indentation-aware tokenizer. It exposes Current/Next per
// spec.md §4.1: a freshly constructed Lexer already has its first token
// available via Current.
type Lexer struct {
	r    *bufio.Reader
	line int
	col  int

	current Token

	pendingIndent int // signed; drained one Indent/Dedent per Next call
	prevIndent    int

	lastByte    byte
	hasLastByte bool
}

// NewLexer constructs a Lexer over input and primes Current with the first
// token. Mirrors the original constructor seeding current_token_ with a
// synthetic Newline so the very first scan measures indentation.
func NewLexer(input io.Reader) (*Lexer, error) {
	lx := &Lexer{
		r:       bufio.NewReader(input),
		line:    1,
		col:     0,
		current: Token{Kind: Newline},
	}
	tok, err := lx.scan()
	if err != nil {
		return nil, err
	}
	lx.current = tok
	return lx, nil
}

// Current returns the current token.
func (lx *Lexer) Current() Token {
	return lx.current
}

// Next advances the lexer and returns the new current token. Calling Next
// after Eof keeps returning Eof.
func (lx *Lexer) Next() (Token, error) {
	if lx.current.Kind == Eof {
		return lx.current, nil
	}
	tok, err := lx.scan()
	if err != nil {
		return Token{}, err
	}
	lx.current = tok
	return tok, nil
}

func (lx *Lexer) pos() Position {
	return Position{Line: lx.line, Column: lx.col}
}

func (lx *Lexer) peekByte() (byte, bool) {
	b, err := lx.r.ReadByte()
	if err != nil {
		return 0, false
	}
	_ = lx.r.UnreadByte()
	return b, true
}

func (lx *Lexer) getByte() (byte, bool) {
	b, err := lx.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	lx.lastByte = b
	lx.hasLastByte = true
	return b, true
}

// scan is the Go analogue of the original GetNextToken: on first call, and
// immediately after every Newline (or while an Indent/Dedent run is still
// draining), it measures indentation before resuming content tokens.
func (lx *Lexer) scan() (Token, error) {
	if lx.current.Kind == Newline || lx.pendingIndent != 0 {
		lx.skipBlankLines()
		if tok, ok := lx.indentToken(); ok {
			return tok, nil
		}
	}

	for {
		b, ok := lx.peekByte()
		if !ok {
			break
		}

		if b == ' ' {
			lx.getByte()
			continue
		}

		if b == '\n' {
			lx.getByte()
			return Token{Kind: Newline, Pos: lx.pos()}, nil
		}

		if b == '#' {
			lx.skipComment()
			lx.skipBlankLines()
			if next, has := lx.peekByte(); has && next != 0 && lx.current.Kind != Newline {
				return Token{Kind: Newline, Pos: lx.pos()}, nil
			}
			continue
		}

		if isPunct(b) {
			if b == '"' || b == '\'' {
				return lx.scanString()
			}
			if b == '_' {
				return lx.scanID()
			}
			if b == '!' || b == '=' || b == '>' || b == '<' {
				return lx.scanCompOrChar()
			}
			lx.getByte()
			return Token{Kind: Char, ChVal: b, Pos: lx.pos()}, nil
		}

		if isAlpha(b) {
			return lx.scanID()
		}

		if isDigit(b) {
			return lx.scanNumber()
		}

		return Token{}, &LexerError{Pos: lx.pos(), Msg: "unexpected byte that cannot start any lexeme"}
	}

	if lx.current.Kind != Newline && lx.hasLastByte && (isAlnum(lx.lastByte) || isPunct(lx.lastByte)) {
		return Token{Kind: Newline, Pos: lx.pos()}, nil
	}

	return Token{Kind: Eof, Pos: lx.pos()}, nil
}

func (lx *Lexer) skipBlankLines() {
	for {
		b, ok := lx.peekByte()
		if !ok || b != '\n' {
			return
		}
		lx.getByte()
	}
}

func (lx *Lexer) skipComment() {
	for {
		b, ok := lx.getByte()
		if !ok || b == '\n' {
			return
		}
	}
}

// indentToken drains one unit of pendingIndent, measuring a fresh
// indentation level first if the counter is currently zero.
func (lx *Lexer) indentToken() (Token, bool) {
	if lx.pendingIndent == 0 {
		spaces := 0
		for {
			b, ok := lx.peekByte()
			if !ok || b != ' ' {
				break
			}
			lx.getByte()
			spaces++
		}
		level := spaces / 2
		lx.pendingIndent = level - lx.prevIndent
		lx.prevIndent = level
	}
	switch {
	case lx.pendingIndent > 0:
		lx.pendingIndent--
		return Token{Kind: Indent, Pos: lx.pos()}, true
	case lx.pendingIndent < 0:
		lx.pendingIndent++
		return Token{Kind: Dedent, Pos: lx.pos()}, true
	default:
		return Token{}, false
	}
}

func (lx *Lexer) scanID() (Token, error) {
	pos := lx.pos()
	var word []byte
	for {
		b, ok := lx.peekByte()
		if !ok {
			break
		}
		if isControl(b) || isSpace(b) || (isPunct(b) && b != '_') {
			break
		}
		lx.getByte()
		word = append(word, b)
	}
	s := string(word)
	if kind, isKeyword := keywords[s]; isKeyword {
		return Token{Kind: kind, Pos: pos}, nil
	}
	return Token{Kind: Id, IdVal: s, Pos: pos}, nil
}

func (lx *Lexer) scanCompOrChar() (Token, error) {
	pos := lx.pos()
	c, _ := lx.getByte()
	if next, ok := lx.peekByte(); ok && next == '=' {
		lx.getByte()
		switch c {
		case '=':
			return Token{Kind: Eq, Pos: pos}, nil
		case '!':
			return Token{Kind: NotEq, Pos: pos}, nil
		case '<':
			return Token{Kind: LessOrEq, Pos: pos}, nil
		case '>':
			return Token{Kind: GreaterOrEq, Pos: pos}, nil
		}
	}
	return Token{Kind: Char, ChVal: c, Pos: pos}, nil
}

func (lx *Lexer) scanString() (Token, error) {
	pos := lx.pos()
	quote, _ := lx.getByte()
	var out []byte
	for {
		b, ok := lx.peekByte()
		if !ok {
			return Token{}, &LexerError{Pos: pos, Msg: "unterminated string"}
		}
		if b == quote {
			lx.getByte()
			break
		}
		ch, _ := lx.getByte()
		if ch == '\\' {
			esc, hasEsc := lx.getByte()
			if !hasEsc {
				return Token{}, &LexerError{Pos: pos, Msg: "unterminated string"}
			}
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\'':
				out = append(out, '\'')
			default:
				out = append(out, '\\', esc)
			}
			continue
		}
		out = append(out, ch)
	}
	return Token{Kind: String, StrVal: string(out), Pos: pos}, nil
}

func (lx *Lexer) scanNumber() (Token, error) {
	pos := lx.pos()
	var digits []byte
	for {
		b, ok := lx.peekByte()
		if !ok || !isDigit(b) {
			break
		}
		lx.getByte()
		digits = append(digits, b)
	}
	n, err := strconv.ParseInt(string(digits), 10, 32)
	if err != nil {
		return Token{}, &LexerError{Pos: pos, Msg: "malformed number"}
	}
	return Token{Kind: Number, NumVal: int32(n), Pos: pos}, nil
}

func isSpace(b byte) bool   { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isControl(b byte) bool { return b < 0x20 || b == 0x7f }
func isDigit(b byte) bool   { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool   { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool   { return isAlpha(b) || isDigit(b) }
func isPunct(b byte) bool {
	return !isAlpha(b) && !isDigit(b) && !isSpace(b) && !isControl(b) && b != 0
}
