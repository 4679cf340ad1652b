package formula

import "fmt"

// Limits applied by Parse.
const (
	MaxLength = 1024
	MaxDepth  = 64
)

type parser struct {
	tokens []token
	pos    int
	depth  int
}

// Parse compiles src into an Expression. The grammar is
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | identifier | "(" expr ")"
//
// Nothing else is accepted: there are no calls, member accesses or assignments.
func Parse(src string) (*Expression, error) {
	if len(src) > MaxLength {
		return nil, ErrTooLong
	}
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return nil, ErrEmpty
	}

	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s", tok.kind)}
	}

	return &Expression{src: src, root: root}, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) enter(pos int) error {
	p.depth++
	if p.depth > MaxDepth {
		return &SyntaxError{Pos: pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tok.kind, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tok.kind, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	tok := p.peek()
	if tok.kind != tokPlus && tok.kind != tokMinus {
		return p.parsePrimary()
	}
	if err := p.enter(tok.pos); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return unaryNode{op: tok.kind, operand: operand}, nil
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numberNode(tok.num), nil
	case tokIdent:
		return identNode(tok.text), nil
	case tokLParen:
		if err := p.enter(tok.pos); err != nil {
			return nil, err
		}
		defer p.leave()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: fmt.Sprintf("expected ')', got %s", closing.kind)}
		}
		return inner, nil
	}
	return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s", tok.kind)}
}
