package parser

import (
	"github.com/formallab/sequent/internal/ast"
)

// Parser consumes the token list and builds AST values.
type Parser struct {
	tokens []Token
	pos    int
}

// ParseSequent parses "formulaList |- formulaList" into a sequent.
// Either list may be empty.
func ParseSequent(input string) (ast.Sequent, error) {
	p, err := newParser(input)
	if err != nil {
		return ast.Sequent{}, err
	}
	left, err := p.formulaList(TokenTurnstile)
	if err != nil {
		return ast.Sequent{}, err
	}
	if _, err := p.expect(TokenTurnstile, "turnstile |-"); err != nil {
		return ast.Sequent{}, err
	}
	right, err := p.formulaList(TokenEOF)
	if err != nil {
		return ast.Sequent{}, err
	}
	if _, err := p.expect(TokenEOF, "end of input"); err != nil {
		return ast.Sequent{}, err
	}
	return ast.NewSequent(left, right), nil
}

// ParseFormula parses a single formula. Used directly by the custom
// rule interpreter when re-parsing rendered templates.
func ParseFormula(input string) (ast.Formula, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseTerm parses a single term, e.g. a quantifier instantiation
// argument supplied by the user.
func ParseTerm(input string) (ast.Term, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return t, nil
}

func newParser(input string) (*Parser, error) {
	tokens, err := newLexer(input).tokenize()
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) accept(tt TokenType) bool {
	if p.peek().Type == tt {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(tt TokenType, what string) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, errAt(p.peek(), what)
	}
	return p.next(), nil
}

// formulaList parses comma-separated formulas up to the given
// terminator, which is not consumed. An empty list is allowed.
func (p *Parser) formulaList(until TokenType) ([]ast.Formula, error) {
	fs := make([]ast.Formula, 0)
	if p.peek().Type == until {
		return fs, nil
	}
	for {
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
		if !p.accept(TokenComma) {
			return fs, nil
		}
	}
}

// formula parses with precedence iff < implies < or < and < not.
func (p *Parser) formula() (ast.Formula, error) {
	return p.iff()
}

func (p *Parser) iff() (ast.Formula, error) {
	left, err := p.implies()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenIff) {
		right, err := p.implies()
		if err != nil {
			return nil, err
		}
		left = ast.Iff{Left: left, Right: right}
	}
	return left, nil
}

// implies is right-associative: a -> b -> c parses as a -> (b -> c).
func (p *Parser) implies() (ast.Formula, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.accept(TokenImplies) {
		right, err := p.implies()
		if err != nil {
			return nil, err
		}
		return ast.Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) or() (ast.Formula, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenOr) {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = ast.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) and() (ast.Formula, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenAnd) {
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = ast.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Formula, error) {
	switch p.peek().Type {
	case TokenNot:
		p.next()
		body, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Not{Body: body}, nil

	case TokenForall:
		return p.quantifier(true)

	case TokenExists:
		return p.quantifier(false)

	case TokenLBracket:
		p.next()
		prog, err := p.program()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRBracket, "closing ]"); err != nil {
			return nil, err
		}
		body, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Box{Prog: prog, Body: body}, nil

	default:
		return p.primary()
	}
}

// quantifier parses "∀x. F" or "∃x. F"; the body swallows the rest of
// the formula.
func (p *Parser) quantifier(universal bool) (ast.Formula, error) {
	p.next()
	v, err := p.expect(TokenIdent, "a quantified variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot, "a dot after the quantified variable"); err != nil {
		return nil, err
	}
	body, err := p.formula()
	if err != nil {
		return nil, err
	}
	if universal {
		return ast.Forall{Var: v.Value, Body: body}, nil
	}
	return ast.Exists{Var: v.Value, Body: body}, nil
}

func (p *Parser) primary() (ast.Formula, error) {
	switch p.peek().Type {
	case TokenTrue:
		p.next()
		return ast.Truth{}, nil
	case TokenFalse:
		p.next()
		return ast.Falsity{}, nil
	}

	// A term followed by a comparison operator forms an atomic
	// comparison or equality. Backtrack if that shape doesn't pan out.
	if f, ok := p.tryComparison(); ok {
		return f, nil
	}

	if p.accept(TokenLParen) {
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return f, nil
	}

	return p.predicate()
}

// tryComparison attempts to parse "term op term". On any mismatch the
// parser position is restored and ok is false.
func (p *Parser) tryComparison() (ast.Formula, bool) {
	saved := p.pos
	left, err := p.term()
	if err != nil {
		p.pos = saved
		return nil, false
	}
	var pred string
	switch p.peek().Type {
	case TokenEq:
		pred = "="
	case TokenLt:
		pred = "<"
	case TokenLe:
		pred = "<="
	case TokenGt:
		pred = ">"
	case TokenGe:
		pred = ">="
	default:
		p.pos = saved
		return nil, false
	}
	p.next()
	right, err := p.term()
	if err != nil {
		p.pos = saved
		return nil, false
	}
	if pred == "=" {
		return ast.Eq{Left: left, Right: right}, true
	}
	return ast.Atom{Pred: pred, Args: []ast.Term{left, right}}, true
}

// predicate parses "p" or "p(t1, ..., tn)".
func (p *Parser) predicate() (ast.Formula, error) {
	name, err := p.expect(TokenIdent, "a formula")
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenLParen) {
		return ast.Atom{Pred: name.Value}, nil
	}
	args, err := p.termList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen, "closing parenthesis"); err != nil {
		return nil, err
	}
	return ast.Atom{Pred: name.Value, Args: args}, nil
}

func (p *Parser) termList() ([]ast.Term, error) {
	args := make([]ast.Term, 0, 2)
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if !p.accept(TokenComma) {
			return args, nil
		}
	}
}

// term parses additive expressions over factors.
func (p *Parser) term() (ast.Term, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch p.peek().Type {
		case TokenPlus:
			op = "+"
		case TokenMinus:
			op = "-"
		default:
			return left, nil
		}
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = ast.FuncApp{Name: op, Args: []ast.Term{left, right}}
	}
}

func (p *Parser) factor() (ast.Term, error) {
	left, err := p.atomTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenStar {
		p.next()
		right, err := p.atomTerm()
		if err != nil {
			return nil, err
		}
		left = ast.FuncApp{Name: "*", Args: []ast.Term{left, right}}
	}
	return left, nil
}

func (p *Parser) atomTerm() (ast.Term, error) {
	switch tok := p.peek(); tok.Type {
	case TokenNumber:
		p.next()
		return ast.Constant{Name: tok.Value}, nil

	case TokenIdent:
		p.next()
		if !p.accept(TokenLParen) {
			return ast.Variable{Name: tok.Value}, nil
		}
		args, err := p.termList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return ast.FuncApp{Name: tok.Value, Args: args}, nil

	case TokenLParen:
		p.next()
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return t, nil

	default:
		return nil, errAt(tok, "a term")
	}
}
