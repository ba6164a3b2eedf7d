package parser

import (
	"github.com/formallab/sequent/internal/ast"
)

// ParseProgram parses a bare program, e.g. a custom rule payload.
func ParseProgram(input string) (ast.Program, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	prog, err := p.program()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return prog, nil
}

// program parses with ∪ binding loosest, then ;, then postfix *.
func (p *Parser) program() (ast.Program, error) {
	left, err := p.seqProgram()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenCup) {
		right, err := p.seqProgram()
		if err != nil {
			return nil, err
		}
		left = ast.Choice{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) seqProgram() (ast.Program, error) {
	left, err := p.postfixProgram()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenSemi) {
		right, err := p.postfixProgram()
		if err != nil {
			return nil, err
		}
		left = ast.Seq{First: left, Second: right}
	}
	return left, nil
}

func (p *Parser) postfixProgram() (ast.Program, error) {
	prog, err := p.basicProgram()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenStar) {
		prog = ast.Star{Body: prog}
	}
	return prog, nil
}

func (p *Parser) basicProgram() (ast.Program, error) {
	switch tok := p.peek(); tok.Type {
	case TokenSkip:
		p.next()
		return ast.Skip{}, nil

	case TokenQuestion:
		p.next()
		cond, err := p.formula()
		if err != nil {
			return nil, err
		}
		return ast.Test{Cond: cond}, nil

	case TokenIf:
		return p.ifProgram()

	case TokenWhile:
		return p.whileProgram()

	case TokenFor:
		return p.forProgram()

	case TokenLParen:
		p.next()
		prog, err := p.program()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return prog, nil

	case TokenIdent:
		p.next()
		if _, err := p.expect(TokenAssign, "assignment :="); err != nil {
			return nil, err
		}
		expr, err := p.term()
		if err != nil {
			return nil, err
		}
		return ast.Assign{Var: tok.Value, Expr: expr}, nil

	default:
		return nil, errAt(tok, "a program")
	}
}

func (p *Parser) ifProgram() (ast.Program, error) {
	p.next()
	cond, err := p.formula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenThen, "keyword then"); err != nil {
		return nil, err
	}
	then, err := p.program()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenElse, "keyword else"); err != nil {
		return nil, err
	}
	els, err := p.program()
	if err != nil {
		return nil, err
	}
	return ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) whileProgram() (ast.Program, error) {
	p.next()
	cond, err := p.formula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDo, "keyword do"); err != nil {
		return nil, err
	}
	body, err := p.program()
	if err != nil {
		return nil, err
	}
	var inv ast.Formula
	if p.accept(TokenInvariant) {
		inv, err = p.formula()
		if err != nil {
			return nil, err
		}
	}
	return ast.While{Cond: cond, Body: body, Invariant: inv}, nil
}

// forProgram parses "for lo ≤ i < hi do α". The bound variable sits
// between the two bounds.
func (p *Parser) forProgram() (ast.Program, error) {
	p.next()
	lo, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLe, "≤ after the lower bound"); err != nil {
		return nil, err
	}
	v, err := p.expect(TokenIdent, "the loop variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLt, "< before the upper bound"); err != nil {
		return nil, err
	}
	hi, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDo, "keyword do"); err != nil {
		return nil, err
	}
	body, err := p.program()
	if err != nil {
		return nil, err
	}
	return ast.For{Var: v.Value, Lo: lo, Hi: hi, Body: body}, nil
}
