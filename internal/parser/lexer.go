package parser

import (
	"unicode"
	"unicode/utf8"
)

// lexer scans the input string into a token list. Positions are byte
// offsets into the original input so error messages point at the exact
// spot the user typed.
type lexer struct {
	input  string
	pos    int
	tokens []Token
}

func newLexer(input string) *lexer {
	return &lexer{input: input, tokens: make([]Token, 0)}
}

func (l *lexer) tokenize() ([]Token, error) {
	for l.pos < len(l.input) {
		start := l.pos
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])

		switch {
		case unicode.IsSpace(r):
			l.pos += size

		case r == '(':
			l.add(TokenLParen, "(", start)
		case r == ')':
			l.add(TokenRParen, ")", start)
		case r == '[':
			l.add(TokenLBracket, "[", start)
		case r == ']':
			l.add(TokenRBracket, "]", start)
		case r == ',':
			l.add(TokenComma, ",", start)
		case r == '.':
			l.add(TokenDot, ".", start)
		case r == ';':
			l.add(TokenSemi, ";", start)
		case r == '*':
			l.add(TokenStar, "*", start)
		case r == '?':
			l.add(TokenQuestion, "?", start)
		case r == '=':
			l.add(TokenEq, "=", start)

		case r == ':':
			if l.peekByte(1) == '=' {
				l.addWide(TokenAssign, ":=", start, 2)
				continue
			}
			return nil, &ParseError{Pos: start, Expected: ":=", Got: ":"}

		case r == '|':
			if l.peekByte(1) == '-' {
				l.addWide(TokenTurnstile, "|-", start, 2)
				continue
			}
			return nil, &ParseError{Pos: start, Expected: "|-", Got: "|"}

		case r == '-':
			if l.peekByte(1) == '>' {
				l.addWide(TokenImplies, "->", start, 2)
				continue
			}
			l.add(TokenMinus, "-", start)

		case r == '<':
			if l.peekByte(1) == '-' && l.peekByte(2) == '>' {
				l.addWide(TokenIff, "<->", start, 3)
				continue
			}
			if l.peekByte(1) == '=' {
				l.addWide(TokenLe, "<=", start, 2)
				continue
			}
			l.add(TokenLt, "<", start)

		case r == '>':
			if l.peekByte(1) == '=' {
				l.addWide(TokenGe, ">=", start, 2)
				continue
			}
			l.add(TokenGt, ">", start)

		case r == '+':
			if l.peekByte(1) == '+' {
				l.addWide(TokenCup, "++", start, 2)
				continue
			}
			l.add(TokenPlus, "+", start)

		case unicode.IsDigit(r):
			l.lexNumber(start)

		case unicode.IsLetter(r) || r == '_':
			l.lexIdent(start)

		default:
			if tt, ok := glyphs[r]; ok {
				l.addWide(tt, string(r), start, size)
				continue
			}
			return nil, &ParseError{Pos: start, Expected: "a token", Got: string(r)}
		}
	}
	l.tokens = append(l.tokens, Token{Type: TokenEOF, Pos: l.pos})
	return l.tokens, nil
}

func (l *lexer) lexNumber(start int) {
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
	l.tokens = append(l.tokens, Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: start})
}

func (l *lexer) lexIdent(start int) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.pos += size
	}
	word := l.input[start:l.pos]
	if tt, ok := keywords[word]; ok {
		l.tokens = append(l.tokens, Token{Type: tt, Value: word, Pos: start})
		return
	}
	l.tokens = append(l.tokens, Token{Type: TokenIdent, Value: word, Pos: start})
}

// add appends a single-byte token and advances.
func (l *lexer) add(tt TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{Type: tt, Value: value, Pos: pos})
	l.pos++
}

// addWide appends a token of the given byte width and advances past it.
func (l *lexer) addWide(tt TokenType, value string, pos, width int) {
	l.tokens = append(l.tokens, Token{Type: tt, Value: value, Pos: pos})
	l.pos = pos + width
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}
