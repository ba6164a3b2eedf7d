package parser

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenNumber
	TokenAnd       // and, ∧
	TokenOr        // or, ∨
	TokenNot       // not, ¬
	TokenImplies   // implies, ->, →
	TokenIff       // iff, <->, ↔
	TokenForall    // forall, ∀
	TokenExists    // exists, ∃
	TokenTrue      // true, ⊤
	TokenFalse     // false, ⊥
	TokenTurnstile // |-, ⊢, entails
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenDot
	TokenSemi
	TokenStar     // iteration postfix and multiplication
	TokenQuestion // test prefix
	TokenCup      // ∪, ++
	TokenAssign   // :=
	TokenEq       // =
	TokenLt
	TokenLe // <=, ≤
	TokenGt
	TokenGe // >=, ≥
	TokenPlus
	TokenMinus
	TokenSkip
	TokenIf
	TokenThen
	TokenElse
	TokenWhile
	TokenDo
	TokenInvariant
	TokenFor
	TokenEOF
)

// Token is a single lexical token with its byte position in the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

var keywords = map[string]TokenType{
	"and":       TokenAnd,
	"or":        TokenOr,
	"not":       TokenNot,
	"implies":   TokenImplies,
	"iff":       TokenIff,
	"forall":    TokenForall,
	"exists":    TokenExists,
	"true":      TokenTrue,
	"false":     TokenFalse,
	"entails":   TokenTurnstile,
	"skip":      TokenSkip,
	"if":        TokenIf,
	"then":      TokenThen,
	"else":      TokenElse,
	"while":     TokenWhile,
	"do":        TokenDo,
	"invariant": TokenInvariant,
	"for":       TokenFor,
}

var glyphs = map[rune]TokenType{
	'∧': TokenAnd,
	'∨': TokenOr,
	'¬': TokenNot,
	'→': TokenImplies,
	'↔': TokenIff,
	'∀': TokenForall,
	'∃': TokenExists,
	'⊤': TokenTrue,
	'⊥': TokenFalse,
	'⊢': TokenTurnstile,
	'∪': TokenCup,
	'≤': TokenLe,
	'≥': TokenGe,
}
