package parser

import "fmt"

// ParseError describes a syntax error at a byte position in the input,
// together with the construct the parser expected there.
type ParseError struct {
	Pos      int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("parse error at position %d: expected %s, found end of input", e.Pos, e.Expected)
	}
	return fmt.Sprintf("parse error at position %d: expected %s, found %q", e.Pos, e.Expected, e.Got)
}

func errAt(tok Token, expected string) *ParseError {
	got := tok.Value
	if tok.Type == TokenEOF {
		got = ""
	}
	return &ParseError{Pos: tok.Pos, Expected: expected, Got: got}
}
