// Package parser turns the textual sequent grammar into AST values.
//
// The surface syntax accepts ASCII keywords and Unicode operator glyphs
// as synonyms (and/∧, or/∨, not/¬, implies/→, iff/↔, forall/∀,
// exists/∃, |-/⊢). Connective precedence from loosest to tightest is
// iff < implies < or < and < not, implication is right-associative, and
// quantifiers swallow the remaining formula. Programs appear inside
// [...] with ; for sequence, ∪ (or ++) for choice, postfix * for
// iteration, and if/while/for statements.
//
// Parsing is all-or-nothing: malformed input yields a *ParseError with
// the offending position and the expected construct, never a partial
// AST.
package parser
