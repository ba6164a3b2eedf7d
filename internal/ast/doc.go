// Package ast defines the abstract syntax of the proof engine: terms,
// formulas of propositional and first-order logic with a box modality,
// and the programs that may appear inside a box.
//
// All nodes are immutable value types. New formulas are produced by
// construction or by substitution, never by in-place edits, so AST values
// may be shared freely between sequents and proof nodes.
//
// The package also carries the two operations that work directly on the
// syntax: capture-avoiding substitution and session-scoped fresh variable
// generation. Rule logic lives in internal/rules, not here.
package ast
