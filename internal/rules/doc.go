// Package rules implements the sequent calculus inference rules.
//
// The engine is a pure transformation: Apply takes a sequent and an
// Application (rule identifier, side, target index, optional payload)
// and returns the premise sequents the rule produces, or an error. It
// never touches the proof tree; attaching premises and tracking closure
// is the proof package's job. An empty premise list means the rule
// closed the branch outright (the axiom rules and Close templates).
//
// The list discipline: a consumed formula is removed at its index and
// replacement formulas are appended at the end of their side, so
// untouched context keeps its selection indices.
package rules
