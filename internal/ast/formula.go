package ast

import "strings"

// Formula represents a formula of the logic. The variants cover
// propositional connectives, first-order quantifiers, term equality,
// and the box modality over programs.
type Formula interface {
	isFormula()
	String() string
}

// Atom represents a predicate applied to zero or more terms.
// A propositional letter is an Atom with no arguments. Infix
// comparisons such as i < n are stored as Atom{"<", [i, n]}.
type Atom struct {
	Pred string
	Args []Term
}

func (Atom) isFormula() {}
func (f Atom) String() string {
	if len(f.Args) == 0 {
		return f.Pred
	}
	if len(f.Args) == 2 && isInfixPred(f.Pred) {
		return f.Args[0].String() + " " + infixGlyph(f.Pred) + " " + f.Args[1].String()
	}
	var sb strings.Builder
	sb.WriteString(f.Pred)
	sb.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// infixGlyph maps the stored ASCII comparison name to its display form.
func infixGlyph(name string) string {
	switch name {
	case "<=":
		return "≤"
	case ">=":
		return "≥"
	default:
		return name
	}
}

func isInfixPred(name string) bool {
	switch name {
	case "<", "<=", ">", ">=":
		return true
	default:
		return false
	}
}

// Eq represents term equality.
type Eq struct {
	Left  Term
	Right Term
}

func (Eq) isFormula() {}
func (f Eq) String() string {
	return f.Left.String() + " = " + f.Right.String()
}

// Not represents negation.
type Not struct {
	Body Formula
}

func (Not) isFormula() {}
func (f Not) String() string {
	if atomic(f.Body) {
		return "¬" + f.Body.String()
	}
	return "¬(" + f.Body.String() + ")"
}

// atomic reports whether a formula renders without needing parentheses
// after a negation sign.
func atomic(f Formula) bool {
	switch g := f.(type) {
	case Atom:
		return len(g.Args) == 0
	case Truth, Falsity:
		return true
	default:
		return false
	}
}

// And represents conjunction.
type And struct {
	Left  Formula
	Right Formula
}

func (And) isFormula() {}
func (f And) String() string {
	return "(" + f.Left.String() + " ∧ " + f.Right.String() + ")"
}

// Or represents disjunction.
type Or struct {
	Left  Formula
	Right Formula
}

func (Or) isFormula() {}
func (f Or) String() string {
	return "(" + f.Left.String() + " ∨ " + f.Right.String() + ")"
}

// Implies represents implication.
type Implies struct {
	Left  Formula
	Right Formula
}

func (Implies) isFormula() {}
func (f Implies) String() string {
	return "(" + f.Left.String() + " → " + f.Right.String() + ")"
}

// Iff represents bi-implication.
type Iff struct {
	Left  Formula
	Right Formula
}

func (Iff) isFormula() {}
func (f Iff) String() string {
	return "(" + f.Left.String() + " ↔ " + f.Right.String() + ")"
}

// Truth represents the constant true formula.
type Truth struct{}

func (Truth) isFormula() {}
func (Truth) String() string {
	return "⊤"
}

// Falsity represents the constant false formula.
type Falsity struct{}

func (Falsity) isFormula() {}
func (Falsity) String() string {
	return "⊥"
}

// Forall represents universal quantification over a variable.
type Forall struct {
	Var  string
	Body Formula
}

func (Forall) isFormula() {}
func (f Forall) String() string {
	return "∀" + f.Var + "." + f.Body.String()
}

// Exists represents existential quantification over a variable.
type Exists struct {
	Var  string
	Body Formula
}

func (Exists) isFormula() {}
func (f Exists) String() string {
	return "∃" + f.Var + "." + f.Body.String()
}

// Box represents the box modality [α]P: after every terminating
// execution of program α, P holds.
type Box struct {
	Prog Program
	Body Formula
}

func (Box) isFormula() {}
func (f Box) String() string {
	return "[" + f.Prog.String() + "]" + f.Body.String()
}

// Helper constructors, mainly used by tests and the rule engine.

// Prop creates a propositional letter.
func Prop(name string) Formula {
	return Atom{Pred: name}
}

// Neg creates a negation.
func Neg(f Formula) Formula {
	return Not{Body: f}
}

// Conj creates a conjunction.
func Conj(l, r Formula) Formula {
	return And{Left: l, Right: r}
}

// Disj creates a disjunction.
func Disj(l, r Formula) Formula {
	return Or{Left: l, Right: r}
}

// Imp creates an implication.
func Imp(l, r Formula) Formula {
	return Implies{Left: l, Right: r}
}

// Boxed creates a box formula.
func Boxed(p Program, body Formula) Formula {
	return Box{Prog: p, Body: body}
}
