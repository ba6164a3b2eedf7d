package ast

// Program represents a program of the dynamic logic fragment.
type Program interface {
	isProgram()
	String() string
}

// Assign represents the assignment x := e.
type Assign struct {
	Var  string
	Expr Term
}

func (Assign) isProgram() {}
func (p Assign) String() string {
	return p.Var + " := " + p.Expr.String()
}

// Test represents the guard ?C, which continues only when C holds.
type Test struct {
	Cond Formula
}

func (Test) isProgram() {}
func (p Test) String() string {
	return "?" + p.Cond.String()
}

// Skip represents the program that does nothing.
type Skip struct{}

func (Skip) isProgram() {}
func (Skip) String() string {
	return "skip"
}

// Seq represents sequential composition α; β.
type Seq struct {
	First  Program
	Second Program
}

func (Seq) isProgram() {}
func (p Seq) String() string {
	return p.First.String() + "; " + p.Second.String()
}

// Choice represents nondeterministic choice α ∪ β.
type Choice struct {
	Left  Program
	Right Program
}

func (Choice) isProgram() {}
func (p Choice) String() string {
	return "(" + p.Left.String() + " ∪ " + p.Right.String() + ")"
}

// Star represents finite iteration α*.
type Star struct {
	Body Program
}

func (Star) isProgram() {}
func (p Star) String() string {
	if _, ok := p.Body.(Skip); ok {
		return "skip*"
	}
	return "(" + p.Body.String() + ")*"
}

// If represents the conditional if C then α else β.
type If struct {
	Cond Formula
	Then Program
	Else Program
}

func (If) isProgram() {}
func (p If) String() string {
	return "if " + p.Cond.String() + " then " + p.Then.String() + " else " + p.Else.String()
}

// While represents the loop while C do α, optionally annotated with a
// loop invariant. A nil Invariant means no annotation was given.
type While struct {
	Cond      Formula
	Body      Program
	Invariant Formula
}

func (While) isProgram() {}
func (p While) String() string {
	s := "while " + p.Cond.String() + " do " + p.Body.String()
	if p.Invariant != nil {
		s += " invariant " + p.Invariant.String()
	}
	return s
}

// For represents the bounded loop for lo ≤ i < hi do α. It desugars
// into an initialized while loop; see DesugarFor.
type For struct {
	Var  string
	Lo   Term
	Hi   Term
	Body Program
}

func (For) isProgram() {}
func (p For) String() string {
	return "for " + p.Lo.String() + " ≤ " + p.Var + " < " + p.Hi.String() + " do " + p.Body.String()
}

// DesugarFor expands a bounded for-loop into its defining form:
//
//	i := lo; while i < hi do { body; i := i + 1 }
//
// The while loop carries no invariant. The [for]R rule and the tests
// both rely on this exact expansion.
func DesugarFor(p For) Program {
	loop := While{
		Cond: Atom{Pred: "<", Args: []Term{Variable{Name: p.Var}, p.Hi}},
		Body: Seq{
			First:  p.Body,
			Second: Assign{Var: p.Var, Expr: Add(Variable{Name: p.Var}, Constant{Name: "1"})},
		},
	}
	return Seq{First: Assign{Var: p.Var, Expr: p.Lo}, Second: loop}
}
