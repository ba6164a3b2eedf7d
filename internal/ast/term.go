package ast

import "strings"

// Term represents a first-order term: a variable, a constant, or a
// function application over sub-terms.
type Term interface {
	isTerm()
	String() string
}

// Variable represents a named variable.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}
func (t Variable) String() string {
	return t.Name
}

// Constant represents a named constant, including numeric literals.
type Constant struct {
	Name string
}

func (Constant) isTerm() {}
func (t Constant) String() string {
	return t.Name
}

// FuncApp represents a function application with ordered arguments.
// Infix arithmetic such as i+1 is stored as FuncApp{"+", [i, 1]}.
type FuncApp struct {
	Name string
	Args []Term
}

func (FuncApp) isTerm() {}
func (t FuncApp) String() string {
	if len(t.Args) == 2 && isInfixFunc(t.Name) {
		return "(" + t.Args[0].String() + " " + t.Name + " " + t.Args[1].String() + ")"
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func isInfixFunc(name string) bool {
	switch name {
	case "+", "-", "*":
		return true
	default:
		return false
	}
}

// Var creates a variable term.
func Var(name string) Term {
	return Variable{Name: name}
}

// Const creates a constant term.
func Const(name string) Term {
	return Constant{Name: name}
}

// Func creates a function application term.
func Func(name string, args ...Term) Term {
	return FuncApp{Name: name, Args: args}
}

// Add creates the term a + b.
func Add(a, b Term) Term {
	return FuncApp{Name: "+", Args: []Term{a, b}}
}
