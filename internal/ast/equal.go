package ast

// TermsEqual reports structural equality of two terms.
func TermsEqual(a, b Term) bool {
	switch x := a.(type) {
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	case Constant:
		y, ok := b.(Constant)
		return ok && x.Name == y.Name
	case FuncApp:
		y, ok := b.(FuncApp)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !TermsEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FormulasEqual reports structural equality of two formulas. Bound
// variable names are compared literally; the fresh-variable discipline
// keeps them normalized, so alpha-conversion is not needed here.
func FormulasEqual(a, b Formula) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		if !ok || x.Pred != y.Pred || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !TermsEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case Eq:
		y, ok := b.(Eq)
		return ok && TermsEqual(x.Left, y.Left) && TermsEqual(x.Right, y.Right)
	case Not:
		y, ok := b.(Not)
		return ok && FormulasEqual(x.Body, y.Body)
	case And:
		y, ok := b.(And)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Or:
		y, ok := b.(Or)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Implies:
		y, ok := b.(Implies)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Iff:
		y, ok := b.(Iff)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Truth:
		_, ok := b.(Truth)
		return ok
	case Falsity:
		_, ok := b.(Falsity)
		return ok
	case Forall:
		y, ok := b.(Forall)
		return ok && x.Var == y.Var && FormulasEqual(x.Body, y.Body)
	case Exists:
		y, ok := b.(Exists)
		return ok && x.Var == y.Var && FormulasEqual(x.Body, y.Body)
	case Box:
		y, ok := b.(Box)
		return ok && ProgramsEqual(x.Prog, y.Prog) && FormulasEqual(x.Body, y.Body)
	default:
		return false
	}
}

// ProgramsEqual reports structural equality of two programs.
func ProgramsEqual(a, b Program) bool {
	switch x := a.(type) {
	case Assign:
		y, ok := b.(Assign)
		return ok && x.Var == y.Var && TermsEqual(x.Expr, y.Expr)
	case Test:
		y, ok := b.(Test)
		return ok && FormulasEqual(x.Cond, y.Cond)
	case Skip:
		_, ok := b.(Skip)
		return ok
	case Seq:
		y, ok := b.(Seq)
		return ok && ProgramsEqual(x.First, y.First) && ProgramsEqual(x.Second, y.Second)
	case Choice:
		y, ok := b.(Choice)
		return ok && ProgramsEqual(x.Left, y.Left) && ProgramsEqual(x.Right, y.Right)
	case Star:
		y, ok := b.(Star)
		return ok && ProgramsEqual(x.Body, y.Body)
	case If:
		y, ok := b.(If)
		return ok && FormulasEqual(x.Cond, y.Cond) &&
			ProgramsEqual(x.Then, y.Then) && ProgramsEqual(x.Else, y.Else)
	case While:
		y, ok := b.(While)
		if !ok || !FormulasEqual(x.Cond, y.Cond) || !ProgramsEqual(x.Body, y.Body) {
			return false
		}
		if (x.Invariant == nil) != (y.Invariant == nil) {
			return false
		}
		return x.Invariant == nil || FormulasEqual(x.Invariant, y.Invariant)
	case For:
		y, ok := b.(For)
		return ok && x.Var == y.Var && TermsEqual(x.Lo, y.Lo) &&
			TermsEqual(x.Hi, y.Hi) && ProgramsEqual(x.Body, y.Body)
	default:
		return false
	}
}
