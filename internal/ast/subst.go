package ast

import "fmt"

// CaptureError reports a substitution that would capture a free
// variable of the replacement term under a quantifier.
type CaptureError struct {
	Binder string
	Var    string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("substituting for %s under binder %s would capture a free variable", e.Var, e.Binder)
}

// Substitute replaces every free occurrence of v in f with t. It is
// capture-avoiding by rejection: if t mentions a variable that a
// quantifier in f binds on the path to an occurrence of v, the
// substitution fails with a CaptureError rather than silently renaming.
// Fresh variables issued by the session can never collide, so capture
// only arises from user-supplied instantiation terms.
func Substitute(f Formula, v string, t Term) (Formula, error) {
	return substFormula(f, v, t)
}

// SubstituteTerm replaces every occurrence of v in a term.
func SubstituteTerm(tm Term, v string, t Term) Term {
	switch x := tm.(type) {
	case Variable:
		if x.Name == v {
			return t
		}
		return x
	case Constant:
		return x
	case FuncApp:
		args := make([]Term, len(x.Args))
		for i, arg := range x.Args {
			args[i] = SubstituteTerm(arg, v, t)
		}
		return FuncApp{Name: x.Name, Args: args}
	default:
		return tm
	}
}

func substFormula(f Formula, v string, t Term) (Formula, error) {
	switch x := f.(type) {
	case Atom:
		args := make([]Term, len(x.Args))
		for i, arg := range x.Args {
			args[i] = SubstituteTerm(arg, v, t)
		}
		return Atom{Pred: x.Pred, Args: args}, nil
	case Eq:
		return Eq{Left: SubstituteTerm(x.Left, v, t), Right: SubstituteTerm(x.Right, v, t)}, nil
	case Not:
		body, err := substFormula(x.Body, v, t)
		if err != nil {
			return nil, err
		}
		return Not{Body: body}, nil
	case And:
		l, r, err := substPair(x.Left, x.Right, v, t)
		if err != nil {
			return nil, err
		}
		return And{Left: l, Right: r}, nil
	case Or:
		l, r, err := substPair(x.Left, x.Right, v, t)
		if err != nil {
			return nil, err
		}
		return Or{Left: l, Right: r}, nil
	case Implies:
		l, r, err := substPair(x.Left, x.Right, v, t)
		if err != nil {
			return nil, err
		}
		return Implies{Left: l, Right: r}, nil
	case Iff:
		l, r, err := substPair(x.Left, x.Right, v, t)
		if err != nil {
			return nil, err
		}
		return Iff{Left: l, Right: r}, nil
	case Truth, Falsity:
		return x, nil
	case Forall:
		body, err := substUnderBinder(x.Var, x.Body, v, t)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return x, nil
		}
		return Forall{Var: x.Var, Body: body}, nil
	case Exists:
		body, err := substUnderBinder(x.Var, x.Body, v, t)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return x, nil
		}
		return Exists{Var: x.Var, Body: body}, nil
	case Box:
		prog, err := substProgram(x.Prog, v, t)
		if err != nil {
			return nil, err
		}
		body, err := substFormula(x.Body, v, t)
		if err != nil {
			return nil, err
		}
		return Box{Prog: prog, Body: body}, nil
	default:
		return f, nil
	}
}

func substPair(l, r Formula, v string, t Term) (Formula, Formula, error) {
	nl, err := substFormula(l, v, t)
	if err != nil {
		return nil, nil, err
	}
	nr, err := substFormula(r, v, t)
	if err != nil {
		return nil, nil, err
	}
	return nl, nr, nil
}

// substUnderBinder handles substitution under a quantifier binding
// binder. Returns a nil formula when the binder shadows v (no
// substitution happens below it).
func substUnderBinder(binder string, body Formula, v string, t Term) (Formula, error) {
	if binder == v {
		return nil, nil
	}
	if FreeVarsTerm(t)[binder] && FreeVars(body)[v] {
		return nil, &CaptureError{Binder: binder, Var: v}
	}
	return substFormula(body, v, t)
}

func substProgram(p Program, v string, t Term) (Program, error) {
	switch x := p.(type) {
	case Assign:
		// The assignment target is a location, not a term; only the
		// right-hand side participates in substitution.
		return Assign{Var: x.Var, Expr: SubstituteTerm(x.Expr, v, t)}, nil
	case Test:
		cond, err := substFormula(x.Cond, v, t)
		if err != nil {
			return nil, err
		}
		return Test{Cond: cond}, nil
	case Skip:
		return x, nil
	case Seq:
		first, err := substProgram(x.First, v, t)
		if err != nil {
			return nil, err
		}
		second, err := substProgram(x.Second, v, t)
		if err != nil {
			return nil, err
		}
		return Seq{First: first, Second: second}, nil
	case Choice:
		l, err := substProgram(x.Left, v, t)
		if err != nil {
			return nil, err
		}
		r, err := substProgram(x.Right, v, t)
		if err != nil {
			return nil, err
		}
		return Choice{Left: l, Right: r}, nil
	case Star:
		body, err := substProgram(x.Body, v, t)
		if err != nil {
			return nil, err
		}
		return Star{Body: body}, nil
	case If:
		cond, err := substFormula(x.Cond, v, t)
		if err != nil {
			return nil, err
		}
		then, err := substProgram(x.Then, v, t)
		if err != nil {
			return nil, err
		}
		els, err := substProgram(x.Else, v, t)
		if err != nil {
			return nil, err
		}
		return If{Cond: cond, Then: then, Else: els}, nil
	case While:
		cond, err := substFormula(x.Cond, v, t)
		if err != nil {
			return nil, err
		}
		body, err := substProgram(x.Body, v, t)
		if err != nil {
			return nil, err
		}
		var inv Formula
		if x.Invariant != nil {
			inv, err = substFormula(x.Invariant, v, t)
			if err != nil {
				return nil, err
			}
		}
		return While{Cond: cond, Body: body, Invariant: inv}, nil
	case For:
		lo := SubstituteTerm(x.Lo, v, t)
		hi := SubstituteTerm(x.Hi, v, t)
		body, err := substProgram(x.Body, v, t)
		if err != nil {
			return nil, err
		}
		return For{Var: x.Var, Lo: lo, Hi: hi, Body: body}, nil
	default:
		return p, nil
	}
}
