package ast

// FreeVars returns the set of variable names occurring free in a
// formula. Only quantifiers bind; variables inside box programs count
// as free occurrences.
func FreeVars(f Formula) map[string]bool {
	vars := make(map[string]bool)
	collectFormula(f, vars, make(map[string]int))
	return vars
}

// FreeVarsTerm returns the set of variable names occurring in a term.
func FreeVarsTerm(t Term) map[string]bool {
	vars := make(map[string]bool)
	collectTerm(t, vars, make(map[string]int))
	return vars
}

// FreeVarsSequent returns the union of free variables across every
// formula in the sequent.
func FreeVarsSequent(s Sequent) map[string]bool {
	vars := make(map[string]bool)
	bound := make(map[string]int)
	for _, f := range s.Left {
		collectFormula(f, vars, bound)
	}
	for _, f := range s.Right {
		collectFormula(f, vars, bound)
	}
	return vars
}

// bound maps a variable name to its current binding depth; a positive
// count means the name is bound here and its occurrences are skipped.

func collectTerm(t Term, vars map[string]bool, bound map[string]int) {
	switch x := t.(type) {
	case Variable:
		if bound[x.Name] == 0 {
			vars[x.Name] = true
		}
	case FuncApp:
		for _, arg := range x.Args {
			collectTerm(arg, vars, bound)
		}
	}
}

func collectFormula(f Formula, vars map[string]bool, bound map[string]int) {
	switch x := f.(type) {
	case Atom:
		for _, arg := range x.Args {
			collectTerm(arg, vars, bound)
		}
	case Eq:
		collectTerm(x.Left, vars, bound)
		collectTerm(x.Right, vars, bound)
	case Not:
		collectFormula(x.Body, vars, bound)
	case And:
		collectFormula(x.Left, vars, bound)
		collectFormula(x.Right, vars, bound)
	case Or:
		collectFormula(x.Left, vars, bound)
		collectFormula(x.Right, vars, bound)
	case Implies:
		collectFormula(x.Left, vars, bound)
		collectFormula(x.Right, vars, bound)
	case Iff:
		collectFormula(x.Left, vars, bound)
		collectFormula(x.Right, vars, bound)
	case Forall:
		bound[x.Var]++
		collectFormula(x.Body, vars, bound)
		bound[x.Var]--
	case Exists:
		bound[x.Var]++
		collectFormula(x.Body, vars, bound)
		bound[x.Var]--
	case Box:
		collectProgram(x.Prog, vars, bound)
		collectFormula(x.Body, vars, bound)
	}
}

func collectProgram(p Program, vars map[string]bool, bound map[string]int) {
	switch x := p.(type) {
	case Assign:
		if bound[x.Var] == 0 {
			vars[x.Var] = true
		}
		collectTerm(x.Expr, vars, bound)
	case Test:
		collectFormula(x.Cond, vars, bound)
	case Seq:
		collectProgram(x.First, vars, bound)
		collectProgram(x.Second, vars, bound)
	case Choice:
		collectProgram(x.Left, vars, bound)
		collectProgram(x.Right, vars, bound)
	case Star:
		collectProgram(x.Body, vars, bound)
	case If:
		collectFormula(x.Cond, vars, bound)
		collectProgram(x.Then, vars, bound)
		collectProgram(x.Else, vars, bound)
	case While:
		collectFormula(x.Cond, vars, bound)
		collectProgram(x.Body, vars, bound)
		if x.Invariant != nil {
			collectFormula(x.Invariant, vars, bound)
		}
	case For:
		if bound[x.Var] == 0 {
			vars[x.Var] = true
		}
		collectTerm(x.Lo, vars, bound)
		collectTerm(x.Hi, vars, bound)
		collectProgram(x.Body, vars, bound)
	}
}
