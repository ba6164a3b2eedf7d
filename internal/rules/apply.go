package rules

import (
	"fmt"

	"github.com/formallab/sequent/internal/ast"
)

// Engine applies inference rules to sequents. It carries the session's
// fresh-variable generator for the rules that introduce eigenvariables
// (∀R, ∃L); everything else is stateless.
type Engine struct {
	fresh     *ast.FreshGen
	templates map[string]Template
}

// NewEngine creates an engine backed by the given generator.
func NewEngine(fresh *ast.FreshGen) *Engine {
	return &Engine{
		fresh:     fresh,
		templates: make(map[string]Template),
	}
}

// Apply executes one rule application on a sequent and returns the
// premise sequents. An empty (non-nil) result means the branch closes
// with zero premises. On error the input sequent is untouched; the
// engine never partially applies a rule.
func (e *Engine) Apply(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	switch app.Rule {
	case RuleID:
		return e.axiomID(seq)
	case RuleFalseL:
		return e.axiomFalseL(seq)
	case RuleTrueR:
		return e.axiomTrueR(seq)
	case RuleAndL:
		return e.andLeft(seq, app)
	case RuleAndR:
		return e.andRight(seq, app)
	case RuleOrL:
		return e.orLeft(seq, app)
	case RuleOrR:
		return e.orRight(seq, app)
	case RuleImpL:
		return e.impLeft(seq, app)
	case RuleImpR:
		return e.impRight(seq, app)
	case RuleNotL:
		return e.notLeft(seq, app)
	case RuleNotR:
		return e.notRight(seq, app)
	case RuleIffL, RuleIffR:
		return e.iff(seq, app)
	case RuleForallR:
		return e.forallRight(seq, app)
	case RuleForallL:
		return e.forallLeft(seq, app)
	case RuleExistsR:
		return e.existsRight(seq, app)
	case RuleExistsL:
		return e.existsLeft(seq, app)
	case RuleBoxSkip:
		return e.boxSkip(seq, app)
	case RuleBoxSeq:
		return e.boxSeq(seq, app)
	case RuleBoxChoice:
		return e.boxChoice(seq, app)
	case RuleStarUnfold:
		return e.starUnfold(seq, app)
	case RuleBoxIf:
		return e.boxIf(seq, app)
	case RuleWhileUnfold:
		return e.whileUnfold(seq, app)
	case RuleWhileInv:
		return e.whileInvariant(seq, app)
	case RuleBoxFor:
		return e.boxFor(seq, app)
	case RuleBoxAssign:
		return e.boxAssign(seq, app)
	case RuleTestL:
		return e.testLeft(seq, app)
	case RuleTestR:
		return e.testRight(seq, app)
	case RuleWeaken:
		return e.weaken(seq, app)
	case RuleContract:
		return e.contract(seq, app)
	case RuleCut:
		return e.cut(seq, app)
	case RuleCustom:
		return e.applyTemplate(seq, app)
	default:
		return nil, fmt.Errorf("%w: rule %d", ErrUnknownRule, app.Rule)
	}
}

// target fetches the formula at the application's side and index.
func target(seq ast.Sequent, app Application) (ast.Formula, error) {
	list := seq.Left
	if app.Side == SideRight {
		list = seq.Right
	}
	if app.Index < 0 || app.Index >= len(list) {
		return nil, fmt.Errorf("%w: index %d on %s", ErrNoMatchingFormula, app.Index, app.Side)
	}
	return list[app.Index], nil
}

// requireSide rejects an application on a side the rule does not have.
func requireSide(app Application, side Side) error {
	if app.Side != side {
		return fmt.Errorf("%w: %s has no %s variant", ErrNoMatchingFormula, app.Rule.Label(side), app.Side)
	}
	return nil
}

// removeAt returns a copy of the list with the element at i removed.
func removeAt(list []ast.Formula, i int) []ast.Formula {
	out := make([]ast.Formula, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out
}

func appendCopy(list []ast.Formula, extra ...ast.Formula) []ast.Formula {
	out := make([]ast.Formula, 0, len(list)+len(extra))
	out = append(out, list...)
	out = append(out, extra...)
	return out
}

// consume removes the target formula from its side and returns the two
// resulting base lists.
func consume(seq ast.Sequent, app Application) (left, right []ast.Formula) {
	left, right = seq.CopyLists()
	if app.Side == SideLeft {
		left = removeAt(left, app.Index)
	} else {
		right = removeAt(right, app.Index)
	}
	return left, right
}

// ---- axiom rules ----

func (e *Engine) axiomID(seq ast.Sequent) ([]ast.Sequent, error) {
	for _, l := range seq.Left {
		for _, r := range seq.Right {
			if ast.FormulasEqual(l, r) {
				return []ast.Sequent{}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no formula common to both sides", ErrPreconditionFailed)
}

func (e *Engine) axiomFalseL(seq ast.Sequent) ([]ast.Sequent, error) {
	for _, f := range seq.Left {
		if _, ok := f.(ast.Falsity); ok {
			return []ast.Sequent{}, nil
		}
	}
	return nil, fmt.Errorf("%w: no ⊥ in the antecedents", ErrPreconditionFailed)
}

func (e *Engine) axiomTrueR(seq ast.Sequent) ([]ast.Sequent, error) {
	for _, f := range seq.Right {
		if _, ok := f.(ast.Truth); ok {
			return []ast.Sequent{}, nil
		}
	}
	return nil, fmt.Errorf("%w: no ⊤ in the succedents", ErrPreconditionFailed)
}

// ---- propositional rules ----

func (e *Engine) andLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	and, ok := f.(ast.And)
	if !ok {
		return nil, shapeErr("∧L", "a conjunction", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, and.Left, and.Right), Right: right},
	}, nil
}

func (e *Engine) andRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	and, ok := f.(ast.And)
	if !ok {
		return nil, shapeErr("∧R", "a conjunction", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, and.Left)},
		{Left: left, Right: appendCopy(right, and.Right)},
	}, nil
}

func (e *Engine) orLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	or, ok := f.(ast.Or)
	if !ok {
		return nil, shapeErr("∨L", "a disjunction", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, or.Left), Right: right},
		{Left: appendCopy(left, or.Right), Right: right},
	}, nil
}

func (e *Engine) orRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	or, ok := f.(ast.Or)
	if !ok {
		return nil, shapeErr("∨R", "a disjunction", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, or.Left, or.Right)},
	}, nil
}

func (e *Engine) impLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	imp, ok := f.(ast.Implies)
	if !ok {
		return nil, shapeErr("→L", "an implication", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, imp.Left)},
		{Left: appendCopy(left, imp.Right), Right: right},
	}, nil
}

func (e *Engine) impRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	imp, ok := f.(ast.Implies)
	if !ok {
		return nil, shapeErr("→R", "an implication", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, imp.Left), Right: appendCopy(right, imp.Right)},
	}, nil
}

func (e *Engine) notLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	not, ok := f.(ast.Not)
	if !ok {
		return nil, shapeErr("¬L", "a negation", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, not.Body)},
	}, nil
}

func (e *Engine) notRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	not, ok := f.(ast.Not)
	if !ok {
		return nil, shapeErr("¬R", "a negation", f)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, not.Body), Right: right},
	}, nil
}

// iff decomposes A↔B into its two directional implications, one per
// branch, on whichever side the bi-implication sits.
func (e *Engine) iff(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if app.Rule == RuleIffL {
		if err := requireSide(app, SideLeft); err != nil {
			return nil, err
		}
	} else {
		if err := requireSide(app, SideRight); err != nil {
			return nil, err
		}
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	iff, ok := f.(ast.Iff)
	if !ok {
		return nil, shapeErr(app.Rule.Label(app.Side), "a bi-implication", f)
	}
	forward := ast.Implies{Left: iff.Left, Right: iff.Right}
	backward := ast.Implies{Left: iff.Right, Right: iff.Left}
	left, right := consume(seq, app)
	if app.Side == SideLeft {
		return []ast.Sequent{
			{Left: appendCopy(left, forward), Right: right},
			{Left: appendCopy(left, backward), Right: right},
		}, nil
	}
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, forward)},
		{Left: left, Right: appendCopy(right, backward)},
	}, nil
}

// ---- quantifier rules ----

func (e *Engine) forallRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	all, ok := f.(ast.Forall)
	if !ok {
		return nil, shapeErr("∀R", "a universal quantifier", f)
	}
	c := e.fresh.Fresh(all.Var, seq)
	inst, err := ast.Substitute(all.Body, all.Var, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, inst)},
	}, nil
}

func (e *Engine) forallLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	all, ok := f.(ast.Forall)
	if !ok {
		return nil, shapeErr("∀L", "a universal quantifier", f)
	}
	if app.Term == nil {
		return nil, fmt.Errorf("%w: ∀L needs an instantiation term", ErrPreconditionFailed)
	}
	inst, err := ast.Substitute(all.Body, all.Var, app.Term)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}
	// The quantified original stays available for later reuse.
	left, right := seq.CopyLists()
	return []ast.Sequent{
		{Left: appendCopy(left, inst), Right: right},
	}, nil
}

func (e *Engine) existsRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	ex, ok := f.(ast.Exists)
	if !ok {
		return nil, shapeErr("∃R", "an existential quantifier", f)
	}
	if app.Term == nil {
		return nil, fmt.Errorf("%w: ∃R needs an instantiation term", ErrPreconditionFailed)
	}
	inst, err := ast.Substitute(ex.Body, ex.Var, app.Term)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}
	left, right := seq.CopyLists()
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, inst)},
	}, nil
}

func (e *Engine) existsLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	ex, ok := f.(ast.Exists)
	if !ok {
		return nil, shapeErr("∃L", "an existential quantifier", f)
	}
	c := e.fresh.Fresh(ex.Var, seq)
	inst, err := ast.Substitute(ex.Body, ex.Var, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, inst), Right: right},
	}, nil
}

// ---- box modality rules ----

// targetBox fetches the target and requires it to be a box formula.
func targetBox(seq ast.Sequent, app Application, label string) (ast.Box, error) {
	f, err := target(seq, app)
	if err != nil {
		return ast.Box{}, err
	}
	box, ok := f.(ast.Box)
	if !ok {
		return ast.Box{}, shapeErr(label, "a box formula", f)
	}
	return box, nil
}

// replaceOnSide builds the single premise where the consumed target is
// replaced by g on the application's side.
func replaceOnSide(seq ast.Sequent, app Application, g ast.Formula) []ast.Sequent {
	left, right := consume(seq, app)
	if app.Side == SideLeft {
		left = appendCopy(left, g)
	} else {
		right = appendCopy(right, g)
	}
	return []ast.Sequent{{Left: left, Right: right}}
}

func (e *Engine) boxSkip(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	box, err := targetBox(seq, app, "[skip]")
	if err != nil {
		return nil, err
	}
	if _, ok := box.Prog.(ast.Skip); !ok {
		return nil, shapeErr("[skip]", "a [skip] box", box)
	}
	return replaceOnSide(seq, app, box.Body), nil
}

func (e *Engine) boxSeq(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	box, err := targetBox(seq, app, "[;]")
	if err != nil {
		return nil, err
	}
	sq, ok := box.Prog.(ast.Seq)
	if !ok {
		return nil, shapeErr("[;]", "a sequential composition box", box)
	}
	inner := ast.Box{Prog: sq.Second, Body: box.Body}
	return replaceOnSide(seq, app, ast.Box{Prog: sq.First, Body: inner}), nil
}

func (e *Engine) boxChoice(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[∪]R")
	if err != nil {
		return nil, err
	}
	ch, ok := box.Prog.(ast.Choice)
	if !ok {
		return nil, shapeErr("[∪]R", "a choice box", box)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, ast.Box{Prog: ch.Left, Body: box.Body})},
		{Left: left, Right: appendCopy(right, ast.Box{Prog: ch.Right, Body: box.Body})},
	}, nil
}

// starUnfold splits [α*]P into the exit branch (P holds now) and the
// iterate branch ([α][α*]P).
func (e *Engine) starUnfold(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	box, err := targetBox(seq, app, "[*]unfold")
	if err != nil {
		return nil, err
	}
	star, ok := box.Prog.(ast.Star)
	if !ok {
		return nil, shapeErr("[*]unfold", "an iteration box", box)
	}
	iterate := ast.Box{Prog: star.Body, Body: ast.Box{Prog: star, Body: box.Body}}
	exit := replaceOnSide(seq, app, box.Body)
	step := replaceOnSide(seq, app, iterate)
	return []ast.Sequent{exit[0], step[0]}, nil
}

func (e *Engine) boxIf(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[if]R")
	if err != nil {
		return nil, err
	}
	cond, ok := box.Prog.(ast.If)
	if !ok {
		return nil, shapeErr("[if]R", "a conditional box", box)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{
			Left:  appendCopy(left, cond.Cond),
			Right: appendCopy(right, ast.Box{Prog: cond.Then, Body: box.Body}),
		},
		{
			Left:  appendCopy(left, ast.Not{Body: cond.Cond}),
			Right: appendCopy(right, ast.Box{Prog: cond.Else, Body: box.Body}),
		},
	}, nil
}

func (e *Engine) whileUnfold(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[while]unfold")
	if err != nil {
		return nil, err
	}
	loop, ok := box.Prog.(ast.While)
	if !ok {
		return nil, shapeErr("[while]unfold", "a while box", box)
	}
	again := ast.Box{Prog: loop.Body, Body: ast.Box{Prog: loop, Body: box.Body}}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{
			Left:  appendCopy(left, ast.Not{Body: loop.Cond}),
			Right: appendCopy(right, box.Body),
		},
		{
			Left:  appendCopy(left, loop.Cond),
			Right: appendCopy(right, again),
		},
	}, nil
}

// whileInvariant produces the init/preserve/exit obligations. The
// invariant comes from the application payload, falling back to the
// loop's own annotation.
func (e *Engine) whileInvariant(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[while]inv")
	if err != nil {
		return nil, err
	}
	loop, ok := box.Prog.(ast.While)
	if !ok {
		return nil, shapeErr("[while]inv", "a while box", box)
	}
	inv := app.Formula
	if inv == nil {
		inv = loop.Invariant
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: [while]inv needs an invariant", ErrPreconditionFailed)
	}
	initLeft, _ := seq.CopyLists()
	return []ast.Sequent{
		// init: the invariant holds on entry.
		{Left: initLeft, Right: []ast.Formula{inv}},
		// preserve: one iteration keeps the invariant.
		{
			Left:  []ast.Formula{inv, loop.Cond},
			Right: []ast.Formula{ast.Box{Prog: loop.Body, Body: inv}},
		},
		// exit: the invariant and the exit condition give the goal.
		{
			Left:  []ast.Formula{inv, ast.Not{Body: loop.Cond}},
			Right: []ast.Formula{box.Body},
		},
	}, nil
}

func (e *Engine) boxFor(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[for]R")
	if err != nil {
		return nil, err
	}
	loop, ok := box.Prog.(ast.For)
	if !ok {
		return nil, shapeErr("[for]R", "a for box", box)
	}
	// DesugarFor yields init; while. The premise splits the pair into
	// nested boxes so [:=]R applies immediately.
	des := ast.DesugarFor(loop).(ast.Seq)
	rewritten := ast.Box{Prog: des.First, Body: ast.Box{Prog: des.Second, Body: box.Body}}
	return replaceOnSide(seq, app, rewritten), nil
}

func (e *Engine) boxAssign(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[:=]R")
	if err != nil {
		return nil, err
	}
	asn, ok := box.Prog.(ast.Assign)
	if !ok {
		return nil, shapeErr("[:=]R", "an assignment box", box)
	}
	result, err := ast.Substitute(box.Body, asn.Var, asn.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}
	return replaceOnSide(seq, app, result), nil
}

// testLeft decomposes [?C]P on the antecedent side like →L on C→P.
func (e *Engine) testLeft(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideLeft); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[?]L")
	if err != nil {
		return nil, err
	}
	test, ok := box.Prog.(ast.Test)
	if !ok {
		return nil, shapeErr("[?]L", "a test box", box)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: left, Right: appendCopy(right, test.Cond)},
		{Left: appendCopy(left, box.Body), Right: right},
	}, nil
}

// testRight decomposes [?C]P on the succedent side like →R on C→P.
func (e *Engine) testRight(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if err := requireSide(app, SideRight); err != nil {
		return nil, err
	}
	box, err := targetBox(seq, app, "[?]R")
	if err != nil {
		return nil, err
	}
	test, ok := box.Prog.(ast.Test)
	if !ok {
		return nil, shapeErr("[?]R", "a test box", box)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{
		{Left: appendCopy(left, test.Cond), Right: appendCopy(right, box.Body)},
	}, nil
}

// ---- structural rules ----

func (e *Engine) weaken(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if app.Formula == nil {
		return nil, fmt.Errorf("%w: weakening needs a formula", ErrPreconditionFailed)
	}
	left, right := seq.CopyLists()
	if app.Side == SideLeft {
		left = appendCopy(left, app.Formula)
	} else {
		right = appendCopy(right, app.Formula)
	}
	return []ast.Sequent{{Left: left, Right: right}}, nil
}

func (e *Engine) contract(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}
	list := seq.Left
	if app.Side == SideRight {
		list = seq.Right
	}
	dup := false
	for i, g := range list {
		if i != app.Index && ast.FormulasEqual(f, g) {
			dup = true
			break
		}
	}
	if !dup {
		return nil, fmt.Errorf("%w: %s at index %d", ErrContractionNoDuplicate, f, app.Index)
	}
	left, right := consume(seq, app)
	return []ast.Sequent{{Left: left, Right: right}}, nil
}

func (e *Engine) cut(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	if app.Formula == nil {
		return nil, fmt.Errorf("%w: cut needs a lemma", ErrPreconditionFailed)
	}
	left, right := seq.CopyLists()
	return []ast.Sequent{
		// prove the lemma from the current antecedents
		{Left: left, Right: []ast.Formula{app.Formula}},
		// use the lemma
		{Left: appendCopy(left, app.Formula), Right: right},
	}, nil
}

func shapeErr(rule, want string, got fmt.Stringer) error {
	return fmt.Errorf("%w: %s expects %s, selected %s", ErrPreconditionFailed, rule, want, got)
}
