package rules

import (
	"fmt"
	"strings"

	"github.com/formallab/sequent/internal/ast"
	"github.com/formallab/sequent/internal/parser"
)

// TemplateArity says how many premises a template produces.
type TemplateArity int

const (
	// Unary templates replace the selected formula with one rendering.
	Unary TemplateArity = iota
	// Binary templates branch into two independently rendered premises.
	Binary
	// Close templates close the branch unconditionally.
	Close
)

func (a TemplateArity) String() string {
	switch a {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case Close:
		return "close"
	default:
		return "?"
	}
}

// Template is a data-driven rule: formula text with placeholders,
// substituted from the selected formula and re-parsed. No code runs on
// the user's behalf; the mechanism is purely declarative.
//
// Placeholders: LEFT and RIGHT bind the operands of a binary
// connective, INNER binds the operand of a negation, FORMULA binds the
// whole selected formula regardless of shape.
type Template struct {
	Name     string
	Side     Side
	Arity    TemplateArity
	Formulas []string
}

// RegisterTemplate makes a template available under its name.
func (e *Engine) RegisterTemplate(tpl Template) {
	e.templates[tpl.Name] = tpl
}

// Templates returns the registered templates.
func (e *Engine) Templates() []Template {
	out := make([]Template, 0, len(e.templates))
	for _, tpl := range e.templates {
		out = append(out, tpl)
	}
	return out
}

func (e *Engine) applyTemplate(seq ast.Sequent, app Application) ([]ast.Sequent, error) {
	tpl, ok := e.templates[app.Name]
	if !ok {
		return nil, fmt.Errorf("%w: no template named %q", ErrUnknownRule, app.Name)
	}
	if app.Side != tpl.Side {
		return nil, fmt.Errorf("%w: template %q applies on %s", ErrNoMatchingFormula, tpl.Name, tpl.Side)
	}
	f, err := target(seq, app)
	if err != nil {
		return nil, err
	}

	if tpl.Arity == Close {
		return []ast.Sequent{}, nil
	}

	want := 1
	if tpl.Arity == Binary {
		want = 2
	}
	if len(tpl.Formulas) != want {
		return nil, fmt.Errorf("%w: template %q has %d formulas, %s needs %d",
			ErrTemplateParseFailed, tpl.Name, len(tpl.Formulas), tpl.Arity, want)
	}

	premises := make([]ast.Sequent, 0, want)
	for _, text := range tpl.Formulas {
		rendered, err := renderTemplate(text, f)
		if err != nil {
			return nil, err
		}
		g, err := parser.ParseFormula(rendered)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrTemplateParseFailed, rendered, err)
		}
		premises = append(premises, replaceOnSide(seq, app, g)[0])
	}
	return premises, nil
}

// renderTemplate substitutes the placeholders a template text uses with
// parenthesized renderings of the bound sub-formulas.
func renderTemplate(text string, f ast.Formula) (string, error) {
	out := text
	for _, ph := range []string{"LEFT", "RIGHT", "INNER", "FORMULA"} {
		if !strings.Contains(out, ph) {
			continue
		}
		bound, err := bindPlaceholder(ph, f)
		if err != nil {
			return "", err
		}
		out = strings.ReplaceAll(out, ph, "("+bound.String()+")")
	}
	return out, nil
}

func bindPlaceholder(ph string, f ast.Formula) (ast.Formula, error) {
	switch ph {
	case "FORMULA":
		return f, nil
	case "INNER":
		if not, ok := f.(ast.Not); ok {
			return not.Body, nil
		}
		return nil, fmt.Errorf("%w: INNER needs a negation, selected %s", ErrPreconditionFailed, f)
	case "LEFT", "RIGHT":
		l, r, ok := binaryOperands(f)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a binary connective, selected %s", ErrPreconditionFailed, ph, f)
		}
		if ph == "LEFT" {
			return l, nil
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: unknown placeholder %q", ErrTemplateParseFailed, ph)
	}
}

func binaryOperands(f ast.Formula) (ast.Formula, ast.Formula, bool) {
	switch x := f.(type) {
	case ast.And:
		return x.Left, x.Right, true
	case ast.Or:
		return x.Left, x.Right, true
	case ast.Implies:
		return x.Left, x.Right, true
	case ast.Iff:
		return x.Left, x.Right, true
	default:
		return nil, nil, false
	}
}
