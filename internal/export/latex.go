package export

import (
	"fmt"
	"strings"

	"github.com/formallab/sequent/internal/ast"
)

// LaTeX renders a derivation as nested \infer steps. Closed leaves get
// the closing rule's label over an empty premise list; open leaves
// render as \deduce[?] so unfinished branches stay visible.
func LaTeX(d *Derivation) string {
	var sb strings.Builder
	sb.WriteString("\\begin{prooftree}\n")
	writeDerivation(&sb, d, 0)
	sb.WriteString("\n\\end{prooftree}")
	return sb.String()
}

func writeDerivation(sb *strings.Builder, d *Derivation, depth int) {
	indent := strings.Repeat("  ", depth)
	seq := SequentLaTeX(d.Sequent)

	if len(d.Premises) == 0 {
		if d.Closed {
			fmt.Fprintf(sb, "%s\\infer[%s]\n%s  {%s}\n%s  {}", indent, ruleLaTeX(d.Rule), indent, seq, indent)
		} else {
			fmt.Fprintf(sb, "%s\\deduce[?]\n%s  {%s}\n%s  {}", indent, indent, seq, indent)
		}
		return
	}

	fmt.Fprintf(sb, "%s\\infer[%s]\n%s  {%s}\n%s  {\n", indent, ruleLaTeX(d.Rule), indent, seq, indent)
	for i, p := range d.Premises {
		if i > 0 {
			fmt.Fprintf(sb, "\n%s  &\n", indent)
		}
		writeDerivation(sb, p, depth+1)
	}
	fmt.Fprintf(sb, "\n%s  }", indent)
}

var ruleReplacer = strings.NewReplacer(
	"∧", "\\land ",
	"∨", "\\lor ",
	"→", "\\to ",
	"¬", "\\lnot ",
	"↔", "\\leftrightarrow ",
	"∀", "\\forall ",
	"∃", "\\exists ",
	"⊥", "\\bot ",
	"⊤", "\\top ",
	"∪", "\\cup ",
	"[", "{[}",
	"]", "{]}",
)

func ruleLaTeX(rule string) string {
	if rule == "" {
		return "?"
	}
	return ruleReplacer.Replace(rule)
}

// SequentLaTeX renders a sequent; an empty side renders as \cdot.
func SequentLaTeX(s ast.Sequent) string {
	return sideLaTeX(s.Left) + " \\vdash " + sideLaTeX(s.Right)
}

func sideLaTeX(fs []ast.Formula) string {
	if len(fs) == 0 {
		return "\\cdot"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = FormulaLaTeX(f)
	}
	return strings.Join(parts, ", ")
}

// FormulaLaTeX renders a formula.
func FormulaLaTeX(f ast.Formula) string {
	switch x := f.(type) {
	case ast.Atom:
		if len(x.Args) == 0 {
			return x.Pred
		}
		if len(x.Args) == 2 {
			switch x.Pred {
			case "<", ">":
				return TermLaTeX(x.Args[0]) + " " + x.Pred + " " + TermLaTeX(x.Args[1])
			case "<=":
				return TermLaTeX(x.Args[0]) + " \\leq " + TermLaTeX(x.Args[1])
			case ">=":
				return TermLaTeX(x.Args[0]) + " \\geq " + TermLaTeX(x.Args[1])
			}
		}
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = TermLaTeX(a)
		}
		return x.Pred + "(" + strings.Join(args, ", ") + ")"
	case ast.Eq:
		return TermLaTeX(x.Left) + " = " + TermLaTeX(x.Right)
	case ast.Not:
		return "\\lnot " + FormulaLaTeX(x.Body)
	case ast.And:
		return "(" + FormulaLaTeX(x.Left) + " \\land " + FormulaLaTeX(x.Right) + ")"
	case ast.Or:
		return "(" + FormulaLaTeX(x.Left) + " \\lor " + FormulaLaTeX(x.Right) + ")"
	case ast.Implies:
		return "(" + FormulaLaTeX(x.Left) + " \\to " + FormulaLaTeX(x.Right) + ")"
	case ast.Iff:
		return "(" + FormulaLaTeX(x.Left) + " \\leftrightarrow " + FormulaLaTeX(x.Right) + ")"
	case ast.Truth:
		return "\\top"
	case ast.Falsity:
		return "\\bot"
	case ast.Forall:
		return "\\forall " + x.Var + ".\\, " + FormulaLaTeX(x.Body)
	case ast.Exists:
		return "\\exists " + x.Var + ".\\, " + FormulaLaTeX(x.Body)
	case ast.Box:
		return "[" + ProgramLaTeX(x.Prog) + "]" + FormulaLaTeX(x.Body)
	default:
		return "?"
	}
}

// TermLaTeX renders a term.
func TermLaTeX(t ast.Term) string {
	switch x := t.(type) {
	case ast.Variable:
		return x.Name
	case ast.Constant:
		return x.Name
	case ast.FuncApp:
		if len(x.Args) == 2 {
			switch x.Name {
			case "+", "-":
				return TermLaTeX(x.Args[0]) + " " + x.Name + " " + TermLaTeX(x.Args[1])
			case "*":
				return TermLaTeX(x.Args[0]) + " \\cdot " + TermLaTeX(x.Args[1])
			}
		}
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = TermLaTeX(a)
		}
		return x.Name + "(" + strings.Join(args, ", ") + ")"
	default:
		return "?"
	}
}

// ProgramLaTeX renders a program.
func ProgramLaTeX(p ast.Program) string {
	switch x := p.(type) {
	case ast.Assign:
		return x.Var + " := " + TermLaTeX(x.Expr)
	case ast.Test:
		return "?" + FormulaLaTeX(x.Cond)
	case ast.Skip:
		return "\\mathit{skip}"
	case ast.Seq:
		return ProgramLaTeX(x.First) + ";\\, " + ProgramLaTeX(x.Second)
	case ast.Choice:
		return "(" + ProgramLaTeX(x.Left) + " \\cup " + ProgramLaTeX(x.Right) + ")"
	case ast.Star:
		return "(" + ProgramLaTeX(x.Body) + ")^{*}"
	case ast.If:
		return "\\mathit{if}\\ " + FormulaLaTeX(x.Cond) +
			"\\ \\mathit{then}\\ " + ProgramLaTeX(x.Then) +
			"\\ \\mathit{else}\\ " + ProgramLaTeX(x.Else)
	case ast.While:
		s := "\\mathit{while}\\ " + FormulaLaTeX(x.Cond) + "\\ \\mathit{do}\\ " + ProgramLaTeX(x.Body)
		if x.Invariant != nil {
			s += "\\ \\mathit{inv}\\ " + FormulaLaTeX(x.Invariant)
		}
		return s
	case ast.For:
		return "\\mathit{for}\\ " + TermLaTeX(x.Lo) + " \\leq " + x.Var + " < " + TermLaTeX(x.Hi) +
			"\\ \\mathit{do}\\ " + ProgramLaTeX(x.Body)
	default:
		return "?"
	}
}
