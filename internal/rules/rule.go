package rules

import (
	"github.com/formallab/sequent/internal/ast"
)

// Side selects the antecedent or succedent list of a sequent.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "lhs"
	}
	return "rhs"
}

// Rule identifies an inference rule. The set is closed; dispatch in
// Apply matches exhaustively so a new logic fragment extends the enum
// and the switch together.
type Rule int

const (
	// Axiom rules: close the branch with zero premises.
	RuleID Rule = iota
	RuleFalseL
	RuleTrueR

	// Propositional rules.
	RuleAndL
	RuleAndR
	RuleOrL
	RuleOrR
	RuleImpL
	RuleImpR
	RuleNotL
	RuleNotR
	RuleIffL
	RuleIffR

	// Quantifier rules.
	RuleForallR
	RuleForallL
	RuleExistsR
	RuleExistsL

	// Box modality rules.
	RuleBoxSkip
	RuleBoxSeq
	RuleBoxChoice
	RuleStarUnfold
	RuleBoxIf
	RuleWhileUnfold
	RuleWhileInv
	RuleBoxFor
	RuleBoxAssign
	RuleTestL
	RuleTestR

	// Structural rules.
	RuleWeaken
	RuleContract
	RuleCut

	// RuleCustom dispatches to a registered template by name.
	RuleCustom
)

// Label returns the display name of a rule as applied on a side, e.g.
// "∧L" or "[skip]R". Side only matters for rules usable on either side.
func (r Rule) Label(side Side) string {
	suffix := "L"
	if side == SideRight {
		suffix = "R"
	}
	switch r {
	case RuleID:
		return "id"
	case RuleFalseL:
		return "⊥L"
	case RuleTrueR:
		return "⊤R"
	case RuleAndL:
		return "∧L"
	case RuleAndR:
		return "∧R"
	case RuleOrL:
		return "∨L"
	case RuleOrR:
		return "∨R"
	case RuleImpL:
		return "→L"
	case RuleImpR:
		return "→R"
	case RuleNotL:
		return "¬L"
	case RuleNotR:
		return "¬R"
	case RuleIffL:
		return "↔L"
	case RuleIffR:
		return "↔R"
	case RuleForallR:
		return "∀R"
	case RuleForallL:
		return "∀L"
	case RuleExistsR:
		return "∃R"
	case RuleExistsL:
		return "∃L"
	case RuleBoxSkip:
		return "[skip]" + suffix
	case RuleBoxSeq:
		return "[;]" + suffix
	case RuleBoxChoice:
		return "[∪]R"
	case RuleStarUnfold:
		return "[*]unfold"
	case RuleBoxIf:
		return "[if]R"
	case RuleWhileUnfold:
		return "[while]unfold"
	case RuleWhileInv:
		return "[while]inv"
	case RuleBoxFor:
		return "[for]R"
	case RuleBoxAssign:
		return "[:=]R"
	case RuleTestL:
		return "[?]L"
	case RuleTestR:
		return "[?]R"
	case RuleWeaken:
		return "W" + suffix
	case RuleContract:
		return "C" + suffix
	case RuleCut:
		return "cut"
	case RuleCustom:
		return "custom"
	default:
		return "?"
	}
}

// byName maps command-surface rule names (ASCII and Unicode spellings)
// to identifiers. Side-suffixed names resolve to the same identifier;
// the Application's Side picks the variant.
var byName = map[string]Rule{
	"id":            RuleID,
	"falseL":        RuleFalseL,
	"⊥L":            RuleFalseL,
	"trueR":         RuleTrueR,
	"⊤R":            RuleTrueR,
	"andL":          RuleAndL,
	"∧L":            RuleAndL,
	"andR":          RuleAndR,
	"∧R":            RuleAndR,
	"orL":           RuleOrL,
	"∨L":            RuleOrL,
	"orR":           RuleOrR,
	"∨R":            RuleOrR,
	"impliesL":      RuleImpL,
	"→L":            RuleImpL,
	"impliesR":      RuleImpR,
	"→R":            RuleImpR,
	"notL":          RuleNotL,
	"¬L":            RuleNotL,
	"notR":          RuleNotR,
	"¬R":            RuleNotR,
	"iffL":          RuleIffL,
	"↔L":            RuleIffL,
	"iffR":          RuleIffR,
	"↔R":            RuleIffR,
	"forallR":       RuleForallR,
	"∀R":            RuleForallR,
	"forallL":       RuleForallL,
	"∀L":            RuleForallL,
	"existsR":       RuleExistsR,
	"∃R":            RuleExistsR,
	"existsL":       RuleExistsL,
	"∃L":            RuleExistsL,
	"skipL":         RuleBoxSkip,
	"skipR":         RuleBoxSkip,
	"[skip]L":       RuleBoxSkip,
	"[skip]R":       RuleBoxSkip,
	"seqL":          RuleBoxSeq,
	"seqR":          RuleBoxSeq,
	"[;]L":          RuleBoxSeq,
	"[;]R":          RuleBoxSeq,
	"choiceR":       RuleBoxChoice,
	"[∪]R":          RuleBoxChoice,
	"starUnfold":    RuleStarUnfold,
	"[*]unfold":     RuleStarUnfold,
	"ifR":           RuleBoxIf,
	"[if]R":         RuleBoxIf,
	"whileUnfold":   RuleWhileUnfold,
	"[while]unfold": RuleWhileUnfold,
	"whileInv":      RuleWhileInv,
	"[while]inv":    RuleWhileInv,
	"forR":          RuleBoxFor,
	"[for]R":        RuleBoxFor,
	"assignR":       RuleBoxAssign,
	"[:=]R":         RuleBoxAssign,
	"testL":         RuleTestL,
	"[?]L":          RuleTestL,
	"testR":         RuleTestR,
	"[?]R":          RuleTestR,
	"WL":            RuleWeaken,
	"WR":            RuleWeaken,
	"CL":            RuleContract,
	"CR":            RuleContract,
	"cut":           RuleCut,
}

// ByName resolves a rule name from the command surface. The boolean is
// false for names with no built-in rule (they may still name a custom
// template).
func ByName(name string) (Rule, bool) {
	r, ok := byName[name]
	return r, ok
}

// Application describes one rule application: which rule, on which
// side, targeting which formula, with an optional payload.
type Application struct {
	Rule  Rule
	Side  Side
	Index int

	// Term is the instantiation term for ∀L and ∃R.
	Term ast.Term
	// Formula is the weakening formula, the cut lemma, or the loop
	// invariant for [while]inv when the loop carries no annotation.
	Formula ast.Formula
	// Name selects the template when Rule is RuleCustom.
	Name string
}

// Label returns the display name for this application's record.
func (a Application) Label() string {
	if a.Rule == RuleCustom {
		return a.Name
	}
	return a.Rule.Label(a.Side)
}
