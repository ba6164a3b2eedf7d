package rules

import "errors"

// The rule error taxonomy. Every failure is returned as a value and
// leaves the sequent untouched; callers pick a different action.
var (
	// ErrPreconditionFailed reports that the selected formula's shape
	// does not match what the rule expects, or a required payload
	// (instantiation term, invariant, lemma) is missing.
	ErrPreconditionFailed = errors.New("rule precondition failed")

	// ErrNoMatchingFormula reports an index out of range or a side the
	// rule does not operate on.
	ErrNoMatchingFormula = errors.New("no matching formula at the selected position")

	// ErrInvalidSubstitution reports a substitution whose replacement
	// term would be captured by a quantifier.
	ErrInvalidSubstitution = errors.New("invalid substitution")

	// ErrContractionNoDuplicate reports a contraction with no
	// structurally equal twin on the selected side.
	ErrContractionNoDuplicate = errors.New("no duplicate formula to contract")

	// ErrTemplateParseFailed reports a custom rule whose rendered
	// template text did not parse back into a formula.
	ErrTemplateParseFailed = errors.New("rule template did not render to parsable text")

	// ErrUnknownRule reports a rule name with no built-in or registered
	// custom definition.
	ErrUnknownRule = errors.New("unknown rule")
)
