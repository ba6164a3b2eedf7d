package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomTemplates(t *testing.T) {
	t.Parallel()

	t.Run("unary rewrite", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{
			Name:     "demorgan",
			Side:     SideLeft,
			Arity:    Unary,
			Formulas: []string{"not LEFT or not RIGHT"},
		})
		premises, err := e.Apply(
			mustSeq(t, "not (p and q) |- r"),
			Application{Rule: RuleCustom, Name: "demorgan", Side: SideLeft, Index: 0},
		)
		// the template binds the operands of the selected formula, so it
		// must be aimed at the conjunction, not its negation
		assert.ErrorIs(t, err, ErrPreconditionFailed)

		premises, err = e.Apply(
			mustSeq(t, "p and q |- r"),
			Application{Rule: RuleCustom, Name: "demorgan", Side: SideLeft, Index: 0},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"(¬(p) ∨ ¬(q)) ⊢ r"}, seqStrings(premises))
	})

	t.Run("inner placeholder", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{
			Name:     "unwrap",
			Side:     SideLeft,
			Arity:    Unary,
			Formulas: []string{"INNER implies false"},
		})
		premises, err := e.Apply(
			mustSeq(t, "not p |- q"),
			Application{Rule: RuleCustom, Name: "unwrap", Side: SideLeft, Index: 0},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"((p) → ⊥) ⊢ q"}, seqStrings(premises))
	})

	t.Run("binary branches render independently", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{
			Name:     "split",
			Side:     SideRight,
			Arity:    Binary,
			Formulas: []string{"LEFT", "RIGHT"},
		})
		premises, err := e.Apply(
			mustSeq(t, "r |- p and q"),
			Application{Rule: RuleCustom, Name: "split", Side: SideRight, Index: 0},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"r ⊢ (p)", "r ⊢ (q)"}, seqStrings(premises))
	})

	t.Run("close template", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{Name: "oracle", Side: SideRight, Arity: Close})
		premises, err := e.Apply(
			mustSeq(t, "|- p"),
			Application{Rule: RuleCustom, Name: "oracle", Side: SideRight, Index: 0},
		)
		require.NoError(t, err)
		require.NotNil(t, premises)
		assert.Empty(t, premises)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := newTestEngine().Apply(
			mustSeq(t, "p |- q"),
			Application{Rule: RuleCustom, Name: "nope", Side: SideLeft, Index: 0},
		)
		assert.ErrorIs(t, err, ErrUnknownRule)
	})

	t.Run("side mismatch", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{Name: "only-left", Side: SideLeft, Arity: Unary, Formulas: []string{"FORMULA"}})
		_, err := e.Apply(
			mustSeq(t, "p |- q"),
			Application{Rule: RuleCustom, Name: "only-left", Side: SideRight, Index: 0},
		)
		assert.ErrorIs(t, err, ErrNoMatchingFormula)
	})

	t.Run("unparseable rendering", func(t *testing.T) {
		e := newTestEngine()
		e.RegisterTemplate(Template{
			Name:     "broken",
			Side:     SideLeft,
			Arity:    Unary,
			Formulas: []string{"FORMULA implies implies"},
		})
		_, err := e.Apply(
			mustSeq(t, "p |- q"),
			Application{Rule: RuleCustom, Name: "broken", Side: SideLeft, Index: 0},
		)
		assert.ErrorIs(t, err, ErrTemplateParseFailed)
	})
}

func TestRuleNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want Rule
	}{
		{"id", RuleID},
		{"andL", RuleAndL},
		{"∧L", RuleAndL},
		{"impR", RuleImpR},
		{"→R", RuleImpR},
		{"assignR", RuleBoxAssign},
		{"[:=]R", RuleBoxAssign},
		{"whileInv", RuleWhileInv},
		{"cut", RuleCut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, r)
		})
	}

	_, ok := ByName("definitely-not-a-rule")
	assert.False(t, ok)
}
