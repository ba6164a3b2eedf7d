package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formallab/sequent/internal/parser"
	"github.com/formallab/sequent/internal/proof"
	"github.com/formallab/sequent/internal/rules"
)

func buildProof(t *testing.T, input string, steps ...func(*proof.Session, *proof.Tree)) *proof.Tree {
	t.Helper()
	s := proof.NewSession(nil)
	tree, err := s.StartProof(input)
	require.NoError(t, err)
	for _, step := range steps {
		step(s, tree)
	}
	return tree
}

func TestBuildDerivation(t *testing.T) {
	t.Parallel()

	tree := buildProof(t, "p and q |- p", func(s *proof.Session, tr *proof.Tree) {
		children, err := s.ApplyRule(tr.Root.ID,
			rules.Application{Rule: rules.RuleAndL, Side: rules.SideLeft, Index: 0})
		require.NoError(t, err)
		_, err = s.ApplyRule(children[0].ID, rules.Application{Rule: rules.RuleID})
		require.NoError(t, err)
	})

	d := Build(tree)
	require.NotNil(t, d)
	assert.Equal(t, "∧L", d.Rule)
	assert.True(t, d.Closed)
	require.Len(t, d.Premises, 1)

	leaf := d.Premises[0]
	assert.Equal(t, "id", leaf.Rule)
	assert.True(t, leaf.Closed)
	assert.Empty(t, leaf.Premises)
}

func TestBuildNilTree(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Build(nil))
}

func TestLaTeXClosedProof(t *testing.T) {
	t.Parallel()
	tree := buildProof(t, "p |- p", func(s *proof.Session, tr *proof.Tree) {
		_, err := s.ApplyRule(tr.Root.ID, rules.Application{Rule: rules.RuleID})
		require.NoError(t, err)
	})

	out := LaTeX(Build(tree))
	assert.True(t, strings.HasPrefix(out, "\\begin{prooftree}\n"))
	assert.True(t, strings.HasSuffix(out, "\\end{prooftree}"))
	assert.Contains(t, out, "\\infer[id]")
	assert.Contains(t, out, "p \\vdash p")
	assert.NotContains(t, out, "\\deduce")
}

func TestLaTeXOpenLeaves(t *testing.T) {
	t.Parallel()
	tree := buildProof(t, "r |- p and q", func(s *proof.Session, tr *proof.Tree) {
		_, err := s.ApplyRule(tr.Root.ID,
			rules.Application{Rule: rules.RuleAndR, Side: rules.SideRight, Index: 0})
		require.NoError(t, err)
	})

	out := LaTeX(Build(tree))
	assert.Contains(t, out, "\\infer[\\land R]")
	assert.Equal(t, 2, strings.Count(out, "\\deduce[?]"), "both branches stay open")
	assert.Contains(t, out, "&", "sibling premises are joined")
}

func TestSequentLaTeXEmptySides(t *testing.T) {
	t.Parallel()
	seq, err := parser.ParseSequent("|- p or not p")
	require.NoError(t, err)
	got := SequentLaTeX(seq)
	assert.Equal(t, "\\cdot \\vdash (p \\lor \\lnot p)", got)
}

func TestFormulaLaTeX(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"p implies q", "(p \\to q)"},
		{"forall x. p(x)", "\\forall x.\\, p(x)"},
		{"x + 1 <= y", "x + 1 \\leq y"},
		{"[skip]p", "[\\mathit{skip}]p"},
		{"[x := y * 2]q", "[x := y \\cdot 2]q"},
		{"[while c do skip]q", "[\\mathit{while}\\ c\\ \\mathit{do}\\ \\mathit{skip}]q"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := parser.ParseFormula(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormulaLaTeX(f))
		})
	}
}
