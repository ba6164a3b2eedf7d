package sequent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSequentProof(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start(DefaultSequent))

	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "(p → q), p ⊢ q", goals[0].Sequent)

	// →L branches; both branches close by id
	require.NoError(t, s.Apply(goals[0].ID, "impliesL", "lhs", 0, ""))
	goals = s.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, "p ⊢ q, p", goals[0].Sequent)
	assert.Equal(t, "p, q ⊢ q", goals[1].Sequent)

	require.NoError(t, s.Apply(goals[0].ID, "id", "lhs", 0, ""))
	assert.False(t, s.Closed())
	require.NoError(t, s.Apply(goals[1].ID, "id", "lhs", 0, ""))
	assert.True(t, s.Closed())
}

func TestApplyWithTermPayload(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start("forall x. p(x) |- p(y + 1)"))

	goals := s.Goals()
	require.NoError(t, s.Apply(goals[0].ID, "forallL", "lhs", 0, "y + 1"))

	goals = s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "∀x.p(x), p((y + 1)) ⊢ p((y + 1))", goals[0].Sequent)
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start("p |- q"))
	id := s.Goals()[0].ID

	tests := []struct {
		name string
		call func() error
	}{
		{"bad node id", func() error { return s.Apply("not-a-uuid", "id", "lhs", 0, "") }},
		{"unknown rule", func() error { return s.Apply(id, "abracadabra", "lhs", 0, "") }},
		{"bad side", func() error { return s.Apply(id, "id", "middle", 0, "") }},
		{"missing term payload", func() error { return s.Apply(id, "forallL", "lhs", 0, "") }},
		{"unparseable term payload", func() error { return s.Apply(id, "forallL", "lhs", 0, "((") }},
		{"unparseable formula payload", func() error { return s.Apply(id, "cut", "lhs", 0, "p implies") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.call())
		})
	}

	// none of the failures touched the tree
	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "p ⊢ q", goals[0].Sequent)
}

func TestUndoRoundTrip(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start("p and q |- p"))

	root := s.Goals()[0].ID
	require.NoError(t, s.Apply(root, "andL", "lhs", 0, ""))
	require.Len(t, s.Goals(), 1)
	require.NotEqual(t, root, s.Goals()[0].ID)

	require.NoError(t, s.Undo(s.Goals()[0].ID))
	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, root, goals[0].ID)
}

func TestLaTeXExport(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	assert.Empty(t, s.LaTeX(), "no proof, no output")

	require.NoError(t, s.Start("p |- p"))
	require.NoError(t, s.Apply(s.Goals()[0].ID, "id", "lhs", 0, ""))

	out := s.LaTeX()
	assert.True(t, strings.HasPrefix(out, "\\begin{prooftree}"))
	assert.Contains(t, out, "\\infer[id]")

	d := s.Derivation()
	require.NotNil(t, d)
	assert.True(t, d.Closed)
}

func TestCustomTemplateFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `templates:
  - name: split
    side: rhs
    arity: binary
    formulas:
      - LEFT
      - RIGHT
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewSession(nil)
	require.NoError(t, s.LoadTemplates(path))
	require.NoError(t, s.Start("r |- p and q"))

	require.NoError(t, s.Apply(s.Goals()[0].ID, "split", "rhs", 0, ""))
	goals := s.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, "r ⊢ (p)", goals[0].Sequent)
	assert.Equal(t, "r ⊢ (q)", goals[1].Sequent)
}

func TestWhileInvariantViaSurface(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start("p |- [while c do skip]q"))

	require.NoError(t, s.Apply(s.Goals()[0].ID, "whileInv", "rhs", 0, "j"))
	goals := s.Goals()
	require.Len(t, goals, 3)
	assert.Equal(t, "p ⊢ j", goals[0].Sequent)
	assert.Equal(t, "j, c ⊢ [skip]j", goals[1].Sequent)
	assert.Equal(t, "j, ¬c ⊢ q", goals[2].Sequent)
}

func TestGoalsIncludeClosedLeaves(t *testing.T) {
	t.Parallel()
	s := NewSession(nil)
	require.NoError(t, s.Start("p |- p"))
	require.NoError(t, s.Apply(s.Goals()[0].ID, "id", "lhs", 0, ""))

	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Closed)

	err := s.Apply(goals[0].ID, "id", "lhs", 0, "")
	assert.Error(t, err, "a closed leaf accepts no further rules")
}
