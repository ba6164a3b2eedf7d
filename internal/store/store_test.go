package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formallab/sequent/internal/rules"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "templates.yaml")

	tpls := []rules.Template{
		{
			Name:     "demorgan",
			Side:     rules.SideLeft,
			Arity:    rules.Unary,
			Formulas: []string{"not LEFT or not RIGHT"},
		},
		{
			Name:     "split",
			Side:     rules.SideRight,
			Arity:    rules.Binary,
			Formulas: []string{"LEFT", "RIGHT"},
		},
		{
			Name:  "oracle",
			Side:  rules.SideRight,
			Arity: rules.Close,
		},
	}

	require.NoError(t, Save(path, tpls))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(tpls, got); diff != "" {
		t.Errorf("templates mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	tpls, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, tpls)
}

func TestLoadHandWrittenFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `templates:
  - name: contrapose
    side: rhs
    arity: unary
    formulas:
      - not RIGHT implies not LEFT
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tpls, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "contrapose", tpls[0].Name)
	assert.Equal(t, rules.SideRight, tpls[0].Side)
	assert.Equal(t, rules.Unary, tpls[0].Arity)
	assert.Equal(t, []string{"not RIGHT implies not LEFT"}, tpls[0].Formulas)
}

func TestLoadRejectsBadEntries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
	}{
		{
			"bad side",
			"templates:\n  - name: x\n    side: middle\n    arity: unary\n    formulas: [FORMULA]\n",
		},
		{
			"bad arity",
			"templates:\n  - name: x\n    side: lhs\n    arity: ternary\n    formulas: [FORMULA]\n",
		},
		{
			"empty name",
			"templates:\n  - name: \"\"\n    side: lhs\n    arity: unary\n    formulas: [FORMULA]\n",
		},
		{
			"not yaml",
			"{{{{",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "templates.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
