package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		formula Formula
		want    string
	}{
		{"prop letter", Prop("p"), "p"},
		{"negated atom", Neg(Prop("p")), "¬p"},
		{"negated compound", Neg(Conj(Prop("p"), Prop("q"))), "¬((p ∧ q))"},
		{"conjunction", Conj(Prop("p"), Prop("q")), "(p ∧ q)"},
		{"implication", Imp(Prop("p"), Prop("q")), "(p → q)"},
		{"predicate with args", Atom{Pred: "even", Args: []Term{Var("x")}}, "even(x)"},
		{"comparison", Atom{Pred: "<", Args: []Term{Var("i"), Var("n")}}, "i < n"},
		{"equality", Eq{Left: Var("y"), Right: Var("x")}, "y = x"},
		{"forall", Forall{Var: "x", Body: Prop("p")}, "∀x.p"},
		{"box skip", Boxed(Skip{}, Prop("p")), "[skip]p"},
		{"box seq", Boxed(Seq{First: Skip{}, Second: Assign{Var: "x", Expr: Const("1")}}, Prop("q")), "[skip; x := 1]q"},
		{"choice parens", Boxed(Choice{Left: Skip{}, Right: Skip{}}, Prop("p")), "[(skip ∪ skip)]p"},
		{"iterated compound", Boxed(Star{Body: Seq{First: Skip{}, Second: Skip{}}}, Prop("p")), "[(skip; skip)*]p"},
		{"sum term", Eq{Left: Add(Var("i"), Const("1")), Right: Var("j")}, "(i + 1) = j"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formula.String())
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()
	a := Conj(Prop("p"), Atom{Pred: "r", Args: []Term{Var("x"), Const("0")}})
	b := Conj(Prop("p"), Atom{Pred: "r", Args: []Term{Var("x"), Const("0")}})
	c := Conj(Prop("p"), Atom{Pred: "r", Args: []Term{Var("y"), Const("0")}})

	assert.True(t, FormulasEqual(a, b))
	assert.False(t, FormulasEqual(a, c))
	assert.False(t, FormulasEqual(a, Prop("p")))

	// bound names compare literally
	assert.True(t, FormulasEqual(Forall{Var: "x", Body: Prop("p")}, Forall{Var: "x", Body: Prop("p")}))
	assert.False(t, FormulasEqual(Forall{Var: "x", Body: Prop("p")}, Forall{Var: "y", Body: Prop("p")}))

	// programs compare structurally, invariant annotations included
	w1 := While{Cond: Prop("c"), Body: Skip{}}
	w2 := While{Cond: Prop("c"), Body: Skip{}, Invariant: Prop("inv")}
	assert.True(t, ProgramsEqual(w1, While{Cond: Prop("c"), Body: Skip{}}))
	assert.False(t, ProgramsEqual(w1, w2))
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	t.Run("replaces free occurrences", func(t *testing.T) {
		f := Atom{Pred: "p", Args: []Term{Var("x"), Var("y")}}
		got, err := Substitute(f, "x", Const("7"))
		require.NoError(t, err)
		assert.Equal(t, "p(7, y)", got.String())
	})

	t.Run("skips shadowed occurrences", func(t *testing.T) {
		f := Conj(
			Atom{Pred: "p", Args: []Term{Var("x")}},
			Forall{Var: "x", Body: Atom{Pred: "q", Args: []Term{Var("x")}}},
		)
		got, err := Substitute(f, "x", Const("0"))
		require.NoError(t, err)
		assert.Equal(t, "(p(0) ∧ ∀x.q(x))", got.String())
	})

	t.Run("rejects capture", func(t *testing.T) {
		// substituting y for x under ∀y would capture y
		f := Forall{Var: "y", Body: Atom{Pred: "r", Args: []Term{Var("x"), Var("y")}}}
		_, err := Substitute(f, "x", Var("y"))
		require.Error(t, err)
		var capture *CaptureError
		assert.ErrorAs(t, err, &capture)
		assert.Equal(t, "y", capture.Binder)
	})

	t.Run("descends into box programs", func(t *testing.T) {
		f := Boxed(Assign{Var: "z", Expr: Var("x")}, Atom{Pred: "p", Args: []Term{Var("x")}})
		got, err := Substitute(f, "x", Const("3"))
		require.NoError(t, err)
		assert.Equal(t, "[z := 3]p(3)", got.String())
	})

	t.Run("self-referential assignment substitution", func(t *testing.T) {
		// [x := x+1]x = 1 precondition: (x+1) = 1
		f := Eq{Left: Var("x"), Right: Const("1")}
		got, err := Substitute(f, "x", Add(Var("x"), Const("1")))
		require.NoError(t, err)
		assert.Equal(t, "(x + 1) = 1", got.String())
	})
}

func TestFreeVars(t *testing.T) {
	t.Parallel()
	f := Conj(
		Forall{Var: "x", Body: Atom{Pred: "p", Args: []Term{Var("x"), Var("y")}}},
		Boxed(Assign{Var: "z", Expr: Var("w")}, Prop("q")),
	)
	free := FreeVars(f)
	assert.False(t, free["x"], "bound by the quantifier")
	assert.True(t, free["y"])
	assert.True(t, free["z"], "assignment targets count as occurrences")
	assert.True(t, free["w"])
}

func TestFreshGen(t *testing.T) {
	t.Parallel()
	seq := NewSequent(
		[]Formula{Atom{Pred: "p", Args: []Term{Var("x_1")}}},
		nil,
	)
	gen := NewFreshGen()

	v1 := gen.Fresh("x", seq)
	assert.Equal(t, "x_2", v1.Name, "x_1 is free in the sequent and must be skipped")

	v2 := gen.Fresh("x", seq)
	assert.NotEqual(t, v1.Name, v2.Name)

	// names never repeat within a session, whatever the base
	seen := map[string]bool{v1.Name: true, v2.Name: true}
	for i := 0; i < 50; i++ {
		v := gen.Fresh("y", seq)
		assert.False(t, seen[v.Name])
		seen[v.Name] = true
	}
}

func TestDesugarFor(t *testing.T) {
	t.Parallel()
	loop := For{
		Var:  "i",
		Lo:   Const("0"),
		Hi:   Var("n"),
		Body: Assign{Var: "s", Expr: Add(Var("s"), Var("i"))},
	}
	got := DesugarFor(loop)

	want := Seq{
		First: Assign{Var: "i", Expr: Const("0")},
		Second: While{
			Cond: Atom{Pred: "<", Args: []Term{Var("i"), Var("n")}},
			Body: Seq{
				First:  Assign{Var: "s", Expr: Add(Var("s"), Var("i"))},
				Second: Assign{Var: "i", Expr: Add(Var("i"), Const("1"))},
			},
		},
	}
	assert.True(t, ProgramsEqual(want, got), "got %s", got)
}
