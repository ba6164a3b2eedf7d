package ast

import "strings"

// Sequent is a pair of ordered formula lists, read "antecedents prove
// succedents". Duplicates are distinct entries (contraction depends on
// this) and order matters only for selection indices.
type Sequent struct {
	Left  []Formula
	Right []Formula
}

// NewSequent creates a sequent from antecedent and succedent lists.
func NewSequent(left, right []Formula) Sequent {
	return Sequent{Left: left, Right: right}
}

func (s Sequent) String() string {
	return joinFormulas(s.Left) + " ⊢ " + joinFormulas(s.Right)
}

func joinFormulas(fs []Formula) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// CopyLists returns independent copies of both formula lists. Rule
// transformations edit the copies so the source sequent is never
// mutated.
func (s Sequent) CopyLists() (left, right []Formula) {
	left = make([]Formula, len(s.Left))
	copy(left, s.Left)
	right = make([]Formula, len(s.Right))
	copy(right, s.Right)
	return left, right
}

// Equal reports structural equality of two sequents, list order
// included.
func (s Sequent) Equal(o Sequent) bool {
	if len(s.Left) != len(o.Left) || len(s.Right) != len(o.Right) {
		return false
	}
	for i := range s.Left {
		if !FormulasEqual(s.Left[i], o.Left[i]) {
			return false
		}
	}
	for i := range s.Right {
		if !FormulasEqual(s.Right[i], o.Right[i]) {
			return false
		}
	}
	return true
}
