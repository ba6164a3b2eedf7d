// Package export flattens a proof tree into a nested "rule name over
// premises" structure for renderers, plus a LaTeX emitter over it. The
// traversal is pure: it never mutates the tree.
package export

import (
	"github.com/formallab/sequent/internal/ast"
	"github.com/formallab/sequent/internal/proof"
)

// Derivation is one inference step: a conclusion sequent, the rule
// that justified it, and the premises above the line. A closed leaf
// has a rule label and no premises; an open leaf has neither.
type Derivation struct {
	Sequent  ast.Sequent
	Rule     string
	Closed   bool
	Premises []*Derivation
}

// Build traverses the tree into a derivation. Returns nil for a nil
// tree.
func Build(t *proof.Tree) *Derivation {
	if t == nil {
		return nil
	}
	return buildNode(t.Root)
}

func buildNode(n *proof.Node) *Derivation {
	d := &Derivation{
		Sequent: n.Sequent,
		Closed:  n.Status() == proof.Closed,
	}
	if n.Applied != nil {
		d.Rule = n.Applied.Label
	}
	for _, c := range n.Children {
		d.Premises = append(d.Premises, buildNode(c))
	}
	return d
}
