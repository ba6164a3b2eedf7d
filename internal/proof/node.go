package proof

import (
	"github.com/google/uuid"

	"github.com/formallab/sequent/internal/ast"
	"github.com/formallab/sequent/internal/rules"
)

// Status is the derived state of a proof node.
type Status int

const (
	Open Status = iota
	Closed
)

func (s Status) String() string {
	if s == Closed {
		return "Closed"
	}
	return "Open"
}

// Record captures the rule application that produced a node's children
// (or closed it), for display and export.
type Record struct {
	Rule    rules.Rule
	Label   string
	Side    rules.Side
	Index   int
	Term    ast.Term    // instantiation argument, if any
	Formula ast.Formula // invariant, lemma or weakening formula, if any
}

// Node is one sequent in the proof tree. Children are exclusively
// owned; Parent is a navigation-only back reference.
type Node struct {
	ID       uuid.UUID
	Sequent  ast.Sequent
	Parent   *Node
	Children []*Node
	Applied  *Record

	closed bool
}

func newNode(seq ast.Sequent, parent *Node) *Node {
	return &Node{ID: uuid.New(), Sequent: seq, Parent: parent}
}

// Status reports whether this branch is settled. A leaf is Closed only
// when an axiom or Close rule marked it; an internal node is Closed
// when every child is.
func (n *Node) Status() Status {
	if n.closed {
		return Closed
	}
	return Open
}

// IsLeaf reports whether no rule has produced children here yet.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// recompute refreshes the closure flag of this node and every ancestor.
// Leaves keep their stored flag (set only by closing rules).
func (n *Node) recompute() {
	for cur := n; cur != nil; cur = cur.Parent {
		if len(cur.Children) == 0 {
			continue
		}
		all := true
		for _, c := range cur.Children {
			if !c.closed {
				all = false
				break
			}
		}
		cur.closed = all
	}
}

// Tree owns the root node and an identity index over every node.
type Tree struct {
	Root  *Node
	index map[uuid.UUID]*Node
}

// NewTree creates a tree with a single open root for the sequent.
func NewTree(seq ast.Sequent) *Tree {
	root := newNode(seq, nil)
	return &Tree{
		Root:  root,
		index: map[uuid.UUID]*Node{root.ID: root},
	}
}

// Node looks a node up by ID.
func (t *Tree) Node(id uuid.UUID) (*Node, bool) {
	n, ok := t.index[id]
	return n, ok
}

// Status is the overall proof status, i.e. the root's.
func (t *Tree) Status() Status {
	return t.Root.Status()
}

// attach creates owned children for the given premise sequents.
func (t *Tree) attach(parent *Node, premises []ast.Sequent) []*Node {
	children := make([]*Node, 0, len(premises))
	for _, seq := range premises {
		child := newNode(seq, parent)
		t.index[child.ID] = child
		children = append(children, child)
	}
	parent.Children = children
	return children
}

// detach removes a node's descendants from the tree and the index.
func (t *Tree) detach(n *Node) {
	for _, c := range n.Children {
		t.detach(c)
		delete(t.index, c.ID)
	}
	n.Children = nil
}

// Leaves returns the open leaves in depth-first order; these are the
// positions where a rule can still be applied.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return leaves
}
