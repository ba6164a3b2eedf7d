// Package sequent is an interactive sequent calculus proof assistant
// for propositional logic, first-order logic, and a dynamic logic with
// a box modality. It executes the inference rule the user selects; it
// never searches for proofs.
//
// This package is the command surface consumed by UIs: sequents, rule
// names, sides, and payloads arrive as text and are resolved against
// the engine in internal/.
package sequent

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formallab/sequent/internal/export"
	"github.com/formallab/sequent/internal/parser"
	"github.com/formallab/sequent/internal/proof"
	"github.com/formallab/sequent/internal/rules"
	"github.com/formallab/sequent/internal/store"
)

// DefaultSequent is the example shown to first-time users.
const DefaultSequent = "p implies q, p |- q"

// Session wraps one proof session behind the textual command surface.
type Session struct {
	inner     *proof.Session
	templates map[string]bool
}

// NewSession creates a session. logger may be nil.
func NewSession(logger *zap.Logger) *Session {
	return &Session{
		inner:     proof.NewSession(logger),
		templates: make(map[string]bool),
	}
}

// Start parses the sequent text and begins a new proof, discarding any
// prior tree and resetting the fresh-variable counter.
func (s *Session) Start(input string) error {
	_, err := s.inner.StartProof(input)
	return err
}

// Closed reports whether the whole proof is closed.
func (s *Session) Closed() bool {
	return s.inner.Status() == proof.Closed
}

// Goal describes one open leaf a rule can target.
type Goal struct {
	ID      string
	Sequent string
	Closed  bool
}

// Goals lists the tree's leaves in depth-first order.
func (s *Session) Goals() []Goal {
	tree := s.inner.Tree()
	if tree == nil {
		return nil
	}
	leaves := tree.Leaves()
	goals := make([]Goal, 0, len(leaves))
	for _, n := range leaves {
		goals = append(goals, Goal{
			ID:      n.ID.String(),
			Sequent: n.Sequent.String(),
			Closed:  n.Status() == proof.Closed,
		})
	}
	return goals
}

// Apply resolves and applies a named rule at the given node, side and
// formula index. arg carries the optional payload: an instantiation
// term for ∀L/∃R, a formula for weakening, cut, and [while]inv.
func (s *Session) Apply(nodeID, ruleName, side string, index int, arg string) error {
	id, err := uuid.Parse(nodeID)
	if err != nil {
		return fmt.Errorf("bad node id %q: %w", nodeID, err)
	}
	app, err := s.resolve(ruleName, side, index, arg)
	if err != nil {
		return err
	}
	_, err = s.inner.ApplyRule(id, app)
	return err
}

// Undo reopens the branch that produced the given node.
func (s *Session) Undo(nodeID string) error {
	id, err := uuid.Parse(nodeID)
	if err != nil {
		return fmt.Errorf("bad node id %q: %w", nodeID, err)
	}
	return s.inner.Undo(id)
}

// LaTeX renders the current proof tree for the LaTeX emitter.
func (s *Session) LaTeX() string {
	d := export.Build(s.inner.Tree())
	if d == nil {
		return ""
	}
	return export.LaTeX(d)
}

// Derivation exposes the export traversal of the current tree.
func (s *Session) Derivation() *export.Derivation {
	return export.Build(s.inner.Tree())
}

// LoadTemplates reads custom rule templates from a YAML file and
// registers them for this session.
func (s *Session) LoadTemplates(path string) error {
	tpls, err := store.Load(path)
	if err != nil {
		return err
	}
	s.inner.RegisterTemplates(tpls)
	for _, tpl := range tpls {
		s.templates[tpl.Name] = true
	}
	return nil
}

func (s *Session) resolve(ruleName, side string, index int, arg string) (rules.Application, error) {
	sd, err := parseSide(side)
	if err != nil {
		return rules.Application{}, err
	}
	rule, ok := rules.ByName(ruleName)
	if !ok {
		if s.templates[ruleName] {
			return rules.Application{Rule: rules.RuleCustom, Name: ruleName, Side: sd, Index: index}, nil
		}
		return rules.Application{}, fmt.Errorf("%w: %q", rules.ErrUnknownRule, ruleName)
	}

	app := rules.Application{Rule: rule, Side: sd, Index: index}
	switch rule {
	case rules.RuleForallL, rules.RuleExistsR:
		if arg == "" {
			return rules.Application{}, fmt.Errorf("%w: %s needs an instantiation term", rules.ErrPreconditionFailed, ruleName)
		}
		term, err := parser.ParseTerm(arg)
		if err != nil {
			return rules.Application{}, err
		}
		app.Term = term
	case rules.RuleWeaken, rules.RuleCut, rules.RuleWhileInv:
		if arg != "" {
			f, err := parser.ParseFormula(arg)
			if err != nil {
				return rules.Application{}, err
			}
			app.Formula = f
		}
	}
	return app, nil
}

func parseSide(side string) (rules.Side, error) {
	switch side {
	case "lhs", "left", "L":
		return rules.SideLeft, nil
	case "rhs", "right", "R":
		return rules.SideRight, nil
	default:
		return 0, fmt.Errorf("side must be lhs or rhs, got %q", side)
	}
}
