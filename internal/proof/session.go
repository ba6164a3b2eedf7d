package proof

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formallab/sequent/internal/ast"
	"github.com/formallab/sequent/internal/parser"
	"github.com/formallab/sequent/internal/rules"
)

// Session-level failures, distinct from the rule error taxonomy.
var (
	// ErrNoProof reports an operation before StartProof.
	ErrNoProof = errors.New("no proof in progress")
	// ErrUnknownNode reports an ID with no node in the current tree.
	ErrUnknownNode = errors.New("unknown proof node")
	// ErrNodeSettled reports a rule application on a node that already
	// has children or is closed.
	ErrNodeSettled = errors.New("node already expanded or closed")
)

// Session drives one interactive proof: it owns the tree, the
// fresh-variable generator, and the rule engine. One session serves one
// logical actor; deployments with several proofs scope one Session per
// proof.
type Session struct {
	tree      *Tree
	fresh     *ast.FreshGen
	engine    *rules.Engine
	templates []rules.Template
	logger    *zap.Logger
}

// NewSession creates an idle session. A nil logger gets a no-op one.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

// RegisterTemplates keeps the custom rule templates available across
// proofs started in this session.
func (s *Session) RegisterTemplates(tpls []rules.Template) {
	s.templates = append(s.templates, tpls...)
	if s.engine != nil {
		for _, tpl := range tpls {
			s.engine.RegisterTemplate(tpl)
		}
	}
}

// StartProof parses the sequent text and replaces any prior tree. The
// fresh-variable counter restarts with the new proof.
func (s *Session) StartProof(input string) (*Tree, error) {
	seq, err := parser.ParseSequent(input)
	if err != nil {
		return nil, err
	}
	s.fresh = ast.NewFreshGen()
	s.engine = rules.NewEngine(s.fresh)
	for _, tpl := range s.templates {
		s.engine.RegisterTemplate(tpl)
	}
	s.tree = NewTree(seq)
	s.logger.Info("proof started",
		zap.String("sequent", seq.String()),
		zap.String("root", s.tree.Root.ID.String()))
	return s.tree, nil
}

// Tree returns the current proof tree, nil before StartProof.
func (s *Session) Tree() *Tree {
	return s.tree
}

// Status reports the overall proof status.
func (s *Session) Status() Status {
	if s.tree == nil {
		return Open
	}
	return s.tree.Status()
}

// ApplyRule validates the selection, delegates to the rule engine, and
// on success attaches the premises as owned children and recomputes
// closure up the ancestor chain. On any error the tree is unchanged.
func (s *Session) ApplyRule(nodeID uuid.UUID, app rules.Application) ([]*Node, error) {
	if s.tree == nil {
		return nil, ErrNoProof
	}
	node, ok := s.tree.Node(nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
	}
	if !node.IsLeaf() || node.Status() == Closed {
		return nil, fmt.Errorf("%w: %s", ErrNodeSettled, nodeID)
	}

	premises, err := s.engine.Apply(node.Sequent, app)
	if err != nil {
		s.logger.Debug("rule rejected",
			zap.String("rule", app.Label()),
			zap.String("node", nodeID.String()),
			zap.Error(err))
		return nil, err
	}

	node.Applied = &Record{
		Rule:    app.Rule,
		Label:   app.Label(),
		Side:    app.Side,
		Index:   app.Index,
		Term:    app.Term,
		Formula: app.Formula,
	}
	var children []*Node
	if len(premises) == 0 {
		node.closed = true
	} else {
		children = s.tree.attach(node, premises)
	}
	node.recompute()

	s.logger.Info("rule applied",
		zap.String("rule", app.Label()),
		zap.String("node", nodeID.String()),
		zap.Int("premises", len(premises)),
		zap.String("status", s.tree.Status().String()))
	return children, nil
}

// Undo reverts the rule application at the given node, reopening that
// branch. A node with no step of its own reverts its parent's step
// instead, so selecting any premise and undoing removes all of its
// siblings too.
func (s *Session) Undo(nodeID uuid.UUID) error {
	if s.tree == nil {
		return ErrNoProof
	}
	node, ok := s.tree.Node(nodeID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
	}
	if node.Applied == nil {
		if node.Parent == nil {
			return fmt.Errorf("%w: root has no step to undo", ErrUnknownNode)
		}
		node = node.Parent
	}
	s.tree.detach(node)
	node.Applied = nil
	node.closed = false
	node.recompute()
	s.logger.Info("step undone", zap.String("node", node.ID.String()))
	return nil
}
