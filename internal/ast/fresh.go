package ast

import "fmt"

// FreshGen allocates fresh variable names for one proof session. Names
// are baseName_N with a monotonic counter; a name is never reissued
// within the session, and a candidate already free in the sequent at
// hand is skipped. Starting a new proof replaces the generator.
//
// Not safe for concurrent use; the session model is single-writer.
type FreshGen struct {
	counter int
	issued  map[string]bool
}

// NewFreshGen creates a generator with its counter at zero.
func NewFreshGen() *FreshGen {
	return &FreshGen{issued: make(map[string]bool)}
}

// Fresh returns a variable named base_N that is neither free in s nor
// previously issued in this session.
func (g *FreshGen) Fresh(base string, s Sequent) Variable {
	free := FreeVarsSequent(s)
	for {
		g.counter++
		name := fmt.Sprintf("%s_%d", base, g.counter)
		if g.issued[name] || free[name] {
			continue
		}
		g.issued[name] = true
		return Variable{Name: name}
	}
}
