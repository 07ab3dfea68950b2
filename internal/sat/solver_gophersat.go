package sat

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// gophersatSolver solves in-process with gophersat. Each Solve call builds a
// fresh search over the accumulated clauses plus the assumptions as unit
// clauses; the clause store itself only grows. Gophersat's own incremental
// mode records assumed literals as learned units, which would make
// assumptions stick across calls, so it is not used here.
type gophersatSolver struct {
	formula Formula
	model   []bool
}

func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) NewVar() Literal {
	return s.formula.NewVar()
}

func (s *gophersatSolver) AddClause(literals ...Literal) {
	s.formula.AddClause(literals...)
}

func (s *gophersatSolver) Formula() *Formula {
	return &s.formula
}

func (s *gophersatSolver) Solve(assumptions []Literal) (bool, error) {
	cnf := make([][]int, 0, len(s.formula.Clauses)+len(assumptions))
	for _, clause := range s.formula.Clauses {
		lits := make([]int, len(clause))
		for i, literal := range clause {
			lits[i] = int(literal)
		}
		cnf = append(cnf, lits)
	}
	for _, assumption := range assumptions {
		cnf = append(cnf, []int{int(assumption)})
	}

	inner := solver.New(solver.ParseSlice(cnf))
	switch status := inner.Solve(); status {
	case solver.Sat:
		s.model = inner.Model()
		return true, nil
	case solver.Unsat:
		s.model = nil
		return false, nil
	default:
		return false, fmt.Errorf("unexpected solver status %v", status)
	}
}

func (s *gophersatSolver) ModelValue(l Literal) Tri {
	if s.model == nil || l == 0 {
		return Undef
	}
	v := l.Var()
	if v > len(s.model) {
		return Undef
	}
	value := s.model[v-1]
	if l < 0 {
		value = !value
	}
	if value {
		return True
	}
	return False
}
