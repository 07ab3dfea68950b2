package sat

// Solver is the contract the encoder and the generator rely on. Variables
// are allocated once, clauses accumulate monotonically, and assumptions
// apply to a single Solve call only.
type Solver interface {
	NewVar() Literal
	AddClause(literals ...Literal)
	// Solve decides satisfiability of the accumulated clauses under the
	// given assumptions. It returns false, nil on UNSAT; errors are
	// reserved for backend failures.
	Solve(assumptions []Literal) (bool, error)
	// ModelValue reads a literal's value in the model of the last
	// satisfiable Solve. It returns Undef if no such model exists.
	ModelValue(l Literal) Tri
	// Formula exposes the accumulated clause store, e.g. for DIMACS export.
	Formula() *Formula
}
