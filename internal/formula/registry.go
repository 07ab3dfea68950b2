package formula

import (
	"github.com/alcazar-gen/alcazar/internal/geometry"
	"github.com/alcazar-gen/alcazar/internal/sat"
)

// Variables maps the structural objects of a width×height board to the
// literals allocated for them. Path literals are laid out densely by
// (cell, position); wall and edge literals are indexed by the canonical
// wall order of geometry.AllWalls.
type Variables struct {
	Width      int
	Height     int
	PathLength int

	path      [][]sat.Literal // [cell index][path position]
	wall      []sat.Literal   // by canonical wall index
	edge      []sat.Literal   // by canonical wall index
	nodeNW    []sat.Literal   // by cell index
	nodeNE    []sat.Literal   // by cell index
	wallIndex map[geometry.Wall]int
}

// PathLit returns the literal of "cell occupies the given path position".
func (v *Variables) PathLit(field, pos int) sat.Literal {
	return v.path[field][pos]
}

// WallLit returns the literal of "this wall is installed in the final
// board".
func (v *Variables) WallLit(w geometry.Wall) sat.Literal {
	return v.wall[v.wallIndex[w]]
}

// edgeLit returns the literal of "this wall acts as a barrier", i.e. it is
// installed or part of the closed border. It returns 0 for positions
// outside the wall grid; callers drop such literals from their clauses.
func (v *Variables) edgeLit(w geometry.Wall) sat.Literal {
	if !w.Valid(v.Width, v.Height) {
		return 0
	}
	return v.edge[v.wallIndex[w]]
}
