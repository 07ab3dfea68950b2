package board

import "github.com/alcazar-gen/alcazar/internal/geometry"

// CountPaths counts the Hamiltonian paths from entry to exit that respect
// the installed walls, by exhaustive backtracking, stopping once limit paths
// have been found. It is independent of the SAT machinery and exists to
// check solvability and uniqueness of finished boards.
func (b *Board) CountPaths(limit int) int {
	if limit <= 0 {
		return 0
	}
	walker := &pathWalker{
		board:   b,
		visited: make([]bool, b.width*b.height),
		limit:   limit,
	}
	walker.visit(b.entry, 1)
	return walker.found
}

// HasUniquePath reports whether exactly one Hamiltonian path connects entry
// to exit.
func (b *Board) HasUniquePath() bool {
	return b.CountPaths(2) == 1
}

type pathWalker struct {
	board   *Board
	visited []bool
	limit   int
	found   int
}

func (w *pathWalker) visit(c geometry.Coordinates, depth int) {
	b := w.board
	w.visited[geometry.CellIndex(c, b.width)] = true
	defer func() { w.visited[geometry.CellIndex(c, b.width)] = false }()

	if depth == b.width*b.height {
		if c == b.exit {
			w.found++
		}
		return
	}
	if c == b.exit {
		return
	}

	for _, offset := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if w.found >= w.limit {
			return
		}
		next := c.Offset(offset[0], offset[1])
		if b.Blocked(c, next) {
			continue
		}
		if w.visited[geometry.CellIndex(next, b.width)] {
			continue
		}
		w.visit(next, depth+1)
	}
}
