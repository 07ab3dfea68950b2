package generator

import (
	"fmt"
	"log"

	"github.com/samber/lo"

	"github.com/alcazar-gen/alcazar/internal/board"
	"github.com/alcazar-gen/alcazar/internal/formula"
	"github.com/alcazar-gen/alcazar/internal/geometry"
	"github.com/alcazar-gen/alcazar/internal/sat"
)

// minimizeWalls classifies every candidate wall as essential or removable.
// The formula already excludes the sampled path and every query pins the
// sampled entry and exit, so a satisfiable solve under the current wall
// commitment means a second path between the same endpoints exists; the wall
// whose absence admitted it is essential. Walls whose absence keeps the
// formula unsatisfiable join the open set, committed absent from then on.
func (g *Generator) minimizeWalls(solver sat.Solver, vars *formula.Variables, b *board.Board, path geometry.Path) ([]geometry.Wall, error) {
	width, height := b.Width(), b.Height()
	possibleWalls := b.PossibleWalls()

	// Candidates are the walls that could be installed without severing the
	// path: interior walls the path does not run through. Everything else
	// starts out committed absent.
	candidates := lo.Filter(path.NonblockingWalls(possibleWalls), func(w geometry.Wall, _ int) bool {
		return !w.IsBorder(width, height)
	})

	open := make(map[geometry.Wall]struct{}, len(possibleWalls))
	isCandidate := make(map[geometry.Wall]struct{}, len(candidates))
	for _, wall := range candidates {
		isCandidate[wall] = struct{}{}
	}
	for _, wall := range possibleWalls {
		if _, ok := isCandidate[wall]; !ok {
			open[wall] = struct{}{}
		}
	}

	entryField := geometry.CellIndex(path.Entry(), width)
	exitField := geometry.CellIndex(path.Exit(), width)

	total := len(candidates)
	var essential []geometry.Wall
	for len(candidates) > 0 {
		i := g.rng.Intn(len(candidates))
		wall := candidates[i]
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		if g.options.Verbose {
			log.Printf("trying to remove wall %d/%d", total-len(candidates), total)
		}

		assumptions := make([]sat.Literal, 0, len(possibleWalls)+2)
		assumptions = append(assumptions,
			vars.PathLit(entryField, 0),
			vars.PathLit(exitField, vars.PathLength-1),
			vars.WallLit(wall).Negate(),
		)
		for _, w := range candidates {
			assumptions = append(assumptions, vars.WallLit(w))
		}
		for _, w := range essential {
			assumptions = append(assumptions, vars.WallLit(w))
		}
		// iterate in canonical order so a fixed seed reproduces the run
		for _, w := range possibleWalls {
			if _, ok := open[w]; ok {
				assumptions = append(assumptions, vars.WallLit(w).Negate())
			}
		}

		satisfiable, err := solver.Solve(assumptions)
		if err != nil {
			return nil, fmt.Errorf("minimization solve: %w", err)
		}
		if satisfiable {
			// A second path appears once this wall is gone: keep it.
			essential = append(essential, wall)
			if g.options.Verbose {
				log.Printf("wall is essential (%d so far)", len(essential))
			}
		} else {
			open[wall] = struct{}{}
		}
	}

	return essential, nil
}
