package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/alcazar-gen/alcazar/internal/board"
	"github.com/alcazar-gen/alcazar/internal/formula"
	"github.com/alcazar-gen/alcazar/internal/geometry"
	"github.com/alcazar-gen/alcazar/internal/sat"
)

var ErrGenerationFailed = errors.New("no solvable entry/exit pair found")

// Generator produces Alcazar boards with a unique solution.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(5, 5)
	}
	if options.MaxAttempts <= 0 {
		options.MaxAttempts = DefaultMaxAttempts
	}

	seed := options.Seed
	if seed == 0 {
		seed = entropySeed()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("cannot read entropy source: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Generate builds the formula, samples entry/exit pairs until one admits a
// Hamiltonian path on the empty board, then minimizes the wall set while
// keeping that path the unique solution.
func (g *Generator) Generate() (*board.Board, error) {
	width, height := g.options.Width, g.options.Height
	length := width * height

	newSolver := g.options.Solver
	if newSolver == nil {
		newSolver = sat.NewGophersatSolver
	}
	solver := newSolver()

	vars, err := formula.Encode(width, height, solver)
	if err != nil {
		return nil, err
	}

	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}

	edgeCells := geometry.EdgeCells(width, height)
	possibleWalls := b.PossibleWalls()

	var entry, exit geometry.Coordinates
	found := false
	for attempt := 0; attempt < g.options.MaxAttempts; attempt++ {
		entry, exit = g.sampleEndpoints(edgeCells)

		assumptions := make([]sat.Literal, 0, len(possibleWalls)+2)
		assumptions = append(assumptions,
			vars.PathLit(geometry.CellIndex(entry, width), 0),
			vars.PathLit(geometry.CellIndex(exit, width), length-1),
		)
		for _, wall := range possibleWalls {
			assumptions = append(assumptions, vars.WallLit(wall).Negate())
		}

		satisfiable, err := solver.Solve(assumptions)
		if err != nil {
			return nil, fmt.Errorf("initial solve: %w", err)
		}
		if satisfiable {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w after %d attempts", ErrGenerationFailed, g.options.MaxAttempts)
	}

	path, blocking := extractPath(solver, vars)
	solver.AddClause(blocking...)

	essential, err := g.minimizeWalls(solver, vars, b, path)
	if err != nil {
		return nil, err
	}

	for _, wall := range essential {
		if err := b.AddWall(wall); err != nil {
			return nil, err
		}
	}
	b.SetEndpoints(entry, exit)

	return b, nil
}

// sampleEndpoints draws edge cells until the pair is in canonical order:
// entry index strictly below exit index.
func (g *Generator) sampleEndpoints(edgeCells []geometry.Coordinates) (entry, exit geometry.Coordinates) {
	width := g.options.Width
	for {
		entry = edgeCells[g.rng.Intn(len(edgeCells))]
		exit = edgeCells[g.rng.Intn(len(edgeCells))]
		if geometry.CellIndex(entry, width) < geometry.CellIndex(exit, width) {
			return entry, exit
		}
	}
}

// extractPath reads the path out of the satisfying model and builds the
// blocking clause that bars this exact path from future solves.
func extractPath(solver sat.Solver, vars *formula.Variables) (geometry.Path, []sat.Literal) {
	length := vars.PathLength
	path := make(geometry.Path, length)
	blocking := make([]sat.Literal, 0, length)

	for field := 0; field < length; field++ {
		for pos := 0; pos < length; pos++ {
			lit := vars.PathLit(field, pos)
			if solver.ModelValue(lit) == sat.True {
				path[pos] = geometry.CellFromIndex(field, vars.Width)
				blocking = append(blocking, lit.Negate())
			}
		}
	}

	return path, blocking
}
