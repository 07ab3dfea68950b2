package generator

import (
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/alcazar-gen/alcazar/internal/board"
	"github.com/alcazar-gen/alcazar/internal/formula"
	"github.com/alcazar-gen/alcazar/internal/geometry"
)

func generate(t *testing.T, width, height int, seed int64) *board.Board {
	t.Helper()
	options := DefaultOptions(width, height)
	options.Seed = seed
	b, err := New(options).Generate()
	if err != nil {
		t.Fatalf("generation failed for %vx%v (seed %v): %v", width, height, seed, err)
	}
	return b
}

// checkInvariants verifies the structural guarantees of a finished board:
// canonical endpoints, a unique Hamiltonian path, and essentiality of every
// installed wall.
func checkInvariants(g *WithT, b *board.Board) {
	g.Expect(b.Validate()).To(Succeed())

	entry := geometry.CellIndex(b.Entry(), b.Width())
	exit := geometry.CellIndex(b.Exit(), b.Width())
	g.Expect(entry).To(BeNumerically("<", exit))

	g.Expect(b.CountPaths(2)).To(Equal(1), "the solution must exist and be unique")

	for _, wall := range b.Walls() {
		g.Expect(wall.IsBorder(b.Width(), b.Height())).To(BeFalse(),
			"border walls are never installed")

		b.RemoveWall(wall)
		g.Expect(b.CountPaths(3)).To(BeNumerically(">=", 2),
			"removing wall %+v must admit a second path", wall)
		g.Expect(b.AddWall(wall)).To(Succeed())
	}
}

func TestGenerateSmallBoards(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 3}, {3, 3}} {
		t.Run(fmt.Sprintf("%vx%v", dims[0], dims[1]), func(t *testing.T) {
			g := NewWithT(t)
			b := generate(t, dims[0], dims[1], 7)
			g.Expect(b.Width()).To(Equal(dims[0]))
			g.Expect(b.Height()).To(Equal(dims[1]))
			checkInvariants(g, b)
		})
	}
}

func TestGenerateTwoCellBoard(t *testing.T) {
	g := NewWithT(t)
	b := generate(t, 2, 1, 3)
	checkInvariants(g, b)
	g.Expect(b.Walls()).To(BeEmpty())
	g.Expect(b.Entry()).To(Equal(geometry.Coordinates{X: 0, Y: 0}))
	g.Expect(b.Exit()).To(Equal(geometry.Coordinates{X: 1, Y: 0}))
}

func TestGenerateManySeeds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 4x4 sweep in short mode")
	}
	for seed := int64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed %v", seed), func(t *testing.T) {
			g := NewWithT(t)
			checkInvariants(g, generate(t, 4, 4, seed))
		})
	}
}

// Dropping an essential wall corrupts the board: the solution stops being
// unique.
func TestCorruptedBoardLosesUniqueness(t *testing.T) {
	g := NewWithT(t)

	for seed := int64(1); seed <= 5; seed++ {
		b := generate(t, 3, 3, seed)
		walls := b.Walls()
		if len(walls) == 0 {
			continue
		}

		b.RemoveWall(walls[0])
		g.Expect(b.CountPaths(3)).To(BeNumerically(">=", 2))
		return
	}
	t.Skip("no generated 3x3 board carried walls")
}

func TestGenerateReproducible(t *testing.T) {
	g := NewWithT(t)

	first := generate(t, 3, 3, 42)
	second := generate(t, 3, 3, 42)

	g.Expect(second.Entry()).To(Equal(first.Entry()))
	g.Expect(second.Exit()).To(Equal(first.Exit()))
	g.Expect(second.Walls()).To(Equal(first.Walls()))
}

func TestGenerateInvalidDimensions(t *testing.T) {
	g := NewWithT(t)

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {1, 1}} {
		options := DefaultOptions(dims[0], dims[1])
		_, err := New(options).Generate()
		g.Expect(err).To(MatchError(formula.ErrInvalidDimensions))
	}
}
