package board

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/alcazar-gen/alcazar/internal/geometry"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive with at least two cells")
	ErrInvalidWall       = errors.New("wall does not fit the board")
)

// Board is a rectangular Alcazar board: a wall set plus an entry and an exit
// cell on the boundary. The outer border is implicitly walled everywhere
// except at the entry and exit openings.
type Board struct {
	width  int
	height int
	entry  geometry.Coordinates
	exit   geometry.Coordinates
	walls  map[geometry.Wall]struct{}
}

func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || width*height < 2 {
		return nil, ErrInvalidDimensions
	}
	return &Board{
		width:  width,
		height: height,
		walls:  make(map[geometry.Wall]struct{}),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) Entry() geometry.Coordinates { return b.entry }
func (b *Board) Exit() geometry.Coordinates  { return b.exit }

func (b *Board) SetEndpoints(entry, exit geometry.Coordinates) {
	b.entry = entry
	b.exit = exit
}

func (b *Board) AddWall(w geometry.Wall) error {
	if !w.Valid(b.width, b.height) {
		return fmt.Errorf("%w: %+v", ErrInvalidWall, w)
	}
	b.walls[w] = struct{}{}
	return nil
}

func (b *Board) RemoveWall(w geometry.Wall) {
	delete(b.walls, w)
}

func (b *Board) HasWall(w geometry.Wall) bool {
	_, ok := b.walls[w]
	return ok
}

// Walls lists the installed walls in canonical order.
func (b *Board) Walls() []geometry.Wall {
	return lo.Filter(geometry.AllWalls(b.width, b.height), func(w geometry.Wall, _ int) bool {
		return b.HasWall(w)
	})
}

// PossibleWalls lists every wall position of the board.
func (b *Board) PossibleWalls() []geometry.Wall {
	return geometry.AllWalls(b.width, b.height)
}

// OpenWalls lists every wall position not currently installed.
func (b *Board) OpenWalls() []geometry.Wall {
	return lo.Filter(geometry.AllWalls(b.width, b.height), func(w geometry.Wall, _ int) bool {
		return !b.HasWall(w)
	})
}

// Blocked reports whether movement between two neighbouring cells is barred,
// by an installed wall or by the border.
func (b *Board) Blocked(from, to geometry.Coordinates) bool {
	if !to.Inside(b.width, b.height) {
		return true
	}
	wall, ok := geometry.WallBetween(from, to)
	if !ok {
		return true
	}
	return b.HasWall(wall)
}

// BarrierCount counts the surrounding segments of a cell that act as
// barriers: installed walls plus border segments. Entry and exit cells carry
// one border opening, so their count includes the door.
func (b *Board) BarrierCount(c geometry.Coordinates) int {
	count := 0
	for _, wall := range surroundingWalls(c) {
		if wall.IsBorder(b.width, b.height) || b.HasWall(wall) {
			count++
		}
	}
	return count
}

func surroundingWalls(c geometry.Coordinates) [4]geometry.Wall {
	return [4]geometry.Wall{
		{Position: geometry.Coordinates{X: c.X, Y: c.Y}, Orientation: geometry.Horizontal},
		{Position: geometry.Coordinates{X: c.X, Y: c.Y + 1}, Orientation: geometry.Horizontal},
		{Position: geometry.Coordinates{X: c.X, Y: c.Y}, Orientation: geometry.Vertical},
		{Position: geometry.Coordinates{X: c.X + 1, Y: c.Y}, Orientation: geometry.Vertical},
	}
}
