package board

import (
	"errors"
	"fmt"

	"github.com/alcazar-gen/alcazar/internal/geometry"
)

var (
	ErrEndpointNotOnEdge = errors.New("entry and exit must be edge cells")
	ErrEndpointOrder     = errors.New("entry index must be below exit index")
	ErrEndpointWalledIn  = errors.New("border segment at an endpoint must stay open")
	ErrTooManyBarriers   = errors.New("cell has more than two barriers")
)

// Validate checks the structural invariants of a finished board: endpoints
// are distinct edge cells in canonical order, walls fit the grid, no border
// wall seals an endpoint, and no cell is barred on more than two sides
// (three for the endpoint cells, whose count includes the door).
func (b *Board) Validate() error {
	if b.width <= 0 || b.height <= 0 || b.width*b.height < 2 {
		return ErrInvalidDimensions
	}

	if !b.entry.OnEdge(b.width, b.height) || !b.exit.OnEdge(b.width, b.height) {
		return ErrEndpointNotOnEdge
	}
	if geometry.CellIndex(b.entry, b.width) >= geometry.CellIndex(b.exit, b.width) {
		return ErrEndpointOrder
	}

	for wall := range b.walls {
		if !wall.Valid(b.width, b.height) {
			return fmt.Errorf("%w: %+v", ErrInvalidWall, wall)
		}
		if wall.IsBorder(b.width, b.height) && (wall.Touches(b.entry) || wall.Touches(b.exit)) {
			return fmt.Errorf("%w: %+v", ErrEndpointWalledIn, wall)
		}
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := geometry.Coordinates{X: x, Y: y}
			limit := 2
			if c == b.entry || c == b.exit {
				limit = 3
			}
			if b.BarrierCount(c) > limit {
				return fmt.Errorf("%w: %+v", ErrTooManyBarriers, c)
			}
		}
	}

	return nil
}
