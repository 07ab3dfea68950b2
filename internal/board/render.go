package board

import (
	"strings"

	"github.com/alcazar-gen/alcazar/internal/geometry"
)

// String renders the board as ASCII art. Installed walls and the border are
// drawn as lines; the entry cell is marked A and the exit cell B, each with
// its border segment left open as the door.
func (b *Board) String() string {
	var builder strings.Builder

	doors := b.doorWalls()
	barrier := func(w geometry.Wall) bool {
		if _, open := doors[w]; open {
			return false
		}
		return w.IsBorder(b.width, b.height) || b.HasWall(w)
	}
	horizontal := func(x, y int) bool {
		return barrier(geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Horizontal})
	}
	vertical := func(x, y int) bool {
		return barrier(geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Vertical})
	}

	for y := 0; y <= b.height; y++ {
		for x := 0; x < b.width; x++ {
			builder.WriteByte('+')
			if horizontal(x, y) {
				builder.WriteString("--")
			} else {
				builder.WriteString("  ")
			}
		}
		builder.WriteString("+\n")

		if y == b.height {
			break
		}

		for x := 0; x <= b.width; x++ {
			if vertical(x, y) {
				builder.WriteByte('|')
			} else {
				builder.WriteByte(' ')
			}
			if x == b.width {
				break
			}
			switch (geometry.Coordinates{X: x, Y: y}) {
			case b.entry:
				builder.WriteString("A ")
			case b.exit:
				builder.WriteString("B ")
			default:
				builder.WriteString("  ")
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

// doorWalls picks one border segment per endpoint to leave open. Corner
// cells touch two border segments; the first in the fixed north, south,
// west, east order becomes the door.
func (b *Board) doorWalls() map[geometry.Wall]struct{} {
	doors := make(map[geometry.Wall]struct{}, 2)
	for _, endpoint := range []geometry.Coordinates{b.entry, b.exit} {
		for _, wall := range surroundingWalls(endpoint) {
			if wall.IsBorder(b.width, b.height) {
				doors[wall] = struct{}{}
				break
			}
		}
	}
	return doors
}
