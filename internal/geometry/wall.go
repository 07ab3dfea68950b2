package geometry

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Wall identifies one segment of the wall grid by position and orientation.
// A vertical wall at (x, y) runs between cells (x-1, y) and (x, y), valid for
// x in [0, width] and y in [0, height). A horizontal wall at (x, y) runs
// between cells (x, y-1) and (x, y), valid for x in [0, width) and
// y in [0, height].
type Wall struct {
	Position    Coordinates
	Orientation Orientation
}

func (w Wall) Valid(width, height int) bool {
	if w.Orientation == Vertical {
		return w.Position.X >= 0 && w.Position.X <= width &&
			w.Position.Y >= 0 && w.Position.Y < height
	}
	return w.Position.X >= 0 && w.Position.X < width &&
		w.Position.Y >= 0 && w.Position.Y <= height
}

// IsBorder reports whether the wall lies on the outer perimeter of the grid.
func (w Wall) IsBorder(width, height int) bool {
	if w.Orientation == Vertical {
		return w.Position.X == 0 || w.Position.X == width
	}
	return w.Position.Y == 0 || w.Position.Y == height
}

// Touches reports whether the wall is one of the four segments surrounding
// the given cell.
func (w Wall) Touches(c Coordinates) bool {
	if w.Orientation == Vertical {
		return w.Position.Y == c.Y && (w.Position.X == c.X || w.Position.X == c.X+1)
	}
	return w.Position.X == c.X && (w.Position.Y == c.Y || w.Position.Y == c.Y+1)
}

// WallBetween returns the wall separating two cells. The second return value
// is false when the cells are not cardinal neighbours.
func WallBetween(a, b Coordinates) (Wall, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 1 && dy == 0:
		return Wall{Coordinates{a.X + 1, a.Y}, Vertical}, true
	case dx == -1 && dy == 0:
		return Wall{Coordinates{a.X, a.Y}, Vertical}, true
	case dx == 0 && dy == 1:
		return Wall{Coordinates{a.X, a.Y + 1}, Horizontal}, true
	case dx == 0 && dy == -1:
		return Wall{Coordinates{a.X, a.Y}, Horizontal}, true
	}
	return Wall{}, false
}

// AllWalls enumerates every wall of a width×height grid exactly once, in a
// fixed order: vertical walls row by row, then horizontal walls row by row.
// This order is the canonical wall index used by the formula's registries.
func AllWalls(width, height int) []Wall {
	walls := make([]Wall, 0, width*(height+1)+(width+1)*height)
	for y := 0; y < height; y++ {
		for x := 0; x <= width; x++ {
			walls = append(walls, Wall{Coordinates{x, y}, Vertical})
		}
	}
	for y := 0; y <= height; y++ {
		for x := 0; x < width; x++ {
			walls = append(walls, Wall{Coordinates{x, y}, Horizontal})
		}
	}
	return walls
}

// EdgeCells enumerates every boundary cell exactly once: the top and bottom
// rows left to right, then the remaining cells of the left and right columns
// top to bottom. For width, height >= 2 this yields 2*width+2*height-4 cells.
func EdgeCells(width, height int) []Coordinates {
	cells := make([]Coordinates, 0, 2*width+2*height-4)
	for x := 0; x < width; x++ {
		cells = append(cells, Coordinates{x, 0})
		if height > 1 {
			cells = append(cells, Coordinates{x, height - 1})
		}
	}
	for y := 1; y+1 < height; y++ {
		cells = append(cells, Coordinates{0, y})
		if width > 1 {
			cells = append(cells, Coordinates{width - 1, y})
		}
	}
	return cells
}
