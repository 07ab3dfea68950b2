package geometry

import "github.com/samber/lo"

// Path is a sequence of cells, one per path position.
type Path []Coordinates

func (p Path) Entry() Coordinates {
	return p[0]
}

func (p Path) Exit() Coordinates {
	return p[len(p)-1]
}

// CrossedWalls returns the set of walls the path runs through, i.e. the wall
// between each pair of consecutive cells.
func (p Path) CrossedWalls() map[Wall]struct{} {
	crossed := make(map[Wall]struct{}, len(p))
	for i := 0; i+1 < len(p); i++ {
		if wall, ok := WallBetween(p[i], p[i+1]); ok {
			crossed[wall] = struct{}{}
		}
	}
	return crossed
}

// Blocks reports whether installing the wall would sever two consecutive
// cells of the path.
func (p Path) Blocks(w Wall) bool {
	_, ok := p.CrossedWalls()[w]
	return ok
}

// NonblockingWalls filters the given walls down to those the path does not
// run through.
func (p Path) NonblockingWalls(walls []Wall) []Wall {
	crossed := p.CrossedWalls()
	return lo.Filter(walls, func(w Wall, _ int) bool {
		_, blocking := crossed[w]
		return !blocking
	})
}
