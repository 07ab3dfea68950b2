package formula

import (
	"errors"

	"github.com/samber/lo"

	"github.com/alcazar-gen/alcazar/internal/geometry"
	"github.com/alcazar-gen/alcazar/internal/sat"
)

var ErrInvalidDimensions = errors.New("board dimensions must be positive with at least two cells")

// Encode builds the CNF characterizing valid boards and paths on a
// width×height grid and returns the registries mapping cells, positions and
// walls to literals. All variables are allocated up front; later solves only
// append clauses and vary assumptions.
func Encode(width, height int, solver sat.Solver) (*Variables, error) {
	if width <= 0 || height <= 0 || width*height < 2 {
		return nil, ErrInvalidDimensions
	}

	e := &encoder{
		width:  width,
		height: height,
		length: width * height,
		solver: solver,
	}

	e.allocate()
	e.cellWallCount()
	e.cornerSeeds()
	e.nodeOrientation()
	e.wallCoverage()
	e.interiorCellCorners()
	e.pathCover()
	e.adjacency()
	e.wallBlocksPath()
	e.endpoints()
	e.borderEndpoints()

	return e.vars, nil
}

type encoder struct {
	width  int
	height int
	length int
	solver sat.Solver
	vars   *Variables
}

// add appends a clause, dropping zero literals: a zero stands for a segment
// outside the wall grid, which never acts as a wall.
func (e *encoder) add(literals ...sat.Literal) {
	e.solver.AddClause(lo.Filter(literals, func(l sat.Literal, _ int) bool {
		return l != 0
	})...)
}

func (e *encoder) allocate() {
	v := &Variables{
		Width:      e.width,
		Height:     e.height,
		PathLength: e.length,
		wallIndex:  make(map[geometry.Wall]int),
	}
	e.vars = v

	v.path = make([][]sat.Literal, e.length)
	for field := 0; field < e.length; field++ {
		v.path[field] = make([]sat.Literal, e.length)
		for pos := 0; pos < e.length; pos++ {
			v.path[field][pos] = e.solver.NewVar()
		}
	}

	walls := geometry.AllWalls(e.width, e.height)
	v.wall = make([]sat.Literal, len(walls))
	v.edge = make([]sat.Literal, len(walls))
	for i, wall := range walls {
		v.wallIndex[wall] = i
		v.wall[i] = e.solver.NewVar()
		v.edge[i] = e.solver.NewVar()
		// An installed wall always acts as a barrier.
		e.add(v.wall[i].Negate(), v.edge[i])
	}

	v.nodeNW = make([]sat.Literal, e.length)
	v.nodeNE = make([]sat.Literal, e.length)
	for field := 0; field < e.length; field++ {
		v.nodeNW[field] = e.solver.NewVar()
		v.nodeNE[field] = e.solver.NewVar()
	}
}

func (e *encoder) edgeAt(x, y int, o geometry.Orientation) sat.Literal {
	return e.vars.edgeLit(geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: o})
}

func (e *encoder) nodeNW(x, y int) sat.Literal {
	return e.vars.nodeNW[x+y*e.width]
}

func (e *encoder) nodeNE(x, y int) sat.Literal {
	return e.vars.nodeNE[x+y*e.width]
}

// cellWallCount forces every cell to see exactly two barriers among its four
// surrounding segments: for each 3-subset, at least one is a barrier and at
// least one is not.
func (e *encoder) cellWallCount() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			walln := e.edgeAt(x, y, geometry.Horizontal)
			wallw := e.edgeAt(x, y, geometry.Vertical)
			walls := e.edgeAt(x, y+1, geometry.Horizontal)
			walle := e.edgeAt(x+1, y, geometry.Vertical)

			// at most two
			e.add(walln.Negate(), walle.Negate(), walls.Negate())
			e.add(walln.Negate(), walle.Negate(), wallw.Negate())
			e.add(walln.Negate(), walls.Negate(), wallw.Negate())
			e.add(walle.Negate(), walls.Negate(), wallw.Negate())

			// at least two
			e.add(walln, walle, walls)
			e.add(walln, walle, wallw)
			e.add(walln, walls, wallw)
			e.add(walle, walls, wallw)
		}
	}
}

// cornerSeeds requires each grid corner to keep at least one of its two
// incident border segments closed, so the two-barrier count stays achievable
// there.
func (e *encoder) cornerSeeds() {
	w, h := e.width, e.height
	e.add(e.edgeAt(0, 0, geometry.Horizontal), e.edgeAt(0, 0, geometry.Vertical))
	e.add(e.edgeAt(w-1, 0, geometry.Horizontal), e.edgeAt(w, 0, geometry.Vertical))
	e.add(e.edgeAt(0, h, geometry.Horizontal), e.edgeAt(0, h-1, geometry.Vertical))
	e.add(e.edgeAt(w-1, h, geometry.Horizontal), e.edgeAt(w, h-1, geometry.Vertical))
}

// nodeOrientation ties each cell's orientation bits to the segments around
// the lattice corner the cell guards: the oriented direction must point
// along a wall and away from a corner. The corner guarded by cell (x, y) is
// the lattice point (x+1, y+1); its south and east segments fall outside the
// grid for bottom-row and right-column cells and are dropped as constant
// false.
func (e *encoder) nodeOrientation() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nw := e.nodeNW(x, y)
			ne := e.nodeNE(x, y)
			sw := ne.Negate()
			se := nw.Negate()
			walln := e.edgeAt(x+1, y, geometry.Vertical)
			wallw := e.edgeAt(x, y+1, geometry.Horizontal)
			walle := e.edgeAt(x+1, y+1, geometry.Horizontal)
			walls := e.edgeAt(x+1, y+1, geometry.Vertical)

			// the oriented direction points at a wall
			e.add(nw.Negate(), ne.Negate(), walln)
			e.add(sw.Negate(), se.Negate(), walls)
			e.add(ne.Negate(), se.Negate(), walle)
			e.add(nw.Negate(), sw.Negate(), wallw)

			// the orientation is not into a corner
			e.add(walln, walle, ne.Negate())
			e.add(walls, walle, se.Negate())
			e.add(walln, wallw, nw.Negate())
			e.add(walls, wallw, sw.Negate())
		}
	}
}

// wallCoverage links interior walls (horizontal ones with 1 <= x <= width-2,
// vertical ones with 1 <= y <= height-2) to the orientation bits of the two
// nodes on either side: the opposing nodes never point at each other, at least
// one points away from each neighbouring parallel wall, and an installed
// wall is covered by a pointing node.
func (e *encoder) wallCoverage() {
	// interior horizontal walls
	for y := 1; y <= e.height-1; y++ {
		for x := 1; x < e.width-1; x++ {
			wall := e.edgeAt(x, y, geometry.Horizontal)
			walln := e.edgeAt(x, y-1, geometry.Horizontal)
			walls := e.edgeAt(x, y+1, geometry.Horizontal)
			nodewNE := e.nodeNE(x-1, y-1)
			nodewSE := e.nodeNW(x-1, y-1).Negate()
			nodeeNW := e.nodeNW(x, y-1)
			nodeeSW := e.nodeNE(x, y-1).Negate()

			e.add(nodewNE.Negate(), nodewSE.Negate(), nodeeNW.Negate(), nodeeSW.Negate())

			e.add(nodewNE.Negate(), nodeeNW.Negate(), walln.Negate())
			e.add(nodewSE.Negate(), nodeeSW.Negate(), walls.Negate())

			e.add(wall.Negate(), nodewNE, nodeeNW)
			e.add(wall.Negate(), nodewNE, nodeeSW)
			e.add(wall.Negate(), nodewSE, nodeeNW)
			e.add(wall.Negate(), nodewSE, nodeeSW)
		}
	}

	// interior vertical walls
	for y := 1; y < e.height-1; y++ {
		for x := 1; x <= e.width-1; x++ {
			wall := e.edgeAt(x, y, geometry.Vertical)
			wallw := e.edgeAt(x-1, y, geometry.Vertical)
			walle := e.edgeAt(x+1, y, geometry.Vertical)
			nodenSE := e.nodeNW(x-1, y-1).Negate()
			nodenSW := e.nodeNE(x-1, y-1).Negate()
			nodesNE := e.nodeNE(x-1, y)
			nodesNW := e.nodeNW(x-1, y)

			e.add(nodenSE.Negate(), nodenSW.Negate(), nodesNE.Negate(), nodesNW.Negate())

			e.add(nodenSE.Negate(), nodesNE.Negate(), walle.Negate())
			e.add(nodenSW.Negate(), nodesNW.Negate(), wallw.Negate())

			e.add(wall.Negate(), nodenSE, nodesNE)
			e.add(wall.Negate(), nodenSE, nodesNW)
			e.add(wall.Negate(), nodenSW, nodesNE)
			e.add(wall.Negate(), nodenSW, nodesNW)
		}
	}
}

// interiorCellCorners forbids the four nodes around a non-border cell from
// all pointing inward.
func (e *encoder) interiorCellCorners() {
	for y := 1; y < e.height-1; y++ {
		for x := 1; x < e.width-1; x++ {
			a := e.nodeNW(x, y).Negate()
			b := e.nodeNE(x, y+1)
			c := e.nodeNE(x+1, y).Negate()
			d := e.nodeNW(x+1, y+1)

			e.add(a.Negate(), b.Negate(), c.Negate())
			e.add(a.Negate(), b.Negate(), d.Negate())
			e.add(a.Negate(), c.Negate(), d.Negate())
			e.add(b.Negate(), c.Negate(), d.Negate())
		}
	}
}

// pathCover makes (cell, position) a bijection: every cell appears at
// exactly one position and every position holds exactly one cell.
func (e *encoder) pathCover() {
	// every cell appears on the path
	for field := 0; field < e.length; field++ {
		clause := make([]sat.Literal, 0, e.length)
		for pos := 0; pos < e.length; pos++ {
			clause = append(clause, e.vars.PathLit(field, pos))
		}
		e.add(clause...)
	}

	// no cell appears twice
	for field := 0; field < e.length; field++ {
		for pos1 := 0; pos1 < e.length; pos1++ {
			for pos2 := pos1 + 1; pos2 < e.length; pos2++ {
				e.add(e.vars.PathLit(field, pos1).Negate(), e.vars.PathLit(field, pos2).Negate())
			}
		}
	}

	// every position holds some cell
	for pos := 0; pos < e.length; pos++ {
		clause := make([]sat.Literal, 0, e.length)
		for field := 0; field < e.length; field++ {
			clause = append(clause, e.vars.PathLit(field, pos))
		}
		e.add(clause...)
	}

	// no position holds two cells
	for pos := 0; pos < e.length; pos++ {
		for field1 := 0; field1 < e.length; field1++ {
			for field2 := field1 + 1; field2 < e.length; field2++ {
				e.add(e.vars.PathLit(field1, pos).Negate(), e.vars.PathLit(field2, pos).Negate())
			}
		}
	}
}

// adjacency allows consecutive path positions only between cardinal
// neighbours.
func (e *encoder) adjacency() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := geometry.Coordinates{X: x, Y: y}
			field := geometry.CellIndex(c, e.width)

			var neighbours []int
			neighbour := make([]bool, e.length)
			neighbour[field] = true
			for _, offset := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				n := c.Offset(offset[0], offset[1])
				if n.Inside(e.width, e.height) {
					index := geometry.CellIndex(n, e.width)
					neighbours = append(neighbours, index)
					neighbour[index] = true
				}
			}

			for pos := 0; pos+1 < e.length; pos++ {
				forward := make([]sat.Literal, 0, len(neighbours)+1)
				forward = append(forward, e.vars.PathLit(field, pos).Negate())
				for _, n := range neighbours {
					forward = append(forward, e.vars.PathLit(n, pos+1))
				}
				e.add(forward...)

				backward := make([]sat.Literal, 0, len(neighbours)+1)
				backward = append(backward, e.vars.PathLit(field, pos+1).Negate())
				for _, n := range neighbours {
					backward = append(backward, e.vars.PathLit(n, pos))
				}
				e.add(backward...)

				for other := 0; other < e.length; other++ {
					if neighbour[other] {
						continue
					}
					e.add(e.vars.PathLit(field, pos).Negate(), e.vars.PathLit(other, pos+1).Negate())
				}
			}
		}
	}
}

// wallBlocksPath forbids consecutive path positions across an installed
// wall.
func (e *encoder) wallBlocksPath() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := geometry.Coordinates{X: x, Y: y}
			field := geometry.CellIndex(c, e.width)

			for _, offset := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				n := c.Offset(offset[0], offset[1])
				if !n.Inside(e.width, e.height) {
					continue
				}
				wall, _ := geometry.WallBetween(c, n)
				litw := e.vars.WallLit(wall)
				neighbourField := geometry.CellIndex(n, e.width)

				for pos := 0; pos+1 < e.length; pos++ {
					e.add(litw.Negate(), e.vars.PathLit(field, pos).Negate(), e.vars.PathLit(neighbourField, pos+1).Negate())
				}
			}
		}
	}
}

// endpoints puts the path's first and last positions on edge cells and
// breaks endpoint symmetry: the entry's cell index is strictly below the
// exit's.
func (e *encoder) endpoints() {
	edgeCells := geometry.EdgeCells(e.width, e.height)

	entryClause := make([]sat.Literal, 0, len(edgeCells))
	exitClause := make([]sat.Literal, 0, len(edgeCells))
	for _, cell := range edgeCells {
		field := geometry.CellIndex(cell, e.width)
		entryClause = append(entryClause, e.vars.PathLit(field, 0))
		exitClause = append(exitClause, e.vars.PathLit(field, e.length-1))
	}
	e.add(entryClause...)
	e.add(exitClause...)

	for _, cell1 := range edgeCells {
		field1 := geometry.CellIndex(cell1, e.width)
		for _, cell2 := range edgeCells {
			field2 := geometry.CellIndex(cell2, e.width)
			if field2 < field1 {
				e.add(e.vars.PathLit(field1, 0).Negate(), e.vars.PathLit(field2, e.length-1).Negate())
			}
		}
	}
}

// borderEndpoints forbids entry or exit at a cell whose border segments are
// all installed as walls. The side loops deliberately stop one cell short:
// the border cell just before the right (bottom) corner, x = width-2
// (y = height-2), gets no clause; the corner clauses carry the corner cells.
// Changing these bounds would change which boards get generated.
func (e *encoder) borderEndpoints() {
	w, h, last := e.width, e.height, e.length-1

	blockEndpoint := func(cell geometry.Coordinates, walls ...geometry.Wall) {
		field := geometry.CellIndex(cell, e.width)
		clause := make([]sat.Literal, 0, len(walls)+1)
		for _, wall := range walls {
			clause = append(clause, e.vars.WallLit(wall).Negate())
		}
		e.add(append(clause, e.vars.PathLit(field, 0).Negate())...)
		e.add(append(clause, e.vars.PathLit(field, last).Negate())...)
	}

	hWall := func(x, y int) geometry.Wall {
		return geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Horizontal}
	}
	vWall := func(x, y int) geometry.Wall {
		return geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Vertical}
	}

	// top and bottom borders
	for x := 1; x < w-2; x++ {
		blockEndpoint(geometry.Coordinates{X: x, Y: 0}, hWall(x, 0))
		blockEndpoint(geometry.Coordinates{X: x, Y: h - 1}, hWall(x, h))
	}

	// left and right borders
	for y := 1; y < h-2; y++ {
		blockEndpoint(geometry.Coordinates{X: 0, Y: y}, vWall(0, y))
		blockEndpoint(geometry.Coordinates{X: w - 1, Y: y}, vWall(w, y))
	}

	// corners: both incident border segments must be installed to block
	blockEndpoint(geometry.Coordinates{X: 0, Y: 0}, vWall(0, 0), hWall(0, 0))
	blockEndpoint(geometry.Coordinates{X: w - 1, Y: 0}, vWall(w, 0), hWall(w-1, 0))
	blockEndpoint(geometry.Coordinates{X: 0, Y: h - 1}, vWall(0, h-1), hWall(0, h))
	blockEndpoint(geometry.Coordinates{X: w - 1, Y: h - 1}, vWall(w, h-1), hWall(w-1, h))
}
