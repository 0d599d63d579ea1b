package main

import (
	"fmt"
	"math"
)

// DefaultStep is the default grid spacing between adjacent cells.
const DefaultStep = 0.1

// GridMap discretizes a rectangular floor surface into a lattice of cells
// and answers local movement queries against its obstacle set.
//
// The map is built once at construction and never mutated afterward, so it
// may be shared by concurrent searches. Changing the obstacle set requires
// building a new map.
type GridMap struct {
	Width     float64
	Height    float64
	Step      float64
	Obstacles []Obstacle

	// Cells[j][i] is the cell at (i*Step, j*Step). Its Walkable flag
	// records exact obstacle containment, with no safety margin.
	Cells [][]Point

	index *SpatialIndex
}

// NewGridMap validates the surface parameters and builds the lattice.
// Every cell is tested for containment against the obstacle set; a cell is
// non-walkable if any obstacle contains it.
func NewGridMap(width, height float64, obstacles []Obstacle, step float64) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface extent %.2f x %.2f: both sides must be positive", width, height)
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid grid step %.2f: must be positive", step)
	}

	g := &GridMap{
		Width:     width,
		Height:    height,
		Step:      step,
		Obstacles: obstacles,
		index:     NewSpatialIndex(obstacles),
	}
	g.build()
	return g, nil
}

// build fills the cell lattice. Upper bounds are inclusive: cells at exactly
// Width/Height are generated when the extent is a multiple of the step.
func (g *GridMap) build() {
	cols := int(math.Floor(g.Width/g.Step+floatTolerance)) + 1
	rows := int(math.Floor(g.Height/g.Step+floatTolerance)) + 1

	g.Cells = make([][]Point, rows)
	for j := 0; j < rows; j++ {
		row := make([]Point, cols)
		for i := 0; i < cols; i++ {
			cell := NewPoint(float64(i)*g.Step, float64(j)*g.Step)
			cell.Walkable = !g.insideAnyObstacle(cell)
			row[i] = cell
		}
		g.Cells[j] = row
	}
}

// insideAnyObstacle tests exact containment, narrowing with the spatial
// index before touching shape geometry.
func (g *GridMap) insideAnyObstacle(p Point) bool {
	for _, obstacle := range g.index.CandidatesAt(p, g.Step) {
		if obstacle.Contains(p, false) {
			return true
		}
	}
	return false
}

// Neighbors returns the grid-adjacent cells of p that are inside the
// surface and clear of obstacles.
//
// Walkability here is re-checked against the obstacle set with the safety
// margin applied, not read from the flag computed at build time. The margin
// is what keeps returned routes off obstacle edges; the stored flag stays an
// exact record of containment for rendering and marking.
//
// Adjacency is 8-connected. Diagonal moves additionally require both
// orthogonally adjacent cells to be clear, so routes cannot cut corners.
func (g *GridMap) Neighbors(p Point) []Point {
	i := int(math.Round(p.X / g.Step))
	j := int(math.Round(p.Y / g.Step))

	offsets := [][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // orthogonal
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // diagonal
	}

	neighbors := make([]Point, 0, len(offsets))
	for n, d := range offsets {
		ni, nj := i+d[0], j+d[1]
		if !g.cellClear(ni, nj) {
			continue
		}
		if n >= 4 && (!g.cellClear(i+d[0], j) || !g.cellClear(i, j+d[1])) {
			continue
		}
		neighbors = append(neighbors, g.Cells[nj][ni])
	}
	return neighbors
}

// cellClear reports whether the cell at column i, row j exists and is clear
// of obstacles with the safety margin applied.
func (g *GridMap) cellClear(i, j int) bool {
	if j < 0 || j >= len(g.Cells) || i < 0 || i >= len(g.Cells[j]) {
		return false
	}
	cell := g.Cells[j][i]
	if !cell.Walkable {
		return false
	}
	for _, obstacle := range g.index.CandidatesAt(cell, SafeAreaMargin+g.Step) {
		if obstacle.Contains(cell, true) {
			return false
		}
	}
	return true
}

// BoundaryDistance returns the distance from p to the nearest of the four
// surface edges.
func (g *GridMap) BoundaryDistance(p Point) float64 {
	horizontal := math.Min(p.X, g.Width-p.X)
	vertical := math.Min(p.Y, g.Height-p.Y)
	return math.Min(horizontal, vertical)
}

// NearestObstacleDistance returns the distance from p to the closest
// obstacle edge, +Inf when the map has no obstacles.
func (g *GridMap) NearestObstacleDistance(p Point) float64 {
	return g.index.NearestEdgeDistance(p)
}

// CellAt returns the cell nearest to the given surface position.
func (g *GridMap) CellAt(x, y float64) (Point, bool) {
	i := int(math.Round(x / g.Step))
	j := int(math.Round(y / g.Step))
	if j < 0 || j >= len(g.Cells) || i < 0 || i >= len(g.Cells[j]) {
		return Point{}, false
	}
	return g.Cells[j][i], true
}
