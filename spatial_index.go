package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// obstacleEntry wraps an obstacle for R-tree storage
type obstacleEntry struct {
	obstacle Obstacle
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// SpatialIndex manages obstacle spatial queries: candidate lookup during
// grid construction and nearest-edge distance for proximity costs.
type SpatialIndex struct {
	tree  *rtreego.Rtree
	count int
}

// NewSpatialIndex creates a new spatial index over the obstacle set.
func NewSpatialIndex(obstacles []Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	count := 0
	for _, obstacle := range obstacles {
		bbox, err := obstacleBoundingBox(obstacle)
		if err == nil {
			tree.Insert(&obstacleEntry{obstacle: obstacle, bbox: bbox})
			count++
		}
	}

	return &SpatialIndex{tree: tree, count: count}
}

// Count returns the number of indexed obstacles.
func (si *SpatialIndex) Count() int { return si.count }

// CandidatesAt returns the obstacles whose bounding box, padded by margin,
// covers the given point. Containment still has to be confirmed against the
// exact shape.
func (si *SpatialIndex) CandidatesAt(p Point, margin float64) []Obstacle {
	if si.count == 0 {
		return nil
	}

	side := 2 * (margin + floatTolerance)
	bbox, err := rtreego.NewRect(
		rtreego.Point{p.X - margin - floatTolerance, p.Y - margin - floatTolerance},
		[]float64{side, side},
	)
	if err != nil {
		return nil
	}

	results := si.tree.SearchIntersect(bbox)
	obstacles := make([]Obstacle, 0, len(results))
	for _, item := range results {
		entry := item.(*obstacleEntry)
		obstacles = append(obstacles, entry.obstacle)
	}
	return obstacles
}

// NearestEdgeDistance returns the distance from p to the closest obstacle
// edge, refining the bounding-box candidates with exact shape distances.
// Returns +Inf when there are no obstacles.
func (si *SpatialIndex) NearestEdgeDistance(p Point) float64 {
	if si.count == 0 {
		return math.Inf(1)
	}

	// Bounding-box order can disagree with exact edge order, so pull a
	// handful of candidates and take the exact minimum.
	k := 8
	if si.count < k {
		k = si.count
	}
	results := si.tree.NearestNeighbors(k, rtreego.Point{p.X, p.Y})

	nearest := math.Inf(1)
	for _, item := range results {
		entry := item.(*obstacleEntry)
		if d := entry.obstacle.DistanceTo(p); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// obstacleBoundingBox computes the axis-aligned bounding box for an obstacle.
// Degenerate shapes (zero-width rectangles, zero-radius circles) get a tiny
// positive extent because rtreego rejects non-positive side lengths.
func obstacleBoundingBox(obstacle Obstacle) (rtreego.Rect, error) {
	b := obstacle.bound()

	const minSide = 0.01
	width := math.Max(b.Max.X()-b.Min.X(), minSide)
	height := math.Max(b.Max.Y()-b.Min.Y(), minSide)

	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{width, height},
	)
}
