package main

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SafeAreaMargin is the inflation applied to obstacle containment checks
// when callers ask for a safety margin, keeping routes clear of edges.
const SafeAreaMargin = 0.35

// Obstacle is a geometric region marking non-walkable space. The shape set
// is closed: RectangleObstacle and CircleObstacle are the only
// implementations (the unexported bound method keeps it that way).
type Obstacle interface {
	// Contains reports whether p lies within the shape. With safeArea set
	// the shape is inflated by SafeAreaMargin first.
	Contains(p Point, safeArea bool) bool

	// ClosestEdgePoint returns the nearest point on the shape's boundary.
	ClosestEdgePoint(p Point) Point

	// DistanceTo returns the shortest distance from p to the shape,
	// zero if p is inside.
	DistanceTo(p Point) float64

	// AreaPoints enumerates points covering the shape's footprint at the
	// given spacing, for marking and visualization.
	AreaPoints(step float64) []Point

	// Kind returns the wire discriminator for the shape variant.
	Kind() string

	bound() orb.Bound
}

// Wire discriminators, matching the floor plan document format.
const (
	KindRectangle = "RectangleObstacle"
	KindCircle    = "Circle"
)

// RectangleObstacle is an axis-aligned rectangle. TopLeft carries the
// smaller coordinates on both axes. Fields are read-only render data.
type RectangleObstacle struct {
	TopLeft     Point `json:"topLeft"`
	BottomRight Point `json:"bottomRight"`
}

// NewRectangleObstacle validates corner ordering and builds the rectangle.
func NewRectangleObstacle(topLeft, bottomRight Point) (*RectangleObstacle, error) {
	if topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		return nil, fmt.Errorf("invalid rectangle: topLeft (%.2f, %.2f) must not exceed bottomRight (%.2f, %.2f)",
			topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y)
	}
	return &RectangleObstacle{TopLeft: topLeft, BottomRight: bottomRight}, nil
}

func (r *RectangleObstacle) Kind() string { return KindRectangle }

func (r *RectangleObstacle) bound() orb.Bound {
	return orb.Bound{
		Min: r.TopLeft.orb(),
		Max: r.BottomRight.orb(),
	}
}

// Contains reports whether p lies within the rectangle, optionally inflated
// by the safety margin.
func (r *RectangleObstacle) Contains(p Point, safeArea bool) bool {
	b := r.bound()
	if safeArea {
		b = b.Pad(SafeAreaMargin)
	}
	return b.Contains(p.orb())
}

// ClosestEdgePoint returns the nearest point on the rectangle's boundary.
// For outside points that is the clamped projection; for inside points the
// nearest of the four sides.
func (r *RectangleObstacle) ClosestEdgePoint(p Point) Point {
	b := r.bound()
	if !b.Contains(p.orb()) {
		cx := clamp(p.X, b.Min.X(), b.Max.X())
		cy := clamp(p.Y, b.Min.Y(), b.Max.Y())
		return NewPoint(cx, cy)
	}

	left := p.X - b.Min.X()
	right := b.Max.X() - p.X
	bottom := p.Y - b.Min.Y()
	top := b.Max.Y() - p.Y

	smallest := math.Min(math.Min(left, right), math.Min(bottom, top))
	switch smallest {
	case left:
		return NewPoint(b.Min.X(), p.Y)
	case right:
		return NewPoint(b.Max.X(), p.Y)
	case bottom:
		return NewPoint(p.X, b.Min.Y())
	default:
		return NewPoint(p.X, b.Max.Y())
	}
}

// DistanceTo returns the shortest distance from p to the rectangle,
// zero if p is inside.
func (r *RectangleObstacle) DistanceTo(p Point) float64 {
	if r.Contains(p, false) {
		return 0
	}
	return p.Distance(r.ClosestEdgePoint(p))
}

// AreaPoints enumerates non-walkable points covering the rectangle at the
// given spacing.
func (r *RectangleObstacle) AreaPoints(step float64) []Point {
	var points []Point
	for y := r.TopLeft.Y; y <= r.BottomRight.Y+floatTolerance; y += step {
		for x := r.TopLeft.X; x <= r.BottomRight.X+floatTolerance; x += step {
			point := NewPoint(x, y)
			point.Walkable = false
			points = append(points, point)
		}
	}
	return points
}

// CircleObstacle is a circular region. Fields are read-only render data.
type CircleObstacle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// NewCircleObstacle validates the radius and builds the circle.
func NewCircleObstacle(center Point, radius float64) (*CircleObstacle, error) {
	if radius < 0 {
		return nil, fmt.Errorf("invalid circle: radius %.2f must be non-negative", radius)
	}
	return &CircleObstacle{Center: center, Radius: radius}, nil
}

func (c *CircleObstacle) Kind() string { return KindCircle }

func (c *CircleObstacle) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Max: orb.Point{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
}

// Contains reports whether p lies within the circle, optionally inflated by
// the safety margin.
func (c *CircleObstacle) Contains(p Point, safeArea bool) bool {
	radius := c.Radius
	if safeArea {
		radius += SafeAreaMargin
	}
	return planar.Distance(c.Center.orb(), p.orb()) <= radius
}

// ClosestEdgePoint returns the nearest point on the circle's boundary.
// A point at the exact center projects onto the rightmost boundary point.
func (c *CircleObstacle) ClosestEdgePoint(p Point) Point {
	dist := c.Center.Distance(p)
	if dist == 0 {
		return NewPoint(c.Center.X+c.Radius, c.Center.Y)
	}
	scale := c.Radius / dist
	return NewPoint(
		c.Center.X+(p.X-c.Center.X)*scale,
		c.Center.Y+(p.Y-c.Center.Y)*scale,
	)
}

// DistanceTo returns the shortest distance from p to the circle,
// zero if p is inside.
func (c *CircleObstacle) DistanceTo(p Point) float64 {
	dist := c.Center.Distance(p) - c.Radius
	if dist < 0 {
		return 0
	}
	return dist
}

// AreaPoints enumerates non-walkable points covering the circle at the given
// spacing.
func (c *CircleObstacle) AreaPoints(step float64) []Point {
	var points []Point
	b := c.bound()
	for y := b.Min.Y(); y <= b.Max.Y()+floatTolerance; y += step {
		for x := b.Min.X(); x <= b.Max.X()+floatTolerance; x += step {
			point := NewPoint(x, y)
			if !c.Contains(point, false) {
				continue
			}
			point.Walkable = false
			points = append(points, point)
		}
	}
	return points
}

const floatTolerance = 1e-9

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
