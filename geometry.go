package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a position on a floor surface. Points are value types:
// the engine copies them freely and never mutates one after construction.
//
// Coordinates are normalized to two decimals once, at construction, so there
// is a single canonical representation; identity comparisons additionally
// quantize to one decimal (see Key). Raw floats coming out of grid arithmetic
// like 0.1*3 would otherwise make the same cell hash to different keys.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Heading  float64 `json:"heading,omitempty"`
	Walkable bool    `json:"-"`
	Name     string  `json:"name,omitempty"`
}

// NewPoint creates a walkable point with normalized coordinates.
func NewPoint(x, y float64) Point {
	return Point{
		X:        scalar.Round(x, 2),
		Y:        scalar.Round(y, 2),
		Walkable: true,
	}
}

// GridKey is the quantized identity of a point: coordinates rounded to the
// nearest 0.1. Two points whose raw coordinates differ by less than the
// quantization step share a key and are treated as the same place.
type GridKey struct {
	X, Y int
}

// Key returns the quantized map identity of the point.
func (p Point) Key() GridKey {
	return GridKey{
		X: int(math.Round(p.X * 10)),
		Y: int(math.Round(p.Y * 10)),
	}
}

// SamePlace reports whether two points quantize to the same location.
func (p Point) SamePlace(other Point) bool {
	return p.Key() == other.Key()
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return planar.Distance(p.orb(), other.orb())
}

// HeadingTo returns the angle of the segment from p to other, in radians.
func (p Point) HeadingTo(other Point) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

func (p Point) orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// PathLength sums the segment distances along a sequence of points.
func PathLength(path []Point) float64 {
	var total float64
	for i := 0; i < len(path)-1; i++ {
		total += path[i].Distance(path[i+1])
	}
	return total
}
