package main

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// CostFunc scores the move between two adjacent cells. prev is the
// predecessor of from in the search tree, nil when from is the start;
// policies that do not care about approach direction ignore it.
type CostFunc func(prev *Point, from, to Point) float64

// HeuristicFunc estimates the remaining cost from a cell to the goal.
type HeuristicFunc func(from, to Point) float64

// EuclideanHeuristic is the straight-line distance estimate used to order
// frontier expansion.
func EuclideanHeuristic(from, to Point) float64 {
	return from.Distance(to)
}

// ProximityCost blends path length with clearance from obstacles and walls:
//
//	cost = f*distance(from, to) + (1-f)/min(obstacleClearance, wallClearance)
//
// shortestPathFactor f in [0, 1]: 1 optimizes purely for length, lower
// values push routes away from obstacle edges and the surface boundary.
// A cell touching an edge costs +Inf and is never chosen while an
// alternative exists.
//
// Known approximation: the straight-line heuristic ignores the proximity
// term, so with f < 1 the search is not strictly admissible and may return
// a slightly longer route that trades length for clearance. That bias is
// intended; do not tighten the heuristic to remove it.
func (g *GridMap) ProximityCost(shortestPathFactor float64) CostFunc {
	return func(_ *Point, from, to Point) float64 {
		cost := shortestPathFactor * from.Distance(to)

		proximityWeight := 1 - shortestPathFactor
		if proximityWeight > 0 {
			clearance := math.Min(g.NearestObstacleDistance(to), g.BoundaryDistance(to))
			if clearance <= 0 {
				return math.Inf(1)
			}
			cost += proximityWeight / clearance
		}
		return cost
	}
}

// turnAngleThreshold is the heading change, in radians, below which a move
// counts as straight.
const turnAngleThreshold = 0.5

// TurnPenaltyCost favors routes with fewer direction changes:
// straight moves cost their length, turns cost an extra 1.0 plus 0.1 per
// radian of heading change. The heading change is measured between the
// incoming segment (prev to from) and the outgoing one (from to to),
// normalized into [0, pi]. Costs are rounded to two decimals.
func TurnPenaltyCost() CostFunc {
	return func(prev *Point, from, to Point) float64 {
		base := from.Distance(to)
		if prev == nil {
			return scalar.Round(base, 2)
		}

		turn := math.Abs(prev.HeadingTo(from) - from.HeadingTo(to))
		if turn > math.Pi {
			turn = 2*math.Pi - turn
		}
		if turn < turnAngleThreshold {
			return scalar.Round(base, 2)
		}
		return scalar.Round(base+1.0+0.1*turn, 2)
	}
}
