package main

// NeighborFunc generates the reachable cells adjacent to a point.
type NeighborFunc func(p Point) []Point

// FindPath computes the route from start to goal using A* over whatever
// neighbor, cost, and heuristic functions the caller injects.
//
// The returned path runs start to goal in order. When the goal is
// unreachable the result is (nil, false); unreachability is not an error.
// A start that quantizes equal to the goal yields a single-element path.
func FindPath(start, goal Point, neighbors NeighborFunc, cost CostFunc, heuristic HeuristicFunc) ([]Point, bool) {
	if start.SamePlace(goal) {
		return []Point{start}, true
	}

	frontier := &PriorityQueue[Point]{}
	frontier.Put(start, 0)

	// Search state is owned by this call alone; concurrent searches over
	// the same map never share it.
	cameFrom := make(map[GridKey]Point)
	costSoFar := map[GridKey]float64{start.Key(): 0}
	goalKey := goal.Key()

	for {
		current, ok := frontier.Get()
		if !ok {
			// Frontier exhausted without reaching the goal.
			return nil, false
		}
		currentKey := current.Key()

		if currentKey == goalKey {
			return reconstructPath(cameFrom, start, current)
		}

		// The turn-penalty policy needs the predecessor to measure the
		// incoming heading; the start has none.
		var prev *Point
		if predecessor, found := cameFrom[currentKey]; found {
			prev = &predecessor
		}

		for _, next := range neighbors(current) {
			nextKey := next.Key()
			newCost := costSoFar[currentKey] + cost(prev, current, next)

			known, seen := costSoFar[nextKey]
			if seen && newCost >= known {
				continue
			}
			costSoFar[nextKey] = newCost
			cameFrom[nextKey] = current
			frontier.Put(next, newCost+heuristic(next, goal))
		}
	}
}

// reconstructPath walks the predecessor chain backward from the reached
// goal cell and reverses it into start-to-goal order. A broken chain yields
// (nil, false) rather than a partial path.
func reconstructPath(cameFrom map[GridKey]Point, start, reached Point) ([]Point, bool) {
	path := []Point{reached}
	current := reached
	for !current.SamePlace(start) {
		predecessor, ok := cameFrom[current.Key()]
		if !ok {
			return nil, false
		}
		path = append(path, predecessor)
		current = predecessor
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
