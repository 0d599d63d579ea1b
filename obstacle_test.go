package main

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func mustRectangle(t *testing.T, x1, y1, x2, y2 float64) *RectangleObstacle {
	t.Helper()
	r, err := NewRectangleObstacle(NewPoint(x1, y1), NewPoint(x2, y2))
	if err != nil {
		t.Fatalf("NewRectangleObstacle: %v", err)
	}
	return r
}

func mustCircle(t *testing.T, cx, cy, radius float64) *CircleObstacle {
	t.Helper()
	c, err := NewCircleObstacle(NewPoint(cx, cy), radius)
	if err != nil {
		t.Fatalf("NewCircleObstacle: %v", err)
	}
	return c
}

func TestRectangleValidation(t *testing.T) {
	if _, err := NewRectangleObstacle(NewPoint(2, 2), NewPoint(1, 1)); err == nil {
		t.Error("Expected error for topLeft past bottomRight")
	}
	if _, err := NewRectangleObstacle(NewPoint(1, 1), NewPoint(1, 1)); err != nil {
		t.Errorf("Degenerate but ordered rectangle should build: %v", err)
	}
}

func TestCircleValidation(t *testing.T) {
	if _, err := NewCircleObstacle(NewPoint(0, 0), -1); err == nil {
		t.Error("Expected error for negative radius")
	}
	if _, err := NewCircleObstacle(NewPoint(0, 0), 0); err != nil {
		t.Errorf("Zero radius circle should build: %v", err)
	}
}

func TestRectangleContains(t *testing.T) {
	r := mustRectangle(t, 1, 1, 3, 2)

	if !r.Contains(NewPoint(2, 1.5), false) {
		t.Error("Interior point should be contained")
	}
	if r.Contains(NewPoint(0.9, 1.5), false) {
		t.Error("Outside point should not be contained without margin")
	}
	if !r.Contains(NewPoint(0.8, 1.5), true) {
		t.Error("Point inside the safety margin should be contained with safeArea")
	}
	if r.Contains(NewPoint(0.2, 0.2), true) {
		t.Error("Far point should not be contained even with safeArea")
	}
}

func TestRectangleClosestEdgePoint(t *testing.T) {
	r := mustRectangle(t, 1, 1, 3, 2)

	outside := r.ClosestEdgePoint(NewPoint(0, 1.5))
	if !outside.SamePlace(NewPoint(1, 1.5)) {
		t.Errorf("Closest edge from outside = (%v, %v), want (1, 1.5)", outside.X, outside.Y)
	}

	inside := r.ClosestEdgePoint(NewPoint(1.2, 1.5))
	if !inside.SamePlace(NewPoint(1, 1.5)) {
		t.Errorf("Closest edge from inside = (%v, %v), want (1, 1.5)", inside.X, inside.Y)
	}

	corner := r.ClosestEdgePoint(NewPoint(4, 3))
	if !corner.SamePlace(NewPoint(3, 2)) {
		t.Errorf("Closest edge past corner = (%v, %v), want (3, 2)", corner.X, corner.Y)
	}
}

func TestRectangleDistanceTo(t *testing.T) {
	r := mustRectangle(t, 1, 1, 3, 2)

	if d := r.DistanceTo(NewPoint(0, 1.5)); !scalar.EqualWithinAbs(d, 1, 1e-9) {
		t.Errorf("DistanceTo = %f, want 1", d)
	}
	if d := r.DistanceTo(NewPoint(2, 1.5)); d != 0 {
		t.Errorf("DistanceTo inside = %f, want 0", d)
	}
}

func TestCircleContains(t *testing.T) {
	c := mustCircle(t, 2, 2, 1)

	if !c.Contains(NewPoint(2.5, 2), false) {
		t.Error("Interior point should be contained")
	}
	if c.Contains(NewPoint(3.5, 2), false) {
		t.Error("Outside point should not be contained without margin")
	}
	if !c.Contains(NewPoint(3.2, 2), true) {
		t.Error("Point inside the safety margin should be contained with safeArea")
	}
}

func TestCircleClosestEdgePoint(t *testing.T) {
	c := mustCircle(t, 2, 2, 1)

	edge := c.ClosestEdgePoint(NewPoint(4, 2))
	if !edge.SamePlace(NewPoint(3, 2)) {
		t.Errorf("Closest edge = (%v, %v), want (3, 2)", edge.X, edge.Y)
	}

	// The exact center has no direction; it projects to a fixed boundary point.
	center := c.ClosestEdgePoint(NewPoint(2, 2))
	if d := c.Center.Distance(center); !scalar.EqualWithinAbs(d, 1, 1e-9) {
		t.Errorf("Center projection should land on the boundary, got distance %f", d)
	}
}

func TestCircleDistanceTo(t *testing.T) {
	c := mustCircle(t, 2, 2, 1)

	if d := c.DistanceTo(NewPoint(4, 2)); !scalar.EqualWithinAbs(d, 1, 1e-9) {
		t.Errorf("DistanceTo = %f, want 1", d)
	}
	if d := c.DistanceTo(NewPoint(2.3, 2)); d != 0 {
		t.Errorf("DistanceTo inside = %f, want 0", d)
	}
}

func TestAreaPointsCoverShapes(t *testing.T) {
	r := mustRectangle(t, 0, 0, 1, 1)
	rectPoints := r.AreaPoints(0.5)
	if len(rectPoints) != 9 {
		t.Errorf("Rectangle area points = %d, want 9 for a 1x1 footprint at 0.5", len(rectPoints))
	}
	for _, p := range rectPoints {
		if p.Walkable {
			t.Errorf("Area point (%v, %v) should be non-walkable", p.X, p.Y)
		}
		if !r.Contains(p, false) {
			t.Errorf("Area point (%v, %v) should lie inside the rectangle", p.X, p.Y)
		}
	}

	c := mustCircle(t, 0, 0, 1)
	circlePoints := c.AreaPoints(0.5)
	if len(circlePoints) == 0 {
		t.Fatal("Circle area points should not be empty")
	}
	for _, p := range circlePoints {
		if !c.Contains(p, false) {
			t.Errorf("Area point (%v, %v) should lie inside the circle", p.X, p.Y)
		}
	}
}

func TestObstacleKinds(t *testing.T) {
	if kind := mustRectangle(t, 0, 0, 1, 1).Kind(); kind != KindRectangle {
		t.Errorf("Rectangle kind = %q, want %q", kind, KindRectangle)
	}
	if kind := mustCircle(t, 0, 0, 1).Kind(); kind != KindCircle {
		t.Errorf("Circle kind = %q, want %q", kind, KindCircle)
	}
}
