package main

import (
	"math/rand"
	"testing"
)

func TestPriorityQueueOrdering(t *testing.T) {
	q := &PriorityQueue[string]{}
	q.Put("mid", 3)
	q.Put("last", 9)
	q.Put("first", 1)
	q.Put("late", 7)

	want := []string{"first", "mid", "late", "last"}
	for _, expected := range want {
		got, ok := q.Get()
		if !ok {
			t.Fatalf("Queue empty before draining, expected %q", expected)
		}
		if got != expected {
			t.Errorf("Get() = %q, want %q", got, expected)
		}
	}
}

func TestPriorityQueueEmptyGet(t *testing.T) {
	q := &PriorityQueue[int]{}
	if _, ok := q.Get(); ok {
		t.Error("Get on empty queue should report not ok")
	}

	q.Put(42, 1)
	q.Get()
	if _, ok := q.Get(); ok {
		t.Error("Get after draining should report not ok")
	}
}

func TestPriorityQueueNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := &PriorityQueue[float64]{}
	for i := 0; i < 500; i++ {
		p := rng.Float64() * 100
		q.Put(p, p)
	}

	previous := -1.0
	for {
		v, ok := q.Get()
		if !ok {
			break
		}
		if v < previous {
			t.Fatalf("Priorities decreased: %f after %f", v, previous)
		}
		previous = v
	}
}
