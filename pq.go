package main

import "container/heap"

// PriorityQueue is a float-keyed min-heap used as the A* frontier.
// Ordering among equal priorities is unspecified.
type PriorityQueue[T any] struct {
	items pqItems[T]
}

// Put inserts a value with the given priority.
func (q *PriorityQueue[T]) Put(value T, priority float64) {
	heap.Push(&q.items, pqItem[T]{value: value, priority: priority})
}

// Get removes and returns the value with the smallest priority. The second
// return value is false when the queue is empty; Get never panics.
func (q *PriorityQueue[T]) Get() (T, bool) {
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	item := heap.Pop(&q.items).(pqItem[T])
	return item.value, true
}

// Len returns the number of queued values.
func (q *PriorityQueue[T]) Len() int { return q.items.Len() }

type pqItem[T any] struct {
	value    T
	priority float64
}

// pqItems implements heap.Interface over (priority, value) pairs.
type pqItems[T any] []pqItem[T]

func (h pqItems[T]) Len() int           { return len(h) }
func (h pqItems[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h pqItems[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pqItems[T]) Push(x interface{}) {
	*h = append(*h, x.(pqItem[T]))
}

func (h *pqItems[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
