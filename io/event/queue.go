// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"fmt"
	"strings"
)

// Order is the playback order of a Queue.
type Order uint8

const (
	// LIFO returns the most recently pushed item first. Several events
	// arriving in one dispatch are played back in reverse.
	LIFO Order = iota
	// FIFO returns items in arrival order.
	FIFO
)

// Queue holds events between the dispatch step that produces them and
// the poll step that consumes them.
type Queue[T any] struct {
	order Order
	items []T
	head  int
}

func NewQueue[T any](o Order) *Queue[T] {
	return &Queue[T]{order: o}
}

// Push appends items in arrival order.
func (q *Queue[T]) Push(items ...T) {
	q.items = append(q.items, items...)
}

// Pop removes the next item according to the queue order.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	var v T
	switch q.order {
	case FIFO:
		v = q.items[q.head]
		q.items[q.head] = zero
		q.head++
	default:
		n := len(q.items) - 1
		v = q.items[n]
		q.items[n] = zero
		q.items = q.items[:n]
	}
	if q.Len() == 0 {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

func (q *Queue[T]) Order() Order {
	return q.order
}

// ParseOrder parses "lifo" or "fifo", ignoring case.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "lifo", "":
		return LIFO, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("event: unknown queue order %q", s)
	}
}

func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		panic("invalid Order")
	}
}
