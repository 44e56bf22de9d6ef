package searcher

import (
	"container/heap"

	"splendor/game"
)

type rankedAction struct {
	action   game.Action
	priority int
	seq      int // insertion order, breaks priority ties
}

// actionQueue is a min-heap on priority.
type actionQueue []rankedAction

func (q actionQueue) Len() int { return len(q) }

func (q actionQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q actionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *actionQueue) Push(x any) {
	*q = append(*q, x.(rankedAction))
}

func (q *actionQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// lowestBand pops actions in priority order while they stay within band of the lowest
// priority, returning at most width of them.
func lowestBand(items []rankedAction, band, width int) []game.Action {
	if len(items) == 0 {
		return nil
	}
	q := actionQueue(items)
	heap.Init(&q)

	threshold := q[0].priority + band
	out := make([]game.Action, 0, min(width, len(items)))
	for q.Len() > 0 && len(out) < width {
		item := heap.Pop(&q).(rankedAction)
		if item.priority > threshold {
			break
		}
		out = append(out, item.action)
	}
	return out
}
