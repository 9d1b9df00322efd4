package routing

import "container/heap"

type frontierItem[ID comparable] struct {
	node ID
	g    float64
	f    float64
	seq  uint64
}

// frontier is a binary min-heap on f. Equal f values pop in insertion order.
// Superseded entries stay in the heap and are skipped when popped.
type frontier[ID comparable] struct {
	items []frontierItem[ID]
	seq   uint64
}

func (q *frontier[ID]) Len() int { return len(q.items) }

func (q *frontier[ID]) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *frontier[ID]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *frontier[ID]) Push(x any) {
	q.items = append(q.items, x.(frontierItem[ID]))
}

func (q *frontier[ID]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *frontier[ID]) push(node ID, g, f float64) {
	q.seq++
	heap.Push(q, frontierItem[ID]{node: node, g: g, f: f, seq: q.seq})
}

func (q *frontier[ID]) pop() frontierItem[ID] {
	return heap.Pop(q).(frontierItem[ID])
}
