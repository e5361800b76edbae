package tilesolver

import "container/heap"

// Frontier is a min-priority queue of SearchNodes keyed by cost
// (f = g + h), with ties broken by insertion order (FIFO) so that
// solves over a fixed move-expansion order are fully deterministic.
// A Frontier belongs to exactly one Solver; it is not safe for
// concurrent use.
type Frontier struct {
	items nodeHeap
	next  int
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push inserts node into the queue.
func (f *Frontier) Push(node *SearchNode) {
	node.seq = f.next
	f.next++
	heap.Push(&f.items, node)
}

// Pop removes and returns the minimum-cost node. It panics if the
// Frontier is empty; callers must check Len first.
func (f *Frontier) Pop() *SearchNode {
	return heap.Pop(&f.items).(*SearchNode)
}

// Len returns the number of nodes currently queued.
func (f *Frontier) Len() int {
	return len(f.items)
}

// nodeHeap implements container/heap.Interface over *SearchNode,
// ordered by (cost, seq) so pops are deterministic among ties.
type nodeHeap []*SearchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*SearchNode))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
