package search

import "github.com/inenovsk1/gridpath/grid"

// openItem is one entry in the A* open-set heap.
type openItem struct {
	cell   grid.Coord
	fScore int
	order  int // insertion sequence, breaks fScore ties oldest-first
	index  int // position in the heap, maintained by heap.Interface
}

// openPQ is a min-heap of open-set entries ordered by fScore, with
// insertion order as the tie-break so expansion is deterministic.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}
	return pq[i].order < pq[j].order
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
