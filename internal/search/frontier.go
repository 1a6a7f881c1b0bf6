// Package search implements turn-quantized path search and move-range flood
// fills over a world.Grid.
package search

import "math"

// Frontier is a bucket priority queue of cell indices. Each bucket is an
// intrusive singly linked chain threaded through a per-cell next index, so a
// cell can sit in at most one chain. Priorities are small non-negative
// integers (distance plus heuristic), which keeps the bucket array short.
type Frontier struct {
	buckets []int // chain head per priority, -1 if empty
	next    []int // next cell in the same chain, -1 at the tail
	count   int
	minimum int
}

// NewFrontier returns an empty frontier for a grid of the given cell count.
func NewFrontier(cells int) *Frontier {
	f := &Frontier{minimum: math.MaxInt}
	f.Resize(cells)
	return f
}

// Resize adapts the per-cell storage to a new cell count and clears the queue.
func (f *Frontier) Resize(cells int) {
	if cap(f.next) >= cells {
		f.next = f.next[:cells]
	} else {
		f.next = make([]int, cells)
	}
	for i := range f.next {
		f.next[i] = -1
	}
	f.Clear()
}

// Len returns the number of queued cells.
func (f *Frontier) Len() int {
	return f.count
}

// Enqueue adds a cell with the given priority, which must not be negative.
func (f *Frontier) Enqueue(cell, priority int) {
	f.count++
	f.link(cell, priority)
}

func (f *Frontier) link(cell, priority int) {
	if priority < f.minimum {
		f.minimum = priority
	}
	for priority >= len(f.buckets) {
		f.buckets = append(f.buckets, -1)
	}
	f.next[cell] = f.buckets[priority]
	f.buckets[priority] = cell
}

// Dequeue removes and returns a cell with the lowest priority. Cells of equal
// priority come out in last-in first-out order. An empty frontier returns
// (-1, false).
func (f *Frontier) Dequeue() (int, bool) {
	if f.count == 0 {
		return -1, false
	}
	for ; f.minimum < len(f.buckets); f.minimum++ {
		cell := f.buckets[f.minimum]
		if cell >= 0 {
			f.buckets[f.minimum] = f.next[cell]
			f.next[cell] = -1
			f.count--
			return cell, true
		}
	}
	// Unreachable while count matches the chains.
	f.count = 0
	return -1, false
}

// Change moves a queued cell from oldPriority to newPriority. If the cell is
// not found in the old chain it is enqueued as new.
func (f *Frontier) Change(cell, oldPriority, newPriority int) {
	if !f.unlink(cell, oldPriority) {
		f.Enqueue(cell, newPriority)
		return
	}
	f.link(cell, newPriority)
}

func (f *Frontier) unlink(cell, priority int) bool {
	if priority < 0 || priority >= len(f.buckets) {
		return false
	}
	cur := f.buckets[priority]
	if cur == cell {
		f.buckets[priority] = f.next[cell]
		f.next[cell] = -1
		return true
	}
	for cur >= 0 {
		nxt := f.next[cur]
		if nxt == cell {
			f.next[cur] = f.next[cell]
			f.next[cell] = -1
			return true
		}
		cur = nxt
	}
	return false
}

// Clear empties the queue. Bucket capacity is kept for the next search.
func (f *Frontier) Clear() {
	f.buckets = f.buckets[:0]
	f.count = 0
	f.minimum = math.MaxInt
}
