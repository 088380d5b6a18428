package skeleton

import "container/heap"

// eventQueue is a min-heap over events keyed by distance ascending, grounded
// on the container/heap priority-queue pattern katalvlaran-lvlath/dijkstra
// and katalvlaran-lvlath/prim_kruskal use for their own distance-ordered
// frontiers: push every candidate as it's discovered, and let stale entries
// - here, events whose participants were invalidated by an earlier pop -
// simply be skipped when popped rather than removed in place. No
// decrease-key operation is needed, matching spec.md §4.5.
type eventQueue struct {
	items []*queueItem
	seq   int
}

// queueItem pairs an event with the order it was inserted, so that equal
// distances break ties by insertion order (heap.Interface only guarantees a
// partial order; the seq field makes Less total).
type queueItem struct {
	ev  event
	seq int
}

func newEventQueue() *eventQueue {
	return &eventQueue{}
}

// put inserts e into the queue. put(nil) is a no-op, matching spec.md §4.5.
func (q *eventQueue) put(e event) {
	if e == nil {
		return
	}
	heap.Push(q, &queueItem{ev: e, seq: q.seq})
	q.seq++
}

// putAll inserts each element of es in turn, skipping nils.
func (q *eventQueue) putAll(es []event) {
	for _, e := range es {
		q.put(e)
	}
}

// get removes and returns the minimum-distance event, or nil if empty.
func (q *eventQueue) get() event {
	if q.Len() == 0 {
		return nil
	}
	item := heap.Pop(q).(*queueItem)
	return item.ev
}

func (q *eventQueue) empty() bool {
	return q.Len() == 0
}

// heap.Interface implementation.

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	di, dj := q.items[i].ev.distanceOf(), q.items[j].ev.distanceOf()
	if di != dj {
		return di < dj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *eventQueue) Push(x any) {
	q.items = append(q.items, x.(*queueItem))
}

func (q *eventQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}
