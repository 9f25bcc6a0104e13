package buffer

import "iter"

// nilIndex marks "no neighbour" in node links and an empty head/tail/free.
const nilIndex = -1

type node struct {
	piece Piece
	next  int
	prev  int
}

// arena is an index-linked doubly linked list of pieces. Removed slots are
// threaded onto a singly linked free list through next and reused before the
// backing slice grows.
type arena struct {
	nodes []node
	head  int
	tail  int
	free  int
	count int
}

func newArena(first Piece) arena {
	return arena{
		nodes: []node{{piece: first, next: nilIndex, prev: nilIndex}},
		head:  0,
		tail:  0,
		free:  nilIndex,
		count: 1,
	}
}

func newEmptyArena(capacity int) arena {
	return arena{
		nodes: make([]node, 0, capacity),
		head:  nilIndex,
		tail:  nilIndex,
		free:  nilIndex,
	}
}

// len returns the number of linked pieces.
func (a *arena) len() int { return a.count }

// slots returns the number of allocated slots, linked or free.
func (a *arena) slots() int { return len(a.nodes) }

func (a *arena) at(idx int) *node {
	if idx < 0 || idx >= len(a.nodes) {
		violation("arena", "index %d out of bounds [0,%d)", idx, len(a.nodes))
	}
	return &a.nodes[idx]
}

// insertBefore links a new piece in front of pivot and returns its index.
// pivot == nilIndex appends at the tail.
func (a *arena) insertBefore(pivot, start, length int, src Source) int {
	if length <= 0 {
		violation("arena", "insert of piece with length %d", length)
	}

	prev := a.tail
	if pivot != nilIndex {
		prev = a.at(pivot).prev
	}
	n := node{
		piece: Piece{Start: start, Length: length, Source: src},
		next:  pivot,
		prev:  prev,
	}

	idx := a.free
	if idx != nilIndex {
		a.free = a.nodes[idx].next
		a.nodes[idx] = n
	} else {
		idx = len(a.nodes)
		a.nodes = append(a.nodes, n)
	}

	if prev != nilIndex {
		a.nodes[prev].next = idx
	} else {
		a.head = idx
	}
	if pivot != nilIndex {
		a.nodes[pivot].prev = idx
	} else {
		a.tail = idx
	}
	a.count++
	return idx
}

// remove unlinks idx, recycles its slot and returns a copy of its piece.
func (a *arena) remove(idx int) Piece {
	n := *a.at(idx)

	if n.prev != nilIndex {
		a.nodes[n.prev].next = n.next
	} else {
		a.head = n.next
	}
	if n.next != nilIndex {
		a.nodes[n.next].prev = n.prev
	} else {
		a.tail = n.prev
	}

	a.nodes[idx] = node{next: a.free, prev: nilIndex}
	a.free = idx
	a.count--
	return n.piece
}

// all walks the list from head. Mutating the arena mid-walk is undefined.
func (a *arena) all() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		for idx := a.head; idx != nilIndex; idx = a.nodes[idx].next {
			if !yield(a.nodes[idx].piece) {
				return
			}
		}
	}
}

// indexed walks the list from head yielding slot indices with their pieces.
func (a *arena) indexed() iter.Seq2[int, Piece] {
	return func(yield func(int, Piece) bool) {
		for idx := a.head; idx != nilIndex; idx = a.nodes[idx].next {
			if !yield(idx, a.nodes[idx].piece) {
				return
			}
		}
	}
}
