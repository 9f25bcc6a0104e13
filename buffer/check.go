package buffer

import "fmt"

// Check walks the piece table and reports the first broken invariant:
// link symmetry, head/tail consistency, zero-length or out-of-bounds pieces,
// and overlap between the live list and the free list.
func (b *Buffer) Check() error {
	a := &b.pieces
	fail := func(format string, args ...any) error {
		return &InvariantError{Op: "check", Msg: fmt.Sprintf(format, args...)}
	}

	live := make([]bool, len(a.nodes))
	prev := nilIndex
	n := 0
	for idx := a.head; idx != nilIndex; idx = a.nodes[idx].next {
		if idx < 0 || idx >= len(a.nodes) {
			return fail("link to slot %d outside [0,%d)", idx, len(a.nodes))
		}
		if live[idx] {
			return fail("cycle through slot %d", idx)
		}
		live[idx] = true
		n++

		nd := a.nodes[idx]
		if nd.prev != prev {
			return fail("slot %d prev=%d, want %d", idx, nd.prev, prev)
		}
		if nd.piece.Length <= 0 {
			return fail("slot %d has length %d", idx, nd.piece.Length)
		}
		if err := b.checkBounds(nd.piece); err != "" {
			return fail("slot %d %s", idx, err)
		}
		prev = idx
	}
	if a.tail != prev {
		return fail("tail=%d, want %d", a.tail, prev)
	}
	if n != a.count {
		return fail("linked count=%d, want %d", n, a.count)
	}

	free := 0
	seen := make([]bool, len(a.nodes))
	for idx := a.free; idx != nilIndex; idx = a.nodes[idx].next {
		if idx < 0 || idx >= len(a.nodes) {
			return fail("free link to slot %d outside [0,%d)", idx, len(a.nodes))
		}
		if live[idx] {
			return fail("slot %d is both linked and free", idx)
		}
		if seen[idx] {
			return fail("cycle in free list through slot %d", idx)
		}
		seen[idx] = true
		free++
	}
	if n+free != len(a.nodes) {
		return fail("%d linked + %d free slots, want %d", n, free, len(a.nodes))
	}
	return nil
}

func (b *Buffer) checkBounds(p Piece) string {
	size := 0
	switch p.Source {
	case SourceOriginal:
		size = len(b.original)
	case SourceAppend:
		size = len(b.append)
	default:
		return fmt.Sprintf("has unknown source %d", p.Source)
	}
	if p.Start < 0 || p.end() > size {
		return fmt.Sprintf("range [%d,%d) outside %s store of %d bytes", p.Start, p.end(), p.Source, size)
	}
	return ""
}
