package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/petal/internal/grapheme"
)

// Insert inserts text at byte offset position of the logical text.
//
// position must lie in [0, Len()] on a UTF-8 rune start; anything else
// panics with *InvariantError. Inserting "" is a no-op.
func (b *Buffer) Insert(text string, position int) {
	if text == "" {
		return
	}
	if position < 0 {
		violation("insert", "position %d is negative", position)
	}

	if b.pieces.len() == 0 {
		if position != 0 {
			violation("insert", "position %d past end of empty text", position)
		}
		start := b.grow(text)
		b.pieces.insertBefore(nilIndex, start, len(text), SourceAppend)
		return
	}

	idx, off, p, ok := b.locate(position, true)
	if !ok {
		violation("insert", "position %d past end of text (%d bytes)", position, b.Len())
	}
	if off < p.Length && !utf8.RuneStart(b.Bytes(p)[off]) {
		violation("insert", "position %d splits a UTF-8 sequence", position)
	}

	start := b.grow(text)
	next := b.pieces.at(idx).next
	b.pieces.remove(idx)
	if off > 0 {
		b.pieces.insertBefore(next, p.Start, off, p.Source)
	}
	b.pieces.insertBefore(next, start, len(text), SourceAppend)
	if off < p.Length {
		b.pieces.insertBefore(next, p.Start+off, p.Length-off, p.Source)
	}
}

// Remove deletes the grapheme cluster whose first byte is at position.
// A cluster whose bytes continue into following pieces is removed whole.
//
// position must address the start of an existing cluster; removing at or
// past the end of the text panics with *InvariantError.
func (b *Buffer) Remove(position int) {
	if position < 0 {
		violation("remove", "position %d is negative", position)
	}
	idx, off, p, ok := b.locate(position, false)
	if !ok {
		violation("remove", "position %d at or past end of text (%d bytes)", position, b.Len())
	}
	if !utf8.RuneStart(b.Bytes(p)[off]) {
		violation("remove", "position %d splits a UTF-8 sequence", position)
	}

	b.removeBytes(idx, off, b.clusterLen(idx, off))
}

// grow appends text to the append store and returns its start offset.
func (b *Buffer) grow(text string) int {
	start := len(b.append)
	b.append = append(b.append, text...)
	return start
}

// locate finds the piece holding byte offset position. With atEnd set, a
// position equal to a piece's end resolves to that piece (insert semantics);
// otherwise the piece must contain position strictly.
func (b *Buffer) locate(position int, atEnd bool) (idx, off int, p Piece, ok bool) {
	acc := 0
	for i, piece := range b.pieces.indexed() {
		end := acc + piece.Length
		if position < end || (atEnd && position == end) {
			return i, position - acc, piece, true
		}
		acc = end
	}
	return nilIndex, 0, Piece{}, false
}

// clusterLen measures the grapheme cluster starting off bytes into the piece
// at idx, reading into following pieces while the cluster is undetermined.
func (b *Buffer) clusterLen(idx, off int) int {
	buf := b.Bytes(b.pieces.at(idx).piece)[off:]
	for {
		c, complete := grapheme.First(buf)
		next := b.pieces.at(idx).next
		if complete || next == nilIndex {
			return len(c)
		}
		idx = next
		joined := make([]byte, 0, len(buf)+b.pieces.at(idx).piece.Length)
		joined = append(joined, buf...)
		buf = append(joined, b.Bytes(b.pieces.at(idx).piece)...)
	}
}

// removeBytes deletes n bytes starting off bytes into the piece at idx,
// splitting every touched piece into its surviving fragments.
func (b *Buffer) removeBytes(idx, off, n int) {
	for n > 0 && idx != nilIndex {
		next := b.pieces.at(idx).next
		p := b.pieces.remove(idx)

		take := min(p.Length-off, n)
		if off > 0 {
			b.pieces.insertBefore(next, p.Start, off, p.Source)
		}
		if rest := p.Length - off - take; rest > 0 {
			b.pieces.insertBefore(next, p.Start+off+take, rest, p.Source)
		}

		n -= take
		idx = next
		off = 0
	}
}
