package buffer

import "github.com/iw2rmb/petal/internal/grapheme"

// Cursor returns the cursor as (column, row).
func (b *Buffer) Cursor() (col, row int) {
	return b.cursor.GraphemeCol, b.cursor.Row
}

func (b *Buffer) CursorPos() Pos { return b.cursor }

// StickyCol returns the column vertical moves try to restore.
func (b *Buffer) StickyCol() int { return b.sticky }

// SetCursor moves the cursor to p, clamped into the text, and makes the
// resulting column the sticky column.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = clampToLines(p, b.lines())
	b.sticky = b.cursor.GraphemeCol
}

// MoveHorizontal moves the cursor dx clusters within its row. The column
// stays within [0, rowLen-1]; a cursor already past that (after typing at a
// row end) is never pushed further right. The sticky column follows only a
// move that changes the column; a move blocked at a row edge keeps it.
func (b *Buffer) MoveHorizontal(dx int) {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)

	hi := max(len(lines[cur.Row])-1, 0)
	if dx >= 0 {
		hi = max(hi, cur.GraphemeCol)
	}
	col := clampInt(cur.GraphemeCol+dx, 0, hi)

	b.cursor = Pos{Row: cur.Row, GraphemeCol: col}
	if col != cur.GraphemeCol {
		b.sticky = col
	}
}

// MoveVertical moves the cursor dy rows, restoring the sticky column as far
// as the target row allows. The sticky column is left untouched.
func (b *Buffer) MoveVertical(dy int) {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)

	row := clampInt(cur.Row+dy, 0, len(lines)-1)
	col := 0
	if n := len(lines[row]); n > 0 {
		col = min(b.sticky, n-1)
	}
	b.cursor = Pos{Row: row, GraphemeCol: col}
}

// CursorByteOffset returns the byte offset of the cursor in the logical text.
// It materializes the text, so it costs O(Len()).
func (b *Buffer) CursorByteOffset() int {
	lines := b.lines()
	return posToByteOffset(lines, clampToLines(b.cursor, lines))
}

// UnderCursor returns the cluster at the cursor. At a row end followed by
// another row it returns "\n"; at the end of the text it reports false.
func (b *Buffer) UnderCursor() (string, bool) {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)
	line := lines[cur.Row]
	if cur.GraphemeCol < len(line) {
		return line[cur.GraphemeCol], true
	}
	if cur.Row < len(lines)-1 {
		return "\n", true
	}
	return "", false
}

// CursorCell returns the terminal cell the cursor occupies within its row,
// with tabs expanded to Options.TabWidth.
func (b *Buffer) CursorCell() int {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)
	cell := 0
	for _, cluster := range lines[cur.Row][:cur.GraphemeCol] {
		cell += grapheme.CellWidth(cluster, cell, b.opt.TabWidth)
	}
	return cell
}

// InsertAtCursor inserts text at the cursor and leaves the cursor after it.
// The resulting column may equal the row length.
func (b *Buffer) InsertAtCursor(text string) {
	if text == "" {
		return
	}
	off := b.CursorByteOffset()
	b.Insert(text, off)

	b.cursor = floorPos(b.lines(), off+len(text))
	b.sticky = b.cursor.GraphemeCol
}

// DeleteAtCursor removes the cluster under the cursor. At a row end it joins
// the next row; at the end of the text it does nothing.
func (b *Buffer) DeleteAtCursor() {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)
	if cur.GraphemeCol == len(lines[cur.Row]) && cur.Row == len(lines)-1 {
		return
	}
	b.Remove(posToByteOffset(lines, cur))
	b.cursor = clampToLines(cur, b.lines())
	b.sticky = b.cursor.GraphemeCol
}

// DeleteBackward applies backspace semantics: it removes the cluster before
// the cursor, or the preceding newline at column 0. It does nothing at the
// start of the text.
func (b *Buffer) DeleteBackward() {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)
	if cur.Row == 0 && cur.GraphemeCol == 0 {
		return
	}

	target := Pos{Row: cur.Row, GraphemeCol: cur.GraphemeCol - 1}
	if cur.GraphemeCol == 0 {
		target = Pos{Row: cur.Row - 1, GraphemeCol: len(lines[cur.Row-1])}
	}
	b.Remove(posToByteOffset(lines, target))
	b.cursor = clampToLines(target, b.lines())
	b.sticky = b.cursor.GraphemeCol
}
