package buffer

import "github.com/iw2rmb/petal/internal/grapheme"

// MoveWordEnd moves the cursor to the last cluster of the current or next
// word on its row. Words are runs of one cluster class; the row end is a
// hard boundary.
func (b *Buffer) MoveWordEnd() {
	b.moveInRow(nextWordEnd)
}

// MoveWordStart moves the cursor to the first cluster of the current or
// previous word on its row.
func (b *Buffer) MoveWordStart() {
	b.moveInRow(prevWordStart)
}

// MoveLineStart moves the cursor to column 0.
func (b *Buffer) MoveLineStart() {
	b.moveInRow(func([]string, int) int { return 0 })
}

// MoveLineEnd moves the cursor onto the last cluster of its row.
func (b *Buffer) MoveLineEnd() {
	b.moveInRow(func(line []string, _ int) int { return max(len(line)-1, 0) })
}

func (b *Buffer) moveInRow(next func(line []string, col int) int) {
	lines := b.lines()
	cur := clampToLines(b.cursor, lines)
	b.cursor = Pos{Row: cur.Row, GraphemeCol: next(lines[cur.Row], cur.GraphemeCol)}
	b.sticky = b.cursor.GraphemeCol
}

type clusterClass int

const (
	classSpace clusterClass = iota
	classPunct
	classWord
)

func classify(cluster string) clusterClass {
	switch {
	case grapheme.IsSpace(cluster):
		return classSpace
	case grapheme.IsPunct(cluster):
		return classPunct
	default:
		return classWord
	}
}

func nextWordEnd(line []string, col int) int {
	if len(line) == 0 {
		return 0
	}
	i := col + 1
	for i < len(line) && classify(line[i]) == classSpace {
		i++
	}
	if i >= len(line) {
		return max(col, len(line)-1)
	}
	k := classify(line[i])
	for i+1 < len(line) && classify(line[i+1]) == k {
		i++
	}
	return i
}

func prevWordStart(line []string, col int) int {
	col = min(col, len(line))
	i := col - 1
	for i > 0 && classify(line[i]) == classSpace {
		i--
	}
	if i <= 0 {
		return 0
	}
	k := classify(line[i])
	for i > 0 && classify(line[i-1]) == k {
		i--
	}
	return i
}
