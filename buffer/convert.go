package buffer

import (
	"strings"

	"github.com/iw2rmb/petal/internal/grapheme"
)

// lines materializes the logical text as rows of grapheme clusters.
// There is always at least one row.
func (b *Buffer) lines() [][]string {
	parts := strings.Split(b.String(), "\n")
	out := make([][]string, 0, len(parts))
	for _, s := range parts {
		out = append(out, grapheme.Split(s))
	}
	return out
}

func clampToLines(p Pos, lines [][]string) Pos {
	return ClampPos(p, len(lines), func(row int) int {
		if row < 0 || row >= len(lines) {
			return 0
		}
		return len(lines[row])
	})
}

// PosFromByteOffset converts a byte offset into a position. It fails when
// off is outside [0, Len()] or falls inside a grapheme cluster.
func (b *Buffer) PosFromByteOffset(off int) (Pos, bool) {
	return byteOffsetToPos(b.lines(), off)
}

// ByteOffsetFromPos converts an in-bounds position into a byte offset.
func (b *Buffer) ByteOffsetFromPos(pos Pos) (int, bool) {
	lines := b.lines()
	if clampToLines(pos, lines) != pos {
		return 0, false
	}
	return posToByteOffset(lines, pos), true
}

func rowByteLen(line []string) int {
	n := 0
	for _, cluster := range line {
		n += len(cluster)
	}
	return n
}

func posToByteOffset(lines [][]string, pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += rowByteLen(lines[row]) + 1
	}
	for col := 0; col < pos.GraphemeCol; col++ {
		off += len(lines[pos.Row][col])
	}
	return off
}

func byteOffsetToPos(lines [][]string, off int) (Pos, bool) {
	cur := 0

	for row, line := range lines {
		col := 0
		if off == cur {
			return Pos{Row: row, GraphemeCol: col}, true
		}

		for _, cluster := range line {
			next := cur + len(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			col++
			if off == cur {
				return Pos{Row: row, GraphemeCol: col}, true
			}
		}

		if row < len(lines)-1 {
			cur++
			if off == cur {
				return Pos{Row: row + 1, GraphemeCol: 0}, true
			}
		}
	}

	return Pos{}, false
}

// floorPos is byteOffsetToPos rounding down to the nearest cluster boundary.
func floorPos(lines [][]string, off int) Pos {
	rowStart := 0
	for row, line := range lines {
		n := rowByteLen(line)
		if off <= rowStart+n || row == len(lines)-1 {
			return Pos{Row: row, GraphemeCol: grapheme.ColAt(strings.Join(line, ""), off-rowStart)}
		}
		rowStart += n + 1
	}
	return Pos{}
}
