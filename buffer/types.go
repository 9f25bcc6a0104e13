package buffer

// Pos addresses a grapheme cluster of the logical text. Row counts '\n'
// separators before it; GraphemeCol counts clusters from the row start.
type Pos struct {
	Row         int
	GraphemeCol int
}

// clampInt pins v into [lo, hi]; an empty range collapses to lo.
func clampInt(v, lo, hi int) int {
	if hi < lo || v < lo {
		return lo
	}
	return min(v, hi)
}

// ClampPos pins p into a text of rowCount rows, where rowLen reports how many
// grapheme clusters a row holds. Text without a newline still has one row,
// and the column may sit one past the last cluster of its row, where an
// insert appends.
func ClampPos(p Pos, rowCount int, rowLen func(row int) int) Pos {
	row := clampInt(p.Row, 0, max(rowCount, 1)-1)
	n := 0
	if rowLen != nil {
		n = max(rowLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, n)}
}
