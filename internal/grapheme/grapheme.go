package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// First returns the first grapheme cluster of b and reports whether the
// cluster is known to be complete. A cluster that runs to the end of b may
// still continue in bytes that follow b.
func First(b []byte) (cluster []byte, complete bool) {
	if len(b) == 0 {
		return nil, false
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	return cluster, len(rest) > 0
}

// ColAt returns the number of whole grapheme clusters that end at or before
// byte offset off in text.
func ColAt(text string, off int) int {
	col := 0
	pos := 0
	state := -1
	rest := text
	for rest != "" {
		var c string
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if pos+len(c) > off {
			break
		}
		pos += len(c)
		col++
	}
	return col
}

// CellWidth returns the terminal-cell width of a single cluster placed at
// visual column visualCol. Tabs advance to the next tab stop.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
