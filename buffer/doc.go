// Package buffer implements a piece-table text buffer with a grapheme-aware
// cursor.
//
// The logical text is the concatenation of pieces, each a byte range into
// either the immutable original store or the append-only append store.
// Offsets passed to Insert and Remove are byte offsets into the logical text.
// Cursor coordinates are 0-based (Row, GraphemeCol): rows are '\n'-delimited
// and columns count grapheme clusters.
//
// A Buffer is not safe for concurrent use.
package buffer
