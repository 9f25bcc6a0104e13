package buffer

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/petal/internal/grapheme"
)

type Options struct {
	TabWidth       int // default: 4
	AppendCapacity int // initial append store capacity in bytes, default: 1024
	ArenaCapacity  int // initial piece slot capacity, default: 16
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = 4
	}
	if o.AppendCapacity <= 0 {
		o.AppendCapacity = 1024
	}
	if o.ArenaCapacity <= 0 {
		o.ArenaCapacity = 16
	}
	return o
}

// Buffer is a piece table over an immutable original store and an
// append-only append store, plus the cursor driving edits into it.
type Buffer struct {
	original []byte
	append   []byte
	pieces   arena

	cursor Pos
	sticky int

	opt Options
}

// From creates a Buffer with default options.
func From(text string) *Buffer {
	return New(text, Options{})
}

func New(text string, opt Options) *Buffer {
	opt = opt.withDefaults()
	b := &Buffer{
		original: []byte(text),
		append:   make([]byte, 0, opt.AppendCapacity),
		opt:      opt,
	}
	if len(b.original) == 0 {
		b.pieces = newEmptyArena(opt.ArenaCapacity)
		return b
	}
	b.pieces = newArena(Piece{Start: 0, Length: len(b.original), Source: SourceOriginal})
	return b
}

func (b *Buffer) Options() Options { return b.opt }

// Len returns the byte length of the logical text.
func (b *Buffer) Len() int {
	n := 0
	for p := range b.pieces.all() {
		n += p.Length
	}
	return n
}

// PieceCount returns the number of linked pieces.
func (b *Buffer) PieceCount() int { return b.pieces.len() }

// Pieces walks the piece table in document order.
// The buffer must not be edited until the walk is complete.
func (b *Buffer) Pieces() iter.Seq[Piece] { return b.pieces.all() }

// Bytes returns the bytes p refers to. The returned slice aliases the
// buffer's store and must not be modified.
func (b *Buffer) Bytes(p Piece) []byte {
	var from []byte
	switch p.Source {
	case SourceOriginal:
		from = b.original
	case SourceAppend:
		from = b.append
	default:
		violation("bytes", "unknown piece source %d", p.Source)
	}
	if p.Start < 0 || p.Length < 0 || p.end() > len(from) {
		violation("bytes", "piece [%d,%d) outside %s store of %d bytes", p.Start, p.end(), p.Source, len(from))
	}
	return from[p.Start:p.end():p.end()]
}

// String materializes the logical text.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for p := range b.pieces.all() {
		s := b.Bytes(p)
		if !utf8.Valid(s) {
			violation("string", "piece %s[%d,%d) is not valid UTF-8", p.Source, p.Start, p.end())
		}
		sb.Write(s)
	}
	return sb.String()
}

// Graphemes walks the grapheme clusters of the logical text. Clusters whose
// bytes straddle a piece boundary are yielded whole.
// The buffer must not be edited until the walk is complete.
func (b *Buffer) Graphemes() iter.Seq[string] {
	return func(yield func(string) bool) {
		var pending []byte
		for p := range b.pieces.all() {
			pending = append(pending, b.Bytes(p)...)
			for {
				c, complete := grapheme.First(pending)
				if !complete {
					break
				}
				if !yield(string(c)) {
					return
				}
				pending = pending[len(c):]
			}
		}
		for len(pending) > 0 {
			c, _ := grapheme.First(pending)
			if !yield(string(c)) {
				return
			}
			pending = pending[len(c):]
		}
	}
}

// GraphemeCount returns the number of grapheme clusters in the logical text.
func (b *Buffer) GraphemeCount() int {
	n := 0
	for range b.Graphemes() {
		n++
	}
	return n
}

// Get returns the grapheme cluster at grapheme index idx.
func (b *Buffer) Get(idx int) (string, bool) {
	if idx < 0 {
		return "", false
	}
	i := 0
	for c := range b.Graphemes() {
		if i == idx {
			return c, true
		}
		i++
	}
	return "", false
}
