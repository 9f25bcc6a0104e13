package buffer

// Source identifies the byte store a Piece refers to.
type Source uint8

const (
	SourceOriginal Source = iota
	SourceAppend
)

func (s Source) String() string {
	switch s {
	case SourceOriginal:
		return "original"
	case SourceAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Piece is a view of Length bytes starting at Start in its Source store.
type Piece struct {
	Start  int
	Length int
	Source Source
}

func (p Piece) end() int { return p.Start + p.Length }
