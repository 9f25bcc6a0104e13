package buffer

import "testing"

func TestBuffer_MoveWordEnd(t *testing.T) {
	b := From("foo bar, baz\nnext")

	for _, want := range []int{2, 6, 7, 11, 11} {
		b.MoveWordEnd()
		if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: want}) {
			t.Fatalf("cursor=%v, want (0,%d)", got, want)
		}
	}
}

func TestBuffer_MoveWordEnd_RepeatedUnderCursorStopsBeforeSpace(t *testing.T) {
	b := From("hello world")
	for {
		c, ok := b.UnderCursor()
		if !ok || c == " " || c == "\n" {
			b.MoveHorizontal(-1)
			break
		}
		before := b.CursorPos()
		b.MoveHorizontal(1)
		if b.CursorPos() == before {
			break
		}
	}
	if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: 4}) {
		t.Fatalf("cursor=%v, want (0,4)", got)
	}

	b.SetCursor(Pos{})
	b.MoveWordEnd()
	if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: 4}) {
		t.Fatalf("MoveWordEnd cursor=%v, want (0,4)", got)
	}
}

func TestBuffer_MoveWordStart(t *testing.T) {
	b := From("foo bar, baz")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 11})

	for _, want := range []int{9, 7, 4, 0, 0} {
		b.MoveWordStart()
		if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: want}) {
			t.Fatalf("cursor=%v, want (0,%d)", got, want)
		}
	}
}

func TestBuffer_MoveWord_GraphemeAware(t *testing.T) {
	b := From("cafe\u0301 \U0001F44D\U0001F3FD ok")

	b.MoveWordEnd()
	if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: 3}) {
		t.Fatalf("cursor=%v, want (0,3)", got)
	}
	b.MoveWordEnd()
	if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}
	if got, _ := b.UnderCursor(); got != "\U0001F44D\U0001F3FD" {
		t.Fatalf("under=%q, want thumbs up with skin tone", got)
	}
}

func TestBuffer_MoveLineStartEnd(t *testing.T) {
	b := From("hello\n\nw")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.MoveLineEnd()
	if got := b.CursorPos(); got != (Pos{Row: 0, GraphemeCol: 4}) {
		t.Fatalf("cursor=%v, want (0,4)", got)
	}
	if b.StickyCol() != 4 {
		t.Fatalf("sticky=%d, want 4", b.StickyCol())
	}

	b.MoveLineStart()
	if got := b.CursorPos(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.MoveVertical(1)
	b.MoveLineEnd()
	if got := b.CursorPos(); got != (Pos{Row: 1, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (1,0) on empty row", got)
	}
}
