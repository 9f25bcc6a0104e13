package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestFirst_ReportsCompleteness(t *testing.T) {
	c, complete := First([]byte("e\u0301x"))
	if string(c) != "e\u0301" || !complete {
		t.Fatalf("first=%q complete=%v, want %q true", c, complete, "e\u0301")
	}

	c, complete = First([]byte("e"))
	if string(c) != "e" || complete {
		t.Fatalf("first=%q complete=%v, want %q false", c, complete, "e")
	}

	if c, complete = First(nil); c != nil || complete {
		t.Fatalf("first of nil=%q complete=%v", c, complete)
	}
}

func TestColAt(t *testing.T) {
	text := "caf\u00e9" + family
	if got := ColAt(text, 4); got != 3 {
		t.Fatalf("col inside cluster=%d, want 3", got)
	}
	if got := ColAt(text, 5); got != 4 {
		t.Fatalf("col at boundary=%d, want 4", got)
	}
	if got := ColAt(text, len(text)); got != 5 {
		t.Fatalf("col at end=%d, want 5", got)
	}
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		cluster  string
		visual   int
		tabWidth int
		want     int
	}{
		{cluster: "a", want: 1},
		{cluster: "\u4e16", want: 2},
		{cluster: "\t", visual: 0, tabWidth: 4, want: 4},
		{cluster: "\t", visual: 5, tabWidth: 4, want: 3},
		{cluster: "\t", visual: 1, tabWidth: 0, want: 3},
	}
	for _, tc := range cases {
		if got := CellWidth(tc.cluster, tc.visual, tc.tabWidth); got != tc.want {
			t.Fatalf("CellWidth(%q, %d, %d)=%d, want %d", tc.cluster, tc.visual, tc.tabWidth, got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}
