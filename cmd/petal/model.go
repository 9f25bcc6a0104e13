package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/petal/buffer"
	"github.com/iw2rmb/petal/internal/grapheme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

func (m mode) String() string {
	if m == modeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

type styles struct {
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func defaultStyles(r *lipgloss.Renderer) styles {
	return styles{
		Cursor: r.NewStyle().Reverse(true),
		Status: r.NewStyle().Bold(true).Padding(0, 1),
	}
}

type model struct {
	buf    *buffer.Buffer
	path   string
	mode   mode
	status string

	keys   keyMap
	styles styles
	vp     viewport.Model
}

func newModel(buf *buffer.Buffer, path string, st styles) model {
	m := model{
		buf:    buf,
		path:   path,
		keys:   defaultKeyMap(),
		styles: st,
		vp:     viewport.New(80, 23),
	}
	m.vp.SetContent(m.renderText())
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-1, 1)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Save) {
			m.status = m.save()
			break
		}
		var cmd tea.Cmd
		if m.mode == modeInsert {
			m.updateInsert(msg)
		} else {
			cmd = m.updateNormal(msg)
		}
		if cmd != nil {
			return m, cmd
		}
	}
	m.vp.SetContent(m.renderText())
	m.scrollToCursor()
	return m, nil
}

func (m *model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	b := m.buf
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Left):
		b.MoveHorizontal(-1)
	case key.Matches(msg, m.keys.Right):
		b.MoveHorizontal(1)
	case key.Matches(msg, m.keys.Up):
		b.MoveVertical(-1)
	case key.Matches(msg, m.keys.Down):
		b.MoveVertical(1)
	case key.Matches(msg, m.keys.WordEnd):
		b.MoveWordEnd()
	case key.Matches(msg, m.keys.WordStart):
		b.MoveWordStart()
	case key.Matches(msg, m.keys.LineStart):
		b.MoveLineStart()
	case key.Matches(msg, m.keys.LineEnd):
		b.MoveLineEnd()
	case key.Matches(msg, m.keys.DeleteUnder):
		b.DeleteAtCursor()
	case key.Matches(msg, m.keys.Insert):
		m.mode = modeInsert
	case key.Matches(msg, m.keys.Append):
		stepPastCursor(b)
		m.mode = modeInsert
	}
	return nil
}

func (m *model) updateInsert(msg tea.KeyMsg) {
	b := m.buf
	switch {
	case key.Matches(msg, m.keys.Normal):
		m.mode = modeNormal
		b.MoveHorizontal(-1)
	case key.Matches(msg, m.keys.Backspace):
		b.DeleteBackward()
	case key.Matches(msg, m.keys.Enter):
		b.InsertAtCursor("\n")
	case msg.Type == tea.KeyLeft:
		b.MoveHorizontal(-1)
	case msg.Type == tea.KeyRight:
		stepPastCursor(b)
	case msg.Type == tea.KeyUp:
		b.MoveVertical(-1)
	case msg.Type == tea.KeyDown:
		b.MoveVertical(1)
	case msg.Type == tea.KeyTab:
		b.InsertAtCursor("\t")
	case msg.Type == tea.KeySpace:
		b.InsertAtCursor(" ")
	case msg.Type == tea.KeyRunes:
		b.InsertAtCursor(string(msg.Runes))
	}
}

// stepPastCursor moves one cluster right, up to the insert position at the
// row end that normal-mode motion never reaches.
func stepPastCursor(b *buffer.Buffer) {
	if c, ok := b.UnderCursor(); ok && c != "\n" {
		col, row := b.Cursor()
		b.SetCursor(buffer.Pos{Row: row, GraphemeCol: col + 1})
	}
}

func (m *model) save() string {
	if m.path == "" {
		return "no file name"
	}
	text := m.buf.String()
	if err := os.WriteFile(m.path, []byte(text), 0o644); err != nil {
		log.Printf("save %s: %v", m.path, err)
		return fmt.Sprintf("save failed: %v", err)
	}
	log.Printf("saved %s (%d bytes, %d pieces)", m.path, len(text), m.buf.PieceCount())
	return fmt.Sprintf("wrote %d bytes", len(text))
}

func (m *model) scrollToCursor() {
	_, row := m.buf.Cursor()
	if row < m.vp.YOffset {
		m.vp.SetYOffset(row)
	} else if row >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
}

func (m model) View() string {
	col, row := m.buf.Cursor()
	status := fmt.Sprintf("%s  %d:%d  cell %d  %d pieces", m.mode, row+1, col+1, m.buf.CursorCell(), m.buf.PieceCount())
	if m.status != "" {
		status += "  " + m.status
	}
	return m.vp.View() + "\n" + m.styles.Status.Render(status)
}

// renderText draws the text with the cluster under the cursor highlighted.
func (m model) renderText() string {
	col, row := m.buf.Cursor()
	tabWidth := m.buf.Options().TabWidth

	var sb strings.Builder
	for r, line := range strings.Split(m.buf.String(), "\n") {
		if r > 0 {
			sb.WriteByte('\n')
		}
		clusters := grapheme.Split(line)
		cell := 0
		for i, c := range clusters {
			w := grapheme.CellWidth(c, cell, tabWidth)
			if c == "\t" {
				c = strings.Repeat(" ", w)
			}
			if r == row && i == col {
				c = m.styles.Cursor.Render(c)
			}
			sb.WriteString(c)
			cell += w
		}
		if r == row && col >= len(clusters) {
			sb.WriteString(m.styles.Cursor.Render(" "))
		}
	}
	return sb.String()
}
