package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/petal/buffer"
)

// loadBuffer reads path into a Buffer. A missing file starts an empty one.
func loadBuffer(path string, opt buffer.Options) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.New("", opt), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New("", opt), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: not valid UTF-8", path)
	}
	return buffer.New(string(data), opt), nil
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "petal")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	buf, err := loadBuffer(cfg.Path, buffer.Options{TabWidth: cfg.TabWidth})
	if err != nil {
		return err
	}
	log.Printf("loaded %q: %d bytes", cfg.Path, buf.Len())

	m := newModel(buf, cfg.Path, defaultStyles(lipgloss.DefaultRenderer()))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
