package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	Path     string
	LogPath  string // PETAL_DEBUG: debug log file; empty disables logging
	TabWidth int    // PETAL_TAB_WIDTH
}

// loadConfig reads .env.local then .env (if present) and the process
// environment. Variables already set in the environment win.
func loadConfig(args []string) (config, error) {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, err
		}
	}

	cfg := config{LogPath: os.Getenv("PETAL_DEBUG")}
	if len(args) > 0 {
		cfg.Path = args[0]
	}
	if v := os.Getenv("PETAL_TAB_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return config{}, errors.New("PETAL_TAB_WIDTH must be a positive integer, got " + strconv.Quote(v))
		}
		cfg.TabWidth = n
	}
	return cfg, nil
}
