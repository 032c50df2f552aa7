package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/render/raster"
	"github.com/iw2rmb/strands/trigram"
)

// loadedMsg carries a corpus ingested into a staging model off the event
// loop; Update merges it into the live model.
type loadedMsg struct {
	result trigram.Result
	staged *trigram.Model
}

type exportedMsg struct {
	path string
	err  error
}

func loadCmd(path, encoding string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		staged := trigram.New()
		res := trigram.Loader{Model: staged, Encoding: encoding, Logger: log}.Load(path)
		return loadedMsg{result: res, staged: staged}
	}
}

// exportCmd writes fr as PNG. fr is never mutated after planning, so it is
// safe to read off the event loop.
func exportCmd(path string, fr frame.Frame, g frame.Geometry, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		err := writePNG(path, fr, g)
		if err != nil {
			log.Error("export failed", "path", path, "err", err)
		} else {
			log.Info("frame exported", "path", path, "cells", len(fr.Cells))
		}
		return exportedMsg{path: path, err: err}
	}
}

func writePNG(path string, fr frame.Frame, g frame.Geometry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()
	return raster.WritePNG(f, fr, g, raster.Options{})
}
