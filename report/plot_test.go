package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/dungeon-pcg/genetic/tracking"
)

func TestPlotHistory_WritesPNG(t *testing.T) {
	history := []tracking.GenerationStats{
		{Iteration: 0, Best: 1, Worst: -4, Average: -1, Count: 10},
		{Iteration: 1, Best: 3, Worst: -2, Average: 0.5, Count: 10},
		{Iteration: 2, Best: 7, Worst: 0, Average: 4, Count: 10},
	}
	path := filepath.Join(t.TempDir(), "fitness.png")

	if err := PlotHistory(history, "run", path); err != nil {
		t.Fatalf("plot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("expected a PNG file, got %d bytes starting %q", len(data), data[:min(8, len(data))])
	}
}

func TestPlotHistory_Empty(t *testing.T) {
	err := PlotHistory(nil, "run", filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, ErrNoHistory) {
		t.Errorf("expected ErrNoHistory, got %v", err)
	}
}

func TestPlotHistory_UnknownFormat(t *testing.T) {
	history := []tracking.GenerationStats{{Iteration: 0, Best: 1}}
	if err := PlotHistory(history, "run", filepath.Join(t.TempDir(), "x.bogus")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
