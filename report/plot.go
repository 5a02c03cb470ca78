// Package report writes run summaries to disk
package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lixenwraith/dungeon-pcg/genetic/tracking"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// ErrNoHistory is returned when there is nothing to plot
var ErrNoHistory = errors.New("report: empty history")

// PlotHistory draws best, average and worst fitness per generation
// The image format follows the file extension (png, svg, pdf, ...)
func PlotHistory(history []tracking.GenerationStats, title, path string) error {
	if len(history) == 0 {
		return ErrNoHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	best := make(plotter.XYs, len(history))
	avg := make(plotter.XYs, len(history))
	worst := make(plotter.XYs, len(history))
	for i, s := range history {
		x := float64(s.Iteration)
		best[i] = plotter.XY{X: x, Y: s.Best}
		avg[i] = plotter.XY{X: x, Y: s.Average}
		worst[i] = plotter.XY{X: x, Y: s.Worst}
	}

	series := []struct {
		name   string
		points plotter.XYs
		colour color.Color
	}{
		{"best", best, color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}},
		{"avg", avg, color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}},
		{"worst", worst, color.RGBA{R: 0xb2, G: 0x22, B: 0x22, A: 0xff}},
	}
	for _, s := range series {
		line, err := plotter.NewLine(s.points)
		if err != nil {
			return fmt.Errorf("report: %s line: %w", s.name, err)
		}
		line.Color = s.colour
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(parameter.PlotWidthInches*vg.Inch, parameter.PlotHeightInches*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
