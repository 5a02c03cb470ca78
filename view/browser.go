package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-pcg/grid"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// Result is one ranked dungeon of a finished run
type Result struct {
	Dungeon   *grid.Dungeon
	Fitness   float64
	Iteration int
}

// Browser pages through results one dungeon at a time
type Browser struct {
	screen  tcell.Screen
	glyphs  Glyphs
	results []Result
	title   string
	index   int
}

// NewBrowser binds results to an initialized screen; the caller owns Init and Fini
func NewBrowser(screen tcell.Screen, glyphs Glyphs, title string, results []Result) *Browser {
	return &Browser{
		screen:  screen,
		glyphs:  glyphs,
		results: results,
		title:   title,
	}
}

func (b *Browser) Index() int {
	return b.index
}

// Current returns the displayed result
func (b *Browser) Current() (Result, bool) {
	if len(b.results) == 0 {
		return Result{}, false
	}
	return b.results[b.index], true
}

// Move shifts the selection by delta, clamped to the result range
func (b *Browser) Move(delta int) {
	if len(b.results) == 0 {
		return
	}
	b.index = min(max(b.index+delta, 0), len(b.results)-1)
}

// HandleEvent applies one input event; it returns false when the browser should close
func (b *Browser) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight, tcell.KeyDown:
			b.Move(1)
		case tcell.KeyLeft, tcell.KeyUp:
			b.Move(-1)
		case tcell.KeyPgDn:
			b.Move(10)
		case tcell.KeyPgUp:
			b.Move(-10)
		case tcell.KeyHome:
			b.Move(-len(b.results))
		case tcell.KeyEnd:
			b.Move(len(b.results))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'l', 'n':
				b.Move(1)
			case 'h', 'p':
				b.Move(-1)
			case 'g':
				b.Move(-len(b.results))
			case 'G':
				b.Move(len(b.results))
			}
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
	return true
}

// Draw renders the current dungeon with a status block beneath it
func (b *Browser) Draw() {
	b.screen.Clear()
	width, height := b.screen.Size()
	rows := max(height-parameter.BrowserStatusRows, 0)

	r, ok := b.Current()
	if !ok {
		b.drawText(0, 0, width, tcell.StyleDefault, "no results")
		b.screen.Show()
		return
	}

	d := r.Dungeon
	for y := 0; y < min(d.Height(), rows); y++ {
		for x := 0; x < min(d.Width(), width); x++ {
			c := d.At(x, y)
			b.screen.SetContent(x, y, b.glyphs.Cell(c), nil, Style(c))
		}
	}

	status := min(d.Height(), rows)
	line := fmt.Sprintf("%s  %d/%d  fitness %.3f  generation %d",
		b.title, b.index+1, len(b.results), r.Fitness, r.Iteration)
	b.drawText(0, status, width, tcell.StyleDefault.Bold(true), line)
	b.drawText(0, status+1, width, tcell.StyleDefault.Foreground(tcell.ColorGray),
		"h/l browse  g/G first/last  q quit")
	b.screen.Show()
}

func (b *Browser) drawText(x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run draws and handles input until the user quits or the screen closes
func (b *Browser) Run() {
	b.Draw()
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		if !b.HandleEvent(ev) {
			return
		}
		b.Draw()
	}
}
