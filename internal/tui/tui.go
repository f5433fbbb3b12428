// Package tui runs the sandbox in a terminal. Two grid rows share one
// terminal row through the upper half block glyph: the top cell is the
// foreground color and the bottom cell the background.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandmaker/internal/core"
	"sandmaker/internal/sims/sand"
)

const halfBlock = '▀'

// Options configures the terminal frontend.
type Options struct {
	TPS   int
	FPS   int
	Seed  int64
	Queue int
}

type control int

const (
	ctlNone control = iota
	ctlQuit
	ctlPause
	ctlStep
	ctlFullReset
	ctlBrushUp
	ctlBrushDown
	ctlTerrain
	ctlResize
)

// Frontend owns the world for the lifetime of Run. Terminal events are
// translated into commands on the polling goroutine and applied between
// ticks on the loop goroutine.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	queue  *sand.CommandQueue
	ctl    chan control
	clock  *core.FixedStep
	frame  time.Duration
	log    core.Logger

	paused   bool
	tickOnce bool
	seed     int64
}

// New wires a frontend to an initialized screen.
func New(screen tcell.Screen, world *sand.World, opts Options, log core.Logger) *Frontend {
	if log == nil {
		log = core.NopLogger{}
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	return &Frontend{
		screen: screen,
		world:  world,
		queue:  sand.NewCommandQueue(opts.Queue),
		ctl:    make(chan control, 16),
		clock:  core.NewFixedStep(opts.TPS),
		frame:  time.Second / time.Duration(opts.FPS),
		log:    log,
		seed:   opts.Seed,
	}
}

// Queue exposes the command queue feeding the world.
func (f *Frontend) Queue() *sand.CommandQueue { return f.queue }

// Run polls terminal events and drives the simulation until the user quits
// or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	f.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	go f.pollEvents(done)

	ticker := time.NewTicker(f.frame)
	defer ticker.Stop()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-f.ctl:
			if !f.apply(c) {
				return nil
			}
		case <-ticker.C:
			f.update()
			f.draw()
		}
	}
}

func (f *Frontend) pollEvents(done <-chan struct{}) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		c := f.handleEvent(ev)
		if c == ctlNone {
			continue
		}
		select {
		case f.ctl <- c:
		case <-done:
			return
		}
	}
}

// handleEvent turns a terminal event into a queued command or a control
// request for the loop.
func (f *Frontend) handleEvent(ev tcell.Event) control {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		return f.handleMouse(ev)
	case *tcell.EventResize:
		return ctlResize
	}
	return ctlNone
}

func (f *Frontend) handleKey(ev *tcell.EventKey) control {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ctlQuit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.queue.Submit(sand.ResetCmd())
		return ctlNone
	case tcell.KeyRune:
	default:
		return ctlNone
	}
	switch r := ev.Rune(); r {
	case 'q':
		return ctlQuit
	case ' ':
		return ctlPause
	case 'n':
		return ctlStep
	case 'r':
		return ctlFullReset
	case 's':
		f.queue.Submit(sand.CycleMaterialCmd())
	case 'c':
		f.queue.Submit(sand.RandomizeColorCmd())
	case 't':
		return ctlTerrain
	case '+', '=', ']':
		return ctlBrushUp
	case '-', '[':
		return ctlBrushDown
	case '1', '2', '3', '4':
		f.queue.Submit(sand.SelectMaterialCmd(int(r - '1')))
	}
	return ctlNone
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) control {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return ctlBrushUp
	case buttons&tcell.WheelDown != 0:
		return ctlBrushDown
	case buttons&tcell.Button1 != 0:
		x, y := ev.Position()
		f.queue.Submit(sand.PaintAt(x, y*2))
	}
	return ctlNone
}

// apply executes a control request on the loop goroutine. It returns false
// when the frontend should stop.
func (f *Frontend) apply(c control) bool {
	switch c {
	case ctlQuit:
		return false
	case ctlPause:
		f.paused = !f.paused
	case ctlStep:
		f.tickOnce = true
	case ctlFullReset:
		f.world.Reset(f.seed)
	case ctlTerrain:
		f.seed++
		f.world.SeedTerrain(f.seed)
	case ctlBrushUp:
		f.world.SetBrushRadius(min(f.world.BrushRadius()+1, sand.MaxBrushRadius))
	case ctlBrushDown:
		f.world.SetBrushRadius(max(f.world.BrushRadius()-1, 0))
	case ctlResize:
		f.screen.Sync()
	}
	return true
}

// update applies pending commands and runs the ticks that are due.
func (f *Frontend) update() {
	f.world.Drain(f.queue)
	due := f.clock.Advance()
	switch {
	case f.paused && f.tickOnce:
		f.world.Step()
	case !f.paused:
		for ; due > 0; due-- {
			f.world.Step()
		}
	}
	f.tickOnce = false
}

func (f *Frontend) draw() {
	size := f.world.Size()
	rows := (size.H + 1) / 2
	for ty := 0; ty < rows; ty++ {
		for x := 0; x < size.W; x++ {
			top := f.world.ColorAt(x, 2*ty)
			bottom := f.world.Materials().Properties(sand.Empty).DryColor
			if 2*ty+1 < size.H {
				bottom = f.world.ColorAt(x, 2*ty+1)
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			f.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	f.drawStatus(rows)
	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	state := "running"
	if f.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" %s r=%d t=%d %s ", f.world.CurrentMaterialName(), f.world.BrushRadius(), f.world.Ticks(), state)
	swatch := tcell.StyleDefault.Background(rgb(f.world.CurrentMaterialColor()))
	f.screen.SetContent(0, row, ' ', nil, swatch)
	f.screen.SetContent(1, row, ' ', nil, swatch)
	width, _ := f.screen.Size()
	x := 2
	for _, r := range status {
		if x >= width {
			break
		}
		f.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < width; x++ {
		f.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

// rgb drops alpha; cells are drawn opaque.
func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
