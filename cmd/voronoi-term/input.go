package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Distortions81/voronoi-touch/internal/gesture"
	"github.com/Distortions81/voronoi-touch/internal/schedule"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

// inputHandler turns terminal events into committed touches.
type inputHandler struct {
	engine  *voronoi.Engine
	waker   *schedule.Waker
	tracker gesture.Tracker
}

func newInputHandler(engine *voronoi.Engine, waker *schedule.Waker) *inputHandler {
	return &inputHandler{engine: engine, waker: waker}
}

// loop polls screen until the user quits or ctx is cancelled.
func (h *inputHandler) loop(ctx context.Context, screen tcell.Screen) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if !h.handle(ev) {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
	}
}

// handle processes one event and reports false when the user asked to quit.
func (h *inputHandler) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				if h.engine.Reallocate(0) {
					log.Printf("Seed grids available, classifier: %s", h.engine.Mode())
				}
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		dx, dy := cellToDisplay(x, y)
		if p, ok := h.tracker.Update(down, gesture.Position{X: dx, Y: dy}); ok {
			h.engine.CommitPoint(p.X, p.Y)
			if h.waker != nil {
				h.waker.Wake()
			}
		}
	case *tcell.EventResize:
		w, hgt := h.engine.Size()
		cols, rows := ev.Size()
		log.Printf("Terminal resized to %dx%d cells; display stays %dx%d", cols, rows, w, hgt)
	}
	return true
}
