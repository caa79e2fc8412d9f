package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Distortions81/voronoi-touch/internal/gesture"
	"github.com/Distortions81/voronoi-touch/internal/schedule"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

// Game is the ebiten side of the renderer: it polls the pointer, commits
// touches to the engine and blits the latest presented frame. Rendering of the
// diagram itself happens on the schedule goroutine.
type Game struct {
	engine    *voronoi.Engine
	presenter *framePresenter
	waker     *schedule.Waker
	tracker   gesture.Tracker

	width  int
	height int
	pixels []byte
	seen   uint64

	touchIDs    []ebiten.TouchID
	showOverlay bool
	gridBudget  int64

	autoTouch         bool
	autoTouchDeadline time.Time
	nextAutoTouch     time.Time
	autoTouchRand     *rand.Rand
	onAutoTouchDone   func()
}

// newGame wires a Game to an engine and the presenter it draws into.
func newGame(engine *voronoi.Engine, presenter *framePresenter, waker *schedule.Waker) *Game {
	width, height := engine.Size()
	return &Game{
		engine:      engine,
		presenter:   presenter,
		waker:       waker,
		width:       width,
		height:      height,
		pixels:      newRGBABuffer(width, height),
		showOverlay: *debugFlag,
	}
}

// Update polls input once per tick.
func (g *Game) Update() error {
	g.handleDebugControls()

	if g.autoTouch {
		if !g.stepAutoTouch(time.Now()) {
			return ebiten.Termination
		}
		return nil
	}

	down, pos := g.pointer()
	if p, ok := g.tracker.Update(down, pos); ok {
		g.commit(p)
	}
	return nil
}

// commit stores a touch and asks the render task for an immediate frame.
func (g *Game) commit(p gesture.Position) {
	g.engine.CommitPoint(p.X, p.Y)
	if g.waker != nil {
		g.waker.Wake()
	}
}
