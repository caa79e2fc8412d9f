package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Distortions81/voronoi-touch/internal/gesture"
)

// pointer samples the first touch, or the left mouse button when no finger is
// down. Positions are in display coordinates.
func (g *Game) pointer() (bool, gesture.Position) {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		return true, gesture.Position{X: x, Y: y}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, gesture.Position{X: x, Y: y}
	}
	return false, gesture.Invalid
}

// enableAutoTouch schedules scripted touches for a limited duration. done runs
// once when the script ends.
func (g *Game) enableAutoTouch(duration time.Duration, seed int64, done func()) {
	if seed == 0 {
		seed = time.Now().UnixNano() + 3
	}
	now := time.Now()
	g.autoTouch = true
	g.autoTouchDeadline = now.Add(duration)
	g.nextAutoTouch = now
	g.autoTouchRand = rand.New(rand.NewSource(seed))
	g.onAutoTouchDone = done
}

// stepAutoTouch commits a random touch when one is due. It reports false once
// the script has finished.
func (g *Game) stepAutoTouch(now time.Time) bool {
	if now.After(g.autoTouchDeadline) {
		g.autoTouch = false
		log.Printf("Auto-touch finished: %d commits, %d frames", g.engine.Stats().Commits, g.engine.Stats().Frames)
		if g.onAutoTouchDone != nil {
			g.onAutoTouchDone()
			g.onAutoTouchDone = nil
		}
		return false
	}
	if now.Before(g.nextAutoTouch) {
		return true
	}
	g.nextAutoTouch = now.Add(autoTouchInterval)
	g.commit(gesture.Position{
		X: g.autoTouchRand.Intn(g.width + 1),
		Y: g.autoTouchRand.Intn(g.height + 1),
	})
	return true
}

// handleDebugControls processes overlay and classifier hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showOverlay = !g.showOverlay
	}
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if g.engine.Reallocate(g.gridBudget) {
			log.Printf("Seed grids available, classifier: %s", g.engine.Mode())
		} else {
			log.Printf("Seed grids still unavailable, classifier: %s", g.engine.Mode())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.gridBudget = 0
		log.Printf("Seed grid budget lifted")
	}
}
