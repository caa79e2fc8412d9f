package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Distortions81/voronoi-touch/internal/gesture"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

// Draw blits the latest presented frame and the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if seq, ok := g.presenter.latest(g.pixels, g.seen); ok {
		g.seen = seq
	}
	screen.WritePixels(g.pixels)

	if g.showOverlay {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		ebitenutil.DebugPrint(screen, debugOverlay(ebiten.ActualFPS(), tps, g.engine.Stats(), touchStatus(&g.tracker)))
	}
}

// Layout reports the fixed display size, so pointer positions arrive in
// display coordinates.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

func debugOverlay(fps, tps float64, st voronoi.Stats, touch string) string {
	classifyMS := st.LastClassify.Seconds() * 1000
	return fmt.Sprintf("FPS: %.1f\nInput: %.1f TPS\nPoints: %d/%d (%d commits)\nClassifier: %s\nClassify: %.2f ms\nFrames: %d\nTouch: %s",
		fps, tps, st.Points, voronoi.MaxPointCount, st.Commits, st.Mode, classifyMS, st.Frames, touch)
}

// touchStatus describes the press in progress and where it would commit.
func touchStatus(tr *gesture.Tracker) string {
	if !tr.Pressed() {
		return "up"
	}
	if p, ok := tr.Pending(); ok {
		return fmt.Sprintf("down at %d,%d", p.X, p.Y)
	}
	return "down, no position"
}
