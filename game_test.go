package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Distortions81/voronoi-touch/internal/gesture"
	"github.com/Distortions81/voronoi-touch/internal/schedule"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	cfg := voronoi.DefaultConfig(w, h)
	cfg.Seed = 1
	cfg.Workers = 1
	presenter := newFramePresenter(w, h)
	engine := voronoi.New(cfg, presenter, nil)
	t.Cleanup(engine.Close)
	return newGame(engine, presenter, schedule.NewWaker())
}

func TestGameCommitWakesRenderTask(t *testing.T) {
	g := newTestGame(t, 32, 24)
	g.commit(gesture.Position{X: 5, Y: 6})

	pts := g.engine.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, 5, pts[0].X)
	select {
	case <-g.waker.C():
	default:
		t.Fatal("commit did not wake the render task")
	}

	// The marker is visible before the next draw.
	_, ok := g.presenter.latest(g.pixels, g.seen)
	assert.True(t, ok)
	base := (6*32 + 5) * 4
	assert.Equal(t, []byte{255, 255, 255, 255}, g.pixels[base:base+4])
}

func TestAutoTouchCommitsUntilDeadline(t *testing.T) {
	g := newTestGame(t, 32, 24)
	finished := 0
	g.enableAutoTouch(time.Second, 7, func() { finished++ })

	start := time.Now()
	for i := 0; i < 5; i++ {
		now := start.Add(time.Duration(i) * autoTouchInterval)
		require.True(t, g.stepAutoTouch(now))
	}
	// Not due yet: no extra commit.
	require.True(t, g.stepAutoTouch(start.Add(4*autoTouchInterval+time.Millisecond)))
	assert.Equal(t, uint64(5), g.engine.Stats().Commits)
	for _, p := range g.engine.Points() {
		assert.True(t, p.X >= 0 && p.X <= 32 && p.Y >= 0 && p.Y <= 24)
	}

	assert.False(t, g.stepAutoTouch(start.Add(2*time.Second)))
	assert.False(t, g.autoTouch)
	assert.Equal(t, 1, finished)
}

func TestLayoutIsDisplaySize(t *testing.T) {
	g := newTestGame(t, 320, 240)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestEngineConfigFromFlags(t *testing.T) {
	cfg := engineConfig()
	assert.Equal(t, defaultWidth, cfg.Width)
	assert.Equal(t, defaultHeight, cfg.Height)
	assert.Equal(t, int64(0), cfg.GridBudget)
	assert.False(t, cfg.PreferOpenCL)
	assert.Equal(t, voronoi.MaxPointCount, cfg.MaxPoints)
}

func TestEngineFramesReachTheWindowPresenter(t *testing.T) {
	cfg := voronoi.DefaultConfig(16, 16)
	cfg.Seed = 1
	cfg.Workers = 1
	presenter := newFramePresenter(16, 16)
	var presented int
	engine := voronoi.New(cfg, voronoi.PresenterFunc(func(f *voronoi.Frame) {
		presented++
		presenter.Present(f)
	}), nil)
	t.Cleanup(engine.Close)

	engine.CommitPoint(8, 8)
	engine.Draw()
	assert.Equal(t, 2, presented, "commit and draw each present")

	dst := newRGBABuffer(16, 16)
	_, ok := presenter.latest(dst, 0)
	require.True(t, ok)
	r, g, b, _ := engine.Points()[0].Color.RGBA()
	assert.Equal(t, []byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), 255}, dst[0:4])
}
