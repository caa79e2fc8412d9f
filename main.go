// Command voronoi-touch renders an animated Voronoi diagram in a window.
// Every click or tap adds a seed; seeds push each other apart and the diagram
// is redrawn on a fixed interval.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Distortions81/voronoi-touch/internal/schedule"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires the engine, render task and window and blocks until the window
// closes. Its deferred cleanups run before main reports an error.
func run() error {
	if *widthFlag < 1 || *heightFlag < 1 {
		return fmt.Errorf("invalid display size %dx%d", *widthFlag, *heightFlag)
	}
	if *scaleFlag < 1 {
		return fmt.Errorf("invalid -scale %d", *scaleFlag)
	}
	if *tpsFlag < 1 {
		return fmt.Errorf("invalid -tps %d", *tpsFlag)
	}
	if *drawIntervalFlag <= 0 {
		return fmt.Errorf("invalid -draw-interval %v", *drawIntervalFlag)
	}

	plan := planProfiling(*autoTouchFlag, *cpuProfileFlag, *recordDefaultPGO)
	prof, err := plan.start()
	if err != nil {
		return err
	}
	defer prof.finish()

	cfg := engineConfig()
	var sound *touchSound
	var feedback voronoi.Feedback
	if *enableAudioFlag {
		sound = newTouchSound(audio.NewContext(audioSampleRate), *touchWavFlag)
		feedback = sound
	}
	presenter := newFramePresenter(cfg.Width, cfg.Height)
	engine := voronoi.New(cfg, presenter, feedback)
	defer engine.Close()
	log.Printf("Voronoi engine ready: %dx%d, classifier %s, %d workers", cfg.Width, cfg.Height, engine.Mode(), cfg.Workers)

	waker := schedule.NewWaker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduled := make(chan error, 1)
	go func() {
		scheduled <- schedule.Run(ctx, schedule.Task{
			Name:     "draw",
			Interval: *drawIntervalFlag,
			Run:      engine.Draw,
			Wake:     waker.C(),
		})
	}()

	g := newGame(engine, presenter, waker)
	g.gridBudget = cfg.GridBudget
	if plan.autoTouch > 0 {
		log.Printf("Auto-touch enabled for %v", plan.autoTouch)
		g.enableAutoTouch(plan.autoTouch, cfg.Seed, prof.finish)
	}
	if sound != nil && *startupChimeFlag {
		sound.playStartupChime()
	}

	scale := *scaleFlag
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowTitle("Voronoi Touch")
	ebiten.SetTPS(*tpsFlag)
	runErr := ebiten.RunGame(g)

	cancel()
	if err := <-scheduled; err != nil {
		log.Printf("Render task stopped: %v", err)
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return prof.Stop()
}

// engineConfig builds the engine configuration from the command line.
func engineConfig() voronoi.Config {
	cfg := voronoi.DefaultConfig(*widthFlag, *heightFlag)
	if *workersFlag > 0 {
		cfg.Workers = *workersFlag
	}
	if *gridBudgetMBFlag > 0 {
		cfg.GridBudget = int64(*gridBudgetMBFlag) * bytesPerMB
	}
	cfg.PreferOpenCL = *openCLFlag
	cfg.Seed = *seedFlag
	return cfg
}
