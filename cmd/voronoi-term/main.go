// Command voronoi-term renders the animated Voronoi diagram in a terminal.
// Each character cell shows two pixels with a half block; clicking adds a
// seed. Press q or Esc to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Distortions81/voronoi-touch/internal/schedule"
	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

func main() {
	flag.Parse()

	if *logFlag == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if *drawIntervalFlag <= 0 {
		log.SetOutput(os.Stderr)
		log.Fatalf("Invalid -draw-interval %v", *drawIntervalFlag)
	}

	if err := run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("voronoi-term: %v", err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	width, height := displaySize(cols, rows)
	cfg := voronoi.DefaultConfig(width, height)
	cfg.PreferOpenCL = *openCLFlag
	cfg.Seed = *seedFlag

	var feedback voronoi.Feedback
	var sound *toneFeedback
	if *enableAudioFlag {
		s, err := newToneFeedback()
		if err != nil {
			// Non-fatal, the diagram works without sound.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound = s
			feedback = s
			defer s.Close()
		}
	}

	engine := voronoi.New(cfg, newHalfBlockPresenter(screen), feedback)
	defer engine.Close()
	log.Printf("Voronoi engine ready: %dx%d (%dx%d cells), classifier %s", width, height, cols, rows, engine.Mode())
	screen.Show()

	if sound != nil && *startupChimeFlag {
		sound.playStartupChime()
	}

	waker := schedule.NewWaker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	input := newInputHandler(engine, waker)
	g.Go(func() error {
		defer cancel()
		return input.loop(ctx, screen)
	})
	g.Go(func() error {
		return schedule.Run(ctx, schedule.Task{
			Name:     "draw",
			Interval: *drawIntervalFlag,
			Run:      engine.Draw,
			Wake:     waker.C(),
		})
	})
	g.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent in the input loop.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	err = g.Wait()
	st := engine.Stats()
	log.Printf("Exiting after %d frames and %d commits", st.Frames, st.Commits)
	return err
}
