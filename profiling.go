package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// profilePlan is the profiling side of a run: how long scripted touches
// last and where the CPU profile goes.
type profilePlan struct {
	autoTouch time.Duration
	path      string
}

// planProfiling resolves -auto-touch, -cpuprofile and -record-default-pgo.
// Recording default.pgo forces the scripted run and picks the profile path
// unless one was given.
func planProfiling(autoTouch time.Duration, cpuProfile string, recordPGO bool) profilePlan {
	p := profilePlan{autoTouch: autoTouch, path: cpuProfile}
	if recordPGO {
		p.autoTouch = pgoRecordDuration
		if p.path == "" {
			p.path = "default.pgo"
		}
	}
	return p
}

// cpuProfile is an active CPU profile. A nil *cpuProfile is a run without
// profiling.
type cpuProfile struct {
	path    string
	f       *os.File
	started time.Time
	once    sync.Once
	err     error
}

// start begins profiling when the plan names a file.
func (p profilePlan) start() (*cpuProfile, error) {
	if p.path == "" {
		return nil, nil
	}
	f, err := os.Create(p.path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", p.path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	log.Printf("Writing CPU profile to %s", p.path)
	return &cpuProfile{path: p.path, f: f, started: time.Now()}, nil
}

// Stop flushes and closes the profile. Only the first call does any work;
// later calls return its result.
func (c *cpuProfile) Stop() error {
	if c == nil {
		return nil
	}
	c.once.Do(func() {
		pprof.StopCPUProfile()
		if err := c.f.Close(); err != nil {
			c.err = fmt.Errorf("closing %s: %w", c.path, err)
			log.Printf("CPU profile: %v", c.err)
			return
		}
		log.Printf("CPU profile written to %s after %v", c.path, time.Since(c.started).Round(time.Millisecond))
	})
	return c.err
}

// finish stops the profile from a callback with no error path.
func (c *cpuProfile) finish() { _ = c.Stop() }
