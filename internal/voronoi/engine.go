package voronoi

import (
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Presenter displays a rendered frame. Present runs with the engine lock held;
// implementations copy what they need and must not keep frame.
type Presenter interface {
	Present(frame *Frame)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(frame *Frame)

// Present calls f(frame).
func (f PresenterFunc) Present(frame *Frame) { f(frame) }

// Feedback is notified once for every committed point, after it is stored.
type Feedback interface {
	Touched()
}

// FeedbackFunc adapts a function to Feedback.
type FeedbackFunc func()

// Touched calls f().
func (f FeedbackFunc) Touched() { f() }

// Stats is a lock-free snapshot of engine counters.
type Stats struct {
	Frames       uint64
	Commits      uint64
	Points       int
	Mode         string
	LastClassify time.Duration
}

// Engine owns the point store, the classifier and the frame, and serializes
// every access to them behind one mutex. CommitPoint and Draw are safe to call
// from different goroutines.
type Engine struct {
	mu *sync.Mutex

	cfg        Config
	store      *PointStore
	physics    Physics
	classifier Classifier
	workers    *rowWorkers
	alloc      cellAllocator
	compositor *compositor
	labels     []int16
	frame      *Frame
	presenter  Presenter
	feedback   Feedback
	closed     bool

	frames       atomic.Uint64
	commits      atomic.Uint64
	points       atomic.Int64
	lastClassify atomic.Int64
	mode         atomic.Pointer[string]
}

// New builds an engine for a fixed display. presenter and feedback may be nil.
// Seed grid allocation failures are not errors: the engine classifies by brute
// force until Reallocate succeeds.
func New(cfg Config, presenter Presenter, feedback Feedback) *Engine {
	return newEngine(cfg, presenter, feedback, heapCells)
}

func newEngine(cfg Config, presenter Presenter, feedback Feedback, alloc cellAllocator) *Engine {
	cfg = cfg.normalize()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		mu:         &sync.Mutex{},
		cfg:        cfg,
		store:      NewPointStore(cfg.Width, cfg.Height, cfg.MaxPoints, rand.New(rand.NewSource(seed))),
		physics:    Physics{Radius: cfg.RepulsionRadius, Strength: cfg.RepulsionStrength},
		workers:    newRowWorkers(cfg.Workers, cfg.Height),
		alloc:      alloc,
		compositor: newCompositor(cfg.MarkerRadius, cfg.MarkerColor),
		labels:     make([]int16, cfg.Width*cfg.Height),
		frame:      NewFrame(cfg.Width, cfg.Height),
		presenter:  presenter,
		feedback:   feedback,
	}
	e.setClassifier(selectClassifier(cfg, e.workers, alloc))
	return e
}

// withLock runs fn inside the critical section. It reports false, without
// running fn, when the engine has no lock or has been closed.
func (e *Engine) withLock(fn func()) bool {
	if e == nil || e.mu == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	fn()
	return true
}

func (e *Engine) setClassifier(c Classifier) {
	e.classifier = c
	name := c.Name()
	e.mode.Store(&name)
}

// CommitPoint stores a point for raw input coordinates, stamps its marker on
// the live frame and notifies the feedback sink.
func (e *Engine) CommitPoint(x, y int) {
	ok := e.withLock(func() {
		p := e.store.Add(x, y)
		e.points.Store(int64(e.store.Len()))
		e.compositor.stampMarker(e.frame, p)
		e.present()
	})
	if !ok {
		return
	}
	e.commits.Add(1)
	if e.feedback != nil {
		e.feedback.Touched()
	}
}

// Draw runs one render cycle: repulsion, classification, composition and
// presentation. It does nothing while the store is empty.
func (e *Engine) Draw() {
	e.withLock(func() {
		if e.store.Len() == 0 {
			return
		}
		e.physics.Step(e.store.points, e.cfg.Width, e.cfg.Height)
		start := time.Now()
		e.classifier.Classify(e.store.points, e.labels)
		e.lastClassify.Store(int64(time.Since(start)))
		e.compositor.compose(e.frame, e.labels, e.store.points)
		e.present()
		e.frames.Add(1)
	})
}

func (e *Engine) present() {
	if e.presenter != nil {
		e.presenter.Present(e.frame)
	}
}

// Reallocate re-runs classifier selection with a new grid budget (0 means
// unlimited) and reports whether jump flood grids are now in use. An engine
// that already floods keeps its grids.
func (e *Engine) Reallocate(budget int64) bool {
	flooding := false
	e.withLock(func() {
		if e.classifier.Name() != ModeBruteForce {
			flooding = true
			return
		}
		e.cfg.GridBudget = budget
		next := selectClassifier(e.cfg, e.workers, e.alloc)
		e.classifier.Close()
		e.setClassifier(next)
		flooding = next.Name() != ModeBruteForce
		log.Printf("Classifier re-evaluated: %s", next.Name())
	})
	return flooding
}

// Mode names the classifier in use.
func (e *Engine) Mode() string {
	if e == nil {
		return ""
	}
	if m := e.mode.Load(); m != nil {
		return *m
	}
	return ""
}

// Points returns a copy of the stored points, oldest first.
func (e *Engine) Points() []Point {
	var out []Point
	e.withLock(func() {
		out = e.store.Points()
	})
	return out
}

// Snapshot returns a copy of the current frame.
func (e *Engine) Snapshot() *Frame {
	var out *Frame
	e.withLock(func() {
		out = e.frame.Clone()
	})
	return out
}

// Size reports the fixed display resolution.
func (e *Engine) Size() (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.cfg.Width, e.cfg.Height
}

// Stats returns counters without taking the engine lock.
func (e *Engine) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	return Stats{
		Frames:       e.frames.Load(),
		Commits:      e.commits.Load(),
		Points:       int(e.points.Load()),
		Mode:         e.Mode(),
		LastClassify: time.Duration(e.lastClassify.Load()),
	}
}

// Close releases the grids and worker goroutines. Later calls to CommitPoint
// and Draw are ignored.
func (e *Engine) Close() {
	e.withLock(func() {
		e.classifier.Close()
		e.workers.close()
		e.closed = true
	})
}
