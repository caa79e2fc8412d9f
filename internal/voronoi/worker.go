package voronoi

import "sync"

// rowBand is the half-open row range [y0, y1) owned by one worker.
type rowBand struct{ y0, y1 int }

// rowWorkers runs a row job across persistent goroutines, one band each, and
// blocks until every band has finished. Jobs must only write rows inside the
// band they are handed.
type rowWorkers struct {
	height int
	bands  []rowBand

	mu      sync.Mutex
	cond    *sync.Cond
	job     func(y0, y1 int)
	step    int
	pending int
	started bool
	closed  bool
}

// newRowWorkers splits height rows across at most count workers.
func newRowWorkers(count, height int) *rowWorkers {
	p := &rowWorkers{
		height: height,
		bands:  assignRowBands(count, height),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// assignRowBands divides the rows into contiguous, nearly equal bands.
func assignRowBands(workerCount, height int) []rowBand {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > height {
		workerCount = height
	}
	if height < 1 {
		return nil
	}
	rowsPer := (height + workerCount - 1) / workerCount
	bands := make([]rowBand, 0, workerCount)
	for y := 0; y < height; y += rowsPer {
		end := y + rowsPer
		if end > height {
			end = height
		}
		bands = append(bands, rowBand{y0: y, y1: end})
	}
	return bands
}

// run executes job over every row and returns once all bands are done.
func (p *rowWorkers) run(job func(y0, y1 int)) {
	if p == nil {
		return
	}
	if len(p.bands) <= 1 {
		job(0, p.height)
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		job(0, p.height)
		return
	}
	p.startLocked()
	p.job = job
	p.pending = len(p.bands)
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.job = nil
	p.mu.Unlock()
}

// startLocked launches the worker goroutines on first use.
func (p *rowWorkers) startLocked() {
	if p.started {
		return
	}
	p.started = true
	for i := range p.bands {
		go p.loop(i)
	}
}

// loop waits for a new step, runs the job over its band and reports back.
func (p *rowWorkers) loop(index int) {
	band := p.bands[index]
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		lastStep = p.step
		job := p.job
		p.mu.Unlock()

		job(band.y0, band.y1)

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// close stops the worker goroutines. Later runs execute inline.
func (p *rowWorkers) close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
}
