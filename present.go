package main

import (
	"sync"

	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

// framePresenter hands the newest engine frame to the ebiten Draw callback.
// Present runs on the render goroutine with the engine lock held, so it only
// converts into its own buffer; Draw picks the buffer up when the sequence
// number moved.
type framePresenter struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte
	seq    uint64
}

func newFramePresenter(width, height int) *framePresenter {
	return &framePresenter{
		width:  width,
		height: height,
		pix:    newRGBABuffer(width, height),
	}
}

// newRGBABuffer returns an opaque black RGBA buffer.
func newRGBABuffer(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return pix
}

// Present implements voronoi.Presenter.
func (p *framePresenter) Present(frame *voronoi.Frame) {
	if frame.Width != p.width || frame.Height != p.height {
		return
	}
	p.mu.Lock()
	frame.CopyRGBA(p.pix)
	p.seq++
	p.mu.Unlock()
}

// latest copies the newest frame into dst when it is newer than seen and
// returns its sequence number.
func (p *framePresenter) latest(dst []byte, seen uint64) (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seq == seen || len(dst) != len(p.pix) {
		return seen, false
	}
	copy(dst, p.pix)
	return p.seq, true
}
