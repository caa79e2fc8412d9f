// Package gesture turns raw pointer samples into committed touch points.
//
// A touch commits on release, at the first valid position seen while the
// pointer was down. Dragging after the first sample does not move the point.
package gesture

// Position is a pointer sample in display coordinates.
type Position struct {
	X int
	Y int
}

// Invalid is reported by input devices that detect contact but cannot resolve
// where it is.
var Invalid = Position{X: -1, Y: -1}

// Valid reports whether p carries usable coordinates. Negative coordinates are
// what pointer devices report for contacts they could not locate or that lie
// left of or above the display.
func (p Position) Valid() bool {
	return p.X >= 0 && p.Y >= 0
}

// Tracker follows a single pointer. The zero value is ready to use. A Tracker
// is owned by one input goroutine and is not safe for concurrent use.
type Tracker struct {
	start   Position
	started bool
	down    bool
}

// Update feeds one sample. down reports whether the pointer is currently
// pressed and p is its position (ignored while released). When the sample ends
// a press that saw at least one valid position, Update returns that first
// position and true.
func (t *Tracker) Update(down bool, p Position) (Position, bool) {
	if down {
		t.down = true
		if !t.started && p.Valid() {
			t.start = p
			t.started = true
		}
		return Position{}, false
	}
	t.down = false
	if !t.started {
		return Position{}, false
	}
	committed := t.start
	t.Reset()
	return committed, true
}

// Pending returns the position that the current press would commit.
func (t *Tracker) Pending() (Position, bool) {
	return t.start, t.started
}

// Pressed reports whether the last sample had the pointer down.
func (t *Tracker) Pressed() bool { return t.down }

// Reset forgets the current press without committing it.
func (t *Tracker) Reset() {
	t.start = Position{}
	t.started = false
	t.down = false
}
