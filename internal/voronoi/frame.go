package voronoi

// Frame is the presentable RGB565 pixel buffer, row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB565
}

// NewFrame allocates a black frame.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]RGB565, width*height)}
}

// At returns the pixel at (x, y). Out-of-range reads return black.
func (f *Frame) At(x, y int) RGB565 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// Set writes one pixel, ignoring coordinates outside the frame.
func (f *Frame) Set(x, y int, c RGB565) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = c
}

// stamp paints footprint centred on (cx, cy), clipped to the frame.
func (f *Frame) stamp(cx, cy int, footprint []gridOffset, c RGB565) {
	for _, off := range footprint {
		f.Set(cx+off.dx, cy+off.dy, c)
	}
}

// CopyRGBA expands the frame into RGBA bytes. dst must hold 4*Width*Height
// bytes.
func (f *Frame) CopyRGBA(dst []byte) {
	expandRGB565(dst, f.Pix)
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{Width: f.Width, Height: f.Height, Pix: make([]RGB565, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}
