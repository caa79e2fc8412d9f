package voronoi

import "image/color"

// RGB565 is a 16-bit packed color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// MarkerWhite is the color of the seed markers.
const MarkerWhite RGB565 = 0xFFFF

// palette holds the 20 pastel seed colors.
var palette = [20]RGB565{
	0xFD97, // #FFB3BA
	0xFEF7, // #FFDFBA
	0xFFF7, // #FFFFBA
	0xBFF9, // #BAFFC9
	0xBF1F, // #BAE1FF
	0xE5DC, // #E0BBE4
	0x93F5, // #957DAD
	0xD497, // #D291BC
	0xFE5B, // #FEC8D8
	0xFEFA, // #FFDFD3
	0xC67D, // #C7CEEA
	0xB75A, // #B5EAD7
	0xE799, // #E2F0CB
	0xFED8, // #FFDAC1
	0xFD92, // #F8B195
	0xAF39, // #A8E6CF
	0xDF78, // #DCEDC1
	0xFE96, // #FFD3B6
	0xFD54, // #FFAAA5
	0xCD59, // #CBAACB
}

// PackRGB565 truncates 8-bit channels into a packed 16-bit color.
func PackRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the packed channels back to 8 bits, replicating the high bits
// into the low bits so that full intensity maps to 255.
func (c RGB565) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1f
	g6 := uint8(c>>5) & 0x3f
	b5 := uint8(c) & 0x1f
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xff}.RGBA()
}

// expandRGB565 converts packed pixels into RGBA bytes. dst must hold at least
// 4*len(src) bytes.
func expandRGB565(dst []byte, src []RGB565) {
	for i, c := range src {
		r, g, b := c.RGB()
		base := i * 4
		dst[base] = r
		dst[base+1] = g
		dst[base+2] = b
		dst[base+3] = 255
	}
}
