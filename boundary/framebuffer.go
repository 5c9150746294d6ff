// Package boundary holds the code between the core and the host display
// and keyboard: the video-RAM-to-pixel sampler and the
// host-keyboard-to-PET-matrix mapping. None of it is exercised by the
// core emulation packages (cpu, via, pia, crtc, bus, rom) themselves —
// those stay pure and single-threaded; only cmd/pet imports this
// package.
package boundary

import (
	"image"
	"image/color"

	"github.com/gopet/pet4032/bus"
)

// Screen geometry: 40x25 characters, each glyph 8x8 pixels, giving a
// native PET 4032 framebuffer of 320x200.
const (
	Columns   = 40
	Rows      = 25
	GlyphSize = 8

	Width  = Columns * GlyphSize
	Height = Rows * GlyphSize

	screenCells = Columns * Rows
)

// phosphorGreen and black reproduce the PET's monochrome green-on-black
// CRT look.
var (
	phosphorGreen = color.RGBA{R: 50, G: 255, B: 50, A: 255}
	screenBlack   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Sample renders the current contents of the bus's video RAM (as seen
// through the CRTC's screen-start register) and character ROM into an
// RGBA image sized Width x Height. charROM is the 2KB glyph table: byte
// n*8+y is row y of character n's 8x8 bitmap, high bit leftmost.
func Sample(b *bus.Bus, charROM []uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	vram := b.VideoRAM()
	start := int(b.CRTC.ScreenStartAddress() - 0x8000)

	for cell := 0; cell < screenCells; cell++ {
		addr := (start + cell) % len(vram)
		code := vram[addr]
		inverted := code&0x80 != 0
		glyphOffset := int(code&0x7F) * GlyphSize

		row := cell / Columns
		col := cell % Columns

		for y := 0; y < GlyphSize; y++ {
			if glyphOffset+y >= len(charROM) {
				continue
			}
			bits := charROM[glyphOffset+y]
			if inverted {
				bits = ^bits
			}
			for x := 0; x < GlyphSize; x++ {
				px := col*GlyphSize + x
				py := row*GlyphSize + y
				c := screenBlack
				if bits&(0x80>>uint(x)) != 0 {
					c = phosphorGreen
				}
				img.SetRGBA(px, py, c)
			}
		}
	}
	return img
}
