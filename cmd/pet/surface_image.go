package main

import (
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// sdlSurfaceImage adapts an SDL surface's pixel buffer to draw.Image so
// x/image/draw can blit scaled frames directly into it, the same trick
// the teacher's fastImage type uses to avoid a color.Color conversion on
// every pixel.
type sdlSurfaceImage struct {
	surface *sdl.Surface
	pixels  []byte
}

func (s *sdlSurfaceImage) ColorModel() color.Model { return color.RGBAModel }

func (s *sdlSurfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.surface.W), int(s.surface.H))
}

func (s *sdlSurfaceImage) At(x, y int) color.Color {
	i := int32(y)*s.surface.Pitch + int32(x)*int32(s.surface.Format.BytesPerPixel)
	return color.RGBA{R: s.pixels[i], G: s.pixels[i+1], B: s.pixels[i+2], A: s.pixels[i+3]}
}

func (s *sdlSurfaceImage) Set(x, y int, c color.Color) {
	i := int32(y)*s.surface.Pitch + int32(x)*int32(s.surface.Format.BytesPerPixel)
	r, g, b, a := c.RGBA()
	s.pixels[i+0] = uint8(r >> 8)
	s.pixels[i+1] = uint8(g >> 8)
	s.pixels[i+2] = uint8(b >> 8)
	s.pixels[i+3] = uint8(a >> 8)
}
