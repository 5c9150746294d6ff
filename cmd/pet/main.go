// Command pet runs the Commodore PET 4032 emulator core behind an SDL2
// window: it drives the fixed poll-input/step/render/sleep loop, blits
// the sampled framebuffer scaled up via x/image/draw, and maps host
// keyboard events onto the PET's keyboard matrix.
package main

import (
	"flag"
	"image/draw"
	"log"
	"time"

	"github.com/gopet/pet4032/boundary"
	"github.com/gopet/pet4032/bus"
	"github.com/gopet/pet4032/cpu"
	"github.com/gopet/pet4032/rom"
	"github.com/veandco/go-sdl2/sdl"
	xdraw "golang.org/x/image/draw"
)

var (
	romDir = flag.String("roms", "roms", "Directory containing the six PET 4032 ROM images")
	prg    = flag.String("prg", "", "Optional PRG file to load into RAM at startup (it is not run automatically)")
	scale  = flag.Int("scale", 2, "Integer scale factor applied to the native 320x200 PET display")
)

const cyclesPerFrame = 16666

func main() {
	flag.Parse()

	roms, err := rom.Load(*romDir)
	if err != nil {
		log.Fatalf("Can't load ROMs: %v", err)
	}

	petBus, err := bus.New(roms)
	if err != nil {
		log.Fatalf("Can't build bus: %v", err)
	}
	petBus.PowerOn()

	c := cpu.New(petBus)
	c.Reset()

	if *prg != "" {
		if err := rom.LoadPRG(*prg, petBus); err != nil {
			log.Fatalf("Can't load PRG %q: %v", *prg, err)
		}
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		log.Fatalf("Can't init SDL: %v", err)
	}
	defer sdl.Quit()

	w, h := int32(boundary.Width**scale), int32(boundary.Height**scale)
	window, err := sdl.CreateWindow("Commodore PET 4032", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("Can't create window: %v", err)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		log.Fatalf("Can't get window surface: %v", err)
	}

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if ev.Keysym.Sym == sdl.K_ESCAPE && ev.Type == sdl.KEYDOWN {
					running = false
					continue
				}
				boundary.SetKey(petBus.PIA, ev.Keysym.Sym, ev.Type == sdl.KEYDOWN)
			}
		}

		frameStart := time.Now()
		for i := 0; i < cyclesPerFrame; i++ {
			c.Step()
			if petBus.IRQAsserted() {
				c.RequestIRQ()
			} else {
				c.ReleaseIRQ()
			}
		}

		frame := boundary.Sample(petBus, roms.CharROM)
		dst := surfaceAsDrawImage(surface)
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), frame, frame.Bounds(), xdraw.Over, nil)
		if err := window.UpdateSurface(); err != nil {
			log.Fatalf("Can't update window surface: %v", err)
		}

		if elapsed := time.Since(frameStart); elapsed < 16*time.Millisecond {
			time.Sleep(16*time.Millisecond - elapsed)
		}
	}
}

func surfaceAsDrawImage(s *sdl.Surface) draw.Image {
	return &sdlSurfaceImage{surface: s, pixels: s.Pixels()}
}
