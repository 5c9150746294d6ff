// Command petmon is a terminal register-and-memory inspector for the
// PET 4032 core: it steps one instruction at a time and renders the
// CPU's registers, flags, and a hex page around the program counter,
// useful for driving the core without a full SDL window.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gopet/pet4032/bus"
	"github.com/gopet/pet4032/cpu"
	"github.com/gopet/pet4032/rom"
)

var (
	romDir = flag.String("roms", "roms", "Directory containing the six PET 4032 ROM images")
	prg    = flag.String("prg", "", "Optional PRG file to load into RAM before starting")
)

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

	m := newModel(c, petBus)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("petmon: %v", err)
	}
}
