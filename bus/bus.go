// Package bus wires together the Commodore PET 4032's address space: a
// flat 0x8800 byte RAM (with video RAM mirrored into its top 0x800
// bytes), five ROM images, and the VIA, PIA and CRTC peripheral chips,
// each visible through its own small register window. It performs the
// PET's address-range decode exactly once per access and aggregates the
// two chips' interrupt lines into a single level the CPU core polls.
package bus

import (
	"fmt"

	"github.com/gopet/pet4032/crtc"
	"github.com/gopet/pet4032/irq"
	"github.com/gopet/pet4032/memory"
	"github.com/gopet/pet4032/pia"
	"github.com/gopet/pet4032/rom"
	"github.com/gopet/pet4032/via"
)

const ramSize = 0x8800

// Address ranges the PET 4032 decodes. The gaps between $8800 and
// $AFFF, and between the register windows and $F000, are unmapped and
// always read back $FF, matching an undriven data bus.
const (
	basicBStart, basicBEnd = 0xB000, 0xBFFF
	basicCStart, basicCEnd = 0xC000, 0xCFFF
	basicDStart, basicDEnd = 0xD000, 0xDFFF
	editorStart, editorEnd = 0xE000, 0xE7FF
	piaStart, piaEnd       = 0xE810, 0xE813
	viaStart, viaEnd       = 0xE840, 0xE84F
	crtcStart, crtcEnd     = 0xE880, 0xE881
	kernalStart, kernalEnd = 0xF000, 0xFFFF
)

// Bus is the fully wired PET 4032 system bus: CPU-addressable memory
// and peripherals plus the two chips the CPU core drives directly.
type Bus struct {
	ram  memory.Bank
	roms rom.Set

	VIA  *via.VIA
	PIA  *pia.PIA
	CRTC *crtc.CRTC

	irqAsserted bool
	TotalCycles uint64
}

// New builds a Bus over the given ROM set. The CRTC is programmed with
// the PET's fixed startup geometry as part of construction, matching
// what the real chip is programmed to by the KERNAL on every boot.
func New(roms rom.Set) (*Bus, error) {
	ram, err := memory.NewRAMBank(ramSize)
	if err != nil {
		return nil, fmt.Errorf("bus: %w", err)
	}
	b := &Bus{
		ram:  ram,
		roms: roms,
		VIA:  via.New(),
		PIA:  pia.New(),
		CRTC: crtc.New(),
	}
	return b, nil
}

// PowerOn resets RAM to its randomized power-on pattern and reinitializes
// every peripheral, matching a cold start of real hardware.
func (b *Bus) PowerOn() {
	b.ram.PowerOn()
	b.VIA.PowerOn()
	b.PIA.PowerOn()
	b.CRTC.PowerOn()
	b.irqAsserted = false
	b.TotalCycles = 0
}

// Read implements cpu.Bus, decoding addr against the PET's fixed memory
// map.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramSize:
		return b.ram.Read(addr)
	case addr >= basicBStart && addr <= basicBEnd:
		return b.roms.BasicB[addr&0x0FFF]
	case addr >= basicCStart && addr <= basicCEnd:
		return b.roms.BasicC[addr&0x0FFF]
	case addr >= basicDStart && addr <= basicDEnd:
		return b.roms.BasicD[addr&0x0FFF]
	case addr >= editorStart && addr <= editorEnd:
		return b.roms.Editor[addr&0x07FF]
	case addr >= piaStart && addr <= piaEnd:
		return b.PIA.Read(uint8(addr & 0x03))
	case addr >= viaStart && addr <= viaEnd:
		return b.VIA.Read(uint8(addr & 0x0F))
	case addr == crtcStart:
		return b.CRTC.ReadAddress()
	case addr == crtcEnd:
		return b.CRTC.ReadData()
	case addr >= kernalStart && addr <= kernalEnd:
		return b.roms.Kernal[addr-kernalStart]
	}
	return 0xFF
}

// Write implements cpu.Bus. Writes into ROM space are silently dropped,
// as on real hardware.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < ramSize:
		b.ram.Write(addr, val)
	case addr >= piaStart && addr <= piaEnd:
		b.PIA.Write(uint8(addr&0x03), val)
	case addr >= viaStart && addr <= viaEnd:
		b.VIA.Write(uint8(addr&0x0F), val)
	case addr == crtcStart:
		b.CRTC.WriteAddress(val)
	case addr == crtcEnd:
		b.CRTC.WriteData(val)
	}
}

// Tick implements cpu.Bus: advance every peripheral by one cycle and
// re-derive the aggregate interrupt line from whichever chips are
// currently asserting theirs.
func (b *Bus) Tick() {
	b.TotalCycles++
	b.VIA.Tick()
	b.PIA.Tick()
	b.irqAsserted = b.VIA.Raised() || b.PIA.Raised()
}

// IRQAsserted reports the current state of the bus's aggregated
// interrupt line, which a driver polls once per cycle to decide whether
// to call the CPU's RequestIRQ/ReleaseIRQ.
func (b *Bus) IRQAsserted() bool {
	return b.irqAsserted
}

// VideoRAM returns a copy of the mirrored video RAM window
// ($8000-$87FF) for a frame renderer to sample. The copy is a snapshot:
// later writes to RAM do not show up in it.
func (b *Bus) VideoRAM() []uint8 {
	start, end := uint16(0x8000), uint16(0x8800)
	buf := make([]uint8, end-start)
	for i := range buf {
		buf[i] = b.ram.Read(start + uint16(i))
	}
	return buf
}

var _ irq.Sender = (*via.VIA)(nil)
var _ irq.Sender = (*pia.PIA)(nil)
