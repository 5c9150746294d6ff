// Package memory defines the basic interface for working with a 6502
// family memory map. Since each implementation that is emulated has
// specific address decoding (including mirrored regions) this is defined
// as an interface so the bus can compose differently sized RAM behind
// one contract.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank is satisfied by anything the bus can route a read or write to.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn performs power-on reset of the bank. This is
	// implementation specific as to whether contents are randomized
	// or preset.
	PowerOn()
}

// ram implements a flat, writable address space sized exactly to the
// caller's request. Callers (normally a bus implementing its own address
// decode) are responsible for only presenting addresses already known to
// be in range; ram does not mask or wrap.
type ram struct {
	data []uint8
}

// NewRAMBank creates a R/W RAM bank of exactly size bytes.
func NewRAMBank(size int) (Bank, error) {
	if size <= 0 || size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d must be in (0,65536]", size)
	}
	return &ram{
		data: make([]uint8, size),
	}, nil
}

// Read implements Bank. addr must already be within range; out of range
// indices are a programming error in the caller's address decode.
func (r *ram) Read(addr uint16) uint8 {
	return r.data[addr]
}

// Write implements Bank.
func (r *ram) Write(addr uint16, val uint8) {
	r.data[addr] = val
}

// PowerOn implements Bank and randomizes RAM contents, matching real
// hardware where SRAM powers up in an indeterminate state.
func (r *ram) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.data {
		r.data[i] = uint8(rand.Intn(256))
	}
}
