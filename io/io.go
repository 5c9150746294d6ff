// Package io defines the basic interfaces for working with a 6502-family
// I/O port (generally bi-directional). It's intended that implementors of
// a parallel port chip (such as a 6522 VIA) call the input callback (if
// provided) to learn the state of an externally driven line instead of
// reaching into another component directly.
package io

// Port8 defines an 8 bit I/O port driven by something external to the chip
// that owns it. A peripheral with nothing wired to a given port simply
// leaves this nil.
type Port8 interface {
	// Input returns the current value being driven onto the port from
	// outside the chip.
	Input() uint8
}
