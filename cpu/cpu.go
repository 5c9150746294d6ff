// Package cpu implements the MOS 6502 as used in the Commodore PET 4032:
// instruction decoding, addressing-mode evaluation, the stack and
// interrupt protocol, cycle accounting, and the documented quirks
// (no decimal-mode arithmetic, branch page-crossing penalties, the
// indirect-JMP page-wrap bug).
package cpu

import (
	"github.com/gopet/pet4032/status"
)

// Bus is the capability the CPU requires of whatever it's wired to: a
// byte-addressable read/write surface plus a tick it calls once per
// completed instruction (or drained cycle). A minimal test bus (backing
// array + reset vector) and the real PET bus both satisfy this with no
// further coupling.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	Tick()
}

// CPU holds the complete state of one 6502 core.
type CPU struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  status.Register

	bus Bus

	pendingCycles int
	halted        bool

	nmiPending      bool
	irqPending      bool
	nmiEdgeDetected bool
}

// New creates a CPU wired to bus b. Callers must call Reset before
// stepping it, matching real hardware holding RESET low at power-on.
func New(b Bus) *CPU {
	return &CPU{bus: b}
}

// Reset reproduces the 6502's reset sequence: A, X and Y clear; the stack
// pointer lands at $FD; the I flag is set with all other status bits
// clear (other than the always-set unused bit); the program counter is
// loaded from the reset vector; and seven cycles are charged, matching
// real hardware's reset latency.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = status.Register{}
	c.P.SetInterruptDisable(true)
	c.PC = c.readWord(0xFFFC)
	c.pendingCycles = 7
	c.halted = false
	c.nmiPending = false
	c.irqPending = false
	c.nmiEdgeDetected = false
}

// Halt stops the CPU from fetching any further instructions. Used to
// model a running program wedged on a no-op illegal opcode loop; it is
// never set internally by this core (see DESIGN.md on illegal opcodes).
func (c *CPU) Halt() {
	c.halted = true
}

// Halted reports whether the CPU has been stopped via Halt.
func (c *CPU) Halted() bool {
	return c.halted
}

// RequestNMI raises the NMI line. NMI is edge-triggered: a second request
// while the edge is still latched is dropped until ReleaseNMI is called.
func (c *CPU) RequestNMI() {
	if c.nmiEdgeDetected {
		return
	}
	c.nmiEdgeDetected = true
	c.nmiPending = true
}

// ReleaseNMI clears the latched NMI edge, allowing a future RequestNMI to
// take effect again.
func (c *CPU) ReleaseNMI() {
	c.nmiEdgeDetected = false
}

// RequestIRQ raises the (level-triggered) IRQ line. The driver is
// responsible for calling ReleaseIRQ once the interrupting peripheral's
// condition clears; the CPU will keep re-dispatching IRQs otherwise,
// exactly as real hardware would with the line held low.
func (c *CPU) RequestIRQ() {
	c.irqPending = true
}

// ReleaseIRQ drops the IRQ line.
func (c *CPU) ReleaseIRQ() {
	c.irqPending = false
}

// ReadByte and ReadWord are convenience wrappers delegating to the bus,
// useful for driver code inspecting memory without poking at the bus
// directly.
func (c *CPU) ReadByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// ReadWord performs a little-endian word read through the bus.
func (c *CPU) ReadWord(addr uint16) uint16 {
	return c.readWord(addr)
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// fetchWord reads a little-endian word starting at PC and advances PC by
// two.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushByte(v uint8) {
	c.bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pullByte() uint8 {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

func (c *CPU) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(hi)<<8 | uint16(lo)
}

// Step advances the CPU by one cycle. In priority order: do nothing if
// halted; drain one pending cycle from the previous instruction (ticking
// the bus) if any remain; otherwise dispatch a pending NMI; otherwise
// dispatch a pending, unmasked IRQ; otherwise fetch, decode and execute
// the next instruction, charging its cycles to the pending counter and
// ticking the bus once.
func (c *CPU) Step() {
	if c.halted {
		return
	}
	if c.pendingCycles > 0 {
		c.pendingCycles--
		c.bus.Tick()
		return
	}
	if c.nmiPending {
		c.dispatchNMI()
		return
	}
	if c.irqPending && !c.P.InterruptDisableVal() {
		c.dispatchIRQ()
		return
	}

	opcode := c.fetchByte()
	desc := opcodeTable[opcode]
	addr, pageCrossed := c.resolve(desc.Mode)
	extra := c.execute(desc.Op, desc.Mode, addr)

	cycles := int(desc.Cycles) + extra
	if desc.PagePenalty && pageCrossed {
		cycles++
	}
	c.pendingCycles = cycles - 1
	c.bus.Tick()
}

// ExecuteInstruction drains any cycles left over from a previous
// instruction, runs one Step (which may dispatch an interrupt or execute
// an instruction), then drains whatever cycles that produced, so the
// caller always observes a quiesced CPU in between calls.
func (c *CPU) ExecuteInstruction() {
	for c.pendingCycles > 0 {
		c.Step()
	}
	c.Step()
	for c.pendingCycles > 0 {
		c.Step()
	}
}

// dispatchNMI pushes PC and status (with B clear), sets I, and loads PC
// from the NMI vector. Seven cycles are charged, matching an instruction
// dispatch.
func (c *CPU) dispatchNMI() {
	c.pushWord(c.PC)
	c.pushByte(c.P.PushByte())
	c.P.SetInterruptDisable(true)
	c.PC = c.readWord(0xFFFA)
	c.nmiPending = false
	c.pendingCycles = 6
	c.bus.Tick()
}

// dispatchIRQ is identical to dispatchNMI but reads the shared IRQ/BRK
// vector and leaves the IRQ line's pending state for the driver to clear.
func (c *CPU) dispatchIRQ() {
	c.pushWord(c.PC)
	c.pushByte(c.P.PushByte())
	c.P.SetInterruptDisable(true)
	c.PC = c.readWord(0xFFFE)
	c.pendingCycles = 6
	c.bus.Tick()
}
