// Package crtc emulates the 6845 CRT Controller as configured for the
// Commodore PET 4032's fixed 40x25 text display. Only the handful of
// registers that affect what a frame renderer needs (screen start
// address and cursor position/shape) are behaviorally significant; the
// rest are stored but otherwise inert, matching the PET's fixed-timing
// display hardware.
package crtc

// Register indices, in the chip's documented order.
const (
	RegHTotal = iota
	RegHDisplayed
	RegHSyncPos
	RegSyncWidth
	RegVTotal
	RegVTotalAdj
	RegVDisplayed
	RegVSyncPos
	RegInterlaceMode
	RegMaxScanLine
	RegCursorStart
	RegCursorEnd
	RegScreenStartHi
	RegScreenStartLo
	RegCursorAddrHi
	RegCursorAddrLo
	RegLightPenHi
	RegLightPenLo

	numRegisters = 18
)

// videoBase is where the PET's video RAM mirror begins; screen_start is
// an offset the firmware programs relative to this base.
const videoBase = 0x8000

// CRTC holds the chip's 18 data registers plus the register select
// latch and the cached values derived from them.
type CRTC struct {
	registers       [numRegisters]uint8
	selectedRegister uint8

	screenStartOffset uint16
	cursorAddr        uint16
}

// New creates a CRTC and programs it with the PET 4032's fixed startup
// register values, matching what the PET's KERNAL initializes the chip
// to on every boot.
func New() *CRTC {
	c := &CRTC{}
	c.PowerOn()
	return c
}

// PowerOn programs the PET 4032's documented screen-geometry register
// values: 40 columns/25 rows visible out of a wider/taller raster total,
// no cursor blink, cursor and screen start both at offset zero.
func (c *CRTC) PowerOn() {
	values := [numRegisters]uint8{
		0x31, 0x27, 0x29, 0x0A,
		0x1F, 0x00, 0x18, 0x1E,
		0x00, 0x07, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
	}
	c.registers = values
	c.selectedRegister = 0
	c.recomputeScreenStart()
	c.recomputeCursorAddr()
}

// WriteAddress latches which register a following WriteData call
// targets (register select port, address $E880 on the PET).
func (c *CRTC) WriteAddress(val uint8) {
	c.selectedRegister = val & 0x1F
}

// WriteData writes the currently selected register (data port, address
// $E881). Writes to a selector past the 18 implemented registers are
// silently dropped, as on real hardware.
func (c *CRTC) WriteData(val uint8) {
	if int(c.selectedRegister) >= numRegisters {
		return
	}
	c.registers[c.selectedRegister] = val
	switch c.selectedRegister {
	case RegScreenStartHi, RegScreenStartLo:
		c.recomputeScreenStart()
	case RegCursorAddrHi, RegCursorAddrLo:
		c.recomputeCursorAddr()
	}
}

func (c *CRTC) recomputeScreenStart() {
	c.screenStartOffset = uint16(c.registers[RegScreenStartHi])<<8 | uint16(c.registers[RegScreenStartLo])
}

func (c *CRTC) recomputeCursorAddr() {
	c.cursorAddr = uint16(c.registers[RegCursorAddrHi])<<8 | uint16(c.registers[RegCursorAddrLo])
}

// ReadAddress always reads back zero; the register select port is
// write-only on the 6845.
func (c *CRTC) ReadAddress() uint8 { return 0x00 }

// ReadData returns the currently selected register's value.
func (c *CRTC) ReadData() uint8 {
	if int(c.selectedRegister) >= numRegisters {
		return 0
	}
	return c.registers[c.selectedRegister]
}

// ScreenStartAddress returns the absolute address (within the video RAM
// mirror at $8000) the display should start rendering from.
func (c *CRTC) ScreenStartAddress() uint16 {
	return videoBase + c.screenStartOffset
}

// CursorAddress returns the absolute address of the character cell the
// cursor sits over.
func (c *CRTC) CursorAddress() uint16 {
	return videoBase + c.cursorAddr
}

// CursorVisible reports whether the cursor should currently be drawn,
// per the cursor-start register's blink-mode bits (00 = always on, the
// only mode the PET's ROM actually programs).
func (c *CRTC) CursorVisible() bool {
	return c.registers[RegCursorStart]&0x60 == 0x00
}
