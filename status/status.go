// Package status implements the packed 6502 processor status register (P):
//
//	7 6 5 4 3 2 1 0
//	N V 1 B D I Z C
//
// Bit 5 is unused on real hardware and always reads back as 1.
package status

// Bit masks for the processor status register, named the way the teacher
// names its P_* constants.
const (
	Negative         = uint8(0x80)
	Overflow         = uint8(0x40)
	Unused           = uint8(0x20) // Always reads as 1.
	Break            = uint8(0x10) // Only set on a pushed copy from PHP/BRK.
	Decimal          = uint8(0x08)
	InterruptDisable = uint8(0x04)
	Zero             = uint8(0x02)
	Carry            = uint8(0x01)
)

// Register is the packed 8 bit status register. The zero value is not a
// valid power-on state; use FromByte or the individual setters to build
// one.
type Register struct {
	p uint8
}

// FromByte decodes a status byte into a Register, forcing bit 5 set
// regardless of what was passed in.
func FromByte(b uint8) Register {
	return Register{p: b | Unused}
}

// ToByte encodes the Register back to a byte, with bit 5 always set.
func (r Register) ToByte() uint8 {
	return r.p | Unused
}

// Set unconditionally sets or clears the bits in mask.
func (r *Register) set(mask uint8, on bool) {
	if on {
		r.p |= mask
	} else {
		r.p &^= mask
	}
	r.p |= Unused
}

// SetNZ sets the Zero and Negative flags from val, the common pattern
// after a load, transfer, or ALU operation writes a register.
func (r *Register) SetNZ(val uint8) {
	r.set(Zero, val == 0)
	r.set(Negative, val&Negative != 0)
}

func (r *Register) SetCarry(on bool)            { r.set(Carry, on) }
func (r *Register) SetZero(on bool)             { r.set(Zero, on) }
func (r *Register) SetInterruptDisable(on bool) { r.set(InterruptDisable, on) }
func (r *Register) SetDecimal(on bool)          { r.set(Decimal, on) }
func (r *Register) SetBreak(on bool)            { r.set(Break, on) }
func (r *Register) SetOverflow(on bool)         { r.set(Overflow, on) }
func (r *Register) SetNegative(on bool)         { r.set(Negative, on) }

func (r Register) CarryVal() bool            { return r.p&Carry != 0 }
func (r Register) ZeroVal() bool             { return r.p&Zero != 0 }
func (r Register) InterruptDisableVal() bool { return r.p&InterruptDisable != 0 }
func (r Register) DecimalVal() bool          { return r.p&Decimal != 0 }
func (r Register) BreakVal() bool            { return r.p&Break != 0 }
func (r Register) OverflowVal() bool         { return r.p&Overflow != 0 }
func (r Register) NegativeVal() bool         { return r.p&Negative != 0 }

// CarryBit returns 0 or 1, handy for ADC/SBC/ROL/ROR arithmetic.
func (r Register) CarryBit() uint8 {
	if r.CarryVal() {
		return 1
	}
	return 0
}

// PushByte returns the byte to push to the stack for an IRQ/NMI sequence,
// where B is always cleared.
func (r Register) PushByte() uint8 {
	return (r.p &^ Break) | Unused
}

// PushByteBRK returns the byte to push to the stack for a PHP or BRK
// sequence, where B is always set.
func (r Register) PushByteBRK() uint8 {
	return r.p | Break | Unused
}

// PullFromStack restores all flags except Break and Unused from a value
// pulled off the stack (PLP, RTI), masking those two bits to their
// required values instead of taking them from the stack byte.
func PullFromStack(b uint8) Register {
	return Register{p: (b &^ (Break | Unused)) | Unused}
}
