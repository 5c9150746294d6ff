package cpu

import "github.com/gopet/pet4032/status"

// execute dispatches a decoded instruction, mutating CPU state and
// returning any extra cycles beyond the opcode's base cost (branches
// taken, including any further page-crossing penalty on top of that).
func (c *CPU) execute(op Op, mode Mode, addr uint16) int {
	switch op {
	case opNOP:
		return 0

	case opADC:
		c.adc(c.bus.Read(addr))
		return 0
	case opSBC:
		c.adc(c.bus.Read(addr) ^ 0xFF)
		return 0

	case opAND:
		c.A &= c.bus.Read(addr)
		c.P.SetNZ(c.A)
		return 0
	case opORA:
		c.A |= c.bus.Read(addr)
		c.P.SetNZ(c.A)
		return 0
	case opEOR:
		c.A ^= c.bus.Read(addr)
		c.P.SetNZ(c.A)
		return 0

	case opASL:
		c.rmw(mode, addr, func(v uint8) uint8 {
			c.P.SetCarry(v&0x80 != 0)
			v <<= 1
			c.P.SetNZ(v)
			return v
		})
		return 0
	case opLSR:
		c.rmw(mode, addr, func(v uint8) uint8 {
			c.P.SetCarry(v&0x01 != 0)
			v >>= 1
			c.P.SetNZ(v)
			return v
		})
		return 0
	case opROL:
		c.rmw(mode, addr, func(v uint8) uint8 {
			carryIn := c.P.CarryBit()
			c.P.SetCarry(v&0x80 != 0)
			v = (v << 1) | carryIn
			c.P.SetNZ(v)
			return v
		})
		return 0
	case opROR:
		c.rmw(mode, addr, func(v uint8) uint8 {
			carryIn := c.P.CarryBit()
			c.P.SetCarry(v&0x01 != 0)
			v = (v >> 1) | (carryIn << 7)
			c.P.SetNZ(v)
			return v
		})
		return 0

	case opINC:
		c.rmw(mode, addr, func(v uint8) uint8 {
			v++
			c.P.SetNZ(v)
			return v
		})
		return 0
	case opDEC:
		c.rmw(mode, addr, func(v uint8) uint8 {
			v--
			c.P.SetNZ(v)
			return v
		})
		return 0

	case opINX:
		c.X++
		c.P.SetNZ(c.X)
		return 0
	case opINY:
		c.Y++
		c.P.SetNZ(c.Y)
		return 0
	case opDEX:
		c.X--
		c.P.SetNZ(c.X)
		return 0
	case opDEY:
		c.Y--
		c.P.SetNZ(c.Y)
		return 0

	case opLDA:
		c.A = c.bus.Read(addr)
		c.P.SetNZ(c.A)
		return 0
	case opLDX:
		c.X = c.bus.Read(addr)
		c.P.SetNZ(c.X)
		return 0
	case opLDY:
		c.Y = c.bus.Read(addr)
		c.P.SetNZ(c.Y)
		return 0
	case opSTA:
		c.bus.Write(addr, c.A)
		return 0
	case opSTX:
		c.bus.Write(addr, c.X)
		return 0
	case opSTY:
		c.bus.Write(addr, c.Y)
		return 0

	case opTAX:
		c.X = c.A
		c.P.SetNZ(c.X)
		return 0
	case opTAY:
		c.Y = c.A
		c.P.SetNZ(c.Y)
		return 0
	case opTXA:
		c.A = c.X
		c.P.SetNZ(c.A)
		return 0
	case opTYA:
		c.A = c.Y
		c.P.SetNZ(c.A)
		return 0
	case opTSX:
		c.X = c.SP
		c.P.SetNZ(c.X)
		return 0
	case opTXS:
		c.SP = c.X
		return 0

	case opCMP:
		c.compare(c.A, c.bus.Read(addr))
		return 0
	case opCPX:
		c.compare(c.X, c.bus.Read(addr))
		return 0
	case opCPY:
		c.compare(c.Y, c.bus.Read(addr))
		return 0

	case opBIT:
		v := c.bus.Read(addr)
		c.P.SetZero(c.A&v == 0)
		c.P.SetOverflow(v&0x40 != 0)
		c.P.SetNegative(v&0x80 != 0)
		return 0

	case opCLC:
		c.P.SetCarry(false)
		return 0
	case opSEC:
		c.P.SetCarry(true)
		return 0
	case opCLD:
		c.P.SetDecimal(false)
		return 0
	case opSED:
		c.P.SetDecimal(true)
		return 0
	case opCLI:
		c.P.SetInterruptDisable(false)
		return 0
	case opSEI:
		c.P.SetInterruptDisable(true)
		return 0
	case opCLV:
		c.P.SetOverflow(false)
		return 0

	case opPHA:
		c.pushByte(c.A)
		return 0
	case opPHP:
		c.pushByte(c.P.PushByteBRK())
		return 0
	case opPLA:
		c.A = c.pullByte()
		c.P.SetNZ(c.A)
		return 0
	case opPLP:
		c.P = status.PullFromStack(c.pullByte())
		return 0

	case opJMP:
		c.PC = addr
		return 0
	case opJSR:
		c.pushWord(c.PC - 1)
		c.PC = addr
		return 0
	case opRTS:
		c.PC = c.pullWord() + 1
		return 0
	case opRTI:
		c.P = status.PullFromStack(c.pullByte())
		c.PC = c.pullWord()
		return 0
	case opBRK:
		c.PC++
		c.pushWord(c.PC)
		c.pushByte(c.P.PushByteBRK())
		c.P.SetInterruptDisable(true)
		c.PC = c.readWord(0xFFFE)
		return 0

	case opBCC:
		return c.branch(addr, !c.P.CarryVal())
	case opBCS:
		return c.branch(addr, c.P.CarryVal())
	case opBEQ:
		return c.branch(addr, c.P.ZeroVal())
	case opBNE:
		return c.branch(addr, !c.P.ZeroVal())
	case opBMI:
		return c.branch(addr, c.P.NegativeVal())
	case opBPL:
		return c.branch(addr, !c.P.NegativeVal())
	case opBVS:
		return c.branch(addr, c.P.OverflowVal())
	case opBVC:
		return c.branch(addr, !c.P.OverflowVal())
	}
	return 0
}

// adc implements A = A + operand + C, setting carry, zero, negative and
// overflow. SBC is expressed as ADC with the operand's bits inverted,
// which produces correct binary-mode subtraction and borrow-as-carry
// semantics without a second code path.
func (c *CPU) adc(operand uint8) {
	sum := uint16(c.A) + uint16(operand) + uint16(c.P.CarryBit())
	result := uint8(sum)
	c.P.SetCarry(sum > 0xFF)
	c.P.SetOverflow((c.A^operand)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.P.SetNZ(c.A)
}

func (c *CPU) compare(reg, operand uint8) {
	c.P.SetCarry(reg >= operand)
	c.P.SetNZ(reg - operand)
}

// rmw reads the operand (accumulator or memory), applies f, and writes
// the result back to wherever it came from.
func (c *CPU) rmw(mode Mode, addr uint16, f func(uint8) uint8) {
	if mode == Accumulator {
		c.A = f(c.A)
		return
	}
	v := c.bus.Read(addr)
	c.bus.Write(addr, f(v))
}

// branch interprets addr's low byte as the signed relative offset
// produced by resolve's Relative case. If cond is false the branch is
// not taken and no cycles are added. Otherwise PC is adjusted and one
// cycle is added, plus one more if the branch crosses a page boundary.
func (c *CPU) branch(addr uint16, cond bool) int {
	offset := int8(uint8(addr))
	if !cond {
		return 0
	}
	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(offset))
	c.PC = newPC
	if newPC&0xFF00 != oldPC&0xFF00 {
		return 2
	}
	return 1
}
