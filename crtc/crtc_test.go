package crtc

import "testing"

func TestPowerOnMatchesPET4032Geometry(t *testing.T) {
	c := New()
	if c.registers[RegHDisplayed] != 0x27 {
		t.Errorf("HDisplayed = %#02x, want 0x27 (40 columns)", c.registers[RegHDisplayed])
	}
	if c.ScreenStartAddress() != 0x8000 {
		t.Errorf("ScreenStartAddress() = %#04x, want 0x8000", c.ScreenStartAddress())
	}
}

func TestRegisterSelectWraps(t *testing.T) {
	c := New()
	c.WriteAddress(0xFF) // only low 5 bits latch
	if c.selectedRegister != 0x1F {
		t.Errorf("selectedRegister = %#02x, want 0x1F", c.selectedRegister)
	}
	c.WriteData(0x42) // out of range, must be a no-op
	if c.registers[0] == 0x42 {
		t.Error("write to out-of-range register leaked into register 0")
	}
}

func TestScreenStartAddressTracksRegisters12And13(t *testing.T) {
	c := New()
	c.WriteAddress(RegScreenStartHi)
	c.WriteData(0x01)
	c.WriteAddress(RegScreenStartLo)
	c.WriteData(0x40)
	want := uint16(0x8000 + 0x0140)
	if got := c.ScreenStartAddress(); got != want {
		t.Errorf("ScreenStartAddress() = %#04x, want %#04x", got, want)
	}
}

func TestCursorAddressTracksRegisters14And15(t *testing.T) {
	c := New()
	c.WriteAddress(RegCursorAddrHi)
	c.WriteData(0x00)
	c.WriteAddress(RegCursorAddrLo)
	c.WriteData(0x28)
	if got := c.CursorAddress(); got != 0x8028 {
		t.Errorf("CursorAddress() = %#04x, want 0x8028", got)
	}
}

func TestReadAddressAlwaysZero(t *testing.T) {
	c := New()
	c.WriteAddress(5)
	if c.ReadAddress() != 0 {
		t.Error("ReadAddress() should always read back 0")
	}
}
