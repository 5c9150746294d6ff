package bus

import (
	"testing"

	"github.com/gopet/pet4032/rom"
)

func testROMs() rom.Set {
	mk := func(size int, fill uint8) []uint8 {
		b := make([]uint8, size)
		for i := range b {
			b[i] = fill
		}
		return b
	}
	return rom.Set{
		BasicB: mk(0x1000, 0xB0),
		BasicC: mk(0x1000, 0xC0),
		BasicD: mk(0x1000, 0xD0),
		Kernal: mk(0x1000, 0xF0),
		Editor: mk(0x0800, 0xE0),
	}
}

func TestRAMReadWriteRoundTrip(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	b.Write(0x0200, 0x42)
	if got := b.Read(0x0200); got != 0x42 {
		t.Errorf("Read(0x0200) = %#02x, want 0x42", got)
	}
}

func TestVideoRAMIsRAMNotSeparateBank(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	b.Write(0x8010, 0x99)
	if got := b.Read(0x8010); got != 0x99 {
		t.Errorf("Read(0x8010) = %#02x, want 0x99", got)
	}
	vram := b.VideoRAM()
	if vram[0x10] != 0x99 {
		t.Errorf("VideoRAM()[0x10] = %#02x, want 0x99", vram[0x10])
	}
}

func TestROMWritesAreIgnored(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	before := b.Read(0xF000)
	b.Write(0xF000, 0x00)
	if got := b.Read(0xF000); got != before {
		t.Errorf("Read(0xF000) changed after write, got %#02x want %#02x", got, before)
	}
}

func TestROMRangesDecodeToCorrectImage(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		addr uint16
		want uint8
	}{
		{0xB000, 0xB0},
		{0xC000, 0xC0},
		{0xD000, 0xD0},
		{0xE000, 0xE0},
		{0xF000, 0xF0},
		{0xFFFF, 0xF0},
	}
	for _, c := range cases {
		if got := b.Read(c.addr); got != c.want {
			t.Errorf("Read(%#04x) = %#02x, want %#02x", c.addr, got, c.want)
		}
	}
}

func TestUnmappedReadsReturnFF(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Read(0x9000); got != 0xFF {
		t.Errorf("Read(0x9000) = %#02x, want 0xFF (unmapped)", got)
	}
}

func TestTickAggregatesPIAFrameIRQ(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	if b.IRQAsserted() {
		t.Fatal("IRQ should not be asserted immediately after construction")
	}
	// Arm the PIA's CB1 enable so its 60Hz tick eventually raises the
	// aggregate line.
	b.PIA.Write(0x03, 0x01)
	for i := 0; i < 16667; i++ {
		b.Tick()
	}
	if !b.IRQAsserted() {
		t.Error("expected aggregated IRQ to be asserted once PIA's vertical blank fires")
	}
}

func TestTotalCyclesCounts(t *testing.T) {
	b, err := New(testROMs())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		b.Tick()
	}
	if b.TotalCycles != 10 {
		t.Errorf("TotalCycles = %d, want 10", b.TotalCycles)
	}
}
