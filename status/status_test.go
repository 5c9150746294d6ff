package status

import (
	"testing"
)

func TestFromByteToByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		r := FromByte(uint8(b))
		got := r.ToByte()
		want := uint8(b) | Unused
		if got != want {
			t.Errorf("FromByte(%#02x).ToByte() = %#02x, want %#02x", b, got, want)
		}
	}
}

func TestToByteAlwaysSetsUnused(t *testing.T) {
	var r Register
	r.SetCarry(true)
	if got := r.ToByte(); got&Unused == 0 {
		t.Errorf("ToByte() = %#02x, bit 5 (Unused) should always be set", got)
	}
}

func TestSetNZ(t *testing.T) {
	tests := []struct {
		val          uint8
		wantZero     bool
		wantNegative bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, tc := range tests {
		var r Register
		r.SetNZ(tc.val)
		if got := r.ZeroVal(); got != tc.wantZero {
			t.Errorf("SetNZ(%#02x).ZeroVal() = %t, want %t", tc.val, got, tc.wantZero)
		}
		if got := r.NegativeVal(); got != tc.wantNegative {
			t.Errorf("SetNZ(%#02x).NegativeVal() = %t, want %t", tc.val, got, tc.wantNegative)
		}
	}
}

func TestPushByteClearsBreak(t *testing.T) {
	r := FromByte(0xFF)
	if got := r.PushByte(); got&Break != 0 {
		t.Errorf("PushByte() = %#02x, Break should be clear", got)
	}
	if got := r.PushByteBRK(); got&Break == 0 {
		t.Errorf("PushByteBRK() = %#02x, Break should be set", got)
	}
}

func TestPullFromStackMasksBreakAndUnused(t *testing.T) {
	// A value pulled from the stack with B set and Unused clear should
	// come back with B cleared and Unused forced on.
	r := PullFromStack(0x10)
	if r.BreakVal() {
		t.Error("PullFromStack(0x10).BreakVal() = true, want false")
	}
	if got := r.ToByte(); got&Unused == 0 {
		t.Errorf("PullFromStack(0x10).ToByte() = %#02x, Unused should be forced on", got)
	}
}
