// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import (
	"errors"
	"testing"
)

// ============================================================
// Value7 / Channel / Program / Control Tests
// ============================================================

func TestNewValue7_Range(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v, err := NewValue7(uint8(i))
		if i <= 127 {
			if err != nil {
				t.Fatalf("NewValue7(%d) failed: %v", i, err)
			}
			if v.Byte() != uint8(i) {
				t.Errorf("NewValue7(%d).Byte() = %d", i, v.Byte())
			}
		} else if err == nil {
			t.Errorf("NewValue7(%d) should fail", i)
		}
	}
}

func TestNewValue7_OutOfRangeError(t *testing.T) {
	_, err := NewValue7(200)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *OutOfRangeError, got %T", err)
	}
	if oor.Kind != "Value7" || oor.Value != 200 || oor.Max != 127 {
		t.Errorf("unexpected error fields: %+v", oor)
	}
}

func TestNewChannel_Range(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c, err := NewChannel(uint8(i))
		if i <= 15 {
			if err != nil {
				t.Fatalf("NewChannel(%d) failed: %v", i, err)
			}
			if c.Num() != uint8(i) {
				t.Errorf("NewChannel(%d).Num() = %d", i, c.Num())
			}
		} else if err == nil {
			t.Errorf("NewChannel(%d) should fail", i)
		}
	}
}

func TestNewProgram_Range(t *testing.T) {
	for i := 0; i <= 255; i++ {
		p, err := NewProgram(uint8(i))
		if i <= 127 {
			if err != nil {
				t.Fatalf("NewProgram(%d) failed: %v", i, err)
			}
			if p.Byte() != uint8(i) {
				t.Errorf("NewProgram(%d).Byte() = %d", i, p.Byte())
			}
		} else if err == nil {
			t.Errorf("NewProgram(%d) should fail", i)
		}
	}
}

func TestNewControl_Range(t *testing.T) {
	for i := 0; i <= 255; i++ {
		_, err := NewControl(uint8(i))
		if i <= 127 && err != nil {
			t.Fatalf("NewControl(%d) failed: %v", i, err)
		}
		if i > 127 && err == nil {
			t.Errorf("NewControl(%d) should fail", i)
		}
	}
}

// ============================================================
// Value14 Tests
// ============================================================

// The 16-bit conversion had a truncation defect in an earlier revision of
// this codec; the exhaustive round trip pins the exact semantics.
func TestNewValue14_ExactRoundTrip(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		v, err := NewValue14(uint16(i))
		if i > MaxValue14 {
			if err == nil {
				t.Errorf("NewValue14(%d) should fail", i)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewValue14(%d) failed: %v", i, err)
		}
		if got := v.Uint16(); got != uint16(i) {
			t.Fatalf("NewValue14(%d).Uint16() = %d", i, got)
		}
		if rt := Value14FromParts(v.Lsb(), v.Msb()); rt.Uint16() != uint16(i) {
			t.Fatalf("parts round trip of %d = %d", i, rt.Uint16())
		}
	}
}

func TestValue14_Decomposition(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
		lsb   uint8
		msb   uint8
	}{
		{"zero", 0, 0, 0},
		{"max", 16383, 127, 127},
		{"pitch bend center", 8192, 0, 64},
		{"alternating bits", 0b0011001100110011, 0b0110011, 0b1100110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewValue14(tt.value)
			if err != nil {
				t.Fatalf("NewValue14(%d) failed: %v", tt.value, err)
			}
			if v.Lsb().Byte() != tt.lsb || v.Msb().Byte() != tt.msb {
				t.Errorf("decomposition of %d = (lsb=%d, msb=%d), want (lsb=%d, msb=%d)",
					tt.value, v.Lsb().Byte(), v.Msb().Byte(), tt.lsb, tt.msb)
			}
		})
	}
}

func TestValue14_FromParts(t *testing.T) {
	lsb, _ := NewValue7(0b01010101)
	msb, _ := NewValue7(0b01010101)
	v := Value14FromParts(lsb, msb)
	if v.Uint16() != 0b0010101011010101 {
		t.Errorf("combined value = %#016b", v.Uint16())
	}
}

func TestValue14_Bend(t *testing.T) {
	tests := []struct {
		bend  int16
		value uint16
	}{
		{0, 8192},
		{1, 8193},
		{-1, 8191},
		{8191, 16383},
		{-8192, 0},
	}

	for _, tt := range tests {
		v := Value14FromBend(tt.bend)
		if v.Uint16() != tt.value {
			t.Errorf("Value14FromBend(%d).Uint16() = %d, want %d", tt.bend, v.Uint16(), tt.value)
		}
		if v.Bend() != tt.bend {
			t.Errorf("Value14FromBend(%d).Bend() = %d", tt.bend, v.Bend())
		}
	}
}

func TestValue14_BendClamped(t *testing.T) {
	if v := Value14FromBend(8192); v.Uint16() != 16383 {
		t.Errorf("positive overflow should clamp to 16383, got %d", v.Uint16())
	}
	if v := Value14FromBend(-8193); v.Uint16() != 0 {
		t.Errorf("negative overflow should clamp to 0, got %d", v.Uint16())
	}
}
