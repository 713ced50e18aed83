package bit

import "testing"

func TestCombine(t *testing.T) {
	if got := Combine(0x12, 0x34); got != 0x1234 {
		t.Errorf("Combine(0x12, 0x34) = 0x%04X, want 0x1234", got)
	}
}

func TestIsSet(t *testing.T) {
	cases := []struct {
		index uint8
		b     uint8
		want  bool
	}{
		{0, 0x01, true},
		{0, 0xFE, false},
		{7, 0x80, true},
		{7, 0x7F, false},
	}

	for _, c := range cases {
		if got := IsSet(c.index, c.b); got != c.want {
			t.Errorf("IsSet(%d, 0x%02X) = %v, want %v", c.index, c.b, got, c.want)
		}
	}
}

func TestSetReset(t *testing.T) {
	var b uint8 = 0x00
	b = Set(3, b)
	if b != 0x08 {
		t.Fatalf("Set(3, 0) = 0x%02X, want 0x08", b)
	}
	b = Reset(3, b)
	if b != 0x00 {
		t.Fatalf("Reset(3, 0x08) = 0x%02X, want 0x00", b)
	}
}

func TestHighLow(t *testing.T) {
	if High(0xABCD) != 0xAB {
		t.Errorf("High(0xABCD) = 0x%02X, want 0xAB", High(0xABCD))
	}
	if Low(0xABCD) != 0xCD {
		t.Errorf("Low(0xABCD) = 0x%02X, want 0xCD", Low(0xABCD))
	}
}

func TestExtractBits(t *testing.T) {
	if got := ExtractBits(0b11010110, 6, 4); got != 0b101 {
		t.Errorf("ExtractBits = 0b%b, want 0b101", got)
	}
}
