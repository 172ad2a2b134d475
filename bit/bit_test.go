package bit

import "testing"

func TestBit(t *testing.T) {
	var tests = []struct {
		Test uint8
		Want Bits
	}{
		{
			0x2a,
			Bits{0, 0, 1, 0, 1, 0, 1, 0},
		},
		{
			0xbe,
			Bits{1, 0, 1, 1, 1, 1, 1, 0},
		},
	}

	for _, test := range tests {
		got := NewBitsWidth(test.Test, 8)
		if len(got) != len(test.Want) {
			t.Fatalf("expected length %d, got %d [%s]", len(test.Want), len(got), got.String())
		}
		if !got.Equal(test.Want) {
			t.Fatalf("bits are off: %v != %v", got, test.Want)
		}
		if got.Equal(test.Want[1:]) {
			t.Fatal("bits of different length are equal")
		}
		if back := got.Uint8(); back != test.Test {
			t.Fatalf("round trip is off: %#02x != %#02x", back, test.Test)
		}
	}
}

func TestBitsWidth(t *testing.T) {
	var tests = []struct {
		Value uint8
		Width int
		Want  string
	}{
		{0x71, 7, "1110001"},
		{0x0b, 4, "1011"},
		{0x05, 3, "101"},
		{0xff, 4, "1111"},
		{0x00, 7, "0000000"},
	}

	for _, test := range tests {
		got := NewBitsWidth(test.Value, test.Width)
		if got.String() != test.Want {
			t.Fatalf("%#02x/%d: expected %s, got %s", test.Value, test.Width, test.Want, got)
		}
		if v := got.Uint8(); v != test.Value&uint8(1<<uint(test.Width)-1) {
			t.Fatalf("%#02x/%d: round trip gave %#02x", test.Value, test.Width, v)
		}
	}
}

func TestFlip(t *testing.T) {
	bits := NewBitsWidth(0x00, 4)
	bits[3].Flip()
	if bits.Uint8() != 0x01 {
		t.Fatalf("expected 0x01, got %#02x", bits.Uint8())
	}
	bits[3].Flip()
	if bits.Uint8() != 0x00 {
		t.Fatalf("expected 0x00, got %#02x", bits.Uint8())
	}
}

func TestFloat64s(t *testing.T) {
	got := NewBitsWidth(0x05, 3).Float64s()
	want := []float64{1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: %v != %v", i, got, want)
		}
	}
}
