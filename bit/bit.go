// Package bit contains helpers for handling bit vectors, most significant bit first.
package bit

type Bit byte

func (b *Bit) Flip() {
	(*b) ^= 0x01
}

type Bits []Bit

// NewBitsWidth returns the low width bits of v.
func NewBitsWidth(v uint8, width int) Bits {
	if width > 8 {
		width = 8
	}
	var o = make(Bits, width)
	for bit, mask := 0, byte(1)<<uint(width-1); bit < width; bit, mask = bit+1, mask>>1 {
		if v&mask != 0 {
			o[bit] = 1
		}
	}
	return o
}

// Uint8 packs up to 8 bits right justified, the inverse of NewBitsWidth.
func (bits Bits) Uint8() uint8 {
	var v uint8
	for _, b := range bits {
		v <<= 1
		if b == 0x01 {
			v |= 1
		}
	}
	return v
}

func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i, b := range bits {
		if b != other[i] {
			return false
		}
	}
	return true
}

// Float64s returns the bits as 0 and 1 values, suitable for loading into a matrix row.
func (bits Bits) Float64s() []float64 {
	var o = make([]float64, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			o[i] = 1
		}
	}
	return o
}

func (bits Bits) String() string {
	var s = make([]byte, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}
