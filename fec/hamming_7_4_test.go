package fec

import (
	"math/rand"
	"sync"
	"testing"
)

func TestHamming7_4_Parity(t *testing.T) {
	tests := map[uint8]uint8{
		0x00: 0,
		0x01: 1,
		0x03: 0,
		0x07: 1,
		0x40: 1,
		0x41: 0,
		0x7f: 1,
		0x80: 0, // outside the 7 code bits
		0xff: 1,
	}

	for test, want := range tests {
		if got := Hamming7_4_Parity(test); got != want {
			t.Fatalf("parity %#02x failed: %d != %d", test, got, want)
		}
	}
}

func TestHamming7_4_Vectors(t *testing.T) {
	encode := map[uint8]uint8{
		0x0: 0x00,
		0x1: 0x71,
		0x2: 0x62,
		0x8: 0x38,
		0xe: 0x0e,
		0xf: 0x7f,
	}
	for data, want := range encode {
		if got := Hamming7_4_EncodeMatrix(data); got != want {
			t.Fatalf("encode %#x failed: %#02x != %#02x", data, got, want)
		}
	}

	decode := map[uint8]uint8{
		0x00: 0x0,
		0x7f: 0xf,
		0x71: 0x1,
		0x70: 0x1,
		0x01: 0x0,
	}
	for code, want := range decode {
		if got := Hamming7_4_DecodeMatrix(code); got != want {
			t.Fatalf("decode %#02x failed: %#x != %#x", code, got, want)
		}
	}

	if got := Hamming7_4_DecodePackedTable(0x00); got != 0x0 {
		t.Fatalf("packed decode 0x00 failed: %#x", got)
	}
	if got := Hamming7_4_DecodePackedTable(0x01); got != 0x0 {
		t.Fatalf("packed decode 0x01 failed: %#x", got)
	}
}

func TestHamming7_4_Encode(t *testing.T) {
	for data := uint8(0); data < Hamming7_4_DataValues; data++ {
		matrix, table := Hamming7_4_EncodeMatrix(data), Hamming7_4_EncodeTable(data)
		if matrix != table {
			t.Fatalf("encode %#x: matrix %#02x != table %#02x", data, matrix, table)
		}
		if matrix&data != data {
			t.Fatalf("encode %#x: code %#02x does not carry the data bits", data, matrix)
		}
	}
}

func TestHamming7_4_Decode(t *testing.T) {
	for code := uint8(0); code < Hamming7_4_CodeValues; code++ {
		var (
			matrix = Hamming7_4_DecodeMatrix(code)
			table  = Hamming7_4_DecodeTable(code)
			packed = Hamming7_4_DecodePackedTable(code)
		)
		if matrix != table || matrix != packed {
			t.Fatalf("decode %#02x: matrix %#x, table %#x, packed %#x", code, matrix, table, packed)
		}
	}
}

func TestHamming7_4_RoundTrip(t *testing.T) {
	for data := uint8(0); data < Hamming7_4_DataValues; data++ {
		code := Hamming7_4_EncodeMatrix(data)
		if got := Hamming7_4_DecodeMatrix(code); got != data {
			t.Fatalf("round trip %#x: got %#x via %#02x", data, got, code)
		}
		if syndrome := Hamming7_4_Syndrome(code); syndrome != 0 {
			t.Fatalf("code %#02x: expected zero syndrome, got %03b", code, syndrome)
		}
		// Decoding a clean code again must be stable.
		again := Hamming7_4_DecodeMatrix(Hamming7_4_EncodeMatrix(Hamming7_4_DecodeMatrix(code)))
		if again != Hamming7_4_DecodeMatrix(code) {
			t.Fatalf("code %#02x: decode/encode/decode gave %#x", code, again)
		}
	}
}

func TestHamming7_4_SingleBitError(t *testing.T) {
	for data := uint8(0); data < Hamming7_4_DataValues; data++ {
		code := Hamming7_4_EncodeMatrix(data)
		for mask := uint8(0x01); mask < 0x80; mask <<= 1 {
			corrupt := code ^ mask
			if syndrome := Hamming7_4_Syndrome(corrupt); syndrome == 0 {
				t.Fatalf("code %#02x with error %#02x: zero syndrome", code, mask)
			} else if got := Hamming7_4_SyndromeMask()[syndrome]; got != mask {
				t.Fatalf("code %#02x with error %#02x: syndrome %03b masks %#02x", code, mask, syndrome, got)
			}
			if got := Hamming7_4_DecodeMatrix(corrupt); got != data {
				t.Fatalf("code %#02x with error %#02x: matrix decoded %#x, want %#x", code, mask, got, data)
			}
			if got := Hamming7_4_DecodeTable(corrupt); got != data {
				t.Fatalf("code %#02x with error %#02x: table decoded %#x, want %#x", code, mask, got, data)
			}
			if got := Hamming7_4_DecodePackedTable(corrupt); got != data {
				t.Fatalf("code %#02x with error %#02x: packed decoded %#x, want %#x", code, mask, got, data)
			}
		}
	}
}

func TestHamming7_4_PackedNibbles(t *testing.T) {
	packed := Hamming7_4_PackedDecodeValues()
	decode := Hamming7_4_DecodeValues()
	for i, entry := range packed {
		even, odd := uint8(2*i), uint8(2*i+1)
		if entry>>4 != decode[even] {
			t.Fatalf("packed entry %d: high nibble %#x != decode[%#02x] %#x", i, entry>>4, even, decode[even])
		}
		if entry&0x0f != decode[odd] {
			t.Fatalf("packed entry %d: low nibble %#x != decode[%#02x] %#x", i, entry&0x0f, odd, decode[odd])
		}
		if got := Hamming7_4_DecodePackedTable(even); got != decode[even] {
			t.Fatalf("packed decode %#02x (even): %#x != %#x", even, got, decode[even])
		}
		if got := Hamming7_4_DecodePackedTable(odd); got != decode[odd] {
			t.Fatalf("packed decode %#02x (odd): %#x != %#x", odd, got, decode[odd])
		}
	}
}

func TestHamming7_4_OutOfRange(t *testing.T) {
	for data := 0; data < 256; data++ {
		var (
			in   = uint8(data)
			want = Hamming7_4_EncodeMatrix(in & 0x0f)
		)
		if got := Hamming7_4_EncodeMatrix(in); got != want {
			t.Fatalf("encode matrix %#02x: %#02x != %#02x", in, got, want)
		}
		if got := Hamming7_4_EncodeTable(in); got != want {
			t.Fatalf("encode table %#02x: %#02x != %#02x", in, got, want)
		}
	}
	for code := 0; code < 256; code++ {
		var (
			in   = uint8(code)
			want = Hamming7_4_DecodeMatrix(in & 0x7f)
		)
		if got := Hamming7_4_DecodeMatrix(in); got != want {
			t.Fatalf("decode matrix %#02x: %#x != %#x", in, got, want)
		}
		if got := Hamming7_4_DecodeTable(in); got != want {
			t.Fatalf("decode table %#02x: %#x != %#x", in, got, want)
		}
		if got := Hamming7_4_DecodePackedTable(in); got != want {
			t.Fatalf("decode packed %#02x: %#x != %#x", in, got, want)
		}
	}
}

func TestHamming7_4_Random(t *testing.T) {
	for i := 0; i < 1000; i++ {
		data := uint8(rand.Intn(Hamming7_4_DataValues))
		code := Hamming7_4_EncodeTable(data)
		corrupt := code ^ (1 << uint(rand.Intn(Hamming7_4_CodeBits)))
		if got := Hamming7_4_DecodePackedTable(corrupt); got != data {
			t.Fatalf("random %#x: %#02x decoded to %#x", data, corrupt, got)
		}
	}
}

func TestHamming7_4_Tables(t *testing.T) {
	// Copies must not alias the package tables.
	codes := Hamming7_4_Codes()
	codes[1] = 0
	if Hamming7_4_EncodeTable(1) != 0x71 {
		t.Fatal("encode table was modified through a copy")
	}
	gen := Hamming7_4_Generator()
	genT := Hamming7_4_GeneratorT()
	for row := 0; row < Hamming7_4_CodeBits; row++ {
		for col := 0; col < Hamming7_4_DataBits; col++ {
			g := gen[col] >> uint(Hamming7_4_CodeBits-1-row) & 1
			gt := genT[row] >> uint(Hamming7_4_DataBits-1-col) & 1
			if g != gt {
				t.Fatalf("G[%d][%d] = %d, G^T[%d][%d] = %d", col, row, g, row, col, gt)
			}
		}
	}
	if len(Hamming7_4_ParityCheck()) != Hamming7_4_ParityBits {
		t.Fatal("unexpected parity check size")
	}
}

func TestHamming7_4_Concurrent(t *testing.T) {
	var (
		wg     sync.WaitGroup
		errors = make(chan string, 8)
	)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 100; round++ {
				for code := uint8(0); code < Hamming7_4_CodeValues; code++ {
					matrix := Hamming7_4_DecodeMatrix(code)
					if matrix != Hamming7_4_DecodeTable(code) || matrix != Hamming7_4_DecodePackedTable(code) {
						errors <- "decoders disagree"
						return
					}
					if Hamming7_4_EncodeTable(matrix) != Hamming7_4_EncodeMatrix(matrix) {
						errors <- "encoders disagree"
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errors)
	for err := range errors {
		t.Fatal(err)
	}
}

func TestHamming7_4_Parallel(t *testing.T) {
	for data := uint8(0); data < Hamming7_4_DataValues; data++ {
		data := data
		t.Run(string("0123456789abcdef"[data]), func(t *testing.T) {
			t.Parallel()
			code := Hamming7_4_EncodeTable(data)
			for mask := uint8(0x01); mask < 0x80; mask <<= 1 {
				if got := Hamming7_4_DecodePackedTable(code ^ mask); got != data {
					t.Fatalf("code %#02x with error %#02x: decoded %#x", code, mask, got)
				}
			}
		})
	}
}

func BenchmarkHamming7_4_DecodeMatrix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hamming7_4_DecodeMatrix(uint8(i))
	}
}

func BenchmarkHamming7_4_DecodeTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hamming7_4_DecodeTable(uint8(i))
	}
}

func BenchmarkHamming7_4_DecodePackedTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hamming7_4_DecodePackedTable(uint8(i))
	}
}
