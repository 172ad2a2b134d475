package fec

// Hamming(7, 4, 3) code sizes. Codewords are right justified in a byte, the 3
// parity bits occupy bits 6-4 and the data bits occupy the low nibble.
const (
	Hamming7_4_DataBits   = 4
	Hamming7_4_ParityBits = 3
	Hamming7_4_CodeBits   = Hamming7_4_DataBits + Hamming7_4_ParityBits

	Hamming7_4_DataValues   = 1 << Hamming7_4_DataBits
	Hamming7_4_ParityValues = 1 << Hamming7_4_ParityBits
	Hamming7_4_CodeValues   = 1 << Hamming7_4_CodeBits

	hamming7_4_dataMask = Hamming7_4_DataValues - 1
	hamming7_4_codeMask = Hamming7_4_CodeValues - 1
)

var (
	// Generator matrix G, one row per data bit. Bits 6-4 of each row are the
	// parity bits the data bit contributes to.
	hamming7_4_gen = [Hamming7_4_DataBits]uint8{
		0x38, // 0 1 1 | 1 0 0 0
		0x54, // 1 0 1 | 0 1 0 0
		0x62, // 1 1 0 | 0 0 1 0
		0x71, // 1 1 1 | 0 0 0 1
	}

	// G transposed, one row per code bit.
	hamming7_4_genT = [Hamming7_4_CodeBits]uint8{
		0x07, // 0 1 1 1
		0x0b, // 1 0 1 1
		0x0d, // 1 1 0 1
		0x08, // 1 0 0 0
		0x04, // 0 1 0 0
		0x02, // 0 0 1 0
		0x01, // 0 0 0 1
	}

	// Parity check matrix H. The 4 LSBs select the data bits a parity bit covers.
	hamming7_4_check = [Hamming7_4_ParityBits]uint8{
		0x47, // 1 0 0 | 0 1 1 1
		0x2b, // 0 1 0 | 1 0 1 1
		0x1d, // 0 0 1 | 1 1 0 1
	}

	// Syndrome to the mask that flips the errored code bit.
	hamming7_4_syndromeMask = [Hamming7_4_ParityValues]uint8{
		0x00, // 0 0 0
		0x10, // 0 0 1
		0x20, // 0 1 0
		0x08, // 0 1 1
		0x40, // 1 0 0
		0x04, // 1 0 1
		0x02, // 1 1 0
		0x01, // 1 1 1
	}
)

// Hamming7_4_Parity returns the modulo 2 sum of the 7 least significant bits.
func Hamming7_4_Parity(bits uint8) uint8 {
	var sum uint8
	for mask := uint8(0x01); mask < 1<<Hamming7_4_CodeBits; mask <<= 1 {
		if bits&mask != 0 {
			sum++
		}
	}
	return sum & 0x01
}

// Hamming7_4_EncodeMatrix computes the codeword for the low 4 bits of data by
// multiplying it with the generator matrix, one code bit at a time.
func Hamming7_4_EncodeMatrix(data uint8) uint8 {
	var code uint8
	data &= hamming7_4_dataMask
	for i := 0; i < Hamming7_4_CodeBits; i++ {
		code <<= 1
		code |= Hamming7_4_Parity(hamming7_4_genT[i] & data)
	}
	return code
}

// Hamming7_4_EncodeTable looks up the codeword for the low 4 bits of data.
func Hamming7_4_EncodeTable(data uint8) uint8 {
	return hamming7_4_codes[data&hamming7_4_dataMask]
}

// Hamming7_4_Syndrome multiplies the low 7 bits of code with the parity check
// matrix. A zero syndrome means no error was detected.
func Hamming7_4_Syndrome(code uint8) uint8 {
	var syndrome uint8
	code &= hamming7_4_codeMask
	for i := 0; i < Hamming7_4_ParityBits; i++ {
		syndrome <<= 1
		syndrome |= Hamming7_4_Parity(hamming7_4_check[i] & code)
	}
	return syndrome
}

// Hamming7_4_DecodeMatrix returns the data nearest to code, correcting a single
// bit error. Two or more bit errors may decode to the wrong value.
func Hamming7_4_DecodeMatrix(code uint8) uint8 {
	code &= hamming7_4_codeMask
	return (code ^ hamming7_4_syndromeMask[Hamming7_4_Syndrome(code)]) & hamming7_4_dataMask
}

// Hamming7_4_DecodeTable looks up the data nearest to the low 7 bits of code.
func Hamming7_4_DecodeTable(code uint8) uint8 {
	return hamming7_4_decode[code&hamming7_4_codeMask]
}

// Hamming7_4_DecodePackedTable looks up the data nearest to the low 7 bits of
// code in the packed table. Even codes are stored in the high nibble, odd codes
// in the low nibble.
func Hamming7_4_DecodePackedTable(code uint8) uint8 {
	code &= hamming7_4_codeMask
	decoded := hamming7_4_packedDecode[code/2]
	if code%2 == 1 {
		return decoded & 0x0f
	}
	return decoded >> 4
}

// Hamming7_4_Generator returns the generator matrix G.
func Hamming7_4_Generator() [Hamming7_4_DataBits]uint8 {
	return hamming7_4_gen
}

// Hamming7_4_GeneratorT returns G transposed.
func Hamming7_4_GeneratorT() [Hamming7_4_CodeBits]uint8 {
	return hamming7_4_genT
}

// Hamming7_4_ParityCheck returns the parity check matrix H.
func Hamming7_4_ParityCheck() [Hamming7_4_ParityBits]uint8 {
	return hamming7_4_check
}

// Hamming7_4_SyndromeMask returns the syndrome to correction mask table.
func Hamming7_4_SyndromeMask() [Hamming7_4_ParityValues]uint8 {
	return hamming7_4_syndromeMask
}

// Hamming7_4_Codes returns the encode table.
func Hamming7_4_Codes() [Hamming7_4_DataValues]uint8 {
	return hamming7_4_codes
}

// Hamming7_4_DecodeValues returns the decode table.
func Hamming7_4_DecodeValues() [Hamming7_4_CodeValues]uint8 {
	return hamming7_4_decode
}

// Hamming7_4_PackedDecodeValues returns the packed decode table.
func Hamming7_4_PackedDecodeValues() [Hamming7_4_CodeValues / 2]uint8 {
	return hamming7_4_packedDecode
}
