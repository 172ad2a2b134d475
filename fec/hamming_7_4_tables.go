package fec

var (
	// Codewords for each data value, hamming7_4_codes[data] = code.
	hamming7_4_codes = [Hamming7_4_DataValues]uint8{
		0x00, // 0
		0x71, // 1
		0x62, // 2
		0x13, // 3
		0x54, // 4
		0x25, // 5
		0x36, // 6
		0x47, // 7
		0x38, // 8
		0x49, // 9
		0x5a, // a
		0x2b, // b
		0x6c, // c
		0x1d, // d
		0x0e, // e
		0x7f, // f
	}

	// Data nearest to each (possibly errored) code, hamming7_4_decode[code] = data.
	hamming7_4_decode = [Hamming7_4_CodeValues]uint8{
		0x00, 0x00, 0x00, 0x03, 0x00, 0x05, 0x0e, 0x07, // 0x00 to 0x07
		0x00, 0x09, 0x0e, 0x0b, 0x0e, 0x0d, 0x0e, 0x0e, // 0x08 to 0x0f
		0x00, 0x03, 0x03, 0x03, 0x04, 0x0d, 0x06, 0x03, // 0x10 to 0x17
		0x08, 0x0d, 0x0a, 0x03, 0x0d, 0x0d, 0x0e, 0x0d, // 0x18 to 0x1f
		0x00, 0x05, 0x02, 0x0b, 0x05, 0x05, 0x06, 0x05, // 0x20 to 0x27
		0x08, 0x0b, 0x0b, 0x0b, 0x0c, 0x05, 0x0e, 0x0b, // 0x28 to 0x2f
		0x08, 0x01, 0x06, 0x03, 0x06, 0x05, 0x06, 0x06, // 0x30 to 0x37
		0x08, 0x08, 0x08, 0x0b, 0x08, 0x0d, 0x06, 0x0f, // 0x38 to 0x3f
		0x00, 0x09, 0x02, 0x07, 0x04, 0x07, 0x07, 0x07, // 0x40 to 0x47
		0x09, 0x09, 0x0a, 0x09, 0x0c, 0x09, 0x0e, 0x07, // 0x48 to 0x4f
		0x04, 0x01, 0x0a, 0x03, 0x04, 0x04, 0x04, 0x07, // 0x50 to 0x57
		0x0a, 0x09, 0x0a, 0x0a, 0x04, 0x0d, 0x0a, 0x0f, // 0x58 to 0x5f
		0x02, 0x01, 0x02, 0x02, 0x0c, 0x05, 0x02, 0x07, // 0x60 to 0x67
		0x0c, 0x09, 0x02, 0x0b, 0x0c, 0x0c, 0x0c, 0x0f, // 0x68 to 0x6f
		0x01, 0x01, 0x02, 0x01, 0x04, 0x01, 0x06, 0x0f, // 0x70 to 0x77
		0x08, 0x01, 0x0a, 0x0f, 0x0c, 0x0f, 0x0f, 0x0f, // 0x78 to 0x7f
	}

	// hamming7_4_decode packed two per byte, even codes in the high nibble.
	hamming7_4_packedDecode = [Hamming7_4_CodeValues / 2]uint8{
		0x00, 0x03, 0x05, 0xe7, // 0x00 to 0x07
		0x09, 0xeb, 0xed, 0xee, // 0x08 to 0x0f
		0x03, 0x33, 0x4d, 0x63, // 0x10 to 0x17
		0x8d, 0xa3, 0xdd, 0xed, // 0x18 to 0x1f
		0x05, 0x2b, 0x55, 0x65, // 0x20 to 0x27
		0x8b, 0xbb, 0xc5, 0xeb, // 0x28 to 0x2f
		0x81, 0x63, 0x65, 0x66, // 0x30 to 0x37
		0x88, 0x8b, 0x8d, 0x6f, // 0x38 to 0x3f
		0x09, 0x27, 0x47, 0x77, // 0x40 to 0x47
		0x99, 0xa9, 0xc9, 0xe7, // 0x48 to 0x4f
		0x41, 0xa3, 0x44, 0x47, // 0x50 to 0x57
		0xa9, 0xaa, 0x4d, 0xaf, // 0x58 to 0x5f
		0x21, 0x22, 0xc5, 0x27, // 0x60 to 0x67
		0xc9, 0x2b, 0xcc, 0xcf, // 0x68 to 0x6f
		0x11, 0x21, 0x41, 0x6f, // 0x70 to 0x77
		0x81, 0xaf, 0xcf, 0xff, // 0x78 to 0x7f
	}
)
