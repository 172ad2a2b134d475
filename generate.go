package hamming

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pd0mz/go-hamming/fec"
)

// GenerateCodes encodes every data value with the generator matrix.
func GenerateCodes() [fec.Hamming7_4_DataValues]uint8 {
	var codes [fec.Hamming7_4_DataValues]uint8
	for data := range codes {
		codes[data] = fec.Hamming7_4_EncodeMatrix(uint8(data))
	}
	return codes
}

// GenerateDecodeValues decodes every codeword with the parity check matrix.
func GenerateDecodeValues() [fec.Hamming7_4_CodeValues]uint8 {
	var values [fec.Hamming7_4_CodeValues]uint8
	for code := range values {
		values[code] = fec.Hamming7_4_DecodeMatrix(uint8(code))
	}
	return values
}

// GeneratePackedDecodeValues packs the decode values two per byte, even
// codewords in the high nibble and odd codewords in the low nibble.
func GeneratePackedDecodeValues() [fec.Hamming7_4_CodeValues / 2]uint8 {
	var (
		values = GenerateDecodeValues()
		packed [fec.Hamming7_4_CodeValues / 2]uint8
	)
	for i := range packed {
		packed[i] = values[2*i]<<4 | values[2*i+1]&0x0f
	}
	return packed
}

// WriteCodeTable writes the encode table as a Go variable declaration.
func WriteCodeTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeCodeTable(bw)
	return bw.Flush()
}

// WriteDecodeTables writes the decode and packed decode tables as Go variable
// declarations.
func WriteDecodeTables(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeDecodeTables(bw)
	return bw.Flush()
}

// WriteTables writes a complete Go source file declaring all tables in package fec.
func WriteTables(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("package fec\n\nvar (\n")
	writeCodeTable(bw)
	bw.WriteString("\n")
	writeDecodeTables(bw)
	bw.WriteString(")\n")
	return bw.Flush()
}

func writeCodeTable(w *bufio.Writer) {
	w.WriteString("\t// Codewords for each data value, hamming7_4_codes[data] = code.\n")
	w.WriteString("\thamming7_4_codes = [Hamming7_4_DataValues]uint8{\n")
	for data, code := range GenerateCodes() {
		fmt.Fprintf(w, "\t\t0x%02x, // %x\n", code, data)
	}
	w.WriteString("\t}\n")
}

func writeDecodeTables(w *bufio.Writer) {
	w.WriteString("\t// Data nearest to each (possibly errored) code, hamming7_4_decode[code] = data.\n")
	w.WriteString("\thamming7_4_decode = [Hamming7_4_CodeValues]uint8{\n")
	values := GenerateDecodeValues()
	writeRows(w, values[:], 8, 1)
	w.WriteString("\t}\n\n")

	w.WriteString("\t// hamming7_4_decode packed two per byte, even codes in the high nibble.\n")
	w.WriteString("\thamming7_4_packedDecode = [Hamming7_4_CodeValues / 2]uint8{\n")
	packed := GeneratePackedDecodeValues()
	writeRows(w, packed[:], 4, 2)
	w.WriteString("\t}\n")
}

// writeRows writes perRow values per line, each line commented with the range
// of codewords it covers. Each value covers span codewords.
func writeRows(w *bufio.Writer, values []uint8, perRow, span int) {
	for i := 0; i < len(values); i += perRow {
		w.WriteString("\t\t")
		for _, v := range values[i : i+perRow] {
			fmt.Fprintf(w, "0x%02x, ", v)
		}
		first := i * span
		fmt.Fprintf(w, "// 0x%02x to 0x%02x\n", first, first+perRow*span-1)
	}
}

// CheckTables regenerates the lookup tables from the matrices and compares
// them against the tables compiled into package fec.
func CheckTables() error {
	var (
		codes, haveCodes   = GenerateCodes(), fec.Hamming7_4_Codes()
		values, haveValues = GenerateDecodeValues(), fec.Hamming7_4_DecodeValues()
		packed, havePacked = GeneratePackedDecodeValues(), fec.Hamming7_4_PackedDecodeValues()
	)
	if err := compareTable("encode", codes[:], haveCodes[:]); err != nil {
		return err
	}
	if err := compareTable("decode", values[:], haveValues[:]); err != nil {
		return err
	}
	if err := compareTable("packed decode", packed[:], havePacked[:]); err != nil {
		return err
	}
	log.Debug("lookup tables match the matrices")
	return nil
}

func compareTable(name string, want, have []uint8) error {
	if len(want) != len(have) {
		return fmt.Errorf("hamming: %s table has %d entries, expected %d", name, len(have), len(want))
	}
	for i, v := range have {
		if v != want[i] {
			return fmt.Errorf("hamming: %s table drifted at index 0x%02x: have 0x%02x, matrix gives 0x%02x", name, i, v, want[i])
		}
	}
	return nil
}
