package hamming

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pd0mz/go-hamming/bit"
	"github.com/pd0mz/go-hamming/fec"
)

// Row is one line of a verification section. Values are printed as %02X.
type Row struct {
	Values   []uint8
	Mismatch bool
}

// Section holds the results of one verification pass.
type Section struct {
	Title   string
	Columns []string
	Rows    []Row
}

func (s *Section) add(mismatch bool, values ...uint8) {
	if mismatch {
		log.Debugf("%s: mismatch % 02X", s.Title, values)
	}
	s.Rows = append(s.Rows, Row{Values: values, Mismatch: mismatch})
}

// Mismatches returns the number of failed rows.
func (s *Section) Mismatches() int {
	var n int
	for _, row := range s.Rows {
		if row.Mismatch {
			n++
		}
	}
	return n
}

// Report is the outcome of Verify.
type Report struct {
	Sections []*Section
}

// Mismatches returns the number of failed rows over all sections.
func (r *Report) Mismatches() int {
	var n int
	for _, s := range r.Sections {
		n += s.Mismatches()
	}
	return n
}

// WriteTo writes all sections as tab separated tables.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	return r.write(w, false)
}

// WriteFailures writes only the failed rows of each section.
func (r *Report) WriteFailures(w io.Writer) (int64, error) {
	return r.write(w, true)
}

func (r *Report) write(w io.Writer, failuresOnly bool) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)
	for i, s := range r.Sections {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "Verifying %s ...\n", s.Title)
		bw.WriteString(strings.Join(s.Columns, "\t"))
		bw.WriteString("\n")
		for _, row := range s.Rows {
			if failuresOnly && !row.Mismatch {
				continue
			}
			if row.Mismatch {
				fmt.Fprintf(bw, "*** Error: %02X ***\n", row.Values[0])
			}
			for j, v := range row.Values {
				if j > 0 {
					bw.WriteString("\t")
				}
				fmt.Fprintf(bw, "%02X", v)
			}
			bw.WriteString("\n")
		}
	}
	err := bw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// VerifyError lists the sections that had mismatching rows.
type VerifyError struct {
	Failed []*Section
}

func (e *VerifyError) Error() string {
	var parts = make([]string, len(e.Failed))
	for i, s := range e.Failed {
		parts[i] = fmt.Sprintf("%s: %d mismatches", strings.ToLower(s.Title), s.Mismatches())
	}
	return "hamming: verify failed: " + strings.Join(parts, ", ")
}

type codec struct {
	encodeMatrix, encodeTable               EncodeFunc
	decodeMatrix, decodeTable, decodePacked DecodeFunc
}

func defaultCodec() codec {
	return codec{
		encodeMatrix: fec.Hamming7_4_EncodeMatrix,
		encodeTable:  fec.Hamming7_4_EncodeTable,
		decodeMatrix: fec.Hamming7_4_DecodeMatrix,
		decodeTable:  fec.Hamming7_4_DecodeTable,
		decodePacked: fec.Hamming7_4_DecodePackedTable,
	}
}

// Verify checks that decoding reverses encoding, that all encoders and all
// decoders agree over their full input range and that every single bit error
// is corrected. The report is always complete; err is a *VerifyError if any
// row failed.
func Verify() (*Report, error) {
	return verify(defaultCodec())
}

func verify(c codec) (*Report, error) {
	var (
		matched = &Section{Title: "Matched Encode/Decode", Columns: []string{"Value", "Encoded", "Decoded"}}
		encodes = &Section{Title: "Encodes Match", Columns: []string{"Value", "Matrix", "Table"}}
		decodes = &Section{Title: "Decodes Match", Columns: []string{"Value", "Matrix", "Table", "Packed"}}
		single  = &Section{Title: "Single Bit Errors Are Corrected", Columns: []string{"Value", "Encoded", "Error", "Decoded"}}
	)

	for data := uint8(0); data < fec.Hamming7_4_DataValues; data++ {
		code := c.encodeMatrix(data)
		decoded := c.decodeMatrix(code)
		matched.add(decoded != data, data, code, decoded)
	}

	for data := uint8(0); data < fec.Hamming7_4_DataValues; data++ {
		matrix, table := c.encodeMatrix(data), c.encodeTable(data)
		encodes.add(matrix != table, data, matrix, table)
	}

	for code := uint8(0); code < fec.Hamming7_4_CodeValues; code++ {
		matrix, table, packed := c.decodeMatrix(code), c.decodeTable(code), c.decodePacked(code)
		decodes.add(matrix != table || matrix != packed, code, matrix, table, packed)
	}

	for data := uint8(0); data < fec.Hamming7_4_DataValues; data++ {
		code := c.encodeMatrix(data)
		// Flip each code bit in turn, least significant first.
		for i := fec.Hamming7_4_CodeBits - 1; i >= 0; i-- {
			bits := bit.NewBitsWidth(code, fec.Hamming7_4_CodeBits)
			bits[i].Flip()
			corrupt := bits.Uint8()
			decoded := c.decodeMatrix(corrupt)
			single.add(decoded != data, data, code, corrupt, decoded)
		}
	}

	report := &Report{Sections: []*Section{matched, encodes, decodes, single}}
	var failed []*Section
	for _, s := range report.Sections {
		if n := s.Mismatches(); n > 0 {
			log.Warningf("%s: %d of %d rows failed", s.Title, n, len(s.Rows))
			failed = append(failed, s)
		} else {
			log.Debugf("%s: %d rows ok", s.Title, len(s.Rows))
		}
	}
	if len(failed) > 0 {
		return report, &VerifyError{Failed: failed}
	}
	return report, nil
}
