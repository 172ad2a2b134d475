package hamming

import (
	"errors"
	"fmt"
	"math"

	"github.com/pd0mz/go-hamming/bit"
	"github.com/pd0mz/go-hamming/fec"
	"gonum.org/v1/gonum/mat"
)

// dense loads each row as a width bit vector, most significant bit first.
func dense(rows []uint8, width int) *mat.Dense {
	var data = make([]float64, 0, len(rows)*width)
	for _, row := range rows {
		data = append(data, bit.NewBitsWidth(row, width).Float64s()...)
	}
	return mat.NewDense(len(rows), width, data)
}

// mod2 reduces every element of m to GF(2).
func mod2(m *mat.Dense) {
	m.Apply(func(_, _ int, v float64) float64 {
		return math.Mod(v, 2)
	}, m)
}

// rowBits returns row i of m as a bit vector.
func rowBits(m mat.Matrix, i int) bit.Bits {
	_, c := m.Dims()
	var bits = make(bit.Bits, c)
	for j := range bits {
		if m.At(i, j) != 0 {
			bits[j].Flip()
		}
	}
	return bits
}

func syndromeString(syndrome uint8) string {
	return bit.NewBitsWidth(syndrome, fec.Hamming7_4_ParityBits).String()
}

// CheckMatrices verifies the generator matrix, its transpose, the parity check
// matrix and the syndrome mask table against each other over GF(2).
func CheckMatrices() error {
	var (
		genRows   = fec.Hamming7_4_Generator()
		genTRows  = fec.Hamming7_4_GeneratorT()
		checkRows = fec.Hamming7_4_ParityCheck()
		masks     = fec.Hamming7_4_SyndromeMask()

		g  = dense(genRows[:], fec.Hamming7_4_CodeBits)
		gT = dense(genTRows[:], fec.Hamming7_4_DataBits)
		h  = dense(checkRows[:], fec.Hamming7_4_CodeBits)
	)

	if !mat.Equal(g.T(), gT) {
		return errors.New("hamming: transposed generator matrix does not match G")
	}

	// Every codeword must have a zero syndrome: H x G^T = 0.
	var hg mat.Dense
	hg.Mul(h, gT)
	mod2(&hg)
	if !mat.Equal(&hg, mat.NewDense(fec.Hamming7_4_ParityBits, fec.Hamming7_4_DataBits, nil)) {
		return fmt.Errorf("hamming: H x G^T is not zero:\n%v", mat.Formatted(&hg))
	}

	// The encoder must agree with data x G.
	for data := 0; data < fec.Hamming7_4_DataValues; data++ {
		var code mat.Dense
		code.Mul(dense([]uint8{uint8(data)}, fec.Hamming7_4_DataBits), g)
		mod2(&code)
		want := rowBits(&code, 0)
		got := bit.NewBitsWidth(fec.Hamming7_4_EncodeMatrix(uint8(data)), fec.Hamming7_4_CodeBits)
		if !got.Equal(want) {
			return fmt.Errorf("hamming: encoding %#x gives %s, data x G gives %s", data, got, want)
		}
	}

	// Columns of H are the syndromes of single bit errors; they must be unique,
	// non-zero and map back to the errored bit.
	if masks[0] != 0 {
		return fmt.Errorf("hamming: zero syndrome masks %#02x", masks[0])
	}
	var seen [fec.Hamming7_4_ParityValues]bool
	hT := h.T()
	for col := 0; col < fec.Hamming7_4_CodeBits; col++ {
		syndrome := rowBits(hT, col).Uint8()
		bitMask := uint8(1) << uint(fec.Hamming7_4_CodeBits-1-col)
		switch {
		case syndrome == 0:
			return fmt.Errorf("hamming: code bit %#02x has a zero syndrome", bitMask)
		case seen[syndrome]:
			return fmt.Errorf("hamming: syndrome %s is not unique", syndromeString(syndrome))
		case masks[syndrome] != bitMask:
			return fmt.Errorf("hamming: syndrome %s masks %#02x, expected %#02x", syndromeString(syndrome), masks[syndrome], bitMask)
		}
		seen[syndrome] = true
		if got := fec.Hamming7_4_Syndrome(bitMask); got != syndrome {
			return fmt.Errorf("hamming: syndrome of %#02x is %s, H gives %s", bitMask, syndromeString(got), syndromeString(syndrome))
		}
	}

	log.Debug("generator and parity check matrices are consistent")
	return nil
}
