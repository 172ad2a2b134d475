// Package hamming verifies and regenerates the Hamming(7, 4) lookup tables of
// the fec package against their generator and parity check matrices.
package hamming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-hamming/fec"
)

var log = logging.MustGetLogger("hamming")

// Strategy selects how a codeword or data value is computed.
type Strategy uint8

const (
	Matrix      Strategy = iota // computed from the generator and parity check matrices
	Table                       // full lookup tables
	PackedTable                 // decode table packed two values per byte
)

var (
	// ErrNoStrategy is returned for a strategy without an implementation.
	ErrNoStrategy = errors.New("hamming: no such strategy")

	// strategyName is also the YAML representation.
	strategyName = map[Strategy]string{
		Matrix:      "matrix",
		Table:       "table",
		PackedTable: "packed",
	}
)

func (s Strategy) String() string {
	if name, ok := strategyName[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy parses a strategy name, case insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyName {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("hamming: unknown strategy %q", name)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// EncodeFunc maps 4 bit data to a 7 bit codeword.
type EncodeFunc func(data uint8) uint8

// DecodeFunc maps a 7 bit codeword to the nearest 4 bit data value.
type DecodeFunc func(code uint8) uint8

// Encoder returns the encoder for s. There is no packed encoder.
func Encoder(s Strategy) (EncodeFunc, error) {
	switch s {
	case Matrix:
		return fec.Hamming7_4_EncodeMatrix, nil
	case Table:
		return fec.Hamming7_4_EncodeTable, nil
	default:
		return nil, fmt.Errorf("%w: %s encoder", ErrNoStrategy, s)
	}
}

// Decoder returns the decoder for s.
func Decoder(s Strategy) (DecodeFunc, error) {
	switch s {
	case Matrix:
		return fec.Hamming7_4_DecodeMatrix, nil
	case Table:
		return fec.Hamming7_4_DecodeTable, nil
	case PackedTable:
		return fec.Hamming7_4_DecodePackedTable, nil
	default:
		return nil, fmt.Errorf("%w: %s decoder", ErrNoStrategy, s)
	}
}
