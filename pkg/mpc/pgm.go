package mpc

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidHeader is returned when the file does not carry the
// MPC1000 program magic. Wrapped errors can be tested with errors.Is.
var ErrInvalidHeader = errors.New("not a recognized MPC1000 program file")

// minPGMSize is the smallest file that can hold all 64 pad records
const minPGMSize = FirstPadOffset + (NumPads-1)*PadEntrySize + PadNameSize

// ParsePGMFile reads a .pgm file and returns the parsed Program
func ParsePGMFile(filename string) (*Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read pgm file: %w", err)
	}
	return ParsePGM(data)
}

// ParsePGM parses .pgm data and returns the Program. It either yields
// all 64 pad slots or fails; there is no partial result.
func ParsePGM(data []byte) (*Program, error) {
	if err := ValidatePGM(data); err != nil {
		return nil, err
	}

	prog := &Program{
		Header: decodeName(data[HeaderOffset : HeaderOffset+HeaderSize]),
	}

	for i := 0; i < NumPads; i++ {
		offset := FirstPadOffset + i*PadEntrySize
		raw := make([]byte, PadNameSize)
		copy(raw, data[offset:offset+PadNameSize])

		prog.Pads[i] = Pad{
			Number:     i,
			RawName:    raw,
			SampleName: decodeName(raw),
		}
	}

	// The pad note table is only present in full-size program files
	if len(data) >= padNoteOffset+NumPads {
		for i := 0; i < NumPads; i++ {
			prog.Pads[i].MIDINote = data[padNoteOffset+i] & 0x7F
		}
	}

	return prog, nil
}

// ValidatePGM checks the magic header and that all 64 pad records fit
func ValidatePGM(data []byte) error {
	if len(data) < HeaderOffset+HeaderSize {
		return fmt.Errorf("%w: file too short (%d bytes)", ErrInvalidHeader, len(data))
	}

	header := decodeName(data[HeaderOffset : HeaderOffset+HeaderSize])
	if !strings.Contains(header, HeaderMagic) {
		return fmt.Errorf("%w: header %q", ErrInvalidHeader, header)
	}

	if len(data) < minPGMSize {
		return fmt.Errorf("pgm data truncated: got %d bytes, need at least %d", len(data), minPGMSize)
	}

	return nil
}

// decodeName decodes a fixed-width name field: stops at the first NUL,
// keeps printable ASCII only, trims surrounding whitespace. An empty
// result marks an unassigned slot.
func decodeName(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c == 0 {
			break
		}
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}
