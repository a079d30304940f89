// Package mpc parses Akai MPC1000 program (.pgm) files
package mpc

// MPC1000 .pgm layout constants
const (
	HeaderOffset   = 0x04 // 16-byte version string, contains "MPC1000 PGM"
	HeaderSize     = 16
	HeaderMagic    = "MPC1000 PGM"
	FirstPadOffset = 0x18 // first pad record
	PadEntrySize   = 0xA4 // stride between pad records
	PadNameSize    = 16   // null-terminated ASCII sample name
	NumPads        = 64
	NumBanks       = 8
	PadsPerBank    = 8

	// Pad MIDI note table: one byte per pad, directly after the pad records
	padNoteOffset = FirstPadOffset + NumPads*PadEntrySize
)

// BankNames is the SP-303 bank lettering, in pad order
var BankNames = [NumBanks]string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Pad is one of the 64 pad slots in a program
type Pad struct {
	Number     int    // 0-63, program order
	RawName    []byte // the 16-byte name field as stored
	SampleName string // decoded name, empty if the pad is unassigned
	MIDINote   uint8  // from the pad note table, 0 if absent
}

// Assigned reports whether the pad has a sample name
func (p Pad) Assigned() bool {
	return p.SampleName != ""
}

// Bank returns the bank letter the pad falls into (A-H)
func (p Pad) Bank() string {
	return BankNames[p.Number/PadsPerBank]
}

// BankSlot returns the pad's 1-based position within its bank (1-8)
func (p Pad) BankSlot() int {
	return p.Number%PadsPerBank + 1
}

// Program is a fully parsed .pgm file
type Program struct {
	Header string // the raw version string, e.g. "MPC1000 PGM 1.00"
	Pads   [NumPads]Pad
}

// Banks partitions the pads into 8 banks of 8, preserving program order.
// Bank i holds pads [8i, 8i+8).
func (p *Program) Banks() [NumBanks][]Pad {
	var banks [NumBanks][]Pad
	for i := 0; i < NumBanks; i++ {
		banks[i] = p.Pads[i*PadsPerBank : (i+1)*PadsPerBank]
	}
	return banks
}

// AssignedPads returns the pads that carry a sample name, in program order
func (p *Program) AssignedPads() []Pad {
	var assigned []Pad
	for _, pad := range p.Pads {
		if pad.Assigned() {
			assigned = append(assigned, pad)
		}
	}
	return assigned
}
