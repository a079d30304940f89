package mpc

import (
	"bytes"
	"errors"
	"testing"
)

// buildPGM creates a synthetic full-size .pgm image with the given
// sample names assigned to pads 0..len(names)-1
func buildPGM(names []string) []byte {
	data := make([]byte, padNoteOffset+NumPads)
	copy(data[HeaderOffset:], "MPC1000 PGM 1.00")
	for i, name := range names {
		offset := FirstPadOffset + i*PadEntrySize
		copy(data[offset:offset+PadNameSize], name)
	}
	return data
}

func TestParsePGM(t *testing.T) {
	names := []string{"Kick_01", "Snare_01", "HatClosed", "HatOpen"}
	prog, err := ParsePGM(buildPGM(names))
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	if prog.Header != "MPC1000 PGM 1.00" {
		t.Errorf("Header = %q, want %q", prog.Header, "MPC1000 PGM 1.00")
	}

	for i, want := range names {
		if prog.Pads[i].SampleName != want {
			t.Errorf("Pad %d name = %q, want %q", i, prog.Pads[i].SampleName, want)
		}
		if !prog.Pads[i].Assigned() {
			t.Errorf("Pad %d should be assigned", i)
		}
	}

	for i := len(names); i < NumPads; i++ {
		if prog.Pads[i].Assigned() {
			t.Errorf("Pad %d should be unassigned, got %q", i, prog.Pads[i].SampleName)
		}
	}
}

func TestParsePGMAlwaysYields64Pads(t *testing.T) {
	prog, err := ParsePGM(buildPGM(nil))
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	if len(prog.Pads) != NumPads {
		t.Fatalf("pad count = %d, want %d", len(prog.Pads), NumPads)
	}

	for i, pad := range prog.Pads {
		if pad.Number != i {
			t.Errorf("Pad %d Number = %d", i, pad.Number)
		}
	}
}

func TestParsePGMInvalidHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte{0x04, 0x2A, 0x00, 0x00}},
		{"wrong magic", func() []byte {
			data := buildPGM(nil)
			copy(data[HeaderOffset:], "MPC2500 PGM 1.00")
			return data
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePGM(tt.data)
			if err == nil {
				t.Fatal("ParsePGM() expected error for invalid data")
			}
			if !errors.Is(err, ErrInvalidHeader) {
				t.Errorf("error = %v, want ErrInvalidHeader", err)
			}
		})
	}
}

func TestParsePGMTruncated(t *testing.T) {
	data := buildPGM([]string{"Kick"})[:minPGMSize-1]
	_, err := ParsePGM(data)
	if err == nil {
		t.Fatal("ParsePGM() expected error for truncated data")
	}
	if errors.Is(err, ErrInvalidHeader) {
		t.Error("truncated record region should not be reported as a header mismatch")
	}
}

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"null terminated", []byte("Kick_01\x00garbage?"), "Kick_01"},
		{"full width", []byte("SixteenCharName1"), "SixteenCharName1"},
		{"all zero", make([]byte, PadNameSize), ""},
		{"padded with spaces", []byte("  Snare \x00\x00\x00"), "Snare"},
		{"non printable stripped", []byte("Ha\x01t\x00"), "Hat"},
		{"single char", []byte("K\x00"), "K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeName(tt.raw); got != tt.want {
				t.Errorf("decodeName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBanksPartition(t *testing.T) {
	names := make([]string, NumPads)
	for i := range names {
		names[i] = string(rune('A' + i%26))
	}
	prog, err := ParsePGM(buildPGM(names))
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	banks := prog.Banks()
	if len(banks) != NumBanks {
		t.Fatalf("bank count = %d, want %d", len(banks), NumBanks)
	}

	for b, bank := range banks {
		if len(bank) != PadsPerBank {
			t.Errorf("bank %d size = %d, want %d", b, len(bank), PadsPerBank)
		}
		for i, pad := range bank {
			want := b*PadsPerBank + i
			if pad.Number != want {
				t.Errorf("bank %d slot %d holds pad %d, want %d", b, i, pad.Number, want)
			}
			if pad.Bank() != BankNames[b] {
				t.Errorf("pad %d Bank() = %q, want %q", pad.Number, pad.Bank(), BankNames[b])
			}
			if pad.BankSlot() != i+1 {
				t.Errorf("pad %d BankSlot() = %d, want %d", pad.Number, pad.BankSlot(), i+1)
			}
		}
	}
}

func TestParsePGMDeterministic(t *testing.T) {
	data := buildPGM([]string{"Kick", "Snare", "", "Clap"})

	first, err := ParsePGM(data)
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}
	second, err := ParsePGM(data)
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	for i := range first.Pads {
		if first.Pads[i].SampleName != second.Pads[i].SampleName {
			t.Errorf("pad %d differs between parses: %q vs %q",
				i, first.Pads[i].SampleName, second.Pads[i].SampleName)
		}
		if !bytes.Equal(first.Pads[i].RawName, second.Pads[i].RawName) {
			t.Errorf("pad %d raw name differs between parses", i)
		}
	}
}

func TestParsePGMPadNoteTable(t *testing.T) {
	data := buildPGM([]string{"Kick", "Snare"})
	data[padNoteOffset] = 36
	data[padNoteOffset+1] = 38

	prog, err := ParsePGM(data)
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	if prog.Pads[0].MIDINote != 36 {
		t.Errorf("pad 0 MIDI note = %d, want 36", prog.Pads[0].MIDINote)
	}
	if prog.Pads[1].MIDINote != 38 {
		t.Errorf("pad 1 MIDI note = %d, want 38", prog.Pads[1].MIDINote)
	}
}

func TestAssignedPads(t *testing.T) {
	prog, err := ParsePGM(buildPGM([]string{"Kick", "", "Snare"}))
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	assigned := prog.AssignedPads()
	if len(assigned) != 2 {
		t.Fatalf("assigned count = %d, want 2", len(assigned))
	}
	if assigned[0].SampleName != "Kick" || assigned[1].SampleName != "Snare" {
		t.Errorf("assigned pads = %q, %q; want Kick, Snare",
			assigned[0].SampleName, assigned[1].SampleName)
	}
}
