package mpc

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"
)

func TestAuditionSMF(t *testing.T) {
	prog, err := ParsePGM(buildPGM([]string{"Kick", "Snare", "", "Clap"}))
	if err != nil {
		t.Fatalf("ParsePGM() error = %v", err)
	}

	data, err := AuditionSMF(prog, 120)
	if err != nil {
		t.Fatalf("AuditionSMF() error = %v", err)
	}

	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Fatalf("output is not a Standard MIDI File, starts with % X", data)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated SMF does not parse back: %v", err)
	}

	// One NoteOn per assigned pad, unassigned slots are rests
	var noteOns int
	for _, track := range s.Tracks {
		for _, ev := range track {
			msg := ev.Message
			if len(msg) >= 3 && msg[0] >= 0x90 && msg[0] <= 0x9F && msg[2] > 0 {
				noteOns++
			}
		}
	}

	if noteOns != 3 {
		t.Errorf("note on count = %d, want 3", noteOns)
	}
}

func TestAuditionSMFNilProgram(t *testing.T) {
	if _, err := AuditionSMF(nil, 120); err == nil {
		t.Error("AuditionSMF(nil) expected error")
	}
}

func TestPadNoteFallback(t *testing.T) {
	pad := Pad{Number: 0}
	if got := padNote(pad); got != defaultFirstPadNote {
		t.Errorf("padNote() = %d, want %d", got, defaultFirstPadNote)
	}

	pad.MIDINote = 42
	if got := padNote(pad); got != 42 {
		t.Errorf("padNote() with table entry = %d, want 42", got)
	}
}
