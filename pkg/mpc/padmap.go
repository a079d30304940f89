package mpc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	auditionTicksPerQuarter = 480
	drumChannel             = 9 // MIDI channel 10
	auditionVelocity        = 100

	// MPC1000 factory pad-to-note mapping starts at note 35 (acoustic
	// bass drum); used when the program carries no pad note table.
	defaultFirstPadNote = 35
)

// AuditionSMF renders the program's assigned pads as a Standard MIDI
// File: one 16th-note hit per pad on the drum channel, in pad order.
// Useful for auditioning the pad layout from a DAW before committing
// samples to the SP-303.
func AuditionSMF(prog *Program, tempo float64) ([]byte, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if tempo <= 0 {
		tempo = 120.0
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(auditionTicksPerQuarter)

	var track smf.Track

	microsecondsPerBeat := uint32(60000000.0 / tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	ticksPerStep := uint32(auditionTicksPerQuarter) / 4
	noteLength := (ticksPerStep * 3) / 4

	var delta uint32
	for _, pad := range prog.Pads {
		if !pad.Assigned() {
			delta += ticksPerStep
			continue
		}

		track.Add(delta, midi.NoteOn(drumChannel, padNote(pad), auditionVelocity))
		track.Add(noteLength, midi.NoteOff(drumChannel, padNote(pad)))
		delta = ticksPerStep - noteLength
	}

	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteAuditionFile writes the audition sequence to a .mid file
func WriteAuditionFile(prog *Program, filename string, tempo float64) error {
	data, err := AuditionSMF(prog, tempo)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func padNote(pad Pad) uint8 {
	if pad.MIDINote != 0 {
		return pad.MIDINote
	}
	n := defaultFirstPadNote + pad.Number
	if n > 127 {
		n = 127
	}
	return uint8(n)
}
