// Package wavkit reads, pads and rewrites PCM WAV samples
package wavkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Asset is one WAV file held fully in memory during a
// read-transform-write cycle
type Asset struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
	Frames      []int // interleaved samples, NumChannels values per frame
}

// FrameCount returns the number of sample frames
func (a *Asset) FrameCount() int {
	if a.NumChannels == 0 {
		return 0
	}
	return len(a.Frames) / a.NumChannels
}

// Duration returns the playback length in seconds
func (a *Asset) Duration() float64 {
	if a.SampleRate == 0 {
		return 0
	}
	return float64(a.FrameCount()) / float64(a.SampleRate)
}

// ReadFile decodes a WAV file into an Asset
func ReadFile(filename string) (*Asset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer func() { _ = f.Close() }()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%s: not a readable WAV file", filename)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	return &Asset{
		SampleRate:  buf.Format.SampleRate,
		BitDepth:    int(d.BitDepth),
		NumChannels: buf.Format.NumChannels,
		Frames:      buf.Data,
	}, nil
}

// WriteFile encodes the asset as a PCM WAV file, preserving its sample
// rate, bit depth and channel count
func WriteFile(filename string, a *Asset) error {
	if a == nil {
		return errors.New("nil asset")
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	enc := wav.NewEncoder(f, a.SampleRate, a.BitDepth, a.NumChannels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: a.NumChannels,
			SampleRate:  a.SampleRate,
		},
		Data:           a.Frames,
		SourceBitDepth: a.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s: %w", filename, err)
	}

	return f.Close()
}
