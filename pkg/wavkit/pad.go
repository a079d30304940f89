package wavkit

import (
	"fmt"
	"math"
)

// SP-303 sample requirements
const (
	// DefaultMinDuration is the minimum sample length in seconds.
	// The service notes say ~100 ms; 110 ms is what actually loads
	// reliably on hardware, so that is the default.
	DefaultMinDuration = 0.110

	RequiredSampleRate = 44100
	RequiredBitDepth   = 16
)

// MinFrames converts a duration threshold to a frame count,
// ceil(seconds * rate). The small guard keeps exact products
// (0.110 * 44100 = 4851) from being pushed to the next integer by
// float representation error.
func MinFrames(seconds float64, sampleRate int) int {
	return int(math.Ceil(seconds*float64(sampleRate) - 1e-9))
}

// PadToMinimum appends silence so the asset lasts at least seconds.
// Existing frames are never altered or truncated; the appended region
// is zero-valued across all channels. Returns true if frames were
// added.
func PadToMinimum(a *Asset, seconds float64) bool {
	target := MinFrames(seconds, a.SampleRate)
	current := a.FrameCount()
	if current >= target {
		return false
	}

	silence := make([]int, (target-current)*a.NumChannels)
	a.Frames = append(a.Frames, silence...)
	return true
}

// CompatFlags returns advisory diagnostics for properties the SP-303
// expects but this tool does not auto-correct
func CompatFlags(a *Asset) []string {
	var flags []string
	if a.SampleRate != RequiredSampleRate {
		flags = append(flags, fmt.Sprintf("sample rate %d Hz (SP-303 wants %d)", a.SampleRate, RequiredSampleRate))
	}
	if a.BitDepth != RequiredBitDepth {
		flags = append(flags, fmt.Sprintf("%d-bit (SP-303 wants %d-bit)", a.BitDepth, RequiredBitDepth))
	}
	if a.NumChannels != 1 && a.NumChannels != 2 {
		flags = append(flags, fmt.Sprintf("%d channels (SP-303 wants mono or stereo)", a.NumChannels))
	}
	return flags
}
