package organizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSampleFallbackOrder(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		wantKind   MatchKind
		wantPath   string
	}{
		{
			name:       "exact beats case-insensitive",
			target:     "Kick_01",
			candidates: []string{"KICK_01.wav", "Kick_01.wav"},
			wantKind:   MatchExact,
			wantPath:   "Kick_01.wav",
		},
		{
			name:       "exact is extension-insensitive",
			target:     "Kick_01",
			candidates: []string{"Kick_01.WAV"},
			wantKind:   MatchExact,
			wantPath:   "Kick_01.WAV",
		},
		{
			name:       "case-insensitive beats partial",
			target:     "Kick_01",
			candidates: []string{"Kick_01_Long.wav", "kick_01.wav"},
			wantKind:   MatchCaseInsensitive,
			wantPath:   "kick_01.wav",
		},
		{
			name:       "superstring filename uses partial",
			target:     "Kick",
			candidates: []string{"BigKickDrum.wav"},
			wantKind:   MatchPartial,
			wantPath:   "BigKickDrum.wav",
		},
		{
			name:       "name containing the stem uses partial",
			target:     "Snare_Tight_03",
			candidates: []string{"snare_tight.wav"},
			wantKind:   MatchPartial,
			wantPath:   "snare_tight.wav",
		},
		{
			name:       "no match",
			target:     "Cowbell",
			candidates: []string{"Kick.wav", "Snare.wav"},
			wantKind:   MatchNone,
		},
		{
			name:     "empty candidate list",
			target:   "Kick",
			wantKind: MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FindSample(tt.target, tt.candidates)
			if res.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", res.Kind, tt.wantKind)
			}
			if res.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", res.Path, tt.wantPath)
			}
		})
	}
}

func TestFindSampleTieBreak(t *testing.T) {
	// Both candidates match partially; the listing is sorted, so the
	// lexicographically first one must win.
	res := FindSample("Kick", []string{"AKick.wav", "ZKick.wav"})
	if res.Path != "AKick.wav" {
		t.Errorf("tie broken to %q, want AKick.wav", res.Path)
	}
}

func TestListSamples(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "A.WAV", "notes.txt", "c.Wav"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.wav"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListSamples(dir)
	if err != nil {
		t.Fatalf("ListSamples() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "A.WAV"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "c.Wav"),
	}
	if len(files) != len(want) {
		t.Fatalf("ListSamples() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestListSamplesMissingDir(t *testing.T) {
	if _, err := ListSamples(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ListSamples() expected error for missing directory")
	}
}

func TestMatchKindString(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want string
	}{
		{MatchExact, "exact"},
		{MatchCaseInsensitive, "case-insensitive"},
		{MatchPartial, "partial"},
		{MatchNone, "not found"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("MatchKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
