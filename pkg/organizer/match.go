// Package organizer lays MPC1000 pad assignments out as SP-303 bank folders
package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MatchKind identifies which strategy resolved a sample name
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchCaseInsensitive
	MatchPartial
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchCaseInsensitive:
		return "case-insensitive"
	case MatchPartial:
		return "partial"
	default:
		return "not found"
	}
}

// MatchResult is the outcome of resolving a sample name against a
// source directory listing
type MatchResult struct {
	Kind MatchKind
	Path string
}

func (r MatchResult) Found() bool {
	return r.Kind != MatchNone
}

type matchStrategy struct {
	kind  MatchKind
	match func(name, stem string) bool
}

// Strategies run in order; the first one that hits any candidate wins.
// Within a strategy, candidates are tried in listing order, which
// ListSamples pins to lexicographic.
var strategies = []matchStrategy{
	{MatchExact, func(name, stem string) bool {
		return stem == name
	}},
	{MatchCaseInsensitive, strings.EqualFold},
	{MatchPartial, func(name, stem string) bool {
		ln := strings.ToLower(name)
		ls := strings.ToLower(stem)
		return strings.Contains(ls, ln) || strings.Contains(ln, ls)
	}},
}

// FindSample resolves a decoded sample name to one of the candidate
// file paths. Matching is against the filename stem, so the extension
// never participates.
func FindSample(name string, candidates []string) MatchResult {
	for _, s := range strategies {
		for _, c := range candidates {
			base := filepath.Base(c)
			stem := strings.TrimSuffix(base, filepath.Ext(base))
			if s.match(name, stem) {
				return MatchResult{Kind: s.kind, Path: c}
			}
		}
	}
	return MatchResult{Kind: MatchNone}
}

// ListSamples returns the WAV files in dir (extension matched
// case-insensitively), sorted by filename for deterministic
// tie-breaking between equally good matches.
func ListSamples(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
