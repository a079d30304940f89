package wavkit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config holds the preprocessor inputs. An empty OutputDir means files
// are rewritten in place; originals are never deleted either way.
type Config struct {
	InputDir    string
	OutputDir   string
	MinDuration float64 // seconds; 0 means DefaultMinDuration
	Quiet       bool
}

// FlaggedFile is an advisory format warning for one file
type FlaggedFile struct {
	Name  string
	Flags []string
}

// FailedFile is a file that could not be read or written; the run
// continues past it
type FailedFile struct {
	Name string
	Err  error
}

// Report is the end-of-run summary of a preprocessing pass
type Report struct {
	Total      int
	Compatible int
	Padded     int
	Flagged    []FlaggedFile
	Failed     []FailedFile
}

// ProcessDirectory pads every WAV file in cfg.InputDir that is shorter
// than the minimum duration. Files are visited in lexicographic order;
// each one is fully read, transformed and written before the next is
// opened.
func ProcessDirectory(cfg Config) (*Report, error) {
	if cfg.MinDuration <= 0 {
		cfg.MinDuration = DefaultMinDuration
	}

	inPlace := cfg.OutputDir == "" || cfg.OutputDir == cfg.InputDir
	if !inPlace {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	report := &Report{Total: len(names)}

	for _, name := range names {
		src := filepath.Join(cfg.InputDir, name)
		dst := src
		if !inPlace {
			dst = filepath.Join(cfg.OutputDir, name)
		}

		asset, err := ReadFile(src)
		if err != nil {
			report.Failed = append(report.Failed, FailedFile{Name: name, Err: err})
			if !cfg.Quiet {
				fmt.Printf("%s: skipped (%v)\n", name, err)
			}
			continue
		}

		if flags := CompatFlags(asset); len(flags) > 0 {
			report.Flagged = append(report.Flagged, FlaggedFile{Name: name, Flags: flags})
			if !cfg.Quiet {
				fmt.Printf("%s: %s\n", name, strings.Join(flags, "; "))
			}
		}

		before := asset.Duration()
		padded := PadToMinimum(asset, cfg.MinDuration)

		switch {
		case padded:
			if err := WriteFile(dst, asset); err != nil {
				report.Failed = append(report.Failed, FailedFile{Name: name, Err: err})
				continue
			}
			report.Padded++
			if !cfg.Quiet {
				fmt.Printf("%s: padded %.1fms -> %.1fms\n", name, before*1000, asset.Duration()*1000)
			}
		case !inPlace:
			// Long enough, but still has to reach the output directory
			if err := WriteFile(dst, asset); err != nil {
				report.Failed = append(report.Failed, FailedFile{Name: name, Err: err})
				continue
			}
			report.Compatible++
		default:
			report.Compatible++
		}
	}

	return report, nil
}

// Summary renders the end-of-run report
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d files: %d ok, %d padded\n", r.Total, r.Compatible, r.Padded)
	if len(r.Flagged) > 0 {
		fmt.Fprintf(&b, "Format warnings (convert manually with ffmpeg or sox): %d\n", len(r.Flagged))
		for _, f := range r.Flagged {
			fmt.Fprintf(&b, "  %s: %s\n", f.Name, strings.Join(f.Flags, "; "))
		}
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", len(r.Failed))
		for _, f := range r.Failed {
			fmt.Fprintf(&b, "  %s: %v\n", f.Name, f.Err)
		}
	}
	return b.String()
}
