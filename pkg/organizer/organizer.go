package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/pgm2sp303/pkg/mpc"
)

// SP-303 output naming scheme
const (
	BankDirPrefix = "Bank_"
	SamplePrefix  = "SMPL"
	SampleExt     = ".WAV"
)

// Config holds the organizer inputs. SourceDir and OutputDir default
// to the current directory when empty.
type Config struct {
	ProgramPath string
	SourceDir   string
	OutputDir   string
}

// CopiedEntry records one sample placed into a bank folder
type CopiedEntry struct {
	Bank       string
	Slot       int // 1-based position of the output file within the bank
	PadNumber  int
	SampleName string
	MatchKind  MatchKind
	Source     string
	Dest       string
}

// MissingEntry records a pad whose sample name resolved to nothing
type MissingEntry struct {
	Bank       string
	PadNumber  int
	SampleName string
}

// Report is the end-of-run summary. Missing entries are warnings, not
// failures; the caller decides how to present them.
type Report struct {
	Program    *mpc.Program
	Copied     []CopiedEntry
	Missing    []MissingEntry
	Unassigned int
}

// Organize parses the program file and copies matched samples into
// Bank_A through Bank_H under cfg.OutputDir. The program file is
// parsed before any directory is created, so a bad file leaves the
// output untouched. Source files are only ever read.
func Organize(cfg Config) (*Report, error) {
	if cfg.SourceDir == "" {
		cfg.SourceDir = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	prog, err := mpc.ParsePGMFile(cfg.ProgramPath)
	if err != nil {
		return nil, err
	}

	samples, err := ListSamples(cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	report := &Report{Program: prog}

	for bankIdx, bank := range prog.Banks() {
		bankName := mpc.BankNames[bankIdx]
		bankDir := filepath.Join(cfg.OutputDir, BankDirPrefix+bankName)
		if err := os.MkdirAll(bankDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", bankDir, err)
		}

		// Numbering is dense: unassigned and unresolved pads do not
		// leave gaps, so a bank with misses ends up with fewer files.
		slot := 0
		for _, pad := range bank {
			if !pad.Assigned() {
				report.Unassigned++
				continue
			}

			res := FindSample(pad.SampleName, samples)
			if !res.Found() {
				report.Missing = append(report.Missing, MissingEntry{
					Bank:       bankName,
					PadNumber:  pad.Number,
					SampleName: pad.SampleName,
				})
				continue
			}

			slot++
			dest := filepath.Join(bankDir, fmt.Sprintf("%s%04d%s", SamplePrefix, slot, SampleExt))
			if err := copyFile(res.Path, dest); err != nil {
				return nil, err
			}

			report.Copied = append(report.Copied, CopiedEntry{
				Bank:       bankName,
				Slot:       slot,
				PadNumber:  pad.Number,
				SampleName: pad.SampleName,
				MatchKind:  res.Kind,
				Source:     res.Path,
				Dest:       dest,
			})
		}
	}

	return report, nil
}

// Summary renders the end-of-run report for the invoking user
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Copied %d samples into %d banks\n", len(r.Copied), mpc.NumBanks)
	if r.Unassigned > 0 {
		fmt.Fprintf(&b, "Unassigned pads: %d\n", r.Unassigned)
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "Samples not found: %d\n", len(r.Missing))
		for _, m := range r.Missing {
			fmt.Fprintf(&b, "  bank %s pad %d: %s\n", m.Bank, m.PadNumber%mpc.PadsPerBank+1, m.SampleName)
		}
	}
	return b.String()
}

// copyFile copies src to dst, overwriting dst. The source is opened
// read-only and never modified.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}
