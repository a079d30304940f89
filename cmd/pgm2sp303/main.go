// Package main is the entry point for the pgm2sp303 CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/pgm2sp303/pkg/api"
	"github.com/james-see/pgm2sp303/pkg/mpc"
	"github.com/james-see/pgm2sp303/pkg/organizer"
	"github.com/james-see/pgm2sp303/pkg/tui"
	"github.com/james-see/pgm2sp303/pkg/wavkit"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	sourceDir  string
	outputDir  string
	outputFile string
	minMs      float64
	quietMode  bool
	tempo      float64
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pgm2sp303",
	Short: "Organize MPC1000 programs into Boss SP-303 banks",
	Long: `pgm2sp303 reads Akai MPC1000 program (.pgm) files and lays the pad
assignments out as SP-303 bank folders (Bank_A..Bank_H, SMPL0001.WAV...),
and pads WAV samples that are too short for the SP-303 to load.

Examples:
  pgm2sp303 inspect VinylDrumsMars1.pgm
  pgm2sp303 organize VinylDrumsMars1.pgm -s ./wavs -o ./card
  pgm2sp303 preprocess ./wavs -o ./ready
  pgm2sp303 padmap VinylDrumsMars1.pgm -o audition.mid
  pgm2sp303 tui
  pgm2sp303 serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <program.pgm>",
	Short: "Print the pad assignments in a program file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var organizeCmd = &cobra.Command{
	Use:   "organize <program.pgm>",
	Short: "Copy matched WAVs into Bank_A..Bank_H folders",
	Long: `Parses the program file, matches each pad's sample name against the
WAV files in the source directory (exact, then case-insensitive, then
partial match) and copies the hits into 8 bank folders with dense
SMPL0001.WAV numbering. Names that resolve to nothing are reported at
the end of the run without aborting it.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

var preprocessCmd = &cobra.Command{
	Use:   "preprocess <wav-directory>",
	Short: "Pad WAV samples shorter than the SP-303 minimum",
	Long: `Appends silence to every WAV file shorter than the minimum duration
(110ms by default; some samples at 100ms fail to load on hardware).
Sample rate, bit depth and channel count are preserved; files with a
rate other than 44100 Hz or a depth other than 16-bit are flagged but
not converted. Without --output files are rewritten in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreprocess,
}

var padmapCmd = &cobra.Command{
	Use:   "padmap <program.pgm>",
	Short: "Export the pad layout as an audition MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPadMap,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	organizeCmd.Flags().StringVarP(&sourceDir, "source", "s", ".", "Directory holding the source WAV files")
	organizeCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to create the bank folders in")

	preprocessCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: rewrite in place)")
	preprocessCmd.Flags().Float64Var(&minMs, "min-ms", wavkit.DefaultMinDuration*1000, "Minimum sample duration in milliseconds")
	preprocessCmd.Flags().BoolVarP(&quietMode, "quiet", "q", false, "Minimal output")

	padmapCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")
	padmapCmd.Flags().Float64Var(&tempo, "tempo", 120, "Audition tempo in BPM")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(preprocessCmd)
	rootCmd.AddCommand(padmapCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	prog, err := mpc.ParsePGMFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Header: %s\n", prog.Header)
	for bankIdx, bank := range prog.Banks() {
		fmt.Printf("\n=== Bank %s ===\n", mpc.BankNames[bankIdx])
		for _, pad := range bank {
			if pad.Assigned() {
				fmt.Printf("Pad %d: %s (note %d)\n", pad.BankSlot(), pad.SampleName, pad.MIDINote)
			} else {
				fmt.Printf("Pad %d: No assignment\n", pad.BankSlot())
			}
		}
	}
	fmt.Printf("\nAssigned pads: %d of %d\n", len(prog.AssignedPads()), mpc.NumPads)
	return nil
}

func runOrganize(cmd *cobra.Command, args []string) error {
	report, err := organizer.Organize(organizer.Config{
		ProgramPath: args[0],
		SourceDir:   sourceDir,
		OutputDir:   outputDir,
	})
	if err != nil {
		return err
	}

	for _, e := range report.Copied {
		fmt.Printf("Bank %s pad %d: %s -> %s (%s match)\n",
			e.Bank, e.Slot, e.SampleName, filepath.Base(e.Dest), e.MatchKind)
	}
	fmt.Println()
	fmt.Print(report.Summary())
	return nil
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	report, err := wavkit.ProcessDirectory(wavkit.Config{
		InputDir:    args[0],
		OutputDir:   outputDir,
		MinDuration: minMs / 1000.0,
		Quiet:       quietMode,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(report.Summary())
	return nil
}

func runPadMap(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := outputFile
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".mid"
	}

	prog, err := mpc.ParsePGMFile(input)
	if err != nil {
		return err
	}

	if err := mpc.WriteAuditionFile(prog, output, tempo); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d assigned pads)\n", output, len(prog.AssignedPads()))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
