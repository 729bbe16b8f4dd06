package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Validate a whole link set from a YAML file",
	Long: `Validate every entry of a link set and print the report shown
before generating a snippet.

The file lists a mode and its entries:

  mode: series
  entries:
    - {season: 1, episode: 1, url: "https://streamwish.to/e/abc123"}
    - {season: 1, episode: 2, url: ""}

Movies use option numbers instead:

  mode: movie
  entries:
    - {option: 1, url: "https://hlswish.com/e/abc123"}

With --strict the command exits with status 2 when the report has problems.`,
	Args: cobra.ExactArgs(1),
	RunE: runReportCmd,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("strict", false, "Exit with status 2 if any entry is invalid, empty or duplicated")
}

// linkSet is the YAML document read by the report command.
type linkSet struct {
	Mode    string             `yaml:"mode"`
	Entries []streamlink.Entry `yaml:"entries"`
}

func readLinkSet(r io.Reader) (streamlink.Mode, []streamlink.Entry, error) {
	var doc linkSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("parse link set: %w", err)
	}

	mode, err := streamlink.ParseMode(doc.Mode)
	if err != nil {
		return "", nil, err
	}

	seen := make(map[streamlink.PositionKey]bool, len(doc.Entries))
	for i, e := range doc.Entries {
		pos := e.Position
		switch {
		case mode == streamlink.ModeMovie && (pos.Option < 1 || pos.Season != 0 || pos.Episode != 0):
			return "", nil, fmt.Errorf("entry %d: movie entries need only an option number", i+1)
		case mode == streamlink.ModeSeries && (pos.Season < 1 || pos.Episode < 1 || pos.Option != 0):
			return "", nil, fmt.Errorf("entry %d: series entries need a season and episode", i+1)
		}
		if seen[pos] {
			return "", nil, fmt.Errorf("entry %d: position %s listed twice", i+1, pos)
		}
		seen[pos] = true
	}
	return mode, doc.Entries, nil
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	mode, entries, err := readLinkSet(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	rep := rules.BuildReport(entries, mode)

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, ReportResponse{Report: *rep, Summary: rep.Summary()})
	} else {
		printReport(out, rep)
	}

	if strict && rep.HasProblems() {
		return &exitError{code: 2, msg: "link set has problems"}
	}
	return nil
}

func printReport(w io.Writer, rep *streamlink.Report) {
	sum := rep.Summary()
	noun := "episodes"
	if rep.Mode == streamlink.ModeMovie {
		noun = "options"
	}
	fmt.Fprintf(w, "%d %s: %d valid, %d invalid, %d empty, %d duplicate groups\n",
		sum.Total, noun, sum.Valid, sum.Invalid, sum.Empty, sum.Duplicates)

	if len(rep.Invalid) > 0 {
		fmt.Fprintln(w, "\nInvalid URLs:")
		for _, e := range rep.Invalid {
			fmt.Fprintf(w, "  %s: %s\n", e.Position, e.Raw)
		}
	}

	if len(rep.Duplicates) > 0 {
		fmt.Fprintln(w, "\nDuplicate URLs:")
		for _, g := range rep.Duplicates {
			labels := make([]string, len(g.Positions))
			for i, p := range g.Positions {
				labels[i] = p.String()
			}
			fmt.Fprintf(w, "  %s\n    used by %s\n", g.URL, strings.Join(labels, ", "))
		}
	}

	if len(rep.Empty) > 0 {
		labels := make([]string, len(rep.Empty))
		for i, e := range rep.Empty {
			labels[i] = e.Position.String()
		}
		fmt.Fprintf(w, "\nEmpty: %s\n", strings.Join(labels, ", "))
	}

	if !rep.HasProblems() {
		fmt.Fprintln(w, "\nReady to generate.")
		return
	}

	fmt.Fprintln(w)
	if len(rep.Invalid) > 0 || len(rep.Empty) > 0 {
		fmt.Fprintln(w, "Invalid and empty entries will use the default URL.")
	}
	if len(rep.Duplicates) > 0 {
		fmt.Fprintln(w, "Duplicate URLs may point at a copy-paste mistake.")
	}
}
