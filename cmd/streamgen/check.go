package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>...",
	Short: "Normalize and validate streaming links",
	Long: `Normalize and validate streaming links against the allow-list.

Links are checked locally with the rules from the config file (or the
built-in defaults). Use --remote to check with the server's rules.

Examples:
  streamgen check streamwish.to/e/abc123
  streamgen check "https://hlswish.com/e/abc123" "https://hlswish.com/e/abc123"
  streamgen check --remote https://cdnplaypro.com/d/xyz789`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheckCmd,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("remote", false, "Check on the server instead of locally")
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")
	out := cmd.OutOrStdout()

	if remote {
		resp, err := NewClient(serverURL).Check(args, streamlink.ModeMovie)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if jsonOutput {
			printJSON(out, resp)
			return nil
		}
		printCheckResults(out, resp.Results)
		return nil
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	results := checkLocal(rules, args)
	if jsonOutput {
		printJSON(out, results)
		return nil
	}
	printCheckResults(out, results)
	return nil
}

// checkLocal classifies each URL as a movie option so duplicates between
// arguments can be reported.
func checkLocal(rules *streamlink.Rules, urls []string) []CheckResult {
	entries := make([]streamlink.Entry, len(urls))
	for i, raw := range urls {
		entries[i] = streamlink.Entry{Raw: raw, Position: streamlink.OptionKey(i + 1)}
	}

	results := make([]CheckResult, len(urls))
	for i, e := range entries {
		verdict, url := rules.Classify(e.Raw)
		results[i] = CheckResult{Position: e.Position, Input: e.Raw, URL: url, Verdict: verdict}
		if verdict == streamlink.Valid {
			results[i].Duplicates = rules.FindDuplicates(e.Position, url, entries)
		}
	}
	return results
}

func printCheckResults(w io.Writer, results []CheckResult) {
	for _, r := range results {
		mark := "✗"
		switch r.Verdict {
		case streamlink.Valid:
			mark = "✓"
		case streamlink.Empty:
			mark = "-"
		}

		line := fmt.Sprintf("%s %-8s %s", mark, r.Verdict, r.URL)
		if r.URL == "" {
			line = fmt.Sprintf("%s %-8s %q", mark, r.Verdict, r.Input)
		}
		if len(r.Duplicates) > 0 {
			labels := make([]string, len(r.Duplicates))
			for i, p := range r.Duplicates {
				labels[i] = p.String()
			}
			line += fmt.Sprintf("  (duplicate of %s)", strings.Join(labels, ", "))
		}
		fmt.Fprintln(w, line)
	}
}
