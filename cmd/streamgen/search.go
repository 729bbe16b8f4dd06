package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search TMDB for a movie or series",
	Long: `Search TMDB through the server. Results are ranked by how closely
their title matches the query.

Examples:
  streamgen search dune
  streamgen search --type series la casa de papel`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("type", "t", "movie", "Content type (movie or series)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	mode, err := streamlink.ParseMode(typeFlag)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	resp, err := NewClient(serverURL).Search(query, mode)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}
	printSearchResults(out, resp)
	return nil
}

func printSearchResults(w io.Writer, resp *SearchResponse) {
	if len(resp.Results) == 0 {
		fmt.Fprintf(w, "No results for %q\n", resp.Query)
		return
	}

	fmt.Fprintf(w, "Found %d %s results for %q:\n\n", len(resp.Results), resp.Type, resp.Query)
	for i, r := range resp.Results {
		year := "----"
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		mark := " "
		if r.TMDBID == resp.Best {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%2d. %-40s %s  tmdb:%-8d %s\n", mark, i+1, truncate(r.Title, 40), year, r.TMDBID, r.Confidence)
	}
	if resp.Best != 0 {
		fmt.Fprintln(w, "\n* closest match")
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
