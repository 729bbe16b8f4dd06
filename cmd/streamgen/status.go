package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	status, err := NewClient(serverURL).Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, status)
		return nil
	}
	printStatus(out, serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "streamgend v%s | Server: %s | Status: %s\n\n", s.Version, server, s.Status)
	fmt.Fprintf(w, "  Open drafts: %d\n", s.Drafts)
	fmt.Fprintf(w, "  Library:     %s\n", s.Library)
}
