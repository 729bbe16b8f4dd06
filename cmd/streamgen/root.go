package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamgen/internal/config"
	"github.com/vmunix/streamgen/pkg/streamlink"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
	configPath string
)

// exitError carries a process exit status other than 1.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

var rootCmd = &cobra.Command{
	Use:   "streamgen",
	Short: "Streaming link checker and snippet generator",
	Long: `streamgen - check streaming links and generate embed snippets

Validates links locally against the configured allow-list, and talks to
the streamgend daemon for TMDB search and status.

Run 'streamgend' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8484", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("streamgen {{.Version}}\n")
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// loadRules returns the link rules from the config file, or the built-in
// defaults when no config file can be found.
func loadRules() (*streamlink.Rules, error) {
	rules, _, err := config.DiscoverRules(configPath)
	return rules, err
}
