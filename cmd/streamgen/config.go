package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamgen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, the link allow-list, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	for _, section := range e.Sections() {
		fmt.Fprintf(w, "[%s]\n", section)
		for _, msg := range e.Section(section) {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database.Path)
	fmt.Fprintf(w, "  TMDB:       %s (cache %s)\n", cfg.TMDB.Language, cfg.TMDB.CacheTTL)
	fmt.Fprintf(w, "  Domains:    %s\n", strings.Join(cfg.Links.Domains, ", "))
	fmt.Fprintf(w, "  Modes:      %s\n", strings.Join(cfg.Links.Modes, ", "))
	fmt.Fprintf(w, "  Default:    %s\n", cfg.Links.DefaultURL)
	fmt.Fprintf(w, "  Options:    %d per movie\n", cfg.Links.MovieOptions)
	if cfg.Drafts.IdleTimeout > 0 {
		fmt.Fprintf(w, "  Drafts:     expire after %s idle\n", cfg.Drafts.IdleTimeout)
	}
}
