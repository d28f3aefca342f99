// Cdterm is a small command-line terminal for moving between the pages of a
// static site.
//
// It asks whether the visitor wants to move to another page, then either
// lists the pages as choices or accepts typed cd commands with Tab
// completion. The same terminal runs full-screen in a local terminal and in
// the browser, where 'cdterm serve' serves the site together with a
// WebSocket endpoint that drives the page's terminal widget.
//
// Usage:
//
//	cdterm [command] [flags]
//
// Running without arguments opens the terminal locally.
// See 'cdterm --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cdterm/internal/config"
	"github.com/muurk/cdterm/internal/logging"
	"github.com/muurk/cdterm/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	noIntro    bool
)

// cfg is loaded before any command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cdterm",
	Short: "Page navigation terminal",
	Long: `A command-line style terminal for moving between the pages of a site.

The terminal asks "Move to another page? [yes/no]". Answering yes lists the
pages as choices (arrow keys and Enter, or click). Answering no switches to
manual mode, where 'cd <page>' navigates and Tab completes page names.

If no command is specified, the terminal opens full-screen locally and
prints the chosen page on exit.`,
	Version:           version.Version,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	RunE:              runTerminal,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: platform config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.Flags().BoolVar(&noIntro, "no-intro", false, "Skip the introduction log")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and initializes logging. The --log-level
// flag wins over the config file, which wins over CDTERM_LOG_LEVEL.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cdterm %s\n", version.Full())
	},
}
