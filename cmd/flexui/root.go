package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-flexui/internal/config"
	"github.com/grindlemire/go-flexui/internal/debug"
)

// rootOptions holds the persistent flags and the configuration they load.
type rootOptions struct {
	configPath string
	debugLog   string
	noColor    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "flexui",
		Short: "flexui checks design files and lays out scenes headlessly",
		Long: `flexui loads YAML design files, links Part references and runs the
layout, style and animation passes of a scene without a renderer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.OutOrStdout())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a flexui config file")
	cmd.PersistentFlags().StringVar(&opts.debugLog, "debug-log", "", "Write debug logs to this file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newLayoutCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// load reads the configuration, opens the debug log and picks the color
// profile for out.
func (o *rootOptions) load(out io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.debugLog != "" {
		cfg.DebugLog = o.debugLog
	}
	if cfg.DebugLog != "" {
		if err := debug.Init(cfg.DebugLog); err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
	}
	o.cfg = cfg

	if o.noColor || !isTerminal(out) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}
