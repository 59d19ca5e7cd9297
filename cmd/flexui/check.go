package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flexui/internal/design"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Load, validate and link design files",
		Long: `check decodes every design file, builds one registry from all of them
and links each design that references a Part. Files default to the
designs listed in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = opts.cfg.Designs
			}
			return runCheck(cmd, paths, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report every file and design checked")
	return cmd
}

// runCheck loads paths and links their designs, printing one line per
// failure to the command's error stream.
func runCheck(cmd *cobra.Command, paths []string, verbose bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if len(paths) == 0 {
		return fmt.Errorf("no design files given")
	}

	if verbose {
		fmt.Fprintf(out, "Checking %d design file(s)\n", len(paths))
	}

	var (
		designs    []*design.Node
		errorCount int
	)
	for _, path := range paths {
		f, err := design.LoadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "%s %v\n", errorStyle.Render("✗"), err)
			errorCount++
			continue
		}
		if verbose {
			fmt.Fprintf(out, "%s %s %s\n", successStyle.Render("✓"), path, mutedStyle.Render(fmt.Sprintf("(%d designs)", len(f.Designs))))
		}
		designs = append(designs, f.Designs...)
	}
	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	reg, err := design.NewRegistry(designs...)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	var linkErrors int
	for _, d := range designs {
		if !d.HasParts() {
			continue
		}
		if _, err := design.Resolve(d.Class, reg); err != nil {
			fmt.Fprintf(errOut, "%s %s: %v\n", errorStyle.Render("✗"), d.Class, err)
			linkErrors++
			continue
		}
		if verbose {
			fmt.Fprintf(out, "%s %s linked\n", successStyle.Render("✓"), classStyle.Render(d.Class))
		}
	}
	if linkErrors > 0 {
		return fmt.Errorf("%d design(s) failed to link", linkErrors)
	}

	fmt.Fprintf(out, "%s %d design(s) in %d file(s) ok\n", successStyle.Render("✓"), reg.Len(), len(paths))
	return nil
}
