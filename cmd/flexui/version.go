package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// buildInfo is the version reported by the version command.
var buildInfo = struct {
	version, commit, date string
}{"dev", "none", "unknown"}

// SetVersionInfo sets the version information reported by the binary.
func SetVersionInfo(v, c, d string) {
	buildInfo.version = v
	buildInfo.commit = c
	buildInfo.date = d
}

// formatVersion ensures a release version has a 'v' prefix.
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, buildInfo.version)
				return
			}
			fmt.Fprintf(out, "flexui %s\n", formatVersion(buildInfo.version))
			fmt.Fprintf(out, "commit: %s\n", buildInfo.commit)
			fmt.Fprintf(out, "built: %s\n", buildInfo.date)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
