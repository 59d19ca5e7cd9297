// Command flexui checks design files and lays out scenes headlessly.
package main

// Version information set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	SetVersionInfo(version, commit, date)
	Execute()
}
