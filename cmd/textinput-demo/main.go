// Command textinput-demo runs a terminal host for a single text input session.
package main

import (
	"os"

	"github.com/iw2rmb/textinput"
)

// commit is injected via ldflags at build time.
var commit = "none"

func main() {
	rootCmd.Version = textinput.VersionTag() + " (commit: " + commit + ")"
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
