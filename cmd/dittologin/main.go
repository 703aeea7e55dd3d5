package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/marmos91/dittologin/cmd/dittologin/commands"
	"github.com/marmos91/dittologin/pkg/auth"
)

// Set with -ldflags "-X main.version=..." at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitLoginFailed lets scripts tell "no login user" apart from usage or
// configuration errors.
const exitLoginFailed = 2

func main() {
	commands.Version, commands.Commit, commands.Date = version, commit, date

	err := commands.Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, auth.ErrLoginFailed) {
		os.Exit(exitLoginFailed)
	}
	os.Exit(1)
}
