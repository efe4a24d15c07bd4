// Command portmantout builds and verifies portmantouts: a single ASCII
// string containing every word of a dictionary as a contiguous
// substring, parseable left to right as a chain of overlapping
// dictionary words.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/cmd/portmantout/command"
)

func main() {
	defer recoverInvariantViolation()

	app := cli.NewApp()
	app.Name = "portmantout"
	app.Usage = "construct and verify portmantouts"
	app.Commands = []cli.Command{
		command.GenerateCommand,
		command.NormalizeCommand,
		command.SearchCommand,
		command.VerifyCommand,
		command.RenderCommand,
	}
	app.ErrWriter = os.Stderr

	app.CommandNotFound = func(c *cli.Context, name string) {
		fmt.Fprintf(app.ErrWriter, "portmantout: unknown subcommand %q\n", name)
		fmt.Fprintf(app.ErrWriter, "Run '%s --help' for usage.\n", c.App.Name)
		os.Exit(1)
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(command.PrintMessageAndReturnExitCode(err))
	}
}

// recoverInvariantViolation mirrors the Rust reference's unreachable!()
// panics: a sanity-check panic indicates a bug, and a findNext panic a
// joiner list that cannot bridge some particle; either is reported as
// a fatal diagnostic rather than a stack trace dump.
func recoverInvariantViolation() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		fmt.Fprintf(os.Stderr, "portmantout: fatal: %s\n", err)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "portmantout: fatal: %v\n", r)
	os.Exit(2)
}
