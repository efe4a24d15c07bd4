package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/portmantout"
)

const normalizeDescription = `Usage:

    portmantout normalize < WORDLIST

Description:

Reads a newline-delimited wordlist from stdin and writes the
normalised wordlist to stdout: every word that is a contiguous
substring of some other, distinct word in the list is dropped.`

// NormalizeCommand drops substring-redundant words from a wordlist
// read on stdin.
var NormalizeCommand = cli.Command{
	Name:        "normalize",
	Usage:       "Drop words that are substrings of other words",
	Description: normalizeDescription,
	Flags:       sharedFlags(),
	Action: func(c *cli.Context) error {
		return classifyErr(runNormalize(c))
	},
}

func runNormalize(c *cli.Context) error {
	if c.NArg() != 0 {
		cli.ShowCommandHelp(c, "normalize")
		return fmt.Errorf("%w: normalize takes no arguments, reads stdin", portmantout.ErrUsage)
	}

	l, err := buildLogger(c)
	if err != nil {
		return err
	}

	// os.Stdin here; urfave/cli v1 has no App.Reader field to abstract
	// it (that arrives in v2+), same gap buildkite-agent works around.
	words, err := portmantout.ReadLines(os.Stdin)
	if err != nil {
		return err
	}

	l.Info("normalizing %d words", len(words))
	normalized := portmantout.Normalize(words)
	l.Info("normalized %d words down to %d", len(words), len(normalized))

	for _, w := range normalized {
		fmt.Fprintln(c.App.Writer, string(w))
	}
	return nil
}
