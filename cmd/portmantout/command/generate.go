package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/portmantout"
)

const generateDescription = `Usage:

    portmantout generate WORDLIST_FILE

Description:

Reads a normalised wordlist from WORDLIST_FILE and runs the particle
generator: words are greedily merged on their largest shared
overlap, from an upper bound of 16 bytes down to 0, until no two
remaining entries share a suffix/prefix. One resulting particle is
written per line to stdout.`

// GenerateCommand runs the particle generator over a normalised wordlist.
var GenerateCommand = cli.Command{
	Name:        "generate",
	Usage:       "Merge a normalised wordlist into overlap-reduced particles",
	Description: generateDescription,
	Flags:       sharedFlags(),
	Action: func(c *cli.Context) error {
		return classifyErr(runGenerate(c))
	},
}

func runGenerate(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowCommandHelp(c, "generate")
		return fmt.Errorf("%w: expected exactly one argument, WORDLIST_FILE", portmantout.ErrUsage)
	}

	l, err := buildLogger(c)
	if err != nil {
		return err
	}

	words, err := portmantout.ReadLinesFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	l.Info("generating particles from %d words", len(words))
	particles := portmantout.Reduce(words)
	l.Info("reduced %d words into %d particles", len(words), len(particles))

	for _, p := range particles {
		fmt.Fprintln(c.App.Writer, string(p))
	}
	return nil
}
