package command

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/portmantout"
)

const verifyDescription = `Usage:

    portmantout verify PORTMANTOUT WORDLIST REDUCED_WORDLIST

Description:

Checks a rendered portmantout against two independent properties: the
cover check (the portmantout parses left to right as a sequence of
adjacent, possibly overlapping, dictionary words spanning every byte)
and the completeness check (every word in REDUCED_WORDLIST occurs as a
contiguous substring). Prints both verdicts; exit code reflects
whether both passed.`

// VerifyCommand runs the cover and completeness checks against a
// rendered portmantout.
var VerifyCommand = cli.Command{
	Name:        "verify",
	Usage:       "Check a rendered portmantout's cover and completeness",
	Description: verifyDescription,
	Flags:       sharedFlags(),
	Action: func(c *cli.Context) error {
		return classifyErr(runVerify(c))
	},
}

func runVerify(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowCommandHelp(c, "verify")
		return fmt.Errorf("%w: expected PORTMANTOUT WORDLIST REDUCED_WORDLIST", portmantout.ErrUsage)
	}

	l, err := buildLogger(c)
	if err != nil {
		return err
	}

	rendered, err := portmantout.ReadAllFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	// Emitted files carry no newline, but a hand-touched one might.
	rendered = bytes.TrimRight(rendered, " \t\r\n")
	wordlist, err := portmantout.ReadLinesFile(c.Args().Get(1))
	if err != nil {
		return err
	}
	reduced, err := portmantout.ReadLinesFile(c.Args().Get(2))
	if err != nil {
		return err
	}

	dictTrie := portmantout.BuildDictionaryTrie(wordlist)

	passed := true

	if fail := portmantout.VerifyCover(rendered, dictTrie); fail == nil {
		fmt.Fprintln(c.App.Writer, "cover: OK")
	} else {
		fmt.Fprintf(c.App.Writer, "cover: FAILED at byte offset %d\n", fail.Index)
		passed = false
	}

	if fail := portmantout.VerifyCompleteness(rendered, reduced); fail == nil {
		fmt.Fprintln(c.App.Writer, "completeness: OK")
	} else {
		fmt.Fprintf(c.App.Writer, "completeness: FAILED, missing word %q\n", fail.Word)
		passed = false
	}

	if !passed {
		l.Error("verification failed")
		return NewExitError(1, fmt.Errorf("portmantout: verification failed"))
	}
	l.Info("verification passed")
	return nil
}
