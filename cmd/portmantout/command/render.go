package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/portmantout"
)

const renderDescription = `Usage:

    portmantout render PARTICLES JOINERS

Description:

Renders an already-ordered particle sequence straight through the
joiner index, with no search: PARTICLES is read in file order (the
line beginning "portmanteau" is not treated specially here — render
takes the sequence as given) and each adjacent pair is bridged by a
joiner word keyed by (last byte of left, first byte of right), looked
up in an index built from JOINERS. This is a distinct, simpler path
than "search": it assumes the particle order is already decided and
the joiner index already covers every adjacent byte pair; it never
constructs a chain, only re-renders one. Prints the portmantout to
stdout.`

// RenderCommand renders a pre-ordered particle sequence via the
// joiner index, without searching for an order.
var RenderCommand = cli.Command{
	Name:        "render",
	Usage:       "Render an ordered particle sequence through the joiner index",
	Description: renderDescription,
	Flags:       sharedFlags(),
	Action: func(c *cli.Context) error {
		return classifyErr(runRender(c))
	},
}

func runRender(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowCommandHelp(c, "render")
		return fmt.Errorf("%w: expected PARTICLES JOINERS", portmantout.ErrUsage)
	}

	l, err := buildLogger(c)
	if err != nil {
		return err
	}

	particles, err := portmantout.ReadLinesFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	joiners, err := portmantout.ReadLinesFile(c.Args().Get(1))
	if err != nil {
		return err
	}

	index := portmantout.BuildJoinerIndex(joiners)
	l.Info("rendering %d particles through %d joiner keys", len(particles), len(index))

	rendered, err := portmantout.RenderParticles(particles, index)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, string(rendered))
	return nil
}
