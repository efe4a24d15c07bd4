package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/portmantout"
)

const searchDescription = `Usage:

    portmantout search PARTICLES JOINERS WORDLIST [--resume FILE]

Description:

Loads PARTICLES_FILE (one line must begin with "portmanteau", the
starticle), JOINERS_FILE, and WORDLIST_FILE, runs an initial coalesce,
then loops breaking a fraction of the chain's edges and re-coalescing,
writing <out-dir>/<score>.txt on every strict improvement. Runs until
interrupted with SIGINT or SIGTERM, at which point the in-flight
coalesce finishes and the current best file finishes its atomic write
before the process exits.

If --resume is given, its contents are parsed back into chain state
(each particle's first occurrence locates it) instead of starting from
all-singleton particles.`

// SearchCommand runs the coalescer once, then anneals until
// interrupted.
var SearchCommand = cli.Command{
	Name:        "search",
	Usage:       "Coalesce particles into a portmantout and anneal it",
	Description: searchDescription,
	Flags: append(sharedFlags(),
		cli.StringFlag{Name: "resume", Usage: "previously emitted portmantout to resume from"},
		cli.StringFlag{Name: "out-dir", Value: "out", Usage: "directory to write <score>.txt improvements into"},
		cli.StringFlag{Name: "seed", Usage: "32-hex-digit fixed PRNG seed, for reproducible runs"},
		cli.IntFlag{Name: "first-break-rate", Value: portmantout.BreakRateFirstPass, Usage: "numerator over 10000 for the first perturbation's Bernoulli trial"},
		cli.IntFlag{Name: "anneal-break-rate", Value: portmantout.BreakRateAnnealing, Usage: "numerator over 10000 for every later perturbation's Bernoulli trial"},
	),
	Action: func(c *cli.Context) error {
		return classifyErr(runSearch(c))
	},
}

func runSearch(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowCommandHelp(c, "search")
		return fmt.Errorf("%w: expected PARTICLES JOINERS WORDLIST", portmantout.ErrUsage)
	}

	l, err := buildLogger(c)
	if err != nil {
		return err
	}

	particleLines, err := portmantout.ReadLinesFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	joiners, err := portmantout.ReadLinesFile(c.Args().Get(1))
	if err != nil {
		return err
	}
	wordlist, err := portmantout.ReadLinesFile(c.Args().Get(2))
	if err != nil {
		return err
	}

	state, err := portmantout.LoadState(particleLines)
	if err != nil {
		return err
	}

	if resumePath := c.String("resume"); resumePath != "" {
		rendered, err := portmantout.ReadAllFile(resumePath)
		if err != nil {
			return err
		}
		if err := portmantout.Resume(state, rendered); err != nil {
			return err
		}
		l.Info("resumed state from %s, score=%d", resumePath, state.Score)
	}

	wordsTrie := portmantout.BuildWordsTrie(joiners, wordlist)

	// The coalescer never consults this index, but constructing it is
	// part of the JOINERS_FILE contract (the render subcommand is its
	// consumer).
	joinerIndex := portmantout.BuildJoinerIndex(joiners)
	l.Debug("joiner index covers %d byte pairs", len(joinerIndex))

	rng, err := newRNG(c)
	if err != nil {
		return err
	}

	opts := portmantout.DefaultAnnealOptions(c.String("out-dir"), l)
	opts.BreakRateFirstPass = c.Int("first-break-rate")
	opts.BreakRateSteadyState = c.Int("anneal-break-rate")

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		l.Info("received %s, finishing in-flight coalesce before exit", sig)
		cancel()
	}()
	defer signal.Stop(sigCh)

	final, err := portmantout.Anneal(ctx, state, wordsTrie, rng, opts)
	if err != nil {
		return err
	}
	l.Info("stopped, best score=%d", final.Score)
	return nil
}

func newRNG(c *cli.Context) (*portmantout.RNG, error) {
	if seed := c.String("seed"); seed != "" {
		return portmantout.NewRNGFromHex(seed)
	}
	return portmantout.NewRNG()
}
