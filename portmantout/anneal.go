package portmantout

import (
	"context"
	"fmt"

	"github.com/kestrel-labs/portmantout/internal/logger"
	"github.com/kestrel-labs/portmantout/trie"
)

// AnnealOptions configures the outer break+coalesce loop.
type AnnealOptions struct {
	OutDir               string
	BreakRateFirstPass   int // numerator over 10000, applied on the first perturbation
	BreakRateSteadyState int // numerator over 10000, applied on every later perturbation
	Logger               logger.Logger
}

// DefaultAnnealOptions returns the documented default break rates from
// the chain breaker design (BreakRateFirstPass, BreakRateAnnealing).
func DefaultAnnealOptions(outDir string, log logger.Logger) AnnealOptions {
	return AnnealOptions{
		OutDir:               outDir,
		BreakRateFirstPass:   BreakRateFirstPass,
		BreakRateSteadyState: BreakRateAnnealing,
		Logger:               log,
	}
}

// Anneal runs the initial coalesce, persists it, then loops
// break+coalesce, keeping only strictly improving states (hill
// climbing with randomized perturbation — Metropolis-style acceptance
// is not enabled, matching the reference behaviour). ctx cancellation
// is checked between iterations; the in-flight coalesce always
// finishes and its resulting best file always finishes its atomic
// write before Anneal returns, so a signalled shutdown never
// truncates output.
func Anneal(ctx context.Context, state *State, wordsTrie *trie.Tree[struct{}], rng *RNG, opts AnnealOptions) (*State, error) {
	Coalesce(state, wordsTrie, rng)
	if err := writeBest(state, opts); err != nil {
		return state, err
	}
	opts.Logger.Info("initial coalesce complete, score=%d", state.Score)

	for iteration := 0; ; iteration++ {
		select {
		case <-ctx.Done():
			return state, nil
		default:
		}

		breakNum := opts.BreakRateSteadyState
		if iteration == 0 {
			breakNum = opts.BreakRateFirstPass
		}

		candidate := state.Clone()
		BreakChains(candidate, breakNum, breakRateDenom, rng)
		Coalesce(candidate, wordsTrie, rng)

		if candidate.Score < state.Score {
			state = candidate
			opts.Logger.Info("new best score: %d", state.Score)
			if err := writeBest(state, opts); err != nil {
				return state, err
			}
		}
	}
}

func writeBest(state *State, opts AnnealOptions) error {
	rendered := RenderState(state)
	name := fmt.Sprintf("%d.txt", state.Score)
	if err := AtomicWriteFile(opts.OutDir, name, rendered); err != nil {
		return err
	}
	return nil
}
