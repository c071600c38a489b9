// Package analysis provides the decision-support heuristics built on the
// poker evaluator: Monte Carlo equity against random opponents and a
// preflop starting-hand score.
package analysis

import (
	"context"
	"errors"
	"io"
	"math"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/randutil"
	"github.com/lox/holdem-advisor/poker"
)

const (
	// Below this many trials the simulation runs on a single worker.
	parallelThreshold = 500

	// Workers check for cancellation every batchSize trials.
	batchSize = 256

	// Cap at 8 for diminishing returns
	maxWorkers = 8
)

// EquityResult represents the result of an equity calculation
type EquityResult struct {
	Wins    int
	Ties    int
	Trials  int
	Elapsed time.Duration
}

// WinPct returns the share of trials won outright, in percent.
func (e EquityResult) WinPct() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return 100 * float64(e.Wins) / float64(e.Trials)
}

// TiePct returns the share of trials tied for best hand, in percent.
func (e EquityResult) TiePct() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return 100 * float64(e.Ties) / float64(e.Trials)
}

// LossPct returns 100 - WinPct - TiePct.
func (e EquityResult) LossPct() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return 100 - e.WinPct() - e.TiePct()
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as 0.5
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return (float64(e.Wins) + 0.5*float64(e.Ties)) / float64(e.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	n := float64(e.Trials)
	if n == 0 {
		return 0.0, 0.0
	}
	equity := e.Equity()

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// Simulator runs Monte Carlo equity estimates. The zero value is ready to
// use; a Simulator holds no per-run state and may be shared.
type Simulator struct {
	// Workers is the number of goroutines trials are split across. Zero
	// selects min(NumCPU, 8). Results are reproducible for a fixed seed
	// and worker count.
	Workers int
	Logger  *log.Logger
	Clock   quartz.Clock
}

var discardLogger = log.New(io.Discard)

// EstimateEquity runs Estimate on a default Simulator.
func EstimateEquity(hole poker.HoleCards, board []poker.Card, opponents, trials int, rng *rand.Rand) (EquityResult, error) {
	var s Simulator
	return s.Estimate(context.Background(), hole, board, opponents, trials, rng)
}

// Estimate deals trials random completions of the hand against opponents
// random hole cards and counts how often hero wins outright or ties for the
// best hand. All validation happens before rng is touched; a cancelled
// context returns ctx.Err() and no partial result.
func (s *Simulator) Estimate(ctx context.Context, hole poker.HoleCards, board []poker.Card, opponents, trials int, rng *rand.Rand) (EquityResult, error) {
	if opponents < 0 {
		return EquityResult{}, &poker.ConfigurationError{Field: "opponents", Value: opponents, Reason: "must be at least 0"}
	}
	if trials < 1 {
		return EquityResult{}, &poker.ConfigurationError{Field: "trials", Value: trials, Reason: "must be at least 1"}
	}
	if s.Workers < 0 {
		return EquityResult{}, &poker.ConfigurationError{Field: "workers", Value: s.Workers, Reason: "must be at least 0"}
	}
	if rng == nil {
		return EquityResult{}, errors.New("equity: nil random source")
	}

	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return EquityResult{}, &poker.InvalidInputError{Op: "equity board", Got: len(board), Want: "0, 3, 4 or 5 cards"}
	}
	known, err := poker.NewCardSet(hole[:]...)
	if err != nil {
		return EquityResult{}, err
	}
	if err := known.AddAll(board...); err != nil {
		return EquityResult{}, err
	}

	if opponents == 0 {
		return EquityResult{Wins: trials, Trials: trials}, nil
	}

	need := 5 - len(board)
	available := poker.NumCards - known.Len()
	required := 2*opponents + need
	if available < required {
		return EquityResult{}, &poker.InsufficientDeckError{Available: available, Required: required}
	}

	clock := s.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := s.Logger
	if logger == nil {
		logger = discardLogger
	}

	workers := s.workerCount(trials)
	start := clock.Now()

	deck := poker.Remaining(known)
	job := trialJob{
		hole:      hole,
		board:     board,
		opponents: opponents,
		need:      need,
	}

	// Seed every worker up front, in order, so the split of the caller's
	// stream does not depend on goroutine scheduling.
	streams := make([]*rand.Rand, workers)
	for w := range streams {
		streams[w] = randutil.Split(rng)
	}

	counts := make([]trialCounts, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := trials / workers
		if w < trials%workers {
			n++
		}
		g.Go(func() error {
			workerDeck := make([]poker.Card, len(deck))
			copy(workerDeck, deck)
			c, err := job.run(gctx, workerDeck, n, streams[w])
			counts[w] = c
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	result := EquityResult{Trials: trials}
	for _, c := range counts {
		result.Wins += c.wins
		result.Ties += c.ties
	}
	result.Elapsed = clock.Since(start)

	logger.Debug("Equity simulation complete",
		"hole", hole.String(),
		"board", poker.FormatCards(board),
		"opponents", opponents,
		"trials", trials,
		"workers", workers,
		"win", result.WinPct(),
		"tie", result.TiePct(),
		"elapsed", result.Elapsed)

	return result, nil
}

func (s *Simulator) workerCount(trials int) int {
	workers := s.Workers
	if workers == 0 {
		if trials < parallelThreshold {
			return 1
		}
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	return max(1, min(workers, trials))
}

type trialCounts struct {
	wins int
	ties int
}

// trialJob is the read-only description of one simulation shared by all
// workers.
type trialJob struct {
	hole      poker.HoleCards
	board     []poker.Card
	opponents int
	need      int
}

// run plays n trials. deck holds every unknown card and is owned by the
// caller's goroutine.
func (j trialJob) run(ctx context.Context, deck []poker.Card, n int, rng *rand.Rand) (trialCounts, error) {
	var c trialCounts
	dealt := 2*j.opponents + j.need
	fixed := 2 + len(j.board)

	var hero, opp [7]poker.Card
	hero[0], hero[1] = j.hole[0], j.hole[1]
	copy(hero[2:], j.board)
	copy(opp[2:], j.board)

	for t := 0; t < n; t++ {
		if t%batchSize == 0 {
			if err := ctx.Err(); err != nil {
				return trialCounts{}, err
			}
		}

		poker.Shuffle(deck, dealt, rng)

		// Opponent i holds deck[2i:2i+2]; the board is completed from the
		// positions after the last opponent.
		runout := deck[2*j.opponents : dealt]
		copy(hero[fixed:], runout)
		copy(opp[fixed:], runout)
		heroScore := poker.Best7(hero)

		beaten, tied := false, false
		for i := 0; i < j.opponents; i++ {
			opp[0], opp[1] = deck[2*i], deck[2*i+1]
			switch poker.Best7(opp).Compare(heroScore) {
			case 1:
				beaten = true
			case 0:
				tied = true
			}
			if beaten {
				break
			}
		}

		switch {
		case beaten:
		case tied:
			c.ties++
		default:
			c.wins++
		}
	}
	return c, nil
}
