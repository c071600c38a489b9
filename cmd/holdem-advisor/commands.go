package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/randutil"
	"github.com/lox/holdem-advisor/internal/tui"
	"github.com/lox/holdem-advisor/poker"
	"github.com/lox/holdem-advisor/sdk/analysis"
	"github.com/lox/holdem-advisor/sdk/classification"
)

// ClassifyCmd ranks a five-card hand.
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Ks Qs Js Ts' or AsKsQsJsTs"`
}

func (cmd *ClassifyCmd) Run(rc *runContext) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	score, err := poker.ClassifyHand(cards)
	if err != nil {
		return err
	}
	return printScore(rc, cards, score)
}

// BestCmd finds the best hand from seven cards.
type BestCmd struct {
	Cards []string `arg:"" help:"Seven cards: two hole cards followed by the board"`
}

func (cmd *BestCmd) Run(rc *runContext) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	score, err := poker.BestHand(cards)
	if err != nil {
		return err
	}
	return printScore(rc, cards, score)
}

func printScore(rc *runContext, cards []poker.Card, score poker.HandScore) error {
	ranks := make([]string, 0, 5)
	for _, r := range score.Ranks() {
		ranks = append(ranks, r.String())
	}
	return printRows(rc.out,
		row{"cards", handStyle.Render(poker.FormatCards(cards))},
		row{"category", categoryStyle.Render(score.Category.String())},
		row{"tiebreak", strings.Join(ranks, " ")},
	)
}

// PreflopCmd scores a starting hand.
type PreflopCmd struct {
	Hole string `arg:"" help:"Hole cards, e.g. AsKd"`
}

func (cmd *PreflopCmd) Run(rc *runContext) error {
	hole, err := poker.ParseHoleCards(cmd.Hole)
	if err != nil {
		return err
	}
	advice := analysis.ScorePreflop(hole)
	return printRows(rc.out,
		row{"hole", handStyle.Render(hole.String())},
		row{"score", fmt.Sprintf("%.1f", advice.Score)},
		row{"recommendation", advice.Recommendation.String()},
		row{"rationale", advice.Rationale},
	)
}

// DrawCmd reports the strongest draw.
type DrawCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 9h8h"`
	Board string `short:"b" help:"Community cards (0, 3, 4 or 5), e.g. 'Th7h2c'"`
}

func (cmd *DrawCmd) Run(rc *runContext) error {
	hole, board, err := parseHand(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}
	draw, err := classification.DetectDraw(hole, board)
	if err != nil {
		return err
	}
	return printRows(rc.out,
		row{"hole", handStyle.Render(hole.String())},
		row{"board", poker.FormatCards(board)},
		row{"draw", draw.String()},
	)
}

// EquityCmd runs a Monte Carlo equity estimate.
type EquityCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. AsAd"`
	Board     string `short:"b" help:"Community cards (0, 3, 4 or 5)"`
	Opponents *int   `short:"o" help:"Number of random opponents (overrides config)"`
	Trials    *int   `short:"n" help:"Number of simulated trials (overrides config)"`
	Workers   *int   `short:"w" help:"Worker goroutines, 0 for automatic (overrides config)"`
	Seed      *int64 `help:"Random seed for reproducible results"`
}

func (cmd *EquityCmd) Run(rc *runContext) error {
	hole, board, err := parseHand(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}

	settings := rc.cfg.Advisor
	if cmd.Opponents != nil {
		settings.Opponents = *cmd.Opponents
	}
	if cmd.Trials != nil {
		settings.Trials = *cmd.Trials
	}
	if cmd.Workers != nil {
		settings.Workers = *cmd.Workers
	}
	seed := rc.seed(cmd.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := &analysis.Simulator{Workers: settings.Workers, Logger: rc.logger, Clock: rc.clock}
	result, err := sim.Estimate(ctx, hole, board, settings.Opponents, settings.Trials, randutil.New(seed))
	if err != nil {
		return err
	}

	lower, upper := result.ConfidenceInterval()
	if err := printRows(rc.out,
		row{"hole", handStyle.Render(hole.String())},
		row{"board", poker.FormatCards(board)},
		row{"opponents", fmt.Sprintf("%d", settings.Opponents)},
		row{"win", winStyle.Render(fmt.Sprintf("%.1f%%", result.WinPct()))},
		row{"tie", tieStyle.Render(fmt.Sprintf("%.1f%%", result.TiePct()))},
		row{"loss", lossStyle.Render(fmt.Sprintf("%.1f%%", result.LossPct()))},
		row{"equity", fmt.Sprintf("%.1f%% (95%% CI %.1f%%-%.1f%%)", 100*result.Equity(), 100*lower, 100*upper)},
	); err != nil {
		return err
	}
	_, err = fmt.Fprintf(rc.out, "\n%s\n", footerStyle.Render(
		fmt.Sprintf("%d trials in %v (seed %d)", result.Trials, result.Elapsed.Truncate(time.Millisecond), seed)))
	return err
}

// PlayCmd runs the interactive advisor.
type PlayCmd struct {
	Opponents *int   `short:"o" help:"Number of random opponents (1-8)"`
	Trials    *int   `short:"n" help:"Trials per street (1000-20000)"`
	Seed      *int64 `help:"Random seed for reproducible deals"`
}

func (cmd *PlayCmd) Run(rc *runContext) error {
	settings := rc.cfg.Advisor
	if cmd.Opponents != nil {
		settings.Opponents = *cmd.Opponents
	}
	if cmd.Trials != nil {
		settings.Trials = *cmd.Trials
	}
	requested := settings
	settings = settings.Clamp()
	if requested.Opponents != settings.Opponents {
		rc.logger.Warn("Opponents clamped", "requested", requested.Opponents, "using", settings.Opponents,
			"min", config.MinOpponents, "max", config.MaxOpponents)
	}
	if requested.Trials != settings.Trials {
		rc.logger.Warn("Trials clamped", "requested", requested.Trials, "using", settings.Trials,
			"min", config.MinTrials, "max", config.MaxTrials)
	}

	model, err := tui.New(tui.Options{
		Opponents: settings.Opponents,
		Trials:    settings.Trials,
		Simulator: &analysis.Simulator{Workers: settings.Workers, Logger: rc.logger, Clock: rc.clock},
		Rand:      randutil.New(rc.seed(cmd.Seed)),
		Logger:    rc.logger,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func parseHand(holeText, boardText string) (poker.HoleCards, []poker.Card, error) {
	hole, err := poker.ParseHoleCards(holeText)
	if err != nil {
		return poker.HoleCards{}, nil, fmt.Errorf("hole: %w", err)
	}
	board, err := poker.ParseCards(boardText)
	if err != nil {
		return poker.HoleCards{}, nil, fmt.Errorf("board: %w", err)
	}
	return hole, board, nil
}
