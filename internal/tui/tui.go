// Package tui implements the interactive play mode: a single hand dealt
// street by street with preflop advice, equity and draw hints.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/randutil"
	"github.com/lox/holdem-advisor/internal/round"
	"github.com/lox/holdem-advisor/poker"
	"github.com/lox/holdem-advisor/sdk/analysis"
	"github.com/lox/holdem-advisor/sdk/classification"
)

// Options configures a play session.
type Options struct {
	Opponents int
	Trials    int
	Simulator *analysis.Simulator
	Rand      *rand.Rand
	Logger    *log.Logger
}

// equityMsg carries the result of a background simulation.
type equityMsg struct {
	street round.Street
	result analysis.EquityResult
	err    error
}

// Model is the Bubble Tea model for play mode
type Model struct {
	opts   Options
	logger *log.Logger
	round  *round.Round

	ctx    context.Context
	cancel context.CancelFunc

	logViewport viewport.Model
	gameLog     []string
	hands       int
	busy        bool
	quitting    bool

	width  int
	height int
}

// New creates a play model and deals the first hand.
func New(opts Options) (*Model, error) {
	if opts.Rand == nil {
		return nil, errors.New("tui: nil random source")
	}
	if opts.Simulator == nil {
		opts.Simulator = &analysis.Simulator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		opts:        opts,
		logger:      logger.WithPrefix("tui"),
		ctx:         ctx,
		cancel:      cancel,
		logViewport: viewport.New(10, 5),
	}
	if err := m.newHand(); err != nil {
		cancel()
		return nil, err
	}
	return m, nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = max(1, msg.Width-2)
		m.logViewport.Height = max(1, msg.Height-5)
		m.logViewport.GotoBottom()
		return m, nil

	case equityMsg:
		m.busy = false
		m.showEquity(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		case "c", "enter":
			return m, m.advance()
		case "f":
			m.fold()
			return m, nil
		case "n":
			if m.round.Over() && !m.busy {
				if err := m.newHand(); err != nil {
					m.addLog(ErrorStyle.Render(err.Error()))
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(fmt.Sprintf(" holdem-advisor  hand #%d  vs %d opponents ", m.hands, m.opts.Opponents))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.logViewport.View(),
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m *Model) renderStatus() string {
	hole := m.round.Hole()
	return fmt.Sprintf("%s %s   %s %s",
		StreetStyle.Render("Hole:"), RenderCards(hole[:]),
		StreetStyle.Render("Board:"), RenderCards(m.round.Board()))
}

func (m *Model) renderHelp() string {
	switch {
	case m.busy:
		return InfoStyle.Render("Simulating... q quit")
	case m.round.Over():
		return InfoStyle.Render("n new hand • q quit")
	default:
		return InfoStyle.Render("c continue • f fold • q quit")
	}
}

// Log returns the plain log lines, newest last.
func (m *Model) Log() []string {
	return append([]string(nil), m.gameLog...)
}

// Round returns the hand in progress.
func (m *Model) Round() *round.Round {
	return m.round
}

func (m *Model) addLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) newHand() error {
	r, err := round.New(m.opts.Rand)
	if err != nil {
		return err
	}
	m.round = r
	m.hands++

	hole := r.Hole()
	advice := analysis.ScorePreflop(hole)
	m.logger.Debug("New hand", "hand", m.hands, "hole", hole.String())

	m.addLog(HeaderStyle.Render(fmt.Sprintf(" Hand #%d ", m.hands)))
	m.addLog(fmt.Sprintf("%s %s", StreetStyle.Render("Preflop:"), RenderCards(hole[:])))
	m.addLog(fmt.Sprintf("  Score %.1f  %s  (%s)",
		advice.Score, recommendationStyle(advice.Recommendation).Render(advice.Recommendation.String()), advice.Rationale))
	return nil
}

func (m *Model) fold() {
	if m.busy || m.round.Fold() != nil {
		return
	}
	m.addLog(WarningStyle.Render("You folded. Hand ended."))
}

// advance deals the next street and returns the simulation command for it.
func (m *Model) advance() tea.Cmd {
	if m.busy || m.round.Over() {
		return nil
	}
	street, err := m.round.Advance()
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return nil
	}

	board := m.round.Board()
	if street == round.Showdown {
		m.addLog(fmt.Sprintf("%s final board %s", StreetStyle.Render("Showdown:"), RenderCards(board)))
	} else {
		m.addLog(fmt.Sprintf("%s %s", StreetStyle.Render(streetLabel(street)), RenderCards(board)))
		draw, err := classification.DetectDraw(m.round.Hole(), board)
		if err != nil {
			m.addLog(ErrorStyle.Render(err.Error()))
		} else if draw.Found() {
			m.addLog(ActionsStyle.Render("  You have a " + draw.String()))
		}
	}

	m.busy = true
	return m.simulate(street, board)
}

func (m *Model) simulate(street round.Street, board []poker.Card) tea.Cmd {
	hole := m.round.Hole()
	rng := randutil.Split(m.opts.Rand)
	ctx, sim := m.ctx, m.opts.Simulator
	opponents, trials := m.opts.Opponents, m.opts.Trials

	return func() tea.Msg {
		result, err := sim.Estimate(ctx, hole, board, opponents, trials, rng)
		return equityMsg{street: street, result: result, err: err}
	}
}

func (m *Model) showEquity(msg equityMsg) {
	if msg.err != nil {
		m.addLog(ErrorStyle.Render("Equity failed: " + msg.err.Error()))
		return
	}
	m.addLog(fmt.Sprintf("  Equity vs %d: %.1f%% (win %.1f%%, tie %.1f%%)",
		m.opts.Opponents, msg.result.WinPct()+msg.result.TiePct(), msg.result.WinPct(), msg.result.TiePct()))
	if msg.street == round.Showdown {
		m.addLog(InfoStyle.Render("Hand complete."))
	}
}

func recommendationStyle(r analysis.Recommendation) lipgloss.Style {
	switch r {
	case analysis.Strong, analysis.Play:
		return SuccessStyle
	case analysis.Marginal:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

func streetLabel(s round.Street) string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:] + ":"
}
