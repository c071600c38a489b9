// Package round holds the card state of a single advised hand: hero's hole
// cards, the community board and the undealt deck. A Round is owned by one
// caller and moves forward one street at a time.
package round

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/holdem-advisor/poker"
)

// Street represents how far the board has been dealt
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	if s < Preflop || s > Showdown {
		return fmt.Sprintf("street(%d)", int(s))
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// BoardSize returns the number of community cards visible on the street.
func (s Street) BoardSize() int {
	switch s {
	case Preflop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

var (
	// ErrHandOver is returned when advancing a round that has reached
	// showdown or was folded.
	ErrHandOver = errors.New("round: hand is over")
)

// Round is the state of one hand from hero's point of view.
type Round struct {
	hole   poker.HoleCards
	board  []poker.Card
	deck   *poker.Deck
	street Street
	folded bool
}

// New shuffles a fresh deck with rng and deals hero's hole cards.
func New(rng *rand.Rand) (*Round, error) {
	deck, err := poker.NewDeck(rng)
	if err != nil {
		return nil, err
	}
	dealt := deck.Deal(2)
	hole, err := poker.NewHoleCards(dealt[0], dealt[1])
	if err != nil {
		return nil, err
	}
	return &Round{
		hole:  hole,
		board: make([]poker.Card, 0, 5),
		deck:  deck,
	}, nil
}

// Hole returns hero's hole cards.
func (r *Round) Hole() poker.HoleCards { return r.hole }

// Board returns a copy of the community cards dealt so far.
func (r *Round) Board() []poker.Card { return slices.Clone(r.board) }

// Street returns the current street.
func (r *Round) Street() Street { return r.street }

// Folded reports whether hero gave up the hand.
func (r *Round) Folded() bool { return r.folded }

// Over reports whether no further street can be dealt.
func (r *Round) Over() bool { return r.folded || r.street == Showdown }

// CardsRemaining returns the number of undealt cards.
func (r *Round) CardsRemaining() int { return r.deck.CardsRemaining() }

// Fold ends the hand without reaching showdown.
func (r *Round) Fold() error {
	if r.Over() {
		return ErrHandOver
	}
	r.folded = true
	return nil
}

// Advance deals the next street: three cards for the flop, one each for the
// turn and river. Advancing from the river moves to showdown without dealing.
func (r *Round) Advance() (Street, error) {
	if r.Over() {
		return r.street, ErrHandOver
	}
	next := r.street + 1
	if n := next.BoardSize() - len(r.board); n > 0 {
		cards := r.deck.Deal(n)
		if cards == nil {
			return r.street, &poker.InsufficientDeckError{Available: r.deck.CardsRemaining(), Required: n}
		}
		r.board = append(r.board, cards...)
	}
	r.street = next
	return r.street, nil
}
