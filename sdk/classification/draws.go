// Package classification detects drawing hands: holdings that are one card
// away from a flush or a straight.
package classification

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-advisor/poker"
)

// DrawKind represents the types of draws a hand can have
type DrawKind int

const (
	NoDraw DrawKind = iota
	FlushDraw
	OpenEndedStraightDraw
	Gutshot
)

func (dk DrawKind) String() string {
	switch dk {
	case NoDraw:
		return "no draw"
	case FlushDraw:
		return "flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot straight draw"
	default:
		return "unknown"
	}
}

// Outs returns the conventional number of outs for the draw.
func (dk DrawKind) Outs() int {
	switch dk {
	case FlushDraw:
		return 9
	case OpenEndedStraightDraw:
		return 8
	case Gutshot:
		return 4
	default:
		return 0
	}
}

// DrawSignal is the single strongest draw found, or NoDraw.
type DrawSignal struct {
	Kind DrawKind
	Outs int
}

// Found reports whether a draw was detected.
func (d DrawSignal) Found() bool {
	return d.Kind != NoDraw
}

func (d DrawSignal) String() string {
	if !d.Found() {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s (%d outs)", d.Kind, d.Outs)
}

func signal(kind DrawKind) DrawSignal {
	return DrawSignal{Kind: kind, Outs: kind.Outs()}
}

// DetectDraw reports the strongest draw for hole plus board. Flush draws
// take priority over straight draws and open-ended over gutshot. A complete
// five-card board has no cards to come and never yields a draw.
func DetectDraw(hole poker.HoleCards, board []poker.Card) (DrawSignal, error) {
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return DrawSignal{}, &poker.InvalidInputError{Op: "detect draw", Got: len(board), Want: "0, 3, 4 or 5 board cards"}
	}
	known, err := poker.NewCardSet(hole[:]...)
	if err != nil {
		return DrawSignal{}, err
	}
	if err := known.AddAll(board...); err != nil {
		return DrawSignal{}, err
	}

	if len(board) == 5 {
		return signal(NoDraw), nil
	}

	cards := append([]poker.Card{hole[0], hole[1]}, board...)

	var suitCounts [4]int
	for _, c := range cards {
		suitCounts[c.Suit()]++
	}
	if slices.Contains(suitCounts[:], 4) {
		return signal(FlushDraw), nil
	}

	return signal(straightDraw(cards)), nil
}

// straightDraw scans four-rank windows over the distinct ranks in ascending
// order. An ace also counts as a one so that wheel draws are seen.
func straightDraw(cards []poker.Card) DrawKind {
	var present [poker.Ace + 1]bool
	for _, c := range cards {
		present[c.Rank()] = true
	}
	ranks := make([]int, 0, len(cards)+1)
	if present[poker.Ace] {
		ranks = append(ranks, 1)
	}
	for r := poker.Two; r <= poker.Ace; r++ {
		if present[r] {
			ranks = append(ranks, int(r))
		}
	}

	for _, want := range []struct {
		span int
		kind DrawKind
	}{
		{3, OpenEndedStraightDraw},
		{4, Gutshot},
	} {
		for i := 0; i+3 < len(ranks); i++ {
			if ranks[i+3]-ranks[i] == want.span {
				return want.kind
			}
		}
	}
	return NoDraw
}
