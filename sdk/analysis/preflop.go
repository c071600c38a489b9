package analysis

import (
	"math"

	"github.com/lox/holdem-advisor/poker"
)

// Recommendation is the discrete preflop action suggested by ScorePreflop.
type Recommendation int

const (
	Fold Recommendation = iota
	Marginal
	Play
	Strong
)

func (r Recommendation) String() string {
	switch r {
	case Fold:
		return "Fold"
	case Marginal:
		return "Marginal"
	case Play:
		return "Play"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Preflop is the heuristic assessment of two hole cards.
type Preflop struct {
	Score          float64
	Recommendation Recommendation
	Rationale      string // e.g. "AA pair", "suited connected", ">=4-gap"
}

// Single-card values by rank. The table is hand tuned; keep it stable.
var baseValues = [...]float64{
	poker.Two:   1.0,
	poker.Three: 1.5,
	poker.Four:  2.0,
	poker.Five:  2.5,
	poker.Six:   3.0,
	poker.Seven: 3.5,
	poker.Eight: 4.0,
	poker.Nine:  4.5,
	poker.Ten:   5.0,
	poker.Jack:  6.0,
	poker.Queen: 7.0,
	poker.King:  8.0,
	poker.Ace:   10.0,
}

var gapLabels = [...]string{"connected", "1-gap", "2-gap", "3-gap"}

// gapAdjustment is indexed by the number of ranks between the two cards.
var gapAdjustment = [...]float64{1.0, 0.0, -1.0, -2.0}

const wideGapAdjustment = -4.0

// ScorePreflop scores two hole cards with a fixed, deterministic heuristic.
func ScorePreflop(hole poker.HoleCards) Preflop {
	r1, r2 := hole[0].Rank(), hole[1].Rank()
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	suited := hole[0].Suit() == hole[1].Suit()

	if r1 == r2 {
		score := roundHalf(math.Max(5.0, 2*baseValues[r1]))
		return Preflop{
			Score:          score,
			Recommendation: recommend(score),
			Rationale:      r1.String() + r2.String() + " pair",
		}
	}

	score := baseValues[r1]
	if suited {
		score += 2.0
	}

	gap := int(r1-r2) - 1
	if gap < len(gapAdjustment) {
		score += gapAdjustment[gap]
	} else {
		score += wideGapAdjustment
	}
	// Wide gaps without an ace or king are penalised further.
	if r1 <= poker.Queen && gap >= 2 {
		score -= 1.0
	}

	score = roundHalf(score)

	rationale := ">=4-gap"
	if gap < len(gapLabels) {
		rationale = gapLabels[gap]
	}
	if suited {
		rationale = "suited " + rationale
	}

	return Preflop{
		Score:          score,
		Recommendation: recommend(score),
		Rationale:      rationale,
	}
}

func recommend(score float64) Recommendation {
	switch {
	case score < 6.0:
		return Fold
	case score < 8.0:
		return Marginal
	case score < 11.0:
		return Play
	default:
		return Strong
	}
}

func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
