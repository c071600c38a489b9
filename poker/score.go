package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandScore is the strength of a five-card hand. Tiebreak holds the ranks
// that decide between hands of the same category, most significant first;
// unused slots are zero.
type HandScore struct {
	Category Category
	Tiebreak [5]Rank
}

// Compare returns -1 if s is weaker than other, 0 if they are equal in
// strength and 1 if s is stronger.
func (s HandScore) Compare(other HandScore) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := range s.Tiebreak {
		if s.Tiebreak[i] < other.Tiebreak[i] {
			return -1
		}
		if s.Tiebreak[i] > other.Tiebreak[i] {
			return 1
		}
	}
	return 0
}

// Beats reports whether s is strictly stronger than other.
func (s HandScore) Beats(other HandScore) bool {
	return s.Compare(other) > 0
}

// Ranks returns the populated tiebreak ranks.
func (s HandScore) Ranks() []Rank {
	n := 0
	for n < len(s.Tiebreak) && s.Tiebreak[n] != 0 {
		n++
	}
	return s.Tiebreak[:n:n]
}

// String describes the hand, e.g. "Full House (K, 7)".
func (s HandScore) String() string {
	ranks := s.Ranks()
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s (%s)", s.Category, strings.Join(parts, ", "))
}
