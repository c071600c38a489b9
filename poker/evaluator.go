package poker

// ClassifyHand scores exactly five distinct cards.
func ClassifyHand(cards []Card) (HandScore, error) {
	if len(cards) != 5 {
		return HandScore{}, &InvalidInputError{Op: "classify hand", Got: len(cards), Want: "5 cards"}
	}
	if _, err := NewCardSet(cards...); err != nil {
		return HandScore{}, err
	}
	return classify5([5]Card(cards)), nil
}

// BestHand returns the strongest five-card hand among exactly seven
// distinct cards.
func BestHand(cards []Card) (HandScore, error) {
	if len(cards) != 7 {
		return HandScore{}, &InvalidInputError{Op: "best hand", Got: len(cards), Want: "7 cards"}
	}
	if _, err := NewCardSet(cards...); err != nil {
		return HandScore{}, err
	}
	return best7([7]Card(cards)), nil
}

// fiveOfSeven lists the 21 index subsets of size five drawn from seven.
var fiveOfSeven = func() [21][5]uint8 {
	var combos [21][5]uint8
	n := 0
	for a := uint8(0); a < 7; a++ {
		for b := a + 1; b < 7; b++ {
			for c := b + 1; c < 7; c++ {
				for d := c + 1; d < 7; d++ {
					for e := d + 1; e < 7; e++ {
						combos[n] = [5]uint8{a, b, c, d, e}
						n++
					}
				}
			}
		}
	}
	return combos
}()

// best7 is BestHand without validation, for the simulator's hot loop.
func best7(cards [7]Card) HandScore {
	var best HandScore
	for i, idx := range fiveOfSeven {
		score := classify5([5]Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]})
		if i == 0 || score.Compare(best) > 0 {
			best = score
		}
	}
	return best
}

// Best7 is the unchecked seven-card evaluator. The caller guarantees that
// the cards are valid and distinct.
func Best7(cards [7]Card) HandScore {
	return best7(cards)
}

func classify5(cards [5]Card) HandScore {
	var counts [Ace + 1]uint8
	flush := true
	suit := cards[0].Suit()
	for _, c := range cards {
		counts[c.Rank()]++
		if c.Suit() != suit {
			flush = false
		}
	}

	// Order ranks by count then rank, both descending. For every category
	// except straights this is exactly the tiebreak order.
	var groups [5]Rank
	var groupCounts [5]uint8
	n := 0
	for count := uint8(4); count >= 1; count-- {
		for r := Ace; r >= Two; r-- {
			if counts[r] == count {
				groups[n] = r
				groupCounts[n] = count
				n++
			}
		}
	}

	straightHigh := Rank(0)
	if n == 5 {
		switch {
		case groups[0]-groups[4] == 4:
			straightHigh = groups[0]
		case groups == [5]Rank{Ace, Five, Four, Three, Two}:
			straightHigh = Five
		}
	}

	var score HandScore
	switch {
	case straightHigh != 0 && flush:
		score.Category = StraightFlush
		score.Tiebreak[0] = straightHigh
		return score
	case groupCounts[0] == 4:
		score.Category = FourOfAKind
	case groupCounts[0] == 3 && groupCounts[1] == 2:
		score.Category = FullHouse
	case flush:
		score.Category = Flush
	case straightHigh != 0:
		score.Category = Straight
		score.Tiebreak[0] = straightHigh
		return score
	case groupCounts[0] == 3:
		score.Category = ThreeOfAKind
	case groupCounts[0] == 2 && groupCounts[1] == 2:
		score.Category = TwoPair
	case groupCounts[0] == 2:
		score.Category = OnePair
	default:
		score.Category = HighCard
	}
	copy(score.Tiebreak[:n], groups[:n])
	return score
}
