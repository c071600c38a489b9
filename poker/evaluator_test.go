package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards    string
		category Category
		tiebreak []Rank
	}{
		{"AsKsQsJsTs", StraightFlush, []Rank{Ace}},
		{"9h8h7h6h5h", StraightFlush, []Rank{Nine}},
		{"5d4d3d2dAd", StraightFlush, []Rank{Five}},
		{"AsAhAdAcKs", FourOfAKind, []Rank{Ace, King}},
		{"3s3h3d3cAs", FourOfAKind, []Rank{Three, Ace}},
		{"KsKhKd7c7s", FullHouse, []Rank{King, Seven}},
		{"7s7h7dKcKs", FullHouse, []Rank{Seven, King}},
		{"AsJs9s4s2s", Flush, []Rank{Ace, Jack, Nine, Four, Two}},
		{"Ts9h8d7c6s", Straight, []Rank{Ten}},
		{"As2h3d4c5s", Straight, []Rank{Five}},
		{"AsKhQdJcTs", Straight, []Rank{Ace}},
		{"8s8h8dAcKs", ThreeOfAKind, []Rank{Eight, Ace, King}},
		{"QsQhJdJc2s", TwoPair, []Rank{Queen, Jack, Two}},
		{"2s2h3d3cAs", TwoPair, []Rank{Three, Two, Ace}},
		{"9s9h5d3c2s", OnePair, []Rank{Nine, Five, Three, Two}},
		{"AsKhQdJc9s", HighCard, []Rank{Ace, King, Queen, Jack, Nine}},
		{"KsAhQd2c3s", HighCard, []Rank{Ace, King, Queen, Three, Two}},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.cards, func(t *testing.T) {
			t.Parallel()
			score, err := ClassifyHand(MustParseCards(tc.cards))
			require.NoError(t, err)
			assert.Equal(t, tc.category, score.Category)
			assert.Equal(t, tc.tiebreak, score.Ranks())
		})
	}
}

func TestClassifyHandInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := ClassifyHand(MustParseCards("AsKsQsJs"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.Got)

	_, err = ClassifyHand(MustParseCards("AsKsQsJsTs9s"))
	require.ErrorAs(t, err, &invalid)

	_, err = ClassifyHand(MustParseCards("AsAsQsJsTs"))
	var dup *DuplicateCardError
	require.ErrorAs(t, err, &dup)
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()

	// Strongest to weakest, one representative per category.
	hands := []string{
		"6s5s4s3s2s",
		"2s2h2d2c3s",
		"2s2h2d3c3s",
		"7s5s4s3s2s",
		"6s5h4d3c2s",
		"2s2h2d4c3s",
		"3s3h2d2c4s",
		"2s2h5d4c3s",
		"7s5h4d3c2s",
	}

	scores := make([]HandScore, len(hands))
	for i, h := range hands {
		var err error
		scores[i], err = ClassifyHand(MustParseCards(h))
		require.NoError(t, err)
		assert.Equal(t, Category(len(hands)-1-i), scores[i].Category, h)
	}

	for i := range scores {
		for j := range scores {
			want := 0
			switch {
			case i < j:
				want = 1
			case i > j:
				want = -1
			}
			assert.Equal(t, want, scores[i].Compare(scores[j]), "%s vs %s", hands[i], hands[j])
		}
	}
}

func TestWheelIsFiveHigh(t *testing.T) {
	t.Parallel()

	wheel, err := ClassifyHand(MustParseCards("As2d3h4c5s"))
	require.NoError(t, err)
	sixHigh, err := ClassifyHand(MustParseCards("2d3h4c5s6s"))
	require.NoError(t, err)

	assert.Equal(t, Straight, wheel.Category)
	assert.Equal(t, Five, wheel.Tiebreak[0])
	assert.True(t, sixHigh.Beats(wheel))
	assert.Equal(t, -1, wheel.Compare(sixHigh))
}

func TestTiebreaks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs"},
		{"full house trips first", "3s3h3dAcAs", "2s2h2dAcAs"},
		{"full house pair", "KsKhKd3c3s", "KsKhKd2c2s"},
		{"flush last card", "AsJs9s4s3s", "AhJh9h4h2h"},
		{"two pair kicker", "QsQhJdJc3s", "QsQhJdJc2s"},
		{"two pair low pair", "QsQhJdJc2s", "QsQhTdTcAs"},
		{"pair kicker", "9s9hAd3c2s", "9s9hKdQcJs"},
		{"high card second card", "AsQh9d4c2s", "AsJhTd9c7s"},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			strong, err := ClassifyHand(MustParseCards(tc.stronger))
			require.NoError(t, err)
			weak, err := ClassifyHand(MustParseCards(tc.weaker))
			require.NoError(t, err)
			assert.Equal(t, strong.Category, weak.Category)
			assert.Equal(t, 1, strong.Compare(weak))
			assert.Equal(t, -1, weak.Compare(strong))
		})
	}
}

func TestSuitsNeverBreakTies(t *testing.T) {
	t.Parallel()

	a, err := ClassifyHand(MustParseCards("AsKhQd9c7s"))
	require.NoError(t, err)
	b, err := ClassifyHand(MustParseCards("AhKdQc9s7h"))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, a, b)
}

func TestClassifyHandExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates all 2,598,960 hands")
	}
	t.Parallel()

	want := map[Category]int{
		StraightFlush: 40,
		FourOfAKind:   624,
		FullHouse:     3744,
		Flush:         5108,
		Straight:      10200,
		ThreeOfAKind:  54912,
		TwoPair:       123552,
		OnePair:       1098240,
		HighCard:      1302540,
	}

	got := make(map[Category]int)
	for a := Card(0); a < NumCards; a++ {
		for b := a + 1; b < NumCards; b++ {
			for c := b + 1; c < NumCards; c++ {
				for d := c + 1; d < NumCards; d++ {
					for e := d + 1; e < NumCards; e++ {
						got[classify5([5]Card{a, b, c, d, e}).Category]++
					}
				}
			}
		}
	}
	assert.Equal(t, want, got)
}

func TestBestHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards    string
		category Category
		tiebreak []Rank
	}{
		{"AsKsQsJsTs9h8h", StraightFlush, []Rank{Ace}},
		{"AsAhAdAcKs2h3h", FourOfAKind, []Rank{Ace, King}},
		{"AsAhAdKsKhKd3h", FullHouse, []Rank{Ace, King}},
		{"AsKsQs9s7s4h3h", Flush, []Rank{Ace, King, Queen, Nine, Seven}},
		{"AsKhQdJsTs9h8h", Straight, []Rank{Ace}},
		{"As2h3d4c5s9hKd", Straight, []Rank{Five}},
		{"As2h3d4c5s6h9d", Straight, []Rank{Six}},
		{"AsAhAdKsQh2h3h", ThreeOfAKind, []Rank{Ace, King, Queen}},
		{"AsAhKdKsQhQc3h", TwoPair, []Rank{Ace, King, Queen}},
		{"AsAhKdQs9h2h3h", OnePair, []Rank{Ace, King, Queen, Nine}},
		{"AsKhQd9s7c5h3h", HighCard, []Rank{Ace, King, Queen, Nine, Seven}},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.cards, func(t *testing.T) {
			t.Parallel()
			score, err := BestHand(MustParseCards(tc.cards))
			require.NoError(t, err)
			assert.Equal(t, tc.category, score.Category)
			assert.Equal(t, tc.tiebreak, score.Ranks())
		})
	}
}

func TestBestHandInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := BestHand(MustParseCards("AsKsQsJsTs"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 5, invalid.Got)

	_, err = BestHand(MustParseCards("AsKsQsJsTs9sAs"))
	var dup *DuplicateCardError
	require.ErrorAs(t, err, &dup)
}

func TestBestHandPermutationInvariant(t *testing.T) {
	t.Parallel()

	rng := newTestRand(7)
	for trial := 0; trial < 200; trial++ {
		d, err := NewDeck(rng)
		require.NoError(t, err)
		cards := d.Deal(7)

		want, err := BestHand(cards)
		require.NoError(t, err)

		for p := 0; p < 5; p++ {
			shuffled := append([]Card(nil), cards...)
			Shuffle(shuffled, len(shuffled), rng)
			got, err := BestHand(shuffled)
			require.NoError(t, err)
			require.Equal(t, want, got, "order %s vs %s", FormatCards(cards), FormatCards(shuffled))
		}
	}
}

func toOracle(t *testing.T, cards []Card) [7]ph.Card {
	t.Helper()
	suits := [...]ph.Suit{ph.Spade, ph.Heart, ph.Diamond, ph.Club}
	var out [7]ph.Card
	for i, c := range cards {
		rank := ph.Rank(c.Rank())
		if c.Rank() == Ace {
			rank = ph.Rank(1)
		}
		card, err := ph.MakeCard(suits[c.Suit()], rank)
		require.NoError(t, err)
		out[i] = card
	}
	return out
}

// TestBestHandAgreesWithReferenceEvaluator checks that our ordering matches
// an independent evaluator on random showdowns.
func TestBestHandAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	rng := newTestRand(2024)
	for trial := 0; trial < 5000; trial++ {
		d, err := NewDeck(rng)
		require.NoError(t, err)
		board := d.Deal(5)
		a := append(d.Deal(2), board...)
		b := append(d.Deal(2), board...)

		scoreA, err := BestHand(a)
		require.NoError(t, err)
		scoreB, err := BestHand(b)
		require.NoError(t, err)

		oa, ob := toOracle(t, a), toOracle(t, b)
		refA, refB := ph.Eval7(&oa), ph.Eval7(&ob)

		want := 0
		switch {
		case refA > refB:
			want = 1
		case refA < refB:
			want = -1
		}
		require.Equal(t, want, scoreA.Compare(scoreB),
			"%s (%s) vs %s (%s)", FormatCards(a), scoreA, FormatCards(b), scoreB)
	}
}

func TestHandScoreString(t *testing.T) {
	t.Parallel()

	score, err := ClassifyHand(MustParseCards("KsKhKd7c7s"))
	require.NoError(t, err)
	assert.Equal(t, "Full House (K, 7)", score.String())
}

func BenchmarkBest7(b *testing.B) {
	cards := [7]Card(MustParseCards("AsKhQd9s7c5h3h"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Best7(cards)
	}
}
