package poker

import (
	rand "math/rand/v2"
)

// Deck is a shuffled dealing deck. It is owned by the caller for the length
// of a hand and never shared between goroutines.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled 52-card deck minus any excluded cards.
func NewDeck(rng *rand.Rand, exclude ...Card) (*Deck, error) {
	known, err := NewCardSet(exclude...)
	if err != nil {
		return nil, err
	}
	d := &Deck{
		cards: Remaining(known),
		rng:   rng,
	}
	d.Shuffle()
	return d, nil
}

// Shuffle shuffles the undealt cards using Fisher-Yates
func (d *Deck) Shuffle() {
	Shuffle(d.cards[d.next:], len(d.cards)-d.next, d.rng)
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Shuffle randomises the first n positions of cards so that they form a
// uniform sample drawn from the whole slice (a partial Fisher-Yates). With
// n == len(cards) it is a full shuffle.
func Shuffle(cards []Card, n int, rng *rand.Rand) {
	if n > len(cards) {
		n = len(cards)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
