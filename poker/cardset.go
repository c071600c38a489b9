package poker

import "math/bits"

// CardSet is a set of cards backed by a bitset; bit i is Card(i).
type CardSet uint64

// NewCardSet builds a set from cards, failing on the first duplicate or
// out-of-range card.
func NewCardSet(cards ...Card) (CardSet, error) {
	var cs CardSet
	if err := cs.AddAll(cards...); err != nil {
		return 0, err
	}
	return cs, nil
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card
}

// AddAll adds cards, rejecting any card already present.
func (cs *CardSet) AddAll(cards ...Card) error {
	for _, card := range cards {
		if !card.Valid() {
			return &InvalidInputError{Op: "card", Got: int(card), Want: "value in 0..51"}
		}
		if cs.Contains(card) {
			return &DuplicateCardError{Card: card}
		}
		cs.Add(card)
	}
	return nil
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Remaining returns every card not in known, in ascending card order.
func Remaining(known CardSet) []Card {
	cards := make([]Card, 0, NumCards-known.Len())
	for c := Card(0); c < NumCards; c++ {
		if !known.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}
