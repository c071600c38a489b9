// Package poker holds the card model and the hand evaluator: a total-order
// five-card classifier and a best-of-seven selector built on top of it.
package poker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rank is a card face value from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankGlyphs = "??23456789TJQKA"

// String returns the single-character rank glyph ("T" for ten).
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankGlyphs[r : r+1]
}

// Suit is one of the four card families.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var (
	suitSymbols = [...]string{"♠", "♥", "♦", "♣"}
	suitCodes   = [...]string{"s", "h", "d", "c"}
)

// String returns the suit symbol.
func (s Suit) String() string {
	if s > Clubs {
		return "?"
	}
	return suitSymbols[s]
}

// Code returns the ASCII suit letter.
func (s Suit) Code() string {
	if s > Clubs {
		return "?"
	}
	return suitCodes[s]
}

// Card is a playing card packed into [0,52): suit*13 + (rank-2).
type Card uint8

// NumCards is the size of a full deck.
const NumCards = 52

// NewCard builds a card from its rank and suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Two || rank > Ace {
		return 0, &InvalidInputError{Op: "new card", Got: int(rank), Want: "rank in 2..14"}
	}
	if suit > Clubs {
		return 0, &InvalidInputError{Op: "new card", Got: int(suit), Want: "suit in 0..3"}
	}
	return Card(uint8(suit)*13 + uint8(rank-Two)), nil
}

// MustCard is NewCard for constants and tests; it panics on invalid input.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank (2..14).
func (c Card) Rank() Rank {
	return Rank(c%13) + Two
}

// Suit returns the card's suit (0..3).
func (c Card) Suit() Suit {
	return Suit(c / 13)
}

// Valid reports whether the card lies in the 52-card range.
func (c Card) Valid() bool {
	return c < NumCards
}

// String renders the card as rank glyph plus suit symbol, e.g. "A♠".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// Code renders the card in ASCII notation, e.g. "As".
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().Code()
}

// ParseCard parses a two-character token such as "As", "td" or "K♣".
// The rank glyph is one of 2-9, T, J, Q, K, A and the suit glyph one of
// s, h, d, c (either case) or the matching suit symbol.
func ParseCard(token string) (Card, error) {
	if utf8.RuneCountInString(token) != 2 {
		return 0, &ParseError{Token: token, Reason: "card must be exactly 2 characters"}
	}

	rankRune, size := utf8.DecodeRuneInString(token)
	suitRune, _ := utf8.DecodeRuneInString(token[size:])

	rank, ok := parseRank(rankRune)
	if !ok {
		return 0, &ParseError{Token: token, Reason: "unknown rank '" + string(rankRune) + "'"}
	}
	suit, ok := parseSuit(suitRune)
	if !ok {
		return 0, &ParseError{Token: token, Reason: "unknown suit '" + string(suitRune) + "'"}
	}

	return Card(uint8(suit)*13 + uint8(rank-Two)), nil
}

func parseRank(r rune) (Rank, bool) {
	switch unicode.ToUpper(r) {
	case 'A':
		return Ace, true
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'J':
		return Jack, true
	case 'T':
		return Ten, true
	}
	if r >= '2' && r <= '9' {
		return Rank(r-'0'), true
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 'c', 'C', '♣':
		return Clubs, true
	}
	return 0, false
}

// ParseCards parses a list of cards written either space separated
// ("As Kd") or concatenated ("AsKd").
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		if len(runes)%2 != 0 {
			return nil, &ParseError{Token: field, Reason: "odd number of characters"}
		}
		for i := 0; i < len(runes); i += 2 {
			card, err := ParseCard(string(runes[i : i+2]))
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards with String, space separated.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// HoleCards are a player's two private cards.
type HoleCards [2]Card

// NewHoleCards pairs two distinct cards.
func NewHoleCards(a, b Card) (HoleCards, error) {
	if !a.Valid() || !b.Valid() {
		return HoleCards{}, &InvalidInputError{Op: "hole cards", Got: 2, Want: "two valid cards"}
	}
	if a == b {
		return HoleCards{}, &DuplicateCardError{Card: a}
	}
	return HoleCards{a, b}, nil
}

// ParseHoleCards parses exactly two distinct cards.
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	if len(cards) != 2 {
		return HoleCards{}, &InvalidInputError{Op: "hole cards", Got: len(cards), Want: "2 cards"}
	}
	return NewHoleCards(cards[0], cards[1])
}

// String renders both cards.
func (h HoleCards) String() string {
	return FormatCards(h[:])
}
