package cards

import (
	"errors"
	"math/rand"
)

// ErrDeckEmpty is returned when drawing from an exhausted deck.
var ErrDeckEmpty = errors.New("no cards left in deck")

// Deck is an ordered sequence of the 52 unique cards. Cards are drawn
// from the end, so a drawn card can never reappear within the same hand.
type Deck struct {
	cards Stack
}

// NewDeck52 creates a standard deck of 52 cards in canonical order.
func NewDeck52() *Deck {
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	values := []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	deck := &Deck{cards: make(Stack, 0, 52)}
	for _, suit := range suits {
		for _, value := range values {
			deck.cards = append(deck.cards, Card{Suit: suit, Value: value})
		}
	}

	return deck
}

// NewShuffledDeck52 creates a standard deck shuffled with the given RNG.
// The RNG is injected so tests can fix the deck order with a seed.
func NewShuffledDeck52(rng *rand.Rand) *Deck {
	deck := NewDeck52()
	deck.Shuffle(rng)
	return deck
}

// Shuffle randomizes the deck order using the given RNG.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Pop draws the top card (end of the sequence).
func (d *Deck) Pop() (Card, error) {
	if d.IsEmpty() {
		return Card{}, ErrDeckEmpty
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// PopN draws n cards from the top of the deck.
func (d *Deck) PopN(n int) (Stack, error) {
	if d.Len() < n {
		return nil, ErrDeckEmpty
	}
	drawn := make(Stack, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Pop()
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, card)
	}
	return drawn, nil
}

// Remaining exposes a copy of the undealt cards, top of the deck last.
func (d *Deck) Remaining() Stack {
	return d.cards.Clone()
}
