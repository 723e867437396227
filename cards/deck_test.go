package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeckHasUniqueCards(t *testing.T) {
	deck := NewDeck52()
	require.Equal(t, 52, deck.Len())

	seen := map[Card]bool{}
	for _, card := range deck.Remaining() {
		require.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewShuffledDeck52(rand.New(rand.NewSource(7)))
	b := NewShuffledDeck52(rand.New(rand.NewSource(7)))
	require.Equal(t, a.Remaining(), b.Remaining(), "same seed must produce the same order")

	c := NewShuffledDeck52(rand.New(rand.NewSource(11)))
	require.NotEqual(t, a.Remaining(), c.Remaining(), "different seeds should produce different orders")
}

func TestPopDrawsFromEnd(t *testing.T) {
	deck := NewDeck52()
	last := deck.Remaining()[51]

	card, err := deck.Pop()
	require.NoError(t, err)
	require.Equal(t, last, card)
	require.Equal(t, 51, deck.Len())
	require.False(t, deck.Remaining().Contains(card), "dealt card must not remain in the deck")
}

func TestPopN(t *testing.T) {
	deck := NewShuffledDeck52(rand.New(rand.NewSource(1)))

	drawn, err := deck.PopN(5)
	require.NoError(t, err)
	require.Len(t, drawn, 5)
	require.Equal(t, 47, deck.Len())

	for _, card := range drawn {
		require.False(t, deck.Remaining().Contains(card))
	}
}

func TestPopEmptyDeck(t *testing.T) {
	deck := NewDeck52()
	_, err := deck.PopN(52)
	require.NoError(t, err)

	_, err = deck.Pop()
	require.ErrorIs(t, err, ErrDeckEmpty)

	_, err = deck.PopN(1)
	require.ErrorIs(t, err, ErrDeckEmpty)
}
