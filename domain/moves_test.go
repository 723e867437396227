package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveFor(moves []LegalMove, action Action) (LegalMove, bool) {
	for _, m := range moves {
		if m.Action == action {
			return m, true
		}
	}
	return LegalMove{}, false
}

func TestLegalMovesOnlyForCurrentActor(t *testing.T) {
	game := newTestGame(t, 3)

	assert.Nil(t, game.LegalMoves("p1"))

	require.NoError(t, game.StartHand())
	assert.NotNil(t, game.LegalMoves("p1"))
	assert.Nil(t, game.LegalMoves("p2"))
	assert.Nil(t, game.LegalMoves("nobody"))
}

func TestLegalMovesFacingBigBlind(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	moves := game.LegalMoves("p1")

	_, canFold := moveFor(moves, ActionFold)
	assert.True(t, canFold)

	_, canCheck := moveFor(moves, ActionCheck)
	assert.False(t, canCheck)

	call, ok := moveFor(moves, ActionCall)
	require.True(t, ok)
	assert.Equal(t, 10, call.MinAmount)

	raise, ok := moveFor(moves, ActionRaise)
	require.True(t, ok)
	assert.Equal(t, 20, raise.MinAmount)
	assert.Equal(t, 1000, raise.MaxAmount)

	allIn, ok := moveFor(moves, ActionAllIn)
	require.True(t, ok)
	assert.Equal(t, 1000, allIn.MinAmount)
}

func TestLegalMovesWithOptionToCheck(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	mustMove(t, game, "p1", ActionCall)
	mustMove(t, game, "p2", ActionCall)

	moves := game.LegalMoves("p3")
	_, canCheck := moveFor(moves, ActionCheck)
	assert.True(t, canCheck)
	_, canCall := moveFor(moves, ActionCall)
	assert.False(t, canCall)
}

func TestLegalMovesRaiseBoundsWithCap(t *testing.T) {
	game := newTestGameWithRules(t, 3, Rules{
		SmallBlind:    5,
		BigBlind:      10,
		StartingChips: 1000,
		MaxRaise:      30,
	})
	require.NoError(t, game.StartHand())

	raise, ok := moveFor(game.LegalMoves("p1"), ActionRaise)
	require.True(t, ok)
	assert.Equal(t, 20, raise.MinAmount)
	assert.Equal(t, 40, raise.MaxAmount)
}

func TestLegalMovesNoRaiseWhenTooShort(t *testing.T) {
	game := newTestGame(t, 3)
	game.players[0].Chips = 15

	require.NoError(t, game.StartHand())

	moves := game.LegalMoves("p1")
	// 15 chips cannot reach the 20-chip minimum raise target.
	_, canRaise := moveFor(moves, ActionRaise)
	assert.False(t, canRaise)
	// Going all-in for less is always available.
	allIn, ok := moveFor(moves, ActionAllIn)
	require.True(t, ok)
	assert.Equal(t, 15, allIn.MinAmount)
}

func TestFallbackMove(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	// Facing the big blind the fallback is a fold.
	assert.Equal(t, ActionFold, game.FallbackMove("p1").Action)

	mustMove(t, game, "p1", ActionCall)
	mustMove(t, game, "p2", ActionCall)

	// With the option open the fallback is a check.
	assert.Equal(t, ActionCheck, game.FallbackMove("p3").Action)
}
