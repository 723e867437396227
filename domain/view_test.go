package domain

import (
	"testing"

	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewHidesOtherHoleCards(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	view, err := game.View("p2")
	require.NoError(t, err)

	require.NotNil(t, view.Me)
	assert.Equal(t, "p2", view.Me.ID)
	assert.Len(t, view.Me.HoleCards, 2)

	for _, sv := range append(view.ActedPlayers, view.ToActPlayers...) {
		assert.Empty(t, sv.HoleCards, "seat %s leaked hole cards", sv.ID)
	}
}

func TestViewSplitsActedAndToAct(t *testing.T) {
	game := newTestGame(t, 4)
	require.NoError(t, game.StartHand())

	// Nobody has acted yet: from the opener's perspective all three
	// opponents still owe a decision.
	view, err := game.View("p4")
	require.NoError(t, err)
	assert.Empty(t, view.ActedPlayers)
	assert.Len(t, view.ToActPlayers, 3)
	assert.Equal(t, "p4", view.ActionOn)

	mustMove(t, game, "p4", ActionCall)
	mustMove(t, game, "p1", ActionFold)

	view, err = game.View("p4")
	require.NoError(t, err)

	// The folded player no longer owes anything; the blinds still do.
	var actedIDs, toActIDs []string
	for _, sv := range view.ActedPlayers {
		actedIDs = append(actedIDs, sv.ID)
	}
	for _, sv := range view.ToActPlayers {
		toActIDs = append(toActIDs, sv.ID)
	}
	assert.ElementsMatch(t, []string{"p1"}, actedIDs)
	assert.ElementsMatch(t, []string{"p2", "p3"}, toActIDs)
	assert.Equal(t, "p2", view.ActionOn)
}

func TestViewAllInCountsAsActed(t *testing.T) {
	game := newTestGame(t, 3)
	game.players[0].Chips = 8

	require.NoError(t, game.StartHand())
	mustMove(t, game, "p1", ActionCall) // becomes an all-in for 8

	view, err := game.View("p3")
	require.NoError(t, err)
	for _, sv := range view.ToActPlayers {
		assert.NotEqual(t, "p1", sv.ID)
	}
}

func TestViewWithoutHand(t *testing.T) {
	game := newTestGame(t, 2)
	_, err := game.View("p1")
	assert.ErrorIs(t, err, ErrInvalidGameState)
}

func TestViewSpectator(t *testing.T) {
	game := newTestGame(t, 2)
	require.NoError(t, game.StartHand())

	// A spectator gets the public state and no Me seat.
	view, err := game.View("watcher")
	require.NoError(t, err)
	assert.Nil(t, view.Me)
	assert.Empty(t, view.ActedPlayers)
	assert.Len(t, view.ToActPlayers, 2)
}

func TestFilterEventsForPlayer(t *testing.T) {
	log := []events.Event{
		events.HandStarted{GameID: "g", HandID: "h", Players: []string{"a", "b"}},
		events.HoleCardsDealt{GameID: "g", HandID: "h", Cards: map[string]cards.Stack{
			"a": cards.MustStackFromStrings("A♠", "K♠"),
			"b": cards.MustStackFromStrings("2♦", "7♣"),
		}},
		events.PlayerReasoning{GameID: "g", HandID: "h", PlayerID: "a", Text: "they always fold here"},
		events.PlayerReasoning{GameID: "g", HandID: "h", PlayerID: "b", Text: "bluffing"},
		events.HandFinished{GameID: "g", HandID: "h", Winners: []string{"a"}},
	}

	filtered := FilterEventsForPlayer(log, "a")
	require.Len(t, filtered, 4)

	dealt, ok := filtered[1].(events.HoleCardsDealt)
	require.True(t, ok)
	assert.Len(t, dealt.Cards, 1)
	assert.Contains(t, dealt.Cards, "a")

	reasoning, ok := filtered[2].(events.PlayerReasoning)
	require.True(t, ok)
	assert.Equal(t, "a", reasoning.PlayerID)

	// A spectator with no cards in the deal loses the event entirely.
	spectator := FilterEventsForPlayer(log, "z")
	require.Len(t, spectator, 2)
	assert.Equal(t, "hand-started", spectator[0].EventName())
	assert.Equal(t, "hand-finished", spectator[1].EventName())
}
