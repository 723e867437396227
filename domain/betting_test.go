package domain

import (
	"testing"

	"github.com/lazharichir/holdem/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMoveValidation(t *testing.T) {
	game := newTestGame(t, 3)

	// No hand yet.
	_, err := game.ApplyMove(Move{PlayerID: "p1", Action: ActionCheck})
	assert.ErrorIs(t, err, ErrInvalidGameState)

	require.NoError(t, game.StartHand())

	// Action is on p1 (UTG), nobody else may act.
	_, err = game.ApplyMove(Move{PlayerID: "p2", Action: ActionFold})
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
	_, err = game.ApplyMove(Move{PlayerID: "stranger", Action: ActionFold})
	assert.ErrorIs(t, err, ErrNotPlayerTurn)

	// Checking while owing the big blind is illegal.
	_, err = game.ApplyMove(Move{PlayerID: "p1", Action: ActionCheck})
	assert.ErrorIs(t, err, ErrCannotCheck)

	// A raise needs a target amount.
	_, err = game.ApplyMove(Move{PlayerID: "p1", Action: ActionRaise})
	assert.ErrorIs(t, err, ErrMissingAmount)

	// A rejected move leaves the state untouched.
	assert.Equal(t, 0, game.State.Action)
	assert.Equal(t, 15, game.State.Pot)

	// After the hand finishes nobody can act.
	mustMove(t, game, "p1", ActionFold)
	mustMove(t, game, "p2", ActionFold)
	require.True(t, game.State.Finished)
	_, err = game.ApplyMove(Move{PlayerID: "p3", Action: ActionCheck})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestCallNoBetOutstanding(t *testing.T) {
	game := newTestGame(t, 2)
	require.NoError(t, game.StartHand())

	// p1 completes the small blind, p2 holds the option.
	mustMove(t, game, "p1", ActionCall)
	_, err := game.ApplyMove(Move{PlayerID: "p2", Action: ActionCall})
	assert.ErrorIs(t, err, ErrNoBetToCall)
}

func TestHeadsUpLimpToFlop(t *testing.T) {
	game := newTestGame(t, 2)
	require.NoError(t, game.StartHand())

	s := game.State

	// Dealer completes, big blind checks the option.
	mustMove(t, game, "p1", ActionCall)
	assert.Equal(t, RoundPreflop, s.Round)
	assert.Equal(t, 1, s.Action)
	mustMove(t, game, "p2", ActionCheck)

	// The flop is dealt and per-round bets are reset.
	assert.Equal(t, RoundFlop, s.Round)
	assert.Equal(t, 20, s.Pot)
	assert.Equal(t, 0, s.CurrentBet)
	assert.Len(t, s.CommunityCards, 3)
	for i := range s.Players {
		assert.Equal(t, 0, s.Players[i].CurrentBet)
		assert.Equal(t, 10, s.Players[i].TotalBet)
	}

	// Heads-up the big blind acts first after the flop.
	assert.Equal(t, 1, s.Action)
}

func TestBigBlindKeepsOptionAfterLimps(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	s := game.State
	mustMove(t, game, "p1", ActionCall)
	mustMove(t, game, "p2", ActionCall)

	// The big blind already matches the bet but has not acted yet.
	assert.Equal(t, RoundPreflop, s.Round)
	assert.Equal(t, 2, s.Action)

	mustMove(t, game, "p3", ActionCheck)
	assert.Equal(t, RoundFlop, s.Round)
}

func TestShortCallBecomesAllIn(t *testing.T) {
	game := newTestGame(t, 3)
	game.players[0].Chips = 8 // UTG cannot cover the big blind

	require.NoError(t, game.StartHand())

	s := game.State
	mustMove(t, game, "p1", ActionCall)

	assert.Equal(t, StatusAllIn, s.Players[0].Status)
	assert.Equal(t, 0, s.Players[0].Chips)
	assert.Equal(t, 8, s.Players[0].CurrentBet)
	// The table bet stays at the full big blind.
	assert.Equal(t, 10, s.CurrentBet)
	assert.Equal(t, 23, s.Pot)
}

func TestMinRaiseEnforcement(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	s := game.State

	// UTG raises the big blind by exactly the minimum increment.
	mustMove(t, game, "p1", ActionRaise, 20)
	assert.Equal(t, 20, s.CurrentBet)
	assert.Equal(t, 10, s.LastRaiseAmount)

	// Re-raising to 25 is only a 5-chip raise, below the 10 minimum.
	_, err := game.ApplyMove(Move{PlayerID: "p2", Action: ActionRaise, Amount: 25})
	assert.ErrorIs(t, err, ErrRaiseTooSmall)

	// 30 is the smallest legal re-raise target.
	mustMove(t, game, "p2", ActionRaise, 30)
	assert.Equal(t, 30, s.CurrentBet)
	assert.Equal(t, 10, s.LastRaiseAmount)

	// A bigger raise lifts the increment for the next player.
	mustMove(t, game, "p3", ActionRaise, 55)
	assert.Equal(t, 25, s.LastRaiseAmount)
	_, err = game.ApplyMove(Move{PlayerID: "p1", Action: ActionRaise, Amount: 70})
	assert.ErrorIs(t, err, ErrRaiseTooSmall)
	mustMove(t, game, "p1", ActionRaise, 80)
}

func TestMaxRaiseCap(t *testing.T) {
	game := newTestGameWithRules(t, 3, Rules{
		SmallBlind:    5,
		BigBlind:      10,
		StartingChips: 1000,
		MaxRaise:      40,
	})
	require.NoError(t, game.StartHand())

	_, err := game.ApplyMove(Move{PlayerID: "p1", Action: ActionRaise, Amount: 60})
	assert.ErrorIs(t, err, ErrRaiseTooLarge)
	mustMove(t, game, "p1", ActionRaise, 50)
}

func TestUnderfundedRaiseBecomesAllIn(t *testing.T) {
	game := newTestGame(t, 3)
	game.players[0].Chips = 35

	require.NoError(t, game.StartHand())

	s := game.State

	// UTG asks for 50 but only has 35: the move becomes an all-in.
	mustMove(t, game, "p1", ActionRaise, 50)
	assert.Equal(t, StatusAllIn, s.Players[0].Status)
	assert.Equal(t, 0, s.Players[0].Chips)
	assert.Equal(t, 35, s.CurrentBet)
	assert.Equal(t, ActionAllIn, s.Players[0].LastAction)
	// 25 over the big blind is a full raise, so the bar moves.
	assert.Equal(t, 25, s.LastRaiseAmount)
}

func TestIncompleteAllInRaiseDoesNotReopenMinRaise(t *testing.T) {
	game := newTestGame(t, 3)
	game.players[1].Chips = 26 // small blind seat

	require.NoError(t, game.StartHand())

	s := game.State

	mustMove(t, game, "p1", ActionRaise, 20)

	// The small blind shoves for 26 total: a 6-chip raise, below the
	// 10 minimum. The table bet moves but the raise bar does not.
	mustMove(t, game, "p2", ActionAllIn)
	assert.Equal(t, 26, s.CurrentBet)
	assert.Equal(t, 10, s.LastRaiseAmount)

	// The next raise must still be a full 10 over the 26.
	_, err := game.ApplyMove(Move{PlayerID: "p3", Action: ActionRaise, Amount: 35})
	assert.ErrorIs(t, err, ErrRaiseTooSmall)
	mustMove(t, game, "p3", ActionRaise, 36)
}

func TestFullRaiseReopensAction(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	s := game.State

	mustMove(t, game, "p1", ActionCall)
	mustMove(t, game, "p2", ActionCall)
	// The big blind raises instead of checking: everyone gets to act again.
	mustMove(t, game, "p3", ActionRaise, 30)

	assert.Equal(t, RoundPreflop, s.Round)
	assert.Equal(t, 0, s.Action)
	mustMove(t, game, "p1", ActionCall)
	assert.Equal(t, 1, s.Action)
	mustMove(t, game, "p2", ActionCall)

	assert.Equal(t, RoundFlop, s.Round)
	assert.Equal(t, 90, s.Pot)
}

func TestFoldToOneEndsHandImmediately(t *testing.T) {
	game := newTestGame(t, 3)
	require.NoError(t, game.StartHand())

	s := game.State
	mustMove(t, game, "p1", ActionFold)
	mustMove(t, game, "p2", ActionFold)

	// The big blind wins the blinds without showing a hand.
	require.True(t, s.Finished)
	assert.Equal(t, []string{"p3"}, s.Winners)
	assert.Empty(t, s.HandResults)
	assert.Equal(t, 1005, s.Players[2].Chips)
	assert.Equal(t, 0, s.PotTotal())
}

func TestPlayerActedEventSnapshots(t *testing.T) {
	game := newTestGame(t, 2)
	require.NoError(t, game.StartHand())

	emitted, err := game.ApplyMove(Move{PlayerID: "p1", Action: ActionCall})
	require.NoError(t, err)
	require.NotEmpty(t, emitted)

	var acted *events.PlayerActed
	for _, e := range emitted {
		if pa, ok := e.(events.PlayerActed); ok {
			acted = &pa
			break
		}
	}
	require.NotNil(t, acted)
	assert.Equal(t, "p1", acted.PlayerID)
	assert.Equal(t, string(ActionCall), acted.Action)
	assert.Equal(t, 5, acted.Amount)
	assert.Equal(t, 995, acted.ChipsBefore)
	assert.Equal(t, 990, acted.ChipsAfter)
	assert.Equal(t, 5, acted.BetBefore)
	assert.Equal(t, 10, acted.BetAfter)
}

func TestMoveReasoningStaysPrivate(t *testing.T) {
	game := newTestGame(t, 2)
	require.NoError(t, game.StartHand())

	emitted, err := game.ApplyMove(Move{
		PlayerID:  "p1",
		Action:    ActionCall,
		Reasoning: "pot odds are fine",
	})
	require.NoError(t, err)

	var reasoning *events.PlayerReasoning
	for _, e := range emitted {
		if pr, ok := e.(events.PlayerReasoning); ok {
			reasoning = &pr
		}
	}
	require.NotNil(t, reasoning)
	assert.Equal(t, "p1", reasoning.PlayerID)
	assert.Equal(t, "pot odds are fine", reasoning.Text)

	// The opponent's filtered log never contains it.
	for _, e := range FilterEventsForPlayer(game.Events, "p2") {
		assert.NotEqual(t, "player-reasoning", e.EventName())
	}
}
