package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/domain/events"
	"github.com/lazharichir/holdem/domain/hands"
)

// Game owns the seats, the rules and the current hand. The engine is
// synchronous and performs no locking: callers must serialize access
// per game. Different games are fully independent.
type Game struct {
	ID      string
	Rules   Rules
	State   *GameState
	Events  []events.Event
	players []Player

	eventHandlers []events.EventHandler
	rng           *rand.Rand
}

// NewGame creates a game with validated rules. Pass a seeded RNG for a
// deterministic deck; nil falls back to a time-seeded one.
func NewGame(id string, rules Rules, rng *rand.Rand) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		ID:    id,
		Rules: rules,
		rng:   rng,
	}, nil
}

// RegisterEventHandler registers a callback invoked on every emitted event.
func (g *Game) RegisterEventHandler(handler events.EventHandler) {
	g.eventHandlers = append(g.eventHandlers, handler)
}

// emitEvent appends the event to the game log and notifies all handlers.
func (g *Game) emitEvent(event events.Event) {
	g.Events = append(g.Events, event)
	for _, handler := range g.eventHandlers {
		handler(event)
	}
}

// Join seats a new player with the configured starting stack. Players
// can only join between hands.
func (g *Game) Join(playerID, name string) error {
	if g.State != nil && !g.State.Finished {
		return fmt.Errorf("%w: cannot join while a hand is in progress", ErrInvalidGameState)
	}
	for i := range g.players {
		if g.players[i].ID == playerID {
			return fmt.Errorf("%w: player %s already seated", ErrInvalidGameState, playerID)
		}
	}
	if len(g.players) >= g.Rules.SeatLimit() {
		return fmt.Errorf("%w: table is full (%d seats)", ErrInvalidGameState, g.Rules.SeatLimit())
	}

	player := Player{
		ID:       playerID,
		Name:     name,
		Chips:    g.Rules.StartingChips,
		Status:   StatusActive,
		Position: len(g.players),
	}
	g.players = append(g.players, player)

	g.emitEvent(events.PlayerJoined{
		GameID:   g.ID,
		PlayerID: playerID,
		Name:     name,
		Position: player.Position,
		Chips:    player.Chips,
	})

	return nil
}

// Players returns the current seats (final hand values once a hand has run).
func (g *Game) Players() []Player {
	return g.players
}

// StartHand deals a new hand: rotates the dealer past eliminated seats,
// resets per-hand fields, shuffles, deals hole cards and posts blinds.
// Chip stacks and OUT statuses carry over from the previous hand.
func (g *Game) StartHand() error {
	if g.State != nil && !g.State.Finished {
		return fmt.Errorf("%w: there is already an active hand %s", ErrInvalidGameState, g.State.HandID)
	}
	if len(g.players) < 2 {
		return fmt.Errorf("%w: need at least 2 players to start a hand, have %d", ErrInvalidGameState, len(g.players))
	}

	players := make([]Player, len(g.players))
	copy(players, g.players)
	for i := range players {
		players[i].ResetForNewHand()
	}

	dealer, err := g.nextDealer(players)
	if err != nil {
		return err
	}
	sb, bb := blindSeats(players, dealer)

	state := &GameState{
		HandID:            uuid.NewString(),
		Round:             RoundPreflop,
		Deck:              cards.NewShuffledDeck52(g.rng),
		Players:           players,
		Dealer:            dealer,
		SmallBlind:        sb,
		BigBlind:          bb,
		Action:            -1,
		LastRaisePosition: -1,
		Acted:             make(map[int]bool),
		HandResults:       make(map[string]hands.BestHand),
	}

	// The event lists only seats dealt into this hand. Eliminated seats
	// stay at the table but hold no chips, so the conservation total is
	// the same either way.
	playerIDs := make([]string, 0, len(players))
	totalChips := 0
	for i := range players {
		totalChips += players[i].Chips
		if players[i].Status != StatusOut {
			playerIDs = append(playerIDs, players[i].ID)
		}
	}
	state.totalChips = totalChips

	g.State = state
	g.players = state.Players

	g.emitEvent(events.HandStarted{
		GameID:     g.ID,
		HandID:     state.HandID,
		Players:    playerIDs,
		Dealer:     dealer,
		SmallBlind: sb,
		BigBlind:   bb,
		TotalChips: totalChips,
	})

	if err := g.dealHoleCards(state); err != nil {
		return err
	}

	g.postBlind(state, sb, g.Rules.SmallBlind, "small")
	g.postBlind(state, bb, g.Rules.BigBlind, "big")

	// Callers must match the full big blind even when the blind player
	// could only post a short all-in.
	state.CurrentBet = g.Rules.BigBlind

	start := firstToActPreflop(state.Players, bb)
	state.Action = nextToAct(state, seatBefore(state, start))
	if state.Action == -1 {
		// Both blinds are all-in: no betting is possible at all.
		g.settleRound(state)
	}

	return nil
}

// nextDealer rotates the button, honoring the configured seat for the
// first hand of the game.
func (g *Game) nextDealer(players []Player) (int, error) {
	if g.State == nil {
		if countNotOut(players) < 2 {
			return -1, fmt.Errorf("%w: need at least 2 players to start a hand", ErrInvalidGameState)
		}
		seat := g.Rules.DefaultDealer
		if seat < len(players) && players[seat].Status != StatusOut {
			return seat, nil
		}
		return nextSeatNotOut(players, seat), nil
	}
	return rotateDealer(players, g.State.Dealer)
}

// dealHoleCards gives two cards to every non-OUT seat, one at a time
// around the table starting left of the dealer.
func (g *Game) dealHoleCards(s *GameState) error {
	dealt := make(map[string]cards.Stack)

	for round := 0; round < 2; round++ {
		for i := 1; i <= len(s.Players); i++ {
			seat := (s.Dealer + i) % len(s.Players)
			player := &s.Players[seat]
			if player.Status == StatusOut {
				continue
			}
			card, err := s.Deck.Pop()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidGameState, err)
			}
			player.HoleCards = append(player.HoleCards, card)
			dealt[player.ID] = append(dealt[player.ID], card)
		}
	}

	g.emitEvent(events.HoleCardsDealt{
		GameID: g.ID,
		HandID: s.HandID,
		Cards:  dealt,
	})

	return nil
}

// postBlind moves the blind into the pot. A short stack posts what it
// can and goes all-in, flagged on the event; the table's current bet is
// still set to the full big blind by the caller.
func (g *Game) postBlind(s *GameState, seat, amount int, kind string) {
	player := &s.Players[seat]

	posted := amount
	short := false
	if player.Chips <= amount {
		posted = player.Chips
		short = posted < amount
	}

	player.Chips -= posted
	player.CurrentBet += posted
	player.TotalBet += posted
	if player.Chips == 0 {
		prev := player.Status
		player.Status = StatusAllIn
		s.allInSincePots = true
		g.emitEvent(events.PlayerStatusChanged{
			GameID:         g.ID,
			HandID:         s.HandID,
			PlayerID:       player.ID,
			PreviousStatus: string(prev),
			NewStatus:      string(StatusAllIn),
			Reason:         "blind all-in",
		})
	}

	g.increasePot(s, posted)

	g.emitEvent(events.BlindPosted{
		GameID:     g.ID,
		HandID:     s.HandID,
		PlayerID:   player.ID,
		Kind:       kind,
		Amount:     posted,
		ShortAllIn: short,
	})
}

// increasePot adds chips to the loose pot and emits the change.
func (g *Game) increasePot(s *GameState, amount int) {
	if amount == 0 {
		return
	}
	previous := s.Pot
	s.Pot += amount
	g.emitEvent(events.PotChanged{
		GameID:         g.ID,
		HandID:         s.HandID,
		PreviousAmount: previous,
		NewAmount:      s.Pot,
	})
}

// HandResult summarizes a finished hand.
type HandResult struct {
	HandID     string
	Winners    []string
	FinalChips map[string]int
}

// HandResult extracts the winners and final chip counts of the last
// finished hand.
func (g *Game) HandResult() (HandResult, error) {
	if g.State == nil || !g.State.Finished {
		return HandResult{}, fmt.Errorf("%w: no finished hand", ErrInvalidGameState)
	}

	final := make(map[string]int, len(g.State.Players))
	for i := range g.State.Players {
		final[g.State.Players[i].ID] = g.State.Players[i].Chips
	}

	return HandResult{
		HandID:     g.State.HandID,
		Winners:    append([]string(nil), g.State.Winners...),
		FinalChips: final,
	}, nil
}
