package domain

import (
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/domain/events"
)

// SeatView is one player as seen from another player's perspective.
// Hole cards are only populated on the viewer's own seat.
type SeatView struct {
	ID         string
	Name       string
	Chips      int
	Status     PlayerStatus
	CurrentBet int
	TotalBet   int
	Position   int
	LastAction Action
	HoleCards  cards.Stack
}

// GameView is the hand as one player is allowed to see it. Opponents
// are split by whether they still owe a decision this round.
type GameView struct {
	GameID         string
	HandID         string
	Round          Round
	CommunityCards cards.Stack
	Pot            int
	SidePots       []SidePot
	CurrentBet     int
	Dealer         int
	SmallBlind     int
	BigBlind       int
	ActionOn       string // player id of the current actor, empty when none

	Me           *SeatView
	ActedPlayers []SeatView
	ToActPlayers []SeatView
	Finished     bool
	Winners      []string
}

// View projects the current hand for the given player. Every other
// seat's hole cards are stripped.
func (g *Game) View(playerID string) (GameView, error) {
	s := g.State
	if s == nil {
		return GameView{}, ErrInvalidGameState
	}

	view := GameView{
		GameID:         g.ID,
		HandID:         s.HandID,
		Round:          s.Round,
		CommunityCards: s.CommunityCards.Clone(),
		Pot:            s.Pot,
		CurrentBet:     s.CurrentBet,
		Dealer:         s.Dealer,
		SmallBlind:     s.SmallBlind,
		BigBlind:       s.BigBlind,
		Finished:       s.Finished,
		Winners:        append([]string(nil), s.Winners...),
	}
	for _, sp := range s.SidePots {
		view.SidePots = append(view.SidePots, SidePot{
			Amount:   sp.Amount,
			Eligible: append([]string(nil), sp.Eligible...),
		})
	}
	if s.Action >= 0 && s.Action < len(s.Players) {
		view.ActionOn = s.Players[s.Action].ID
	}

	for i := range s.Players {
		p := &s.Players[i]
		sv := SeatView{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			Status:     p.Status,
			CurrentBet: p.CurrentBet,
			TotalBet:   p.TotalBet,
			Position:   p.Position,
			LastAction: p.LastAction,
		}
		if p.ID == playerID {
			sv.HoleCards = p.HoleCards.Clone()
			me := sv
			view.Me = &me
			continue
		}
		if seatStillToAct(s, i) {
			view.ToActPlayers = append(view.ToActPlayers, sv)
		} else {
			view.ActedPlayers = append(view.ActedPlayers, sv)
		}
	}

	return view, nil
}

// seatStillToAct reports whether the seat owes a decision this round.
// Folded, all-in and busted seats never do.
func seatStillToAct(s *GameState, seat int) bool {
	if s.Finished || s.Round == RoundShowdown {
		return false
	}
	p := &s.Players[seat]
	if p.Status != StatusActive || p.Chips == 0 {
		return false
	}
	return !s.Acted[seat] || p.CurrentBet < s.CurrentBet
}

// FilterEventsForPlayer rewrites an event log for one viewer. Hole-card
// deals are narrowed down to the viewer's own cards (or dropped when the
// viewer got none) and other players' private reasoning is removed.
// Everything else passes through unchanged.
func FilterEventsForPlayer(log []events.Event, playerID string) []events.Event {
	filtered := make([]events.Event, 0, len(log))
	for _, event := range log {
		switch e := event.(type) {
		case events.HoleCardsDealt:
			own, ok := e.Cards[playerID]
			if !ok {
				continue
			}
			filtered = append(filtered, events.HoleCardsDealt{
				GameID: e.GameID,
				HandID: e.HandID,
				Cards:  map[string]cards.Stack{playerID: own.Clone()},
			})
		case events.PlayerReasoning:
			if e.PlayerID != playerID {
				continue
			}
			filtered = append(filtered, e)
		default:
			filtered = append(filtered, event)
		}
	}
	return filtered
}
