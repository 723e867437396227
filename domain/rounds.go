package domain

import (
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/domain/events"
)

// seatBefore returns the seat immediately before the given one, wrapping
// around the table.
func seatBefore(s *GameState, seat int) int {
	n := len(s.Players)
	return (seat - 1 + n) % n
}

// nextToAct finds the first seat after the given one that still owes a
// decision this round: active, with chips, and either not yet acted or
// sitting below the table bet. Returns -1 when the round is settled.
func nextToAct(s *GameState, after int) int {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := (after + i) % n
		p := &s.Players[seat]
		if p.Status != StatusActive || p.Chips == 0 {
			continue
		}
		if !s.Acted[seat] || p.CurrentBet < s.CurrentBet {
			return seat
		}
	}
	return -1
}

// advanceAfterMove passes the action to the next seat, or settles the
// round when nobody owes a decision anymore.
func (g *Game) advanceAfterMove(s *GameState, seat int) {
	next := nextToAct(s, seat)
	if next == -1 {
		g.settleRound(s)
		return
	}
	s.Action = next
}

// settleRound closes the current betting round: it carves side pots if
// anyone went all-in, then either deals the next street, runs out the
// remaining board when no further betting is possible, or moves to
// showdown after the river.
func (g *Game) settleRound(s *GameState) {
	// Tiers are rebuilt on a new all-in, and again whenever betting
	// after the split left chips in the loose pot: those belong in the
	// tier pots too, or they would be stranded at showdown.
	if s.allInSincePots || (len(s.SidePots) > 0 && s.Pot > 0) {
		g.buildSidePots(s)
	}

	// With at most one player still able to bet there are no more
	// decisions in this hand: deal the remaining board and show down.
	if len(s.activeSeats()) <= 1 && s.anyAllIn() {
		for s.Round != RoundRiver {
			g.dealStreet(s, -1)
		}
		g.finishShowdown(s)
		return
	}

	if s.Round == RoundRiver {
		g.finishShowdown(s)
		return
	}

	first := firstToActPostflop(s.Players, s.Dealer, s.SmallBlind, s.BigBlind)
	g.dealStreet(s, firstActorFrom(s, first))
}

// firstActorFrom resolves the opening actor of a fresh street: the
// preferred seat itself if it can still bet, otherwise the next seat
// around the table that can.
func firstActorFrom(s *GameState, preferred int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		seat := (preferred + i) % n
		p := &s.Players[seat]
		if p.Status == StatusActive && p.Chips > 0 {
			return seat
		}
	}
	return -1
}

// dealStreet advances to the next round, deals its community cards, and
// resets the per-round betting state. firstSeat -1 means the street is
// dealt with no betting to follow (an all-in runout).
func (g *Game) dealStreet(s *GameState, firstSeat int) {
	previous := s.Round
	s.Round = s.Round.next()

	dealt := make(cards.Stack, 0, 3)
	for i := 0; i < s.Round.communityCardsToDeal(); i++ {
		card, err := s.Deck.Pop()
		if err != nil {
			panic(err)
		}
		s.CommunityCards = append(s.CommunityCards, card)
		dealt = append(dealt, card)
	}

	for i := range s.Players {
		s.Players[i].CurrentBet = 0
	}
	s.CurrentBet = 0
	s.LastRaiseAmount = 0
	s.LastRaisePosition = -1
	s.Acted = make(map[int]bool)
	s.Action = firstSeat

	g.emitEvent(events.RoundAdvanced{
		GameID:        g.ID,
		HandID:        s.HandID,
		PreviousRound: string(previous),
		NewRound:      string(s.Round),
		DealtCards:    dealt,
		FirstToAct:    firstSeat,
	})
}
