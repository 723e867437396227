package domain

import (
	"github.com/lazharichir/holdem/domain/events"
	"github.com/lazharichir/holdem/domain/hands"
)

// finishShowdown evaluates every remaining hand, awards each pot to the
// best hand among its eligible players, and closes the hand.
func (g *Game) finishShowdown(s *GameState) {
	s.Round = RoundShowdown
	s.Action = -1

	inHand := s.playersInHand()

	ids := make([]string, len(inHand))
	for i, seat := range inHand {
		ids[i] = s.Players[seat].ID
	}
	g.emitEvent(events.ShowdownStarted{
		GameID:  g.ID,
		HandID:  s.HandID,
		Players: ids,
	})

	s.HandResults = make(map[string]hands.BestHand, len(inHand))
	for _, seat := range inHand {
		p := &s.Players[seat]
		cardSet := append(p.HoleCards.Clone(), s.CommunityCards...)
		best := hands.EvaluateBest(cardSet)
		s.HandResults[p.ID] = best
		g.emitEvent(events.PlayerShowedHand{
			GameID:    g.ID,
			HandID:    s.HandID,
			PlayerID:  p.ID,
			HoleCards: p.HoleCards.Clone(),
			BestHand:  best.Cards,
			Category:  best.Rank.String(),
		})
	}

	s.Winners = bestAmong(s, inHand)

	// Round settlement folds any loose pot into the tiers, but callers
	// reaching showdown directly may still carry both.
	if len(s.SidePots) > 0 && s.Pot > 0 {
		g.buildSidePots(s)
	}

	if len(s.SidePots) == 0 {
		amount := s.Pot
		s.Pot = 0
		g.distributePot(s, amount, s.Winners, -1, "showdown")
	} else {
		for i, pot := range s.SidePots {
			eligible := make([]int, 0, len(pot.Eligible))
			for _, id := range pot.Eligible {
				eligible = append(eligible, s.playerIndex(id))
			}
			winners := bestAmong(s, eligible)
			if len(winners) == 0 {
				// Every seat this pot named has since folded. The
				// chips must still go somewhere: the overall winners.
				winners = s.Winners
			}
			g.distributePot(s, pot.Amount, winners, i, "showdown")
		}
		s.SidePots = nil
	}

	g.finishHand(s)
}

// bestAmong returns, in seat order, the ids of the seats holding the
// best evaluated hand of the given set.
func bestAmong(s *GameState, seats []int) []string {
	var winners []string
	var best hands.BestHand
	for _, seat := range seats {
		result, ok := s.HandResults[s.Players[seat].ID]
		if !ok {
			continue
		}
		if len(winners) == 0 {
			best = result
			winners = []string{s.Players[seat].ID}
			continue
		}
		switch cmp := hands.Compare(result, best); {
		case cmp > 0:
			best = result
			winners = []string{s.Players[seat].ID}
		case cmp == 0:
			winners = append(winners, s.Players[seat].ID)
		}
	}
	return winners
}

// distributePot splits amount between the winners. Shares are equal;
// when the pot does not divide evenly the remainder chips go one each
// to the earliest winners in seat order.
func (g *Game) distributePot(s *GameState, amount int, winners []string, potIndex int, reason string) {
	if amount == 0 || len(winners) == 0 {
		return
	}
	share := amount / len(winners)
	remainder := amount % len(winners)
	for i, id := range winners {
		won := share
		if i < remainder {
			won++
		}
		seat := s.playerIndex(id)
		s.Players[seat].Chips += won
		g.emitEvent(events.PotAwarded{
			GameID:   g.ID,
			HandID:   s.HandID,
			PlayerID: id,
			Amount:   won,
			PotIndex: potIndex,
			Reason:   reason,
		})
	}
}

// finishUncontested ends the hand when everyone but one player folded.
// The last player takes everything in the middle without showing a
// hand and no evaluation happens.
func (g *Game) finishUncontested(s *GameState, seat int) {
	winner := s.Players[seat].ID
	amount := s.PotTotal()
	s.Pot = 0
	s.SidePots = nil
	s.Winners = []string{winner}

	s.Players[seat].Chips += amount
	g.emitEvent(events.PotAwarded{
		GameID:   g.ID,
		HandID:   s.HandID,
		PlayerID: winner,
		Amount:   amount,
		PotIndex: -1,
		Reason:   "uncontested",
	})

	g.finishHand(s)
}

// finishHand seals the hand: per-round bets are cleared, busted players
// go OUT, and the final chip counts are published.
func (g *Game) finishHand(s *GameState) {
	for i := range s.Players {
		s.Players[i].CurrentBet = 0
		p := &s.Players[i]
		if p.Status != StatusOut && p.Chips == 0 {
			previous := p.Status
			p.Status = StatusOut
			g.emitEvent(events.PlayerStatusChanged{
				GameID:         g.ID,
				HandID:         s.HandID,
				PlayerID:       p.ID,
				PreviousStatus: string(previous),
				NewStatus:      string(StatusOut),
				Reason:         "busted",
			})
		}
	}

	s.Finished = true
	s.Action = -1
	s.Round = RoundShowdown

	final := make(map[string]int, len(s.Players))
	for i := range s.Players {
		final[s.Players[i].ID] = s.Players[i].Chips
	}
	g.emitEvent(events.HandFinished{
		GameID:     g.ID,
		HandID:     s.HandID,
		Winners:    append([]string(nil), s.Winners...),
		FinalChips: final,
	})
}
