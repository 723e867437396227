package domain

import (
	"sort"

	"github.com/lazharichir/holdem/domain/events"
)

// buildSidePots recomputes the pot tiers from every seat's total
// contribution. Tier boundaries are the distinct contribution levels of
// the players still in the hand; each tier collects the clamped share
// of every contributor, folded players included, so no chip is ever
// lost. Previous tiers are discarded and rebuilt from scratch.
func (g *Game) buildSidePots(s *GameState) {
	levels := make([]int, 0, len(s.Players))
	seen := make(map[int]bool)
	for _, seat := range s.playersInHand() {
		total := s.Players[seat].TotalBet
		if total > 0 && !seen[total] {
			seen[total] = true
			levels = append(levels, total)
		}
	}
	if len(levels) == 0 {
		return
	}
	sort.Ints(levels)

	pots := make([]SidePot, 0, len(levels))
	previous := 0
	for _, level := range levels {
		pot := SidePot{}
		for i := range s.Players {
			contrib := s.Players[i].TotalBet
			if contrib > level {
				contrib = level
			}
			if contrib > previous {
				pot.Amount += contrib - previous
			}
			if s.Players[i].InHand() && s.Players[i].TotalBet >= level {
				pot.Eligible = append(pot.Eligible, s.Players[i].ID)
			}
		}
		pots = append(pots, pot)
		previous = level
	}

	// Contributions above the top in-hand level (a folded player who
	// bet more than anyone left) go into the last pot.
	for i := range s.Players {
		if s.Players[i].TotalBet > previous {
			pots[len(pots)-1].Amount += s.Players[i].TotalBet - previous
		}
	}

	potBefore := s.Pot
	s.SidePots = pots
	s.Pot = 0
	if potBefore != 0 {
		g.emitEvent(events.PotChanged{
			GameID:         g.ID,
			HandID:         s.HandID,
			PreviousAmount: potBefore,
			NewAmount:      0,
		})
	}

	shares := make([]events.SidePotShare, len(pots))
	for i, p := range pots {
		shares[i] = events.SidePotShare{Amount: p.Amount, Eligible: append([]string(nil), p.Eligible...)}
	}
	g.emitEvent(events.SidePotsCreated{
		GameID: g.ID,
		HandID: s.HandID,
		Pots:   shares,
	})

	s.allInSincePots = false
}
