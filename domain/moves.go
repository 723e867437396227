package domain

// LegalMove describes one action currently available to a player. For
// RAISE the bounds are the valid target totals; other actions carry the
// fixed amount the action would commit.
type LegalMove struct {
	Action    Action
	MinAmount int
	MaxAmount int
}

// LegalMoves lists the actions the given player may take right now.
// Returns nil when it is not their turn or no hand is in progress.
func (g *Game) LegalMoves(playerID string) []LegalMove {
	s := g.State
	if s == nil || s.Finished || s.Round == RoundShowdown {
		return nil
	}
	seat := s.playerIndex(playerID)
	if seat == -1 || seat != s.Action {
		return nil
	}
	p := &s.Players[seat]
	if p.Status != StatusActive || p.Chips == 0 {
		return nil
	}

	moves := []LegalMove{{Action: ActionFold}}

	owed := s.CurrentBet - p.CurrentBet
	if owed == 0 {
		moves = append(moves, LegalMove{Action: ActionCheck})
	} else {
		call := owed
		if call > p.Chips {
			call = p.Chips
		}
		moves = append(moves, LegalMove{Action: ActionCall, MinAmount: call, MaxAmount: call})
	}

	minIncrement := s.LastRaiseAmount
	if g.Rules.MinRaiseAmount() > minIncrement {
		minIncrement = g.Rules.MinRaiseAmount()
	}
	minTarget := s.CurrentBet + minIncrement
	maxTarget := p.CurrentBet + p.Chips
	if g.Rules.MaxRaise > 0 && s.CurrentBet+g.Rules.MaxRaise < maxTarget {
		maxTarget = s.CurrentBet + g.Rules.MaxRaise
	}
	if maxTarget >= minTarget {
		moves = append(moves, LegalMove{Action: ActionRaise, MinAmount: minTarget, MaxAmount: maxTarget})
	}

	moves = append(moves, LegalMove{Action: ActionAllIn, MinAmount: p.Chips, MaxAmount: p.Chips})

	return moves
}

// FallbackMove is the move applied on behalf of a player who fails to
// act in time: check when free, fold otherwise.
func (g *Game) FallbackMove(playerID string) Move {
	for _, m := range g.LegalMoves(playerID) {
		if m.Action == ActionCheck {
			return Move{PlayerID: playerID, Action: ActionCheck}
		}
	}
	return Move{PlayerID: playerID, Action: ActionFold}
}
