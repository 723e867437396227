package domain

import (
	"fmt"

	"github.com/lazharichir/holdem/domain/events"
)

// ApplyMove validates one move against the current hand and applies it,
// returning the domain events it produced. Validation happens entirely
// before any mutation: a rejected move leaves the state untouched.
func (g *Game) ApplyMove(move Move) ([]events.Event, error) {
	s := g.State
	if s == nil {
		return nil, fmt.Errorf("%w: no hand in progress", ErrInvalidGameState)
	}
	if s.Finished {
		return nil, ErrGameOver
	}
	if s.Round == RoundShowdown {
		return nil, ErrInvalidActionForRound
	}

	seat := s.playerIndex(move.PlayerID)
	if seat == -1 {
		return nil, fmt.Errorf("%w: unknown player %s", ErrNotPlayerTurn, move.PlayerID)
	}
	if seat != s.Action {
		return nil, fmt.Errorf("%w: action is on seat %d, not %s", ErrNotPlayerTurn, s.Action, move.PlayerID)
	}

	player := &s.Players[seat]
	if player.Status != StatusActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrPlayerNotActive, player.ID, player.Status)
	}
	if player.Chips == 0 {
		return nil, fmt.Errorf("%w: %s cannot act", ErrNoChips, player.ID)
	}

	logStart := len(g.Events)

	before := *player
	potBefore := s.Pot

	action := move.Action
	switch action {
	case ActionFold:
		player.Status = StatusFolded

	case ActionCheck:
		if player.CurrentBet != s.CurrentBet {
			return nil, fmt.Errorf("%w: table bet is %d, player has %d in", ErrCannotCheck, s.CurrentBet, player.CurrentBet)
		}

	case ActionCall:
		if s.CurrentBet <= player.CurrentBet {
			return nil, fmt.Errorf("%w: table bet is %d, player already has %d in", ErrNoBetToCall, s.CurrentBet, player.CurrentBet)
		}
		owed := s.CurrentBet - player.CurrentBet
		paid := owed
		if paid > player.Chips {
			paid = player.Chips
		}
		g.commitChips(s, seat, paid)
		if player.Chips == 0 {
			player.Status = StatusAllIn
			s.allInSincePots = true
		}

	case ActionRaise:
		if move.Amount <= 0 {
			return nil, ErrMissingAmount
		}
		minIncrement := s.LastRaiseAmount
		if g.Rules.MinRaiseAmount() > minIncrement {
			minIncrement = g.Rules.MinRaiseAmount()
		}
		minTarget := s.CurrentBet + minIncrement
		if move.Amount < minTarget {
			return nil, fmt.Errorf("%w: raise to %d, minimum is %d", ErrRaiseTooSmall, move.Amount, minTarget)
		}
		if g.Rules.MaxRaise > 0 {
			maxTarget := s.CurrentBet + g.Rules.MaxRaise
			if move.Amount > maxTarget {
				return nil, fmt.Errorf("%w: raise to %d, maximum is %d", ErrRaiseTooLarge, move.Amount, maxTarget)
			}
		}
		cost := move.Amount - player.CurrentBet
		if cost >= player.Chips {
			// The stack cannot fund the full raise: the move silently
			// becomes an all-in instead of being rejected.
			action = ActionAllIn
			g.applyAllIn(s, seat)
			break
		}
		g.commitChips(s, seat, cost)
		raiseSize := player.CurrentBet - s.CurrentBet
		s.CurrentBet = player.CurrentBet
		s.LastRaiseAmount = raiseSize
		s.LastRaisePosition = seat

	case ActionAllIn:
		g.applyAllIn(s, seat)

	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidGameState, move.Action)
	}

	player.LastAction = action
	s.Acted[seat] = true

	if move.Reasoning != "" {
		g.emitEvent(events.PlayerReasoning{
			GameID:   g.ID,
			HandID:   s.HandID,
			PlayerID: player.ID,
			Text:     move.Reasoning,
		})
	}

	g.emitEvent(events.PlayerActed{
		GameID:       g.ID,
		HandID:       s.HandID,
		PlayerID:     player.ID,
		Action:       string(action),
		Amount:       s.Pot - potBefore,
		ChipsBefore:  before.Chips,
		ChipsAfter:   player.Chips,
		BetBefore:    before.CurrentBet,
		BetAfter:     player.CurrentBet,
		StatusBefore: string(before.Status),
		StatusAfter:  string(player.Status),
	})

	// A fold leaving a single contender ends the hand immediately,
	// before any further street is dealt.
	if action == ActionFold {
		if inHand := s.playersInHand(); len(inHand) == 1 {
			g.finishUncontested(s, inHand[0])
			return g.Events[logStart:], nil
		}
	}

	g.advanceAfterMove(s, seat)

	return g.Events[logStart:], nil
}

// commitChips moves chips from the seat's stack into its bet fields and
// the pot.
func (g *Game) commitChips(s *GameState, seat, amount int) {
	player := &s.Players[seat]
	player.Chips -= amount
	player.CurrentBet += amount
	player.TotalBet += amount
	g.increasePot(s, amount)
}

// applyAllIn bets the seat's entire remaining stack. When that exceeds
// the table bet it counts as a raise; a raise smaller than the minimum
// increment (an incomplete raise) moves the table bet but does not
// reset the minimum-raise bar for players behind.
func (g *Game) applyAllIn(s *GameState, seat int) {
	player := &s.Players[seat]

	g.commitChips(s, seat, player.Chips)
	player.Status = StatusAllIn
	s.allInSincePots = true

	if player.CurrentBet > s.CurrentBet {
		raiseSize := player.CurrentBet - s.CurrentBet
		s.CurrentBet = player.CurrentBet

		minIncrement := s.LastRaiseAmount
		if g.Rules.MinRaiseAmount() > minIncrement {
			minIncrement = g.Rules.MinRaiseAmount()
		}
		if raiseSize >= minIncrement {
			s.LastRaiseAmount = raiseSize
			s.LastRaisePosition = seat
		}
	}
}
