package domain

import (
	"github.com/lazharichir/holdem/cards"
	"github.com/lazharichir/holdem/domain/hands"
)

// Round is the betting round of a hand. Transitions are strictly
// forward: PREFLOP → FLOP → TURN → RIVER → SHOWDOWN.
type Round string

const (
	RoundPreflop  Round = "PREFLOP"
	RoundFlop     Round = "FLOP"
	RoundTurn     Round = "TURN"
	RoundRiver    Round = "RIVER"
	RoundShowdown Round = "SHOWDOWN"
)

func (r Round) next() Round {
	switch r {
	case RoundPreflop:
		return RoundFlop
	case RoundFlop:
		return RoundTurn
	case RoundTurn:
		return RoundRiver
	default:
		return RoundShowdown
	}
}

// communityCardsToDeal returns how many cards the transition into this
// round puts on the board.
func (r Round) communityCardsToDeal() int {
	switch r {
	case RoundFlop:
		return 3
	case RoundTurn, RoundRiver:
		return 1
	default:
		return 0
	}
}

// SidePot is one pot tier with the players eligible to win it.
type SidePot struct {
	Amount   int
	Eligible []string
}

// GameState is the authoritative state of one hand. It is created at
// hand start, mutated exclusively by the betting engine, and becomes
// immutable once Finished is set.
type GameState struct {
	HandID         string
	Round          Round
	Deck           *cards.Deck
	CommunityCards cards.Stack
	Players        []Player

	Pot        int // uncommitted chips not yet split into side pots
	SidePots   []SidePot
	CurrentBet int // the amount each active player must match

	Dealer     int
	SmallBlind int
	BigBlind   int
	Action     int // seat of the current actor, -1 when nobody acts

	LastRaiseAmount   int
	LastRaisePosition int
	Acted             map[int]bool // seats that have acted this round

	Finished    bool
	Winners     []string
	HandResults map[string]hands.BestHand

	// totalChips is the conservation basis fixed at hand start:
	// sum(chips) + pot + side pots must equal it after every mutation.
	totalChips int

	// allInSincePots is set when an all-in happened after the last
	// side-pot computation, so settlement knows to rebuild the tiers.
	allInSincePots bool
}

// playerIndex returns the seat of the given player, or -1.
func (s *GameState) playerIndex(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// playersInHand returns the seats still contesting the pot, in order.
func (s *GameState) playersInHand() []int {
	var seats []int
	for i := range s.Players {
		if s.Players[i].InHand() {
			seats = append(seats, i)
		}
	}
	return seats
}

// activeSeats returns the seats that can still bet, in order.
func (s *GameState) activeSeats() []int {
	var seats []int
	for i := range s.Players {
		if s.Players[i].Status == StatusActive {
			seats = append(seats, i)
		}
	}
	return seats
}

func (s *GameState) anyAllIn() bool {
	for i := range s.Players {
		if s.Players[i].Status == StatusAllIn {
			return true
		}
	}
	return false
}

// PotTotal is the sum of the loose pot and every side pot.
func (s *GameState) PotTotal() int {
	total := s.Pot
	for _, sp := range s.SidePots {
		total += sp.Amount
	}
	return total
}

// ChipTotal is the full chip supply of the hand: stacks plus pots.
func (s *GameState) ChipTotal() int {
	total := s.PotTotal()
	for i := range s.Players {
		total += s.Players[i].Chips
	}
	return total
}

// TotalChips returns the conservation basis fixed at hand start.
func (s *GameState) TotalChips() int {
	return s.totalChips
}
