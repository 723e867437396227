package domain

import "github.com/lazharichir/holdem/cards"

// PlayerStatus is a seat's standing within the current hand.
type PlayerStatus string

const (
	StatusActive PlayerStatus = "ACTIVE"
	StatusFolded PlayerStatus = "FOLDED"
	StatusAllIn  PlayerStatus = "ALL_IN"
	StatusOut    PlayerStatus = "OUT"
)

// Action is one of the moves a player can make.
type Action string

const (
	ActionFold  Action = "FOLD"
	ActionCheck Action = "CHECK"
	ActionCall  Action = "CALL"
	ActionRaise Action = "RAISE"
	ActionAllIn Action = "ALL_IN"
)

// Move is a single player decision fed into the engine. Amount is the
// target total bet for a raise and is ignored for every other action.
// Reasoning is optional private commentary; it is logged as an event
// visible only to its author.
type Move struct {
	PlayerID  string
	Action    Action
	Amount    int
	Reasoning string
}

// Player represents one seat, long-lived across hands within a game.
// Chips only ever move between the stack and the bet fields, or back
// from a pot at payout: chips + total bet is constant for a player
// across their actions within one hand.
type Player struct {
	ID         string
	Name       string
	Chips      int
	Status     PlayerStatus
	CurrentBet int // committed this betting round, resets every round
	TotalBet   int // committed this hand, monotonically non-decreasing
	Position   int // ordinal seat index
	HoleCards  cards.Stack
	LastAction Action
}

// InHand reports whether the seat still contests the pot.
func (p *Player) InHand() bool {
	return p.Status == StatusActive || p.Status == StatusAllIn
}

// ResetForNewHand clears per-hand fields. Eliminated seats stay OUT,
// everyone else starts the hand ACTIVE.
func (p *Player) ResetForNewHand() {
	p.HoleCards = nil
	p.CurrentBet = 0
	p.TotalBet = 0
	p.LastAction = ""
	if p.Status != StatusOut {
		p.Status = StatusActive
	}
}
