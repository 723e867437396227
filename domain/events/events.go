package events

import (
	"github.com/lazharichir/holdem/cards"
)

// PlayerJoined represents a player taking a seat in a game.
type PlayerJoined struct {
	GameID   string
	PlayerID string
	Name     string
	Position int
	Chips    int
}

func (e PlayerJoined) EventName() string { return "player-joined" }

// HandStarted represents the start of a new hand.
type HandStarted struct {
	GameID     string
	HandID     string
	Players    []string
	Dealer     int
	SmallBlind int
	BigBlind   int
	TotalChips int
}

func (e HandStarted) EventName() string { return "hand-started" }

// BlindPosted represents a blind being paid before any action.
type BlindPosted struct {
	GameID     string
	HandID     string
	PlayerID   string
	Kind       string // "small" or "big"
	Amount     int    // the amount actually posted
	ShortAllIn bool   // the stack could not cover the full blind
}

func (e BlindPosted) EventName() string { return "blind-posted" }

// HoleCardsDealt carries every player's hole cards. The player-view
// projector rewrites it so each viewer only ever sees their own.
type HoleCardsDealt struct {
	GameID string
	HandID string
	Cards  map[string]cards.Stack
}

func (e HoleCardsDealt) EventName() string { return "hole-cards-dealt" }

// PlayerActed represents a validated move applied to the hand, with
// before/after snapshots of the actor's chips, bet and status.
type PlayerActed struct {
	GameID       string
	HandID       string
	PlayerID     string
	Action       string
	Amount       int // chips moved into the pot by this action
	ChipsBefore  int
	ChipsAfter   int
	BetBefore    int
	BetAfter     int
	StatusBefore string
	StatusAfter  string
}

func (e PlayerActed) EventName() string { return "player-acted" }

// PotChanged represents a change of the uncommitted pot amount.
type PotChanged struct {
	GameID         string
	HandID         string
	PreviousAmount int
	NewAmount      int
}

func (e PotChanged) EventName() string { return "pot-changed" }

// RoundAdvanced represents a street transition, carrying any newly
// dealt community cards.
type RoundAdvanced struct {
	GameID        string
	HandID        string
	PreviousRound string
	NewRound      string
	DealtCards    cards.Stack
	FirstToAct    int // seat index, -1 when no more betting happens
}

func (e RoundAdvanced) EventName() string { return "round-advanced" }

// SidePotShare describes one pot tier for event consumers.
type SidePotShare struct {
	Amount   int
	Eligible []string
}

// SidePotsCreated represents the pot being partitioned into tiers after
// an all-in created a new betting level.
type SidePotsCreated struct {
	GameID string
	HandID string
	Pots   []SidePotShare
}

func (e SidePotsCreated) EventName() string { return "side-pots-created" }

// PlayerStatusChanged represents a seat status transition outside of a
// move (busting out, blind all-in, and the like).
type PlayerStatusChanged struct {
	GameID         string
	HandID         string
	PlayerID       string
	PreviousStatus string
	NewStatus      string
	Reason         string
}

func (e PlayerStatusChanged) EventName() string { return "player-status-changed" }

// ShowdownStarted represents the start of showdown.
type ShowdownStarted struct {
	GameID  string
	HandID  string
	Players []string // players still in the hand
}

func (e ShowdownStarted) EventName() string { return "showdown-started" }

// PlayerShowedHand reveals an in-hand player's cards at showdown.
type PlayerShowedHand struct {
	GameID    string
	HandID    string
	PlayerID  string
	HoleCards cards.Stack
	BestHand  cards.Stack
	Category  string
}

func (e PlayerShowedHand) EventName() string { return "player-showed-hand" }

// PotAwarded represents chips moving from a pot to a winner's stack.
type PotAwarded struct {
	GameID   string
	HandID   string
	PlayerID string
	Amount   int
	PotIndex int // -1 for the main pot, 0..n for side pots
	Reason   string
}

func (e PotAwarded) EventName() string { return "pot-awarded" }

// HandFinished represents the end of a hand with final chip counts.
type HandFinished struct {
	GameID     string
	HandID     string
	Winners    []string
	FinalChips map[string]int
}

func (e HandFinished) EventName() string { return "hand-finished" }

// PlayerReasoning carries a player's private analysis of the hand. Only
// the originating player ever sees it in a filtered view.
type PlayerReasoning struct {
	GameID   string
	HandID   string
	PlayerID string
	Text     string
}

func (e PlayerReasoning) EventName() string { return "player-reasoning" }
