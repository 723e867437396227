package domain

import "errors"

// Rule-violation errors returned by move validation. They are caller
// errors, never fatal: the state is left untouched and the wrapped
// message carries the offending amounts so the caller can explain the
// rejection. Match with errors.Is.
var (
	ErrNotPlayerTurn         = errors.New("not this player's turn to act")
	ErrPlayerNotActive       = errors.New("player is not active in this hand")
	ErrNoChips               = errors.New("player has no chips left")
	ErrGameOver              = errors.New("hand is already finished")
	ErrInvalidActionForRound = errors.New("no betting actions allowed in this round")
	ErrCannotCheck           = errors.New("cannot check while a bet is outstanding")
	ErrNoBetToCall           = errors.New("no bet to call")
	ErrMissingAmount         = errors.New("raise requires a target amount")
	ErrRaiseTooSmall         = errors.New("raise is below the minimum")
	ErrRaiseTooLarge         = errors.New("raise exceeds the maximum")
	ErrInvalidGameState      = errors.New("invalid game state")
)

// ErrInvalidConfig wraps configuration mistakes caught at game creation,
// before any hand starts.
var ErrInvalidConfig = errors.New("invalid game configuration")
