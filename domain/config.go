package domain

import "fmt"

// Rules defines the fixed configuration of a game. All fields are
// validated eagerly at game creation; a bad combination never reaches
// a running hand.
type Rules struct {
	SmallBlind    int
	BigBlind      int
	StartingChips int

	// MinRaise is the minimum raise increment. Zero means "use the big
	// blind", the classic rule.
	MinRaise int

	// MaxRaise caps the raise increment when positive. Zero means no cap.
	MaxRaise int

	// MaxSeats bounds the number of players (2..9). Zero means 9.
	MaxSeats int

	// DefaultDealer is the seat holding the button for the first hand.
	DefaultDealer int
}

// Validate checks the rule combination and reports the first problem.
func (r Rules) Validate() error {
	if r.SmallBlind <= 0 {
		return fmt.Errorf("%w: small blind must be positive, got %d", ErrInvalidConfig, r.SmallBlind)
	}
	if r.BigBlind <= r.SmallBlind {
		return fmt.Errorf("%w: big blind %d must exceed small blind %d", ErrInvalidConfig, r.BigBlind, r.SmallBlind)
	}
	if r.StartingChips <= 0 {
		return fmt.Errorf("%w: starting chips must be positive, got %d", ErrInvalidConfig, r.StartingChips)
	}
	if r.MinRaise != 0 && r.MinRaise < r.BigBlind {
		return fmt.Errorf("%w: min raise %d must be at least the big blind %d", ErrInvalidConfig, r.MinRaise, r.BigBlind)
	}
	if r.MaxRaise != 0 && r.MaxRaise < r.MinRaiseAmount() {
		return fmt.Errorf("%w: max raise %d must be at least the min raise %d", ErrInvalidConfig, r.MaxRaise, r.MinRaiseAmount())
	}
	if r.MaxSeats != 0 && (r.MaxSeats < 2 || r.MaxSeats > 9) {
		return fmt.Errorf("%w: seat count %d out of range 2..9", ErrInvalidConfig, r.MaxSeats)
	}
	if r.DefaultDealer < 0 || r.DefaultDealer >= r.SeatLimit() {
		return fmt.Errorf("%w: default dealer seat %d out of range", ErrInvalidConfig, r.DefaultDealer)
	}
	return nil
}

// MinRaiseAmount returns the configured minimum raise increment,
// defaulting to the big blind.
func (r Rules) MinRaiseAmount() int {
	if r.MinRaise > 0 {
		return r.MinRaise
	}
	return r.BigBlind
}

// SeatLimit returns the maximum number of seats, defaulting to 9.
func (r Rules) SeatLimit() int {
	if r.MaxSeats > 0 {
		return r.MaxSeats
	}
	return 9
}
