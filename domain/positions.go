package domain

import "fmt"

// Seat roles for a hand: dealer rotation, blind seats and first-to-act,
// with the heads-up special case (the dealer is the small blind and
// acts first preflop; the big blind acts first on later streets).

// countNotOut returns how many seats are still in the game.
func countNotOut(players []Player) int {
	count := 0
	for i := range players {
		if players[i].Status != StatusOut {
			count++
		}
	}
	return count
}

// nextSeatNotOut returns the first non-OUT seat strictly after from,
// wrapping around. Returns -1 when no such seat exists.
func nextSeatNotOut(players []Player, from int) int {
	n := len(players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if players[seat].Status != StatusOut {
			return seat
		}
	}
	return -1
}

// rotateDealer moves the button to the next non-OUT seat after the
// previous dealer.
func rotateDealer(players []Player, prevDealer int) (int, error) {
	if countNotOut(players) < 2 {
		return -1, fmt.Errorf("%w: need at least 2 players to start a hand, have %d", ErrInvalidGameState, countNotOut(players))
	}
	return nextSeatNotOut(players, prevDealer), nil
}

// blindSeats returns the small and big blind seats for the dealer.
// Heads-up, the dealer posts the small blind.
func blindSeats(players []Player, dealer int) (sb, bb int) {
	if countNotOut(players) == 2 {
		return dealer, nextSeatNotOut(players, dealer)
	}
	sb = nextSeatNotOut(players, dealer)
	bb = nextSeatNotOut(players, sb)
	return sb, bb
}

// firstToActPreflop returns the seat opening the preflop betting: the
// seat after the big blind (classic UTG), which heads-up is the dealer.
func firstToActPreflop(players []Player, bb int) int {
	return nextSeatNotOut(players, bb)
}

// firstToActPostflop returns the seat opening post-flop betting: the
// first seat at or after the small blind; heads-up the big blind (the
// non-dealer) acts first.
func firstToActPostflop(players []Player, dealer, sb, bb int) int {
	if countNotOut(players) == 2 {
		return bb
	}
	if players[sb].Status != StatusOut {
		return sb
	}
	return nextSeatNotOut(players, sb)
}
