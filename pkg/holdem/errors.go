package holdem

import "errors"

// errors returned by table primitives. The game layer treats every one of
// them as a silent rejection: no mutation happened, nothing is notified.
var (
	ErrSeatOutOfRange      = errors.New("seat index is out of range")
	ErrSeatOccupied        = errors.New("seat is already occupied")
	ErrPlayerAlreadySeated = errors.New("player already holds a seat")
	ErrPlayerNotSeated     = errors.New("player is not seated")
	ErrInsufficientFunds   = errors.New("bankroll cannot cover the bet")
	ErrInvalidBet          = errors.New("bet cannot be below the amount already committed")
	ErrRaiseTooLow         = errors.New("raise must exceed the current bet level")
	ErrCheckNotAllowed     = errors.New("cannot check while facing a bet")
	ErrNotEnoughPlayers    = errors.New("there must be at least two players")
)
