package game

import "errors"

var (
	ErrInvalidConfig           = errors.New("invalid config")
	ErrInvalidPlacement        = errors.New("invalid placement")
	ErrInvalidAnimalAssignment = errors.New("invalid animal assignment")
	ErrInvalidDeck             = errors.New("invalid deck")
	ErrSupplyExhausted         = errors.New("wildlife supply exhausted")
	ErrDeckExhausted           = errors.New("habitat deck exhausted")
	ErrInvalidMove             = errors.New("invalid move")
)
