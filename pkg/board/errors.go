package board

import "errors"

// Sentinel errors for the typed failure kinds the core distinguishes. Wrap
// with fmt.Errorf("%w: ...", Err...) and test with errors.Is.
var (
	// ErrInvalidSfen covers field count, row width, illegal character,
	// double-digit, double-'+', promotion of Gold/King, bad turn token and
	// negative ply.
	ErrInvalidSfen = errors.New("invalid sfen")

	// ErrInvalidUsi covers length, missing '*' for drops, unknown piece
	// letter and unknown square.
	ErrInvalidUsi = errors.New("invalid usi")

	// ErrInvalidMove is returned by Push for a board move whose from-square
	// is empty. The move constructors do not validate their arguments and
	// never return it.
	ErrInvalidMove = errors.New("invalid move")

	// ErrHandUnderflow is returned when removing a kind not present in hand.
	ErrHandUnderflow = errors.New("hand underflow")

	// ErrEmptyStack is returned by Pop with no prior Push.
	ErrEmptyStack = errors.New("empty move stack")
)
