package board

// Result represents the outcome of a game, if decided.
type Result uint8

const (
	Undecided Result = iota
	BlackWins
	WhiteWins
	Draw
)

// IsCheck reports whether the side to move's king is currently attacked.
func (b *Board) IsCheck() bool {
	kingSq, ok := b.KingSquare(b.turn)
	if !ok {
		return false
	}
	return b.IsAttackedBy(b.turn.Opponent(), kingSq)
}

// hasLegalMove reports whether the side to move has at least one legal
// move, short-circuiting as soon as one is found.
func (b *Board) hasLegalMove() bool {
	found := false
	b.GenerateLegal(func(Move) bool {
		found = true
		return false
	})
	return found
}

// IsCheckmate reports check with no legal response.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && !b.hasLegalMove()
}

// IsStalemate reports no check but also no legal move (reachable only via
// an artificial position; the standard rules never stalemate a mover with
// a droppable hand, but the core does not assume a standard game).
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && !b.hasLegalMove()
}

// IsFourfoldRepetition reports whether the current full position (side to
// move and hands inclusive) has occurred four or more times.
func (b *Board) IsFourfoldRepetition() bool {
	return b.RepetitionCount() >= 4
}

// IsGameOver reports checkmate, stalemate, or fourfold repetition.
func (b *Board) IsGameOver() bool {
	return b.IsCheckmate() || b.IsStalemate() || b.IsFourfoldRepetition()
}

// Winner returns the decided result, or Undecided if the game continues.
func (b *Board) Winner() Result {
	switch {
	case b.IsCheckmate():
		if b.turn == Black {
			return WhiteWins
		}
		return BlackWins
	case b.IsStalemate(), b.IsFourfoldRepetition():
		return Draw
	default:
		return Undecided
	}
}
