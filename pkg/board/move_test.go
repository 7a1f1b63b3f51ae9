package board_test

import (
	"testing"

	"github.com/herohde/shogi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveUSIRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    board.Move
		usi  string
	}{
		{"null", board.NewNullMove(), "0000"},
		{"board move", board.NewBoardMove(board.NewSquare(2, 6), board.NewSquare(2, 5), false), "7g7f"},
		{"promoting board move", board.NewBoardMove(board.NewSquare(2, 2), board.NewSquare(2, 1), true), "7c7b+"},
		{"drop", board.NewDropMove(board.Pawn, board.NewSquare(4, 4)), "P*5e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usi, tt.m.USI())
			assert.Equal(t, tt.usi, tt.m.String())

			parsed, err := board.ParseUSIMove(tt.usi)
			require.NoError(t, err)
			assert.True(t, tt.m.Equals(parsed))
		})
	}
}

func TestParseUSIMoveRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"7g",
		"7g7",
		"7g7f+x",
		"p*5e", // drops are always the uppercase Black letter, regardless of side to move
		"K*5e", // King is not droppable
		"xx7f", // invalid from-square file
		"7g7x", // invalid to-square rank
	}

	for _, str := range tests {
		_, err := board.ParseUSIMove(str)
		assert.Error(t, err, str)
	}
}

func TestMoveEquals(t *testing.T) {
	a := board.NewBoardMove(board.NewSquare(0, 0), board.NewSquare(0, 1), false)
	b := board.NewBoardMove(board.NewSquare(0, 0), board.NewSquare(0, 1), false)
	c := board.NewBoardMove(board.NewSquare(0, 0), board.NewSquare(0, 1), true)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c), "promotion flag distinguishes otherwise-identical moves")
	assert.False(t, a.Equals(board.NewNullMove()))
}

func TestMoveIsNullAndIsDrop(t *testing.T) {
	assert.True(t, board.NewNullMove().IsNull())
	assert.True(t, board.NewDropMove(board.Gold, board.NewSquare(0, 0)).IsDrop())
	assert.False(t, board.NewBoardMove(board.NewSquare(0, 0), board.NewSquare(0, 1), false).IsDrop())
}

func TestMoveHashDistinguishesDropFromBoardMove(t *testing.T) {
	to := board.NewSquare(4, 4)

	drop := board.NewDropMove(board.Pawn, to)
	boardMove := board.NewBoardMove(board.NewSquare(4, 3), to, false)
	assert.NotEqual(t, drop.Hash(), boardMove.Hash(), "a drop and a board move sharing a To square must hash distinctly")

	// Equal moves hash equal; promotion flips the hash even with the same squares.
	same := board.NewDropMove(board.Pawn, to)
	assert.Equal(t, drop.Hash(), same.Hash())

	promoting := board.NewBoardMove(board.NewSquare(4, 3), to, true)
	assert.NotEqual(t, boardMove.Hash(), promoting.Hash())

	// Two different drop kinds onto the same square also hash distinctly.
	goldDrop := board.NewDropMove(board.Gold, to)
	assert.NotEqual(t, drop.Hash(), goldDrop.Hash())
}
