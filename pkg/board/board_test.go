package board_test

import (
	"testing"

	"github.com/herohde/shogi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsStandardStartingPosition(t *testing.T) {
	b := board.NewBoard(board.NewZobristTable(0))

	assert.Equal(t, board.StartingSFEN, b.SFEN())
	assert.Equal(t, board.Black, b.Turn())
	assert.Equal(t, 1, b.Ply())
	assert.Equal(t, 1, b.RepetitionCount())

	blackKing, ok := b.KingSquare(board.Black)
	assert.True(t, ok)
	p, ok := b.PieceAt(blackKing)
	require.True(t, ok)
	assert.Equal(t, board.King, p.Kind)
	assert.Equal(t, board.Black, p.Color)
}

func TestHashAgreesWithFreshDecode(t *testing.T) {
	zt := board.NewZobristTable(7)
	b, err := board.DecodeSFEN(zt, board.StartingSFEN)
	require.NoError(t, err)

	var moves []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		moves = append(moves, m)
		return true
	})
	require.NotEmpty(t, moves)
	require.NoError(t, b.Push(moves[0]))

	fresh, err := board.DecodeSFEN(zt, b.SFEN())
	require.NoError(t, err)

	// The incrementally-maintained hash must agree with one computed from
	// scratch against the same position, since repetition detection depends
	// on the two being interchangeable.
	assert.Equal(t, fresh.Hash(), b.Hash())
}

func TestDropRoundTripsThroughHand(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "4k4/9/9/9/9/9/9/9/4K4 b P 1")
	require.NoError(t, err)

	drop := board.NewDropMove(board.Pawn, board.NewSquare(4, 4))
	require.NoError(t, b.Push(drop))

	assert.True(t, b.Hand(board.Black).IsEmpty())
	p, ok := b.PieceAt(board.NewSquare(4, 4))
	require.True(t, ok)
	assert.Equal(t, board.Pawn, p.Kind)

	require.NoError(t, b.Pop())
	assert.True(t, b.Hand(board.Black).Contains(board.Pawn))
	_, ok = b.PieceAt(board.NewSquare(4, 4))
	assert.False(t, ok)
}

func TestPopOnEmptyStackReturnsError(t *testing.T) {
	b := board.NewBoard(board.NewZobristTable(0))
	assert.ErrorIs(t, b.Pop(), board.ErrEmptyStack)
}

func TestNullMovePreservesPositionExceptTurn(t *testing.T) {
	b := board.NewBoard(board.NewZobristTable(0))
	before := b.SFEN()

	require.NoError(t, b.Push(board.NewNullMove()))
	assert.Equal(t, board.White, b.Turn())

	require.NoError(t, b.Pop())
	assert.Equal(t, before, b.SFEN())
	assert.Equal(t, board.Black, b.Turn())
}
