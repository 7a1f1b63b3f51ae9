package board_test

import (
	"testing"

	"github.com/herohde/shogi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts legal move sequences to the given depth, the same recursive
// shape as cmd/perft.
func perft(b *board.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var moves []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		moves = append(moves, m)
		return true
	})
	var nodes int64
	for _, m := range moves {
		if err := b.Push(m); err != nil {
			panic(err)
		}
		nodes += perft(b, depth-1)
		if err := b.Pop(); err != nil {
			panic(err)
		}
	}
	return nodes
}

func countPseudoLegal(b *board.Board) int {
	n := 0
	b.GeneratePseudoLegal(func(board.Move) bool { n++; return true })
	return n
}

func TestScenarioStartingPositionPerft(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), board.StartingSFEN)
	require.NoError(t, err)

	assert.Equal(t, int64(30), perft(b, 1))
	assert.Equal(t, int64(900), perft(b, 2))
}

func TestScenarioStalemateViaBlockade(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0),
		"+R+N+SGKG+S+N+R/+B+N+SG+LG+S+N+B/P+LPP+LPP+LP/1P2P2P1/9/9/9/9/6k2 b - 200")
	require.NoError(t, err)

	assert.Equal(t, 0, countPseudoLegal(b))
}

func TestScenarioBishopAtCenterOfEmptyBoard(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "9/9/9/9/4B4/9/9/9/9 b - 1")
	require.NoError(t, err)

	assert.Equal(t, 22, b.CountLegal())
}

func TestScenarioDoublePawnDropRule(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "k8/9/9/9/9/9/9/9/P8 b P 1")
	require.NoError(t, err)

	assert.True(t, b.IsDoublePawn(board.Black, board.File(0)))

	var drops []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		if m.IsDrop() && m.Drop == board.Pawn && m.To.File() == board.File(0) {
			drops = append(drops, m)
		}
		return true
	})
	assert.Empty(t, drops, "no pawn drop is legal on the file already holding an unpromoted pawn")
	assert.Equal(t, 65, b.CountLegal())
}

func TestScenarioIllegalPawnDropMateDetection(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "kn7/9/1G7/9/9/9/9/9/9 b P 1")
	require.NoError(t, err)

	drop := board.NewDropMove(board.Pawn, board.NewSquare(0, 1)) // "9b"
	assert.True(t, b.IsPseudoLegal(drop))
	assert.False(t, b.IsLegal(drop), "checks the king with no escape and an unassailable pawn: uchifuzume")

	assert.Equal(t, 76, b.CountLegal())
}

func TestScenarioFourfoldRepetition(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0),
		"ln3g2l/1r2g1sk1/1pp1ppn2/p2ps1ppp/1PP6/2GP4P/P1N1PPPP1/1R2S1SK1/L4G1NL w Bb 44")
	require.NoError(t, err)

	moves := []string{
		"9d9e", "8h6h", "8b6b", "6h8h", "6b8b", "8h6h", "8b6b",
		"6h8h", "6b8b", "8h6h", "8b6b", "6h8h",
	}
	for _, usi := range moves {
		m, err := board.ParseUSIMove(usi)
		require.NoError(t, err, usi)
		require.NoError(t, b.Push(m), usi)
	}
	assert.False(t, b.IsFourfoldRepetition(), "only three prior occurrences before the 13th move")

	m, err := board.ParseUSIMove("6b8b")
	require.NoError(t, err)
	require.NoError(t, b.Push(m))

	assert.True(t, b.IsFourfoldRepetition())
}

func TestGenerateLegalIsSubsetOfPseudoLegal(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), board.StartingSFEN)
	require.NoError(t, err)

	var pseudo []board.Move
	b.GeneratePseudoLegal(func(m board.Move) bool {
		pseudo = append(pseudo, m)
		return true
	})

	var legal []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		legal = append(legal, m)
		return true
	})

	assert.LessOrEqual(t, len(legal), len(pseudo))
	for _, lm := range legal {
		found := false
		for _, pm := range pseudo {
			if lm.Equals(pm) {
				found = true
				break
			}
		}
		assert.True(t, found, "%v is legal but not pseudo-legal", lm)
	}
}

func TestPushPopIsExactInverse(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(1), board.StartingSFEN)
	require.NoError(t, err)

	before := b.SFEN()
	hashBefore := b.Hash()

	var moves []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		moves = append(moves, m)
		return true
	})
	require.NotEmpty(t, moves)

	for _, m := range moves {
		require.NoError(t, b.Push(m))
		require.NoError(t, b.Pop())
		assert.Equal(t, before, b.SFEN(), m)
		assert.Equal(t, hashBefore, b.Hash(), m)
	}
}
