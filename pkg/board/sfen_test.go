package board_test

import (
	"testing"

	"github.com/herohde/shogi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartingSFEN,
		"+R+N+SGKG+S+N+R/+B+N+SG+LG+S+N+B/P+LPP+LPP+LP/1P2P2P1/9/9/9/9/6k2 b - 200",
		"9/9/9/9/4B4/9/9/9/9 b - 1",
		"k8/9/9/9/9/9/9/9/P8 b P 1",
		"kn7/9/1G7/9/9/9/9/9/9 b P 1",
		"ln3g2l/1r2g1sk1/1pp1ppn2/p2ps1ppp/1PP6/2GP4P/P1N1PPPP1/1R2S1SK1/L4G1NL w Bb 44",
	}

	for _, tt := range tests {
		b, err := board.DecodeSFEN(board.NewZobristTable(0), tt)
		require.NoError(t, err, tt)
		assert.Equal(t, tt, b.SFEN(), tt)
	}
}

func TestDecodeSFENRejectsMalformedInput(t *testing.T) {
	zt := board.NewZobristTable(0)

	tests := []string{
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b -", // missing ply field
		"lnsgkgsnl/9/9/9/9/9/9/LNSGKGSNL b - 1",                       // only 8 rows
		"99/9/9/9/9/9/9/9/9 b - 1",                                    // adjacent digits
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL x - 1", // invalid turn
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b X 1", // invalid hand letter
		"++P8/9/9/9/9/9/9/9/9 b - 1",                                  // double promotion marker
		"lnsgkgsn/9/9/9/9/9/9/9/LNSGKGSNL b - 1",                      // row short of 9 files
	}

	for _, tt := range tests {
		_, err := board.DecodeSFEN(zt, tt)
		assert.Error(t, err, tt)
	}
}

func TestSFENZeroPlyDefaultsToOne(t *testing.T) {
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "9/9/9/9/4K4/9/9/9/9 b - 0")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Ply())
}

func TestSFENHandsRenderInCanonicalOrder(t *testing.T) {
	// The input hand field is scrambled; SFEN() always renders in
	// droppableKinds order (Rook, Bishop, Gold, Silver, Knight, Lance, Pawn)
	// regardless of how the pieces were listed on decode.
	b, err := board.DecodeSFEN(board.NewZobristTable(0), "9/9/9/9/9/9/9/9/9 b b2PGR 1")
	require.NoError(t, err)

	assert.Equal(t, "9/9/9/9/9/9/9/9/9 b RG2Pb 1", b.SFEN())
}
