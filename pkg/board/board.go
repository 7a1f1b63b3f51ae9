package board

import "fmt"

// noKingSquare is the king-square-cache sentinel for a color with no king
// on the board (true only of ad hoc test positions; reachable play always
// keeps exactly one king per color).
const noKingSquare Square = -1

// Board is the mutable core entity (C5): piece-kind bitboards, a mailbox,
// per-color hands, side to move, ply, and the move/capture stacks that make
// every push exactly reversible by pop. The zero value is not usable;
// construct with NewBoard.
type Board struct {
	zobrist *ZobristTable

	occ     Occupancy
	kindBB  [NumPieceKinds]Bitboard
	mailbox [NumSquares]PieceKind
	kingSq  [NumColors]Square

	hands [NumColors]Hand
	turn  Color
	ply   int

	moveStack    []Move
	captureStack []PieceKind

	incrementalHash ZobristHash
	transposition   map[ZobristHash]int
}

// NewBoard returns a board holding the standard starting position (Black to
// move, ply 1), bound to the given table.
func NewBoard(z *ZobristTable) *Board {
	b := &Board{zobrist: z}
	b.reset()
	return b
}

// reset installs the standard starting position.
func (b *Board) reset() {
	b.occ = Occupancy{}
	b.kindBB = [NumPieceKinds]Bitboard{}
	b.mailbox = [NumSquares]PieceKind{}
	b.kingSq = [NumColors]Square{noKingSquare, noKingSquare}
	b.hands = [NumColors]Hand{NewHand(), NewHand()}
	b.turn = Black
	b.ply = 1
	b.moveStack = nil
	b.captureStack = nil
	b.incrementalHash = 0
	b.transposition = map[ZobristHash]int{}

	for sq, kind := range startingMailbox {
		if kind == NoPieceKind {
			continue
		}
		color := Black
		if sq/int(NumFiles) <= 2 {
			color = White
		}
		b.placePiece(Square(sq), Piece{Kind: kind, Color: color})
	}
	b.transposition[b.Hash()] = 1
}

// startingMailbox lists the standard starting kind at each square (row-major
// from White's back rank); color is derived separately, since ranks 0..2
// are White's camp and ranks 6..8 are Black's.
var startingMailbox = buildStartingMailbox()

func buildStartingMailbox() [81]PieceKind {
	var m [81]PieceKind
	backRank := []PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for f, k := range backRank {
		m[NewSquare(File(f), 0)] = k
		m[NewSquare(File(f), 8)] = k
	}
	m[NewSquare(1, 1)] = Rook
	m[NewSquare(7, 1)] = Bishop
	m[NewSquare(1, 7)] = Bishop
	m[NewSquare(7, 7)] = Rook
	for f := ZeroFile; f < NumFiles; f++ {
		m[NewSquare(f, 2)] = Pawn
		m[NewSquare(f, 6)] = Pawn
	}
	return m
}

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// Ply returns the 1-based ply counter.
func (b *Board) Ply() int { return b.ply }

// PieceAt returns the piece at sq and whether the square is occupied.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	kind := b.mailbox[sq]
	if kind == NoPieceKind {
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: b.colorAt(sq)}, true
}

// KingSquare returns the square of color c's king, or ok=false if absent.
func (b *Board) KingSquare(c Color) (Square, bool) {
	sq := b.kingSq[c]
	return sq, sq != noKingSquare
}

// Hand returns color c's hand.
func (b *Board) Hand(c Color) Hand { return b.hands[c] }

// Occupancy returns the occupancy aggregate.
func (b *Board) Occupancy() Occupancy { return b.occ }

// Hash returns the full position hash: the incremental board hash folded
// with side to move and Black's hand encoding.
func (b *Board) Hash() ZobristHash {
	return b.zobrist.Full(b)
}

// RepetitionCount returns how many times the current full hash has been
// recorded, including the current occurrence.
func (b *Board) RepetitionCount() int {
	return b.transposition[b.Hash()]
}

func (b *Board) colorAt(sq Square) Color {
	if b.occ.byColor[Black].IsSet(sq) {
		return Black
	}
	return White
}

// placePiece installs p at sq (which must be empty), with no hand
// side-effects: mailbox, kind bitboard, occupancy, king cache, hash.
func (b *Board) placePiece(sq Square, p Piece) {
	b.mailbox[sq] = p.Kind
	b.kindBB[p.Kind] = b.kindBB[p.Kind].WithSquare(sq)
	b.occ.set(sq, p.Color)
	if p.Kind == King {
		b.kingSq[p.Color] = sq
	}
	b.incrementalHash ^= b.zobrist.PieceSquare(p, sq)
}

// takePiece vacates sq (which must be occupied) and returns what was there.
func (b *Board) takePiece(sq Square) Piece {
	kind := b.mailbox[sq]
	color := b.colorAt(sq)
	p := Piece{Kind: kind, Color: color}

	b.mailbox[sq] = NoPieceKind
	b.kindBB[kind] = b.kindBB[kind].WithoutSquare(sq)
	b.occ.clear(sq, color)
	if kind == King {
		b.kingSq[color] = noKingSquare
	}
	b.incrementalHash ^= b.zobrist.PieceSquare(p, sq)
	return p
}

// setPieceAt installs piece p at sq, relative to the current side to move
// (C5): if fromHand, the current side's hand loses one of p.Kind; if the
// destination is occupied, the existing piece is removed first, and if
// intoHand, its demoted kind is deposited into the current side's hand.
func (b *Board) setPieceAt(sq Square, p Piece, fromHand, intoHand bool) error {
	if fromHand {
		if err := b.hands[b.turn].remove(p.Kind); err != nil {
			return err
		}
	}
	if b.mailbox[sq] != NoPieceKind {
		captured := b.takePiece(sq)
		if intoHand {
			b.hands[b.turn].add(captured.Kind)
		}
	}
	b.placePiece(sq, p)
	return nil
}

// removePieceAt vacates sq; if intoHand, the demoted kind is deposited into
// the current side's hand.
func (b *Board) removePieceAt(sq Square, intoHand bool) {
	p := b.takePiece(sq)
	if intoHand {
		b.hands[b.turn].add(p.Kind)
	}
}

// Push applies move m (pseudo-legal or not -- push trusts its input) and
// flips the side to move. Pop is its exact inverse.
func (b *Board) Push(m Move) error {
	b.ply++

	captured := b.mailbox[m.To]
	b.captureStack = append(b.captureStack, captured)
	b.moveStack = append(b.moveStack, m)

	switch m.Kind {
	case NullMove:
		b.turn = b.turn.Opponent()
		return nil

	case DropMove:
		if err := b.setPieceAt(m.To, Piece{Kind: m.Drop, Color: b.turn}, true, true); err != nil {
			return err
		}

	default: // BoardMove
		kind := b.mailbox[m.From]
		if kind == NoPieceKind {
			return fmt.Errorf("%w: no piece at %v", ErrInvalidMove, m.From)
		}
		if m.Promote {
			kind = kind.Promote()
		}
		b.removePieceAt(m.From, false)
		if err := b.setPieceAt(m.To, Piece{Kind: kind, Color: b.turn}, false, true); err != nil {
			return err
		}
	}

	b.turn = b.turn.Opponent()
	b.transposition[b.Hash()]++
	return nil
}

// Pop reverses the last Push. Returns ErrEmptyStack if there was none.
func (b *Board) Pop() error {
	n := len(b.moveStack)
	if n == 0 {
		return ErrEmptyStack
	}
	m := b.moveStack[n-1]
	b.moveStack = b.moveStack[:n-1]

	b.ply--

	captured := b.captureStack[len(b.captureStack)-1]
	b.captureStack = b.captureStack[:len(b.captureStack)-1]
	// capturedColor is the side to move right now, before this pop's final
	// flip: the opponent of the mover whose push is being undone.
	capturedColor := b.turn

	if m.Kind == NullMove {
		// Push's NullMove branch returns before recording the position in
		// transposition, so Pop must not decrement it either.
		b.turn = b.turn.Opponent()
		return nil
	}
	b.transposition[b.Hash()]--

	mover := b.turn.Opponent()

	sourceKind := b.mailbox[m.To]
	if m.Promote {
		sourceKind = sourceKind.Demote()
	}

	if m.Kind == DropMove {
		b.removePieceAt(m.To, false)
		b.hands[mover].add(m.Drop)
	} else {
		b.takePiece(m.To) // clear the mover's piece that the original push placed here
		if captured != NoPieceKind {
			if err := b.hands[mover].remove(captured); err != nil {
				return err
			}
			b.placePiece(m.To, Piece{Kind: captured, Color: capturedColor})
		}
		b.placePiece(m.From, Piece{Kind: sourceKind, Color: mover})
	}

	b.turn = mover
	return nil
}
