package board

// This file builds the process-wide, immutable attack tables (C2) once at
// package init time. attacks_from is the single dispatch point; it is a
// pure function of its inputs and touches no mutable state.

// --- C1: rotated-index permutations, derived arithmetically rather than
// transcribed as literal tables (an 81-entry hand-written permutation is
// exactly the kind of table a one-off transcription bug hides in).

var (
	rotL90Index           [NumSquares]int // square -> index in the "files as rows" rotated board
	diagL45ID, diagR45ID  [NumSquares]int // square -> diagonal id (0..16)
	diagL45Pos, diagR45Pos [NumSquares]int // square -> position within its diagonal
	diagL45Start, diagR45Start [17]int    // diagonal id -> start offset in the packed rotated board
	diagL45Len, diagR45Len     [17]int    // diagonal id -> length

	// byL45Cache/byR45Cache hold, per diagonal id, the ordered list of
	// squares on that diagonal (the same order the start/pos tables use) --
	// reused below to build the sliding attack tables.
	byL45Cache, byR45Cache [17][]Square
)

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		f, r := sq.File().V(), sq.Rank().V()
		rotL90Index[sq] = f*NumFiles.V() + r
		diagL45ID[sq] = r - f + (NumFiles.V() - 1) // 0..16, constant rank-file
		diagR45ID[sq] = r + f                      // 0..16, constant rank+file
	}

	// Group squares by diagonal id, ordered by increasing square index, to derive
	// each square's position within its diagonal and each diagonal's length.
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		byL45Cache[diagL45ID[sq]] = append(byL45Cache[diagL45ID[sq]], sq)
		byR45Cache[diagR45ID[sq]] = append(byR45Cache[diagR45ID[sq]], sq)
	}
	var startL45, startR45 int
	for id := 0; id < 17; id++ {
		diagL45Start[id] = startL45
		diagL45Len[id] = len(byL45Cache[id])
		startL45 += len(byL45Cache[id])

		diagR45Start[id] = startR45
		diagR45Len[id] = len(byR45Cache[id])
		startR45 += len(byR45Cache[id])

		for pos, sq := range byL45Cache[id] {
			diagL45Pos[sq] = pos
		}
		for pos, sq := range byR45Cache[id] {
			diagR45Pos[sq] = pos
		}
	}
}

// --- C4 support: project a square into each rotated coordinate space.

func rotL90(sq Square) Square { return Square(rotL90Index[sq]) }
func rotL45(sq Square) Square { return Square(diagL45Start[diagL45ID[sq]] + diagL45Pos[sq]) }
func rotR45(sq Square) Square { return Square(diagR45Start[diagR45ID[sq]] + diagR45Pos[sq]) }

// --- C2: leaper tables.

var (
	pawnAttacks   [NumColors][NumSquares]Bitboard
	knightAttacks [NumColors][NumSquares]Bitboard
	silverAttacks [NumColors][NumSquares]Bitboard
	goldAttacks   [NumColors][NumSquares]Bitboard
	kingAttacks   [NumSquares]Bitboard
)

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		one := BitMask(sq)

		pawnAttacks[Black][sq] = shiftUp(one)
		pawnAttacks[White][sq] = shiftDown(one)

		knightAttacks[Black][sq] = shiftLeft(shiftUp2(one)).Or(shiftRight(shiftUp2(one)))
		knightAttacks[White][sq] = shiftLeft(shiftDown2(one)).Or(shiftRight(shiftDown2(one)))

		silverAttacks[Black][sq] = shiftUpLeft(one).Or(shiftUp(one)).Or(shiftUpRight(one)).
			Or(shiftDownLeft(one)).Or(shiftDownRight(one))
		silverAttacks[White][sq] = shiftDownLeft(one).Or(shiftDown(one)).Or(shiftDownRight(one)).
			Or(shiftUpLeft(one)).Or(shiftUpRight(one))

		goldAttacks[Black][sq] = shiftUpLeft(one).Or(shiftUp(one)).Or(shiftUpRight(one)).
			Or(shiftLeft(one)).Or(shiftRight(one)).Or(shiftDown(one))
		goldAttacks[White][sq] = shiftDownLeft(one).Or(shiftDown(one)).Or(shiftDownRight(one)).
			Or(shiftLeft(one)).Or(shiftRight(one)).Or(shiftUp(one))

		kingAttacks[sq] = shiftUpLeft(one).Or(shiftUp(one)).Or(shiftUpRight(one)).
			Or(shiftLeft(one)).Or(shiftRight(one)).
			Or(shiftDownLeft(one)).Or(shiftDown(one)).Or(shiftDownRight(one))
	}
}

// PawnAttacks, KnightAttacks, SilverAttacks, GoldAttacks, KingAttacks expose
// the constant leaper tables.
func PawnAttacks(c Color, sq Square) Bitboard   { return pawnAttacks[c][sq] }
func KnightAttacks(c Color, sq Square) Bitboard { return knightAttacks[c][sq] }
func SilverAttacks(c Color, sq Square) Bitboard { return silverAttacks[c][sq] }
func GoldAttacks(c Color, sq Square) Bitboard   { return goldAttacks[c][sq] }
func KingAttacks(sq Square) Bitboard            { return kingAttacks[sq] }

// --- C2: sliding tables, keyed by a 7-bit occupancy slice (the interior
// squares of the line; the two endpoints never block the ray itself, as it
// terminates there regardless of occupancy).

var (
	rankAttacks  [NumSquares][128]Bitboard
	fileAttacks  [NumSquares][128]Bitboard
	lanceAttacks [NumColors][NumSquares][128]Bitboard
	leftDiagAttacks  [NumSquares][128]Bitboard // L45 ("\")
	rightDiagAttacks [NumSquares][128]Bitboard // R45 ("/")
)

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		rankLine, rankPos := rankLineOf(sq)
		fileLine, filePos := fileLineOf(sq)
		l45Line, l45Pos := byL45Cache[diagL45ID[sq]], diagL45Pos[sq]
		r45Line, r45Pos := byR45Cache[diagR45ID[sq]], diagR45Pos[sq]

		rankAttacks[sq] = raytraceBoth(rankLine, rankPos)
		fileAttacks[sq] = raytraceBoth(fileLine, filePos)
		leftDiagAttacks[sq] = raytraceBoth(l45Line, l45Pos)
		rightDiagAttacks[sq] = raytraceBoth(r45Line, r45Pos)

		lanceAttacks[Black][sq] = raytraceOneDirection(fileLine, filePos, -1)
		lanceAttacks[White][sq] = raytraceOneDirection(fileLine, filePos, +1)
	}
}

func rankLineOf(sq Square) ([]Square, int) {
	var line []Square
	for f := ZeroFile; f < NumFiles; f++ {
		line = append(line, NewSquare(f, sq.Rank()))
	}
	return line, sq.File().V()
}

func fileLineOf(sq Square) ([]Square, int) {
	var line []Square
	for r := ZeroRank; r < NumRanks; r++ {
		line = append(line, NewSquare(sq.File(), r))
	}
	return line, sq.Rank().V()
}

// raytraceBoth builds the 128-entry table for a line, tracing both
// directions from pos. Bit i-1 of state gates position i, for i in
// [1, len(line)-2]; out-of-range bits are never consulted, so garbage there
// (from a wider extraction window near a short diagonal) cannot affect the
// result.
func raytraceBoth(line []Square, pos int) [128]Bitboard {
	var tbl [128]Bitboard
	for state := 0; state < 128; state++ {
		var tmp Bitboard
		for i := pos + 1; i < len(line); i++ {
			tmp = tmp.WithSquare(line[i])
			if blocked(i, state) {
				break
			}
		}
		for i := pos - 1; i >= 0; i-- {
			tmp = tmp.WithSquare(line[i])
			if blocked(i, state) {
				break
			}
		}
		tbl[state] = tmp
	}
	return tbl
}

// raytraceOneDirection is the same, restricted to the single direction
// dir (+1 or -1) from pos -- used for Lance.
func raytraceOneDirection(line []Square, pos int, dir int) [128]Bitboard {
	var tbl [128]Bitboard
	for state := 0; state < 128; state++ {
		var tmp Bitboard
		for i := pos + dir; i >= 0 && i < len(line); i += dir {
			tmp = tmp.WithSquare(line[i])
			if blocked(i, state) {
				break
			}
		}
		tbl[state] = tmp
	}
	return tbl
}

func blocked(i, state int) bool {
	b := i - 1
	if b < 0 || b > 6 {
		return false
	}
	return state&(1<<uint(b)) != 0
}

// slice extraction: which rotated occupancy feeds each sliding table, and
// at what per-square shift.
func rankState(occ Occupancy, sq Square) int {
	return int(occ.plain.slice(sq.Rank().V()*NumFiles.V()+1, 7))
}

func fileState(occ Occupancy, sq Square) int {
	return int(occ.l90.slice(rotL90Index[NewSquare(sq.File(), ZeroRank)]+1, 7))
}

func leftDiagState(occ Occupancy, sq Square) int {
	return int(occ.l45.slice(diagL45Start[diagL45ID[sq]]+1, 7))
}

func rightDiagState(occ Occupancy, sq Square) int {
	return int(occ.r45.slice(diagR45Start[diagR45ID[sq]]+1, 7))
}

// RankSlidingAttacks, FileSlidingAttacks expose the Rook components.
func RankSlidingAttacks(occ Occupancy, sq Square) Bitboard {
	return rankAttacks[sq][rankState(occ, sq)]
}

func FileSlidingAttacks(occ Occupancy, sq Square) Bitboard {
	return fileAttacks[sq][fileState(occ, sq)]
}

// LanceSlidingAttacks exposes the Lance half-line.
func LanceSlidingAttacks(c Color, occ Occupancy, sq Square) Bitboard {
	return lanceAttacks[c][sq][fileState(occ, sq)]
}

// LeftDiagSlidingAttacks, RightDiagSlidingAttacks expose the Bishop components.
func LeftDiagSlidingAttacks(occ Occupancy, sq Square) Bitboard {
	return leftDiagAttacks[sq][leftDiagState(occ, sq)]
}

func RightDiagSlidingAttacks(occ Occupancy, sq Square) Bitboard {
	return rightDiagAttacks[sq][rightDiagState(occ, sq)]
}

// AttacksFrom is the single dispatch point (C2): the attack/move bitboard
// for a piece of the given kind and color sitting at sq, given the current
// occupancy. It is a pure function of its inputs.
func AttacksFrom(kind PieceKind, sq Square, occ Occupancy, c Color) Bitboard {
	switch kind {
	case Pawn:
		return PawnAttacks(c, sq)
	case Lance:
		return LanceSlidingAttacks(c, occ, sq)
	case Knight:
		return KnightAttacks(c, sq)
	case Silver:
		return SilverAttacks(c, sq)
	case Gold, PromPawn, PromLance, PromKnight, PromSilver:
		return GoldAttacks(c, sq)
	case Bishop:
		return LeftDiagSlidingAttacks(occ, sq).Or(RightDiagSlidingAttacks(occ, sq))
	case Rook:
		return RankSlidingAttacks(occ, sq).Or(FileSlidingAttacks(occ, sq))
	case King:
		return KingAttacks(sq)
	case PromBishop:
		return LeftDiagSlidingAttacks(occ, sq).Or(RightDiagSlidingAttacks(occ, sq)).Or(KingAttacks(sq))
	case PromRook:
		return RankSlidingAttacks(occ, sq).Or(FileSlidingAttacks(occ, sq)).Or(KingAttacks(sq))
	default:
		panic("board: invalid piece kind in AttacksFrom")
	}
}
