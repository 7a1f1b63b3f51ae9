package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingSFEN is the standard starting position.
const StartingSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// SFEN renders the board as a four-field SFEN string: placement, turn,
// hands, ply. Hand piece order is canonical (droppableKinds) and stable.
func (b *Board) SFEN() string {
	var rows []string
	for r := ZeroRank; r < NumRanks; r++ {
		rows = append(rows, b.sfenRow(r))
	}

	hands := b.hands[Black].Format(Black) + b.hands[White].Format(White)
	if hands == "" {
		hands = "-"
	}

	return fmt.Sprintf("%v %v %v %v", strings.Join(rows, "/"), b.turn, hands, b.ply)
}

func (b *Board) sfenRow(r Rank) string {
	var sb strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
			run = 0
		}
	}
	for f := ZeroFile; f < NumFiles; f++ {
		p, ok := b.PieceAt(NewSquare(f, r))
		if !ok {
			run++
			continue
		}
		flush()
		sb.WriteString(p.Symbol())
	}
	flush()
	return sb.String()
}

// DecodeSFEN parses a four-field SFEN string into a fresh board bound to z.
func DecodeSFEN(z *ZobristTable, sfen string) (*Board, error) {
	fields := strings.Fields(sfen)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d: %q", ErrInvalidSfen, len(fields), sfen)
	}

	b := &Board{zobrist: z}
	b.kingSq = [NumColors]Square{noKingSquare, noKingSquare}
	b.hands = [NumColors]Hand{NewHand(), NewHand()}
	b.moveStack = nil
	b.captureStack = nil
	b.transposition = map[ZobristHash]int{}

	if err := b.decodePlacement(fields[0]); err != nil {
		return nil, err
	}

	turn, err := decodeTurn(fields[1])
	if err != nil {
		return nil, err
	}
	b.turn = turn

	if err := b.decodeHands(fields[2]); err != nil {
		return nil, err
	}

	ply, err := strconv.Atoi(fields[3])
	if err != nil || ply < 0 {
		return nil, fmt.Errorf("%w: invalid ply: %q", ErrInvalidSfen, fields[3])
	}
	if ply == 0 {
		ply = 1
	}
	b.ply = ply

	b.transposition[b.Hash()] = 1
	return b, nil
}

func (b *Board) decodePlacement(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != int(NumRanks) {
		return fmt.Errorf("%w: expected %d rows, got %d: %q", ErrInvalidSfen, NumRanks, len(rows), field)
	}
	for ri, row := range rows {
		if err := b.decodeRow(Rank(ri), row); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) decodeRow(r Rank, row string) error {
	f := ZeroFile
	promo := false
	sawDigit := false
	for _, ch := range row {
		switch {
		case ch == '+':
			if promo {
				return fmt.Errorf("%w: double promotion marker in row: %q", ErrInvalidSfen, row)
			}
			promo = true
			sawDigit = false

		case ch >= '1' && ch <= '9':
			if sawDigit {
				return fmt.Errorf("%w: adjacent digits in row: %q", ErrInvalidSfen, row)
			}
			f += File(ch - '0')
			sawDigit = true

		default:
			sym := string(ch)
			if promo {
				sym = "+" + sym
			}
			p, err := ParsePieceSymbol(sym)
			if err != nil {
				return err
			}
			if !f.IsValid() {
				return fmt.Errorf("%w: row overflow: %q", ErrInvalidSfen, row)
			}
			b.placePiece(NewSquare(f, r), p)
			f++
			promo = false
			sawDigit = false
		}
	}
	if f != NumFiles {
		return fmt.Errorf("%w: row does not sum to %d: %q", ErrInvalidSfen, NumFiles, row)
	}
	return nil
}

func decodeTurn(field string) (Color, error) {
	switch field {
	case "b":
		return Black, nil
	case "w":
		return White, nil
	default:
		return 0, fmt.Errorf("%w: invalid turn token: %q", ErrInvalidSfen, field)
	}
}

func (b *Board) decodeHands(field string) error {
	if field == "-" {
		return nil
	}
	runes := []rune(field)
	for i := 0; i < len(runes); {
		count := 1
		if runes[i] >= '1' && runes[i] <= '9' {
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err != nil {
				return fmt.Errorf("%w: invalid hand count: %q", ErrInvalidSfen, field)
			}
			count = n
			i = j
		}
		if i >= len(runes) {
			return fmt.Errorf("%w: truncated hand field: %q", ErrInvalidSfen, field)
		}
		kind, color, ok := ParsePieceKindLetter(runes[i])
		if !ok || !kind.IsDroppable() {
			return fmt.Errorf("%w: invalid hand piece: %q", ErrInvalidSfen, field)
		}
		for k := 0; k < count; k++ {
			b.hands[color].add(kind)
		}
		i++
	}
	return nil
}
