package board

// This file implements C6: pseudo-legal enumeration, the legality filter,
// and the two predicates (is_pseudo_legal, is_attacked_by) that let callers
// validate a move without generating the full set.

// GeneratePseudoLegal streams every pseudo-legal move for the side to move
// to visit, in board-move-then-drop order, stopping as soon as visit
// returns false. No slice is allocated; callers that want a list can
// collect into one themselves.
func (b *Board) GeneratePseudoLegal(visit func(Move) bool) {
	own := b.occ.byColor[b.turn]
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if !own.IsSet(sq) {
			continue
		}
		kind := b.mailbox[sq]
		dests := AttacksFrom(kind, sq, b.occ, b.turn).AndNot(own)
		for to := ZeroSquare; to < NumSquares; to++ {
			if !dests.IsSet(to) {
				continue
			}
			if CanMoveWithoutPromotion(to, kind, b.turn) {
				if !visit(NewBoardMove(sq, to, false)) {
					return
				}
			}
			if kind.CanPromote() && (InPromotionZone(b.turn, sq) || InPromotionZone(b.turn, to)) {
				if !visit(NewBoardMove(sq, to, true)) {
					return
				}
			}
		}
	}

	empty := b.occ.plain.Not()
	for _, kind := range droppableKinds {
		if !b.hands[b.turn].Contains(kind) {
			continue
		}
		for to := ZeroSquare; to < NumSquares; to++ {
			if !empty.IsSet(to) {
				continue
			}
			if !CanMoveWithoutPromotion(to, kind, b.turn) {
				continue
			}
			if kind == Pawn && b.hasUnpromotedPawnOnFile(b.turn, to.File()) {
				continue
			}
			if !visit(NewDropMove(kind, to)) {
				return
			}
		}
	}
}

// GenerateLegal streams every legal move, filtering GeneratePseudoLegal's
// output through IsLegal.
func (b *Board) GenerateLegal(visit func(Move) bool) {
	b.GeneratePseudoLegal(func(m Move) bool {
		if b.IsLegal(m) {
			return visit(m)
		}
		return true
	})
}

// CountLegal returns the number of legal moves without retaining them.
func (b *Board) CountLegal() int {
	n := 0
	b.GenerateLegal(func(Move) bool { n++; return true })
	return n
}

func (b *Board) hasUnpromotedPawnOnFile(c Color, f File) bool {
	return b.kindBB[Pawn].And(b.occ.byColor[c]).And(BitFile(f)) != EmptyBitboard
}

// IsDoublePawn reports whether color already has an unpromoted pawn on
// file f, the nifu condition that forbids a further pawn drop there.
// Exposed alongside the internal check used by drop generation so callers
// can pre-filter candidate drop squares without invoking GeneratePseudoLegal.
func (b *Board) IsDoublePawn(c Color, f File) bool {
	return b.hasUnpromotedPawnOnFile(c, f)
}

// IsPseudoLegal re-validates move m against the current position without
// generating. Never panics; malformed input simply returns false.
func (b *Board) IsPseudoLegal(m Move) bool {
	switch m.Kind {
	case NullMove:
		return false

	case DropMove:
		if !m.Drop.IsDroppable() || !m.To.IsValid() {
			return false
		}
		if b.occ.IsOccupied(m.To) {
			return false
		}
		if !b.hands[b.turn].Contains(m.Drop) {
			return false
		}
		if !CanMoveWithoutPromotion(m.To, m.Drop, b.turn) {
			return false
		}
		if m.Drop == Pawn && b.hasUnpromotedPawnOnFile(b.turn, m.To.File()) {
			return false
		}
		return true

	default:
		if !m.From.IsValid() || !m.To.IsValid() {
			return false
		}
		p, ok := b.PieceAt(m.From)
		if !ok || p.Color != b.turn {
			return false
		}
		if dp, ok := b.PieceAt(m.To); ok && dp.Color == b.turn {
			return false
		}
		if !AttacksFrom(p.Kind, m.From, b.occ, b.turn).IsSet(m.To) {
			return false
		}
		if m.Promote {
			if !p.Kind.CanPromote() {
				return false
			}
			if !InPromotionZone(b.turn, m.From) && !InPromotionZone(b.turn, m.To) {
				return false
			}
		} else if !CanMoveWithoutPromotion(m.To, p.Kind, b.turn) {
			return false
		}
		return true
	}
}

// IsAttackedBy reports whether any piece of color attacks sq, given the
// current occupancy.
func (b *Board) IsAttackedBy(color Color, sq Square) bool {
	for kind := PieceKind(1); kind < NumPieceKinds; kind++ {
		probe := AttacksFrom(kind, sq, b.occ, color.Opponent())
		if probe.And(b.kindBB[kind]).And(b.occ.byColor[color]) != EmptyBitboard {
			return true
		}
	}
	return false
}

// isAttackedByNonKing is IsAttackedBy restricted to non-King attackers, used
// by the uchifuzume check (a king "attacking" its own capture square isn't
// a legal recapture).
func (b *Board) isAttackedByNonKing(color Color, sq Square) bool {
	for kind := PieceKind(1); kind < NumPieceKinds; kind++ {
		if kind == King {
			continue
		}
		probe := AttacksFrom(kind, sq, b.occ, color.Opponent())
		if probe.And(b.kindBB[kind]).And(b.occ.byColor[color]) != EmptyBitboard {
			return true
		}
	}
	return false
}

// IsLegal applies the legality filter (C6): a pseudo-legal move is legal
// iff, after push, the mover is not left in check (self-check / suicide),
// and -- for a pawn drop that gives check -- the drop is not an illegal
// drop-pawn checkmate (uchifuzume).
func (b *Board) IsLegal(m Move) bool {
	if !b.IsPseudoLegal(m) {
		return false
	}
	mover := b.turn
	if err := b.Push(m); err != nil {
		return false
	}
	defer func() { _ = b.Pop() }()

	kingSq, ok := b.KingSquare(mover)
	if ok && b.IsAttackedBy(mover.Opponent(), kingSq) {
		return false
	}
	if m.Kind == DropMove && m.Drop == Pawn && b.isUchifuzume(mover, m.To) {
		return false
	}
	return true
}

// isUchifuzume decides, on the post-push position (opponent to move), the
// narrow uchifuzume test: the dropped pawn at pawnSq checks the opponent
// king, every king escape square is attacked by mover, and no non-king
// opponent piece attacks pawnSq.
func (b *Board) isUchifuzume(mover Color, pawnSq Square) bool {
	opp := mover.Opponent()
	kingSq, ok := b.KingSquare(opp)
	if !ok {
		return false
	}
	if !b.IsAttackedBy(mover, kingSq) {
		return false
	}

	escapes := KingAttacks(kingSq).AndNot(b.occ.byColor[opp])
	for to := ZeroSquare; to < NumSquares; to++ {
		if !escapes.IsSet(to) {
			continue
		}
		if !b.IsAttackedBy(mover, to) {
			return false
		}
	}

	if b.isAttackedByNonKing(opp, pawnSq) {
		return false
	}
	return true
}
