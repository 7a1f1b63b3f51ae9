package board

// Occupancy is the aggregate occupancy state (C4): plain occupancy, the
// per-color occupancy used for capture/self-check tests, and the three
// rotated projections consumed by the sliding attack tables. All of these
// views are kept in lockstep by toggle; nothing else in the package sets
// their bits directly.
type Occupancy struct {
	plain    Bitboard
	byColor  [NumColors]Bitboard
	l90      Bitboard // rotL90 projection, consumed by File/Lance sliding tables
	l45      Bitboard // rotL45 projection, consumed by the "\" bishop component
	r45      Bitboard // rotR45 projection, consumed by the "/" bishop component
}

// Plain returns the un-rotated occupancy bitboard.
func (o Occupancy) Plain() Bitboard { return o.plain }

// ByColor returns the occupancy of the given color.
func (o Occupancy) ByColor(c Color) Bitboard { return o.byColor[c] }

// IsOccupied reports whether any piece sits on sq.
func (o Occupancy) IsOccupied(sq Square) bool { return o.plain.IsSet(sq) }

// toggle flips the occupancy bit for sq in the plain view, the view of
// color c and the three rotated views. Called once
// per placement and once per removal; a piece moving is a remove followed
// by a set, both of which route through here.
func (o *Occupancy) toggle(sq Square, c Color) {
	mask := BitMask(sq)
	o.plain = o.plain.Xor(mask)
	o.byColor[c] = o.byColor[c].Xor(mask)
	o.l90 = o.l90.Xor(BitMask(rotL90(sq)))
	o.l45 = o.l45.Xor(BitMask(rotL45(sq)))
	o.r45 = o.r45.Xor(BitMask(rotR45(sq)))
}

// set marks sq occupied by color c. sq must currently be empty.
func (o *Occupancy) set(sq Square, c Color) {
	o.toggle(sq, c)
}

// clear marks sq empty. sq must currently be occupied by color c.
func (o *Occupancy) clear(sq Square, c Color) {
	o.toggle(sq, c)
}
