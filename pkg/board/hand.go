package board

import "fmt"

// maxHandCount is the largest number of a kind that can ever sit in one
// hand, bounded by how many of that kind exist in a starting set: 18 Pawns,
// 4 each of Lance/Knight/Silver/Gold, 2 each of Bishop/Rook.
var maxHandCount = map[PieceKind]int{
	Pawn:   18,
	Lance:  4,
	Knight: 4,
	Silver: 4,
	Gold:   4,
	Bishop: 2,
	Rook:   2,
}

// Hand is the multiset of captured, droppable pieces held by one color.
// Only the seven droppable kinds (never King, never a promoted kind) may
// appear; add always demotes its input first.
type Hand struct {
	counts map[PieceKind]int
}

// NewHand returns an empty hand.
func NewHand() Hand {
	return Hand{counts: make(map[PieceKind]int, len(droppableKinds))}
}

// Count returns how many of kind (demoted first) sit in the hand.
func (h Hand) Count(kind PieceKind) int {
	return h.counts[kind.Demote()]
}

// Contains reports whether the hand holds at least one of kind. kind is
// looked up as given (not demoted), so a promoted kind is never contained.
func (h Hand) Contains(kind PieceKind) bool {
	return h.counts[kind] > 0
}

// add places a captured piece into the hand; a promoted capture is demoted
// first, per the drop rule that a piece loses its promotion on capture.
func (h *Hand) add(kind PieceKind) {
	k := kind.Demote()
	if h.counts == nil {
		h.counts = make(map[PieceKind]int, len(droppableKinds))
	}
	h.counts[k]++
}

// remove takes one of kind out of the hand. Returns ErrHandUnderflow if the
// hand holds none.
func (h *Hand) remove(kind PieceKind) error {
	k := kind.Demote()
	if h.counts[k] <= 0 {
		return fmt.Errorf("%w: no %v in hand", ErrHandUnderflow, k)
	}
	h.counts[k]--
	return nil
}

// Kinds returns the droppable kinds present in the hand (count > 0), in
// SFEN/USI canonical print order.
func (h Hand) Kinds() []PieceKind {
	var ret []PieceKind
	for _, k := range droppableKinds {
		if h.counts[k] > 0 {
			ret = append(ret, k)
		}
	}
	return ret
}

// IsEmpty reports whether the hand holds no pieces at all.
func (h Hand) IsEmpty() bool {
	for _, k := range droppableKinds {
		if h.counts[k] > 0 {
			return false
		}
	}
	return true
}

// MaxCount returns the largest number of kind (demoted first) that can ever
// occupy one hand.
func MaxCount(kind PieceKind) int {
	return maxHandCount[kind.Demote()]
}

// Format renders the hand's SFEN fragment for color c: count+letter pairs
// in canonical order, letter case set by c. Returns "" for an empty hand
// (the caller joins both colors and falls back to "-" if both are empty).
func (h Hand) Format(c Color) string {
	s := ""
	for _, k := range droppableKinds {
		n := h.counts[k]
		if n == 0 {
			continue
		}
		if n > 1 {
			s += fmt.Sprintf("%d", n)
		}
		s += k.Symbol(c)
	}
	return s
}
