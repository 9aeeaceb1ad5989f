// move.go declares the in-memory Move representation used by the chess
// core and the move-list codec. It intentionally diverges from the
// teacher's packed-uint16 Move (types.go) because this format's castling
// convention stores the rook's square in To, not the king's destination
// (see CompressedMove in compressedmove.go) — a plain struct keeps that
// convention explicit instead of fighting a bit-packed layout designed for
// a different convention.

package binpack

// Move carries a from/to square pair, a type, and (for Promotion) the
// promoted piece type. For Castle, From is the king's square and To is the
// rook's square — this is load-bearing for the codec and must not be
// "normalised" to the king's destination outside a UI boundary.
//
// The null move has From == To == 0.
type Move struct {
	From      Square
	To        Square
	Type      MoveType
	Promotion PieceType
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.From == SA1 && m.To == SA1 && m.Type == MoveNormal
}

// castleDestinations maps (color, isShort) to the king and rook
// destination squares, per the side_to_move/short-or-long convention in
// make_move.
var castleDestinations = [2][2]struct{ king, rook Square }{
	ColorWhite: {
		{king: SG1, rook: SF1}, // short
		{king: SC1, rook: SD1}, // long
	},
	ColorBlack: {
		{king: SG8, rook: SF8}, // short
		{king: SC8, rook: SD8}, // long
	},
}
